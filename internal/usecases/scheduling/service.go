package scheduling

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/lead-manager-api/infrastructure/repository"
	"github.com/vfg2006/lead-manager-api/internal/domain"
)

type CallScheduler interface {
	CreateSchedule(req *domain.CreateCallScheduleRequest) (*domain.CallSchedule, error)
	GetSchedule(scheduleID uuid.UUID) (*domain.CallSchedule, error)
	CompleteCall(scheduleID uuid.UUID) (*domain.CallSchedule, error)
	MissCall(scheduleID uuid.UUID) (*domain.CallSchedule, error)
	MarkBusy(scheduleID uuid.UUID) (*domain.CallSchedule, error)
	RescheduleCall(scheduleID uuid.UUID, newDate time.Time) (*domain.CallSchedule, error)
	CancelCall(scheduleID uuid.UUID) (*domain.CallSchedule, error)
	EditSchedule(scheduleID uuid.UUID, req *domain.EditCallScheduleRequest) (*domain.CallSchedule, error)
	DeleteSchedule(scheduleID uuid.UUID) error
	CallsForToday(kamID uuid.UUID) ([]*domain.CallSchedule, error)
	OverdueCalls(kamID uuid.UUID) ([]*domain.CallSchedule, error)
	UpcomingCallsForLead(leadID uuid.UUID) ([]*domain.CallSchedule, error)
}

type Service struct {
	scheduleRepo repository.CallScheduleRepository
	leadRepo     repository.LeadRepository
	userRepo     repository.UserRepository
	now          func() time.Time
}

func NewService(
	scheduleRepo repository.CallScheduleRepository,
	leadRepo repository.LeadRepository,
	userRepo repository.UserRepository,
) CallScheduler {
	return &Service{
		scheduleRepo: scheduleRepo,
		leadRepo:     leadRepo,
		userRepo:     userRepo,
		now:          time.Now,
	}
}

func (s *Service) CreateSchedule(req *domain.CreateCallScheduleRequest) (*domain.CallSchedule, error) {
	// Prioridade omitida assume o valor padrão 3
	if req.Priority == 0 {
		req.Priority = domain.DefaultCallPriority
	}
	if err := validatePriority(req.Priority); err != nil {
		return nil, err
	}

	if req.ScheduledDate.IsZero() {
		return nil, ErrInvalidDate
	}

	kamExists, err := s.userRepo.ExistsByID(req.KamID)
	if err != nil {
		return nil, err
	}
	if !kamExists {
		return nil, ErrKamNotFound
	}

	leadExists, err := s.leadRepo.ExistsByID(req.LeadID)
	if err != nil {
		return nil, err
	}
	if !leadExists {
		return nil, ErrLeadNotFound
	}

	schedule := &domain.CallSchedule{
		KamID:         req.KamID,
		LeadID:        req.LeadID,
		ScheduledDate: NormalizeDate(req.ScheduledDate),
		Status:        domain.CallStatusPending,
		Priority:      req.Priority,
	}

	return s.scheduleRepo.CreateCallSchedule(schedule)
}

func (s *Service) GetSchedule(scheduleID uuid.UUID) (*domain.CallSchedule, error) {
	schedule, err := s.scheduleRepo.GetByID(scheduleID)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, ErrScheduleNotFound
	}

	return schedule, nil
}

// CompleteCall fecha o ciclo da ligação: marca a entrada como COMPLETED,
// projeta a próxima data pela frequência do lead e atualiza a última
// ligação do lead. As três escritas acontecem na mesma transação.
func (s *Service) CompleteCall(scheduleID uuid.UUID) (*domain.CallSchedule, error) {
	schedule, err := s.loadMutableSchedule(scheduleID)
	if err != nil {
		return nil, err
	}

	lead, err := s.leadRepo.GetLeadByID(schedule.LeadID)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, ErrLeadNotFound
	}

	today := NormalizeDate(s.now())
	next := today.AddDate(0, 0, lead.CallFrequency)

	schedule.Status = domain.CallStatusCompleted
	schedule.NextScheduledDate = &next
	lead.LastCallDate = &today

	if err := s.scheduleRepo.SaveTransition(schedule, lead); err != nil {
		logrus.WithField("schedule_id", scheduleID).Error("erro ao concluir ligação: ", err)
		return nil, err
	}

	return schedule, nil
}

func (s *Service) MissCall(scheduleID uuid.UUID) (*domain.CallSchedule, error) {
	return s.transition(scheduleID, domain.CallStatusNoAnswer)
}

func (s *Service) MarkBusy(scheduleID uuid.UUID) (*domain.CallSchedule, error) {
	return s.transition(scheduleID, domain.CallStatusBusy)
}

// RescheduleCall move a ligação para uma nova data futura. Datas no
// passado são rejeitadas sem alterar o registro.
func (s *Service) RescheduleCall(scheduleID uuid.UUID, newDate time.Time) (*domain.CallSchedule, error) {
	schedule, err := s.loadMutableSchedule(scheduleID)
	if err != nil {
		return nil, err
	}

	today := NormalizeDate(s.now())
	newDate = NormalizeDate(newDate)
	if newDate.Before(today) {
		return nil, ErrPastRescheduleDate
	}

	schedule.ScheduledDate = newDate
	schedule.Status = domain.CallStatusRescheduled
	schedule.NextScheduledDate = &newDate

	if err := s.scheduleRepo.UpdateCallSchedule(schedule); err != nil {
		return nil, err
	}

	return schedule, nil
}

// CancelCall é idempotente: cancelar uma entrada já finalizada devolve o
// registro como está, sem nenhuma escrita. Uma ligação COMPLETED nunca é
// reescrita.
func (s *Service) CancelCall(scheduleID uuid.UUID) (*domain.CallSchedule, error) {
	schedule, err := s.scheduleRepo.GetByID(scheduleID)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, ErrScheduleNotFound
	}

	if schedule.Status.IsTerminal() {
		return schedule, nil
	}

	schedule.Status = domain.CallStatusCancelled
	schedule.NextScheduledDate = nil
	if err := s.scheduleRepo.UpdateCallSchedule(schedule); err != nil {
		return nil, err
	}

	return schedule, nil
}

// EditSchedule permite ajustar data e prioridade de uma entrada ainda
// aberta. KAM e lead são imutáveis depois da criação.
func (s *Service) EditSchedule(scheduleID uuid.UUID, req *domain.EditCallScheduleRequest) (*domain.CallSchedule, error) {
	if req.KamID != nil || req.LeadID != nil {
		return nil, ErrImmutableAssignment
	}

	schedule, err := s.loadMutableSchedule(scheduleID)
	if err != nil {
		return nil, err
	}

	if req.Priority != nil {
		if err := validatePriority(*req.Priority); err != nil {
			return nil, err
		}
		schedule.Priority = *req.Priority
	}

	if req.ScheduledDate != nil {
		if req.ScheduledDate.IsZero() {
			return nil, ErrInvalidDate
		}
		schedule.ScheduledDate = NormalizeDate(*req.ScheduledDate)
	}

	if err := s.scheduleRepo.UpdateCallSchedule(schedule); err != nil {
		return nil, err
	}

	return schedule, nil
}

func (s *Service) DeleteSchedule(scheduleID uuid.UUID) error {
	schedule, err := s.scheduleRepo.GetByID(scheduleID)
	if err != nil {
		return err
	}
	if schedule == nil {
		return ErrScheduleNotFound
	}

	return s.scheduleRepo.DeleteCallSchedule(scheduleID)
}

func (s *Service) CallsForToday(kamID uuid.UUID) ([]*domain.CallSchedule, error) {
	return s.scheduleRepo.FindScheduledCallsForKamAndDate(kamID, NormalizeDate(s.now()))
}

func (s *Service) OverdueCalls(kamID uuid.UUID) ([]*domain.CallSchedule, error) {
	return s.scheduleRepo.FindOverdueCallsForKam(kamID, NormalizeDate(s.now()))
}

func (s *Service) UpcomingCallsForLead(leadID uuid.UUID) ([]*domain.CallSchedule, error) {
	return s.scheduleRepo.FindUpcomingCallsForLead(leadID, NormalizeDate(s.now()))
}

func (s *Service) transition(scheduleID uuid.UUID, status domain.CallStatus) (*domain.CallSchedule, error) {
	schedule, err := s.loadMutableSchedule(scheduleID)
	if err != nil {
		return nil, err
	}

	schedule.Status = status
	if err := s.scheduleRepo.UpdateCallSchedule(schedule); err != nil {
		return nil, err
	}

	return schedule, nil
}

func (s *Service) loadMutableSchedule(scheduleID uuid.UUID) (*domain.CallSchedule, error) {
	schedule, err := s.scheduleRepo.GetByID(scheduleID)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, ErrScheduleNotFound
	}
	if schedule.Status.IsTerminal() {
		return nil, ErrScheduleTerminal
	}

	return schedule, nil
}

func validatePriority(priority int) error {
	if priority < 1 || priority > 5 {
		return ErrInvalidPriority
	}
	return nil
}
