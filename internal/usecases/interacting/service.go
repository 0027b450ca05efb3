package interacting

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/lead-manager-api/infrastructure/repository"
	"github.com/vfg2006/lead-manager-api/internal/domain"
)

// Janela móvel, em dias, do resumo de atividade recente de um lead
const recentActivityWindowDays = 30

type Interactor interface {
	RegisterInteraction(req *domain.CreateInteractionRequest) (*domain.Interaction, error)
	UpdateInteraction(interactionID uuid.UUID, req *domain.UpdateInteractionRequest) (*domain.Interaction, error)
	GetInteraction(interactionID uuid.UUID) (*domain.Interaction, error)
	DeleteInteraction(interactionID uuid.UUID) error
	InteractionsForLead(leadID uuid.UUID, page domain.Pagination) (*domain.InteractionPage, error)
	InteractionsForKam(kamID uuid.UUID, startDate, endDate time.Time, page domain.Pagination) (*domain.InteractionPage, error)
	FollowUpsForToday(kamID uuid.UUID) ([]*domain.Interaction, error)
	RecentActivity(leadID uuid.UUID) (*domain.RecentActivitySummary, error)
	KamActivity(kamID uuid.UUID) (*domain.KamActivitySummary, error)
}

type Service struct {
	interactionRepo repository.InteractionRepository
	leadRepo        repository.LeadRepository
	userRepo        repository.UserRepository
	now             func() time.Time
}

func NewService(
	interactionRepo repository.InteractionRepository,
	leadRepo repository.LeadRepository,
	userRepo repository.UserRepository,
) Interactor {
	return &Service{
		interactionRepo: interactionRepo,
		leadRepo:        leadRepo,
		userRepo:        userRepo,
		now:             time.Now,
	}
}

// RegisterInteraction grava um contato ou pedido real. A data da interação
// é sempre o relógio do servidor, nunca vem do cliente. Uma ligação
// concluída também atualiza a última ligação do lead.
func (s *Service) RegisterInteraction(req *domain.CreateInteractionRequest) (*domain.Interaction, error) {
	if !req.Type.IsValid() {
		return nil, ErrInvalidType
	}
	if !req.Status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if req.OrderValue != nil && *req.OrderValue < 0 {
		return nil, ErrNegativeOrderValue
	}
	if req.Type == domain.InteractionTypeOrder && req.OrderValue == nil {
		return nil, ErrMissingOrderValue
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

	now := s.now()
	interaction := &domain.Interaction{
		LeadID:          req.LeadID,
		ContactID:       req.ContactID,
		KamID:           req.KamID,
		Type:            req.Type,
		Status:          req.Status,
		InteractionDate: now,
		OrderValue:      req.OrderValue,
		FollowUpDate:    req.FollowUpDate,
		Notes:           req.Notes,
	}

	interaction, err = s.interactionRepo.CreateInteraction(interaction)
	if err != nil {
		return nil, err
	}

	if req.Type == domain.InteractionTypeCall && req.Status == domain.InteractionStatusCompleted {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		err := s.leadRepo.UpdateLastCallDate(req.LeadID, sql.NullTime{Time: today, Valid: true})
		if err != nil {
			logrus.WithField("lead_id", req.LeadID).Error("erro ao atualizar última ligação do lead: ", err)
			return nil, err
		}
	}

	return interaction, nil
}

// UpdateInteraction aplica correções pontuais. Lead, KAM, tipo e data da
// interação são imutáveis.
func (s *Service) UpdateInteraction(interactionID uuid.UUID, req *domain.UpdateInteractionRequest) (*domain.Interaction, error) {
	interaction, err := s.interactionRepo.GetByID(interactionID)
	if err != nil {
		return nil, err
	}
	if interaction == nil {
		return nil, ErrInteractionNotFound
	}

	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, ErrInvalidStatus
		}
		interaction.Status = *req.Status
	}

	if req.OrderValue != nil {
		if *req.OrderValue < 0 {
			return nil, ErrNegativeOrderValue
		}
		interaction.OrderValue = req.OrderValue
	}

	if req.FollowUpDate != nil {
		interaction.FollowUpDate = req.FollowUpDate
	}

	if req.Notes != nil {
		interaction.Notes = *req.Notes
	}

	if err := s.interactionRepo.UpdateInteraction(interaction); err != nil {
		return nil, err
	}

	return interaction, nil
}

func (s *Service) GetInteraction(interactionID uuid.UUID) (*domain.Interaction, error) {
	interaction, err := s.interactionRepo.GetByID(interactionID)
	if err != nil {
		return nil, err
	}
	if interaction == nil {
		return nil, ErrInteractionNotFound
	}

	return interaction, nil
}

func (s *Service) DeleteInteraction(interactionID uuid.UUID) error {
	interaction, err := s.interactionRepo.GetByID(interactionID)
	if err != nil {
		return err
	}
	if interaction == nil {
		return ErrInteractionNotFound
	}

	return s.interactionRepo.DeleteInteraction(interactionID)
}

func (s *Service) InteractionsForLead(leadID uuid.UUID, page domain.Pagination) (*domain.InteractionPage, error) {
	leadExists, err := s.leadRepo.ExistsByID(leadID)
	if err != nil {
		return nil, err
	}
	if !leadExists {
		return nil, ErrLeadNotFound
	}

	interactions, total, err := s.interactionRepo.FindByLead(leadID, page)
	if err != nil {
		return nil, err
	}

	return &domain.InteractionPage{
		Interactions: interactions,
		TotalCount:   total,
		Page:         page.Page,
		PerPage:      page.Limit(),
	}, nil
}

func (s *Service) InteractionsForKam(kamID uuid.UUID, startDate, endDate time.Time, page domain.Pagination) (*domain.InteractionPage, error) {
	if endDate.Before(startDate) {
		return nil, ErrInvalidDateRange
	}

	interactions, total, err := s.interactionRepo.FindByKamAndDateRange(kamID, startDate, endDate, page)
	if err != nil {
		return nil, err
	}

	return &domain.InteractionPage{
		Interactions: interactions,
		TotalCount:   total,
		Page:         page.Page,
		PerPage:      page.Limit(),
	}, nil
}

func (s *Service) FollowUpsForToday(kamID uuid.UUID) ([]*domain.Interaction, error) {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return s.interactionRepo.FindFollowUpsForKamAndDate(kamID, today)
}

// RecentActivity resume os últimos 30 dias do lead. Um lead sem nenhuma
// interação produz um resumo zerado, não um erro.
func (s *Service) RecentActivity(leadID uuid.UUID) (*domain.RecentActivitySummary, error) {
	leadExists, err := s.leadRepo.ExistsByID(leadID)
	if err != nil {
		return nil, err
	}
	if !leadExists {
		return nil, ErrLeadNotFound
	}

	now := s.now()
	since := now.AddDate(0, 0, -recentActivityWindowDays)

	summary := &domain.RecentActivitySummary{}

	latest, err := s.interactionRepo.FindLatestByLead(leadID)
	if err != nil {
		return nil, err
	}
	if latest != nil {
		summary.LatestInteractionID = &latest.ID
		summary.LatestInteractionType = string(latest.Type)
		summary.LatestInteractionDate = &latest.InteractionDate
	}

	summary.TotalInteractions30d, err = s.interactionRepo.CountByLeadSince(leadID, since)
	if err != nil {
		return nil, err
	}

	summary.TotalOrders30d, err = s.interactionRepo.CountByLeadAndTypeSince(leadID, domain.InteractionTypeOrder, since)
	if err != nil {
		return nil, err
	}

	summary.TotalOrderValue30d, err = s.interactionRepo.SumOrderValueByLeadAndRange(leadID, since, now)
	if err != nil {
		return nil, err
	}

	return summary, nil
}

// KamActivity conta as interações do KAM por tipo nos últimos 30 dias
func (s *Service) KamActivity(kamID uuid.UUID) (*domain.KamActivitySummary, error) {
	kamExists, err := s.userRepo.ExistsByID(kamID)
	if err != nil {
		return nil, err
	}
	if !kamExists {
		return nil, ErrKamNotFound
	}

	since := s.now().AddDate(0, 0, -recentActivityWindowDays)
	summary := &domain.KamActivitySummary{
		KamID: kamID,
		Since: since,
	}

	counts := []struct {
		interactionType domain.InteractionType
		target          *int64
	}{
		{domain.InteractionTypeCall, &summary.Calls},
		{domain.InteractionTypeOrder, &summary.Orders},
		{domain.InteractionTypeEmail, &summary.Emails},
		{domain.InteractionTypeMeeting, &summary.Meetings},
	}

	for _, c := range counts {
		*c.target, err = s.interactionRepo.CountByKamAndTypeSince(kamID, c.interactionType, since)
		if err != nil {
			return nil, err
		}
	}

	return summary, nil
}
