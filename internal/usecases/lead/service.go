package lead

import (
	"time"

	"github.com/google/uuid"
	"github.com/vfg2006/lead-manager-api/infrastructure/repository"
	"github.com/vfg2006/lead-manager-api/internal/domain"
	"github.com/vfg2006/lead-manager-api/internal/usecases/scheduling"
)

type Manager interface {
	CreateLead(req *domain.CreateLeadRequest) (*domain.Lead, error)
	GetLead(leadID uuid.UUID) (*domain.Lead, error)
	UpdateLead(leadID uuid.UUID, req *domain.UpdateLeadRequest) (*domain.Lead, error)
	UpdateStatus(leadID uuid.UUID, status domain.LeadStatus) (*domain.Lead, error)
	DeleteLead(leadID uuid.UUID) error
	ListLeads(kamID uuid.UUID, filters domain.LeadFilters, page domain.Pagination) (*domain.LeadPage, error)
	LeadsRequiringCalls(kamID uuid.UUID) ([]*domain.Lead, error)
	NextCallDate(leadID uuid.UUID) (time.Time, error)
	Summary(kamID uuid.UUID) (*domain.LeadSummary, error)
}

type Service struct {
	leadRepo repository.LeadRepository
	userRepo repository.UserRepository
	now      func() time.Time
}

func NewService(leadRepo repository.LeadRepository, userRepo repository.UserRepository) Manager {
	return &Service{
		leadRepo: leadRepo,
		userRepo: userRepo,
		now:      time.Now,
	}
}

func (s *Service) CreateLead(req *domain.CreateLeadRequest) (*domain.Lead, error) {
	if req.Name == "" || req.City == "" || req.KamID == uuid.Nil {
		return nil, ErrMissingRequiredData
	}

	if req.CallFrequency < 1 {
		return nil, ErrInvalidFrequency
	}

	status := req.Status
	if status == "" {
		status = domain.LeadStatusNew
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	kamExists, err := s.userRepo.ExistsByID(req.KamID)
	if err != nil {
		return nil, err
	}
	if !kamExists {
		return nil, ErrKamNotFound
	}

	lead := &domain.Lead{
		Name:          req.Name,
		City:          req.City,
		CuisineType:   req.CuisineType,
		Status:        status,
		KamID:         req.KamID,
		CallFrequency: req.CallFrequency,
	}

	return s.leadRepo.CreateLead(lead)
}

func (s *Service) GetLead(leadID uuid.UUID) (*domain.Lead, error) {
	lead, err := s.leadRepo.GetLeadByID(leadID)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, ErrLeadNotFound
	}

	return lead, nil
}

func (s *Service) UpdateLead(leadID uuid.UUID, req *domain.UpdateLeadRequest) (*domain.Lead, error) {
	lead, err := s.leadRepo.GetLeadByID(leadID)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, ErrLeadNotFound
	}

	if req.Name != nil {
		lead.Name = *req.Name
	}

	if req.City != nil {
		lead.City = *req.City
	}

	if req.CuisineType != nil {
		lead.CuisineType = *req.CuisineType
	}

	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, ErrInvalidStatus
		}
		lead.Status = *req.Status
	}

	if req.CallFrequency != nil {
		if *req.CallFrequency < 1 {
			return nil, ErrInvalidFrequency
		}
		lead.CallFrequency = *req.CallFrequency
	}

	if req.KamID != nil {
		kamExists, err := s.userRepo.ExistsByID(*req.KamID)
		if err != nil {
			return nil, err
		}
		if !kamExists {
			return nil, ErrKamNotFound
		}
		lead.KamID = *req.KamID
	}

	if err := s.leadRepo.UpdateLead(lead); err != nil {
		return nil, err
	}

	return lead, nil
}

func (s *Service) UpdateStatus(leadID uuid.UUID, status domain.LeadStatus) (*domain.Lead, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	return s.UpdateLead(leadID, &domain.UpdateLeadRequest{Status: &status})
}

// DeleteLead remove o lead junto com seus agendamentos e métricas. As
// interações permanecem como registro histórico.
func (s *Service) DeleteLead(leadID uuid.UUID) error {
	lead, err := s.leadRepo.GetLeadByID(leadID)
	if err != nil {
		return err
	}
	if lead == nil {
		return ErrLeadNotFound
	}

	return s.leadRepo.DeleteLead(leadID)
}

// ListLeads aplica os filtros combinados sobre a carteira do KAM. Cada
// filtro ausente simplesmente não restringe o resultado; a contagem total
// usa o mesmo predicado da página.
func (s *Service) ListLeads(kamID uuid.UUID, filters domain.LeadFilters, page domain.Pagination) (*domain.LeadPage, error) {
	kamExists, err := s.userRepo.ExistsByID(kamID)
	if err != nil {
		return nil, err
	}
	if !kamExists {
		return nil, ErrKamNotFound
	}

	for _, status := range filters.Statuses {
		if !status.IsValid() {
			return nil, ErrInvalidStatus
		}
	}

	leads, total, err := s.leadRepo.FindLeadsWithFilters(kamID, filters, page)
	if err != nil {
		return nil, err
	}

	return &domain.LeadPage{
		Leads:      leads,
		TotalCount: total,
		Page:       page.Page,
		PerPage:    page.Limit(),
	}, nil
}

// LeadsRequiringCalls devolve os leads ativos do KAM cuja próxima data de
// ligação já chegou, ordenados pela data projetada
func (s *Service) LeadsRequiringCalls(kamID uuid.UUID) ([]*domain.Lead, error) {
	leads, err := s.leadRepo.FindActiveLeadsByKam(kamID)
	if err != nil {
		return nil, err
	}

	today := s.now()
	due := make([]*domain.Lead, 0)
	for _, lead := range leads {
		if scheduling.IsDueToday(lead, today) {
			due = append(due, lead)
		}
	}

	return due, nil
}

func (s *Service) NextCallDate(leadID uuid.UUID) (time.Time, error) {
	lead, err := s.GetLead(leadID)
	if err != nil {
		return time.Time{}, err
	}

	return scheduling.NextCallDate(lead.LastCallDate, lead.CallFrequency, s.now()), nil
}

// Summary resume a carteira do KAM. As contagens simples saem do banco;
// quem precisa de ligação hoje depende da regra de cadência e é contado
// em memória sobre os leads ativos.
func (s *Service) Summary(kamID uuid.UUID) (*domain.LeadSummary, error) {
	kamExists, err := s.userRepo.ExistsByID(kamID)
	if err != nil {
		return nil, err
	}
	if !kamExists {
		return nil, ErrKamNotFound
	}

	summary, err := s.leadRepo.GetLeadSummary(kamID)
	if err != nil {
		return nil, err
	}

	due, err := s.LeadsRequiringCalls(kamID)
	if err != nil {
		return nil, err
	}
	summary.LeadsRequiringCalls = int64(len(due))

	return summary, nil
}
