package scoring

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/lead-manager-api/infrastructure/repository"
	"github.com/vfg2006/lead-manager-api/internal/domain"
	"github.com/vfg2006/lead-manager-api/pkg/utils"
)

const (
	// Janela móvel, em dias, usada no cálculo da pontuação
	scoringWindowDays = 90

	// Pesos da fórmula de pontuação
	orderValueDivisor = 1000.0
	callWeight        = 5.0
	maxScore          = 100.0
)

type Scorer interface {
	RecomputeScore(leadID uuid.UUID) (float64, error)
	LeadPerformance(leadID uuid.UUID) (*domain.LeadPerformance, error)
	KamPerformance(kamID uuid.UUID) ([]*domain.LeadPerformance, error)
	ScoreHistory(leadID uuid.UUID, periodType domain.PeriodType, limit int) ([]*domain.PerformanceMetric, error)
}

type Service struct {
	leadRepo        repository.LeadRepository
	interactionRepo repository.InteractionRepository
	metricRepo      repository.PerformanceMetricRepository
	now             func() time.Time
}

func NewService(
	leadRepo repository.LeadRepository,
	interactionRepo repository.InteractionRepository,
	metricRepo repository.PerformanceMetricRepository,
) Scorer {
	return &Service{
		leadRepo:        leadRepo,
		interactionRepo: interactionRepo,
		metricRepo:      metricRepo,
		now:             time.Now,
	}
}

// CalculateScore aplica a fórmula de pontuação sobre os agregados da
// janela: um ponto a cada mil em pedidos mais cinco pontos por ligação,
// limitado a cem e arredondado em duas casas.
func CalculateScore(totalOrderValue float64, callCount int64) float64 {
	score := totalOrderValue/orderValueDivisor + float64(callCount)*callWeight
	if score > maxScore {
		score = maxScore
	}

	return utils.RoundWithTwoDecimalPlace(score)
}

// RecomputeScore recalcula a pontuação do lead sobre a janela móvel de 90
// dias, persiste o novo valor no lead e grava o retrato diário na série
// histórica. A pontuação só muda quando alguém pede o recálculo.
func (s *Service) RecomputeScore(leadID uuid.UUID) (float64, error) {
	lead, err := s.leadRepo.GetLeadByID(leadID)
	if err != nil {
		return 0, err
	}
	if lead == nil {
		return 0, ErrLeadNotFound
	}

	now := s.now()
	since := now.AddDate(0, 0, -scoringWindowDays)

	totalOrderValue, err := s.interactionRepo.SumOrderValueByLeadAndRange(leadID, since, now)
	if err != nil {
		return 0, err
	}

	callCount, err := s.interactionRepo.CountByLeadAndTypeSince(leadID, domain.InteractionTypeCall, since)
	if err != nil {
		return 0, err
	}

	score := CalculateScore(totalOrderValue, callCount)

	if err := s.leadRepo.UpdatePerformanceScore(leadID, score); err != nil {
		return 0, err
	}

	metric := &domain.PerformanceMetric{
		LeadID:      leadID,
		MetricDate:  time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		MetricValue: score,
		PeriodType:  domain.PeriodTypeDaily,
	}
	if err := s.metricRepo.UpsertMetric(metric); err != nil {
		logrus.WithField("lead_id", leadID).Error("erro ao gravar métrica de performance: ", err)
		return 0, err
	}

	return score, nil
}

func (s *Service) LeadPerformance(leadID uuid.UUID) (*domain.LeadPerformance, error) {
	lead, err := s.leadRepo.GetLeadByID(leadID)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, ErrLeadNotFound
	}

	return s.buildLeadPerformance(lead)
}

// KamPerformance monta o relatório de desempenho da carteira ativa de um
// KAM, um item por lead
func (s *Service) KamPerformance(kamID uuid.UUID) ([]*domain.LeadPerformance, error) {
	leads, err := s.leadRepo.FindActiveLeadsByKam(kamID)
	if err != nil {
		return nil, err
	}

	report := make([]*domain.LeadPerformance, 0, len(leads))
	for _, lead := range leads {
		performance, err := s.buildLeadPerformance(lead)
		if err != nil {
			return nil, err
		}
		report = append(report, performance)
	}

	return report, nil
}

func (s *Service) ScoreHistory(leadID uuid.UUID, periodType domain.PeriodType, limit int) ([]*domain.PerformanceMetric, error) {
	lead, err := s.leadRepo.GetLeadByID(leadID)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, ErrLeadNotFound
	}

	return s.metricRepo.FindByLead(leadID, periodType, limit)
}

func (s *Service) buildLeadPerformance(lead *domain.Lead) (*domain.LeadPerformance, error) {
	now := s.now()
	since := now.AddDate(0, 0, -scoringWindowDays)

	totalInteractions, err := s.interactionRepo.CountByLeadSince(lead.ID, since)
	if err != nil {
		return nil, err
	}

	totalOrderValue, err := s.interactionRepo.SumOrderValueByLeadAndRange(lead.ID, since, now)
	if err != nil {
		return nil, err
	}

	averageOrderValue, err := s.interactionRepo.AverageOrderValueByLead(lead.ID)
	if err != nil {
		return nil, err
	}

	return &domain.LeadPerformance{
		LeadID:            lead.ID,
		LeadName:          lead.Name,
		PerformanceScore:  lead.PerformanceScore,
		TotalInteractions: totalInteractions,
		TotalOrderValue:   utils.RoundWithTwoDecimalPlace(totalOrderValue),
		AverageOrderValue: utils.RoundWithTwoDecimalPlace(averageOrderValue),
	}, nil
}
