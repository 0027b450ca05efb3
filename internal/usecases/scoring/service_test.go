package scoring

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/lead-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/lead-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2024, 3, 15, 11, 0, 0, 0, time.UTC)

func newTestService(ctrl *gomock.Controller) (*Service, *mocks.MockLeadRepository, *mocks.MockInteractionRepository, *mocks.MockPerformanceMetricRepository) {
	leadRepo := mocks.NewMockLeadRepository(ctrl)
	interactionRepo := mocks.NewMockInteractionRepository(ctrl)
	metricRepo := mocks.NewMockPerformanceMetricRepository(ctrl)

	service := &Service{
		leadRepo:        leadRepo,
		interactionRepo: interactionRepo,
		metricRepo:      metricRepo,
		now:             func() time.Time { return testNow },
	}

	return service, leadRepo, interactionRepo, metricRepo
}

func TestCalculateScore(t *testing.T) {
	tests := []struct {
		name            string
		totalOrderValue float64
		callCount       int64
		expected        float64
	}{
		{
			name:            "Sem atividade na janela",
			totalOrderValue: 0,
			callCount:       0,
			expected:        0,
		},
		{
			name:            "Pedidos e ligações combinados",
			totalOrderValue: 11000,
			callCount:       1,
			expected:        16.00,
		},
		{
			name:            "Apenas ligações",
			totalOrderValue: 0,
			callCount:       4,
			expected:        20.00,
		},
		{
			name:            "Fração de milhar arredondada em duas casas",
			totalOrderValue: 1234.56,
			callCount:       2,
			expected:        11.23,
		},
		{
			name:            "Pontuação limitada a cem",
			totalOrderValue: 500000,
			callCount:       50,
			expected:        100.00,
		},
		{
			name:            "Exatamente no teto",
			totalOrderValue: 100000,
			callCount:       0,
			expected:        100.00,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CalculateScore(tt.totalOrderValue, tt.callCount))
		})
	}
}

func TestRecomputeScore(t *testing.T) {
	leadID := uuid.New()
	since := testNow.AddDate(0, 0, -90)

	t.Run("Recalcula, persiste no lead e grava o retrato diário", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, leadRepo, interactionRepo, metricRepo := newTestService(ctrl)

		leadRepo.EXPECT().GetLeadByID(leadID).Return(&domain.Lead{
			ID:     leadID,
			Status: domain.LeadStatusNegotiating,
		}, nil)
		interactionRepo.EXPECT().
			SumOrderValueByLeadAndRange(leadID, since, testNow).
			Return(11000.0, nil)
		interactionRepo.EXPECT().
			CountByLeadAndTypeSince(leadID, domain.InteractionTypeCall, since).
			Return(int64(1), nil)
		leadRepo.EXPECT().UpdatePerformanceScore(leadID, 16.00).Return(nil)

		metricRepo.EXPECT().
			UpsertMetric(gomock.Any()).
			DoAndReturn(func(metric *domain.PerformanceMetric) error {
				assert.Equal(t, leadID, metric.LeadID)
				assert.Equal(t, 16.00, metric.MetricValue)
				assert.Equal(t, domain.PeriodTypeDaily, metric.PeriodType)
				assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), metric.MetricDate)
				return nil
			})

		score, err := service.RecomputeScore(leadID)
		require.NoError(t, err)
		assert.Equal(t, 16.00, score)
	})

	t.Run("Lead sem histórico pontua zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, leadRepo, interactionRepo, metricRepo := newTestService(ctrl)

		leadRepo.EXPECT().GetLeadByID(leadID).Return(&domain.Lead{ID: leadID}, nil)
		interactionRepo.EXPECT().
			SumOrderValueByLeadAndRange(leadID, since, testNow).
			Return(0.0, nil)
		interactionRepo.EXPECT().
			CountByLeadAndTypeSince(leadID, domain.InteractionTypeCall, since).
			Return(int64(0), nil)
		leadRepo.EXPECT().UpdatePerformanceScore(leadID, 0.0).Return(nil)
		metricRepo.EXPECT().UpsertMetric(gomock.Any()).Return(nil)

		score, err := service.RecomputeScore(leadID)
		require.NoError(t, err)
		assert.Zero(t, score)
	})

	t.Run("Lead inexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, leadRepo, _, _ := newTestService(ctrl)

		leadRepo.EXPECT().GetLeadByID(leadID).Return(nil, nil)

		_, err := service.RecomputeScore(leadID)
		assert.ErrorIs(t, err, ErrLeadNotFound)
	})
}

func TestKamPerformance(t *testing.T) {
	kamID := uuid.New()
	since := testNow.AddDate(0, 0, -90)

	t.Run("Um item por lead ativo da carteira", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, leadRepo, interactionRepo, _ := newTestService(ctrl)

		leadA := &domain.Lead{ID: uuid.New(), Name: "Cantina da Praça", PerformanceScore: 42.5}
		leadB := &domain.Lead{ID: uuid.New(), Name: "Sushi do Porto", PerformanceScore: 12.0}

		leadRepo.EXPECT().FindActiveLeadsByKam(kamID).Return([]*domain.Lead{leadA, leadB}, nil)

		interactionRepo.EXPECT().CountByLeadSince(leadA.ID, since).Return(int64(10), nil)
		interactionRepo.EXPECT().SumOrderValueByLeadAndRange(leadA.ID, since, testNow).Return(30000.0, nil)
		interactionRepo.EXPECT().AverageOrderValueByLead(leadA.ID).Return(3000.0, nil)

		interactionRepo.EXPECT().CountByLeadSince(leadB.ID, since).Return(int64(2), nil)
		interactionRepo.EXPECT().SumOrderValueByLeadAndRange(leadB.ID, since, testNow).Return(0.0, nil)
		interactionRepo.EXPECT().AverageOrderValueByLead(leadB.ID).Return(0.0, nil)

		report, err := service.KamPerformance(kamID)
		require.NoError(t, err)
		require.Len(t, report, 2)

		assert.Equal(t, "Cantina da Praça", report[0].LeadName)
		assert.Equal(t, 42.5, report[0].PerformanceScore)
		assert.Equal(t, int64(10), report[0].TotalInteractions)
		assert.Equal(t, 30000.0, report[0].TotalOrderValue)
		assert.Equal(t, 3000.0, report[0].AverageOrderValue)

		assert.Equal(t, "Sushi do Porto", report[1].LeadName)
		assert.Zero(t, report[1].TotalOrderValue)
	})

	t.Run("Carteira vazia produz relatório vazio", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, leadRepo, _, _ := newTestService(ctrl)

		leadRepo.EXPECT().FindActiveLeadsByKam(kamID).Return([]*domain.Lead{}, nil)

		report, err := service.KamPerformance(kamID)
		require.NoError(t, err)
		assert.Empty(t, report)
	})
}
