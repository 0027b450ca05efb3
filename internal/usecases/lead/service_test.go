package lead

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

var testNow = time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)

func newTestService(ctrl *gomock.Controller) (*Service, *mocks.MockLeadRepository, *mocks.MockUserRepository) {
	leadRepo := mocks.NewMockLeadRepository(ctrl)
	userRepo := mocks.NewMockUserRepository(ctrl)

	service := &Service{
		leadRepo: leadRepo,
		userRepo: userRepo,
		now:      func() time.Time { return testNow },
	}

	return service, leadRepo, userRepo
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestCreateLead(t *testing.T) {
	kamID := uuid.New()

	t.Run("Lead válido nasce com status NEW por padrão", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, leadRepo, userRepo := newTestService(ctrl)

		userRepo.EXPECT().ExistsByID(kamID).Return(true, nil)
		leadRepo.EXPECT().
			CreateLead(gomock.Any()).
			DoAndReturn(func(lead *domain.Lead) (*domain.Lead, error) {
				lead.ID = uuid.New()
				return lead, nil
			})

		lead, err := service.CreateLead(&domain.CreateLeadRequest{
			Name:          "Trattoria Bella",
			City:          "São Paulo",
			CuisineType:   "Italiana",
			KamID:         kamID,
			CallFrequency: 7,
		})

		require.NoError(t, err)
		assert.Equal(t, domain.LeadStatusNew, lead.Status)
		assert.Nil(t, lead.LastCallDate)
	})

	t.Run("Frequência menor que um dia é rejeitada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, _ := newTestService(ctrl)

		for _, frequency := range []int{0, -3} {
			_, err := service.CreateLead(&domain.CreateLeadRequest{
				Name:          "Trattoria Bella",
				City:          "São Paulo",
				KamID:         kamID,
				CallFrequency: frequency,
			})
			assert.ErrorIs(t, err, ErrInvalidFrequency)
		}
	})

	t.Run("Status desconhecido é rejeitado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, _ := newTestService(ctrl)

		_, err := service.CreateLead(&domain.CreateLeadRequest{
			Name:          "Trattoria Bella",
			City:          "São Paulo",
			KamID:         kamID,
			CallFrequency: 7,
			Status:        domain.LeadStatus("HOT"),
		})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("KAM inexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, userRepo := newTestService(ctrl)

		userRepo.EXPECT().ExistsByID(kamID).Return(false, nil)

		_, err := service.CreateLead(&domain.CreateLeadRequest{
			Name:          "Trattoria Bella",
			City:          "São Paulo",
			KamID:         kamID,
			CallFrequency: 7,
		})
		assert.ErrorIs(t, err, ErrKamNotFound)
	})

	t.Run("Campos obrigatórios ausentes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, _ := newTestService(ctrl)

		_, err := service.CreateLead(&domain.CreateLeadRequest{
			City:          "São Paulo",
			KamID:         kamID,
			CallFrequency: 7,
		})
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})
}

func TestUpdateLead(t *testing.T) {
	leadID := uuid.New()

	t.Run("Atualização parcial preserva os demais campos", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, leadRepo, _ := newTestService(ctrl)

		leadRepo.EXPECT().GetLeadByID(leadID).Return(&domain.Lead{
			ID:            leadID,
			Name:          "Trattoria Bella",
			City:          "São Paulo",
			Status:        domain.LeadStatusNew,
			CallFrequency: 7,
		}, nil)
		leadRepo.EXPECT().UpdateLead(gomock.Any()).Return(nil)

		newStatus := domain.LeadStatusNegotiating
		newFrequency := 3
		lead, err := service.UpdateLead(leadID, &domain.UpdateLeadRequest{
			Status:        &newStatus,
			CallFrequency: &newFrequency,
		})

		require.NoError(t, err)
		assert.Equal(t, "Trattoria Bella", lead.Name)
		assert.Equal(t, domain.LeadStatusNegotiating, lead.Status)
		assert.Equal(t, 3, lead.CallFrequency)
	})

	t.Run("Reatribuir para KAM inexistente é rejeitado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, leadRepo, userRepo := newTestService(ctrl)

		leadRepo.EXPECT().GetLeadByID(leadID).Return(&domain.Lead{ID: leadID}, nil)

		otherKam := uuid.New()
		userRepo.EXPECT().ExistsByID(otherKam).Return(false, nil)

		_, err := service.UpdateLead(leadID, &domain.UpdateLeadRequest{KamID: &otherKam})
		assert.ErrorIs(t, err, ErrKamNotFound)
	})

	t.Run("Lead inexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, leadRepo, _ := newTestService(ctrl)

		leadRepo.EXPECT().GetLeadByID(leadID).Return(nil, nil)

		name := "Outro Nome"
		_, err := service.UpdateLead(leadID, &domain.UpdateLeadRequest{Name: &name})
		assert.ErrorIs(t, err, ErrLeadNotFound)
	})
}

func TestLeadsRequiringCalls(t *testing.T) {
	kamID := uuid.New()

	t.Run("Apenas leads com cadência vencida entram na lista", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, leadRepo, _ := newTestService(ctrl)

		neverCalled := &domain.Lead{
			ID:            uuid.New(),
			Name:          "Nunca Ligado",
			Status:        domain.LeadStatusNew,
			CallFrequency: 7,
		}
		overdue := &domain.Lead{
			ID:            uuid.New(),
			Name:          "Atrasado",
			Status:        domain.LeadStatusContacted,
			CallFrequency: 7,
			LastCallDate:  timePtr(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
		}
		upToDate := &domain.Lead{
			ID:            uuid.New(),
			Name:          "Em Dia",
			Status:        domain.LeadStatusContacted,
			CallFrequency: 7,
			LastCallDate:  timePtr(time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)),
		}

		leadRepo.EXPECT().
			FindActiveLeadsByKam(kamID).
			Return([]*domain.Lead{neverCalled, overdue, upToDate}, nil)

		due, err := service.LeadsRequiringCalls(kamID)
		require.NoError(t, err)
		require.Len(t, due, 2)
		assert.Equal(t, "Nunca Ligado", due[0].Name)
		assert.Equal(t, "Atrasado", due[1].Name)
	})
}

func TestSummary(t *testing.T) {
	kamID := uuid.New()

	t.Run("Contagem de ligações pendentes vem da cadência", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, leadRepo, userRepo := newTestService(ctrl)

		userRepo.EXPECT().ExistsByID(kamID).Return(true, nil)
		leadRepo.EXPECT().GetLeadSummary(kamID).Return(&domain.LeadSummary{
			TotalLeads:              10,
			ActiveLeads:             8,
			AveragePerformanceScore: 35.2,
		}, nil)
		leadRepo.EXPECT().FindActiveLeadsByKam(kamID).Return([]*domain.Lead{
			{Status: domain.LeadStatusNew, CallFrequency: 7},
			{
				Status:        domain.LeadStatusContacted,
				CallFrequency: 7,
				LastCallDate:  timePtr(time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)),
			},
		}, nil)

		summary, err := service.Summary(kamID)
		require.NoError(t, err)
		assert.Equal(t, int64(10), summary.TotalLeads)
		assert.Equal(t, int64(8), summary.ActiveLeads)
		assert.Equal(t, int64(1), summary.LeadsRequiringCalls)
		assert.Equal(t, 35.2, summary.AveragePerformanceScore)
	})
}

func TestListLeads(t *testing.T) {
	kamID := uuid.New()

	t.Run("Filtros são repassados e o total acompanha a página", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, leadRepo, userRepo := newTestService(ctrl)

		filters := domain.LeadFilters{
			SearchTerm: "pizza",
			Statuses:   []domain.LeadStatus{domain.LeadStatusInterested},
			City:       "Curitiba",
		}
		page := domain.Pagination{Page: 2, PerPage: 10}

		userRepo.EXPECT().ExistsByID(kamID).Return(true, nil)
		leadRepo.EXPECT().
			FindLeadsWithFilters(kamID, filters, page).
			Return([]*domain.Lead{{Name: "Pizzaria Centro"}}, int64(11), nil)

		result, err := service.ListLeads(kamID, filters, page)
		require.NoError(t, err)
		assert.Len(t, result.Leads, 1)
		assert.Equal(t, int64(11), result.TotalCount)
		assert.Equal(t, 2, result.Page)
		assert.Equal(t, 10, result.PerPage)
	})

	t.Run("Status de filtro desconhecido é rejeitado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, userRepo := newTestService(ctrl)

		userRepo.EXPECT().ExistsByID(kamID).Return(true, nil)

		_, err := service.ListLeads(kamID, domain.LeadFilters{
			Statuses: []domain.LeadStatus{domain.LeadStatus("HOT")},
		}, domain.Pagination{})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}
