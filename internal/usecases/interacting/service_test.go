package interacting

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/lead-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/lead-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func newTestService(ctrl *gomock.Controller) (*Service, *mocks.MockInteractionRepository, *mocks.MockLeadRepository, *mocks.MockUserRepository) {
	interactionRepo := mocks.NewMockInteractionRepository(ctrl)
	leadRepo := mocks.NewMockLeadRepository(ctrl)
	userRepo := mocks.NewMockUserRepository(ctrl)

	service := &Service{
		interactionRepo: interactionRepo,
		leadRepo:        leadRepo,
		userRepo:        userRepo,
		now:             func() time.Time { return testNow },
	}

	return service, interactionRepo, leadRepo, userRepo
}

func TestRegisterInteraction(t *testing.T) {
	kamID := uuid.New()
	leadID := uuid.New()

	t.Run("Data da interação vem do relógio do servidor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, interactionRepo, leadRepo, userRepo := newTestService(ctrl)

		userRepo.EXPECT().ExistsByID(kamID).Return(true, nil)
		leadRepo.EXPECT().ExistsByID(leadID).Return(true, nil)
		interactionRepo.EXPECT().
			CreateInteraction(gomock.Any()).
			DoAndReturn(func(interaction *domain.Interaction) (*domain.Interaction, error) {
				interaction.ID = uuid.New()
				return interaction, nil
			})

		contactID := uuid.New()
		interaction, err := service.RegisterInteraction(&domain.CreateInteractionRequest{
			LeadID:    leadID,
			ContactID: &contactID,
			KamID:     kamID,
			Type:      domain.InteractionTypeEmail,
			Status:    domain.InteractionStatusCompleted,
		})

		require.NoError(t, err)
		assert.Equal(t, testNow, interaction.InteractionDate)
		require.NotNil(t, interaction.ContactID)
		assert.Equal(t, contactID, *interaction.ContactID)
	})

	t.Run("Ligação concluída atualiza a última ligação do lead", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, interactionRepo, leadRepo, userRepo := newTestService(ctrl)

		userRepo.EXPECT().ExistsByID(kamID).Return(true, nil)
		leadRepo.EXPECT().ExistsByID(leadID).Return(true, nil)
		interactionRepo.EXPECT().
			CreateInteraction(gomock.Any()).
			DoAndReturn(func(interaction *domain.Interaction) (*domain.Interaction, error) {
				return interaction, nil
			})

		expectedDate := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
		leadRepo.EXPECT().
			UpdateLastCallDate(leadID, sql.NullTime{Time: expectedDate, Valid: true}).
			Return(nil)

		_, err := service.RegisterInteraction(&domain.CreateInteractionRequest{
			LeadID: leadID,
			KamID:  kamID,
			Type:   domain.InteractionTypeCall,
			Status: domain.InteractionStatusCompleted,
		})

		require.NoError(t, err)
	})

	t.Run("Ligação pendente não toca o lead", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, interactionRepo, leadRepo, userRepo := newTestService(ctrl)

		userRepo.EXPECT().ExistsByID(kamID).Return(true, nil)
		leadRepo.EXPECT().ExistsByID(leadID).Return(true, nil)
		interactionRepo.EXPECT().
			CreateInteraction(gomock.Any()).
			DoAndReturn(func(interaction *domain.Interaction) (*domain.Interaction, error) {
				return interaction, nil
			})

		_, err := service.RegisterInteraction(&domain.CreateInteractionRequest{
			LeadID: leadID,
			KamID:  kamID,
			Type:   domain.InteractionTypeCall,
			Status: domain.InteractionStatusPending,
		})

		require.NoError(t, err)
	})

	t.Run("Valor negativo de pedido é rejeitado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, _, _ := newTestService(ctrl)

		negative := -10.0
		_, err := service.RegisterInteraction(&domain.CreateInteractionRequest{
			LeadID:     leadID,
			KamID:      kamID,
			Type:       domain.InteractionTypeOrder,
			Status:     domain.InteractionStatusCompleted,
			OrderValue: &negative,
		})
		assert.ErrorIs(t, err, ErrNegativeOrderValue)
	})

	t.Run("Pedido sem valor é rejeitado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, _, _ := newTestService(ctrl)

		_, err := service.RegisterInteraction(&domain.CreateInteractionRequest{
			LeadID: leadID,
			KamID:  kamID,
			Type:   domain.InteractionTypeOrder,
			Status: domain.InteractionStatusCompleted,
		})
		assert.ErrorIs(t, err, ErrMissingOrderValue)
	})

	t.Run("Tipo desconhecido é rejeitado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, _, _ := newTestService(ctrl)

		_, err := service.RegisterInteraction(&domain.CreateInteractionRequest{
			LeadID: leadID,
			KamID:  kamID,
			Type:   domain.InteractionType("WHATSAPP"),
			Status: domain.InteractionStatusCompleted,
		})
		assert.ErrorIs(t, err, ErrInvalidType)
	})
}

func TestUpdateInteraction(t *testing.T) {
	interactionID := uuid.New()

	t.Run("Correções não tocam tipo nem data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, interactionRepo, _, _ := newTestService(ctrl)

		originalDate := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
		interactionRepo.EXPECT().GetByID(interactionID).Return(&domain.Interaction{
			ID:              interactionID,
			Type:            domain.InteractionTypeOrder,
			Status:          domain.InteractionStatusPending,
			InteractionDate: originalDate,
		}, nil)
		interactionRepo.EXPECT().UpdateInteraction(gomock.Any()).Return(nil)

		newStatus := domain.InteractionStatusCompleted
		newValue := 350.0
		interaction, err := service.UpdateInteraction(interactionID, &domain.UpdateInteractionRequest{
			Status:     &newStatus,
			OrderValue: &newValue,
		})

		require.NoError(t, err)
		assert.Equal(t, domain.InteractionStatusCompleted, interaction.Status)
		assert.Equal(t, 350.0, *interaction.OrderValue)
		assert.Equal(t, originalDate, interaction.InteractionDate)
		assert.Equal(t, domain.InteractionTypeOrder, interaction.Type)
	})

	t.Run("Interação inexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, interactionRepo, _, _ := newTestService(ctrl)

		interactionRepo.EXPECT().GetByID(interactionID).Return(nil, nil)

		newStatus := domain.InteractionStatusCompleted
		_, err := service.UpdateInteraction(interactionID, &domain.UpdateInteractionRequest{
			Status: &newStatus,
		})
		assert.ErrorIs(t, err, ErrInteractionNotFound)
	})
}

func TestRecentActivity(t *testing.T) {
	leadID := uuid.New()

	t.Run("Lead sem interações produz resumo zerado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, interactionRepo, leadRepo, _ := newTestService(ctrl)

		since := testNow.AddDate(0, 0, -30)

		leadRepo.EXPECT().ExistsByID(leadID).Return(true, nil)
		interactionRepo.EXPECT().FindLatestByLead(leadID).Return(nil, nil)
		interactionRepo.EXPECT().CountByLeadSince(leadID, since).Return(int64(0), nil)
		interactionRepo.EXPECT().
			CountByLeadAndTypeSince(leadID, domain.InteractionTypeOrder, since).
			Return(int64(0), nil)
		interactionRepo.EXPECT().
			SumOrderValueByLeadAndRange(leadID, since, testNow).
			Return(0.0, nil)

		summary, err := service.RecentActivity(leadID)
		require.NoError(t, err)
		assert.Nil(t, summary.LatestInteractionID)
		assert.Zero(t, summary.TotalInteractions30d)
		assert.Zero(t, summary.TotalOrders30d)
		assert.Zero(t, summary.TotalOrderValue30d)
	})

	t.Run("Resumo com atividade na janela", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, interactionRepo, leadRepo, _ := newTestService(ctrl)

		since := testNow.AddDate(0, 0, -30)
		latestID := uuid.New()
		latestDate := time.Date(2024, 3, 12, 16, 0, 0, 0, time.UTC)

		leadRepo.EXPECT().ExistsByID(leadID).Return(true, nil)
		interactionRepo.EXPECT().FindLatestByLead(leadID).Return(&domain.Interaction{
			ID:              latestID,
			Type:            domain.InteractionTypeOrder,
			InteractionDate: latestDate,
		}, nil)
		interactionRepo.EXPECT().CountByLeadSince(leadID, since).Return(int64(8), nil)
		interactionRepo.EXPECT().
			CountByLeadAndTypeSince(leadID, domain.InteractionTypeOrder, since).
			Return(int64(3), nil)
		interactionRepo.EXPECT().
			SumOrderValueByLeadAndRange(leadID, since, testNow).
			Return(4200.0, nil)

		summary, err := service.RecentActivity(leadID)
		require.NoError(t, err)
		assert.Equal(t, latestID, *summary.LatestInteractionID)
		assert.Equal(t, "ORDER", summary.LatestInteractionType)
		assert.Equal(t, latestDate, *summary.LatestInteractionDate)
		assert.Equal(t, int64(8), summary.TotalInteractions30d)
		assert.Equal(t, int64(3), summary.TotalOrders30d)
		assert.Equal(t, 4200.0, summary.TotalOrderValue30d)
	})

	t.Run("Lead inexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, leadRepo, _ := newTestService(ctrl)

		leadRepo.EXPECT().ExistsByID(leadID).Return(false, nil)

		_, err := service.RecentActivity(leadID)
		assert.ErrorIs(t, err, ErrLeadNotFound)
	})
}

func TestInteractionsForKam(t *testing.T) {
	kamID := uuid.New()

	t.Run("Intervalo invertido é rejeitado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, _, _ := newTestService(ctrl)

		start := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

		_, err := service.InteractionsForKam(kamID, start, end, domain.Pagination{})
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})
}

func TestKamActivity(t *testing.T) {
	kamID := uuid.New()

	t.Run("Resumo conta interações por tipo nos últimos 30 dias", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, interactionRepo, _, userRepo := newTestService(ctrl)

		since := testNow.AddDate(0, 0, -30)

		userRepo.EXPECT().ExistsByID(kamID).Return(true, nil)
		interactionRepo.EXPECT().CountByKamAndTypeSince(kamID, domain.InteractionTypeCall, since).Return(int64(12), nil)
		interactionRepo.EXPECT().CountByKamAndTypeSince(kamID, domain.InteractionTypeOrder, since).Return(int64(4), nil)
		interactionRepo.EXPECT().CountByKamAndTypeSince(kamID, domain.InteractionTypeEmail, since).Return(int64(7), nil)
		interactionRepo.EXPECT().CountByKamAndTypeSince(kamID, domain.InteractionTypeMeeting, since).Return(int64(0), nil)

		summary, err := service.KamActivity(kamID)
		require.NoError(t, err)

		assert.Equal(t, kamID, summary.KamID)
		assert.Equal(t, since, summary.Since)
		assert.Equal(t, int64(12), summary.Calls)
		assert.Equal(t, int64(4), summary.Orders)
		assert.Equal(t, int64(7), summary.Emails)
		assert.Equal(t, int64(0), summary.Meetings)
	})

	t.Run("KAM inexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, _, userRepo := newTestService(ctrl)

		userRepo.EXPECT().ExistsByID(kamID).Return(false, nil)

		_, err := service.KamActivity(kamID)
		assert.ErrorIs(t, err, ErrKamNotFound)
	})
}
