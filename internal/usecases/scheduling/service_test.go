package scheduling

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

var testToday = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

func newTestService(ctrl *gomock.Controller) (*Service, *mocks.MockCallScheduleRepository, *mocks.MockLeadRepository, *mocks.MockUserRepository) {
	scheduleRepo := mocks.NewMockCallScheduleRepository(ctrl)
	leadRepo := mocks.NewMockLeadRepository(ctrl)
	userRepo := mocks.NewMockUserRepository(ctrl)

	service := &Service{
		scheduleRepo: scheduleRepo,
		leadRepo:     leadRepo,
		userRepo:     userRepo,
		now:          func() time.Time { return testToday },
	}

	return service, scheduleRepo, leadRepo, userRepo
}

func TestCreateSchedule(t *testing.T) {
	kamID := uuid.New()
	leadID := uuid.New()

	t.Run("Agendamento válido é criado como PENDING", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, scheduleRepo, leadRepo, userRepo := newTestService(ctrl)

		userRepo.EXPECT().ExistsByID(kamID).Return(true, nil)
		leadRepo.EXPECT().ExistsByID(leadID).Return(true, nil)
		scheduleRepo.EXPECT().
			CreateCallSchedule(gomock.Any()).
			DoAndReturn(func(schedule *domain.CallSchedule) (*domain.CallSchedule, error) {
				schedule.ID = uuid.New()
				return schedule, nil
			})

		schedule, err := service.CreateSchedule(&domain.CreateCallScheduleRequest{
			KamID:         kamID,
			LeadID:        leadID,
			ScheduledDate: time.Date(2024, 3, 20, 15, 45, 0, 0, time.UTC),
			Priority:      2,
		})

		require.NoError(t, err)
		assert.Equal(t, domain.CallStatusPending, schedule.Status)
		assert.Equal(t, time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC), schedule.ScheduledDate)
		assert.Equal(t, 2, schedule.Priority)
	})

	t.Run("Prioridade omitida assume o padrão 3", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, scheduleRepo, leadRepo, userRepo := newTestService(ctrl)

		userRepo.EXPECT().ExistsByID(kamID).Return(true, nil)
		leadRepo.EXPECT().ExistsByID(leadID).Return(true, nil)
		scheduleRepo.EXPECT().
			CreateCallSchedule(gomock.Any()).
			DoAndReturn(func(schedule *domain.CallSchedule) (*domain.CallSchedule, error) {
				schedule.ID = uuid.New()
				return schedule, nil
			})

		schedule, err := service.CreateSchedule(&domain.CreateCallScheduleRequest{
			KamID:         kamID,
			LeadID:        leadID,
			ScheduledDate: testToday,
		})

		require.NoError(t, err)
		assert.Equal(t, domain.CallStatusPending, schedule.Status)
		assert.Equal(t, domain.DefaultCallPriority, schedule.Priority)
	})

	t.Run("Prioridade fora do intervalo é rejeitada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, _, _ := newTestService(ctrl)

		for _, priority := range []int{6, -1} {
			_, err := service.CreateSchedule(&domain.CreateCallScheduleRequest{
				KamID:         kamID,
				LeadID:        leadID,
				ScheduledDate: testToday,
				Priority:      priority,
			})
			assert.ErrorIs(t, err, ErrInvalidPriority)
		}
	})

	t.Run("KAM inexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, _, userRepo := newTestService(ctrl)

		userRepo.EXPECT().ExistsByID(kamID).Return(false, nil)

		_, err := service.CreateSchedule(&domain.CreateCallScheduleRequest{
			KamID:         kamID,
			LeadID:        leadID,
			ScheduledDate: testToday,
			Priority:      3,
		})
		assert.ErrorIs(t, err, ErrKamNotFound)
	})

	t.Run("Lead inexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, leadRepo, userRepo := newTestService(ctrl)

		userRepo.EXPECT().ExistsByID(kamID).Return(true, nil)
		leadRepo.EXPECT().ExistsByID(leadID).Return(false, nil)

		_, err := service.CreateSchedule(&domain.CreateCallScheduleRequest{
			KamID:         kamID,
			LeadID:        leadID,
			ScheduledDate: testToday,
			Priority:      3,
		})
		assert.ErrorIs(t, err, ErrLeadNotFound)
	})
}

func TestCompleteCall(t *testing.T) {
	scheduleID := uuid.New()
	leadID := uuid.New()

	t.Run("Concluir ligação projeta próxima data e atualiza o lead", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, scheduleRepo, leadRepo, _ := newTestService(ctrl)

		scheduleRepo.EXPECT().GetByID(scheduleID).Return(&domain.CallSchedule{
			ID:            scheduleID,
			LeadID:        leadID,
			Status:        domain.CallStatusPending,
			ScheduledDate: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		}, nil)
		leadRepo.EXPECT().GetLeadByID(leadID).Return(&domain.Lead{
			ID:            leadID,
			Status:        domain.LeadStatusContacted,
			CallFrequency: 7,
		}, nil)

		var savedSchedule *domain.CallSchedule
		var savedLead *domain.Lead
		scheduleRepo.EXPECT().
			SaveTransition(gomock.Any(), gomock.Any()).
			DoAndReturn(func(schedule *domain.CallSchedule, lead *domain.Lead) error {
				savedSchedule = schedule
				savedLead = lead
				return nil
			})

		schedule, err := service.CompleteCall(scheduleID)
		require.NoError(t, err)

		today := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
		expectedNext := time.Date(2024, 3, 22, 0, 0, 0, 0, time.UTC)

		assert.Equal(t, domain.CallStatusCompleted, schedule.Status)
		require.NotNil(t, schedule.NextScheduledDate)
		assert.Equal(t, expectedNext, *schedule.NextScheduledDate)

		require.NotNil(t, savedLead.LastCallDate)
		assert.Equal(t, today, *savedLead.LastCallDate)
		assert.Same(t, schedule, savedSchedule)
	})

	t.Run("Concluir duas vezes gera conflito", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, scheduleRepo, _, _ := newTestService(ctrl)

		scheduleRepo.EXPECT().GetByID(scheduleID).Return(&domain.CallSchedule{
			ID:     scheduleID,
			LeadID: leadID,
			Status: domain.CallStatusCompleted,
		}, nil)

		_, err := service.CompleteCall(scheduleID)
		assert.ErrorIs(t, err, ErrScheduleTerminal)
	})

	t.Run("Agendamento inexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, scheduleRepo, _, _ := newTestService(ctrl)

		scheduleRepo.EXPECT().GetByID(scheduleID).Return(nil, nil)

		_, err := service.CompleteCall(scheduleID)
		assert.ErrorIs(t, err, ErrScheduleNotFound)
	})
}

func TestMissAndBusy(t *testing.T) {
	scheduleID := uuid.New()

	tests := []struct {
		name     string
		call     func(s *Service) (*domain.CallSchedule, error)
		expected domain.CallStatus
	}{
		{
			name:     "Ligação não atendida vira NO_ANSWER",
			call:     func(s *Service) (*domain.CallSchedule, error) { return s.MissCall(scheduleID) },
			expected: domain.CallStatusNoAnswer,
		},
		{
			name:     "Linha ocupada vira BUSY",
			call:     func(s *Service) (*domain.CallSchedule, error) { return s.MarkBusy(scheduleID) },
			expected: domain.CallStatusBusy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, scheduleRepo, _, _ := newTestService(ctrl)

			scheduleRepo.EXPECT().GetByID(scheduleID).Return(&domain.CallSchedule{
				ID:     scheduleID,
				Status: domain.CallStatusPending,
			}, nil)
			scheduleRepo.EXPECT().UpdateCallSchedule(gomock.Any()).Return(nil)

			schedule, err := tt.call(service)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, schedule.Status)
			assert.Nil(t, schedule.NextScheduledDate)
		})
	}
}

func TestRescheduleCall(t *testing.T) {
	scheduleID := uuid.New()

	t.Run("Reagendar para data futura", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, scheduleRepo, _, _ := newTestService(ctrl)

		scheduleRepo.EXPECT().GetByID(scheduleID).Return(&domain.CallSchedule{
			ID:            scheduleID,
			Status:        domain.CallStatusNoAnswer,
			ScheduledDate: time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC),
		}, nil)
		scheduleRepo.EXPECT().UpdateCallSchedule(gomock.Any()).Return(nil)

		schedule, err := service.RescheduleCall(scheduleID, time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Equal(t, domain.CallStatusRescheduled, schedule.Status)
		assert.Equal(t, time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC), schedule.ScheduledDate)
		require.NotNil(t, schedule.NextScheduledDate)
		assert.Equal(t, time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC), *schedule.NextScheduledDate)
	})

	t.Run("Reagendar para hoje é permitido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, scheduleRepo, _, _ := newTestService(ctrl)

		scheduleRepo.EXPECT().GetByID(scheduleID).Return(&domain.CallSchedule{
			ID:     scheduleID,
			Status: domain.CallStatusPending,
		}, nil)
		scheduleRepo.EXPECT().UpdateCallSchedule(gomock.Any()).Return(nil)

		schedule, err := service.RescheduleCall(scheduleID, testToday)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), schedule.ScheduledDate)
	})

	t.Run("Data no passado é rejeitada sem alterar o registro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, scheduleRepo, _, _ := newTestService(ctrl)

		scheduleRepo.EXPECT().GetByID(scheduleID).Return(&domain.CallSchedule{
			ID:            scheduleID,
			Status:        domain.CallStatusPending,
			ScheduledDate: time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC),
		}, nil)

		_, err := service.RescheduleCall(scheduleID, time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC))
		assert.ErrorIs(t, err, ErrPastRescheduleDate)
	})

	t.Run("Agendamento finalizado não reagenda", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, scheduleRepo, _, _ := newTestService(ctrl)

		scheduleRepo.EXPECT().GetByID(scheduleID).Return(&domain.CallSchedule{
			ID:     scheduleID,
			Status: domain.CallStatusCancelled,
		}, nil)

		_, err := service.RescheduleCall(scheduleID, time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC))
		assert.ErrorIs(t, err, ErrScheduleTerminal)
	})
}

func TestCancelCall(t *testing.T) {
	scheduleID := uuid.New()

	t.Run("Cancelar pendente grava CANCELLED", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, scheduleRepo, _, _ := newTestService(ctrl)

		scheduleRepo.EXPECT().GetByID(scheduleID).Return(&domain.CallSchedule{
			ID:     scheduleID,
			Status: domain.CallStatusPending,
		}, nil)
		scheduleRepo.EXPECT().UpdateCallSchedule(gomock.Any()).Return(nil)

		schedule, err := service.CancelCall(scheduleID)
		require.NoError(t, err)
		assert.Equal(t, domain.CallStatusCancelled, schedule.Status)
	})

	t.Run("Cancelar reagendada limpa a próxima data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, scheduleRepo, _, _ := newTestService(ctrl)

		nextDate := time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC)
		scheduleRepo.EXPECT().GetByID(scheduleID).Return(&domain.CallSchedule{
			ID:                scheduleID,
			Status:            domain.CallStatusRescheduled,
			NextScheduledDate: &nextDate,
		}, nil)
		scheduleRepo.EXPECT().UpdateCallSchedule(gomock.Any()).Return(nil)

		schedule, err := service.CancelCall(scheduleID)
		require.NoError(t, err)
		assert.Equal(t, domain.CallStatusCancelled, schedule.Status)
		assert.Nil(t, schedule.NextScheduledDate)
	})

	t.Run("Cancelar já cancelada é no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, scheduleRepo, _, _ := newTestService(ctrl)

		scheduleRepo.EXPECT().GetByID(scheduleID).Return(&domain.CallSchedule{
			ID:     scheduleID,
			Status: domain.CallStatusCancelled,
		}, nil)

		schedule, err := service.CancelCall(scheduleID)
		require.NoError(t, err)
		assert.Equal(t, domain.CallStatusCancelled, schedule.Status)
	})

	t.Run("Cancelar concluída não reescreve a entrada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, scheduleRepo, _, _ := newTestService(ctrl)

		scheduleRepo.EXPECT().GetByID(scheduleID).Return(&domain.CallSchedule{
			ID:     scheduleID,
			Status: domain.CallStatusCompleted,
		}, nil)

		schedule, err := service.CancelCall(scheduleID)
		require.NoError(t, err)
		assert.Equal(t, domain.CallStatusCompleted, schedule.Status)
	})
}

func TestEditSchedule(t *testing.T) {
	scheduleID := uuid.New()

	t.Run("Editar data e prioridade de entrada aberta", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, scheduleRepo, _, _ := newTestService(ctrl)

		scheduleRepo.EXPECT().GetByID(scheduleID).Return(&domain.CallSchedule{
			ID:       scheduleID,
			Status:   domain.CallStatusPending,
			Priority: 3,
		}, nil)
		scheduleRepo.EXPECT().UpdateCallSchedule(gomock.Any()).Return(nil)

		newDate := time.Date(2024, 3, 25, 0, 0, 0, 0, time.UTC)
		newPriority := 1

		schedule, err := service.EditSchedule(scheduleID, &domain.EditCallScheduleRequest{
			ScheduledDate: &newDate,
			Priority:      &newPriority,
		})
		require.NoError(t, err)
		assert.Equal(t, newDate, schedule.ScheduledDate)
		assert.Equal(t, 1, schedule.Priority)
	})

	t.Run("Trocar KAM ou lead é rejeitado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, _, _ := newTestService(ctrl)

		otherKam := uuid.New()
		_, err := service.EditSchedule(scheduleID, &domain.EditCallScheduleRequest{
			KamID: &otherKam,
		})
		assert.ErrorIs(t, err, ErrImmutableAssignment)

		otherLead := uuid.New()
		_, err = service.EditSchedule(scheduleID, &domain.EditCallScheduleRequest{
			LeadID: &otherLead,
		})
		assert.ErrorIs(t, err, ErrImmutableAssignment)
	})

	t.Run("Editar entrada finalizada gera conflito", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, scheduleRepo, _, _ := newTestService(ctrl)

		scheduleRepo.EXPECT().GetByID(scheduleID).Return(&domain.CallSchedule{
			ID:     scheduleID,
			Status: domain.CallStatusCompleted,
		}, nil)

		newPriority := 2
		_, err := service.EditSchedule(scheduleID, &domain.EditCallScheduleRequest{
			Priority: &newPriority,
		})
		assert.ErrorIs(t, err, ErrScheduleTerminal)
	})

	t.Run("Prioridade inválida na edição", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, scheduleRepo, _, _ := newTestService(ctrl)

		scheduleRepo.EXPECT().GetByID(scheduleID).Return(&domain.CallSchedule{
			ID:     scheduleID,
			Status: domain.CallStatusPending,
		}, nil)

		badPriority := 9
		_, err := service.EditSchedule(scheduleID, &domain.EditCallScheduleRequest{
			Priority: &badPriority,
		})
		assert.ErrorIs(t, err, ErrInvalidPriority)
	})
}
