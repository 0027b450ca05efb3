package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/lead-manager-api/internal/domain"
)

func TestNextCallDate(t *testing.T) {
	today := time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name          string
		lastCallDate  *time.Time
		callFrequency int
		expected      time.Time
	}{
		{
			name:          "Lead nunca ligado - próxima data é hoje",
			lastCallDate:  nil,
			callFrequency: 7,
			expected:      time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:          "Última ligação recente - próxima data no futuro",
			lastCallDate:  timePtr(time.Date(2024, 3, 14, 9, 0, 0, 0, time.UTC)),
			callFrequency: 7,
			expected:      time.Date(2024, 3, 21, 0, 0, 0, 0, time.UTC),
		},
		{
			name:          "Última ligação antiga - próxima data já no passado",
			lastCallDate:  timePtr(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
			callFrequency: 7,
			expected:      time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC),
		},
		{
			name:          "Frequência diária",
			lastCallDate:  timePtr(time.Date(2024, 3, 14, 23, 59, 0, 0, time.UTC)),
			callFrequency: 1,
			expected:      time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:          "Frequência que atravessa o fim do mês",
			lastCallDate:  timePtr(time.Date(2024, 3, 28, 0, 0, 0, 0, time.UTC)),
			callFrequency: 7,
			expected:      time.Date(2024, 4, 4, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NextCallDate(tt.lastCallDate, tt.callFrequency, today)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestIsDueToday(t *testing.T) {
	today := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		lead     *domain.Lead
		expected bool
	}{
		{
			name: "Lead nunca ligado está vencido hoje",
			lead: &domain.Lead{
				Status:        domain.LeadStatusNew,
				CallFrequency: 7,
			},
			expected: true,
		},
		{
			name: "Próxima ligação hoje",
			lead: &domain.Lead{
				Status:        domain.LeadStatusContacted,
				CallFrequency: 7,
				LastCallDate:  timePtr(time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)),
			},
			expected: true,
		},
		{
			name: "Próxima ligação no passado",
			lead: &domain.Lead{
				Status:        domain.LeadStatusInterested,
				CallFrequency: 3,
				LastCallDate:  timePtr(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
			},
			expected: true,
		},
		{
			name: "Próxima ligação no futuro",
			lead: &domain.Lead{
				Status:        domain.LeadStatusContacted,
				CallFrequency: 7,
				LastCallDate:  timePtr(time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)),
			},
			expected: false,
		},
		{
			name: "Lead fechado não recebe ligações",
			lead: &domain.Lead{
				Status:        domain.LeadStatusClosedWon,
				CallFrequency: 7,
			},
			expected: false,
		},
		{
			name: "Lead perdido não recebe ligações",
			lead: &domain.Lead{
				Status:        domain.LeadStatusClosedLost,
				CallFrequency: 7,
			},
			expected: false,
		},
		{
			name: "Lead inativo não recebe ligações",
			lead: &domain.Lead{
				Status:        domain.LeadStatusInactive,
				CallFrequency: 7,
			},
			expected: false,
		},
		{
			name:     "Lead nulo",
			lead:     nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsDueToday(tt.lead, today))
		})
	}
}

func TestIsOverdue(t *testing.T) {
	today := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		schedule *domain.CallSchedule
		expected bool
	}{
		{
			name: "Pendente agendada para ontem está vencida",
			schedule: &domain.CallSchedule{
				Status:        domain.CallStatusPending,
				ScheduledDate: time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC),
			},
			expected: true,
		},
		{
			name: "Pendente agendada para hoje ainda não está vencida",
			schedule: &domain.CallSchedule{
				Status:        domain.CallStatusPending,
				ScheduledDate: today,
			},
			expected: false,
		},
		{
			name: "Pendente agendada para amanhã",
			schedule: &domain.CallSchedule{
				Status:        domain.CallStatusPending,
				ScheduledDate: time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC),
			},
			expected: false,
		},
		{
			name: "Concluída no passado não conta como vencida",
			schedule: &domain.CallSchedule{
				Status:        domain.CallStatusCompleted,
				ScheduledDate: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			},
			expected: false,
		},
		{
			name: "Cancelada no passado não conta como vencida",
			schedule: &domain.CallSchedule{
				Status:        domain.CallStatusCancelled,
				ScheduledDate: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsOverdue(tt.schedule, today))
		})
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}
