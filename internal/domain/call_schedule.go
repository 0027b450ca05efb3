package domain

import (
	"time"

	"github.com/google/uuid"
)

type CallStatus string

const (
	CallStatusPending     CallStatus = "PENDING"
	CallStatusCompleted   CallStatus = "COMPLETED"
	CallStatusNoAnswer    CallStatus = "NO_ANSWER"
	CallStatusBusy        CallStatus = "BUSY"
	CallStatusRescheduled CallStatus = "RESCHEDULED"
	CallStatusCancelled   CallStatus = "CANCELLED"
)

// DefaultCallPriority é a prioridade assumida quando a criação não informa uma
const DefaultCallPriority = 3

// IsTerminal indica que a entrada não aceita mais nenhuma transição
func (s CallStatus) IsTerminal() bool {
	return s == CallStatusCompleted || s == CallStatusCancelled
}

// RequiresReschedule indica que a ligação precisa de um novo agendamento explícito
func (s CallStatus) RequiresReschedule() bool {
	return s == CallStatusNoAnswer || s == CallStatusBusy || s == CallStatusRescheduled
}

// CallSchedule representa uma ligação planejada de um KAM para um lead.
// Planejamento e execução são registros separados: a execução real vira
// uma Interaction, o agendamento guarda o ciclo de vida da tentativa.
type CallSchedule struct {
	ID                uuid.UUID  `json:"id"`
	KamID             uuid.UUID  `json:"kam_id"`
	LeadID            uuid.UUID  `json:"lead_id"`
	ScheduledDate     time.Time  `json:"scheduled_date"`
	Status            CallStatus `json:"status"`
	Priority          int        `json:"priority"` // 1 (mais alta) a 5
	NextScheduledDate *time.Time `json:"next_scheduled_date"`
	CreatedAt         time.Time  `json:"created_at"`
}

type CreateCallScheduleRequest struct {
	KamID         uuid.UUID `json:"kam_id"`
	LeadID        uuid.UUID `json:"lead_id"`
	ScheduledDate time.Time `json:"scheduled_date"`
	Priority      int       `json:"priority"`
}

type EditCallScheduleRequest struct {
	KamID         *uuid.UUID `json:"kam_id"`
	LeadID        *uuid.UUID `json:"lead_id"`
	ScheduledDate *time.Time `json:"scheduled_date"`
	Priority      *int       `json:"priority"`
}
