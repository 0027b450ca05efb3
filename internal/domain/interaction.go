package domain

import (
	"time"

	"github.com/google/uuid"
)

type InteractionType string

const (
	InteractionTypeCall    InteractionType = "CALL"
	InteractionTypeOrder   InteractionType = "ORDER"
	InteractionTypeEmail   InteractionType = "EMAIL"
	InteractionTypeMeeting InteractionType = "MEETING"
)

func (t InteractionType) IsValid() bool {
	switch t {
	case InteractionTypeCall, InteractionTypeOrder, InteractionTypeEmail, InteractionTypeMeeting:
		return true
	}
	return false
}

type InteractionStatus string

const (
	InteractionStatusCompleted InteractionStatus = "COMPLETED"
	InteractionStatusPending   InteractionStatus = "PENDING"
)

func (s InteractionStatus) IsValid() bool {
	return s == InteractionStatusCompleted || s == InteractionStatusPending
}

// Interaction é o registro imutável de um contato ou pedido real.
// A data da interação é atribuída pelo servidor na criação e nunca reescrita.
type Interaction struct {
	ID              uuid.UUID         `json:"id"`
	LeadID          uuid.UUID         `json:"lead_id"`
	ContactID       *uuid.UUID        `json:"contact_id,omitempty"`
	KamID           uuid.UUID         `json:"kam_id"`
	Type            InteractionType   `json:"type"`
	Status          InteractionStatus `json:"status"`
	InteractionDate time.Time         `json:"interaction_date"`
	OrderValue      *float64          `json:"order_value,omitempty"`
	FollowUpDate    *time.Time        `json:"follow_up_date,omitempty"`
	Notes           string            `json:"notes,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
}

type CreateInteractionRequest struct {
	LeadID       uuid.UUID         `json:"lead_id"`
	ContactID    *uuid.UUID        `json:"contact_id"`
	KamID        uuid.UUID         `json:"kam_id"`
	Type         InteractionType   `json:"type"`
	Status       InteractionStatus `json:"status"`
	OrderValue   *float64          `json:"order_value"`
	FollowUpDate *time.Time        `json:"follow_up_date"`
	Notes        string            `json:"notes"`
}

// UpdateInteractionRequest permite apenas correções pontuais: status, notas,
// valor do pedido e data de follow-up. Lead, KAM, tipo e data são imutáveis.
type UpdateInteractionRequest struct {
	Status       *InteractionStatus `json:"status"`
	OrderValue   *float64           `json:"order_value"`
	FollowUpDate *time.Time         `json:"follow_up_date"`
	Notes        *string            `json:"notes"`
}

// InteractionPage é o resultado paginado de uma listagem de interações
type InteractionPage struct {
	Interactions []*Interaction `json:"interactions"`
	TotalCount   int64          `json:"total_count"`
	Page         int            `json:"page"`
	PerPage      int            `json:"per_page"`
}

// KamActivitySummary conta as interações de um KAM por tipo desde uma data
type KamActivitySummary struct {
	KamID    uuid.UUID `json:"kam_id"`
	Since    time.Time `json:"since"`
	Calls    int64     `json:"calls"`
	Orders   int64     `json:"orders"`
	Emails   int64     `json:"emails"`
	Meetings int64     `json:"meetings"`
}

// RecentActivitySummary resume a atividade de um lead na janela móvel de 30 dias
type RecentActivitySummary struct {
	LatestInteractionID   *uuid.UUID `json:"latest_interaction_id,omitempty"`
	LatestInteractionType string     `json:"latest_interaction_type,omitempty"`
	LatestInteractionDate *time.Time `json:"latest_interaction_date,omitempty"`
	TotalInteractions30d  int64      `json:"total_interactions_last_30_days"`
	TotalOrders30d        int64      `json:"total_orders_last_30_days"`
	TotalOrderValue30d    float64    `json:"total_order_value_last_30_days"`
}
