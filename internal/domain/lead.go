// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"time"

	"github.com/google/uuid"
)

type LeadStatus string

const (
	LeadStatusNew         LeadStatus = "NEW"
	LeadStatusContacted   LeadStatus = "CONTACTED"
	LeadStatusInterested  LeadStatus = "INTERESTED"
	LeadStatusNegotiating LeadStatus = "NEGOTIATING"
	LeadStatusClosedWon   LeadStatus = "CLOSED_WON"
	LeadStatusClosedLost  LeadStatus = "CLOSED_LOST"
	LeadStatusInactive    LeadStatus = "INACTIVE"
)

// IsValid verifica se o status informado é um dos status conhecidos
func (s LeadStatus) IsValid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusInterested,
		LeadStatusNegotiating, LeadStatusClosedWon, LeadStatusClosedLost,
		LeadStatusInactive:
		return true
	}
	return false
}

// IsTerminal indica que o lead não recebe mais ligações recorrentes
func (s LeadStatus) IsTerminal() bool {
	return s == LeadStatusClosedWon || s == LeadStatusClosedLost
}

// Lead representa uma conta de restaurante gerenciada por um KAM
type Lead struct {
	ID               uuid.UUID  `json:"id"`
	Name             string     `json:"name"`
	City             string     `json:"city"`
	CuisineType      string     `json:"cuisine_type"`
	Status           LeadStatus `json:"status"`
	KamID            uuid.UUID  `json:"kam_id"`
	CallFrequency    int        `json:"call_frequency"` // dias entre ligações, sempre >= 1
	LastCallDate     *time.Time `json:"last_call_date"`
	PerformanceScore float64    `json:"performance_score"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type CreateLeadRequest struct {
	Name          string     `json:"name"`
	City          string     `json:"city"`
	CuisineType   string     `json:"cuisine_type"`
	Status        LeadStatus `json:"status"`
	KamID         uuid.UUID  `json:"kam_id"`
	CallFrequency int        `json:"call_frequency"`
}

type UpdateLeadRequest struct {
	Name          *string     `json:"name"`
	City          *string     `json:"city"`
	CuisineType   *string     `json:"cuisine_type"`
	Status        *LeadStatus `json:"status"`
	KamID         *uuid.UUID  `json:"kam_id"`
	CallFrequency *int        `json:"call_frequency"`
}

// LeadFilters são os filtros aceitos pela listagem de leads de um KAM.
// Filtros ausentes ou em branco não impõem predicado.
type LeadFilters struct {
	SearchTerm string
	Statuses   []LeadStatus
	City       string
}

// Pagination representa os parâmetros de paginação e ordenação da listagem
type Pagination struct {
	Page    int
	PerPage int
	SortBy  string
	SortDir string
}

func (p Pagination) Offset() int {
	page := p.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * p.Limit()
}

func (p Pagination) Limit() int {
	if p.PerPage < 1 {
		return 20
	}
	return p.PerPage
}

// LeadPage é o resultado paginado da listagem de leads com o total
// calculado sobre o mesmo predicado de filtro
type LeadPage struct {
	Leads      []*Lead `json:"leads"`
	TotalCount int64   `json:"total_count"`
	Page       int     `json:"page"`
	PerPage    int     `json:"per_page"`
}

// LeadSummary resume a carteira de leads de um KAM
type LeadSummary struct {
	TotalLeads              int64   `json:"total_leads"`
	ActiveLeads             int64   `json:"active_leads"`
	LeadsRequiringCalls     int64   `json:"leads_requiring_calls"`
	AveragePerformanceScore float64 `json:"average_performance_score"`
}

// LeadPerformance agrega o desempenho de um lead dentro de uma janela
type LeadPerformance struct {
	LeadID            uuid.UUID `json:"lead_id"`
	LeadName          string    `json:"lead_name"`
	PerformanceScore  float64   `json:"performance_score"`
	TotalInteractions int64     `json:"total_interactions"`
	TotalOrderValue   float64   `json:"total_order_value"`
	AverageOrderValue float64   `json:"average_order_value"`
}
