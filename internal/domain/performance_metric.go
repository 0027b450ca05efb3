package domain

import (
	"time"

	"github.com/google/uuid"
)

type PeriodType string

const (
	PeriodTypeDaily   PeriodType = "DAILY"
	PeriodTypeWeekly  PeriodType = "WEEKLY"
	PeriodTypeMonthly PeriodType = "MONTHLY"
)

// PerformanceMetric é um retrato pontual da pontuação calculada de um lead.
// Pré-calcular evita reagregações caras em relatórios históricos; o valor só
// muda por atualização explícita, que também registra um novo calculated_at.
type PerformanceMetric struct {
	ID           uuid.UUID  `json:"id"`
	LeadID       uuid.UUID  `json:"lead_id"`
	MetricDate   time.Time  `json:"metric_date"`
	MetricValue  float64    `json:"metric_value"`
	TargetValue  *float64   `json:"target_value,omitempty"`
	PeriodType   PeriodType `json:"period_type"`
	CalculatedAt time.Time  `json:"calculated_at"`
}

// MeetsTarget compara o valor calculado com a meta, quando definida
func (m PerformanceMetric) MeetsTarget() bool {
	if m.TargetValue == nil {
		return true
	}
	return m.MetricValue >= *m.TargetValue
}
