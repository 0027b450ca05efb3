package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/vfg2006/lead-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/lead-manager-api/internal/domain"
)

const performanceMetricsTable = "performance_metrics"

type PerformanceMetricRepository interface {
	UpsertMetric(metric *domain.PerformanceMetric) error
	FindByLead(leadID uuid.UUID, periodType domain.PeriodType, limit int) ([]*domain.PerformanceMetric, error)
}

type performanceMetricRepository struct {
	conn *postgres.Connection
}

func NewPerformanceMetricRepository(conn *postgres.Connection) PerformanceMetricRepository {
	return &performanceMetricRepository{
		conn: conn,
	}
}

// UpsertMetric grava um ponto da série. Recalcular o mesmo dia sobrescreve
// o valor anterior em vez de duplicar a linha.
func (r *performanceMetricRepository) UpsertMetric(metric *domain.PerformanceMetric) error {
	if metric.ID == uuid.Nil {
		metric.ID = uuid.New()
	}

	queryBuilder := squirrel.
		Insert(performanceMetricsTable).
		Columns("id", "lead_id", "metric_date", "metric_value", "target_value", "period_type").
		Values(
			metric.ID,
			metric.LeadID,
			metric.MetricDate.Format(time.DateOnly),
			metric.MetricValue,
			metric.TargetValue,
			metric.PeriodType,
		).
		Suffix(`ON CONFLICT (lead_id, metric_date, period_type)
			DO UPDATE SET metric_value = EXCLUDED.metric_value,
				target_value = EXCLUDED.target_value,
				calculated_at = NOW()
			RETURNING calculated_at`).
		PlaceholderFormat(squirrel.Dollar)

	metricSQL, metricArgs, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(metricSQL, metricArgs...).Scan(&metric.CalculatedAt)
	if err != nil {
		return fmt.Errorf("erro ao gravar métrica de performance: %w", err)
	}

	return nil
}

func (r *performanceMetricRepository) FindByLead(leadID uuid.UUID, periodType domain.PeriodType, limit int) ([]*domain.PerformanceMetric, error) {
	queryBuilder := squirrel.
		Select("id, lead_id, metric_date, metric_value, target_value, period_type, calculated_at").
		From(performanceMetricsTable).
		Where(squirrel.Eq{"lead_id": leadID, "period_type": periodType}).
		OrderBy("metric_date DESC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(limit))
	}

	metricSQL, metricArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(metricSQL, metricArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	metrics := make([]*domain.PerformanceMetric, 0)
	for rows.Next() {
		metric := &domain.PerformanceMetric{}
		err := rows.Scan(
			&metric.ID,
			&metric.LeadID,
			&metric.MetricDate,
			&metric.MetricValue,
			&metric.TargetValue,
			&metric.PeriodType,
			&metric.CalculatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear métrica: %w", err)
		}
		metrics = append(metrics, metric)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return metrics, nil
}
