package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/vfg2006/lead-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/lead-manager-api/internal/domain"
)

const callScheduleTable = "call_schedule"

type CallScheduleRepository interface {
	CreateCallSchedule(schedule *domain.CallSchedule) (*domain.CallSchedule, error)
	GetByID(scheduleID uuid.UUID) (*domain.CallSchedule, error)
	UpdateCallSchedule(schedule *domain.CallSchedule) error
	SaveTransition(schedule *domain.CallSchedule, lead *domain.Lead) error
	DeleteCallSchedule(scheduleID uuid.UUID) error
	FindScheduledCallsForKamAndDate(kamID uuid.UUID, date time.Time) ([]*domain.CallSchedule, error)
	FindOverdueCallsForKam(kamID uuid.UUID, currentDate time.Time) ([]*domain.CallSchedule, error)
	FindUpcomingCallsForLead(leadID uuid.UUID, fromDate time.Time) ([]*domain.CallSchedule, error)
}

type callScheduleRepository struct {
	conn *postgres.Connection
}

func NewCallScheduleRepository(conn *postgres.Connection) CallScheduleRepository {
	return &callScheduleRepository{
		conn: conn,
	}
}

const callScheduleColumns = "id, kam_id, lead_id, scheduled_date, status, priority, next_scheduled_date, created_at"

func (r *callScheduleRepository) CreateCallSchedule(schedule *domain.CallSchedule) (*domain.CallSchedule, error) {
	if schedule.ID == uuid.Nil {
		schedule.ID = uuid.New()
	}

	queryBuilder := squirrel.
		Insert(callScheduleTable).
		Columns("id", "kam_id", "lead_id", "scheduled_date", "status", "priority").
		Values(
			schedule.ID,
			schedule.KamID,
			schedule.LeadID,
			schedule.ScheduledDate.Format(time.DateOnly),
			schedule.Status,
			schedule.Priority,
		).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar)

	scheduleSQL, scheduleArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(scheduleSQL, scheduleArgs...).Scan(&schedule.CreatedAt)
	if err != nil {
		return nil, err
	}

	return schedule, nil
}

func (r *callScheduleRepository) GetByID(scheduleID uuid.UUID) (*domain.CallSchedule, error) {
	queryBuilder := squirrel.
		Select(callScheduleColumns).
		From(callScheduleTable).
		Where(squirrel.Eq{"id": scheduleID}).
		PlaceholderFormat(squirrel.Dollar)

	scheduleSQL, scheduleArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(scheduleSQL, scheduleArgs...)
	schedule, err := scanCallSchedule(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear agendamento: %w", err)
	}

	return schedule, nil
}

func (r *callScheduleRepository) UpdateCallSchedule(schedule *domain.CallSchedule) error {
	scheduleSQL, scheduleArgs, err := buildCallScheduleUpdate(schedule).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(scheduleSQL, scheduleArgs...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar agendamento: %w", err)
	}

	return nil
}

// SaveTransition grava a transição do agendamento e, quando informado, a
// atualização do lead dono (ex.: last_call_date ao concluir a ligação) na
// mesma transação. A transição é tudo-ou-nada.
func (r *callScheduleRepository) SaveTransition(schedule *domain.CallSchedule, lead *domain.Lead) error {
	return r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		scheduleSQL, scheduleArgs, err := buildCallScheduleUpdate(schedule).ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.Exec(scheduleSQL, scheduleArgs...); err != nil {
			return fmt.Errorf("erro ao gravar transição: %w", err)
		}

		if lead == nil {
			return nil
		}

		leadSQL, leadArgs, err := squirrel.
			Update(leadsTable).
			Set("last_call_date", lead.LastCallDate).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"id": lead.ID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query do lead: %w", err)
		}

		if _, err := tx.Exec(leadSQL, leadArgs...); err != nil {
			return fmt.Errorf("erro ao atualizar lead na transição: %w", err)
		}

		return nil
	})
}

func buildCallScheduleUpdate(schedule *domain.CallSchedule) squirrel.UpdateBuilder {
	var nextScheduledDate interface{}
	if schedule.NextScheduledDate != nil {
		nextScheduledDate = schedule.NextScheduledDate.Format(time.DateOnly)
	}

	return squirrel.
		Update(callScheduleTable).
		Set("scheduled_date", schedule.ScheduledDate.Format(time.DateOnly)).
		Set("status", schedule.Status).
		Set("priority", schedule.Priority).
		Set("next_scheduled_date", nextScheduledDate).
		Where(squirrel.Eq{"id": schedule.ID}).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *callScheduleRepository) DeleteCallSchedule(scheduleID uuid.UUID) error {
	scheduleSQL, scheduleArgs, err := squirrel.
		Delete(callScheduleTable).
		Where(squirrel.Eq{"id": scheduleID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(scheduleSQL, scheduleArgs...)
	if err != nil {
		return fmt.Errorf("erro ao remover agendamento: %w", err)
	}

	return nil
}

func (r *callScheduleRepository) FindScheduledCallsForKamAndDate(kamID uuid.UUID, date time.Time) ([]*domain.CallSchedule, error) {
	queryBuilder := squirrel.
		Select(callScheduleColumns).
		From(callScheduleTable).
		Where(squirrel.Eq{"kam_id": kamID, "scheduled_date": date.Format(time.DateOnly)}).
		OrderBy("priority ASC, created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryCallSchedules(queryBuilder)
}

// FindOverdueCallsForKam retorna apenas entradas PENDING com data vencida:
// os demais estados não contam como atraso por definição.
func (r *callScheduleRepository) FindOverdueCallsForKam(kamID uuid.UUID, currentDate time.Time) ([]*domain.CallSchedule, error) {
	queryBuilder := squirrel.
		Select(callScheduleColumns).
		From(callScheduleTable).
		Where(squirrel.Eq{"kam_id": kamID, "status": domain.CallStatusPending}).
		Where(squirrel.Lt{"scheduled_date": currentDate.Format(time.DateOnly)}).
		OrderBy("scheduled_date ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryCallSchedules(queryBuilder)
}

func (r *callScheduleRepository) FindUpcomingCallsForLead(leadID uuid.UUID, fromDate time.Time) ([]*domain.CallSchedule, error) {
	queryBuilder := squirrel.
		Select(callScheduleColumns).
		From(callScheduleTable).
		Where(squirrel.Eq{"lead_id": leadID}).
		Where(squirrel.GtOrEq{"scheduled_date": fromDate.Format(time.DateOnly)}).
		OrderBy("scheduled_date ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryCallSchedules(queryBuilder)
}

func (r *callScheduleRepository) queryCallSchedules(queryBuilder squirrel.SelectBuilder) ([]*domain.CallSchedule, error) {
	scheduleSQL, scheduleArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(scheduleSQL, scheduleArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	schedules := make([]*domain.CallSchedule, 0)
	for rows.Next() {
		schedule, err := scanCallSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear agendamento: %w", err)
		}
		schedules = append(schedules, schedule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return schedules, nil
}

func scanCallSchedule(row rowScanner) (*domain.CallSchedule, error) {
	schedule := &domain.CallSchedule{}
	var nextScheduledDate sql.NullTime

	err := row.Scan(
		&schedule.ID,
		&schedule.KamID,
		&schedule.LeadID,
		&schedule.ScheduledDate,
		&schedule.Status,
		&schedule.Priority,
		&nextScheduledDate,
		&schedule.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if nextScheduledDate.Valid {
		schedule.NextScheduledDate = &nextScheduledDate.Time
	}

	return schedule, nil
}
