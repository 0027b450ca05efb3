package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/vfg2006/lead-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/lead-manager-api/internal/domain"
)

const interactionsTable = "interactions"

type InteractionRepository interface {
	CreateInteraction(interaction *domain.Interaction) (*domain.Interaction, error)
	UpdateInteraction(interaction *domain.Interaction) error
	GetByID(interactionID uuid.UUID) (*domain.Interaction, error)
	DeleteInteraction(interactionID uuid.UUID) error
	FindByLead(leadID uuid.UUID, page domain.Pagination) ([]*domain.Interaction, int64, error)
	FindByKamAndDateRange(kamID uuid.UUID, startDate, endDate time.Time, page domain.Pagination) ([]*domain.Interaction, int64, error)
	FindFollowUpsForKamAndDate(kamID uuid.UUID, date time.Time) ([]*domain.Interaction, error)
	FindLatestByLead(leadID uuid.UUID) (*domain.Interaction, error)

	// Agregações do livro de interações. Conjuntos vazios sempre
	// resultam em zero, nunca em NULL ou erro.
	SumOrderValueByLeadAndRange(leadID uuid.UUID, startDate, endDate time.Time) (float64, error)
	AverageOrderValueByLead(leadID uuid.UUID) (float64, error)
	CountByLeadSince(leadID uuid.UUID, since time.Time) (int64, error)
	CountByLeadAndTypeSince(leadID uuid.UUID, interactionType domain.InteractionType, since time.Time) (int64, error)
	CountByKamAndTypeSince(kamID uuid.UUID, interactionType domain.InteractionType, since time.Time) (int64, error)
}

type interactionRepository struct {
	conn *postgres.Connection
}

func NewInteractionRepository(conn *postgres.Connection) InteractionRepository {
	return &interactionRepository{
		conn: conn,
	}
}

const interactionColumns = "id, lead_id, contact_id, kam_id, type, status, interaction_date, order_value, follow_up_date, notes, created_at"

func (r *interactionRepository) CreateInteraction(interaction *domain.Interaction) (*domain.Interaction, error) {
	if interaction.ID == uuid.Nil {
		interaction.ID = uuid.New()
	}

	var followUpDate interface{}
	if interaction.FollowUpDate != nil {
		followUpDate = interaction.FollowUpDate.Format(time.DateOnly)
	}

	queryBuilder := squirrel.
		Insert(interactionsTable).
		Columns("id", "lead_id", "contact_id", "kam_id", "type", "status", "interaction_date", "order_value", "follow_up_date", "notes").
		Values(
			interaction.ID,
			interaction.LeadID,
			interaction.ContactID,
			interaction.KamID,
			interaction.Type,
			interaction.Status,
			interaction.InteractionDate,
			interaction.OrderValue,
			followUpDate,
			interaction.Notes,
		).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar)

	interactionSQL, interactionArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(interactionSQL, interactionArgs...).Scan(&interaction.CreatedAt)
	if err != nil {
		return nil, err
	}

	return interaction, nil
}

// UpdateInteraction grava apenas os campos de correção. A data da interação
// nunca é reescrita.
func (r *interactionRepository) UpdateInteraction(interaction *domain.Interaction) error {
	var followUpDate interface{}
	if interaction.FollowUpDate != nil {
		followUpDate = interaction.FollowUpDate.Format(time.DateOnly)
	}

	queryBuilder := squirrel.
		Update(interactionsTable).
		Set("status", interaction.Status).
		Set("order_value", interaction.OrderValue).
		Set("follow_up_date", followUpDate).
		Set("notes", interaction.Notes).
		Where(squirrel.Eq{"id": interaction.ID}).
		PlaceholderFormat(squirrel.Dollar)

	interactionSQL, interactionArgs, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(interactionSQL, interactionArgs...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar interação: %w", err)
	}

	return nil
}

func (r *interactionRepository) GetByID(interactionID uuid.UUID) (*domain.Interaction, error) {
	queryBuilder := squirrel.
		Select(interactionColumns).
		From(interactionsTable).
		Where(squirrel.Eq{"id": interactionID}).
		PlaceholderFormat(squirrel.Dollar)

	interactionSQL, interactionArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(interactionSQL, interactionArgs...)
	interaction, err := scanInteraction(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear interação: %w", err)
	}

	return interaction, nil
}

func (r *interactionRepository) DeleteInteraction(interactionID uuid.UUID) error {
	interactionSQL, interactionArgs, err := squirrel.
		Delete(interactionsTable).
		Where(squirrel.Eq{"id": interactionID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(interactionSQL, interactionArgs...)
	if err != nil {
		return fmt.Errorf("erro ao remover interação: %w", err)
	}

	return nil
}

func (r *interactionRepository) FindByLead(leadID uuid.UUID, page domain.Pagination) ([]*domain.Interaction, int64, error) {
	predicate := squirrel.Eq{"lead_id": leadID}

	queryBuilder := squirrel.
		Select(interactionColumns).
		From(interactionsTable).
		Where(predicate).
		OrderBy("interaction_date DESC").
		Limit(uint64(page.Limit())).
		Offset(uint64(page.Offset())).
		PlaceholderFormat(squirrel.Dollar)

	return r.queryInteractionPage(queryBuilder, predicate)
}

func (r *interactionRepository) FindByKamAndDateRange(kamID uuid.UUID, startDate, endDate time.Time, page domain.Pagination) ([]*domain.Interaction, int64, error) {
	predicate := squirrel.And{
		squirrel.Eq{"kam_id": kamID},
		squirrel.GtOrEq{"interaction_date": startDate},
		squirrel.Lt{"interaction_date": endDate},
	}

	queryBuilder := squirrel.
		Select(interactionColumns).
		From(interactionsTable).
		Where(predicate).
		OrderBy("interaction_date DESC").
		Limit(uint64(page.Limit())).
		Offset(uint64(page.Offset())).
		PlaceholderFormat(squirrel.Dollar)

	return r.queryInteractionPage(queryBuilder, predicate)
}

func (r *interactionRepository) FindFollowUpsForKamAndDate(kamID uuid.UUID, date time.Time) ([]*domain.Interaction, error) {
	queryBuilder := squirrel.
		Select(interactionColumns).
		From(interactionsTable).
		Where(squirrel.Eq{"kam_id": kamID, "follow_up_date": date.Format(time.DateOnly)}).
		OrderBy("interaction_date DESC").
		PlaceholderFormat(squirrel.Dollar)

	interactionSQL, interactionArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryInteractions(interactionSQL, interactionArgs)
}

func (r *interactionRepository) FindLatestByLead(leadID uuid.UUID) (*domain.Interaction, error) {
	queryBuilder := squirrel.
		Select(interactionColumns).
		From(interactionsTable).
		Where(squirrel.Eq{"lead_id": leadID}).
		OrderBy("interaction_date DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar)

	interactionSQL, interactionArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(interactionSQL, interactionArgs...)
	interaction, err := scanInteraction(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear interação: %w", err)
	}

	return interaction, nil
}

func (r *interactionRepository) SumOrderValueByLeadAndRange(leadID uuid.UUID, startDate, endDate time.Time) (float64, error) {
	var total float64
	err := r.conn.QueryRow(
		`SELECT COALESCE(SUM(order_value), 0)
		 FROM interactions
		 WHERE lead_id = $1 AND type = 'ORDER'
		 AND interaction_date >= $2 AND interaction_date < $3`,
		leadID, startDate, endDate,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("erro ao somar valor de pedidos: %w", err)
	}

	return total, nil
}

// AverageOrderValueByLead considera apenas pedidos com valor positivo.
// Sem pedidos qualificados o resultado é zero, nunca divisão por zero.
func (r *interactionRepository) AverageOrderValueByLead(leadID uuid.UUID) (float64, error) {
	var average float64
	err := r.conn.QueryRow(
		`SELECT COALESCE(AVG(order_value), 0)
		 FROM interactions
		 WHERE lead_id = $1 AND type = 'ORDER' AND order_value > 0`,
		leadID,
	).Scan(&average)
	if err != nil {
		return 0, fmt.Errorf("erro ao calcular valor médio de pedidos: %w", err)
	}

	return average, nil
}

func (r *interactionRepository) CountByLeadSince(leadID uuid.UUID, since time.Time) (int64, error) {
	var count int64
	err := r.conn.QueryRow(
		"SELECT COUNT(*) FROM interactions WHERE lead_id = $1 AND interaction_date >= $2",
		leadID, since,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar interações do lead: %w", err)
	}

	return count, nil
}

func (r *interactionRepository) CountByLeadAndTypeSince(leadID uuid.UUID, interactionType domain.InteractionType, since time.Time) (int64, error) {
	var count int64
	err := r.conn.QueryRow(
		"SELECT COUNT(*) FROM interactions WHERE lead_id = $1 AND type = $2 AND interaction_date >= $3",
		leadID, interactionType, since,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar interações por tipo: %w", err)
	}

	return count, nil
}

func (r *interactionRepository) CountByKamAndTypeSince(kamID uuid.UUID, interactionType domain.InteractionType, since time.Time) (int64, error) {
	var count int64
	err := r.conn.QueryRow(
		"SELECT COUNT(*) FROM interactions WHERE kam_id = $1 AND type = $2 AND interaction_date >= $3",
		kamID, interactionType, since,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar interações do KAM por tipo: %w", err)
	}

	return count, nil
}

func (r *interactionRepository) queryInteractionPage(queryBuilder squirrel.SelectBuilder, predicate squirrel.Sqlizer) ([]*domain.Interaction, int64, error) {
	interactionSQL, interactionArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	interactions, err := r.queryInteractions(interactionSQL, interactionArgs)
	if err != nil {
		return nil, 0, err
	}

	countSQL, countArgs, err := squirrel.
		Select("COUNT(*)").
		From(interactionsTable).
		Where(predicate).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao construir a query de contagem: %w", err)
	}

	var total int64
	if err := r.conn.QueryRow(countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("erro ao contar interações: %w", err)
	}

	return interactions, total, nil
}

func (r *interactionRepository) queryInteractions(interactionSQL string, interactionArgs []interface{}) ([]*domain.Interaction, error) {
	rows, err := r.conn.Query(interactionSQL, interactionArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	interactions := make([]*domain.Interaction, 0)
	for rows.Next() {
		interaction, err := scanInteraction(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear interação: %w", err)
		}
		interactions = append(interactions, interaction)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return interactions, nil
}

func scanInteraction(row rowScanner) (*domain.Interaction, error) {
	interaction := &domain.Interaction{}
	var contactID uuid.NullUUID
	var orderValue sql.NullFloat64
	var followUpDate sql.NullTime
	var notes sql.NullString

	err := row.Scan(
		&interaction.ID,
		&interaction.LeadID,
		&contactID,
		&interaction.KamID,
		&interaction.Type,
		&interaction.Status,
		&interaction.InteractionDate,
		&orderValue,
		&followUpDate,
		&notes,
		&interaction.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if contactID.Valid {
		interaction.ContactID = &contactID.UUID
	}
	if orderValue.Valid {
		interaction.OrderValue = &orderValue.Float64
	}
	if followUpDate.Valid {
		interaction.FollowUpDate = &followUpDate.Time
	}
	interaction.Notes = notes.String

	return interaction, nil
}
