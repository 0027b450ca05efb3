package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/vfg2006/lead-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/lead-manager-api/internal/domain"
)

const leadsTable = "leads"

// Colunas permitidas para ordenação na listagem de leads
var leadSortColumns = map[string]string{
	"name":              "name",
	"city":              "city",
	"status":            "status",
	"performance_score": "performance_score",
	"created_at":        "created_at",
	"last_call_date":    "last_call_date",
}

type LeadRepository interface {
	CreateLead(lead *domain.Lead) (*domain.Lead, error)
	UpdateLead(lead *domain.Lead) error
	UpdatePerformanceScore(leadID uuid.UUID, score float64) error
	UpdateLastCallDate(leadID uuid.UUID, lastCallDate sql.NullTime) error
	GetLeadByID(leadID uuid.UUID) (*domain.Lead, error)
	ExistsByID(leadID uuid.UUID) (bool, error)
	DeleteLead(leadID uuid.UUID) error
	FindLeadsWithFilters(kamID uuid.UUID, filters domain.LeadFilters, page domain.Pagination) ([]*domain.Lead, int64, error)
	FindActiveLeadsByKam(kamID uuid.UUID) ([]*domain.Lead, error)
	ListActiveLeadIDs() ([]uuid.UUID, error)
	GetLeadSummary(kamID uuid.UUID) (*domain.LeadSummary, error)
}

type leadRepository struct {
	conn *postgres.Connection
}

func NewLeadRepository(conn *postgres.Connection) LeadRepository {
	return &leadRepository{
		conn: conn,
	}
}

const leadColumns = "id, name, city, cuisine_type, status, kam_id, call_frequency, last_call_date, performance_score, created_at, updated_at"

func (r *leadRepository) CreateLead(lead *domain.Lead) (*domain.Lead, error) {
	if lead.ID == uuid.Nil {
		lead.ID = uuid.New()
	}

	queryBuilder := squirrel.
		Insert(leadsTable).
		Columns("id", "name", "city", "cuisine_type", "status", "kam_id", "call_frequency", "performance_score").
		Values(lead.ID, lead.Name, lead.City, lead.CuisineType, lead.Status, lead.KamID, lead.CallFrequency, lead.PerformanceScore).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	leadSQL, leadArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(leadSQL, leadArgs...).Scan(&lead.CreatedAt, &lead.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return lead, nil
}

func (r *leadRepository) UpdateLead(lead *domain.Lead) error {
	queryBuilder := squirrel.
		Update(leadsTable).
		Set("name", lead.Name).
		Set("city", lead.City).
		Set("cuisine_type", lead.CuisineType).
		Set("status", lead.Status).
		Set("kam_id", lead.KamID).
		Set("call_frequency", lead.CallFrequency).
		Set("last_call_date", lead.LastCallDate).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": lead.ID}).
		PlaceholderFormat(squirrel.Dollar)

	leadSQL, leadArgs, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(leadSQL, leadArgs...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar lead: %w", err)
	}

	return nil
}

func (r *leadRepository) UpdatePerformanceScore(leadID uuid.UUID, score float64) error {
	queryBuilder := squirrel.
		Update(leadsTable).
		Set("performance_score", score).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": leadID}).
		PlaceholderFormat(squirrel.Dollar)

	leadSQL, leadArgs, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(leadSQL, leadArgs...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar pontuação do lead: %w", err)
	}

	return nil
}

func (r *leadRepository) UpdateLastCallDate(leadID uuid.UUID, lastCallDate sql.NullTime) error {
	queryBuilder := squirrel.
		Update(leadsTable).
		Set("last_call_date", lastCallDate).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": leadID}).
		PlaceholderFormat(squirrel.Dollar)

	leadSQL, leadArgs, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(leadSQL, leadArgs...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar data da última ligação: %w", err)
	}

	return nil
}

func (r *leadRepository) GetLeadByID(leadID uuid.UUID) (*domain.Lead, error) {
	queryBuilder := squirrel.
		Select(leadColumns).
		From(leadsTable).
		Where(squirrel.Eq{"id": leadID}).
		PlaceholderFormat(squirrel.Dollar)

	leadSQL, leadArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(leadSQL, leadArgs...)
	lead, err := scanLead(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear lead: %w", err)
	}

	return lead, nil
}

func (r *leadRepository) ExistsByID(leadID uuid.UUID) (bool, error) {
	var exists bool
	err := r.conn.QueryRow("SELECT EXISTS(SELECT 1 FROM leads WHERE id = $1)", leadID).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

// DeleteLead remove o lead junto com seus agendamentos e métricas, em uma
// única transação. Interações são preservadas por integridade histórica.
func (r *leadRepository) DeleteLead(leadID uuid.UUID) error {
	return r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM call_schedule WHERE lead_id = $1", leadID); err != nil {
			return fmt.Errorf("erro ao remover agendamentos do lead: %w", err)
		}

		if _, err := tx.Exec("DELETE FROM performance_metrics WHERE lead_id = $1", leadID); err != nil {
			return fmt.Errorf("erro ao remover métricas do lead: %w", err)
		}

		if _, err := tx.Exec("DELETE FROM leads WHERE id = $1", leadID); err != nil {
			return fmt.Errorf("erro ao remover lead: %w", err)
		}

		return nil
	})
}

// FindLeadsWithFilters monta o predicado conjuntivo da listagem: filtros
// ausentes ou em branco não entram na query, e o total é calculado sobre o
// mesmo predicado da página retornada.
func (r *leadRepository) FindLeadsWithFilters(kamID uuid.UUID, filters domain.LeadFilters, page domain.Pagination) ([]*domain.Lead, int64, error) {
	predicate := buildLeadPredicate(kamID, filters)

	queryBuilder := squirrel.
		Select(leadColumns).
		From(leadsTable).
		Where(predicate).
		OrderBy(leadOrderBy(page)).
		Limit(uint64(page.Limit())).
		Offset(uint64(page.Offset())).
		PlaceholderFormat(squirrel.Dollar)

	leadSQL, leadArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(leadSQL, leadArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	leads := make([]*domain.Lead, 0)
	for rows.Next() {
		lead, err := scanLeadRows(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("erro ao escanear lead: %w", err)
		}
		leads = append(leads, lead)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("erro durante iteração: %w", err)
	}

	countSQL, countArgs, err := squirrel.
		Select("COUNT(*)").
		From(leadsTable).
		Where(predicate).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao construir a query de contagem: %w", err)
	}

	var total int64
	if err := r.conn.QueryRow(countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("erro ao contar leads: %w", err)
	}

	return leads, total, nil
}

func buildLeadPredicate(kamID uuid.UUID, filters domain.LeadFilters) squirrel.And {
	predicate := squirrel.And{squirrel.Eq{"kam_id": kamID}}

	if term := strings.TrimSpace(filters.SearchTerm); term != "" {
		predicate = append(predicate, squirrel.ILike{"name": "%" + term + "%"})
	}

	if len(filters.Statuses) > 0 {
		predicate = append(predicate, squirrel.Eq{"status": filters.Statuses})
	}

	if city := strings.TrimSpace(filters.City); city != "" {
		predicate = append(predicate, squirrel.Expr("LOWER(city) = LOWER(?)", city))
	}

	return predicate
}

func leadOrderBy(page domain.Pagination) string {
	column, ok := leadSortColumns[page.SortBy]
	if !ok {
		// Ordenação padrão: melhores pontuações primeiro, nome como desempate
		return "performance_score DESC, name ASC"
	}

	direction := "ASC"
	if strings.EqualFold(page.SortDir, "desc") {
		direction = "DESC"
	}

	return fmt.Sprintf("%s %s, name ASC", column, direction)
}

func (r *leadRepository) FindActiveLeadsByKam(kamID uuid.UUID) ([]*domain.Lead, error) {
	queryBuilder := squirrel.
		Select(leadColumns).
		From(leadsTable).
		Where(squirrel.Eq{"kam_id": kamID}).
		Where(squirrel.NotEq{"status": []domain.LeadStatus{domain.LeadStatusClosedWon, domain.LeadStatusClosedLost}}).
		OrderBy("performance_score DESC, name ASC").
		PlaceholderFormat(squirrel.Dollar)

	leadSQL, leadArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(leadSQL, leadArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	leads := make([]*domain.Lead, 0)
	for rows.Next() {
		lead, err := scanLeadRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear lead: %w", err)
		}
		leads = append(leads, lead)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return leads, nil
}

func (r *leadRepository) ListActiveLeadIDs() ([]uuid.UUID, error) {
	queryBuilder := squirrel.
		Select("id").
		From(leadsTable).
		Where(squirrel.NotEq{"status": []domain.LeadStatus{domain.LeadStatusClosedWon, domain.LeadStatusClosedLost, domain.LeadStatusInactive}}).
		PlaceholderFormat(squirrel.Dollar)

	leadSQL, leadArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(leadSQL, leadArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("erro ao escanear id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return ids, nil
}

// GetLeadSummary retorna totais da carteira. A contagem de leads aguardando
// ligação não entra aqui: o cálculo de vencimento é feito em código, não em SQL.
func (r *leadRepository) GetLeadSummary(kamID uuid.UUID) (*domain.LeadSummary, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status IN ('NEW', 'CONTACTED', 'INTERESTED', 'NEGOTIATING')),
			COALESCE(AVG(performance_score), 0)
		FROM leads
		WHERE kam_id = $1`

	summary := &domain.LeadSummary{}
	err := r.conn.QueryRow(query, kamID).Scan(
		&summary.TotalLeads,
		&summary.ActiveLeads,
		&summary.AveragePerformanceScore,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar resumo da carteira: %w", err)
	}

	return summary, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanLead(row rowScanner) (*domain.Lead, error) {
	lead := &domain.Lead{}
	var lastCallDate sql.NullTime

	err := row.Scan(
		&lead.ID,
		&lead.Name,
		&lead.City,
		&lead.CuisineType,
		&lead.Status,
		&lead.KamID,
		&lead.CallFrequency,
		&lastCallDate,
		&lead.PerformanceScore,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if lastCallDate.Valid {
		lead.LastCallDate = &lastCallDate.Time
	}

	return lead, nil
}

func scanLeadRows(rows *sql.Rows) (*domain.Lead, error) {
	return scanLead(rows)
}
