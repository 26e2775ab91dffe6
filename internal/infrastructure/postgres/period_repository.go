package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jportillo/incidencias-api/internal/domain/entity"
	"github.com/jportillo/incidencias-api/internal/domain/repository"
)

var _ repository.PeriodRepository = (*PeriodRepo)(nil)

// PeriodRepo implementación del puerto PeriodRepository sobre PostgreSQL.
type PeriodRepo struct {
	db DB
}

// NewPeriodRepository construye el adaptador de persistencia para periodos.
func NewPeriodRepository(db DB) *PeriodRepo {
	return &PeriodRepo{db: db}
}

// Create persiste un nuevo periodo.
func (r *PeriodRepo) Create(ctx context.Context, period *entity.Period) error {
	query := `
		INSERT INTO periods (id, name, start_date, end_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query,
		period.ID, period.Name, period.StartDate, period.EndDate, period.Status,
		period.CreatedAt, period.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert period: %w", translateError(err))
	}
	return nil
}

// GetByID obtiene un periodo por ID.
func (r *PeriodRepo) GetByID(ctx context.Context, id string) (*entity.Period, error) {
	query := `
		SELECT id, name, start_date, end_date, status, created_at, updated_at
		FROM periods WHERE id = $1`
	var p entity.Period
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.StartDate, &p.EndDate, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get period: %w", err)
	}
	return &p, nil
}

// Update actualiza un periodo existente.
func (r *PeriodRepo) Update(ctx context.Context, period *entity.Period) error {
	query := `
		UPDATE periods SET name = $2, start_date = $3, end_date = $4, status = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		period.ID, period.Name, period.StartDate, period.EndDate, period.Status, period.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update period: %w", translateError(err))
	}
	return nil
}

// List devuelve periodos con paginación y búsqueda por nombre, el más reciente primero.
func (r *PeriodRepo) List(ctx context.Context, search string, limit, offset int) ([]*entity.Period, int, error) {
	spec := pageSpec{
		table:      "periods",
		columns:    "id, name, start_date, end_date, status, created_at, updated_at",
		searchExpr: "name",
		orderBy:    "start_date DESC",
	}
	return listPage(ctx, r.db, spec, search, limit, offset, func(rows pgx.Rows) (*entity.Period, error) {
		var p entity.Period
		err := rows.Scan(&p.ID, &p.Name, &p.StartDate, &p.EndDate, &p.Status, &p.CreatedAt, &p.UpdatedAt)
		return &p, err
	})
}

// Delete elimina un periodo por ID. FK viva (movimientos) -> ErrConflict.
func (r *PeriodRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM periods WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete period: %w", translateError(err))
	}
	return nil
}
