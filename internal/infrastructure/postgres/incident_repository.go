package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jportillo/incidencias-api/internal/domain/entity"
	"github.com/jportillo/incidencias-api/internal/domain/repository"
)

var _ repository.IncidentRepository = (*IncidentRepo)(nil)

// IncidentRepo implementación del puerto IncidentRepository sobre PostgreSQL.
type IncidentRepo struct {
	db DB
}

// NewIncidentRepository construye el adaptador de persistencia para tipos de incidencia.
func NewIncidentRepository(db DB) *IncidentRepo {
	return &IncidentRepo{db: db}
}

// Create persiste un nuevo tipo de incidencia. Código repetido -> ErrDuplicate.
func (r *IncidentRepo) Create(ctx context.Context, incident *entity.Incident) error {
	query := `
		INSERT INTO incidents (id, code, name, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query,
		incident.ID, incident.Code, incident.Name, incident.Status,
		incident.CreatedAt, incident.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert incident: %w", translateError(err))
	}
	return nil
}

// GetByID obtiene un tipo de incidencia por ID.
func (r *IncidentRepo) GetByID(ctx context.Context, id string) (*entity.Incident, error) {
	query := `
		SELECT id, code, name, status, created_at, updated_at
		FROM incidents WHERE id = $1`
	var i entity.Incident
	err := r.db.QueryRow(ctx, query, id).Scan(
		&i.ID, &i.Code, &i.Name, &i.Status, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get incident: %w", err)
	}
	return &i, nil
}

// Update actualiza un tipo de incidencia existente.
func (r *IncidentRepo) Update(ctx context.Context, incident *entity.Incident) error {
	query := `
		UPDATE incidents SET code = $2, name = $3, status = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		incident.ID, incident.Code, incident.Name, incident.Status, incident.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update incident: %w", translateError(err))
	}
	return nil
}

// List devuelve tipos de incidencia con paginación y búsqueda por nombre o código.
func (r *IncidentRepo) List(ctx context.Context, search string, limit, offset int) ([]*entity.Incident, int, error) {
	spec := pageSpec{
		table:      "incidents",
		columns:    "id, code, name, status, created_at, updated_at",
		searchExpr: "name || ' ' || code",
		orderBy:    "code ASC",
	}
	return listPage(ctx, r.db, spec, search, limit, offset, func(rows pgx.Rows) (*entity.Incident, error) {
		var i entity.Incident
		err := rows.Scan(&i.ID, &i.Code, &i.Name, &i.Status, &i.CreatedAt, &i.UpdatedAt)
		return &i, err
	})
}

// Delete elimina un tipo de incidencia por ID. FK viva (movimientos) -> ErrConflict.
func (r *IncidentRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM incidents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete incident: %w", translateError(err))
	}
	return nil
}
