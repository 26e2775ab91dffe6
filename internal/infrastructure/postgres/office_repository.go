package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jportillo/incidencias-api/internal/domain/entity"
	"github.com/jportillo/incidencias-api/internal/domain/repository"
)

var _ repository.OfficeRepository = (*OfficeRepo)(nil)

// OfficeRepo implementación del puerto OfficeRepository sobre PostgreSQL.
type OfficeRepo struct {
	db DB
}

// NewOfficeRepository construye el adaptador de persistencia para oficinas.
func NewOfficeRepository(db DB) *OfficeRepo {
	return &OfficeRepo{db: db}
}

// Create persiste una nueva oficina.
func (r *OfficeRepo) Create(ctx context.Context, office *entity.Office) error {
	query := `
		INSERT INTO offices (id, company_id, name, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query,
		office.ID, office.CompanyID, office.Name, office.Status,
		office.CreatedAt, office.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert office: %w", translateError(err))
	}
	return nil
}

// GetByID obtiene una oficina por ID con su empresa cargada.
func (r *OfficeRepo) GetByID(ctx context.Context, id string) (*entity.Office, error) {
	query := `
		SELECT o.id, o.company_id, o.name, o.status, o.created_at, o.updated_at,
		       c.id, c.name, c.address, c.phone, c.status, c.created_at, c.updated_at
		FROM offices o
		JOIN companies c ON c.id = o.company_id
		WHERE o.id = $1`
	var o entity.Office
	var c entity.Company
	err := r.db.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.CompanyID, &o.Name, &o.Status, &o.CreatedAt, &o.UpdatedAt,
		&c.ID, &c.Name, &c.Address, &c.Phone, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get office: %w", err)
	}
	o.Company = &c
	return &o, nil
}

// Update actualiza una oficina existente.
func (r *OfficeRepo) Update(ctx context.Context, office *entity.Office) error {
	query := `
		UPDATE offices SET company_id = $2, name = $3, status = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		office.ID, office.CompanyID, office.Name, office.Status, office.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update office: %w", translateError(err))
	}
	return nil
}

// List devuelve oficinas con paginación y búsqueda por nombre.
func (r *OfficeRepo) List(ctx context.Context, search string, limit, offset int) ([]*entity.Office, int, error) {
	spec := pageSpec{
		table:      "offices",
		columns:    "id, company_id, name, status, created_at, updated_at",
		searchExpr: "name",
		orderBy:    "name ASC",
	}
	return listPage(ctx, r.db, spec, search, limit, offset, func(rows pgx.Rows) (*entity.Office, error) {
		var o entity.Office
		err := rows.Scan(&o.ID, &o.CompanyID, &o.Name, &o.Status, &o.CreatedAt, &o.UpdatedAt)
		return &o, err
	})
}

// Delete elimina una oficina por ID. FK viva (empleados, usuarios) -> ErrConflict.
func (r *OfficeRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM offices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete office: %w", translateError(err))
	}
	return nil
}
