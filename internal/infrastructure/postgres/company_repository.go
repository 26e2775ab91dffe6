package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jportillo/incidencias-api/internal/domain/entity"
	"github.com/jportillo/incidencias-api/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	db DB
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(db DB) *CompanyRepo {
	return &CompanyRepo{db: db}
}

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	query := `
		INSERT INTO companies (id, name, address, phone, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query,
		company.ID, company.Name, company.Address, company.Phone, company.Status,
		company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert company: %w", translateError(err))
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	query := `
		SELECT id, name, address, phone, status, created_at, updated_at
		FROM companies WHERE id = $1`
	var c entity.Company
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Address, &c.Phone, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// Update actualiza una empresa existente.
func (r *CompanyRepo) Update(ctx context.Context, company *entity.Company) error {
	query := `
		UPDATE companies SET name = $2, address = $3, phone = $4, status = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		company.ID, company.Name, company.Address, company.Phone, company.Status, company.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", translateError(err))
	}
	return nil
}

// List devuelve empresas con paginación y búsqueda por nombre.
func (r *CompanyRepo) List(ctx context.Context, search string, limit, offset int) ([]*entity.Company, int, error) {
	spec := pageSpec{
		table:      "companies",
		columns:    "id, name, address, phone, status, created_at, updated_at",
		searchExpr: "name",
		orderBy:    "name ASC",
	}
	return listPage(ctx, r.db, spec, search, limit, offset, func(rows pgx.Rows) (*entity.Company, error) {
		var c entity.Company
		err := rows.Scan(&c.ID, &c.Name, &c.Address, &c.Phone, &c.Status, &c.CreatedAt, &c.UpdatedAt)
		return &c, err
	})
}

// Delete elimina una empresa por ID. FK viva (oficinas) -> ErrConflict.
func (r *CompanyRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete company: %w", translateError(err))
	}
	return nil
}
