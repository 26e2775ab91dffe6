package postgres

import (
	"context"
	"fmt"

	"github.com/jportillo/incidencias-api/internal/domain/entity"
	"github.com/jportillo/incidencias-api/internal/domain/repository"
	"github.com/jportillo/incidencias-api/pkg/normalize"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	db DB
}

// NewEmployeeRepository construye el adaptador de persistencia para empleados.
func NewEmployeeRepository(db DB) *EmployeeRepo {
	return &EmployeeRepo{db: db}
}

// Create persiste un nuevo empleado. Código repetido en la oficina -> ErrDuplicate.
func (r *EmployeeRepo) Create(ctx context.Context, employee *entity.Employee) error {
	query := `
		INSERT INTO employees (id, office_id, code, name, type, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query,
		employee.ID, employee.OfficeID, employee.Code, employee.Name,
		employee.Type, employee.Status, employee.CreatedAt, employee.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert employee: %w", translateError(err))
	}
	return nil
}

// GetByID obtiene un empleado por ID con su oficina cargada.
func (r *EmployeeRepo) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	query := `
		SELECT e.id, e.office_id, e.code, e.name, e.type, e.status, e.created_at, e.updated_at,
		       o.id, o.company_id, o.name, o.status, o.created_at, o.updated_at
		FROM employees e
		JOIN offices o ON o.id = e.office_id
		WHERE e.id = $1`
	var e entity.Employee
	var o entity.Office
	err := r.db.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.OfficeID, &e.Code, &e.Name, &e.Type, &e.Status, &e.CreatedAt, &e.UpdatedAt,
		&o.ID, &o.CompanyID, &o.Name, &o.Status, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	e.Office = &o
	return &e, nil
}

// Update actualiza un empleado existente.
func (r *EmployeeRepo) Update(ctx context.Context, employee *entity.Employee) error {
	query := `
		UPDATE employees SET office_id = $2, code = $3, name = $4, type = $5, status = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		employee.ID, employee.OfficeID, employee.Code, employee.Name,
		employee.Type, employee.Status, employee.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", translateError(err))
	}
	return nil
}

// List devuelve empleados con paginación, búsqueda por nombre/código y filtro de oficina.
// El filtro de oficina impide usar listPage directamente; el WHERE es dinámico.
func (r *EmployeeRepo) List(ctx context.Context, search, officeID string, limit, offset int) ([]*entity.Employee, int, error) {
	where := ""
	args := []any{}
	if search != "" {
		args = append(args, "%"+normalize.SearchTerm(search)+"%")
		where = fmt.Sprintf(" WHERE unaccent(name || ' ' || code::text) ILIKE unaccent($%d)", len(args))
	}
	if officeID != "" {
		args = append(args, officeID)
		if where == "" {
			where = fmt.Sprintf(" WHERE office_id = $%d", len(args))
		} else {
			where += fmt.Sprintf(" AND office_id = $%d", len(args))
		}
	}

	var total int
	if err := r.db.QueryRow(ctx, "SELECT count(*) FROM employees"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count employees: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, office_id, code, name, type, status, created_at, updated_at
		FROM employees%s ORDER BY name ASC LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	var list []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(&e.ID, &e.OfficeID, &e.Code, &e.Name, &e.Type, &e.Status, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, &e)
	}
	return list, total, rows.Err()
}

// Delete elimina un empleado por ID. FK viva (movimientos) -> ErrConflict.
func (r *EmployeeRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", translateError(err))
	}
	return nil
}
