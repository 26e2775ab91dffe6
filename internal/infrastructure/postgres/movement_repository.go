package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jportillo/incidencias-api/internal/domain/entity"
	"github.com/jportillo/incidencias-api/internal/domain/repository"
	"github.com/jportillo/incidencias-api/pkg/normalize"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del puerto MovementRepository sobre PostgreSQL.
// Acepta pool o tx (ver DB); el TxRunner lo construye atado a una transacción.
type MovementRepo struct {
	db DB
}

// NewMovementRepository construye el adaptador de persistencia para movimientos.
func NewMovementRepository(db DB) *MovementRepo {
	return &MovementRepo{db: db}
}

// movementSelect columnas del movimiento con sus relaciones.
const movementSelect = `
	SELECT m.id, m.period_id, m.employee_id, m.incident_id, m.incidence_date,
	       COALESCE(m.incidence_observation, ''), m.status, m.created_at, m.updated_at,
	       p.id, p.name, p.start_date, p.end_date, p.status, p.created_at, p.updated_at,
	       e.id, e.office_id, e.code, e.name, e.type, e.status, e.created_at, e.updated_at,
	       o.id, o.company_id, o.name, o.status, o.created_at, o.updated_at,
	       i.id, i.code, i.name, i.status, i.created_at, i.updated_at
	FROM movements m
	JOIN periods p   ON p.id = m.period_id
	JOIN employees e ON e.id = m.employee_id
	JOIN offices o   ON o.id = e.office_id
	JOIN incidents i ON i.id = m.incident_id`

func scanMovement(row pgx.Row) (*entity.Movement, error) {
	var m entity.Movement
	var p entity.Period
	var e entity.Employee
	var o entity.Office
	var i entity.Incident
	err := row.Scan(
		&m.ID, &m.PeriodID, &m.EmployeeID, &m.IncidentID, &m.IncidenceDate,
		&m.IncidenceObservation, &m.Status, &m.CreatedAt, &m.UpdatedAt,
		&p.ID, &p.Name, &p.StartDate, &p.EndDate, &p.Status, &p.CreatedAt, &p.UpdatedAt,
		&e.ID, &e.OfficeID, &e.Code, &e.Name, &e.Type, &e.Status, &e.CreatedAt, &e.UpdatedAt,
		&o.ID, &o.CompanyID, &o.Name, &o.Status, &o.CreatedAt, &o.UpdatedAt,
		&i.ID, &i.Code, &i.Name, &i.Status, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.Office = &o
	m.Period = &p
	m.Employee = &e
	m.Incident = &i
	return &m, nil
}

// Create persiste un nuevo movimiento. La violación del índice único parcial
// sobre tripletas ACTIVE se traduce a ErrDuplicate.
func (r *MovementRepo) Create(ctx context.Context, movement *entity.Movement) error {
	query := `
		INSERT INTO movements (id, period_id, employee_id, incident_id, incidence_date,
		                       incidence_observation, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, $9)`
	_, err := r.db.Exec(ctx, query,
		movement.ID, movement.PeriodID, movement.EmployeeID, movement.IncidentID,
		movement.IncidenceDate, movement.IncidenceObservation, movement.Status,
		movement.CreatedAt, movement.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", translateError(err))
	}
	return nil
}

// GetByID obtiene un movimiento por ID con periodo, empleado (con oficina) e incidencia.
func (r *MovementRepo) GetByID(ctx context.Context, id string) (*entity.Movement, error) {
	m, err := scanMovement(r.db.QueryRow(ctx, movementSelect+" WHERE m.id = $1", id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// Update actualiza un movimiento existente. Igual mapeo de duplicado que Create.
func (r *MovementRepo) Update(ctx context.Context, movement *entity.Movement) error {
	query := `
		UPDATE movements SET period_id = $2, employee_id = $3, incident_id = $4,
		       incidence_date = $5, incidence_observation = NULLIF($6, ''), status = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		movement.ID, movement.PeriodID, movement.EmployeeID, movement.IncidentID,
		movement.IncidenceDate, movement.IncidenceObservation, movement.Status, movement.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update movement: %w", translateError(err))
	}
	return nil
}

// List devuelve movimientos con sus relaciones, aplicando búsqueda, filtro de
// periodo y restricción de oficinas. OfficeIDs no-nil limita a ese conjunto.
func (r *MovementRepo) List(ctx context.Context, filter repository.MovementFilter) ([]*entity.Movement, int, error) {
	var conds []string
	var args []any
	if filter.Search != "" {
		args = append(args, "%"+normalize.SearchTerm(filter.Search)+"%")
		conds = append(conds, fmt.Sprintf("unaccent(e.name || ' ' || e.code::text || ' ' || i.name) ILIKE unaccent($%d)", len(args)))
	}
	if filter.PeriodID != "" {
		args = append(args, filter.PeriodID)
		conds = append(conds, fmt.Sprintf("m.period_id = $%d", len(args)))
	}
	if filter.OfficeIDs != nil {
		args = append(args, filter.OfficeIDs)
		conds = append(conds, fmt.Sprintf("e.office_id = ANY($%d)", len(args)))
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	countSQL := `
		SELECT count(*)
		FROM movements m
		JOIN employees e ON e.id = m.employee_id
		JOIN incidents i ON i.id = m.incident_id` + where
	var total int
	if err := r.db.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count movements: %w", err)
	}

	query := fmt.Sprintf("%s%s ORDER BY m.incidence_date DESC, m.created_at DESC LIMIT $%d OFFSET $%d",
		movementSelect, where, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, total, rows.Err()
}

// ActiveTripleExists informa si existe un movimiento ACTIVE con la tripleta dada,
// excluyendo excludeID si no es vacío (auto-exclusión en ediciones).
func (r *MovementRepo) ActiveTripleExists(ctx context.Context, periodID, employeeID, incidentID, excludeID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM movements
			 WHERE period_id = $1 AND employee_id = $2 AND incident_id = $3
			   AND status = 'ACTIVE'`
	args := []any{periodID, employeeID, incidentID}
	if excludeID != "" {
		args = append(args, excludeID)
		query += " AND id <> $4"
	}
	query += ")"

	var exists bool
	if err := r.db.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("check active movement: %w", err)
	}
	return exists, nil
}

// SetStatus cambia el estado de un movimiento (baja lógica con INACTIVE).
func (r *MovementRepo) SetStatus(ctx context.Context, id, status string) error {
	_, err := r.db.Exec(ctx, `UPDATE movements SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("set movement status: %w", err)
	}
	return nil
}
