package repository

import (
	"context"

	"github.com/jportillo/incidencias-api/internal/domain/entity"
)

// MovementFilter filtros para el listado de movimientos.
type MovementFilter struct {
	Search    string   // por nombre/código de empleado o nombre de incidencia
	PeriodID  string   // vacío = todos los periodos
	OfficeIDs []string // nil = sin restricción de oficina; no-nil = employee.office_id debe estar en el set
	Limit     int
	Offset    int
}

// MovementRepository define el puerto de persistencia para Movement.
// Las lecturas devuelven el movimiento con Period, Employee (con Office) e Incident cargados.
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.Movement) error
	GetByID(ctx context.Context, id string) (*entity.Movement, error)
	Update(ctx context.Context, movement *entity.Movement) error
	List(ctx context.Context, filter MovementFilter) ([]*entity.Movement, int, error)
	// ActiveTripleExists informa si existe un movimiento ACTIVE con la misma
	// tripleta (periodo, empleado, incidencia), excluyendo excludeID si no es vacío.
	ActiveTripleExists(ctx context.Context, periodID, employeeID, incidentID, excludeID string) (bool, error)
	SetStatus(ctx context.Context, id, status string) error
}
