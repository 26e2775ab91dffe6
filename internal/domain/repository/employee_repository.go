package repository

import (
	"context"

	"github.com/jportillo/incidencias-api/internal/domain/entity"
)

// EmployeeRepository define el puerto de persistencia para Employee.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	GetByID(ctx context.Context, id string) (*entity.Employee, error)
	Update(ctx context.Context, employee *entity.Employee) error
	// List filtra por nombre (search) y opcionalmente por oficina.
	List(ctx context.Context, search, officeID string, limit, offset int) ([]*entity.Employee, int, error)
	Delete(ctx context.Context, id string) error
}
