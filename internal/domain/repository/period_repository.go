package repository

import (
	"context"

	"github.com/jportillo/incidencias-api/internal/domain/entity"
)

// PeriodRepository define el puerto de persistencia para Period.
type PeriodRepository interface {
	Create(ctx context.Context, period *entity.Period) error
	GetByID(ctx context.Context, id string) (*entity.Period, error)
	Update(ctx context.Context, period *entity.Period) error
	List(ctx context.Context, search string, limit, offset int) ([]*entity.Period, int, error)
	Delete(ctx context.Context, id string) error
}
