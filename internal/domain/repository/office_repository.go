package repository

import (
	"context"

	"github.com/jportillo/incidencias-api/internal/domain/entity"
)

// OfficeRepository define el puerto de persistencia para Office.
type OfficeRepository interface {
	Create(ctx context.Context, office *entity.Office) error
	GetByID(ctx context.Context, id string) (*entity.Office, error)
	Update(ctx context.Context, office *entity.Office) error
	List(ctx context.Context, search string, limit, offset int) ([]*entity.Office, int, error)
	Delete(ctx context.Context, id string) error
}
