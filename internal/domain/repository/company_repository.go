package repository

import (
	"context"

	"github.com/jportillo/incidencias-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
	// List devuelve una página y el total de filas que cumplen el filtro.
	List(ctx context.Context, search string, limit, offset int) ([]*entity.Company, int, error)
	Delete(ctx context.Context, id string) error
}
