package repository

import (
	"context"

	"github.com/jportillo/incidencias-api/internal/domain/entity"
)

// IncidentRepository define el puerto de persistencia para Incident.
type IncidentRepository interface {
	Create(ctx context.Context, incident *entity.Incident) error
	GetByID(ctx context.Context, id string) (*entity.Incident, error)
	Update(ctx context.Context, incident *entity.Incident) error
	List(ctx context.Context, search string, limit, offset int) ([]*entity.Incident, int, error)
	Delete(ctx context.Context, id string) error
}
