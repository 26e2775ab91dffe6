package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jportillo/incidencias-api/internal/application/dto"
	"github.com/jportillo/incidencias-api/internal/domain"
	"github.com/jportillo/incidencias-api/internal/domain/entity"
	"github.com/jportillo/incidencias-api/internal/domain/repository"
)

// IncidentUseCase aplica reglas de negocio para tipos de incidencia.
type IncidentUseCase struct {
	repo repository.IncidentRepository
}

// NewIncidentUseCase construye el caso de uso.
func NewIncidentUseCase(repo repository.IncidentRepository) *IncidentUseCase {
	return &IncidentUseCase{repo: repo}
}

// Create crea un tipo de incidencia. El código es único; el repo traduce la
// violación a ErrDuplicate.
func (uc *IncidentUseCase) Create(ctx context.Context, in dto.CreateIncidentRequest) (*dto.IncidentResponse, error) {
	now := time.Now()
	incident := &entity.Incident{
		ID:        uuid.New().String(),
		Code:      in.Code,
		Name:      in.Name,
		Status:    entity.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, incident); err != nil {
		return nil, err
	}
	return toIncidentResponse(incident), nil
}

// GetByID obtiene un tipo de incidencia por ID.
func (uc *IncidentUseCase) GetByID(ctx context.Context, id string) (*dto.IncidentResponse, error) {
	incident, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if incident == nil {
		return nil, nil
	}
	return toIncidentResponse(incident), nil
}

// Update actualiza un tipo de incidencia existente.
func (uc *IncidentUseCase) Update(ctx context.Context, id string, in dto.UpdateIncidentRequest) (*dto.IncidentResponse, error) {
	incident, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if incident == nil {
		return nil, domain.ErrNotFound
	}
	incident.Code = in.Code
	incident.Name = in.Name
	incident.Status = in.Status
	incident.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, incident); err != nil {
		return nil, err
	}
	return toIncidentResponse(incident), nil
}

// List lista tipos de incidencia con paginación y búsqueda por nombre.
func (uc *IncidentUseCase) List(ctx context.Context, search string, page dto.PageRequest) (*dto.IncidentListResponse, error) {
	page.DefaultPage()
	list, total, err := uc.repo.List(ctx, search, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.IncidentResponse, 0, len(list))
	for _, i := range list {
		items = append(items, *toIncidentResponse(i))
	}
	return &dto.IncidentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// Delete elimina un tipo de incidencia. Devuelve ErrConflict si tiene movimientos.
func (uc *IncidentUseCase) Delete(ctx context.Context, id string) error {
	incident, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if incident == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toIncidentResponse(i *entity.Incident) *dto.IncidentResponse {
	if i == nil {
		return nil
	}
	return &dto.IncidentResponse{
		ID:        i.ID,
		Code:      i.Code,
		Name:      i.Name,
		Status:    i.Status,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}
