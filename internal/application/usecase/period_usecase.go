package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jportillo/incidencias-api/internal/application/dto"
	"github.com/jportillo/incidencias-api/internal/domain"
	"github.com/jportillo/incidencias-api/internal/domain/entity"
	"github.com/jportillo/incidencias-api/internal/domain/repository"
)

// PeriodUseCase aplica reglas de negocio para periodos.
type PeriodUseCase struct {
	repo repository.PeriodRepository
}

// NewPeriodUseCase construye el caso de uso.
func NewPeriodUseCase(repo repository.PeriodRepository) *PeriodUseCase {
	return &PeriodUseCase{repo: repo}
}

func parsePeriodDates(start, end string) (time.Time, time.Time, error) {
	startDate, err := time.Parse(dto.DateLayout, start)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start_date debe ser YYYY-MM-DD", domain.ErrInvalidInput)
	}
	endDate, err := time.Parse(dto.DateLayout, end)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end_date debe ser YYYY-MM-DD", domain.ErrInvalidInput)
	}
	if endDate.Before(startDate) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end_date no puede ser anterior a start_date", domain.ErrInvalidInput)
	}
	return startDate, endDate, nil
}

// Create crea un periodo con estado inicial ACTIVE.
func (uc *PeriodUseCase) Create(ctx context.Context, in dto.CreatePeriodRequest) (*dto.PeriodResponse, error) {
	startDate, endDate, err := parsePeriodDates(in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	period := &entity.Period{
		ID:        uuid.New().String(),
		Name:      in.Name,
		StartDate: startDate,
		EndDate:   endDate,
		Status:    entity.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, period); err != nil {
		return nil, err
	}
	return toPeriodResponse(period), nil
}

// GetByID obtiene un periodo por ID.
func (uc *PeriodUseCase) GetByID(ctx context.Context, id string) (*dto.PeriodResponse, error) {
	period, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if period == nil {
		return nil, nil
	}
	return toPeriodResponse(period), nil
}

// Update actualiza un periodo existente.
func (uc *PeriodUseCase) Update(ctx context.Context, id string, in dto.UpdatePeriodRequest) (*dto.PeriodResponse, error) {
	startDate, endDate, err := parsePeriodDates(in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}
	period, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if period == nil {
		return nil, domain.ErrNotFound
	}
	period.Name = in.Name
	period.StartDate = startDate
	period.EndDate = endDate
	period.Status = in.Status
	period.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, period); err != nil {
		return nil, err
	}
	return toPeriodResponse(period), nil
}

// List lista periodos con paginación y búsqueda por nombre.
func (uc *PeriodUseCase) List(ctx context.Context, search string, page dto.PageRequest) (*dto.PeriodListResponse, error) {
	page.DefaultPage()
	list, total, err := uc.repo.List(ctx, search, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PeriodResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPeriodResponse(p))
	}
	return &dto.PeriodListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// Delete elimina un periodo. Devuelve ErrConflict si tiene movimientos.
func (uc *PeriodUseCase) Delete(ctx context.Context, id string) error {
	period, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if period == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toPeriodResponse(p *entity.Period) *dto.PeriodResponse {
	if p == nil {
		return nil
	}
	return &dto.PeriodResponse{
		ID:        p.ID,
		Name:      p.Name,
		StartDate: p.StartDate.Format(dto.DateLayout),
		EndDate:   p.EndDate.Format(dto.DateLayout),
		Status:    p.Status,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
