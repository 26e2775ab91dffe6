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

// OfficeUseCase aplica reglas de negocio para oficinas.
type OfficeUseCase struct {
	repo        repository.OfficeRepository
	companyRepo repository.CompanyRepository
}

// NewOfficeUseCase construye el caso de uso.
func NewOfficeUseCase(repo repository.OfficeRepository, companyRepo repository.CompanyRepository) *OfficeUseCase {
	return &OfficeUseCase{repo: repo, companyRepo: companyRepo}
}

// Create crea una oficina. La empresa referenciada debe existir.
func (uc *OfficeUseCase) Create(ctx context.Context, in dto.CreateOfficeRequest) (*dto.OfficeResponse, error) {
	company, err := uc.companyRepo.GetByID(ctx, in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	office := &entity.Office{
		ID:        uuid.New().String(),
		CompanyID: in.CompanyID,
		Name:      in.Name,
		Status:    entity.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, office); err != nil {
		return nil, err
	}
	return toOfficeResponse(office), nil
}

// GetByID obtiene una oficina por ID.
func (uc *OfficeUseCase) GetByID(ctx context.Context, id string) (*dto.OfficeResponse, error) {
	office, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if office == nil {
		return nil, nil
	}
	return toOfficeResponse(office), nil
}

// Update actualiza una oficina existente.
func (uc *OfficeUseCase) Update(ctx context.Context, id string, in dto.UpdateOfficeRequest) (*dto.OfficeResponse, error) {
	office, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if office == nil {
		return nil, domain.ErrNotFound
	}
	if office.CompanyID != in.CompanyID {
		company, err := uc.companyRepo.GetByID(ctx, in.CompanyID)
		if err != nil {
			return nil, err
		}
		if company == nil {
			return nil, domain.ErrNotFound
		}
	}
	office.CompanyID = in.CompanyID
	office.Name = in.Name
	office.Status = in.Status
	office.UpdatedAt = time.Now()
	office.Company = nil
	if err := uc.repo.Update(ctx, office); err != nil {
		return nil, err
	}
	return toOfficeResponse(office), nil
}

// List lista oficinas con paginación y búsqueda por nombre.
func (uc *OfficeUseCase) List(ctx context.Context, search string, page dto.PageRequest) (*dto.OfficeListResponse, error) {
	page.DefaultPage()
	list, total, err := uc.repo.List(ctx, search, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OfficeResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOfficeResponse(o))
	}
	return &dto.OfficeListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// Delete elimina una oficina. Devuelve ErrConflict si aún tiene empleados o usuarios.
func (uc *OfficeUseCase) Delete(ctx context.Context, id string) error {
	office, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if office == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toOfficeResponse(o *entity.Office) *dto.OfficeResponse {
	if o == nil {
		return nil
	}
	out := &dto.OfficeResponse{
		ID:        o.ID,
		CompanyID: o.CompanyID,
		Name:      o.Name,
		Status:    o.Status,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
	if o.Company != nil {
		out.Company = toCompanyResponse(o.Company)
	}
	return out
}
