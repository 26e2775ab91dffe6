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

// EmployeeUseCase aplica reglas de negocio para empleados.
type EmployeeUseCase struct {
	repo       repository.EmployeeRepository
	officeRepo repository.OfficeRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository, officeRepo repository.OfficeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, officeRepo: officeRepo}
}

// Create crea un empleado. El código debe ser positivo y único en la oficina;
// el repo traduce la violación del índice único a ErrDuplicate.
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if in.Code <= 0 {
		return nil, fmt.Errorf("%w: code debe ser un entero positivo", domain.ErrInvalidInput)
	}
	office, err := uc.officeRepo.GetByID(ctx, in.OfficeID)
	if err != nil {
		return nil, err
	}
	if office == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	employee := &entity.Employee{
		ID:        uuid.New().String(),
		OfficeID:  in.OfficeID,
		Code:      in.Code,
		Name:      in.Name,
		Type:      in.Type,
		Status:    entity.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// GetByID obtiene un empleado por ID.
func (uc *EmployeeUseCase) GetByID(ctx context.Context, id string) (*dto.EmployeeResponse, error) {
	employee, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, nil
	}
	return toEmployeeResponse(employee), nil
}

// Update actualiza un empleado existente.
func (uc *EmployeeUseCase) Update(ctx context.Context, id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if in.Code <= 0 {
		return nil, fmt.Errorf("%w: code debe ser un entero positivo", domain.ErrInvalidInput)
	}
	employee, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	if employee.OfficeID != in.OfficeID {
		office, err := uc.officeRepo.GetByID(ctx, in.OfficeID)
		if err != nil {
			return nil, err
		}
		if office == nil {
			return nil, domain.ErrNotFound
		}
	}
	employee.OfficeID = in.OfficeID
	employee.Code = in.Code
	employee.Name = in.Name
	employee.Type = in.Type
	employee.Status = in.Status
	employee.UpdatedAt = time.Now()
	employee.Office = nil
	if err := uc.repo.Update(ctx, employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// List lista empleados con paginación, búsqueda por nombre y filtro de oficina.
func (uc *EmployeeUseCase) List(ctx context.Context, search, officeID string, page dto.PageRequest) (*dto.EmployeeListResponse, error) {
	page.DefaultPage()
	list, total, err := uc.repo.List(ctx, search, officeID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEmployeeResponse(e))
	}
	return &dto.EmployeeListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// Delete elimina un empleado. Devuelve ErrConflict si tiene movimientos.
func (uc *EmployeeUseCase) Delete(ctx context.Context, id string) error {
	employee, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if employee == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	if e == nil {
		return nil
	}
	out := &dto.EmployeeResponse{
		ID:        e.ID,
		OfficeID:  e.OfficeID,
		Code:      e.Code,
		Name:      e.Name,
		Type:      e.Type,
		Status:    e.Status,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
	if e.Office != nil {
		out.Office = toOfficeResponse(e.Office)
	}
	return out
}
