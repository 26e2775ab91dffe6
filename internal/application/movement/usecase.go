package movement

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jportillo/incidencias-api/internal/application/dto"
	"github.com/jportillo/incidencias-api/internal/domain"
	"github.com/jportillo/incidencias-api/internal/domain/entity"
	"github.com/jportillo/incidencias-api/internal/domain/repository"
)

// UseCase valida y persiste movimientos (incidencias). Toda alta/edición pasa
// por la misma secuencia de verificaciones antes de escribir:
//
//  1. periodo, empleado e incidencia existen (fetch en paralelo)
//  2. los tres están ACTIVE
//  3. la fecha de incidencia cae dentro del periodo (bordes inclusivos)
//  4. no existe otro movimiento ACTIVE con la misma tripleta
//     (periodo, empleado, incidencia), excluyendo el propio id en ediciones
//
// La escritura fuerza status ACTIVE y ocurre dentro de una transacción junto
// con la re-verificación de duplicado; el índice único parcial de la tabla
// cierra la ventana de carrera entre verificación y escritura.
type UseCase struct {
	txRunner     TxRunner
	movementRepo repository.MovementRepository
	periodRepo   repository.PeriodRepository
	employeeRepo repository.EmployeeRepository
	incidentRepo repository.IncidentRepository
	userRepo     repository.UserRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	movementRepo repository.MovementRepository,
	periodRepo repository.PeriodRepository,
	employeeRepo repository.EmployeeRepository,
	incidentRepo repository.IncidentRepository,
	userRepo repository.UserRepository,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		movementRepo: movementRepo,
		periodRepo:   periodRepo,
		employeeRepo: employeeRepo,
		incidentRepo: incidentRepo,
		userRepo:     userRepo,
	}
}

// references referencias resueltas de un movimiento propuesto.
type references struct {
	period   *entity.Period
	employee *entity.Employee
	incident *entity.Incident
}

// Create valida y persiste un movimiento nuevo.
func (uc *UseCase) Create(ctx context.Context, in dto.SaveMovementRequest) (*dto.MovementResponse, error) {
	return uc.save(ctx, "", in)
}

// Update valida y persiste la edición de un movimiento existente. El propio
// id queda excluido de la verificación de duplicados.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.SaveMovementRequest) (*dto.MovementResponse, error) {
	current, err := uc.movementRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, fmt.Errorf("%w: movimiento %s", domain.ErrNotFound, id)
	}
	return uc.save(ctx, id, in)
}

// save ejecuta la secuencia completa de validación y la escritura transaccional.
// updateID vacío = alta; no vacío = edición de ese movimiento.
func (uc *UseCase) save(ctx context.Context, updateID string, in dto.SaveMovementRequest) (*dto.MovementResponse, error) {
	incidenceDate, err := time.Parse(dto.DateLayout, in.IncidenceDate)
	if err != nil {
		return nil, fmt.Errorf("%w: incidence_date debe ser YYYY-MM-DD", domain.ErrInvalidInput)
	}

	refs, err := uc.fetchReferences(ctx, in)
	if err != nil {
		return nil, err
	}
	if err := checkActive(refs); err != nil {
		return nil, err
	}
	if !refs.period.Contains(incidenceDate) {
		return nil, fmt.Errorf("%w: %s no está dentro del periodo %s (%s a %s)",
			domain.ErrOutOfRange, in.IncidenceDate, refs.period.Name,
			refs.period.StartDate.Format(dto.DateLayout), refs.period.EndDate.Format(dto.DateLayout))
	}

	now := time.Now()
	id := updateID
	if id == "" {
		id = uuid.New().String()
	}
	mov := &entity.Movement{
		ID:                   id,
		PeriodID:             in.PeriodID,
		EmployeeID:           in.EmployeeID,
		IncidentID:           in.IncidentID,
		IncidenceDate:        incidenceDate,
		IncidenceObservation: in.IncidenceObservation,
		Status:               entity.StatusActive, // siempre ACTIVE al guardar
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	// Verificación de duplicado y escritura en la misma transacción. El repo
	// traduce la violación del índice único parcial a ErrDuplicate, así una
	// carrera perdida produce el mismo error que la verificación.
	err = uc.txRunner.Run(ctx, func(movRepo repository.MovementRepository) error {
		exists, err := movRepo.ActiveTripleExists(ctx, in.PeriodID, in.EmployeeID, in.IncidentID, updateID)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%w: ya existe un movimiento activo para ese empleado, incidencia y periodo", domain.ErrDuplicate)
		}
		if updateID == "" {
			return movRepo.Create(ctx, mov)
		}
		return movRepo.Update(ctx, mov)
	})
	if err != nil {
		return nil, err
	}

	persisted, err := uc.movementRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if persisted == nil {
		return nil, domain.ErrNotFound
	}
	return toMovementResponse(persisted), nil
}

// fetchReferences resuelve periodo, empleado e incidencia en paralelo.
func (uc *UseCase) fetchReferences(ctx context.Context, in dto.SaveMovementRequest) (*references, error) {
	var refs references
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := uc.periodRepo.GetByID(gctx, in.PeriodID)
		if err != nil {
			return err
		}
		if p == nil {
			return fmt.Errorf("%w: el periodo no existe", domain.ErrNotFound)
		}
		refs.period = p
		return nil
	})
	g.Go(func() error {
		e, err := uc.employeeRepo.GetByID(gctx, in.EmployeeID)
		if err != nil {
			return err
		}
		if e == nil {
			return fmt.Errorf("%w: el empleado no existe", domain.ErrNotFound)
		}
		refs.employee = e
		return nil
	})
	g.Go(func() error {
		i, err := uc.incidentRepo.GetByID(gctx, in.IncidentID)
		if err != nil {
			return err
		}
		if i == nil {
			return fmt.Errorf("%w: la incidencia no existe", domain.ErrNotFound)
		}
		refs.incident = i
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &refs, nil
}

// checkActive exige que las tres referencias estén ACTIVE.
func checkActive(refs *references) error {
	if refs.period.Status != entity.StatusActive {
		return fmt.Errorf("%w: el periodo %s no está activo", domain.ErrInvalidState, refs.period.Name)
	}
	if refs.employee.Status != entity.StatusActive {
		return fmt.Errorf("%w: el empleado %s no está activo", domain.ErrInvalidState, refs.employee.Name)
	}
	if refs.incident.Status != entity.StatusActive {
		return fmt.Errorf("%w: la incidencia %s no está activa", domain.ErrInvalidState, refs.incident.Name)
	}
	return nil
}

// GetByID obtiene un movimiento respetando la restricción de oficinas del usuario.
func (uc *UseCase) GetByID(ctx context.Context, userID, id string) (*dto.MovementResponse, error) {
	scope, err := uc.scopeFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	mov, err := uc.movementRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, nil
	}
	if !scope.Unrestricted && (mov.Employee == nil || !scope.Allows(mov.Employee.OfficeID)) {
		return nil, domain.ErrForbidden
	}
	return toMovementResponse(mov), nil
}

// List lista movimientos aplicando la restricción de oficinas del usuario (ver scope.go).
func (uc *UseCase) List(ctx context.Context, userID, search, periodID, officeID string, page dto.PageRequest) (*dto.MovementListResponse, error) {
	scope, err := uc.scopeFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	page.DefaultPage()

	filter := repository.MovementFilter{
		Search:   search,
		PeriodID: periodID,
		Limit:    page.Limit,
		Offset:   page.Offset,
	}
	switch {
	case officeID != "":
		// Un filtro explícito de oficina acota más, pero nunca amplía el scope.
		if !scope.Unrestricted && !scope.Allows(officeID) {
			return nil, domain.ErrForbidden
		}
		filter.OfficeIDs = []string{officeID}
	case !scope.Unrestricted:
		filter.OfficeIDs = scope.OfficeIDs
	}

	list, total, err := uc.movementRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMovementResponse(m))
	}
	pageResp := dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total}
	return &dto.MovementListResponse{
		Movements:  items,
		Total:      total,
		TotalPages: pageResp.TotalPages(),
		Page:       pageResp,
	}, nil
}

// Delete da de baja un movimiento (status INACTIVE). La baja es lógica: la
// regla de duplicados solo considera movimientos ACTIVE, así que la tripleta
// queda libre para un nuevo registro manteniendo el historial.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	mov, err := uc.movementRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if mov == nil {
		return fmt.Errorf("%w: movimiento %s", domain.ErrNotFound, id)
	}
	return uc.movementRepo.SetStatus(ctx, id, entity.StatusInactive)
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	out := &dto.MovementResponse{
		ID:                   m.ID,
		PeriodID:             m.PeriodID,
		EmployeeID:           m.EmployeeID,
		IncidentID:           m.IncidentID,
		IncidenceDate:        m.IncidenceDate.Format(dto.DateLayout),
		IncidenceObservation: m.IncidenceObservation,
		Status:               m.Status,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
	if m.Period != nil {
		out.Period = &dto.PeriodResponse{
			ID:        m.Period.ID,
			Name:      m.Period.Name,
			StartDate: m.Period.StartDate.Format(dto.DateLayout),
			EndDate:   m.Period.EndDate.Format(dto.DateLayout),
			Status:    m.Period.Status,
			CreatedAt: m.Period.CreatedAt,
			UpdatedAt: m.Period.UpdatedAt,
		}
	}
	if m.Employee != nil {
		emp := &dto.EmployeeResponse{
			ID:        m.Employee.ID,
			OfficeID:  m.Employee.OfficeID,
			Code:      m.Employee.Code,
			Name:      m.Employee.Name,
			Type:      m.Employee.Type,
			Status:    m.Employee.Status,
			CreatedAt: m.Employee.CreatedAt,
			UpdatedAt: m.Employee.UpdatedAt,
		}
		if m.Employee.Office != nil {
			emp.Office = &dto.OfficeResponse{
				ID:        m.Employee.Office.ID,
				CompanyID: m.Employee.Office.CompanyID,
				Name:      m.Employee.Office.Name,
				Status:    m.Employee.Office.Status,
				CreatedAt: m.Employee.Office.CreatedAt,
				UpdatedAt: m.Employee.Office.UpdatedAt,
			}
		}
		out.Employee = emp
	}
	if m.Incident != nil {
		out.Incident = &dto.IncidentResponse{
			ID:        m.Incident.ID,
			Code:      m.Incident.Code,
			Name:      m.Incident.Name,
			Status:    m.Incident.Status,
			CreatedAt: m.Incident.CreatedAt,
			UpdatedAt: m.Incident.UpdatedAt,
		}
	}
	return out
}
