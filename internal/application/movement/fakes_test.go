package movement_test

import (
	"context"

	"github.com/jportillo/incidencias-api/internal/domain/entity"
	"github.com/jportillo/incidencias-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para los tests del caso de uso
// ──────────────────────────────────────────────────────────────────────────────

type fakePeriodRepo struct {
	items map[string]*entity.Period
}

func (r *fakePeriodRepo) Create(_ context.Context, p *entity.Period) error {
	r.items[p.ID] = p
	return nil
}

func (r *fakePeriodRepo) GetByID(_ context.Context, id string) (*entity.Period, error) {
	return r.items[id], nil
}

func (r *fakePeriodRepo) Update(_ context.Context, p *entity.Period) error {
	r.items[p.ID] = p
	return nil
}

func (r *fakePeriodRepo) List(_ context.Context, _ string, _, _ int) ([]*entity.Period, int, error) {
	return nil, 0, nil
}

func (r *fakePeriodRepo) Delete(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

type fakeEmployeeRepo struct {
	items map[string]*entity.Employee
}

func (r *fakeEmployeeRepo) Create(_ context.Context, e *entity.Employee) error {
	r.items[e.ID] = e
	return nil
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string) (*entity.Employee, error) {
	return r.items[id], nil
}

func (r *fakeEmployeeRepo) Update(_ context.Context, e *entity.Employee) error {
	r.items[e.ID] = e
	return nil
}

func (r *fakeEmployeeRepo) List(_ context.Context, _, _ string, _, _ int) ([]*entity.Employee, int, error) {
	return nil, 0, nil
}

func (r *fakeEmployeeRepo) Delete(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

type fakeIncidentRepo struct {
	items map[string]*entity.Incident
}

func (r *fakeIncidentRepo) Create(_ context.Context, i *entity.Incident) error {
	r.items[i.ID] = i
	return nil
}

func (r *fakeIncidentRepo) GetByID(_ context.Context, id string) (*entity.Incident, error) {
	return r.items[id], nil
}

func (r *fakeIncidentRepo) Update(_ context.Context, i *entity.Incident) error {
	r.items[i.ID] = i
	return nil
}

func (r *fakeIncidentRepo) List(_ context.Context, _ string, _, _ int) ([]*entity.Incident, int, error) {
	return nil, 0, nil
}

func (r *fakeIncidentRepo) Delete(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

type fakeUserRepo struct {
	items   map[string]*entity.User
	offices map[string][]string
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.items[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return r.items[id], nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.items {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	r.items[u.ID] = u
	return nil
}

func (r *fakeUserRepo) List(_ context.Context, _ string, _, _ int) ([]*entity.User, int, error) {
	return nil, 0, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func (r *fakeUserRepo) OfficeIDs(_ context.Context, userID string) ([]string, error) {
	return r.offices[userID], nil
}

func (r *fakeUserRepo) ReplaceOffices(_ context.Context, userID string, officeIDs []string) error {
	r.offices[userID] = officeIDs
	return nil
}

// fakeMovementRepo guarda movimientos en memoria y resuelve las relaciones
// contra los otros fakes, imitando los joins del repositorio real.
type fakeMovementRepo struct {
	items     map[string]*entity.Movement
	periods   *fakePeriodRepo
	employees *fakeEmployeeRepo
	incidents *fakeIncidentRepo
}

func (r *fakeMovementRepo) Create(_ context.Context, m *entity.Movement) error {
	cp := *m
	r.items[m.ID] = &cp
	return nil
}

func (r *fakeMovementRepo) GetByID(_ context.Context, id string) (*entity.Movement, error) {
	m, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	cp.Period = r.periods.items[m.PeriodID]
	cp.Employee = r.employees.items[m.EmployeeID]
	cp.Incident = r.incidents.items[m.IncidentID]
	return &cp, nil
}

func (r *fakeMovementRepo) Update(_ context.Context, m *entity.Movement) error {
	cp := *m
	r.items[m.ID] = &cp
	return nil
}

func (r *fakeMovementRepo) List(_ context.Context, f repository.MovementFilter) ([]*entity.Movement, int, error) {
	var out []*entity.Movement
	for id, m := range r.items {
		if f.PeriodID != "" && m.PeriodID != f.PeriodID {
			continue
		}
		if f.OfficeIDs != nil {
			emp := r.employees.items[m.EmployeeID]
			if emp == nil || !contains(f.OfficeIDs, emp.OfficeID) {
				continue
			}
		}
		loaded, _ := r.GetByID(context.Background(), id)
		out = append(out, loaded)
	}
	return out, len(out), nil
}

func (r *fakeMovementRepo) ActiveTripleExists(_ context.Context, periodID, employeeID, incidentID, excludeID string) (bool, error) {
	for _, m := range r.items {
		if m.Status != entity.StatusActive {
			continue
		}
		if excludeID != "" && m.ID == excludeID {
			continue
		}
		if m.PeriodID == periodID && m.EmployeeID == employeeID && m.IncidentID == incidentID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeMovementRepo) SetStatus(_ context.Context, id, status string) error {
	if m, ok := r.items[id]; ok {
		m.Status = status
	}
	return nil
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// fakeTxRunner ejecuta fn directamente sobre el repo en memoria.
type fakeTxRunner struct {
	repo repository.MovementRepository
}

func (t *fakeTxRunner) Run(_ context.Context, fn func(repository.MovementRepository) error) error {
	return fn(t.repo)
}
