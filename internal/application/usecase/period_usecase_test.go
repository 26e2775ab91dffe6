package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jportillo/incidencias-api/internal/application/dto"
	"github.com/jportillo/incidencias-api/internal/application/usecase"
	"github.com/jportillo/incidencias-api/internal/domain"
	"github.com/jportillo/incidencias-api/internal/domain/entity"
)

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
	out := make([]*entity.Period, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, p)
	}
	return out, len(out), nil
}

func (r *fakePeriodRepo) Delete(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func newPeriodUC() (*usecase.PeriodUseCase, *fakePeriodRepo) {
	repo := &fakePeriodRepo{items: map[string]*entity.Period{}}
	return usecase.NewPeriodUseCase(repo), repo
}

func TestPeriodCreate(t *testing.T) {
	uc, repo := newPeriodUC()

	out, err := uc.Create(context.Background(), dto.CreatePeriodRequest{
		Name:      "1ra quincena marzo",
		StartDate: "2025-03-01",
		EndDate:   "2025-03-15",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.StatusActive, out.Status, "los periodos nacen ACTIVE")
	assert.Equal(t, "2025-03-01", out.StartDate)
	assert.Equal(t, "2025-03-15", out.EndDate)
	assert.Contains(t, repo.items, out.ID)
}

func TestPeriodCreate_FechasInvalidas(t *testing.T) {
	uc, _ := newPeriodUC()
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreatePeriodRequest{Name: "x", StartDate: "01/03/2025", EndDate: "2025-03-15"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// fin anterior al inicio
	_, err = uc.Create(ctx, dto.CreatePeriodRequest{Name: "x", StartDate: "2025-03-15", EndDate: "2025-03-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// un periodo de un solo día es válido
	_, err = uc.Create(ctx, dto.CreatePeriodRequest{Name: "x", StartDate: "2025-03-15", EndDate: "2025-03-15"})
	assert.NoError(t, err)
}

func TestPeriodUpdate_NoEncontrado(t *testing.T) {
	uc, _ := newPeriodUC()
	_, err := uc.Update(context.Background(), "99999999-0000-0000-0000-000000000000", dto.UpdatePeriodRequest{
		Name:      "x",
		StartDate: "2025-03-01",
		EndDate:   "2025-03-15",
		Status:    entity.StatusActive,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPeriodDelete(t *testing.T) {
	uc, repo := newPeriodUC()
	ctx := context.Background()

	out, err := uc.Create(ctx, dto.CreatePeriodRequest{Name: "x", StartDate: "2025-03-01", EndDate: "2025-03-15"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, out.ID))
	assert.NotContains(t, repo.items, out.ID)

	assert.ErrorIs(t, uc.Delete(ctx, out.ID), domain.ErrNotFound)
}
