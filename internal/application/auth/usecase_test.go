package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jportillo/incidencias-api/internal/application/auth"
	"github.com/jportillo/incidencias-api/internal/application/dto"
	"github.com/jportillo/incidencias-api/internal/domain"
	"github.com/jportillo/incidencias-api/internal/domain/entity"
)

type fakeUserRepo struct {
	items   map[string]*entity.User
	offices map[string][]string
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{items: map[string]*entity.User{}, offices: map[string][]string{}}
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

func newUseCase(repo *fakeUserRepo) *auth.UseCase {
	return auth.NewUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "incidencias-api-test",
	})
}

func TestRegister_RolPorDefecto(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUseCase(repo)

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:    "nuevo@test.mx",
		Password: "password123",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleEncargadoCasino, out.Role, "sin rol explícito se asigna ENCARGADO_CASINO")
	assert.Equal(t, entity.StatusActive, out.Status)
	assert.Equal(t, "nuevo@test.mx", out.Name, "sin nombre se usa el email")

	stored := repo.items[out.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "password123", stored.PasswordHash, "el password nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password123")))
}

func TestRegister_EmailDuplicado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUseCase(repo)
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{Email: "dup@test.mx", Password: "password123"})
	require.NoError(t, err)

	_, err = uc.Register(ctx, dto.RegisterRequest{Email: "dup@test.mx", Password: "otropassword"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_OK(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUseCase(repo)
	ctx := context.Background()

	created, err := uc.Register(ctx, dto.RegisterRequest{Email: "login@test.mx", Password: "password123"})
	require.NoError(t, err)
	repo.offices[created.ID] = []string{"of-1"}

	out, err := uc.Login(ctx, dto.LoginRequest{Email: "login@test.mx", Password: "password123"})
	require.NoError(t, err)

	assert.NotEmpty(t, out.Token)
	assert.Equal(t, created.ID, out.User.ID)
	assert.Equal(t, []string{"of-1"}, out.User.OfficeIDs, "el login carga las oficinas vinculadas")
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUseCase(repo)
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{Email: "login@test.mx", Password: "password123"})
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "login@test.mx", Password: "incorrecto"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Email desconocido y password incorrecto deben ser indistinguibles para el
// cliente: ambos caen al mismo error 401.
func TestLogin_EmailDesconocidoRespondeIgualQuePasswordIncorrecto(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUseCase(repo)
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{Email: "existe@test.mx", Password: "password123"})
	require.NoError(t, err)

	_, errUnknown := uc.Login(ctx, dto.LoginRequest{Email: "nadie@test.mx", Password: "password123"})
	_, errWrongPass := uc.Login(ctx, dto.LoginRequest{Email: "existe@test.mx", Password: "incorrecto"})

	assert.ErrorIs(t, errUnknown, domain.ErrUnauthorized)
	assert.ErrorIs(t, errWrongPass, domain.ErrUnauthorized)
	assert.Equal(t, errUnknown, errWrongPass, "ambos fallos de credenciales responden el mismo error")
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUseCase(repo)
	ctx := context.Background()

	created, err := uc.Register(ctx, dto.RegisterRequest{Email: "baja@test.mx", Password: "password123"})
	require.NoError(t, err)
	repo.items[created.ID].Status = entity.StatusInactive

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "baja@test.mx", Password: "password123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestMe(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUseCase(repo)
	ctx := context.Background()

	created, err := uc.Register(ctx, dto.RegisterRequest{Email: "me@test.mx", Password: "password123"})
	require.NoError(t, err)

	out, err := uc.Me(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "me@test.mx", out.Email)

	_, err = uc.Me(ctx, "99999999-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
