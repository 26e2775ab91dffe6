package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jportillo/incidencias-api/internal/application/authz"
	"github.com/jportillo/incidencias-api/internal/domain/entity"
	apphttp "github.com/jportillo/incidencias-api/internal/interfaces/http"
	pkgjwt "github.com/jportillo/incidencias-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret  = "test-secret-key-for-unit-tests"
	testCookieName = "incidencias_session"
	testUserID     = "00000000-0000-0000-0000-000000000001"
	testIssuer     = "incidencias-api-test"
	testExpMin     = 60
)

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para validar la sesión (cookie o Bearer) y cargar locals
//   - RequirePermission para autorizar contra la tabla de permisos
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(resource authz.Resource, action authz.Action) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret, testCookieName),
		apphttp.RequirePermission(resource, action),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// tokenForRole genera un JWT con el rol indicado.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return tok
}

// doRequest lanza una petición GET /protected con el token en el transporte
// indicado ("cookie", "bearer" o "" para ninguno) y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, transport, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	switch transport {
	case "cookie":
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: token})
	case "bearer":
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — transporte del token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_CookieDeSesion(t *testing.T) {
	app := buildTestApp(authz.ResourceMovements, authz.ActionRead)
	resp := doRequest(t, app, "cookie", tokenForRole(t, entity.RoleEncargadoCasino))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"la cookie httpOnly de sesión debe autenticar la petición")
}

func TestAuthMiddleware_BearerFallback(t *testing.T) {
	app := buildTestApp(authz.ResourceMovements, authz.ActionRead)
	resp := doRequest(t, app, "bearer", tokenForRole(t, entity.RoleEncargadoCasino))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"Authorization: Bearer debe funcionar como fallback para clientes API")
}

func TestAuthMiddleware_SinToken(t *testing.T) {
	app := buildTestApp(authz.ResourceMovements, authz.ActionRead)
	resp := doRequest(t, app, "", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestAuthMiddleware_TokenInvalido(t *testing.T) {
	app := buildTestApp(authz.ResourceMovements, authz.ActionRead)
	resp := doRequest(t, app, "cookie", "token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

func TestAuthMiddleware_ExtraeClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret, testCookieName), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"role":    apphttp.GetRole(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: tokenForRole(t, entity.RoleEncargadoRRHH)})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, entity.RoleEncargadoRRHH, body["role"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequirePermission
// ──────────────────────────────────────────────────────────────────────────────

func TestRequirePermission_RolPermitido(t *testing.T) {
	app := buildTestApp(authz.ResourceMovements, authz.ActionWrite)
	resp := doRequest(t, app, "cookie", tokenForRole(t, entity.RoleEncargadoCasino))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"el encargado de casino puede capturar movimientos")
}

func TestRequirePermission_RolBloqueado(t *testing.T) {
	app := buildTestApp(authz.ResourceMovements, authz.ActionWrite)
	resp := doRequest(t, app, "cookie", tokenForRole(t, entity.RoleSupervisorRegiones))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"el supervisor de regiones solo consulta")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

func TestRequirePermission_SuperAdminPasaSiempre(t *testing.T) {
	app := buildTestApp(authz.ResourceUsers, authz.ActionDelete)
	resp := doRequest(t, app, "cookie", tokenForRole(t, entity.RoleSuperAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
