package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jportillo/incidencias-api/internal/application/auth"
	"github.com/jportillo/incidencias-api/internal/application/authz"
	"github.com/jportillo/incidencias-api/internal/application/movement"
	"github.com/jportillo/incidencias-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.UseCase
	CompanyUC  *usecase.CompanyUseCase
	OfficeUC   *usecase.OfficeUseCase
	EmployeeUC *usecase.EmployeeUseCase
	IncidentUC *usecase.IncidentUseCase
	PeriodUC   *usecase.PeriodUseCase
	UserUC     *usecase.UserUseCase
	MovementUC *movement.UseCase
	JWTSecret  string
	Session    SessionConfig
}

// crudHandler contrato común de los handlers de catálogo.
type crudHandler interface {
	Create(c *fiber.Ctx) error
	GetByID(c *fiber.Ctx) error
	List(c *fiber.Ctx) error
	Update(c *fiber.Ctx) error
	Delete(c *fiber.Ctx) error
}

// mountCRUD registra las cinco rutas estándar de un recurso con sus permisos.
func mountCRUD(g fiber.Router, resource authz.Resource, h crudHandler) {
	g.Get("/", RequirePermission(resource, authz.ActionRead), h.List)
	g.Get("/:id", RequirePermission(resource, authz.ActionRead), h.GetByID)
	g.Post("/", RequirePermission(resource, authz.ActionWrite), h.Create)
	g.Put("/:id", RequirePermission(resource, authz.ActionWrite), h.Update)
	g.Delete("/:id", RequirePermission(resource, authz.ActionDelete), h.Delete)
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login/register públicos; me/logout requieren sesión)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Session)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret, deps.Session.CookieName), authHandler.Me)
	authGroup.Post("/logout", AuthMiddleware(deps.JWTSecret, deps.Session.CookieName), authHandler.Logout)

	// Rutas protegidas (cookie de sesión o Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.Session.CookieName))

	mountCRUD(protected.Group("/companies"), authz.ResourceCompanies, NewCompanyHandler(deps.CompanyUC))
	mountCRUD(protected.Group("/offices"), authz.ResourceOffices, NewOfficeHandler(deps.OfficeUC))
	mountCRUD(protected.Group("/employees"), authz.ResourceEmployees, NewEmployeeHandler(deps.EmployeeUC))
	mountCRUD(protected.Group("/incidents"), authz.ResourceIncidents, NewIncidentHandler(deps.IncidentUC))
	mountCRUD(protected.Group("/periods"), authz.ResourcePeriods, NewPeriodHandler(deps.PeriodUC))
	mountCRUD(protected.Group("/users"), authz.ResourceUsers, NewUserHandler(deps.UserUC))
	mountCRUD(protected.Group("/movements"), authz.ResourceMovements, NewMovementHandler(deps.MovementUC))
}
