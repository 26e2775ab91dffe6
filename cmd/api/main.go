package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jportillo/incidencias-api/internal/application/auth"
	"github.com/jportillo/incidencias-api/internal/application/movement"
	"github.com/jportillo/incidencias-api/internal/application/usecase"
	"github.com/jportillo/incidencias-api/internal/infrastructure/postgres"
	httpRouter "github.com/jportillo/incidencias-api/internal/interfaces/http"
	"github.com/jportillo/incidencias-api/pkg/config"
	"github.com/jportillo/incidencias-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	officeRepo := postgres.NewOfficeRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	incidentRepo := postgres.NewIncidentRepository(pool)
	periodRepo := postgres.NewPeriodRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	companyUC := usecase.NewCompanyUseCase(companyRepo)
	officeUC := usecase.NewOfficeUseCase(officeRepo, companyRepo)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo, officeRepo)
	incidentUC := usecase.NewIncidentUseCase(incidentRepo)
	periodUC := usecase.NewPeriodUseCase(periodRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	movementUC := movement.NewUseCase(txRunner, movementRepo, periodRepo, employeeRepo, incidentRepo, userRepo)
	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Incidencias API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		CompanyUC:  companyUC,
		OfficeUC:   officeUC,
		EmployeeUC: employeeUC,
		IncidentUC: incidentUC,
		PeriodUC:   periodUC,
		UserUC:     userUC,
		MovementUC: movementUC,
		JWTSecret:  cfg.JWT.Secret,
		Session: httpRouter.SessionConfig{
			CookieName: cfg.Session.CookieName,
			ExpMinutes: cfg.JWT.Expiration,
			Secure:     cfg.Session.Secure,
		},
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
