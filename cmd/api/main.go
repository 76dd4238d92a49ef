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

	"github.com/viewlist/viewlist-api/internal/application/auth"
	"github.com/viewlist/viewlist-api/internal/application/dto"
	"github.com/viewlist/viewlist-api/internal/application/usecase"
	"github.com/viewlist/viewlist-api/internal/infrastructure/postgres"
	httpRouter "github.com/viewlist/viewlist-api/internal/interfaces/http"
	"github.com/viewlist/viewlist-api/pkg/config"
	"github.com/viewlist/viewlist-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	salesRepo := postgres.NewSalesRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	companyUC := usecase.NewCompanyUseCase(companyRepo)
	itemUC := usecase.NewItemUseCase(itemRepo)
	salesUC := usecase.NewSalesUseCase(salesRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
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
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI locally: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Viewlist API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC: companyUC,
		ItemUC:    itemUC,
		SalesUC:   salesUC,
		AuthUC:    authUC,
		JWTSecret: cfg.JWT.Secret,
		Env:       cfg.App.Env,
	})

	// Anything that falls through every registered route is a 404.
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.Response{
			Success: false,
			Message: "Route not found",
		})
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
