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

	"github.com/dstore/dsms-api/internal/application/analytics"
	"github.com/dstore/dsms-api/internal/application/auth"
	"github.com/dstore/dsms-api/internal/application/orders"
	"github.com/dstore/dsms-api/internal/application/usecase"
	"github.com/dstore/dsms-api/internal/infrastructure/postgres"
	httpRouter "github.com/dstore/dsms-api/internal/interfaces/http"
	"github.com/dstore/dsms-api/pkg/config"
	"github.com/dstore/dsms-api/pkg/logger"
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

	productRepo := postgres.NewProductRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)

	placeOrderUC := orders.NewPlaceOrderUseCase(productRepo, orderRepo, log)
	statusGuardUC := orders.NewStatusGuardUseCase(orderRepo, productRepo, log)
	orderQueryUC := orders.NewQueryUseCase(orderRepo)

	productUC := usecase.NewProductUseCase(productRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo)
	dashboardUC := analytics.NewDashboardUseCase(analyticsRepo)

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

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		CategoryUC:  categoryUC,
		SupplierUC:  supplierUC,
		UserUC:      userUC,
		ExpenseUC:   expenseUC,
		PlaceOrder:  placeOrderUC,
		StatusGuard: statusGuardUC,
		OrderQuery:  orderQueryUC,
		DashboardUC: dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
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
