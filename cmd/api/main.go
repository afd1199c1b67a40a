package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/antiquehaven/antique-haven-api/internal/application/auth"
	"github.com/antiquehaven/antique-haven-api/internal/application/reports"
	"github.com/antiquehaven/antique-haven-api/internal/application/sales"
	"github.com/antiquehaven/antique-haven-api/internal/application/usecase"
	"github.com/antiquehaven/antique-haven-api/internal/infrastructure/cache"
	infrapdf "github.com/antiquehaven/antique-haven-api/internal/infrastructure/pdf"
	"github.com/antiquehaven/antique-haven-api/internal/infrastructure/postgres"
	httpRouter "github.com/antiquehaven/antique-haven-api/internal/interfaces/http"
	"github.com/antiquehaven/antique-haven-api/pkg/config"
	"github.com/antiquehaven/antique-haven-api/pkg/logger"
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

	userRepo := postgres.NewUserRepository(pool)
	itemRepo := postgres.NewInventoryRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	notifRepo := postgres.NewNotificationRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Caché de reportes: opcional, la app funciona sin Redis
	var reportCache reports.Cache
	redisCache, err := cache.NewRedisCache(ctx, cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Redis")
	}
	if redisCache != nil {
		defer redisCache.Close()
		reportCache = redisCache
		log.Info().Str("addr", cfg.Redis.Addr).Msg("caché de reportes habilitada")
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo, reportRepo)
	inventoryUC := usecase.NewInventoryUseCase(itemRepo, reportRepo)
	createSaleUC := sales.NewCreateSaleUseCase(txRunner, sales.Config{
		LowMarginPct: cfg.Sales.LowMarginPct,
		MaxRetries:   cfg.Sales.TxMaxRetries,
	})
	saleQueryUC := sales.NewQueryUseCase(saleRepo, reportRepo)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo, reportRepo)
	notificationUC := usecase.NewNotificationUseCase(notifRepo)
	reportUC := reports.NewReportUseCase(
		reportRepo, itemRepo, reportCache, infrapdf.NewMarotoReportGenerator(), log,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Antique Haven API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		UserUC:         userUC,
		InventoryUC:    inventoryUC,
		CreateSaleUC:   createSaleUC,
		SaleQueryUC:    saleQueryUC,
		ExpenseUC:      expenseUC,
		NotificationUC: notificationUC,
		ReportUC:       reportUC,
		JWTSecret:      cfg.JWT.Secret,
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
