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

	"github.com/mtechuganda/backoffice-api/internal/application/auth"
	"github.com/mtechuganda/backoffice-api/internal/application/documents"
	"github.com/mtechuganda/backoffice-api/internal/application/reports"
	"github.com/mtechuganda/backoffice-api/internal/application/stock"
	"github.com/mtechuganda/backoffice-api/internal/application/usecase"
	infrapdf "github.com/mtechuganda/backoffice-api/internal/infrastructure/pdf"
	"github.com/mtechuganda/backoffice-api/internal/infrastructure/postgres"
	infraredis "github.com/mtechuganda/backoffice-api/internal/infrastructure/redis"
	"github.com/mtechuganda/backoffice-api/internal/infrastructure/upload"
	httpRouter "github.com/mtechuganda/backoffice-api/internal/interfaces/http"
	"github.com/mtechuganda/backoffice-api/pkg/config"
	"github.com/mtechuganda/backoffice-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}
	if cfg.JWT.Secret == "" {
		panic("JWT_SECRET is required")
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
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("apply migrations")
		}
		log.Info().Msg("migrations up to date")
	}

	// Report cache is optional: without REDIS_ADDR the dashboard hits the
	// database on every request.
	var cache reports.Cache
	if cfg.Redis.Addr != "" {
		redisCache, err := infraredis.NewCache(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("connect to Redis")
		}
		defer redisCache.Close()
		cache = redisCache
		log.Info().Str("addr", cfg.Redis.Addr).Msg("report cache enabled")
	}

	storage, err := upload.NewStorage(cfg.Upload)
	if err != nil {
		log.Fatal().Err(err).Msg("prepare upload directory")
	}

	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	taxRateRepo := postgres.NewTaxRateRepository(pool)
	priceListRepo := postgres.NewPriceListRepository(pool)
	contactRepo := postgres.NewContactRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	documentRepo := postgres.NewDocumentRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	taxRateUC := usecase.NewTaxRateUseCase(taxRateRepo)
	priceListUC := usecase.NewPriceListUseCase(priceListRepo, productRepo)
	contactUC := usecase.NewContactUseCase(contactRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	stockUC := stock.NewUseCase(txRunner, movementRepo)
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	documentUC := documents.NewUseCase(
		txRunner, stockUC,
		documentRepo, productRepo, taxRateRepo, contactRepo, companyRepo,
		pdfGenerator,
	)
	reportUC := reports.NewUseCase(reportRepo, productRepo, cache)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "MTECH Backoffice API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	// Uploaded images (product photos, avatars, company logo) are served
	// straight from the upload directory.
	app.Static("/uploads", storage.Dir())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		CategoryUC:  categoryUC,
		TaxRateUC:   taxRateUC,
		PriceListUC: priceListUC,
		ContactUC:   contactUC,
		UserUC:      userUC,
		CompanyUC:   companyUC,
		StockUC:     stockUC,
		DocumentUC:  documentUC,
		ReportUC:    reportUC,
		Storage:     storage,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
