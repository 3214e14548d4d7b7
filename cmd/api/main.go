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

	appanalytics "github.com/kumasoglu/tekstil-api/internal/application/analytics"
	"github.com/kumasoglu/tekstil-api/internal/application/auth"
	appbackup "github.com/kumasoglu/tekstil-api/internal/application/backup"
	"github.com/kumasoglu/tekstil-api/internal/application/procurement"
	"github.com/kumasoglu/tekstil-api/internal/application/shipping"
	"github.com/kumasoglu/tekstil-api/internal/application/statement"
	"github.com/kumasoglu/tekstil-api/internal/application/usecase"
	infrapdf "github.com/kumasoglu/tekstil-api/internal/infrastructure/pdf"
	"github.com/kumasoglu/tekstil-api/internal/infrastructure/postgres"
	httpRouter "github.com/kumasoglu/tekstil-api/internal/interfaces/http"
	"github.com/kumasoglu/tekstil-api/pkg/config"
	"github.com/kumasoglu/tekstil-api/pkg/logger"
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

	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	lotRepo := postgres.NewLotRepository(pool)
	shipmentRepo := postgres.NewShipmentRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	supplierPriceRepo := postgres.NewSupplierPriceRepository(pool)
	supplierPaymentRepo := postgres.NewSupplierPaymentRepository(pool)
	costRepo := postgres.NewProductionCostRepository(pool)
	rawRepo := postgres.NewRawMaterialRepository(pool)
	yarnRepo := postgres.NewYarnShipmentRepository(pool)
	yarnTypeRepo := postgres.NewYarnTypeRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	backupRepo := postgres.NewBackupRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewUseCase(userRepo, cfg.JWT)
	customerUC := usecase.NewCustomerUseCase(customerRepo, shipmentRepo, paymentRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	lotUC := usecase.NewLotUseCase(lotRepo, productRepo)
	yarnTypeUC := usecase.NewYarnTypeUseCase(yarnTypeRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)

	shipmentUC := shipping.NewShipmentUseCase(txRunner, shipmentRepo, customerRepo, productRepo, lotRepo, settingsRepo)
	paymentUC := shipping.NewPaymentUseCase(txRunner, paymentRepo, customerRepo)

	supplierUC := procurement.NewSupplierUseCase(supplierRepo, supplierPriceRepo)
	receiptUC := procurement.NewReceiptUseCase(txRunner, supplierRepo, rawRepo, yarnRepo, costRepo)
	supplierPayUC := procurement.NewSupplierPaymentUseCase(txRunner, supplierRepo, supplierPaymentRepo, costRepo, settingsRepo, log)

	statementUC := statement.NewCustomerStatementUseCase(customerRepo, shipmentRepo, paymentRepo, settingsRepo)
	extractUC := statement.NewSupplierExtractUseCase(supplierRepo, costRepo, supplierPaymentRepo, settingsRepo, log)

	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo, settingsRepo)
	backupUC := appbackup.NewUseCase(backupRepo, log)

	pdfGenerator := infrapdf.NewGenerator()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI in local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Tekstil API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		CustomerUC:    customerUC,
		ProductUC:     productUC,
		LotUC:         lotUC,
		YarnTypeUC:    yarnTypeUC,
		SettingsUC:    settingsUC,
		ShipmentUC:    shipmentUC,
		PaymentUC:     paymentUC,
		SupplierUC:    supplierUC,
		ReceiptUC:     receiptUC,
		SupplierPayUC: supplierPayUC,
		StatementUC:   statementUC,
		ExtractUC:     extractUC,
		DashboardUC:   dashboardUC,
		BackupUC:      backupUC,
		CustomerRepo:  customerRepo,
		PDF:           pdfGenerator,
		JWTSecret:     cfg.JWT.Secret,
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
