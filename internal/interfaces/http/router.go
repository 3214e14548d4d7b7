package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kumasoglu/tekstil-api/internal/application/analytics"
	"github.com/kumasoglu/tekstil-api/internal/application/auth"
	"github.com/kumasoglu/tekstil-api/internal/application/backup"
	"github.com/kumasoglu/tekstil-api/internal/application/procurement"
	"github.com/kumasoglu/tekstil-api/internal/application/shipping"
	"github.com/kumasoglu/tekstil-api/internal/application/statement"
	"github.com/kumasoglu/tekstil-api/internal/application/usecase"
	"github.com/kumasoglu/tekstil-api/internal/domain/repository"
)

// PDFGenerator renders both document types the API serves.
type PDFGenerator interface {
	StatementPDFGenerator
	ReceiptPDFGenerator
}

// RouterDeps carries everything the route table needs.
type RouterDeps struct {
	AuthUC        *auth.UseCase
	CustomerUC    *usecase.CustomerUseCase
	ProductUC     *usecase.ProductUseCase
	LotUC         *usecase.LotUseCase
	YarnTypeUC    *usecase.YarnTypeUseCase
	SettingsUC    *usecase.SettingsUseCase
	ShipmentUC    *shipping.ShipmentUseCase
	PaymentUC     *shipping.PaymentUseCase
	SupplierUC    *procurement.SupplierUseCase
	ReceiptUC     *procurement.ReceiptUseCase
	SupplierPayUC *procurement.SupplierPaymentUseCase
	StatementUC   *statement.CustomerStatementUseCase
	ExtractUC     *statement.SupplierExtractUseCase
	DashboardUC   *analytics.DashboardUseCase
	BackupUC      *backup.UseCase

	CustomerRepo repository.CustomerRepository

	PDF       PDFGenerator
	JWTSecret string
}

// Router registers the API routes. Everything except auth requires a
// Bearer token; role guards split the surface between warehouse (depo),
// accounting (muhasebe) and admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Everything below requires a Bearer token.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	depo := RequireRole("admin", "depo")
	muhasebe := RequireRole("admin", "muhasebe")
	anyRole := RequireRole("admin", "depo", "muhasebe")
	adminOnly := RequireRole("admin")

	// Products (warehouse)
	products := protected.Group("/products", depo)
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Lots (warehouse)
	lots := protected.Group("/lots", depo)
	inventoryHandler := NewInventoryHandler(deps.LotUC)
	lots.Post("/", inventoryHandler.Create)
	lots.Get("/", inventoryHandler.List)
	lots.Get("/:id", inventoryHandler.GetByID)
	lots.Put("/:id", inventoryHandler.Update)
	lots.Delete("/:id", inventoryHandler.Delete)

	// Shipments (warehouse; receipt printable by anyone)
	shipments := protected.Group("/shipments")
	shipmentHandler := NewShipmentHandler(deps.ShipmentUC, deps.CustomerRepo, deps.PDF)
	shipments.Post("/", depo, shipmentHandler.Create)
	shipments.Get("/", anyRole, shipmentHandler.List)
	shipments.Get("/:id", anyRole, shipmentHandler.GetByID)
	shipments.Put("/:id", depo, shipmentHandler.Update)
	shipments.Delete("/:id", depo, shipmentHandler.Delete)
	shipments.Get("/:id/receipt", anyRole, shipmentHandler.Receipt)

	// Customers and statements (accounting)
	customers := protected.Group("/customers", muhasebe)
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.StatementUC, deps.PDF)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)
	customers.Post("/:id/rebuild-balance", customerHandler.RebuildBalance)
	customers.Get("/:id/statement", customerHandler.Statement)

	// Customer payments (accounting)
	payments := protected.Group("/payments", muhasebe)
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	payments.Post("/", paymentHandler.Create)
	payments.Get("/", paymentHandler.List)
	payments.Get("/:id", paymentHandler.GetByID)
	payments.Put("/:id", paymentHandler.Update)
	payments.Delete("/:id", paymentHandler.Delete)

	// Suppliers, prices, payments and extracts (accounting)
	supplierHandler := NewSupplierHandler(deps.SupplierUC, deps.SupplierPayUC, deps.ExtractUC, deps.PDF)
	suppliers := protected.Group("/suppliers", muhasebe)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)
	suppliers.Post("/:id/prices", supplierHandler.AddPrice)
	suppliers.Get("/:id/prices", supplierHandler.ListPrices)
	suppliers.Get("/:id/payments", supplierHandler.ListPayments)
	suppliers.Get("/:id/balance", supplierHandler.Balance)
	suppliers.Get("/:id/extract", supplierHandler.Extract)
	protected.Delete("/supplier-prices/:id", muhasebe, supplierHandler.DeletePrice)
	protected.Post("/supplier-payments", muhasebe, supplierHandler.CreatePayment)
	protected.Delete("/supplier-payments/:id", muhasebe, supplierHandler.DeletePayment)

	// Subcontractor receipts, yarn types and production costs
	productionHandler := NewProductionHandler(deps.ReceiptUC, deps.SupplierPayUC, deps.YarnTypeUC)
	rawMaterials := protected.Group("/raw-material-shipments", depo)
	rawMaterials.Post("/", productionHandler.CreateRawMaterial)
	rawMaterials.Get("/", productionHandler.ListRawMaterials)
	rawMaterials.Delete("/:id", productionHandler.DeleteRawMaterial)
	yarnShipments := protected.Group("/yarn-shipments", depo)
	yarnShipments.Post("/", productionHandler.CreateYarn)
	yarnShipments.Get("/", productionHandler.ListYarn)
	yarnShipments.Delete("/:id", productionHandler.DeleteYarn)
	yarnTypes := protected.Group("/yarn-types", depo)
	yarnTypes.Post("/", productionHandler.CreateYarnType)
	yarnTypes.Get("/", productionHandler.ListYarnTypes)
	yarnTypes.Delete("/:id", productionHandler.DeleteYarnType)
	costs := protected.Group("/production-costs", muhasebe)
	costs.Get("/", productionHandler.ListCosts)
	costs.Post("/:id/payments", productionHandler.PayCost)

	// Dashboard (any authenticated role)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", anyRole, dashboardHandler.Summary)

	// Settings (rate readable by all roles, writes admin-only)
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings := protected.Group("/settings")
	settings.Get("/exchange-rate", anyRole, settingsHandler.GetRate)
	settings.Put("/exchange-rate", adminOnly, settingsHandler.SetRate)
	settings.Get("/:key", adminOnly, settingsHandler.Get)
	settings.Put("/:key", adminOnly, settingsHandler.Set)

	// Backup (admin-only)
	backupHandler := NewBackupHandler(deps.BackupUC)
	backupGroup := protected.Group("/backup", adminOnly)
	backupGroup.Get("/export", backupHandler.Export)
	backupGroup.Get("/export/csv", backupHandler.ExportCSV)
	backupGroup.Post("/import", backupHandler.Import)
	backupGroup.Post("/clear", backupHandler.Clear)
}
