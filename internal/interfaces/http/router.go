package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mtechuganda/backoffice-api/internal/application/auth"
	"github.com/mtechuganda/backoffice-api/internal/application/documents"
	"github.com/mtechuganda/backoffice-api/internal/application/reports"
	"github.com/mtechuganda/backoffice-api/internal/application/stock"
	"github.com/mtechuganda/backoffice-api/internal/application/usecase"
	"github.com/mtechuganda/backoffice-api/internal/domain/entity"
	"github.com/mtechuganda/backoffice-api/internal/infrastructure/upload"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	ProductUC   *usecase.ProductUseCase
	CategoryUC  *usecase.CategoryUseCase
	TaxRateUC   *usecase.TaxRateUseCase
	PriceListUC *usecase.PriceListUseCase
	ContactUC   *usecase.ContactUseCase
	UserUC      *usecase.UserUseCase
	CompanyUC   *usecase.CompanyUseCase
	StockUC     *stock.UseCase
	DocumentUC  *documents.UseCase
	ReportUC    *reports.UseCase
	Storage     *upload.Storage
	JWTSecret   string
}

// Router registers the API routes.
//
// Role rules: admins manage users and the company profile; admins and
// managers maintain the catalog, contacts and stock; cashiers can read the
// catalog and create documents.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	staff := RequireRole(entity.RoleAdmin, entity.RoleManager)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth (login is public; the rest needs a token)
	authHandler := NewAuthHandler(deps.AuthUC, deps.UserUC)
	api.Post("/auth/login", authHandler.Login)

	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)
	protected.Post("/auth/change-password", authHandler.ChangePassword)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.Storage)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", staff, productHandler.Create)
	products.Put("/:id", staff, productHandler.Update)
	products.Post("/:id/image", staff, productHandler.UploadImage)
	products.Delete("/:id", staff, productHandler.Delete)

	// Categories
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", staff, categoryHandler.Create)
	categories.Put("/:id", staff, categoryHandler.Update)
	categories.Delete("/:id", staff, categoryHandler.Delete)

	// Tax rates
	taxRates := protected.Group("/tax-rates")
	taxRateHandler := NewTaxRateHandler(deps.TaxRateUC)
	taxRates.Get("/", taxRateHandler.List)
	taxRates.Post("/", staff, taxRateHandler.Create)
	taxRates.Put("/:id", staff, taxRateHandler.Update)
	taxRates.Delete("/:id", staff, taxRateHandler.Delete)

	// Price lists
	priceLists := protected.Group("/price-lists")
	priceListHandler := NewPriceListHandler(deps.PriceListUC)
	priceLists.Get("/", priceListHandler.List)
	priceLists.Post("/", staff, priceListHandler.Create)
	priceLists.Put("/:id", staff, priceListHandler.Update)
	priceLists.Delete("/:id", staff, priceListHandler.Delete)
	priceLists.Get("/:id/items", priceListHandler.ListItems)
	priceLists.Put("/:id/items", staff, priceListHandler.SetItem)
	priceLists.Delete("/:id/items/:productId", staff, priceListHandler.DeleteItem)

	// Contacts
	contacts := protected.Group("/contacts")
	contactHandler := NewContactHandler(deps.ContactUC)
	contacts.Get("/", contactHandler.List)
	contacts.Get("/:id", contactHandler.GetByID)
	contacts.Post("/", staff, contactHandler.Create)
	contacts.Put("/:id", staff, contactHandler.Update)
	contacts.Delete("/:id", staff, contactHandler.Delete)

	// Stock
	stockGroup := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stockGroup.Get("/movements", stockHandler.Movements)
	stockGroup.Post("/add", staff, stockHandler.Add)
	stockGroup.Post("/adjust", staff, stockHandler.Adjust)

	// Documents (cashiers sell)
	docs := protected.Group("/documents")
	documentHandler := NewDocumentHandler(deps.DocumentUC)
	docs.Get("/", documentHandler.List)
	docs.Get("/:id", documentHandler.GetByID)
	docs.Get("/:id/pdf", documentHandler.PDF)
	docs.Post("/", documentHandler.Create)
	docs.Put("/:id/paid", staff, documentHandler.SetPaid)

	// Reports + dashboard
	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/dashboard", reportHandler.Dashboard)
	reportsGroup := protected.Group("/reports", staff)
	reportsGroup.Get("/sales-summary", reportHandler.SalesSummary)
	reportsGroup.Get("/sales-by-customer", reportHandler.SalesByCustomer)
	reportsGroup.Get("/sales-by-customer.xlsx", reportHandler.SalesByCustomerXLSX)
	reportsGroup.Get("/stock-valuation", reportHandler.StockValuation)
	reportsGroup.Get("/low-stock", reportHandler.LowStock)

	// Users + company (admin)
	users := protected.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.UserUC, deps.Storage)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Post("/", userHandler.Create)
	users.Put("/:id", userHandler.Update)
	users.Post("/:id/reset-password", userHandler.ResetPassword)
	users.Post("/:id/avatar", userHandler.UploadAvatar)

	company := protected.Group("/company")
	companyHandler := NewCompanyHandler(deps.CompanyUC, deps.Storage)
	company.Get("/", companyHandler.Get)
	company.Put("/", adminOnly, companyHandler.Update)
	company.Post("/logo", adminOnly, companyHandler.UploadLogo)
}
