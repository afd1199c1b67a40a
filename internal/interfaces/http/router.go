package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/antiquehaven/antique-haven-api/internal/application/auth"
	"github.com/antiquehaven/antique-haven-api/internal/application/dto"
	"github.com/antiquehaven/antique-haven-api/internal/application/reports"
	"github.com/antiquehaven/antique-haven-api/internal/application/sales"
	"github.com/antiquehaven/antique-haven-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	UserUC         *usecase.UserUseCase
	InventoryUC    *usecase.InventoryUseCase
	CreateSaleUC   *sales.CreateSaleUseCase
	SaleQueryUC    *sales.QueryUseCase
	ExpenseUC      *usecase.ExpenseUseCase
	NotificationUC *usecase.NotificationUseCase
	ReportUC       *reports.ReportUseCase
	JWTSecret      string
}

// Router registra las rutas de la API. Cada grupo protegido lleva el gate
// de permisos de su subject; las notificaciones solo requieren auth porque
// la visibilidad por rol se resuelve en el caso de uso.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", limiter.New(limiter.Config{
		Max:        100,
		Expiration: 15 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{Code: "RATE_LIMITED", Message: "demasiadas peticiones"})
		},
	}))

	// Auth: login público con limiter estricto, logout autenticado
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: time.Hour,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{Code: "RATE_LIMITED", Message: "demasiados intentos de login"})
		},
	}), authHandler.Login)
	authGroup.Post("/logout", AuthMiddleware(deps.JWTSecret), authHandler.Logout)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Users (solo quien tenga manage/users, es decir ADMIN)
	users := protected.Group("/users", RequirePermission("manage", "users"))
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Get("/:id/stats", userHandler.Stats)
	users.Put("/:id", userHandler.Update)
	users.Post("/:id/deactivate", userHandler.Deactivate)

	// Inventory: lecturas para todos los roles con read/inventory,
	// escrituras solo manage/inventory
	inventory := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inventory.Get("/", RequirePermission("read", "inventory"), inventoryHandler.List)
	inventory.Get("/low-stock", RequirePermission("read", "inventory"), inventoryHandler.ListLowStock)
	inventory.Get("/stats", RequirePermission("read", "inventory"), inventoryHandler.Stats)
	inventory.Get("/:id", RequirePermission("read", "inventory"), inventoryHandler.GetByID)
	inventory.Post("/", RequirePermission("manage", "inventory"), inventoryHandler.Create)
	inventory.Put("/:id", RequirePermission("manage", "inventory"), inventoryHandler.Update)
	inventory.Delete("/:id", RequirePermission("manage", "inventory"), inventoryHandler.Delete)

	// Sales: crear exige manage/sales (ATTENDANT y ADMIN); leer, read/reports
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.CreateSaleUC, deps.SaleQueryUC)
	salesGroup.Post("/", RequirePermission("manage", "sales"), saleHandler.Create)
	salesGroup.Get("/", RequirePermission("read", "reports"), saleHandler.List)
	salesGroup.Get("/date-range", RequirePermission("read", "reports"), saleHandler.ListByDateRange)
	salesGroup.Get("/stats", RequirePermission("read", "reports"), saleHandler.Stats)

	// Expenses (manage/expenses: OWNER y ADMIN)
	expenses := protected.Group("/expenses", RequirePermission("manage", "expenses"))
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/", expenseHandler.List)
	expenses.Get("/stats", expenseHandler.Stats)
	expenses.Put("/:id", expenseHandler.Update)
	expenses.Delete("/:id", expenseHandler.Delete)

	// Notifications: cualquier usuario autenticado; la visibilidad por rol
	// la filtra el caso de uso
	notifications := protected.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications.Post("/", notificationHandler.Create)
	notifications.Get("/", notificationHandler.List)
	notifications.Get("/preferences", notificationHandler.GetPreferences)
	notifications.Put("/preferences", notificationHandler.UpdatePreferences)
	notifications.Post("/read-all", notificationHandler.MarkAllRead)
	notifications.Post("/:id/read", notificationHandler.MarkRead)
	notifications.Delete("/:id", notificationHandler.Delete)

	// Reports (read/reports: OWNER y ADMIN)
	reportsGroup := protected.Group("/reports", RequirePermission("read", "reports"))
	reportHandler := NewReportHandler(deps.ReportUC)
	reportsGroup.Get("/sales-summary", reportHandler.SalesSummary)
	reportsGroup.Get("/sales-summary/pdf", reportHandler.SalesSummaryPDF)
	reportsGroup.Get("/profit-analysis", reportHandler.ProfitAnalysis)
	reportsGroup.Get("/inventory-value", reportHandler.InventoryValue)
	reportsGroup.Get("/expense-summary", reportHandler.ExpenseSummary)
}
