package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dstore/dsms-api/internal/application/analytics"
	"github.com/dstore/dsms-api/internal/application/auth"
	"github.com/dstore/dsms-api/internal/application/orders"
	"github.com/dstore/dsms-api/internal/application/usecase"
	"github.com/dstore/dsms-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *usecase.ProductUseCase
	CategoryUC  *usecase.CategoryUseCase
	SupplierUC  *usecase.SupplierUseCase
	UserUC      *usecase.UserUseCase
	ExpenseUC   *usecase.ExpenseUseCase
	PlaceOrder  *orders.PlaceOrderUseCase
	StatusGuard *orders.StatusGuardUseCase
	OrderQuery  *orders.QueryUseCase
	DashboardUC *analytics.DashboardUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	staffOnly := RequireRole(entity.RoleAdmin, entity.RoleEmployee)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Products: catálogo público de lectura; mutaciones solo personal del almacén.
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", AuthMiddleware(deps.JWTSecret), staffOnly, productHandler.Create)
	products.Put("/:id", AuthMiddleware(deps.JWTSecret), staffOnly, productHandler.Update)
	products.Delete("/:id", AuthMiddleware(deps.JWTSecret), staffOnly, productHandler.Delete)

	// Categories: lectura pública, mutaciones de personal.
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Post("/", AuthMiddleware(deps.JWTSecret), staffOnly, categoryHandler.Create)
	categories.Put("/:id", AuthMiddleware(deps.JWTSecret), staffOnly, categoryHandler.Update)
	categories.Delete("/:id", AuthMiddleware(deps.JWTSecret), staffOnly, categoryHandler.Delete)

	// Suppliers (personal del almacén)
	suppliers := api.Group("/suppliers", AuthMiddleware(deps.JWTSecret), staffOnly)
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Orders (cualquier usuario autenticado; las rutas de administración van aparte)
	ordersGroup := api.Group("/orders", AuthMiddleware(deps.JWTSecret))
	orderHandler := NewOrderHandler(deps.PlaceOrder, deps.StatusGuard, deps.OrderQuery)
	ordersGroup.Post("/", orderHandler.Place)
	ordersGroup.Get("/", orderHandler.ListMine)
	ordersGroup.Get("/all", staffOnly, orderHandler.ListAll)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Patch("/:id/status", staffOnly, orderHandler.ChangeStatus)
	ordersGroup.Delete("/:id", orderHandler.Delete)

	// Users (solo admin)
	users := api.Group("/users", AuthMiddleware(deps.JWTSecret), adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Expenses (solo admin)
	expenses := api.Group("/expenses", AuthMiddleware(deps.JWTSecret), adminOnly)
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Post("/", expenseHandler.Add)
	expenses.Get("/summary", expenseHandler.MonthlySummary)

	// Dashboard (admin y empleados)
	dashboard := api.Group("/dashboard", AuthMiddleware(deps.JWTSecret), staffOnly)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/", dashboardHandler.Summary)
}
