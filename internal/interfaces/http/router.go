package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/barsilva/bar-erp/internal/application/analytics"
	"github.com/barsilva/bar-erp/internal/application/auth"
	"github.com/barsilva/bar-erp/internal/application/ledger"
	"github.com/barsilva/bar-erp/internal/application/usecase"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	TransactionUC *usecase.TransactionUseCase
	ClientUC      *usecase.ClientUseCase
	SupplierUC    *usecase.SupplierUseCase
	InventoryUC   *usecase.InventoryUseCase
	LedgerUC      *ledger.UseCase
	DashboardUC   *analytics.DashboardUseCase
	ReportUC      *analytics.ReportUseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Livro-caixa
	transactions := protected.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.TransactionUC)
	transactions.Post("/", transactionHandler.Create)
	transactions.Get("/", transactionHandler.List)
	transactions.Put("/:id", transactionHandler.Update)
	transactions.Delete("/:id", transactionHandler.Delete)

	// Clientes e fiado
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC, deps.LedgerUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)
	clients.Post("/:id/charges", clientHandler.Charge)
	clients.Post("/:id/payments", clientHandler.Pay)
	clients.Get("/:id/transactions", clientHandler.History)

	// Fornecedores e pedidos
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC, deps.LedgerUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)
	suppliers.Post("/:id/orders", supplierHandler.Order)

	// Estoque
	inventory := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inventory.Post("/", inventoryHandler.Create)
	inventory.Get("/", inventoryHandler.List)
	inventory.Put("/:id", inventoryHandler.Update)
	inventory.Delete("/:id", inventoryHandler.Delete)
	inventory.Patch("/:id/quantity", inventoryHandler.SetQuantity)

	// Dashboard e DRE
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.ReportUC)
	dashboard.Get("/summary", dashboardHandler.Summary)
	dashboard.Get("/dre/pdf", dashboardHandler.DREPDF)
}
