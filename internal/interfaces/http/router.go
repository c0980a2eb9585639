package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/gastrosmart/gastrosmart-api/internal/application/analytics"
	"github.com/gastrosmart/gastrosmart-api/internal/application/auth"
	"github.com/gastrosmart/gastrosmart-api/internal/application/cash"
	"github.com/gastrosmart/gastrosmart-api/internal/application/chatbot"
	"github.com/gastrosmart/gastrosmart-api/internal/application/inventory"
	"github.com/gastrosmart/gastrosmart-api/internal/application/locations"
	"github.com/gastrosmart/gastrosmart-api/internal/application/purchasing"
	"github.com/gastrosmart/gastrosmart-api/internal/application/recipes"
	"github.com/gastrosmart/gastrosmart-api/internal/application/sales"
	"github.com/gastrosmart/gastrosmart-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.UseCase
	LocationUC       *locations.UseCase
	CreateSale       *sales.CreateSaleUseCase
	QuerySale        *sales.GetSaleUseCase
	DeleteSale       *sales.DeleteSaleUseCase
	Receipt          *sales.ReceiptUseCase
	CashUC           *cash.UseCase
	RecipeUC         *recipes.UseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	ItemUC           *inventory.ItemUseCase
	PurchasingUC     *purchasing.UseCase
	DashboardUC      *appanalytics.UseCase
	ChatbotUC        *chatbot.UseCase
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (registro y login públicos)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Locations (crear solo ADMIN)
	locGroup := protected.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locGroup.Post("/", RequireRole(entity.RoleAdmin), locationHandler.Create)
	locGroup.Get("/", locationHandler.List)
	locGroup.Get("/:id", locationHandler.GetByID)

	// Sales (anular solo ADMIN)
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.CreateSale, deps.QuerySale, deps.DeleteSale, deps.Receipt)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/stats/today", dashboardHandler.TodayStats)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Get("/:id/receipt", saleHandler.Receipt)
	salesGroup.Delete("/:id", RequireRole(entity.RoleAdmin), saleHandler.Delete)

	// Cash sessions
	cashGroup := protected.Group("/cash")
	cashHandler := NewCashHandler(deps.CashUC)
	cashGroup.Post("/open", cashHandler.Open)
	cashGroup.Post("/close/:id", cashHandler.Close)
	cashGroup.Get("/status", cashHandler.Status)
	cashGroup.Get("/", cashHandler.List)

	// Recipes (mutaciones solo ADMIN)
	recipeGroup := protected.Group("/recipes")
	recipeHandler := NewRecipeHandler(deps.RecipeUC)
	recipeGroup.Post("/", RequireRole(entity.RoleAdmin), recipeHandler.Create)
	recipeGroup.Get("/", recipeHandler.List)
	recipeGroup.Get("/:id", recipeHandler.GetByID)
	recipeGroup.Put("/:id", RequireRole(entity.RoleAdmin), recipeHandler.Update)
	recipeGroup.Delete("/:id", RequireRole(entity.RoleAdmin), recipeHandler.Delete)

	// Inventory (items y movimientos manuales)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.RegisterMovement, deps.ItemUC)
	invGroup.Post("/movements", RequireRole(entity.RoleAdmin, entity.RoleCajero), inventoryHandler.RegisterMovement)
	invGroup.Post("/items", RequireRole(entity.RoleAdmin), inventoryHandler.CreateItem)
	invGroup.Get("/items", inventoryHandler.ListItems)
	invGroup.Get("/critical", inventoryHandler.ListCritical)

	// Purchase orders (solo ADMIN)
	poGroup := protected.Group("/purchase-orders", RequireRole(entity.RoleAdmin))
	purchaseHandler := NewPurchaseHandler(deps.PurchasingUC)
	poGroup.Post("/", purchaseHandler.Create)
	poGroup.Get("/", purchaseHandler.List)
	poGroup.Get("/:id", purchaseHandler.GetByID)
	poGroup.Post("/:id/receive", purchaseHandler.Receive)
	poGroup.Post("/:id/cancel", purchaseHandler.Cancel)

	// Dashboard
	dashGroup := protected.Group("/dashboard")
	dashGroup.Get("/today", dashboardHandler.TodayStats)
	dashGroup.Get("/top-recipes", dashboardHandler.TopRecipes)

	// Chatbot
	chatGroup := protected.Group("/chatbot")
	chatbotHandler := NewChatbotHandler(deps.ChatbotUC)
	chatGroup.Post("/ask", chatbotHandler.Ask)
}
