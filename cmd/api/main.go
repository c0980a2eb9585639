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

	appanalytics "github.com/gastrosmart/gastrosmart-api/internal/application/analytics"
	"github.com/gastrosmart/gastrosmart-api/internal/application/auth"
	"github.com/gastrosmart/gastrosmart-api/internal/application/cash"
	"github.com/gastrosmart/gastrosmart-api/internal/application/chatbot"
	"github.com/gastrosmart/gastrosmart-api/internal/application/inventory"
	"github.com/gastrosmart/gastrosmart-api/internal/application/locations"
	"github.com/gastrosmart/gastrosmart-api/internal/application/ports"
	"github.com/gastrosmart/gastrosmart-api/internal/application/purchasing"
	"github.com/gastrosmart/gastrosmart-api/internal/application/recipes"
	"github.com/gastrosmart/gastrosmart-api/internal/application/sales"
	infraai "github.com/gastrosmart/gastrosmart-api/internal/infrastructure/ai"
	infracache "github.com/gastrosmart/gastrosmart-api/internal/infrastructure/cache"
	infrapdf "github.com/gastrosmart/gastrosmart-api/internal/infrastructure/pdf"
	"github.com/gastrosmart/gastrosmart-api/internal/infrastructure/postgres"
	httpRouter "github.com/gastrosmart/gastrosmart-api/internal/interfaces/http"
	"github.com/gastrosmart/gastrosmart-api/pkg/config"
	"github.com/gastrosmart/gastrosmart-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Service: cfg.App.Name,
		Env:     cfg.App.Env,
		Level:   "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios sobre el pool (fuera de transacción).
	userRepo := postgres.NewUserRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	itemRepo := postgres.NewInventoryItemRepository(pool)
	recipeRepo := postgres.NewRecipeRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	cashRepo := postgres.NewCashSessionRepository(pool)
	orderRepo := postgres.NewPurchaseOrderRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Cache del dashboard: Redis si está configurado, no-op si no.
	var cacheSvc ports.Cache
	if cfg.Redis.Addr != "" {
		redisCache, err := infracache.NewRedisCache(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Component("cache").Warn().Err(err).Msg("Redis no disponible, dashboard sin cache")
			cacheSvc = infracache.NewNoopCache()
		} else {
			defer redisCache.Close()
			cacheSvc = redisCache
		}
	} else {
		cacheSvc = infracache.NewNoopCache()
	}

	// Asesor de IA: Anthropic por defecto, Gemini como alternativa.
	var llm ports.LLM
	if cfg.AI.Provider == "gemini" {
		llm = infraai.NewGeminiService(cfg.AI.GeminiKey, cfg.AI.GeminiModel)
	} else {
		llm = infraai.NewAnthropicService(cfg.AI.AnthropicKey, cfg.AI.AnthropicModel)
	}

	ledger := inventory.NewLedger()
	salesCfg := sales.Config{
		OpenHour:           cfg.Business.OpenHour,
		CloseHour:          cfg.Business.CloseHour,
		BusinessDays:       cfg.Business.Days,
		AllowNegativeStock: cfg.Business.AllowNegativeStock,
	}

	authUC := auth.NewUseCase(userRepo, auth.Config{
		JWTSecret:  cfg.JWT.Secret,
		JWTIssuer:  cfg.JWT.Issuer,
		ExpMinutes: cfg.JWT.Expiration,
	})
	locationUC := locations.NewUseCase(locationRepo)
	createSaleUC := sales.NewCreateSaleUseCase(txRunner, ledger, cashRepo, recipeRepo, itemRepo, salesCfg)
	querySaleUC := sales.NewGetSaleUseCase(saleRepo)
	deleteSaleUC := sales.NewDeleteSaleUseCase(txRunner, ledger, saleRepo, recipeRepo, itemRepo)
	receiptUC := sales.NewReceiptUseCase(saleRepo, locationRepo, infrapdf.NewMarotoPDFGenerator())
	cashUC := cash.NewUseCase(cashRepo, saleRepo)
	recipeUC := recipes.NewUseCase(recipeRepo, itemRepo)
	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner, itemRepo, ledger, cfg.Business.AllowNegativeStock)
	itemUC := inventory.NewItemUseCase(itemRepo)
	purchasingUC := purchasing.NewUseCase(orderRepo, itemRepo, txRunner, ledger)
	dashboardUC := appanalytics.NewUseCase(analyticsRepo, cacheSvc, log.Zerolog())
	chatbotUC := chatbot.NewUseCase(llm, dashboardUC, itemRepo)

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
		Title:    "GastroSmart API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		LocationUC:       locationUC,
		CreateSale:       createSaleUC,
		QuerySale:        querySaleUC,
		DeleteSale:       deleteSaleUC,
		Receipt:          receiptUC,
		CashUC:           cashUC,
		RecipeUC:         recipeUC,
		RegisterMovement: registerMovementUC,
		ItemUC:           itemUC,
		PurchasingUC:     purchasingUC,
		DashboardUC:      dashboardUC,
		ChatbotUC:        chatbotUC,
		JWTSecret:        cfg.JWT.Secret,
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
