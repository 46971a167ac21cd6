package routes

import (
	"github.com/supplyguard/supplyguard-api/internal/application/usecases"
	"github.com/supplyguard/supplyguard-api/internal/domain/repositories"
	"github.com/supplyguard/supplyguard-api/internal/infrastructure/ai"
	"github.com/supplyguard/supplyguard-api/internal/infrastructure/cache"
	"github.com/supplyguard/supplyguard-api/internal/interfaces/http/handlers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
)

// Dependencies carries the session stores and infrastructure the routes
// wire together.
type Dependencies struct {
	Suppliers *repositories.SupplierRepository
	Alerts    *repositories.AlertRepository
	Stats     *repositories.StatsRepository
	AI        *ai.Client
	Cache     *cache.Cache
}

func SetupRoutes(app *fiber.App, deps Dependencies) {
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	// ETag support for efficient caching of dashboard reads
	app.Use(etag.New())

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Use Cases
	supplierUseCase := usecases.NewSupplierUseCase(deps.Suppliers, deps.AI, deps.Cache)
	questionnaireUseCase := usecases.NewQuestionnaireUseCase(deps.Suppliers, deps.AI)
	alertUseCase := usecases.NewAlertUseCase(deps.Alerts, deps.AI)
	dashboardUseCase := usecases.NewDashboardUseCase(deps.Stats, deps.Suppliers, deps.Alerts)
	reportUseCase := usecases.NewReportUseCase(deps.Stats, deps.Suppliers)
	ingestUseCase := usecases.NewIngestUseCase(deps.Suppliers, deps.Stats, deps.AI, deps.AI)
	assistantUseCase := usecases.NewAssistantUseCase(deps.AI)

	// Handlers
	supplierHandler := handlers.NewSupplierHandler(supplierUseCase)
	questionnaireHandler := handlers.NewQuestionnaireHandler(questionnaireUseCase)
	alertHandler := handlers.NewAlertHandler(alertUseCase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase)
	reportHandler := handlers.NewReportHandler(reportUseCase)
	ingestHandler := handlers.NewIngestHandler(ingestUseCase)
	assistantHandler := handlers.NewAssistantHandler(assistantUseCase)

	v1 := app.Group("/api/v1")

	// Suppliers routes
	suppliers := v1.Group("/suppliers")
	suppliers.Get("/", supplierHandler.GetSuppliers)
	suppliers.Post("/import", ingestHandler.ImportCSV)
	suppliers.Post("/extract", ingestHandler.ExtractDocument)
	suppliers.Get("/:id", supplierHandler.GetSupplier)
	suppliers.Post("/:id/block", supplierHandler.BlockSupplier)
	suppliers.Post("/:id/news-analysis", supplierHandler.AnalyzeNews)
	suppliers.Post("/:id/deep-assessment", supplierHandler.DeepAssessment)

	// Questionnaire lifecycle routes
	RegisterQuestionnaireRoutes(v1, questionnaireHandler)

	// Alerts routes
	alerts := v1.Group("/alerts")
	alerts.Get("/", alertHandler.GetAlerts)
	alerts.Post("/read-all", alertHandler.MarkAllRead)
	alerts.Post("/:id/read", alertHandler.MarkRead)
	alerts.Post("/:id/resolve", alertHandler.Resolve)
	alerts.Post("/:id/speech", alertHandler.Speech)

	// Dashboard and reports
	v1.Get("/dashboard", dashboardHandler.GetOverview)
	v1.Get("/reports/executive", reportHandler.GetExecutiveReport)

	// Assistant
	v1.Post("/assistant/chat", assistantHandler.Chat)
}
