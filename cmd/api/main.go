package main

import (
	"log"
	"os"
	"time"

	"github.com/supplyguard/supplyguard-api/internal/domain/repositories"
	"github.com/supplyguard/supplyguard-api/internal/infrastructure/ai"
	"github.com/supplyguard/supplyguard-api/internal/infrastructure/cache"
	"github.com/supplyguard/supplyguard-api/internal/infrastructure/fixtures"
	"github.com/supplyguard/supplyguard-api/internal/interfaces/http/middleware"
	"github.com/supplyguard/supplyguard-api/internal/interfaces/http/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using system environment variables")
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("❌ GEMINI_API_KEY is required")
	}
	aiClient := ai.NewClient(os.Getenv("GEMINI_BASE_URL"), apiKey)

	// Session stores start from the demo portfolio
	suppliers := repositories.NewSupplierRepository()
	suppliers.Seed(fixtures.Suppliers())

	alerts := repositories.NewAlertRepository()
	alerts.Seed(fixtures.Alerts())

	stats := repositories.NewStatsRepository()
	stats.Seed(fixtures.Stats())

	log.Printf("📊 Seeded %d suppliers", suppliers.Count())

	// Configure Fiber for better performance
	app := fiber.New(fiber.Config{
		Concurrency: 256 * 1024,
		// Prefork disabled, it is unstable in containers
		Prefork: false,
		// Uploaded registration documents can be large
		BodyLimit:    10 * 1024 * 1024, // 10MB
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 150 * time.Second,
		IdleTimeout:  120 * time.Second,
	})

	// Setup middleware
	middleware.SetupMiddlewares(app)

	// Setup routes
	routes.SetupRoutes(app, routes.Dependencies{
		Suppliers: suppliers,
		Alerts:    alerts,
		Stats:     stats,
		AI:        aiClient,
		Cache:     cache.New(),
	})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server is running on port %s", port)
	log.Fatal(app.Listen(":" + port))
}
