package main

import (
	_ "github.com/decryptorventure/taxgo-app/api/swagger" // swagger docs
	"github.com/decryptorventure/taxgo-app/internal/config"
	"github.com/decryptorventure/taxgo-app/internal/email"
	"github.com/decryptorventure/taxgo-app/internal/handler"
	"github.com/decryptorventure/taxgo-app/internal/integrations/gemini"
	"github.com/decryptorventure/taxgo-app/internal/repository"
	"github.com/decryptorventure/taxgo-app/internal/scheduler"
	"github.com/decryptorventure/taxgo-app/internal/service"
	"github.com/decryptorventure/taxgo-app/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           TaxGo API
// @version         1.0
// @description     Tax compliance companion for Vietnamese household businesses: ledger, presumptive-tax calculator, 01/CNKD filing export and AI assistant.
// @host            localhost:8080
// @BasePath        /
func main() {
	cfg := config.Load()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	gin.SetMode(cfg.GinMode)

	// Set up WebSocket Hub
	wsHub := websocket.NewHub(logger)
	go wsHub.Run()

	// In-memory session state, seeded with demo data
	ledgerRepo := repository.NewLedgerRepository(repository.DemoTransactions())
	profileRepo := repository.NewProfileRepository(repository.DefaultProfile())

	// External collaborators
	geminiClient := gemini.NewClient(cfg, logger)
	if !geminiClient.Enabled() {
		logger.Warn("GEMINI_API_KEY not set, assistant runs in demo mode")
	}
	sender := email.NewSender(cfg, logger)

	// Set up dependencies (Repository -> Service -> Handler)
	ledgerService := service.NewLedgerService(ledgerRepo, wsHub, logger)
	summaryService := service.NewSummaryService(ledgerService)
	exportService := service.NewExportService(ledgerService)
	taxService := service.NewTaxService(profileRepo, sender)
	profileService := service.NewProfileService(profileRepo)
	assistantService := service.NewAssistantService(geminiClient, logger)

	// Initialize Handlers
	ledgerHandler := handler.NewLedgerHandler(ledgerService, exportService)
	taxHandler := handler.NewTaxHandler(taxService)
	summaryHandler := handler.NewSummaryHandler(summaryService)
	profileHandler := handler.NewProfileHandler(profileService)
	assistantHandler := handler.NewAssistantHandler(assistantService)

	// Daily compliance reminder
	reminder := scheduler.NewComplianceReminder(cfg, summaryService, wsHub, sender, logger)
	if err := reminder.Start(); err != nil {
		logger.Fatalf("Failed to start compliance reminder: %v", err)
	}
	defer reminder.Stop()

	// Set up Gin Router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// WebSocket endpoint for live ledger/compliance events
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c)
	})

	// API Routing
	ledgerHandler.RegisterRoutes(router.Group(""))
	taxHandler.RegisterRoutes(router.Group(""))
	summaryHandler.RegisterRoutes(router.Group(""))
	profileHandler.RegisterRoutes(router.Group(""))
	assistantHandler.RegisterRoutes(router.Group(""))

	logger.Infof("TaxGo API listening on :%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatalf("Server failed: %v", err)
	}
}
