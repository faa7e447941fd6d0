package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alimgiray/gitfocus/internal/analysis"
	"github.com/alimgiray/gitfocus/internal/github"
	"github.com/alimgiray/gitfocus/internal/handlers"
	"github.com/alimgiray/gitfocus/internal/middleware"
	"github.com/alimgiray/gitfocus/internal/repositories"
	"github.com/alimgiray/gitfocus/internal/services"
	"github.com/alimgiray/gitfocus/pkg/config"
	"github.com/alimgiray/gitfocus/pkg/database"
	"github.com/gin-gonic/gin"
)

func main() {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Load configuration
	if err := config.Load(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	if err := database.Init(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	// Initialize dependencies
	snapshotRepo := repositories.NewAnalysisSnapshotRepository(database.DB)
	cacheTTL := time.Duration(config.AppConfig.Cache.TTLHours) * time.Hour
	snapshotService := services.NewSnapshotService(snapshotRepo, cacheTTL)

	githubClient := github.NewClient(config.AppConfig.GitHub.Token)
	engine := analysis.NewEngine()
	analysisService := services.NewAnalysisService(githubClient, engine, snapshotService)
	exportService := services.NewExportService()
	oauthService := services.NewOAuthService()

	// Initialize router
	router := gin.Default()

	// Apply middleware
	router.Use(middleware.CORS(config.AppConfig.CORS.AllowedOrigin))

	// Setup routes
	setupRoutes(router, analysisService, exportService, oauthService)

	// Setup server
	server := &http.Server{
		Addr:         ":" + config.AppConfig.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(config.AppConfig.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(config.AppConfig.Server.WriteTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on :%s", config.AppConfig.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	log.Println("Server stopped")
}

func setupRoutes(router *gin.Engine, analysisService *services.AnalysisService, exportService *services.ExportService, oauthService *services.OAuthService) {
	// Initialize handlers
	analysisHandler := handlers.NewAnalysisHandler(analysisService, exportService)
	oauthHandler := handlers.NewOAuthHandler(oauthService)
	healthHandler := handlers.NewHealthHandler()

	// Analysis routes
	api := router.Group("/api")
	{
		api.GET("/users/:username/analysis", analysisHandler.GetAnalysis)
		api.POST("/users/:username/rescan", analysisHandler.Rescan)
		api.GET("/users/:username/analysis/export", analysisHandler.Export)
	}

	// OAuth relay for the browser UI
	router.POST("/exchange", oauthHandler.Exchange)

	// Health check endpoint
	router.GET("/health", healthHandler.HealthCheck)
}
