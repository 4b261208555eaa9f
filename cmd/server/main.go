package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"renta-be-svc/docs"
	"renta-be-svc/internal/config"
	"renta-be-svc/internal/database"
	"renta-be-svc/internal/handler"
	"renta-be-svc/internal/middleware"
	"renta-be-svc/internal/paystatus"
	"renta-be-svc/internal/repository"
	"renta-be-svc/internal/scheduler"
	"renta-be-svc/internal/service"
	"renta-be-svc/pkg/logger"
)

// @title Renta Backend Service API
// @version 1.0
// @description RESTful API for rent management: locations, properties, payments and payment-status dashboards

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Swagger documentation
	docs.SwaggerInfo.Title = "Renta Backend Service API"
	docs.SwaggerInfo.Description = "RESTful API for rent management"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%s", cfg.Server.Port)
	docs.SwaggerInfo.BasePath = ""
	docs.SwaggerInfo.Schemes = []string{"http"}

	// Initialize logger
	appLogger := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)
	appLogger.Info("Starting Renta Backend Service...")

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Initialize database
	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		appLogger.WithField("error", err).Fatal("Failed to connect to database")
	}
	appLogger.Info("Database connected successfully")

	// Run auto migration
	if err := db.AutoMigrate(); err != nil {
		appLogger.WithField("error", err).Fatal("Failed to run database migrations")
	}
	appLogger.Info("Database migrations completed successfully")

	// Initialize repositories
	locationRepo := repository.NewLocationRepository(db.DB)
	propertyRepo := repository.NewPropertyRepository(db.DB)
	paymentRepo := repository.NewPaymentRepository(db.DB)
	jobLogRepo := repository.NewJobLogRepository(db.DB)

	// All status computations share the IST civil clock
	calculator := paystatus.NewCalculator(nil)

	// Initialize services
	locationService := service.NewLocationService(locationRepo, db.DB, appLogger)
	propertyService := service.NewPropertyService(propertyRepo, locationRepo, calculator, db.DB, appLogger)
	paymentService := service.NewPaymentService(paymentRepo, propertyRepo, db.DB, appLogger)
	dashboardService := service.NewDashboardService(propertyRepo, calculator, appLogger)
	reportService := service.NewReportService(dashboardService, nil, appLogger)
	snapshotService := service.NewSnapshotService(locationRepo, calculator, nil, appLogger)

	// Initialize Gin router
	router := gin.New()

	// Add middleware
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	router.Use(middleware.LoggerMiddleware(appLogger))
	router.Use(middleware.ErrorHandler())
	router.NoRoute(middleware.NoRouteHandler())
	router.NoMethod(middleware.NoMethodHandler())

	// Setup routes
	handler.SetupRoutes(router, locationService, propertyService, paymentService, dashboardService, reportService, snapshotService, appLogger)

	// Start the dues digest scheduler
	duesScheduler := scheduler.NewDuesScheduler(dashboardService, jobLogRepo, appLogger, cfg.Scheduler.DuesCronExpression)
	if err := duesScheduler.Start(); err != nil {
		appLogger.WithField("error", err).Fatal("Failed to start dues scheduler")
	}

	// Create HTTP server
	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		appLogger.WithField("port", cfg.Server.Port).Info("Server starting...")
		appLogger.WithField("swagger", fmt.Sprintf("http://localhost:%s/swagger/index.html", cfg.Server.Port)).Info("Swagger documentation available")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.WithField("error", err).Fatal("Failed to start server")
		}
	}()

	appLogger.WithField("port", cfg.Server.Port).Info("Server started successfully")

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	// Stop scheduled jobs before closing anything they write to
	duesScheduler.Stop()

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown server
	if err := server.Shutdown(ctx); err != nil {
		appLogger.WithField("error", err).Fatal("Server forced to shutdown")
	}

	// Close database connection
	if err := db.Close(); err != nil {
		appLogger.WithField("error", err).Error("Failed to close database connection")
	}

	appLogger.Info("Server exited successfully")
}
