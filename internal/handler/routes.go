package handler

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"renta-be-svc/internal/service"
	"renta-be-svc/pkg/logger"
)

// SetupRoutes sets up all API routes
func SetupRoutes(
	router *gin.Engine,
	locationService service.LocationService,
	propertyService service.PropertyService,
	paymentService service.PaymentService,
	dashboardService service.DashboardService,
	reportService service.ReportService,
	snapshotService service.SnapshotService,
	logger *logger.Logger,
) {
	// Initialize handlers
	locationHandler := NewLocationHandler(locationService, logger)
	propertyHandler := NewPropertyHandler(propertyService, logger)
	paymentHandler := NewPaymentHandler(paymentService, logger)
	dashboardHandler := NewDashboardHandler(dashboardService, logger)
	reportHandler := NewReportHandler(reportService, logger)
	snapshotHandler := NewSnapshotHandler(snapshotService, logger)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", HealthCheck)

		// Location routes
		locations := v1.Group("/locations")
		{
			locations.POST("", locationHandler.CreateLocation)
			locations.GET("", locationHandler.GetAllLocations)
			locations.GET("/:id", locationHandler.GetLocation)
			locations.PUT("/:id", locationHandler.UpdateLocation)
			locations.DELETE("/:id", locationHandler.DeleteLocation)
			locations.POST("/:id/properties", propertyHandler.CreateProperty)
		}

		// Property routes
		properties := v1.Group("/properties")
		{
			properties.GET("", propertyHandler.ListProperties)
			properties.GET("/:id", propertyHandler.GetProperty)
			properties.PUT("/:id", propertyHandler.UpdateProperty)
			properties.DELETE("/:id", propertyHandler.DeleteProperty)
			properties.GET("/:id/status", propertyHandler.GetPropertyStatus)
			properties.POST("/:id/payments", paymentHandler.RecordPayment)
			properties.GET("/:id/payments", paymentHandler.ListPayments)
		}

		// Payment routes
		payments := v1.Group("/payments")
		{
			payments.DELETE("/:id", paymentHandler.DeletePayment)
		}

		// Dashboard routes
		dashboard := v1.Group("/dashboard")
		{
			dashboard.GET("/summary", dashboardHandler.GetMonthlySummary)
			dashboard.GET("/dues", dashboardHandler.GetTotalDues)
			dashboard.GET("/overdue", dashboardHandler.GetOverdueProperties)
		}

		// Report routes
		reports := v1.Group("/reports")
		{
			reports.GET("/overdue/export", reportHandler.ExportOverdueReport)
		}

		// Dataset routes
		dataset := v1.Group("/dataset")
		{
			dataset.GET("/snapshot", snapshotHandler.GetDatasetSnapshot)
		}
	}
}

// HealthCheck reports service liveness
func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"message": "Server is running",
		"service": "Renta Backend Service",
	})
}
