package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"renta-be-svc/internal/service"
	"renta-be-svc/pkg/logger"
	"renta-be-svc/pkg/utils"
)

// DashboardHandler handles dashboard-related HTTP requests
type DashboardHandler struct {
	dashboardService service.DashboardService
	logger           *logger.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService service.DashboardService, logger *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// GetMonthlySummary handles GET /api/v1/dashboard/summary
// @Summary Get monthly collection summary
// @Description Get potential, collected and remaining net rent for a target month across the portfolio
// @Tags dashboard
// @Produce json
// @Param year query int true "Target year"
// @Param month query int true "Target month (1-12)"
// @Success 200 {object} utils.APIResponse{data=response.MonthlySummaryResponse} "Monthly summary"
// @Failure 400 {object} utils.APIResponse "Invalid parameters"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/dashboard/summary [get]
func (h *DashboardHandler) GetMonthlySummary(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		h.logger.WithError(err).WithField("year", c.Query("year")).Error("Invalid year parameter format")
		utils.BadRequestResponse(c, "Invalid year parameter format", err)
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		h.logger.WithError(err).WithField("month", c.Query("month")).Error("Invalid month parameter format")
		utils.BadRequestResponse(c, "Invalid month parameter format", err)
		return
	}
	if month < 1 || month > 12 {
		utils.BadRequestResponse(c, "Invalid month parameter, must be between 1-12", nil)
		return
	}

	summary, err := h.dashboardService.GetMonthlySummary(year, month)
	if err != nil {
		utils.InternalServerErrorResponse(c, "Failed to compute monthly summary", err)
		return
	}

	utils.SuccessResponse(c, "Monthly summary retrieved successfully", summary)
}

// GetTotalDues handles GET /api/v1/dashboard/dues
// @Summary Get total dues
// @Description Get cumulative dues across the portfolio as of the end of the last completed month
// @Tags dashboard
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response.TotalDuesResponse} "Total dues"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/dashboard/dues [get]
func (h *DashboardHandler) GetTotalDues(c *gin.Context) {
	dues, err := h.dashboardService.GetTotalDues()
	if err != nil {
		utils.InternalServerErrorResponse(c, "Failed to compute total dues", err)
		return
	}

	utils.SuccessResponse(c, "Total dues retrieved successfully", dues)
}

// GetOverdueProperties handles GET /api/v1/dashboard/overdue
// @Summary List overdue properties
// @Description List every property with at least one overdue month, with dues amounts
// @Tags dashboard
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]response.OverduePropertyItem} "Overdue properties"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/dashboard/overdue [get]
func (h *DashboardHandler) GetOverdueProperties(c *gin.Context) {
	items, err := h.dashboardService.GetOverdueProperties()
	if err != nil {
		utils.InternalServerErrorResponse(c, "Failed to retrieve overdue properties", err)
		return
	}

	utils.SuccessResponse(c, "Overdue properties retrieved successfully", items)
}
