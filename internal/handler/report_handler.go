package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"renta-be-svc/internal/service"
	"renta-be-svc/pkg/logger"
	"renta-be-svc/pkg/utils"
)

// ReportHandler handles report export HTTP requests
type ReportHandler struct {
	reportService service.ReportService
	logger        *logger.Logger
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService service.ReportService, logger *logger.Logger) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		logger:        logger,
	}
}

// ExportOverdueReport handles GET /api/v1/reports/overdue/export
// @Summary Export overdue report
// @Description Export the overdue-property report as an Excel file
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary "Excel file"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/reports/overdue/export [get]
func (h *ReportHandler) ExportOverdueReport(c *gin.Context) {
	content, filename, err := h.reportService.ExportOverdueReport()
	if err != nil {
		h.logger.WithError(err).Error("Failed to export overdue report")
		utils.InternalServerErrorResponse(c, "Failed to export overdue report", err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", content)
}
