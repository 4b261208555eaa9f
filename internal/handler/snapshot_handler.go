package handler

import (
	"github.com/gin-gonic/gin"

	"renta-be-svc/internal/service"
	"renta-be-svc/pkg/logger"
	"renta-be-svc/pkg/utils"
)

// SnapshotHandler handles dataset snapshot HTTP requests
type SnapshotHandler struct {
	snapshotService service.SnapshotService
	logger          *logger.Logger
}

// NewSnapshotHandler creates a new snapshot handler
func NewSnapshotHandler(snapshotService service.SnapshotService, logger *logger.Logger) *SnapshotHandler {
	return &SnapshotHandler{
		snapshotService: snapshotService,
		logger:          logger,
	}
}

// GetDatasetSnapshot handles GET /api/v1/dataset/snapshot
// @Summary Get dataset snapshot
// @Description Get the full location/property dataset with derived payment statuses, without tenant mobile numbers. Consumed by the conversational assistant.
// @Tags dataset
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response.DatasetSnapshot} "Dataset snapshot"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/dataset/snapshot [get]
func (h *SnapshotHandler) GetDatasetSnapshot(c *gin.Context) {
	snapshot, err := h.snapshotService.GetDatasetSnapshot()
	if err != nil {
		utils.InternalServerErrorResponse(c, "Failed to generate dataset snapshot", err)
		return
	}

	utils.SuccessResponse(c, "Dataset snapshot generated successfully", snapshot)
}
