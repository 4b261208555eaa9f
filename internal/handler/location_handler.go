package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"renta-be-svc/internal/service"
	"renta-be-svc/pkg/logger"
	"renta-be-svc/pkg/utils"
)

// LocationRequest represents the create/update request for a location
type LocationRequest struct {
	Name string `json:"name" binding:"required"`
}

// LocationHandler handles location-related HTTP requests
type LocationHandler struct {
	locationService service.LocationService
	logger          *logger.Logger
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(locationService service.LocationService, logger *logger.Logger) *LocationHandler {
	return &LocationHandler{
		locationService: locationService,
		logger:          logger,
	}
}

// CreateLocation handles POST /api/v1/locations
// @Summary Create a location
// @Description Create a new location for grouping properties
// @Tags locations
// @Accept json
// @Produce json
// @Param request body LocationRequest true "Location name"
// @Success 201 {object} utils.APIResponse{data=models.Location} "Location created"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/locations [post]
func (h *LocationHandler) CreateLocation(c *gin.Context) {
	var req LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON with a name", err)
		return
	}

	location, err := h.locationService.CreateLocation(req.Name)
	if err != nil {
		utils.InternalServerErrorResponse(c, "Failed to create location", err)
		return
	}

	utils.CreatedResponse(c, "Location created successfully", location)
}

// GetAllLocations handles GET /api/v1/locations
// @Summary List locations
// @Description Get all locations with their properties
// @Tags locations
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]models.Location} "Locations"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/locations [get]
func (h *LocationHandler) GetAllLocations(c *gin.Context) {
	locations, err := h.locationService.GetAllLocations()
	if err != nil {
		h.logger.WithError(err).Error("Failed to get locations")
		utils.InternalServerErrorResponse(c, "Failed to retrieve locations", err)
		return
	}

	utils.SuccessResponse(c, "Locations retrieved successfully", locations)
}

// GetLocation handles GET /api/v1/locations/:id
// @Summary Get a location
// @Description Get one location by ID with its properties
// @Tags locations
// @Produce json
// @Param id path int true "Location ID"
// @Success 200 {object} utils.APIResponse{data=models.Location} "Location"
// @Failure 400 {object} utils.APIResponse "Invalid ID"
// @Failure 404 {object} utils.APIResponse "Location not found"
// @Router /api/v1/locations/{id} [get]
func (h *LocationHandler) GetLocation(c *gin.Context) {
	id, err := utils.GetIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid location ID", err)
		return
	}

	location, err := h.locationService.GetLocationByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundResponse(c, "Location not found")
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to retrieve location", err)
		return
	}

	utils.SuccessResponse(c, "Location retrieved successfully", location)
}

// UpdateLocation handles PUT /api/v1/locations/:id
// @Summary Update a location
// @Description Rename a location
// @Tags locations
// @Accept json
// @Produce json
// @Param id path int true "Location ID"
// @Param request body LocationRequest true "Location name"
// @Success 200 {object} utils.APIResponse{data=models.Location} "Location updated"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 404 {object} utils.APIResponse "Location not found"
// @Router /api/v1/locations/{id} [put]
func (h *LocationHandler) UpdateLocation(c *gin.Context) {
	id, err := utils.GetIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid location ID", err)
		return
	}

	var req LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON with a name", err)
		return
	}

	location, err := h.locationService.UpdateLocation(id, req.Name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundResponse(c, "Location not found")
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to update location", err)
		return
	}

	utils.SuccessResponse(c, "Location updated successfully", location)
}

// DeleteLocation handles DELETE /api/v1/locations/:id
// @Summary Delete a location
// @Description Delete a location together with its properties and payments
// @Tags locations
// @Produce json
// @Param id path int true "Location ID"
// @Success 200 {object} utils.APIResponse "Location deleted"
// @Failure 404 {object} utils.APIResponse "Location not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/locations/{id} [delete]
func (h *LocationHandler) DeleteLocation(c *gin.Context) {
	id, err := utils.GetIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid location ID", err)
		return
	}

	if err := h.locationService.DeleteLocation(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundResponse(c, "Location not found")
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to delete location", err)
		return
	}

	utils.SuccessResponse(c, "Location deleted successfully", nil)
}
