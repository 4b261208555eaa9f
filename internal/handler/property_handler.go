package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"renta-be-svc/internal/paystatus"
	"renta-be-svc/internal/service"
	"renta-be-svc/pkg/logger"
	"renta-be-svc/pkg/utils"
)

// PropertyRequest represents the create/update request for a property
type PropertyRequest struct {
	Name           string           `json:"name" binding:"required"`
	TenantName     *string          `json:"tenant_name,omitempty"`
	TenantMobile   *string          `json:"tenant_mobile,omitempty"`
	RentAmount     *decimal.Decimal `json:"rent_amount,omitempty"`
	MaintenanceFee *decimal.Decimal `json:"maintenance_fee,omitempty"`
	OtherFees      *decimal.Decimal `json:"other_fees,omitempty"`
	LastPaidMonth  *string          `json:"last_paid_month,omitempty"`
}

// PropertyHandler handles property-related HTTP requests
type PropertyHandler struct {
	propertyService service.PropertyService
	logger          *logger.Logger
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(propertyService service.PropertyService, logger *logger.Logger) *PropertyHandler {
	return &PropertyHandler{
		propertyService: propertyService,
		logger:          logger,
	}
}

func (r *PropertyRequest) toInput() service.PropertyInput {
	return service.PropertyInput{
		Name:           r.Name,
		TenantName:     r.TenantName,
		TenantMobile:   r.TenantMobile,
		RentAmount:     r.RentAmount,
		MaintenanceFee: r.MaintenanceFee,
		OtherFees:      r.OtherFees,
		LastPaidMonth:  r.LastPaidMonth,
	}
}

// CreateProperty handles POST /api/v1/locations/:id/properties
// @Summary Create a property
// @Description Create a new property under a location
// @Tags properties
// @Accept json
// @Produce json
// @Param id path int true "Location ID"
// @Param request body PropertyRequest true "Property fields"
// @Success 201 {object} utils.APIResponse{data=models.Property} "Property created"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/locations/{id}/properties [post]
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	locationID, err := utils.GetIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid location ID", err)
		return
	}

	var req PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON with a name", err)
		return
	}

	property, err := h.propertyService.CreateProperty(locationID, req.toInput())
	if err != nil {
		if errors.Is(err, paystatus.ErrInvalidMonthKey) {
			utils.BadRequestResponse(c, "last_paid_month must be a YYYY-MM month key", err)
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to create property", err)
		return
	}

	utils.CreatedResponse(c, "Property created successfully", property)
}

// ListProperties handles GET /api/v1/properties
// @Summary List properties
// @Description List properties with optional location filter and pagination
// @Tags properties
// @Produce json
// @Param location_id query int false "Filter by location ID"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Items per page (default: 10, max: 100)"
// @Success 200 {object} utils.PaginatedResponse "Properties"
// @Failure 400 {object} utils.APIResponse "Invalid parameters"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/properties [get]
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	page, limit := utils.GetPaginationParams(c)

	var locationID *uint
	locationIDStr := c.Query("location_id")
	if locationIDStr != "" {
		value, err := strconv.ParseUint(locationIDStr, 10, 32)
		if err != nil {
			utils.BadRequestResponse(c, "Invalid location_id parameter format", err)
			return
		}
		id := uint(value)
		locationID = &id
	}

	properties, total, err := h.propertyService.ListProperties(locationID, page, limit)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list properties")
		utils.InternalServerErrorResponse(c, "Failed to retrieve properties", err)
		return
	}

	utils.PaginatedSuccessResponse(c, "Properties retrieved successfully", properties, page, limit, total)
}

// GetProperty handles GET /api/v1/properties/:id
// @Summary Get a property
// @Description Get one property by ID with its location
// @Tags properties
// @Produce json
// @Param id path int true "Property ID"
// @Success 200 {object} utils.APIResponse{data=models.Property} "Property"
// @Failure 404 {object} utils.APIResponse "Property not found"
// @Router /api/v1/properties/{id} [get]
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	id, err := utils.GetIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid property ID", err)
		return
	}

	property, err := h.propertyService.GetPropertyByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundResponse(c, "Property not found")
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to retrieve property", err)
		return
	}

	utils.SuccessResponse(c, "Property retrieved successfully", property)
}

// UpdateProperty handles PUT /api/v1/properties/:id
// @Summary Update a property
// @Description Update a property's fields
// @Tags properties
// @Accept json
// @Produce json
// @Param id path int true "Property ID"
// @Param request body PropertyRequest true "Property fields"
// @Success 200 {object} utils.APIResponse{data=models.Property} "Property updated"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 404 {object} utils.APIResponse "Property not found"
// @Router /api/v1/properties/{id} [put]
func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	id, err := utils.GetIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid property ID", err)
		return
	}

	var req PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON with a name", err)
		return
	}

	property, err := h.propertyService.UpdateProperty(id, req.toInput())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundResponse(c, "Property not found")
			return
		}
		if errors.Is(err, paystatus.ErrInvalidMonthKey) {
			utils.BadRequestResponse(c, "last_paid_month must be a YYYY-MM month key", err)
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to update property", err)
		return
	}

	utils.SuccessResponse(c, "Property updated successfully", property)
}

// DeleteProperty handles DELETE /api/v1/properties/:id
// @Summary Delete a property
// @Description Delete a property and its payment ledger
// @Tags properties
// @Produce json
// @Param id path int true "Property ID"
// @Success 200 {object} utils.APIResponse "Property deleted"
// @Failure 404 {object} utils.APIResponse "Property not found"
// @Router /api/v1/properties/{id} [delete]
func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
	id, err := utils.GetIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid property ID", err)
		return
	}

	if err := h.propertyService.DeleteProperty(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundResponse(c, "Property not found")
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to delete property", err)
		return
	}

	utils.SuccessResponse(c, "Property deleted successfully", nil)
}

// GetPropertyStatus handles GET /api/v1/properties/:id/status
// @Summary Get property payment status
// @Description Derive overdue and overpaid months, amounts and the categorical status of one property
// @Tags properties
// @Produce json
// @Param id path int true "Property ID"
// @Success 200 {object} utils.APIResponse{data=response.PropertyStatusResponse} "Payment status"
// @Failure 404 {object} utils.APIResponse "Property not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/properties/{id}/status [get]
func (h *PropertyHandler) GetPropertyStatus(c *gin.Context) {
	id, err := utils.GetIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid property ID", err)
		return
	}

	status, err := h.propertyService.GetPropertyStatus(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundResponse(c, "Property not found")
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to compute payment status", err)
		return
	}

	utils.SuccessResponse(c, "Payment status computed successfully", status)
}
