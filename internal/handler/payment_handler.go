package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"renta-be-svc/internal/paystatus"
	"renta-be-svc/internal/service"
	"renta-be-svc/pkg/logger"
	"renta-be-svc/pkg/utils"
)

// PaymentRequest represents the request to record a payment
type PaymentRequest struct {
	Month  string          `json:"month" binding:"required"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Note   *string         `json:"note,omitempty"`
}

// PaymentHandler handles payment ledger HTTP requests
type PaymentHandler struct {
	paymentService service.PaymentService
	logger         *logger.Logger
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService service.PaymentService, logger *logger.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		logger:         logger,
	}
}

// RecordPayment handles POST /api/v1/properties/:id/payments
// @Summary Record a payment
// @Description Record a rent payment for one month and advance the property's last-paid watermark
// @Tags payments
// @Accept json
// @Produce json
// @Param id path int true "Property ID"
// @Param request body PaymentRequest true "Payment month and amount"
// @Success 201 {object} utils.APIResponse{data=models.Payment} "Payment recorded"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/properties/{id}/payments [post]
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	propertyID, err := utils.GetIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid property ID", err)
		return
	}

	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON with month and amount", err)
		return
	}

	payment, err := h.paymentService.RecordPayment(propertyID, req.Month, req.Amount, req.Note)
	if err != nil {
		if errors.Is(err, paystatus.ErrInvalidMonthKey) {
			utils.BadRequestResponse(c, "month must be a YYYY-MM month key", err)
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to record payment", err)
		return
	}

	utils.CreatedResponse(c, "Payment recorded successfully", payment)
}

// ListPayments handles GET /api/v1/properties/:id/payments
// @Summary List payments
// @Description Get the payment ledger of one property, latest month first
// @Tags payments
// @Produce json
// @Param id path int true "Property ID"
// @Success 200 {object} utils.APIResponse{data=[]models.Payment} "Payments"
// @Failure 404 {object} utils.APIResponse "Property not found"
// @Router /api/v1/properties/{id}/payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	propertyID, err := utils.GetIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid property ID", err)
		return
	}

	payments, err := h.paymentService.ListPayments(propertyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundResponse(c, "Property not found")
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to retrieve payments", err)
		return
	}

	utils.SuccessResponse(c, "Payments retrieved successfully", payments)
}

// DeletePayment handles DELETE /api/v1/payments/:id
// @Summary Delete a payment
// @Description Delete a payment and recompute the property's last-paid watermark
// @Tags payments
// @Produce json
// @Param id path int true "Payment ID"
// @Success 200 {object} utils.APIResponse "Payment deleted"
// @Failure 404 {object} utils.APIResponse "Payment not found"
// @Router /api/v1/payments/{id} [delete]
func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	id, err := utils.GetIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid payment ID", err)
		return
	}

	if err := h.paymentService.DeletePayment(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundResponse(c, "Payment not found")
			return
		}
		utils.InternalServerErrorResponse(c, "Failed to delete payment", err)
		return
	}

	utils.SuccessResponse(c, "Payment deleted successfully", nil)
}
