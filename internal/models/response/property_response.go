package response

import (
	"github.com/shopspring/decimal"

	"renta-be-svc/internal/paystatus"
)

// PropertyStatusResponse represents the derived payment status of a property
type PropertyStatusResponse struct {
	PropertyID     uint             `json:"property_id" example:"1"`
	DocumentID     string           `json:"document_id"`
	Name           string           `json:"name" example:"Shop 1"`
	OverdueMonths  []string         `json:"overdue_months"`
	OverpaidMonths []string         `json:"overpaid_months"`
	OverdueCount   int              `json:"overdue_count" example:"2"`
	OverdueAmount  decimal.Decimal  `json:"overdue_amount" example:"10000"`
	Status         paystatus.Status `json:"status"`
}
