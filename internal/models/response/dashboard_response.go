package response

import (
	"github.com/shopspring/decimal"
)

// MonthlySummaryResponse represents the collection summary for one month
type MonthlySummaryResponse struct {
	Year           int             `json:"year" example:"2025"`
	Month          int             `json:"month" example:"5"`
	TotalPotential decimal.Decimal `json:"total_potential" example:"7500"`
	TotalCollected decimal.Decimal `json:"total_collected" example:"4500"`
	TotalRemaining decimal.Decimal `json:"total_remaining" example:"3000"`
}

// TotalDuesResponse represents cumulative portfolio dues as of the end of
// the last completed month
type TotalDuesResponse struct {
	TotalDues      decimal.Decimal `json:"total_dues" example:"9000"`
	ReferenceMonth string          `json:"reference_month" example:"May"`
}

// OverduePropertyItem represents one overdue property on the dashboard
type OverduePropertyItem struct {
	PropertyID    uint            `json:"property_id" example:"1"`
	DocumentID    string          `json:"document_id"`
	Name          string          `json:"name" example:"Shop 1"`
	TenantName    *string         `json:"tenant_name,omitempty"`
	TenantMobile  *string         `json:"tenant_mobile,omitempty"`
	LocationName  string          `json:"location_name" example:"Main Market"`
	RentAmount    decimal.Decimal `json:"rent_amount" example:"5000"`
	OverdueMonths []string        `json:"overdue_months"`
	OverdueCount  int             `json:"overdue_count" example:"2"`
	OverdueAmount decimal.Decimal `json:"overdue_amount" example:"10000"`
}
