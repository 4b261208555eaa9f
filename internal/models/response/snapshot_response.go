package response

import (
	"time"

	"github.com/shopspring/decimal"

	"renta-be-svc/internal/paystatus"
)

// DatasetSnapshot is the full dataset handed to the conversational
// assistant. Tenant mobile numbers are excluded.
type DatasetSnapshot struct {
	GeneratedAt time.Time          `json:"generated_at"`
	Locations   []LocationSnapshot `json:"locations"`
}

// LocationSnapshot is one location with its properties
type LocationSnapshot struct {
	DocumentID string                  `json:"document_id"`
	Name       string                  `json:"name"`
	Properties []PropertySnapshotEntry `json:"properties"`
}

// PropertySnapshotEntry is one property with its computed payment status
type PropertySnapshotEntry struct {
	DocumentID     string           `json:"document_id"`
	Name           string           `json:"name"`
	TenantName     *string          `json:"tenant_name,omitempty"`
	RentAmount     decimal.Decimal  `json:"rent_amount"`
	MaintenanceFee decimal.Decimal  `json:"maintenance_fee"`
	OtherFees      decimal.Decimal  `json:"other_fees"`
	LastPaidMonth  *string          `json:"last_paid_month,omitempty"`
	OverdueMonths  []string         `json:"overdue_months"`
	OverpaidMonths []string         `json:"overpaid_months"`
	OverdueCount   int              `json:"overdue_count"`
	OverdueAmount  decimal.Decimal  `json:"overdue_amount"`
	Status         paystatus.Status `json:"status"`
}
