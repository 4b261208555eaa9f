package models

import (
	"time"

	"github.com/shopspring/decimal"

	"renta-be-svc/internal/paystatus"
)

// Property represents the properties table. LastPaidMonth is the cumulative
// payment watermark (YYYY-MM); nil means no payment was ever recorded.
type Property struct {
	ID             uint            `json:"id" gorm:"primarykey"`
	DocumentID     string          `json:"document_id" gorm:"column:document_id"`
	LocationID     uint            `json:"location_id" gorm:"column:location_id;index"`
	Name           string          `json:"name" gorm:"column:name"`
	TenantName     *string         `json:"tenant_name" gorm:"column:tenant_name"`
	TenantMobile   *string         `json:"tenant_mobile" gorm:"column:tenant_mobile"`
	RentAmount     decimal.Decimal `json:"rent_amount" gorm:"column:rent_amount;type:numeric"`
	MaintenanceFee decimal.Decimal `json:"maintenance_fee" gorm:"column:maintenance_fee;type:numeric"`
	OtherFees      decimal.Decimal `json:"other_fees" gorm:"column:other_fees;type:numeric"`
	LastPaidMonth  *string         `json:"last_paid_month" gorm:"column:last_paid_month"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	Location       *Location       `json:"location,omitempty" gorm:"foreignKey:LocationID"`
}

// TableName sets the insert table name for Property
func (Property) TableName() string {
	return "properties"
}

// Snapshot converts the stored record into the read-only view the payment
// status calculator consumes.
func (p *Property) Snapshot() paystatus.PropertySnapshot {
	snap := paystatus.PropertySnapshot{
		ID:             p.DocumentID,
		Name:           p.Name,
		RentAmount:     p.RentAmount,
		MaintenanceFee: p.MaintenanceFee,
		OtherFees:      p.OtherFees,
	}
	if p.TenantName != nil {
		snap.TenantName = *p.TenantName
	}
	if p.LastPaidMonth != nil {
		snap.LastPaidMonth = *p.LastPaidMonth
	}
	if !p.CreatedAt.IsZero() {
		createdAt := p.CreatedAt
		snap.CreatedAt = &createdAt
	}
	return snap
}
