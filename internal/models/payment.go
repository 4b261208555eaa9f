package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment represents the payments table: one confirmed rent payment for one
// calendar month. The property's last_paid_month watermark is derived from
// the latest month in this ledger.
type Payment struct {
	ID         uint            `json:"id" gorm:"primarykey"`
	DocumentID string          `json:"document_id" gorm:"column:document_id"`
	PropertyID uint            `json:"property_id" gorm:"column:property_id;index"`
	Month      string          `json:"month" gorm:"column:month"`
	Amount     decimal.Decimal `json:"amount" gorm:"column:amount;type:numeric"`
	Note       *string         `json:"note" gorm:"column:note"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// TableName sets the insert table name for Payment
func (Payment) TableName() string {
	return "payments"
}
