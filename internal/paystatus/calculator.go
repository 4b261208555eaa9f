package paystatus

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusLabel is the categorical payment state of a property.
type StatusLabel string

const (
	StatusOverdue  StatusLabel = "overdue"
	StatusOverpaid StatusLabel = "overpaid"
	StatusPaid     StatusLabel = "paid"
)

// Severity classifies a status for presentation layers, which map it to
// colors or icons on their own.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityPositive Severity = "positive"
	SeverityNormal   Severity = "normal"
)

// Status pairs the categorical label with its severity.
type Status struct {
	Label    StatusLabel `json:"label"`
	Severity Severity    `json:"severity"`
}

// PropertySnapshot is the read-only view of a property the calculator
// consumes. Zero values stand in for absent fields: a zero RentAmount means
// no rent configured, an empty LastPaidMonth means no payment ever recorded,
// a nil CreatedAt means the creation date is unknown.
type PropertySnapshot struct {
	ID             string
	Name           string
	TenantName     string
	RentAmount     decimal.Decimal
	MaintenanceFee decimal.Decimal
	OtherFees      decimal.Decimal
	LastPaidMonth  string
	CreatedAt      *time.Time
}

// NetRent is the rent net of maintenance and other fees, used by portfolio
// summaries. Per-property overdue amounts use the raw rent instead.
func (p PropertySnapshot) NetRent() decimal.Decimal {
	return p.RentAmount.Sub(p.MaintenanceFee).Sub(p.OtherFees)
}

// PaymentStatus is the derived payment state of a single property. Month
// lists are chronological YYYY-MM keys and never contain the current month.
type PaymentStatus struct {
	OverdueMonths  []string        `json:"overdue_months"`
	OverpaidMonths []string        `json:"overpaid_months"`
	OverdueCount   int             `json:"overdue_count"`
	OverdueAmount  decimal.Decimal `json:"overdue_amount"`
	Status         Status          `json:"status"`
}

// Calculator derives payment statuses from property snapshots. It holds no
// state other than the clock and is safe for concurrent use.
type Calculator struct {
	now Clock
}

// NewCalculator creates a calculator bound to the given clock. A nil clock
// binds the live IST clock.
func NewCalculator(clock Clock) *Calculator {
	if clock == nil {
		clock = Now
	}
	return &Calculator{now: clock}
}

// ComputeStatus derives the overdue and overpaid months, the amount owed and
// the categorical status for one property.
//
// The obligation starts the month after the last-paid watermark; without a
// watermark it starts at the property's creation month, or at January of the
// current year when the creation date is unknown. Every month strictly
// before the current month is overdue; months from the current month through
// the watermark are overpaid. A watermark equal to the current month yields
// neither.
func (c *Calculator) ComputeStatus(p PropertySnapshot) (*PaymentStatus, error) {
	today := dayStart(c.now())
	currentMonth := monthStart(today)

	var watermark time.Time
	hasWatermark := p.LastPaidMonth != ""
	if hasWatermark {
		parsed, err := ParseMonthKey(p.LastPaidMonth)
		if err != nil {
			return nil, err
		}
		watermark = parsed
	}

	var obligationStart time.Time
	switch {
	case hasWatermark:
		obligationStart = watermark.AddDate(0, 1, 0)
	case p.CreatedAt != nil:
		obligationStart = monthStart(p.CreatedAt.In(today.Location()))
	default:
		obligationStart = time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, today.Location())
	}

	result := &PaymentStatus{
		OverdueMonths:  []string{},
		OverpaidMonths: []string{},
		OverdueAmount:  decimal.Zero,
	}

	for cursor := obligationStart; cursor.Before(currentMonth); cursor = cursor.AddDate(0, 1, 0) {
		result.OverdueMonths = append(result.OverdueMonths, FormatMonthKey(cursor))
	}

	// A watermark equal to the current month settles it: neither overdue nor
	// overpaid. Only a strictly future watermark produces overpaid months.
	if hasWatermark && watermark.After(currentMonth) {
		for cursor := currentMonth; !cursor.After(watermark); cursor = cursor.AddDate(0, 1, 0) {
			result.OverpaidMonths = append(result.OverpaidMonths, FormatMonthKey(cursor))
		}
	}

	result.OverdueCount = len(result.OverdueMonths)
	if result.OverdueCount > 0 {
		result.OverdueAmount = p.RentAmount.Mul(decimal.NewFromInt(int64(result.OverdueCount)))
	}

	switch {
	case result.OverdueCount > 0:
		result.Status = Status{Label: StatusOverdue, Severity: SeverityCritical}
	case len(result.OverpaidMonths) > 0:
		result.Status = Status{Label: StatusOverpaid, Severity: SeverityPositive}
	default:
		result.Status = Status{Label: StatusPaid, Severity: SeverityNormal}
	}

	return result, nil
}
