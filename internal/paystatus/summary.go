package paystatus

import (
	"github.com/shopspring/decimal"
)

// MonthlySummary is the collection picture for one target month across a
// portfolio, computed over net rent.
type MonthlySummary struct {
	TotalPotential decimal.Decimal `json:"total_potential"`
	TotalCollected decimal.Decimal `json:"total_collected"`
	TotalRemaining decimal.Decimal `json:"total_remaining"`
}

// DuesSummary is the cumulative money owed across a portfolio as of the end
// of the last completed month. ReferenceMonth is the English name of that
// month; localized rendering is the presentation layer's concern.
type DuesSummary struct {
	TotalDues      decimal.Decimal `json:"total_dues"`
	ReferenceMonth string          `json:"reference_month"`
}

// MonthlySummary sums net rent across the portfolio for the given target
// month. A property counts as collected when its last-paid watermark has
// reached or passed the target month.
func (c *Calculator) MonthlySummary(properties []PropertySnapshot, year, month int) (*MonthlySummary, error) {
	target, err := MonthKeyOf(year, month)
	if err != nil {
		return nil, err
	}

	potential := decimal.Zero
	collected := decimal.Zero

	for _, p := range properties {
		net := p.NetRent()
		potential = potential.Add(net)

		if p.LastPaidMonth == "" {
			continue
		}
		if _, err := ParseMonthKey(p.LastPaidMonth); err != nil {
			return nil, err
		}
		if p.LastPaidMonth >= target {
			collected = collected.Add(net)
		}
	}

	return &MonthlySummary{
		TotalPotential: potential,
		TotalCollected: collected,
		TotalRemaining: potential.Sub(collected),
	}, nil
}

// TotalDues sums overdue dues across the portfolio. Unlike the per-property
// overdue amount, dues are computed over net rent; the asymmetry is
// intentional, observable behavior.
func (c *Calculator) TotalDues(properties []PropertySnapshot) (*DuesSummary, error) {
	total := decimal.Zero

	for _, p := range properties {
		status, err := c.ComputeStatus(p)
		if err != nil {
			return nil, err
		}
		if status.OverdueCount > 0 {
			total = total.Add(p.NetRent().Mul(decimal.NewFromInt(int64(status.OverdueCount))))
		}
	}

	previousMonth := monthStart(dayStart(c.now())).AddDate(0, -1, 0)

	return &DuesSummary{
		TotalDues:      total,
		ReferenceMonth: previousMonth.Month().String(),
	}, nil
}
