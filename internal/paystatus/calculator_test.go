package paystatus

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedClock pins "today" to 2025-06-15 in IST.
func fixedClock() Clock {
	return func() time.Time {
		return time.Date(2025, time.June, 15, 10, 30, 0, 0, IST)
	}
}

func TestComputeStatusOverdue(t *testing.T) {
	calc := NewCalculator(fixedClock())

	status, err := calc.ComputeStatus(PropertySnapshot{
		Name:          "Shop 1",
		RentAmount:    decimal.NewFromInt(5000),
		LastPaidMonth: "2025-03",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"2025-04", "2025-05"}, status.OverdueMonths)
	assert.Equal(t, 2, status.OverdueCount)
	assert.True(t, status.OverdueAmount.Equal(decimal.NewFromInt(10000)),
		"expected 10000, got %s", status.OverdueAmount)
	assert.Empty(t, status.OverpaidMonths)
	assert.Equal(t, StatusOverdue, status.Status.Label)
	assert.Equal(t, SeverityCritical, status.Status.Severity)
}

func TestComputeStatusOverpaid(t *testing.T) {
	calc := NewCalculator(fixedClock())

	status, err := calc.ComputeStatus(PropertySnapshot{
		RentAmount:    decimal.NewFromInt(5000),
		LastPaidMonth: "2025-08",
	})
	require.NoError(t, err)

	assert.Empty(t, status.OverdueMonths)
	assert.Equal(t, []string{"2025-06", "2025-07", "2025-08"}, status.OverpaidMonths)
	assert.Equal(t, StatusOverpaid, status.Status.Label)
	assert.Equal(t, SeverityPositive, status.Status.Severity)
}

func TestComputeStatusCurrentMonthSettled(t *testing.T) {
	calc := NewCalculator(fixedClock())

	status, err := calc.ComputeStatus(PropertySnapshot{
		RentAmount:    decimal.NewFromInt(5000),
		LastPaidMonth: "2025-06",
	})
	require.NoError(t, err)

	assert.Empty(t, status.OverdueMonths)
	assert.Empty(t, status.OverpaidMonths)
	assert.Equal(t, StatusPaid, status.Status.Label)
	assert.Equal(t, SeverityNormal, status.Status.Severity)
	assert.True(t, status.OverdueAmount.IsZero())
}

func TestComputeStatusNoWatermarkUsesCreationMonth(t *testing.T) {
	calc := NewCalculator(fixedClock())
	createdAt := time.Date(2025, time.January, 10, 8, 0, 0, 0, IST)

	status, err := calc.ComputeStatus(PropertySnapshot{
		RentAmount: decimal.NewFromInt(3000),
		CreatedAt:  &createdAt,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"2025-01", "2025-02", "2025-03", "2025-04", "2025-05"}, status.OverdueMonths)
	assert.Equal(t, 5, status.OverdueCount)
	assert.True(t, status.OverdueAmount.Equal(decimal.NewFromInt(15000)))
}

func TestComputeStatusNoWatermarkNoCreationDate(t *testing.T) {
	calc := NewCalculator(fixedClock())

	// Obligation falls back to January of the current year.
	status, err := calc.ComputeStatus(PropertySnapshot{RentAmount: decimal.NewFromInt(1000)})
	require.NoError(t, err)

	assert.Equal(t, 5, status.OverdueCount)
	assert.Equal(t, "2025-01", status.OverdueMonths[0])
	assert.Equal(t, "2025-05", status.OverdueMonths[len(status.OverdueMonths)-1])
}

func TestComputeStatusZeroRent(t *testing.T) {
	calc := NewCalculator(fixedClock())

	// Missing rent degrades to a zero amount, never an error.
	status, err := calc.ComputeStatus(PropertySnapshot{LastPaidMonth: "2025-01"})
	require.NoError(t, err)

	assert.Equal(t, 4, status.OverdueCount)
	assert.True(t, status.OverdueAmount.IsZero())
}

func TestComputeStatusMonthBoundaryPolicy(t *testing.T) {
	// Mid-month "today" never makes the current month due: the earlier
	// per-property due-day grace period is deliberately gone.
	calc := NewCalculator(fixedClock())

	status, err := calc.ComputeStatus(PropertySnapshot{
		RentAmount:    decimal.NewFromInt(5000),
		LastPaidMonth: "2025-05",
	})
	require.NoError(t, err)

	assert.Empty(t, status.OverdueMonths)
	assert.Empty(t, status.OverpaidMonths)
	assert.Equal(t, StatusPaid, status.Status.Label)
}

func TestComputeStatusRejectsMalformedWatermark(t *testing.T) {
	calc := NewCalculator(fixedClock())

	for _, key := range []string{"2025-6", "2025/06", "garbage", "2025-13", "2025-00"} {
		_, err := calc.ComputeStatus(PropertySnapshot{LastPaidMonth: key})
		assert.ErrorIs(t, err, ErrInvalidMonthKey, "key %q", key)
	}
}

func TestComputeStatusPartition(t *testing.T) {
	calc := NewCalculator(fixedClock())
	currentKey := "2025-06"

	snapshots := []PropertySnapshot{
		{LastPaidMonth: "2024-11"},
		{LastPaidMonth: "2025-06"},
		{LastPaidMonth: "2025-12"},
		{},
	}

	for _, snap := range snapshots {
		status, err := calc.ComputeStatus(snap)
		require.NoError(t, err)

		seen := map[string]bool{}
		for _, m := range status.OverdueMonths {
			assert.Less(t, m, currentKey, "overdue months are strictly before the current month")
			seen[m] = true
		}
		for _, m := range status.OverpaidMonths {
			assert.GreaterOrEqual(t, m, currentKey, "overpaid months start at the current month")
			assert.False(t, seen[m], "month %s in both lists", m)
		}
	}
}

func TestComputeStatusMonotonicWatermark(t *testing.T) {
	calc := NewCalculator(fixedClock())

	prevOverdue := -1
	prevOverpaid := 0
	for _, watermark := range []string{"2025-01", "2025-03", "2025-05", "2025-06", "2025-09"} {
		status, err := calc.ComputeStatus(PropertySnapshot{
			RentAmount:    decimal.NewFromInt(100),
			LastPaidMonth: watermark,
		})
		require.NoError(t, err)

		if prevOverdue >= 0 {
			assert.LessOrEqual(t, status.OverdueCount, prevOverdue, "watermark %s", watermark)
			assert.GreaterOrEqual(t, len(status.OverpaidMonths), prevOverpaid, "watermark %s", watermark)
		}
		prevOverdue = status.OverdueCount
		prevOverpaid = len(status.OverpaidMonths)
	}
}

func TestComputeStatusIdempotent(t *testing.T) {
	calc := NewCalculator(fixedClock())
	snap := PropertySnapshot{
		RentAmount:    decimal.NewFromInt(7500),
		LastPaidMonth: "2025-02",
	}

	first, err := calc.ComputeStatus(snap)
	require.NoError(t, err)
	second, err := calc.ComputeStatus(snap)
	require.NoError(t, err)

	assert.Equal(t, first.OverdueMonths, second.OverdueMonths)
	assert.Equal(t, first.OverpaidMonths, second.OverpaidMonths)
	assert.Equal(t, first.OverdueCount, second.OverdueCount)
	assert.True(t, first.OverdueAmount.Equal(second.OverdueAmount))
	assert.Equal(t, first.Status, second.Status)
}

func TestComputeStatusYearBoundary(t *testing.T) {
	clock := func() time.Time {
		return time.Date(2026, time.January, 5, 0, 0, 0, 0, IST)
	}
	calc := NewCalculator(clock)

	status, err := calc.ComputeStatus(PropertySnapshot{
		RentAmount:    decimal.NewFromInt(5000),
		LastPaidMonth: "2025-10",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"2025-11", "2025-12"}, status.OverdueMonths)
}
