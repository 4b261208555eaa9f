package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"renta-be-svc/internal/paystatus"
	"renta-be-svc/internal/repository"
)

func newDashboardService(db *gorm.DB) DashboardService {
	return NewDashboardService(
		repository.NewPropertyRepository(db),
		paystatus.NewCalculator(testClock()),
		newTestLogger(),
	)
}

func TestGetMonthlySummary(t *testing.T) {
	db := newTestDB(t)
	svc := newDashboardService(db)

	location := seedLocation(t, db, "Main Market")
	seedProperty(t, db, location.ID, "Shop 1", 2000, strPtr("2025-05"))
	seedProperty(t, db, location.ID, "Shop 2", 2500, strPtr("2025-06"))
	seedProperty(t, db, location.ID, "Shop 3", 3000, strPtr("2025-04"))

	summary, err := svc.GetMonthlySummary(2025, 5)
	require.NoError(t, err)
	assert.Equal(t, 2025, summary.Year)
	assert.Equal(t, 5, summary.Month)
	assert.True(t, summary.TotalPotential.Equal(decimal.NewFromInt(7500)))
	assert.True(t, summary.TotalCollected.Equal(decimal.NewFromInt(4500)))
	assert.True(t, summary.TotalRemaining.Equal(decimal.NewFromInt(3000)))
}

func TestGetMonthlySummaryRejectsBadMonth(t *testing.T) {
	db := newTestDB(t)
	svc := newDashboardService(db)

	_, err := svc.GetMonthlySummary(2025, 0)
	assert.Error(t, err)

	_, err = svc.GetMonthlySummary(2025, 13)
	assert.Error(t, err)
}

func TestGetMonthlySummaryEmptyPortfolio(t *testing.T) {
	db := newTestDB(t)
	svc := newDashboardService(db)

	summary, err := svc.GetMonthlySummary(2025, 5)
	require.NoError(t, err)
	assert.True(t, summary.TotalPotential.IsZero())
	assert.True(t, summary.TotalCollected.IsZero())
	assert.True(t, summary.TotalRemaining.IsZero())
}

func TestGetTotalDues(t *testing.T) {
	db := newTestDB(t)
	svc := newDashboardService(db)

	location := seedLocation(t, db, "Main Market")
	// Two months behind at 5000 net rent, one fully paid.
	seedProperty(t, db, location.ID, "Shop 1", 5000, strPtr("2025-03"))
	seedProperty(t, db, location.ID, "Shop 2", 4000, strPtr("2025-06"))

	dues, err := svc.GetTotalDues()
	require.NoError(t, err)
	assert.True(t, dues.TotalDues.Equal(decimal.NewFromInt(10000)))
	assert.Equal(t, "May", dues.ReferenceMonth)
}

func TestGetOverdueProperties(t *testing.T) {
	db := newTestDB(t)
	svc := newDashboardService(db)

	location := seedLocation(t, db, "Main Market")
	behind := seedProperty(t, db, location.ID, "Shop 1", 5000, strPtr("2025-03"))
	seedProperty(t, db, location.ID, "Shop 2", 4000, strPtr("2025-06"))

	items, err := svc.GetOverdueProperties()
	require.NoError(t, err)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, behind.ID, item.PropertyID)
	assert.Equal(t, "Main Market", item.LocationName)
	assert.Equal(t, []string{"2025-04", "2025-05"}, item.OverdueMonths)
	assert.Equal(t, 2, item.OverdueCount)
	assert.True(t, item.OverdueAmount.Equal(decimal.NewFromInt(10000)))
}

func TestGetOverduePropertiesMalformedWatermark(t *testing.T) {
	db := newTestDB(t)
	svc := newDashboardService(db)

	location := seedLocation(t, db, "Main Market")
	seedProperty(t, db, location.ID, "Shop 1", 5000, strPtr("05-2025"))

	_, err := svc.GetOverdueProperties()
	assert.ErrorIs(t, err, paystatus.ErrInvalidMonthKey)
}
