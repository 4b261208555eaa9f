package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"renta-be-svc/internal/models"
	"renta-be-svc/internal/paystatus"
	"renta-be-svc/internal/repository"
)

func newPropertyService(db *gorm.DB) PropertyService {
	return NewPropertyService(
		repository.NewPropertyRepository(db),
		repository.NewLocationRepository(db),
		paystatus.NewCalculator(testClock()),
		db,
		newTestLogger(),
	)
}

func TestCreatePropertyValidatesWatermark(t *testing.T) {
	db := newTestDB(t)
	svc := newPropertyService(db)

	location := seedLocation(t, db, "Main Market")

	rent := decimal.NewFromInt(5000)
	_, err := svc.CreateProperty(location.ID, PropertyInput{
		Name:          "Shop 1",
		RentAmount:    &rent,
		LastPaidMonth: strPtr("2025-3"),
	})
	assert.ErrorIs(t, err, paystatus.ErrInvalidMonthKey)

	property, err := svc.CreateProperty(location.ID, PropertyInput{
		Name:          "Shop 1",
		RentAmount:    &rent,
		LastPaidMonth: strPtr("2025-03"),
	})
	require.NoError(t, err)
	require.NotNil(t, property.LastPaidMonth)
	assert.Equal(t, "2025-03", *property.LastPaidMonth)
	assert.True(t, property.MaintenanceFee.IsZero())
}

func TestCreatePropertyUnknownLocation(t *testing.T) {
	db := newTestDB(t)
	svc := newPropertyService(db)

	_, err := svc.CreateProperty(999, PropertyInput{Name: "Shop 1"})
	assert.Error(t, err)
}

func TestUpdatePropertyValidatesWatermark(t *testing.T) {
	db := newTestDB(t)
	svc := newPropertyService(db)

	location := seedLocation(t, db, "Main Market")
	property := seedProperty(t, db, location.ID, "Shop 1", 5000, strPtr("2025-03"))

	_, err := svc.UpdateProperty(property.ID, PropertyInput{
		Name:          "Shop 1",
		LastPaidMonth: strPtr("2025-13"),
	})
	assert.ErrorIs(t, err, paystatus.ErrInvalidMonthKey)

	updated, err := svc.UpdateProperty(property.ID, PropertyInput{
		Name:          "Shop 1 Renamed",
		LastPaidMonth: nil,
	})
	require.NoError(t, err)
	assert.Equal(t, "Shop 1 Renamed", updated.Name)
	assert.Nil(t, updated.LastPaidMonth)
}

func TestGetPropertyStatusOverdue(t *testing.T) {
	db := newTestDB(t)
	svc := newPropertyService(db)

	location := seedLocation(t, db, "Main Market")
	property := seedProperty(t, db, location.ID, "Shop 1", 5000, strPtr("2025-03"))

	status, err := svc.GetPropertyStatus(property.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-04", "2025-05"}, status.OverdueMonths)
	assert.Equal(t, 2, status.OverdueCount)
	assert.True(t, status.OverdueAmount.Equal(decimal.NewFromInt(10000)))
	assert.Equal(t, paystatus.StatusOverdue, status.Status.Label)
}

func TestGetPropertyStatusMalformedWatermark(t *testing.T) {
	db := newTestDB(t)
	svc := newPropertyService(db)

	location := seedLocation(t, db, "Main Market")
	// Seed directly so the ingestion guard is bypassed.
	property := seedProperty(t, db, location.ID, "Shop 1", 5000, strPtr("garbage"))

	_, err := svc.GetPropertyStatus(property.ID)
	assert.ErrorIs(t, err, paystatus.ErrInvalidMonthKey)
}

func TestDeletePropertyCascadesLedger(t *testing.T) {
	db := newTestDB(t)
	svc := newPropertyService(db)
	paymentSvc := NewPaymentService(
		repository.NewPaymentRepository(db),
		repository.NewPropertyRepository(db),
		db,
		newTestLogger(),
	)

	location := seedLocation(t, db, "Main Market")
	property := seedProperty(t, db, location.ID, "Shop 1", 5000, nil)

	_, err := paymentSvc.RecordPayment(property.ID, "2025-03", decimal.NewFromInt(5000), nil)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProperty(property.ID))

	var remaining int64
	require.NoError(t, db.Model(&models.Payment{}).Where("property_id = ?", property.ID).Count(&remaining).Error)
	assert.Zero(t, remaining)

	_, err = svc.GetPropertyByID(property.ID)
	assert.Error(t, err)
}

func TestListPropertiesFiltersByLocation(t *testing.T) {
	db := newTestDB(t)
	svc := newPropertyService(db)

	market := seedLocation(t, db, "Main Market")
	plaza := seedLocation(t, db, "City Plaza")
	seedProperty(t, db, market.ID, "Shop 1", 5000, nil)
	seedProperty(t, db, market.ID, "Shop 2", 6000, nil)
	seedProperty(t, db, plaza.ID, "Shop 3", 7000, nil)

	properties, total, err := svc.ListProperties(&market.ID, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, properties, 2)

	properties, total, err = svc.ListProperties(nil, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, properties, 3)
}
