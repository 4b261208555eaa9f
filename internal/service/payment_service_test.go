package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"renta-be-svc/internal/models"
	"renta-be-svc/internal/paystatus"
	"renta-be-svc/internal/repository"
)

func TestRecordPaymentAdvancesWatermark(t *testing.T) {
	db := newTestDB(t)
	svc := NewPaymentService(
		repository.NewPaymentRepository(db),
		repository.NewPropertyRepository(db),
		db,
		newTestLogger(),
	)

	location := seedLocation(t, db, "Main Market")
	property := seedProperty(t, db, location.ID, "Shop 1", 5000, nil)

	_, err := svc.RecordPayment(property.ID, "2025-03", decimal.NewFromInt(5000), nil)
	require.NoError(t, err)

	var reloaded models.Property
	require.NoError(t, db.First(&reloaded, property.ID).Error)
	require.NotNil(t, reloaded.LastPaidMonth)
	assert.Equal(t, "2025-03", *reloaded.LastPaidMonth)

	// A backdated payment never regresses the watermark.
	_, err = svc.RecordPayment(property.ID, "2025-01", decimal.NewFromInt(5000), nil)
	require.NoError(t, err)

	require.NoError(t, db.First(&reloaded, property.ID).Error)
	require.NotNil(t, reloaded.LastPaidMonth)
	assert.Equal(t, "2025-03", *reloaded.LastPaidMonth)
}

func TestRecordPaymentRejectsMalformedMonth(t *testing.T) {
	db := newTestDB(t)
	svc := NewPaymentService(
		repository.NewPaymentRepository(db),
		repository.NewPropertyRepository(db),
		db,
		newTestLogger(),
	)

	location := seedLocation(t, db, "Main Market")
	property := seedProperty(t, db, location.ID, "Shop 1", 5000, nil)

	_, err := svc.RecordPayment(property.ID, "March 2025", decimal.NewFromInt(5000), nil)
	assert.ErrorIs(t, err, paystatus.ErrInvalidMonthKey)
}

func TestRecordPaymentRejectsDuplicateMonth(t *testing.T) {
	db := newTestDB(t)
	svc := NewPaymentService(
		repository.NewPaymentRepository(db),
		repository.NewPropertyRepository(db),
		db,
		newTestLogger(),
	)

	location := seedLocation(t, db, "Main Market")
	property := seedProperty(t, db, location.ID, "Shop 1", 5000, nil)

	_, err := svc.RecordPayment(property.ID, "2025-03", decimal.NewFromInt(5000), nil)
	require.NoError(t, err)

	_, err = svc.RecordPayment(property.ID, "2025-03", decimal.NewFromInt(5000), nil)
	assert.Error(t, err)
}

func TestRecordPaymentUnknownProperty(t *testing.T) {
	db := newTestDB(t)
	svc := NewPaymentService(
		repository.NewPaymentRepository(db),
		repository.NewPropertyRepository(db),
		db,
		newTestLogger(),
	)

	_, err := svc.RecordPayment(999, "2025-03", decimal.NewFromInt(5000), nil)
	assert.Error(t, err)
}

func TestDeletePaymentRecomputesWatermark(t *testing.T) {
	db := newTestDB(t)
	svc := NewPaymentService(
		repository.NewPaymentRepository(db),
		repository.NewPropertyRepository(db),
		db,
		newTestLogger(),
	)

	location := seedLocation(t, db, "Main Market")
	property := seedProperty(t, db, location.ID, "Shop 1", 5000, nil)

	_, err := svc.RecordPayment(property.ID, "2025-03", decimal.NewFromInt(5000), nil)
	require.NoError(t, err)
	latest, err := svc.RecordPayment(property.ID, "2025-04", decimal.NewFromInt(5000), nil)
	require.NoError(t, err)

	require.NoError(t, svc.DeletePayment(latest.ID))

	var reloaded models.Property
	require.NoError(t, db.First(&reloaded, property.ID).Error)
	require.NotNil(t, reloaded.LastPaidMonth)
	assert.Equal(t, "2025-03", *reloaded.LastPaidMonth)

	// Deleting the last ledger entry clears the watermark entirely.
	payments, err := svc.ListPayments(property.ID)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	require.NoError(t, svc.DeletePayment(payments[0].ID))

	require.NoError(t, db.First(&reloaded, property.ID).Error)
	assert.Nil(t, reloaded.LastPaidMonth)
}

func TestListPaymentsLatestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewPaymentService(
		repository.NewPaymentRepository(db),
		repository.NewPropertyRepository(db),
		db,
		newTestLogger(),
	)

	location := seedLocation(t, db, "Main Market")
	property := seedProperty(t, db, location.ID, "Shop 1", 5000, nil)

	for _, month := range []string{"2025-01", "2025-03", "2025-02"} {
		_, err := svc.RecordPayment(property.ID, month, decimal.NewFromInt(5000), nil)
		require.NoError(t, err)
	}

	payments, err := svc.ListPayments(property.ID)
	require.NoError(t, err)
	require.Len(t, payments, 3)
	assert.Equal(t, "2025-03", payments[0].Month)
	assert.Equal(t, "2025-02", payments[1].Month)
	assert.Equal(t, "2025-01", payments[2].Month)
}
