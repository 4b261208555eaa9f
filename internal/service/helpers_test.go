package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"renta-be-svc/internal/models"
	"renta-be-svc/internal/paystatus"
	"renta-be-svc/pkg/logger"
)

// newTestDB opens an isolated in-memory database with the full schema
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Location{},
		&models.Property{},
		&models.Payment{},
		&models.JobLog{},
	))

	return db
}

func newTestLogger() *logger.Logger {
	return logger.NewLogger("error", "text")
}

// testClock pins "today" to 2025-06-15 in IST
func testClock() paystatus.Clock {
	return func() time.Time {
		return time.Date(2025, time.June, 15, 12, 0, 0, 0, paystatus.IST)
	}
}

func seedLocation(t *testing.T, db *gorm.DB, name string) *models.Location {
	t.Helper()

	location := &models.Location{
		DocumentID: uuid.New().String(),
		Name:       name,
	}
	require.NoError(t, db.Create(location).Error)
	return location
}

func seedProperty(t *testing.T, db *gorm.DB, locationID uint, name string, rent int64, lastPaidMonth *string) *models.Property {
	t.Helper()

	property := &models.Property{
		DocumentID:    uuid.New().String(),
		LocationID:    locationID,
		Name:          name,
		RentAmount:    decimal.NewFromInt(rent),
		LastPaidMonth: lastPaidMonth,
	}
	require.NoError(t, db.Create(property).Error)
	return property
}

func strPtr(s string) *string {
	return &s
}
