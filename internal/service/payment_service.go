package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"renta-be-svc/internal/models"
	"renta-be-svc/internal/paystatus"
	"renta-be-svc/internal/repository"
	"renta-be-svc/pkg/logger"
)

// PaymentService defines the interface for payment ledger operations. Every
// write re-derives the property's last_paid_month watermark from the ledger
// inside the same transaction, so the watermark and the ledger can never
// disagree.
type PaymentService interface {
	RecordPayment(propertyID uint, month string, amount decimal.Decimal, note *string) (*models.Payment, error)
	ListPayments(propertyID uint) ([]*models.Payment, error)
	DeletePayment(id uint) error
}

// paymentService implements PaymentService
type paymentService struct {
	paymentRepo  repository.PaymentRepository
	propertyRepo repository.PropertyRepository
	db           *gorm.DB
	logger       *logger.Logger
}

// NewPaymentService creates a new instance of PaymentService
func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	propertyRepo repository.PropertyRepository,
	db *gorm.DB,
	logger *logger.Logger,
) PaymentService {
	return &paymentService{
		paymentRepo:  paymentRepo,
		propertyRepo: propertyRepo,
		db:           db,
		logger:       logger,
	}
}

// RecordPayment adds a ledger entry for one month and advances the watermark
func (s *paymentService) RecordPayment(propertyID uint, month string, amount decimal.Decimal, note *string) (*models.Payment, error) {
	if _, err := paystatus.ParseMonthKey(month); err != nil {
		return nil, err
	}

	if _, err := s.propertyRepo.GetPropertyByID(propertyID); err != nil {
		return nil, fmt.Errorf("property not found: %w", err)
	}

	payment := &models.Payment{
		DocumentID: uuid.New().String(),
		PropertyID: propertyID,
		Month:      month,
		Amount:     amount,
		Note:       note,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&models.Payment{}).
			Where("property_id = ? AND month = ?", propertyID, month).
			Count(&existing).Error; err != nil {
			return fmt.Errorf("failed to check existing payment: %w", err)
		}
		if existing > 0 {
			return fmt.Errorf("payment for month %s already recorded", month)
		}

		if err := tx.Create(payment).Error; err != nil {
			return fmt.Errorf("failed to create payment: %w", err)
		}

		return s.syncWatermark(tx, propertyID)
	})
	if err != nil {
		s.logger.WithError(err).WithFields(map[string]interface{}{
			"property_id": propertyID,
			"month":       month,
		}).Error("Failed to record payment")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"property_id": propertyID,
		"month":       month,
		"amount":      amount.String(),
	}).Info("Payment recorded successfully")

	return payment, nil
}

// ListPayments returns the payment ledger of one property
func (s *paymentService) ListPayments(propertyID uint) ([]*models.Payment, error) {
	if _, err := s.propertyRepo.GetPropertyByID(propertyID); err != nil {
		return nil, fmt.Errorf("property not found: %w", err)
	}

	return s.paymentRepo.ListPaymentsByPropertyID(propertyID)
}

// DeletePayment removes a ledger entry and recomputes the watermark from the
// remaining entries
func (s *paymentService) DeletePayment(id uint) error {
	payment, err := s.paymentRepo.GetPaymentByID(id)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Payment{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete payment: %w", err)
		}
		return s.syncWatermark(tx, payment.PropertyID)
	})
	if err != nil {
		s.logger.WithError(err).WithField("payment_id", id).Error("Failed to delete payment")
		return err
	}

	s.logger.WithField("payment_id", id).Info("Payment deleted successfully")
	return nil
}

// syncWatermark sets the property's last_paid_month to the ledger maximum,
// or clears it when the ledger is empty
func (s *paymentService) syncWatermark(tx *gorm.DB, propertyID uint) error {
	var maxMonth *string
	if err := tx.Model(&models.Payment{}).
		Where("property_id = ?", propertyID).
		Select("MAX(month)").
		Scan(&maxMonth).Error; err != nil {
		return fmt.Errorf("failed to read ledger maximum: %w", err)
	}

	if err := tx.Model(&models.Property{}).
		Where("id = ?", propertyID).
		Update("last_paid_month", maxMonth).Error; err != nil {
		return fmt.Errorf("failed to update watermark: %w", err)
	}

	return nil
}
