package repository

import (
	"renta-be-svc/internal/models"

	"gorm.io/gorm"
)

// PaymentRepository defines the interface for payment ledger operations
type PaymentRepository interface {
	CreatePayment(payment *models.Payment) error
	GetPaymentByID(id uint) (*models.Payment, error)
	ListPaymentsByPropertyID(propertyID uint) ([]*models.Payment, error)
	DeletePayment(id uint) error
	MaxPaidMonth(propertyID uint) (*string, error)
}

// paymentRepository implements PaymentRepository
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new instance of PaymentRepository
func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{
		db: db,
	}
}

// CreatePayment creates a new payment record
func (r *paymentRepository) CreatePayment(payment *models.Payment) error {
	return r.db.Create(payment).Error
}

// GetPaymentByID retrieves a payment by ID
func (r *paymentRepository) GetPaymentByID(id uint) (*models.Payment, error) {
	var payment models.Payment

	err := r.db.Where("id = ?", id).First(&payment).Error
	if err != nil {
		return nil, err
	}

	return &payment, nil
}

// ListPaymentsByPropertyID retrieves the payment ledger of one property,
// latest month first
func (r *paymentRepository) ListPaymentsByPropertyID(propertyID uint) ([]*models.Payment, error) {
	var payments []*models.Payment

	err := r.db.Where("property_id = ?", propertyID).Order("month DESC").Find(&payments).Error
	if err != nil {
		return nil, err
	}

	return payments, nil
}

// DeletePayment deletes a payment record by ID
func (r *paymentRepository) DeletePayment(id uint) error {
	return r.db.Delete(&models.Payment{}, id).Error
}

// MaxPaidMonth returns the latest paid month key of a property, or nil when
// the ledger is empty. Zero-padded keys make MAX() chronological.
func (r *paymentRepository) MaxPaidMonth(propertyID uint) (*string, error) {
	var month *string

	err := r.db.Model(&models.Payment{}).
		Where("property_id = ?", propertyID).
		Select("MAX(month)").
		Scan(&month).Error
	if err != nil {
		return nil, err
	}

	return month, nil
}
