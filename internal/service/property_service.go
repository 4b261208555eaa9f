package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"renta-be-svc/internal/models"
	"renta-be-svc/internal/models/response"
	"renta-be-svc/internal/paystatus"
	"renta-be-svc/internal/repository"
	"renta-be-svc/pkg/logger"
)

// PropertyInput carries the writable fields of a property. Nil money fields
// default to zero; a nil LastPaidMonth clears the watermark.
type PropertyInput struct {
	Name           string
	TenantName     *string
	TenantMobile   *string
	RentAmount     *decimal.Decimal
	MaintenanceFee *decimal.Decimal
	OtherFees      *decimal.Decimal
	LastPaidMonth  *string
}

// PropertyService interface defines property service methods
type PropertyService interface {
	CreateProperty(locationID uint, input PropertyInput) (*models.Property, error)
	GetPropertyByID(id uint) (*models.Property, error)
	ListProperties(locationID *uint, page, limit int) ([]*models.Property, int64, error)
	UpdateProperty(id uint, input PropertyInput) (*models.Property, error)
	DeleteProperty(id uint) error
	GetPropertyStatus(id uint) (*response.PropertyStatusResponse, error)
}

// propertyService implements PropertyService interface
type propertyService struct {
	propertyRepo repository.PropertyRepository
	locationRepo repository.LocationRepository
	calculator   *paystatus.Calculator
	db           *gorm.DB
	logger       *logger.Logger
}

// NewPropertyService creates a new property service
func NewPropertyService(
	propertyRepo repository.PropertyRepository,
	locationRepo repository.LocationRepository,
	calculator *paystatus.Calculator,
	db *gorm.DB,
	logger *logger.Logger,
) PropertyService {
	return &propertyService{
		propertyRepo: propertyRepo,
		locationRepo: locationRepo,
		calculator:   calculator,
		db:           db,
		logger:       logger,
	}
}

// CreateProperty creates a new property under a location. The last-paid
// watermark is validated at this ingestion boundary so malformed keys never
// reach the calculator.
func (s *propertyService) CreateProperty(locationID uint, input PropertyInput) (*models.Property, error) {
	if _, err := s.locationRepo.GetLocationByID(locationID); err != nil {
		return nil, fmt.Errorf("location not found: %w", err)
	}

	if err := validateWatermark(input.LastPaidMonth); err != nil {
		return nil, err
	}

	property := &models.Property{
		DocumentID:     uuid.New().String(),
		LocationID:     locationID,
		Name:           input.Name,
		TenantName:     input.TenantName,
		TenantMobile:   input.TenantMobile,
		RentAmount:     decimalOrZero(input.RentAmount),
		MaintenanceFee: decimalOrZero(input.MaintenanceFee),
		OtherFees:      decimalOrZero(input.OtherFees),
		LastPaidMonth:  input.LastPaidMonth,
	}

	if err := s.propertyRepo.CreateProperty(property); err != nil {
		s.logger.WithError(err).WithField("name", input.Name).Error("Failed to create property")
		return nil, err
	}

	s.logger.WithField("property_id", property.ID).Info("Property created successfully")
	return property, nil
}

// GetPropertyByID gets a property by ID
func (s *propertyService) GetPropertyByID(id uint) (*models.Property, error) {
	return s.propertyRepo.GetPropertyByID(id)
}

// ListProperties lists properties with optional location filter
func (s *propertyService) ListProperties(locationID *uint, page, limit int) ([]*models.Property, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	return s.propertyRepo.ListProperties(locationID, page, limit)
}

// UpdateProperty updates a property's writable fields
func (s *propertyService) UpdateProperty(id uint, input PropertyInput) (*models.Property, error) {
	property, err := s.propertyRepo.GetPropertyByID(id)
	if err != nil {
		return nil, err
	}

	if err := validateWatermark(input.LastPaidMonth); err != nil {
		return nil, err
	}

	property.Name = input.Name
	property.TenantName = input.TenantName
	property.TenantMobile = input.TenantMobile
	property.RentAmount = decimalOrZero(input.RentAmount)
	property.MaintenanceFee = decimalOrZero(input.MaintenanceFee)
	property.OtherFees = decimalOrZero(input.OtherFees)
	property.LastPaidMonth = input.LastPaidMonth

	if err := s.propertyRepo.UpdateProperty(property); err != nil {
		s.logger.WithError(err).WithField("property_id", id).Error("Failed to update property")
		return nil, err
	}

	return property, nil
}

// DeleteProperty deletes a property and its payment ledger
func (s *propertyService) DeleteProperty(id uint) error {
	if _, err := s.propertyRepo.GetPropertyByID(id); err != nil {
		return err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("property_id = ?", id).Delete(&models.Payment{}).Error; err != nil {
			return fmt.Errorf("failed to delete payments: %w", err)
		}
		if err := tx.Delete(&models.Property{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete property: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logger.WithError(err).WithField("property_id", id).Error("Failed to delete property")
		return err
	}

	s.logger.WithField("property_id", id).Info("Property deleted successfully")
	return nil
}

// GetPropertyStatus derives the payment status of one property
func (s *propertyService) GetPropertyStatus(id uint) (*response.PropertyStatusResponse, error) {
	property, err := s.propertyRepo.GetPropertyByID(id)
	if err != nil {
		return nil, err
	}

	status, err := s.calculator.ComputeStatus(property.Snapshot())
	if err != nil {
		s.logger.WithError(err).WithField("property_id", id).Error("Failed to compute payment status")
		return nil, err
	}

	return &response.PropertyStatusResponse{
		PropertyID:     property.ID,
		DocumentID:     property.DocumentID,
		Name:           property.Name,
		OverdueMonths:  status.OverdueMonths,
		OverpaidMonths: status.OverpaidMonths,
		OverdueCount:   status.OverdueCount,
		OverdueAmount:  status.OverdueAmount,
		Status:         status.Status,
	}, nil
}

// validateWatermark checks an optional YYYY-MM key
func validateWatermark(key *string) error {
	if key == nil {
		return nil
	}
	if _, err := paystatus.ParseMonthKey(*key); err != nil {
		return err
	}
	return nil
}

// decimalOrZero dereferences an optional money field, absent means 0
func decimalOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
