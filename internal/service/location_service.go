package service

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"renta-be-svc/internal/models"
	"renta-be-svc/internal/repository"
	"renta-be-svc/pkg/logger"
)

// LocationService interface defines location service methods
type LocationService interface {
	CreateLocation(name string) (*models.Location, error)
	GetLocationByID(id uint) (*models.Location, error)
	GetAllLocations() ([]*models.Location, error)
	UpdateLocation(id uint, name string) (*models.Location, error)
	DeleteLocation(id uint) error
}

// locationService implements LocationService interface
type locationService struct {
	locationRepo repository.LocationRepository
	db           *gorm.DB
	logger       *logger.Logger
}

// NewLocationService creates a new location service
func NewLocationService(locationRepo repository.LocationRepository, db *gorm.DB, logger *logger.Logger) LocationService {
	return &locationService{
		locationRepo: locationRepo,
		db:           db,
		logger:       logger,
	}
}

// CreateLocation creates a new location
func (s *locationService) CreateLocation(name string) (*models.Location, error) {
	location := &models.Location{
		DocumentID: uuid.New().String(),
		Name:       name,
	}

	if err := s.locationRepo.CreateLocation(location); err != nil {
		s.logger.WithError(err).WithField("name", name).Error("Failed to create location")
		return nil, err
	}

	s.logger.WithField("location_id", location.ID).Info("Location created successfully")
	return location, nil
}

// GetLocationByID gets a location by ID
func (s *locationService) GetLocationByID(id uint) (*models.Location, error) {
	return s.locationRepo.GetLocationByID(id)
}

// GetAllLocations gets all locations
func (s *locationService) GetAllLocations() ([]*models.Location, error) {
	return s.locationRepo.GetAllLocations()
}

// UpdateLocation updates a location's name
func (s *locationService) UpdateLocation(id uint, name string) (*models.Location, error) {
	location, err := s.locationRepo.GetLocationByID(id)
	if err != nil {
		return nil, err
	}

	location.Name = name
	if err := s.locationRepo.UpdateLocation(location); err != nil {
		s.logger.WithError(err).WithField("location_id", id).Error("Failed to update location")
		return nil, err
	}

	return location, nil
}

// DeleteLocation deletes a location together with its properties and their
// payment ledgers
func (s *locationService) DeleteLocation(id uint) error {
	if _, err := s.locationRepo.GetLocationByID(id); err != nil {
		return err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var propertyIDs []uint
		if err := tx.Model(&models.Property{}).
			Where("location_id = ?", id).
			Pluck("id", &propertyIDs).Error; err != nil {
			return fmt.Errorf("failed to list location properties: %w", err)
		}

		if len(propertyIDs) > 0 {
			if err := tx.Where("property_id IN ?", propertyIDs).Delete(&models.Payment{}).Error; err != nil {
				return fmt.Errorf("failed to delete payments: %w", err)
			}
			if err := tx.Where("location_id = ?", id).Delete(&models.Property{}).Error; err != nil {
				return fmt.Errorf("failed to delete properties: %w", err)
			}
		}

		if err := tx.Delete(&models.Location{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete location: %w", err)
		}

		return nil
	})
	if err != nil {
		s.logger.WithError(err).WithField("location_id", id).Error("Failed to delete location")
		return err
	}

	s.logger.WithField("location_id", id).Info("Location deleted successfully")
	return nil
}
