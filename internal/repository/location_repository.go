package repository

import (
	"renta-be-svc/internal/models"

	"gorm.io/gorm"
)

// LocationRepository defines the interface for location data operations
type LocationRepository interface {
	CreateLocation(location *models.Location) error
	GetLocationByID(id uint) (*models.Location, error)
	GetAllLocations() ([]*models.Location, error)
	UpdateLocation(location *models.Location) error
	DeleteLocation(id uint) error
}

// locationRepository implements LocationRepository
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository creates a new instance of LocationRepository
func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{
		db: db,
	}
}

// CreateLocation creates a new location record
func (r *locationRepository) CreateLocation(location *models.Location) error {
	return r.db.Create(location).Error
}

// GetLocationByID retrieves a location by ID with its properties
func (r *locationRepository) GetLocationByID(id uint) (*models.Location, error) {
	var location models.Location

	err := r.db.Preload("Properties").Where("id = ?", id).First(&location).Error
	if err != nil {
		return nil, err
	}

	return &location, nil
}

// GetAllLocations retrieves all locations with their properties
func (r *locationRepository) GetAllLocations() ([]*models.Location, error) {
	var locations []*models.Location

	err := r.db.Preload("Properties").Order("name ASC").Find(&locations).Error
	if err != nil {
		return nil, err
	}

	return locations, nil
}

// UpdateLocation updates an existing location record
func (r *locationRepository) UpdateLocation(location *models.Location) error {
	return r.db.Save(location).Error
}

// DeleteLocation deletes a location record by ID
func (r *locationRepository) DeleteLocation(id uint) error {
	return r.db.Delete(&models.Location{}, id).Error
}
