package repository

import (
	"renta-be-svc/internal/models"

	"gorm.io/gorm"
)

// PropertyRepository defines the interface for property data operations
type PropertyRepository interface {
	CreateProperty(property *models.Property) error
	GetPropertyByID(id uint) (*models.Property, error)
	ListProperties(locationID *uint, page, limit int) ([]*models.Property, int64, error)
	ListAllProperties() ([]*models.Property, error)
	UpdateProperty(property *models.Property) error
	DeleteProperty(id uint) error
}

// propertyRepository implements PropertyRepository
type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository creates a new instance of PropertyRepository
func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &propertyRepository{
		db: db,
	}
}

// CreateProperty creates a new property record
func (r *propertyRepository) CreateProperty(property *models.Property) error {
	return r.db.Create(property).Error
}

// GetPropertyByID retrieves a property by ID with its location
func (r *propertyRepository) GetPropertyByID(id uint) (*models.Property, error) {
	var property models.Property

	err := r.db.Preload("Location").Where("id = ?", id).First(&property).Error
	if err != nil {
		return nil, err
	}

	return &property, nil
}

// ListProperties retrieves properties with optional location filter and pagination
func (r *propertyRepository) ListProperties(locationID *uint, page, limit int) ([]*models.Property, int64, error) {
	var properties []*models.Property
	var total int64

	query := r.db.Model(&models.Property{})
	if locationID != nil {
		query = query.Where("location_id = ?", *locationID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Preload("Location").
		Order("name ASC").
		Limit(limit).
		Offset(offset).
		Find(&properties).Error
	if err != nil {
		return nil, 0, err
	}

	return properties, total, nil
}

// ListAllProperties retrieves every property with its location, for
// portfolio-wide aggregations
func (r *propertyRepository) ListAllProperties() ([]*models.Property, error) {
	var properties []*models.Property

	err := r.db.Preload("Location").Order("location_id ASC, name ASC").Find(&properties).Error
	if err != nil {
		return nil, err
	}

	return properties, nil
}

// UpdateProperty updates an existing property record
func (r *propertyRepository) UpdateProperty(property *models.Property) error {
	return r.db.Save(property).Error
}

// DeleteProperty deletes a property record by ID
func (r *propertyRepository) DeleteProperty(id uint) error {
	return r.db.Delete(&models.Property{}, id).Error
}
