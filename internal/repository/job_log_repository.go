package repository

import (
	"renta-be-svc/internal/models"

	"gorm.io/gorm"
)

// JobLogRepository defines the interface for scheduler job log operations
type JobLogRepository interface {
	CreateJobLog(log *models.JobLog) error
}

// jobLogRepository implements JobLogRepository
type jobLogRepository struct {
	db *gorm.DB
}

// NewJobLogRepository creates a new instance of JobLogRepository
func NewJobLogRepository(db *gorm.DB) JobLogRepository {
	return &jobLogRepository{
		db: db,
	}
}

// CreateJobLog creates a new job log record
func (r *jobLogRepository) CreateJobLog(log *models.JobLog) error {
	return r.db.Create(log).Error
}
