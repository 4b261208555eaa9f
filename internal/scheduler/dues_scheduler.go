package scheduler

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"renta-be-svc/internal/models"
	"renta-be-svc/internal/repository"
	"renta-be-svc/internal/service"
	"renta-be-svc/pkg/logger"
)

// DuesScheduler runs the month-start dues digest: it computes the portfolio
// dues figure and writes the outcome to the job log.
type DuesScheduler struct {
	dashboardService service.DashboardService
	jobLogRepo       repository.JobLogRepository
	logger           *logger.Logger
	cron             *cron.Cron
	cronExpression   string
}

// NewDuesScheduler creates a new dues scheduler
func NewDuesScheduler(dashboardService service.DashboardService, jobLogRepo repository.JobLogRepository, logger *logger.Logger, cronExpression string) *DuesScheduler {
	// Create cron with seconds precision
	c := cron.New(cron.WithSeconds())

	return &DuesScheduler{
		dashboardService: dashboardService,
		jobLogRepo:       jobLogRepo,
		logger:           logger,
		cron:             c,
		cronExpression:   cronExpression,
	}
}

// Start initializes and starts all scheduled jobs
func (s *DuesScheduler) Start() error {
	s.logger.Info("Starting dues scheduler...")

	// Cron format: "seconds minutes hours day-of-month month day-of-week"
	s.logger.WithField("cron_expression", s.cronExpression).Info("Scheduling dues digest job")
	_, err := s.cron.AddFunc(s.cronExpression, s.runDuesDigest)
	if err != nil {
		return fmt.Errorf("failed to schedule dues digest job: %w", err)
	}

	s.cron.Start()
	s.logger.Info("Dues scheduler started successfully")

	return nil
}

// Stop gracefully stops the scheduler
func (s *DuesScheduler) Stop() {
	s.logger.Info("Stopping dues scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Dues scheduler stopped successfully")
}

// runDuesDigest is the scheduled job computing the portfolio dues digest
func (s *DuesScheduler) runDuesDigest() {
	jobCode := "MONTHLY_DUES_DIGEST"
	now := time.Now()
	docID := uuid.New().String()

	s.logJob(jobCode, docID, "Starting scheduled dues digest", "START", &now)
	s.logger.Info("Starting scheduled dues digest...")

	dues, err := s.dashboardService.GetTotalDues()
	if err != nil {
		failedMessage := fmt.Sprintf("Failed to compute dues digest: %v", err)
		s.logJob(jobCode, docID, failedMessage, "FAILED", &now)
		s.logger.WithError(err).Error("Failed to compute dues digest")
		return
	}

	duesJSON, err := json.Marshal(dues)
	if err != nil {
		s.logger.WithError(err).Error("Failed to marshal dues digest for job log")
	}
	successMessage := fmt.Sprintf("Dues digest computed successfully: %s", string(duesJSON))
	s.logJob(jobCode, docID, successMessage, "SUCCESS", &now)

	s.logger.WithFields(map[string]interface{}{
		"total_dues":      dues.TotalDues.String(),
		"reference_month": dues.ReferenceMonth,
	}).Info("Scheduled dues digest completed")
}

// logJob creates a new job log entry in the database
func (s *DuesScheduler) logJob(jobCode, documentID, message, status string, createdAt *time.Time) {
	logEntry := &models.JobLog{
		DocumentID: &documentID,
		JobCode:    &jobCode,
		Message:    &message,
		Status:     &status,
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
	}

	if err := s.jobLogRepo.CreateJobLog(logEntry); err != nil {
		s.logger.WithError(err).WithField("status", status).Error("Failed to create job log entry")
	}
}
