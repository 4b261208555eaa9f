package service

import (
	"fmt"

	"renta-be-svc/internal/models/response"
	"renta-be-svc/internal/paystatus"
	"renta-be-svc/internal/repository"
	"renta-be-svc/pkg/logger"
)

// DashboardService interface defines dashboard service methods
type DashboardService interface {
	GetMonthlySummary(year, month int) (*response.MonthlySummaryResponse, error)
	GetTotalDues() (*response.TotalDuesResponse, error)
	GetOverdueProperties() ([]*response.OverduePropertyItem, error)
}

// dashboardService implements DashboardService interface
type dashboardService struct {
	propertyRepo repository.PropertyRepository
	calculator   *paystatus.Calculator
	logger       *logger.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(propertyRepo repository.PropertyRepository, calculator *paystatus.Calculator, logger *logger.Logger) DashboardService {
	return &dashboardService{
		propertyRepo: propertyRepo,
		calculator:   calculator,
		logger:       logger,
	}
}

// GetMonthlySummary computes the collection summary for one target month
// across the whole portfolio
func (s *dashboardService) GetMonthlySummary(year, month int) (*response.MonthlySummaryResponse, error) {
	if month < 1 || month > 12 {
		s.logger.WithField("month", month).Error("Invalid month parameter")
		return nil, fmt.Errorf("invalid month parameter, must be between 1-12")
	}

	properties, err := s.propertyRepo.ListAllProperties()
	if err != nil {
		s.logger.WithError(err).Error("Failed to load properties for monthly summary")
		return nil, err
	}

	snapshots := make([]paystatus.PropertySnapshot, 0, len(properties))
	for _, p := range properties {
		snapshots = append(snapshots, p.Snapshot())
	}

	summary, err := s.calculator.MonthlySummary(snapshots, year, month)
	if err != nil {
		s.logger.WithError(err).WithFields(map[string]interface{}{
			"year":  year,
			"month": month,
		}).Error("Failed to compute monthly summary")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"year":       year,
		"month":      month,
		"properties": len(snapshots),
	}).Info("Monthly summary computed successfully")

	return &response.MonthlySummaryResponse{
		Year:           year,
		Month:          month,
		TotalPotential: summary.TotalPotential,
		TotalCollected: summary.TotalCollected,
		TotalRemaining: summary.TotalRemaining,
	}, nil
}

// GetTotalDues computes cumulative dues across the portfolio
func (s *dashboardService) GetTotalDues() (*response.TotalDuesResponse, error) {
	properties, err := s.propertyRepo.ListAllProperties()
	if err != nil {
		s.logger.WithError(err).Error("Failed to load properties for dues computation")
		return nil, err
	}

	snapshots := make([]paystatus.PropertySnapshot, 0, len(properties))
	for _, p := range properties {
		snapshots = append(snapshots, p.Snapshot())
	}

	dues, err := s.calculator.TotalDues(snapshots)
	if err != nil {
		s.logger.WithError(err).Error("Failed to compute total dues")
		return nil, err
	}

	return &response.TotalDuesResponse{
		TotalDues:      dues.TotalDues,
		ReferenceMonth: dues.ReferenceMonth,
	}, nil
}

// GetOverdueProperties lists every property with at least one overdue month
func (s *dashboardService) GetOverdueProperties() ([]*response.OverduePropertyItem, error) {
	properties, err := s.propertyRepo.ListAllProperties()
	if err != nil {
		s.logger.WithError(err).Error("Failed to load properties for overdue listing")
		return nil, err
	}

	items := make([]*response.OverduePropertyItem, 0)
	for _, property := range properties {
		status, err := s.calculator.ComputeStatus(property.Snapshot())
		if err != nil {
			s.logger.WithError(err).WithField("property_id", property.ID).Error("Failed to compute payment status")
			return nil, err
		}
		if status.OverdueCount == 0 {
			continue
		}

		item := &response.OverduePropertyItem{
			PropertyID:    property.ID,
			DocumentID:    property.DocumentID,
			Name:          property.Name,
			TenantName:    property.TenantName,
			TenantMobile:  property.TenantMobile,
			RentAmount:    property.RentAmount,
			OverdueMonths: status.OverdueMonths,
			OverdueCount:  status.OverdueCount,
			OverdueAmount: status.OverdueAmount,
		}
		if property.Location != nil {
			item.LocationName = property.Location.Name
		}
		items = append(items, item)
	}

	s.logger.WithField("count", len(items)).Info("Overdue properties listed successfully")
	return items, nil
}
