package service

import (
	"renta-be-svc/internal/models/response"
	"renta-be-svc/internal/paystatus"
	"renta-be-svc/internal/repository"
	"renta-be-svc/pkg/logger"
)

// SnapshotService builds the dataset snapshot consumed by the conversational
// assistant. Tenant mobile numbers are excluded; computed statuses are
// included so the assistant's answers stay consistent with the dashboard.
type SnapshotService interface {
	GetDatasetSnapshot() (*response.DatasetSnapshot, error)
}

// snapshotService implements SnapshotService
type snapshotService struct {
	locationRepo repository.LocationRepository
	calculator   *paystatus.Calculator
	clock        paystatus.Clock
	logger       *logger.Logger
}

// NewSnapshotService creates a new instance of SnapshotService
func NewSnapshotService(
	locationRepo repository.LocationRepository,
	calculator *paystatus.Calculator,
	clock paystatus.Clock,
	logger *logger.Logger,
) SnapshotService {
	if clock == nil {
		clock = paystatus.Now
	}
	return &snapshotService{
		locationRepo: locationRepo,
		calculator:   calculator,
		clock:        clock,
		logger:       logger,
	}
}

// GetDatasetSnapshot returns all locations and properties with derived
// payment statuses
func (s *snapshotService) GetDatasetSnapshot() (*response.DatasetSnapshot, error) {
	locations, err := s.locationRepo.GetAllLocations()
	if err != nil {
		s.logger.WithError(err).Error("Failed to load locations for dataset snapshot")
		return nil, err
	}

	snapshot := &response.DatasetSnapshot{
		GeneratedAt: s.clock(),
		Locations:   make([]response.LocationSnapshot, 0, len(locations)),
	}

	for _, location := range locations {
		locSnap := response.LocationSnapshot{
			DocumentID: location.DocumentID,
			Name:       location.Name,
			Properties: make([]response.PropertySnapshotEntry, 0, len(location.Properties)),
		}

		for i := range location.Properties {
			property := &location.Properties[i]
			status, err := s.calculator.ComputeStatus(property.Snapshot())
			if err != nil {
				s.logger.WithError(err).WithField("property_id", property.ID).Error("Failed to compute payment status")
				return nil, err
			}

			locSnap.Properties = append(locSnap.Properties, response.PropertySnapshotEntry{
				DocumentID:     property.DocumentID,
				Name:           property.Name,
				TenantName:     property.TenantName,
				RentAmount:     property.RentAmount,
				MaintenanceFee: property.MaintenanceFee,
				OtherFees:      property.OtherFees,
				LastPaidMonth:  property.LastPaidMonth,
				OverdueMonths:  status.OverdueMonths,
				OverpaidMonths: status.OverpaidMonths,
				OverdueCount:   status.OverdueCount,
				OverdueAmount:  status.OverdueAmount,
				Status:         status.Status,
			})
		}

		snapshot.Locations = append(snapshot.Locations, locSnap)
	}

	s.logger.WithField("locations", len(snapshot.Locations)).Info("Dataset snapshot generated")
	return snapshot, nil
}
