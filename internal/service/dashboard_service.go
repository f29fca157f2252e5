package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"parking/internal/model"
	"parking/internal/repository"

	"github.com/google/uuid"
)

// DashboardService produces the live stats and quick search behind the
// operator dashboard.
type DashboardService interface {
	GetStats(ctx context.Context) (*model.DashboardStats, error)
	QuickSearch(ctx context.Context, query string) ([]model.SearchResult, error)
}

type dashboardService struct {
	spaceRepo   repository.SpaceRepository
	vehicleRepo repository.VehicleRepository
	reportRepo  repository.ReportRepository
	now         func() time.Time
}

func NewDashboardService(
	spaceRepo repository.SpaceRepository,
	vehicleRepo repository.VehicleRepository,
	reportRepo repository.ReportRepository,
) DashboardService {
	return &dashboardService{
		spaceRepo:   spaceRepo,
		vehicleRepo: vehicleRepo,
		reportRepo:  reportRepo,
		now:         time.Now,
	}
}

func (s *dashboardService) GetStats(ctx context.Context) (*model.DashboardStats, error) {
	stats := &model.DashboardStats{}

	total, err := s.spaceRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count spaces: %w", err)
	}
	available, err := s.spaceRepo.CountByState(ctx, model.SpaceStateAvailable)
	if err != nil {
		return nil, fmt.Errorf("failed to count available spaces: %w", err)
	}
	occupied, err := s.spaceRepo.CountByState(ctx, model.SpaceStateOccupied)
	if err != nil {
		return nil, fmt.Errorf("failed to count occupied spaces: %w", err)
	}
	maintenance, err := s.spaceRepo.CountByState(ctx, model.SpaceStateMaintenance)
	if err != nil {
		return nil, fmt.Errorf("failed to count maintenance spaces: %w", err)
	}
	stats.Metrics.Spaces = model.SpaceCounts{
		Total:       total,
		Available:   available,
		Occupied:    occupied,
		Maintenance: maintenance,
	}

	stats.Metrics.ActiveVehicles, err = s.reportRepo.CountActiveRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count active records: %w", err)
	}

	now := s.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	stats.Metrics.IncomeToday, err = s.reportRepo.SumIncomeByExitWindow(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to sum today's income: %w", err)
	}

	stats.Metrics.EntriesToday, err = s.reportRepo.CountEntriesByWindow(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to count today's entries: %w", err)
	}

	stats.Metrics.Occupancy = occupancyPercent(occupied, total)

	stats.FrequentVehicles, err = s.reportRepo.TopVehiclesAllTime(ctx, 5)
	if err != nil {
		return nil, err
	}

	latest, err := s.reportRepo.LatestActive(ctx, 5)
	if err != nil {
		return nil, fmt.Errorf("failed to list latest entries: %w", err)
	}
	stats.LatestEntries = make([]model.ActiveEntry, 0, len(latest))
	for _, record := range latest {
		entry := model.ActiveEntry{
			ID:           record.ID.String(),
			Plate:        record.Vehicle.Plate,
			Vehicle:      record.Vehicle.Make + " " + record.Vehicle.Model,
			Color:        record.Vehicle.Color,
			Space:        record.SpaceNumber,
			State:        record.State,
			EntryTime:    record.EntryTime.Format(time.RFC3339),
			RegisteredBy: "Sistema",
		}
		if record.User != nil {
			entry.RegisteredBy = record.User.Name
		}
		stats.LatestEntries = append(stats.LatestEntries, entry)
	}

	return stats, nil
}

// QuickSearch matches plates by substring, flagging vehicles with an
// active session as currently parked.
func (s *dashboardService) QuickSearch(ctx context.Context, query string) ([]model.SearchResult, error) {
	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return []model.SearchResult{}, nil
	}

	vehicles, err := s.vehicleRepo.SearchByPlate(ctx, query, 10)
	if err != nil {
		return nil, fmt.Errorf("failed to search vehicles: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(vehicles))
	for _, vehicle := range vehicles {
		ids = append(ids, vehicle.ID)
	}
	parked, err := s.reportRepo.ActiveVehicleSet(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve parked vehicles: %w", err)
	}

	results := make([]model.SearchResult, 0, len(vehicles))
	for _, vehicle := range vehicles {
		results = append(results, model.SearchResult{
			Kind:        "vehiculo",
			ID:          vehicle.ID.String(),
			Plate:       vehicle.Plate,
			Description: fmt.Sprintf("%s %s - %s", vehicle.Make, vehicle.Model, vehicle.Color),
			Parked:      parked[vehicle.ID],
		})
	}
	return results, nil
}

// occupancyPercent returns occupied/total as a percentage with one
// decimal, 0 when the pool is empty.
func occupancyPercent(occupied, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(occupied)/float64(total)*1000) / 10
}
