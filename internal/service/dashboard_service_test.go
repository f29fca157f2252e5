package service

import (
	"context"
	"testing"
	"time"

	"parking/internal/mocks"
	"parking/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestOccupancyPercent(t *testing.T) {
	assert.Equal(t, 0.0, occupancyPercent(0, 0))
	assert.Equal(t, 50.0, occupancyPercent(10, 20))
	assert.Equal(t, 33.3, occupancyPercent(1, 3))
	assert.Equal(t, 100.0, occupancyPercent(20, 20))
}

func TestGetStats(t *testing.T) {
	spaceRepo := new(mocks.SpaceRepository)
	vehicleRepo := new(mocks.VehicleRepository)
	reportRepo := new(mocks.ReportRepository)

	svc := NewDashboardService(spaceRepo, vehicleRepo, reportRepo).(*dashboardService)
	svc.now = func() time.Time { return time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC) }

	spaceRepo.On("Count", mock.Anything).Return(int64(20), nil)
	spaceRepo.On("CountByState", mock.Anything, model.SpaceStateAvailable).Return(int64(12), nil)
	spaceRepo.On("CountByState", mock.Anything, model.SpaceStateOccupied).Return(int64(7), nil)
	spaceRepo.On("CountByState", mock.Anything, model.SpaceStateMaintenance).Return(int64(1), nil)
	reportRepo.On("CountActiveRecords", mock.Anything).Return(int64(7), nil)
	reportRepo.On("SumIncomeByExitWindow", mock.Anything, mock.Anything, mock.Anything).Return(125.50, nil)
	reportRepo.On("CountEntriesByWindow", mock.Anything, mock.Anything, mock.Anything).Return(int64(14), nil)
	reportRepo.On("TopVehiclesAllTime", mock.Anything, 5).Return([]model.FrequentVehicle{
		{Plate: "ABC123", Vehicle: "Toyota Corolla", Visits: 9},
	}, nil)
	reportRepo.On("LatestActive", mock.Anything, 5).Return([]model.ParkingRecord{
		{
			SpaceNumber: "A04",
			EntryTime:   time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC),
			State:       model.RecordStateActive,
			Vehicle:     model.Vehicle{Plate: "ABC123", Make: "Toyota", Model: "Corolla", Color: "Rojo"},
			User:        &model.User{Name: "Ana"},
		},
	}, nil)

	stats, err := svc.GetStats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(20), stats.Metrics.Spaces.Total)
	assert.Equal(t, int64(7), stats.Metrics.Spaces.Occupied)
	assert.Equal(t, 35.0, stats.Metrics.Occupancy)
	assert.Equal(t, 125.50, stats.Metrics.IncomeToday)
	assert.Equal(t, int64(14), stats.Metrics.EntriesToday)
	assert.Len(t, stats.LatestEntries, 1)
	assert.Equal(t, "Ana", stats.LatestEntries[0].RegisteredBy)
	assert.Equal(t, "Toyota Corolla", stats.LatestEntries[0].Vehicle)
}

func TestQuickSearchFlagsParkedVehicles(t *testing.T) {
	spaceRepo := new(mocks.SpaceRepository)
	vehicleRepo := new(mocks.VehicleRepository)
	reportRepo := new(mocks.ReportRepository)

	svc := NewDashboardService(spaceRepo, vehicleRepo, reportRepo)

	parkedID := uuid.New()
	outsideID := uuid.New()
	vehicleRepo.On("SearchByPlate", mock.Anything, "AB", 10).Return([]model.Vehicle{
		{ID: parkedID, Plate: "AB1234", Make: "Honda", Model: "Civic", Color: "Azul"},
		{ID: outsideID, Plate: "AB9999", Make: "Mazda", Model: "3", Color: "Negro"},
	}, nil)
	reportRepo.On("ActiveVehicleSet", mock.Anything, []uuid.UUID{parkedID, outsideID}).
		Return(map[uuid.UUID]bool{parkedID: true}, nil)

	results, err := svc.QuickSearch(context.Background(), "AB")

	assert.NoError(t, err)
	assert.Len(t, results, 2)
	assert.True(t, results[0].Parked)
	assert.False(t, results[1].Parked)
	assert.Equal(t, "Honda Civic - Azul", results[0].Description)
}

func TestQuickSearchTooShort(t *testing.T) {
	svc := NewDashboardService(new(mocks.SpaceRepository), new(mocks.VehicleRepository), new(mocks.ReportRepository))

	results, err := svc.QuickSearch(context.Background(), " a ")

	assert.NoError(t, err)
	assert.Empty(t, results)
}
