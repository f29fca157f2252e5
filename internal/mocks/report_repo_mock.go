package mocks

import (
	"context"
	"time"

	"parking/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type ReportRepository struct{ mock.Mock }

func (m *ReportRepository) CountActiveRecords(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
func (m *ReportRepository) SumIncomeByExitWindow(ctx context.Context, start, end time.Time) (float64, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).(float64), args.Error(1)
}
func (m *ReportRepository) CountEntriesByWindow(ctx context.Context, start, end time.Time) (int64, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).(int64), args.Error(1)
}
func (m *ReportRepository) LatestActive(ctx context.Context, limit int) ([]model.ParkingRecord, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ParkingRecord), args.Error(1)
}
func (m *ReportRepository) TopVehiclesAllTime(ctx context.Context, limit int) ([]model.FrequentVehicle, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FrequentVehicle), args.Error(1)
}
func (m *ReportRepository) ActiveVehicleSet(ctx context.Context, vehicleIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	args := m.Called(ctx, vehicleIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]bool), args.Error(1)
}
func (m *ReportRepository) DailyIncome(ctx context.Context, start, end time.Time) ([]model.DailyIncome, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DailyIncome), args.Error(1)
}
func (m *ReportRepository) PeriodTotals(ctx context.Context, start, end time.Time) (model.IncomeTotals, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).(model.IncomeTotals), args.Error(1)
}
func (m *ReportRepository) FrequentVehicles(ctx context.Context, start, end time.Time, limit int) ([]model.FrequentVehicle, error) {
	args := m.Called(ctx, start, end, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FrequentVehicle), args.Error(1)
}
func (m *ReportRepository) PeakHours(ctx context.Context, start, end time.Time, limit int) ([]model.PeakHour, error) {
	args := m.Called(ctx, start, end, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PeakHour), args.Error(1)
}
func (m *ReportRepository) HourlyOccupancy(ctx context.Context, start, end time.Time) ([]model.HourlyOccupancy, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.HourlyOccupancy), args.Error(1)
}
func (m *ReportRepository) TopSpaces(ctx context.Context, start, end time.Time, limit int) ([]model.SpaceUsage, error) {
	args := m.Called(ctx, start, end, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SpaceUsage), args.Error(1)
}
func (m *ReportRepository) TopVehicles(ctx context.Context, start, end time.Time, limit int) ([]model.VehicleRanking, error) {
	args := m.Called(ctx, start, end, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.VehicleRanking), args.Error(1)
}
func (m *ReportRepository) CommonMakes(ctx context.Context, limit int) ([]model.MakeCount, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MakeCount), args.Error(1)
}
