package service

import (
	"context"
	"testing"
	"time"

	"parking/internal/mocks"
	"parking/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newReportFixture(now time.Time) (*reportService, *mocks.ReportRepository) {
	repo := new(mocks.ReportRepository)
	svc := NewReportService(repo).(*reportService)
	svc.now = func() time.Time { return now }
	return svc, repo
}

func TestIncomeReportDefaultsToTrailingMonth(t *testing.T) {
	now := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)
	svc, repo := newReportFixture(now)

	expectedStart := time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC)
	expectedEnd := time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC)

	repo.On("DailyIncome", mock.Anything, expectedStart, expectedEnd).Return([]model.DailyIncome{
		{Date: "2025-03-10", Income: 40, Exits: 8},
		{Date: "2025-03-11", Income: 95, Exits: 12},
		{Date: "2025-03-12", Income: 60, Exits: 10},
	}, nil)
	repo.On("PeriodTotals", mock.Anything, expectedStart, expectedEnd).Return(model.IncomeTotals{
		TotalIncome: 195, TotalExits: 30, AvgPerExit: 6.5,
	}, nil)
	repo.On("FrequentVehicles", mock.Anything, expectedStart, expectedEnd, 10).Return([]model.FrequentVehicle{}, nil)
	repo.On("PeakHours", mock.Anything, expectedStart, expectedEnd, 5).Return([]model.PeakHour{}, nil)

	report, err := svc.IncomeReport(context.Background(), "", "")

	assert.NoError(t, err)
	assert.Equal(t, "2025-02-15", report.Period.DateStart)
	assert.Equal(t, "2025-03-15", report.Period.DateEnd)
	assert.NotNil(t, report.Totals.BestDay)
	assert.Equal(t, "2025-03-11", report.Totals.BestDay.Date)
	assert.Equal(t, 95.0, report.Totals.BestDay.Income)
	repo.AssertExpectations(t)
}

func TestIncomeReportRejectsBadDates(t *testing.T) {
	svc, _ := newReportFixture(time.Now())

	_, err := svc.IncomeReport(context.Background(), "no-es-fecha", "")
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = svc.IncomeReport(context.Background(), "2025-03-20", "2025-03-10")
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestOccupancyReportDefaultsToToday(t *testing.T) {
	now := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)
	svc, repo := newReportFixture(now)

	dayStart := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	repo.On("HourlyOccupancy", mock.Anything, dayStart, dayEnd).Return([]model.HourlyOccupancy{
		{Hour: "8:00", Entries: 5, AvgDuration: 92.5},
	}, nil)
	repo.On("TopSpaces", mock.Anything, dayStart, dayEnd, 10).Return([]model.SpaceUsage{
		{Space: "A01", Uses: 4},
	}, nil)

	report, err := svc.OccupancyReport(context.Background(), "")

	assert.NoError(t, err)
	assert.Equal(t, "2025-03-15", report.Date)
	assert.Len(t, report.ByHour, 1)
	assert.Len(t, report.TopSpaces, 1)
}

func TestVehicleReportDefaultsToThirtyDays(t *testing.T) {
	now := time.Date(2025, 3, 31, 10, 0, 0, 0, time.UTC)
	svc, repo := newReportFixture(now)

	expectedStart := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	expectedEnd := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	repo.On("TopVehicles", mock.Anything, expectedStart, expectedEnd, 20).Return([]model.VehicleRanking{}, nil)
	repo.On("CommonMakes", mock.Anything, 10).Return([]model.MakeCount{{Make: "Toyota", Count: 12}}, nil)

	report, err := svc.VehicleReport(context.Background(), "", "")

	assert.NoError(t, err)
	assert.Equal(t, 31, report.Period.Days)
	assert.Equal(t, "Toyota", report.CommonMakes[0].Make)
	repo.AssertExpectations(t)
}
