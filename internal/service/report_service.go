package service

import (
	"context"
	"errors"
	"time"

	"parking/internal/model"
	"parking/internal/repository"
)

// ErrInvalidDateRange is returned when fechaInicio/fechaFin cannot be
// parsed or the range is inverted.
var ErrInvalidDateRange = errors.New("rango de fechas inválido")

// ReportService builds the admin reports over finished and active
// parking sessions.
type ReportService interface {
	IncomeReport(ctx context.Context, dateStart, dateEnd string) (*model.IncomeReport, error)
	OccupancyReport(ctx context.Context, date string) (*model.OccupancyReport, error)
	VehicleReport(ctx context.Context, dateStart, dateEnd string) (*model.VehicleReport, error)
}

type reportService struct {
	reportRepo repository.ReportRepository
	now        func() time.Time
}

func NewReportService(reportRepo repository.ReportRepository) ReportService {
	return &reportService{reportRepo: reportRepo, now: time.Now}
}

const dateLayout = "2006-01-02"

// resolveWindow turns optional fechaInicio/fechaFin strings into a
// half-open [start, end) window. The end date is inclusive, so the
// window extends one day past it.
func (s *reportService) resolveWindow(dateStart, dateEnd string, defaultSpan func(end time.Time) time.Time) (start, end time.Time, err error) {
	now := s.now()
	end = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if dateEnd != "" {
		end, err = time.ParseInLocation(dateLayout, dateEnd, now.Location())
		if err != nil {
			return start, end, ErrInvalidDateRange
		}
	}

	start = defaultSpan(end)
	if dateStart != "" {
		start, err = time.ParseInLocation(dateLayout, dateStart, now.Location())
		if err != nil {
			return start, end, ErrInvalidDateRange
		}
	}

	end = end.AddDate(0, 0, 1)
	if !start.Before(end) {
		return start, end, ErrInvalidDateRange
	}
	return start, end, nil
}

func (s *reportService) IncomeReport(ctx context.Context, dateStart, dateEnd string) (*model.IncomeReport, error) {
	start, end, err := s.resolveWindow(dateStart, dateEnd, func(end time.Time) time.Time {
		return end.AddDate(0, -1, 0)
	})
	if err != nil {
		return nil, err
	}

	report := &model.IncomeReport{
		Period: model.ReportPeriod{
			DateStart: start.Format(dateLayout),
			DateEnd:   end.AddDate(0, 0, -1).Format(dateLayout),
		},
	}

	report.DailyIncome, err = s.reportRepo.DailyIncome(ctx, start, end)
	if err != nil {
		return nil, err
	}

	report.Totals, err = s.reportRepo.PeriodTotals(ctx, start, end)
	if err != nil {
		return nil, err
	}
	for i := range report.DailyIncome {
		day := &report.DailyIncome[i]
		if report.Totals.BestDay == nil || day.Income > report.Totals.BestDay.Income {
			report.Totals.BestDay = day
		}
	}

	report.FrequentVehicles, err = s.reportRepo.FrequentVehicles(ctx, start, end, 10)
	if err != nil {
		return nil, err
	}

	report.PeakHours, err = s.reportRepo.PeakHours(ctx, start, end, 5)
	if err != nil {
		return nil, err
	}

	return report, nil
}

func (s *reportService) OccupancyReport(ctx context.Context, date string) (*model.OccupancyReport, error) {
	now := s.now()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if date != "" {
		parsed, err := time.ParseInLocation(dateLayout, date, now.Location())
		if err != nil {
			return nil, ErrInvalidDateRange
		}
		day = parsed
	}
	dayEnd := day.AddDate(0, 0, 1)

	report := &model.OccupancyReport{Date: day.Format(dateLayout)}

	var err error
	report.ByHour, err = s.reportRepo.HourlyOccupancy(ctx, day, dayEnd)
	if err != nil {
		return nil, err
	}

	report.TopSpaces, err = s.reportRepo.TopSpaces(ctx, day, dayEnd, 10)
	if err != nil {
		return nil, err
	}

	return report, nil
}

func (s *reportService) VehicleReport(ctx context.Context, dateStart, dateEnd string) (*model.VehicleReport, error) {
	start, end, err := s.resolveWindow(dateStart, dateEnd, func(end time.Time) time.Time {
		return end.AddDate(0, 0, -30)
	})
	if err != nil {
		return nil, err
	}

	report := &model.VehicleReport{
		Period: model.ReportPeriod{
			DateStart: start.Format(dateLayout),
			DateEnd:   end.AddDate(0, 0, -1).Format(dateLayout),
			Days:      int(end.Sub(start).Hours() / 24),
		},
	}

	report.TopVehicles, err = s.reportRepo.TopVehicles(ctx, start, end, 20)
	if err != nil {
		return nil, err
	}

	report.CommonMakes, err = s.reportRepo.CommonMakes(ctx, 10)
	if err != nil {
		return nil, err
	}

	return report, nil
}
