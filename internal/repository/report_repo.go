package repository

import (
	"context"
	"fmt"
	"time"

	"parking/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReportRepository holds the read-only aggregation queries behind the
// dashboard and the admin reports.
type ReportRepository interface {
	CountActiveRecords(ctx context.Context) (int64, error)
	SumIncomeByExitWindow(ctx context.Context, start, end time.Time) (float64, error)
	CountEntriesByWindow(ctx context.Context, start, end time.Time) (int64, error)
	LatestActive(ctx context.Context, limit int) ([]model.ParkingRecord, error)
	TopVehiclesAllTime(ctx context.Context, limit int) ([]model.FrequentVehicle, error)
	ActiveVehicleSet(ctx context.Context, vehicleIDs []uuid.UUID) (map[uuid.UUID]bool, error)

	DailyIncome(ctx context.Context, start, end time.Time) ([]model.DailyIncome, error)
	PeriodTotals(ctx context.Context, start, end time.Time) (model.IncomeTotals, error)
	FrequentVehicles(ctx context.Context, start, end time.Time, limit int) ([]model.FrequentVehicle, error)
	PeakHours(ctx context.Context, start, end time.Time, limit int) ([]model.PeakHour, error)

	HourlyOccupancy(ctx context.Context, start, end time.Time) ([]model.HourlyOccupancy, error)
	TopSpaces(ctx context.Context, start, end time.Time, limit int) ([]model.SpaceUsage, error)

	TopVehicles(ctx context.Context, start, end time.Time, limit int) ([]model.VehicleRanking, error)
	CommonMakes(ctx context.Context, limit int) ([]model.MakeCount, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) CountActiveRecords(ctx context.Context) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).
		Model(&model.ParkingRecord{}).
		Where("state = ?", model.RecordStateActive).
		Count(&count).Error
	return count, err
}

func (r *reportRepository) SumIncomeByExitWindow(ctx context.Context, start, end time.Time) (float64, error) {
	var result struct {
		Total float64
	}
	err := GetDB(ctx, r.db).
		Model(&model.ParkingRecord{}).
		Select("COALESCE(SUM(amount), 0) as total").
		Where("state = ? AND exit_time >= ? AND exit_time < ?", model.RecordStateFinished, start, end).
		Scan(&result).Error
	return result.Total, err
}

func (r *reportRepository) CountEntriesByWindow(ctx context.Context, start, end time.Time) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).
		Model(&model.ParkingRecord{}).
		Where("entry_time >= ? AND entry_time < ?", start, end).
		Count(&count).Error
	return count, err
}

func (r *reportRepository) LatestActive(ctx context.Context, limit int) ([]model.ParkingRecord, error) {
	var records []model.ParkingRecord
	if err := GetDB(ctx, r.db).
		Preload("Vehicle").
		Preload("User").
		Where("state = ?", model.RecordStateActive).
		Order("entry_time DESC").
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *reportRepository) TopVehiclesAllTime(ctx context.Context, limit int) ([]model.FrequentVehicle, error) {
	var rows []struct {
		Plate  string
		Make   string
		Model  string
		Visits int64
	}
	if err := GetDB(ctx, r.db).
		Table("parking_records").
		Select("vehicles.plate as plate, vehicles.make as make, vehicles.model as model, COUNT(parking_records.id) as visits").
		Joins("JOIN vehicles ON vehicles.id = parking_records.vehicle_id").
		Group("vehicles.plate, vehicles.make, vehicles.model").
		Order("visits DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query frequent vehicles: %w", err)
	}

	ranked := make([]model.FrequentVehicle, 0, len(rows))
	for _, row := range rows {
		ranked = append(ranked, model.FrequentVehicle{
			Plate:   row.Plate,
			Vehicle: row.Make + " " + row.Model,
			Visits:  row.Visits,
		})
	}
	return ranked, nil
}

func (r *reportRepository) ActiveVehicleSet(ctx context.Context, vehicleIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	parked := make(map[uuid.UUID]bool, len(vehicleIDs))
	if len(vehicleIDs) == 0 {
		return parked, nil
	}

	var ids []uuid.UUID
	if err := GetDB(ctx, r.db).
		Model(&model.ParkingRecord{}).
		Where("vehicle_id IN ? AND state = ?", vehicleIDs, model.RecordStateActive).
		Pluck("vehicle_id", &ids).Error; err != nil {
		return nil, err
	}
	for _, id := range ids {
		parked[id] = true
	}
	return parked, nil
}

func (r *reportRepository) DailyIncome(ctx context.Context, start, end time.Time) ([]model.DailyIncome, error) {
	var rows []struct {
		Day    time.Time
		Income float64
		Exits  int64
	}
	if err := GetDB(ctx, r.db).
		Model(&model.ParkingRecord{}).
		Select("DATE(exit_time) as day, SUM(amount) as income, COUNT(id) as exits").
		Where("state = ? AND amount IS NOT NULL AND exit_time >= ? AND exit_time < ?", model.RecordStateFinished, start, end).
		Group("DATE(exit_time)").
		Order("day ASC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query daily income: %w", err)
	}

	daily := make([]model.DailyIncome, 0, len(rows))
	for _, row := range rows {
		daily = append(daily, model.DailyIncome{
			Date:   row.Day.Format("2006-01-02"),
			Income: row.Income,
			Exits:  row.Exits,
		})
	}
	return daily, nil
}

func (r *reportRepository) PeriodTotals(ctx context.Context, start, end time.Time) (model.IncomeTotals, error) {
	var row struct {
		TotalIncome float64
		TotalExits  int64
		AvgPerExit  float64
	}
	if err := GetDB(ctx, r.db).
		Model(&model.ParkingRecord{}).
		Select("COALESCE(SUM(amount), 0) as total_income, COUNT(id) as total_exits, COALESCE(AVG(amount), 0) as avg_per_exit").
		Where("state = ? AND amount IS NOT NULL AND exit_time >= ? AND exit_time < ?", model.RecordStateFinished, start, end).
		Scan(&row).Error; err != nil {
		return model.IncomeTotals{}, fmt.Errorf("failed to query period totals: %w", err)
	}

	return model.IncomeTotals{
		TotalIncome: row.TotalIncome,
		TotalExits:  row.TotalExits,
		AvgPerExit:  row.AvgPerExit,
	}, nil
}

func (r *reportRepository) FrequentVehicles(ctx context.Context, start, end time.Time, limit int) ([]model.FrequentVehicle, error) {
	var rows []struct {
		Plate      string
		Make       string
		Model      string
		Visits     int64
		TotalSpent float64
	}
	if err := GetDB(ctx, r.db).
		Table("parking_records").
		Select("vehicles.plate as plate, vehicles.make as make, vehicles.model as model, COUNT(parking_records.id) as visits, COALESCE(SUM(parking_records.amount), 0) as total_spent").
		Joins("JOIN vehicles ON vehicles.id = parking_records.vehicle_id").
		Where("parking_records.state = ? AND parking_records.exit_time >= ? AND parking_records.exit_time < ?", model.RecordStateFinished, start, end).
		Group("vehicles.plate, vehicles.make, vehicles.model").
		Order("visits DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query frequent vehicles: %w", err)
	}

	ranked := make([]model.FrequentVehicle, 0, len(rows))
	for _, row := range rows {
		ranked = append(ranked, model.FrequentVehicle{
			Plate:      row.Plate,
			Vehicle:    row.Make + " " + row.Model,
			Visits:     row.Visits,
			TotalSpent: row.TotalSpent,
		})
	}
	return ranked, nil
}

func (r *reportRepository) PeakHours(ctx context.Context, start, end time.Time, limit int) ([]model.PeakHour, error) {
	var rows []struct {
		Hour    int
		Entries int64
	}
	if err := GetDB(ctx, r.db).
		Model(&model.ParkingRecord{}).
		Select("EXTRACT(HOUR FROM entry_time)::int as hour, COUNT(id) as entries").
		Where("entry_time >= ? AND entry_time < ?", start, end).
		Group("EXTRACT(HOUR FROM entry_time)").
		Order("entries DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query peak hours: %w", err)
	}

	peaks := make([]model.PeakHour, 0, len(rows))
	for _, row := range rows {
		peaks = append(peaks, model.PeakHour{
			Hour:    fmt.Sprintf("%d:00", row.Hour),
			Entries: row.Entries,
		})
	}
	return peaks, nil
}

func (r *reportRepository) HourlyOccupancy(ctx context.Context, start, end time.Time) ([]model.HourlyOccupancy, error) {
	var rows []struct {
		Hour        int
		Entries     int64
		AvgDuration float64
	}
	if err := GetDB(ctx, r.db).
		Model(&model.ParkingRecord{}).
		Select("EXTRACT(HOUR FROM entry_time)::int as hour, COUNT(id) as entries, COALESCE(AVG(EXTRACT(EPOCH FROM (exit_time - entry_time)) / 60), 0) as avg_duration").
		Where("state = ? AND entry_time >= ? AND entry_time < ?", model.RecordStateFinished, start, end).
		Group("EXTRACT(HOUR FROM entry_time)").
		Order("hour ASC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query hourly occupancy: %w", err)
	}

	hours := make([]model.HourlyOccupancy, 0, len(rows))
	for _, row := range rows {
		hours = append(hours, model.HourlyOccupancy{
			Hour:        fmt.Sprintf("%d:00", row.Hour),
			Entries:     row.Entries,
			AvgDuration: row.AvgDuration,
		})
	}
	return hours, nil
}

func (r *reportRepository) TopSpaces(ctx context.Context, start, end time.Time, limit int) ([]model.SpaceUsage, error) {
	var usage []model.SpaceUsage
	if err := GetDB(ctx, r.db).
		Model(&model.ParkingRecord{}).
		Select("space_number as space, COUNT(id) as uses").
		Where("entry_time >= ? AND entry_time < ?", start, end).
		Group("space_number").
		Order("uses DESC").
		Limit(limit).
		Scan(&usage).Error; err != nil {
		return nil, fmt.Errorf("failed to query space usage: %w", err)
	}
	return usage, nil
}

func (r *reportRepository) TopVehicles(ctx context.Context, start, end time.Time, limit int) ([]model.VehicleRanking, error) {
	var rows []struct {
		Plate       string
		Make        string
		Model       string
		Color       string
		Visits      int64
		TotalSpent  float64
		AvgDuration float64
	}
	if err := GetDB(ctx, r.db).
		Table("parking_records").
		Select("vehicles.plate as plate, vehicles.make as make, vehicles.model as model, vehicles.color as color, "+
			"COUNT(parking_records.id) as visits, COALESCE(SUM(parking_records.amount), 0) as total_spent, "+
			"COALESCE(AVG(EXTRACT(EPOCH FROM (parking_records.exit_time - parking_records.entry_time)) / 60), 0) as avg_duration").
		Joins("JOIN vehicles ON vehicles.id = parking_records.vehicle_id").
		Where("parking_records.state = ? AND parking_records.entry_time >= ? AND parking_records.entry_time < ?", model.RecordStateFinished, start, end).
		Group("vehicles.plate, vehicles.make, vehicles.model, vehicles.color").
		Order("visits DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query top vehicles: %w", err)
	}

	ranked := make([]model.VehicleRanking, 0, len(rows))
	for _, row := range rows {
		ranked = append(ranked, model.VehicleRanking{
			Plate:       row.Plate,
			Vehicle:     row.Make + " " + row.Model,
			Color:       row.Color,
			Visits:      row.Visits,
			TotalSpent:  row.TotalSpent,
			AvgDuration: row.AvgDuration,
		})
	}
	return ranked, nil
}

func (r *reportRepository) CommonMakes(ctx context.Context, limit int) ([]model.MakeCount, error) {
	var makes []model.MakeCount
	if err := GetDB(ctx, r.db).
		Model(&model.Vehicle{}).
		Select("make, COUNT(make) as count").
		Group("make").
		Order("count DESC").
		Limit(limit).
		Scan(&makes).Error; err != nil {
		return nil, fmt.Errorf("failed to query common makes: %w", err)
	}
	return makes, nil
}
