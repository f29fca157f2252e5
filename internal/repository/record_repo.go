package repository

import (
	"context"
	"time"

	"parking/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecordRepository defines data access for parking session records.
type RecordRepository interface {
	Create(ctx context.Context, record *model.ParkingRecord) error
	Update(ctx context.Context, record *model.ParkingRecord) error
	GetActiveByVehicle(ctx context.Context, vehicleID uuid.UUID) (*model.ParkingRecord, error)
	ListActive(ctx context.Context) ([]model.ParkingRecord, error)
	ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]model.ParkingRecord, error)
	ListHistory(ctx context.Context, day *time.Time, offset, limit int) ([]model.ParkingRecord, int64, error)
}

type recordRepository struct {
	db *gorm.DB
}

func NewRecordRepository(db *gorm.DB) RecordRepository {
	return &recordRepository{db: db}
}

func (r *recordRepository) Create(ctx context.Context, record *model.ParkingRecord) error {
	return GetDB(ctx, r.db).Create(record).Error
}

func (r *recordRepository) Update(ctx context.Context, record *model.ParkingRecord) error {
	return GetDB(ctx, r.db).Save(record).Error
}

func (r *recordRepository) GetActiveByVehicle(ctx context.Context, vehicleID uuid.UUID) (*model.ParkingRecord, error) {
	var record model.ParkingRecord
	if err := GetDB(ctx, r.db).
		Where("vehicle_id = ? AND state = ?", vehicleID, model.RecordStateActive).
		First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *recordRepository) ListActive(ctx context.Context) ([]model.ParkingRecord, error) {
	var records []model.ParkingRecord
	if err := GetDB(ctx, r.db).
		Preload("Vehicle").
		Preload("User").
		Where("state = ?", model.RecordStateActive).
		Order("entry_time DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *recordRepository) ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]model.ParkingRecord, error) {
	var records []model.ParkingRecord
	if err := GetDB(ctx, r.db).
		Preload("User").
		Where("vehicle_id = ?", vehicleID).
		Order("entry_time DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *recordRepository) ListHistory(ctx context.Context, day *time.Time, offset, limit int) ([]model.ParkingRecord, int64, error) {
	var records []model.ParkingRecord
	var total int64

	db := GetDB(ctx, r.db)
	dayFilter := func(q *gorm.DB) *gorm.DB {
		if day == nil {
			return q
		}
		start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		end := start.AddDate(0, 0, 1)
		return q.Where("entry_time >= ? AND entry_time < ?", start, end)
	}

	if err := dayFilter(db.Model(&model.ParkingRecord{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := dayFilter(db).
		Preload("Vehicle").
		Preload("User").
		Order("entry_time DESC").
		Offset(offset).
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, 0, err
	}

	return records, total, nil
}
