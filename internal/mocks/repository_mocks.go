// Package mocks provides testify doubles for the repository layer.
package mocks

import (
	"context"
	"time"

	"parking/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// TxManager runs the callback against the same context, standing in for
// a real transaction.
type TxManager struct{ mock.Mock }

func (m *TxManager) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

type UserRepository struct{ mock.Mock }

func (m *UserRepository) Create(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
func (m *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
func (m *UserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type VehicleRepository struct{ mock.Mock }

func (m *VehicleRepository) GetByPlate(ctx context.Context, plate string) (*model.Vehicle, error) {
	args := m.Called(ctx, plate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vehicle), args.Error(1)
}
func (m *VehicleRepository) GetByPlateForUpdate(ctx context.Context, plate string) (*model.Vehicle, error) {
	args := m.Called(ctx, plate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vehicle), args.Error(1)
}
func (m *VehicleRepository) Create(ctx context.Context, vehicle *model.Vehicle) error {
	return m.Called(ctx, vehicle).Error(0)
}
func (m *VehicleRepository) Update(ctx context.Context, vehicle *model.Vehicle) error {
	return m.Called(ctx, vehicle).Error(0)
}
func (m *VehicleRepository) SearchByPlate(ctx context.Context, query string, limit int) ([]model.Vehicle, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Vehicle), args.Error(1)
}

type SpaceRepository struct{ mock.Mock }

func (m *SpaceRepository) ClaimAvailable(ctx context.Context) (*model.Space, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Space), args.Error(1)
}
func (m *SpaceRepository) SetState(ctx context.Context, number, state string) (int64, error) {
	args := m.Called(ctx, number, state)
	return args.Get(0).(int64), args.Error(1)
}
func (m *SpaceRepository) List(ctx context.Context) ([]model.Space, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Space), args.Error(1)
}
func (m *SpaceRepository) CountByState(ctx context.Context, state string) (int64, error) {
	args := m.Called(ctx, state)
	return args.Get(0).(int64), args.Error(1)
}
func (m *SpaceRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type RecordRepository struct{ mock.Mock }

func (m *RecordRepository) Create(ctx context.Context, record *model.ParkingRecord) error {
	return m.Called(ctx, record).Error(0)
}
func (m *RecordRepository) Update(ctx context.Context, record *model.ParkingRecord) error {
	return m.Called(ctx, record).Error(0)
}
func (m *RecordRepository) GetActiveByVehicle(ctx context.Context, vehicleID uuid.UUID) (*model.ParkingRecord, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ParkingRecord), args.Error(1)
}
func (m *RecordRepository) ListActive(ctx context.Context) ([]model.ParkingRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ParkingRecord), args.Error(1)
}
func (m *RecordRepository) ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]model.ParkingRecord, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ParkingRecord), args.Error(1)
}
func (m *RecordRepository) ListHistory(ctx context.Context, day *time.Time, offset, limit int) ([]model.ParkingRecord, int64, error) {
	args := m.Called(ctx, day, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]model.ParkingRecord), args.Get(1).(int64), args.Error(2)
}

type TariffRepository struct{ mock.Mock }

func (m *TariffRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Tariff, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tariff), args.Error(1)
}
func (m *TariffRepository) GetActiveByType(ctx context.Context, tariffType string) (*model.Tariff, error) {
	args := m.Called(ctx, tariffType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tariff), args.Error(1)
}
func (m *TariffRepository) ListActive(ctx context.Context) ([]model.Tariff, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Tariff), args.Error(1)
}
func (m *TariffRepository) ListHistory(ctx context.Context) ([]model.Tariff, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Tariff), args.Error(1)
}
func (m *TariffRepository) Create(ctx context.Context, tariff *model.Tariff) error {
	return m.Called(ctx, tariff).Error(0)
}
func (m *TariffRepository) Update(ctx context.Context, tariff *model.Tariff) error {
	return m.Called(ctx, tariff).Error(0)
}

type ConfigurationRepository struct{ mock.Mock }

func (m *ConfigurationRepository) List(ctx context.Context) ([]model.Configuration, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Configuration), args.Error(1)
}
func (m *ConfigurationRepository) UpdateValue(ctx context.Context, key, value string) (int64, error) {
	args := m.Called(ctx, key, value)
	return args.Get(0).(int64), args.Error(1)
}
func (m *ConfigurationRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type FormFieldRepository struct{ mock.Mock }

func (m *FormFieldRepository) ListActive(ctx context.Context) ([]model.FormField, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FormField), args.Error(1)
}
func (m *FormFieldRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.FormField, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FormField), args.Error(1)
}
func (m *FormFieldRepository) GetByName(ctx context.Context, name string) (*model.FormField, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FormField), args.Error(1)
}
func (m *FormFieldRepository) Create(ctx context.Context, field *model.FormField) error {
	return m.Called(ctx, field).Error(0)
}
func (m *FormFieldRepository) Update(ctx context.Context, field *model.FormField) error {
	return m.Called(ctx, field).Error(0)
}
