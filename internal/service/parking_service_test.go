package service

import (
	"context"
	"testing"
	"time"

	"parking/internal/mocks"
	"parking/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func newParkingFixture() (*parkingService, *mocks.VehicleRepository, *mocks.SpaceRepository, *mocks.RecordRepository, *mocks.TariffRepository) {
	vehicleRepo := new(mocks.VehicleRepository)
	spaceRepo := new(mocks.SpaceRepository)
	recordRepo := new(mocks.RecordRepository)
	tariffRepo := new(mocks.TariffRepository)

	svc := NewParkingService(vehicleRepo, spaceRepo, recordRepo, tariffRepo, new(mocks.TxManager), nil).(*parkingService)
	return svc, vehicleRepo, spaceRepo, recordRepo, tariffRepo
}

func TestRegisterEntryNoSpace(t *testing.T) {
	svc, _, spaceRepo, recordRepo, _ := newParkingFixture()

	spaceRepo.On("ClaimAvailable", mock.Anything).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.RegisterEntry(context.Background(), nil, EntryRequest{
		Plate: "ABC123", Make: "Toyota", Model: "Corolla", Color: "Rojo",
	})

	assert.ErrorIs(t, err, ErrNoSpaceAvailable)
	recordRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterEntryVehicleAlreadyInside(t *testing.T) {
	svc, vehicleRepo, spaceRepo, recordRepo, _ := newParkingFixture()

	vehicle := &model.Vehicle{ID: uuid.New(), Plate: "ABC123", Make: "Toyota", Model: "Corolla", Color: "Rojo"}
	entryTime := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

	spaceRepo.On("ClaimAvailable", mock.Anything).Return(&model.Space{Number: "A05", State: model.SpaceStateAvailable}, nil)
	vehicleRepo.On("GetByPlateForUpdate", mock.Anything, "ABC123").Return(vehicle, nil)
	recordRepo.On("GetActiveByVehicle", mock.Anything, vehicle.ID).Return(&model.ParkingRecord{
		VehicleID:   vehicle.ID,
		SpaceNumber: "A02",
		EntryTime:   entryTime,
		State:       model.RecordStateActive,
	}, nil)

	_, err := svc.RegisterEntry(context.Background(), nil, EntryRequest{
		Plate: "abc123", Make: "Toyota", Model: "Corolla", Color: "Rojo",
	})

	var inside *VehicleInsideError
	assert.ErrorAs(t, err, &inside)
	assert.Equal(t, "A02", inside.Space)
	assert.Equal(t, entryTime, inside.EntryTime)
	recordRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterEntryAssignsSpaceAndNormalizesPlate(t *testing.T) {
	svc, vehicleRepo, spaceRepo, recordRepo, _ := newParkingFixture()

	operatorID := uuid.New()
	spaceRepo.On("ClaimAvailable", mock.Anything).Return(&model.Space{Number: "A03", State: model.SpaceStateAvailable}, nil)
	vehicleRepo.On("GetByPlateForUpdate", mock.Anything, "XYZ789").Return(nil, gorm.ErrRecordNotFound)
	vehicleRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Vehicle")).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Vehicle).ID = uuid.New()
	}).Return(nil)
	recordRepo.On("GetActiveByVehicle", mock.Anything, mock.Anything).Return(nil, gorm.ErrRecordNotFound)
	recordRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.ParkingRecord")).Return(nil)
	spaceRepo.On("SetState", mock.Anything, "A03", model.SpaceStateOccupied).Return(int64(1), nil)

	result, err := svc.RegisterEntry(context.Background(), &operatorID, EntryRequest{
		Plate: "  xyz789 ", Make: "Honda", Model: "Civic", Color: "Azul",
	})

	assert.NoError(t, err)
	assert.Equal(t, "XYZ789", result.Vehicle.Plate)
	assert.Equal(t, "A03", result.Record.Space)
	spaceRepo.AssertExpectations(t)
	vehicleRepo.AssertExpectations(t)
	recordRepo.AssertExpectations(t)
}

func TestRegisterExitWithActiveTariff(t *testing.T) {
	svc, vehicleRepo, spaceRepo, recordRepo, tariffRepo := newParkingFixture()

	exitTime := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return exitTime }

	vehicle := &model.Vehicle{ID: uuid.New(), Plate: "ABC123", Make: "Toyota", Model: "Corolla"}
	record := &model.ParkingRecord{
		VehicleID:   vehicle.ID,
		SpaceNumber: "A07",
		EntryTime:   exitTime.Add(-150 * time.Minute), // bills 3 hours
		State:       model.RecordStateActive,
	}

	vehicleRepo.On("GetByPlateForUpdate", mock.Anything, "ABC123").Return(vehicle, nil)
	recordRepo.On("GetActiveByVehicle", mock.Anything, vehicle.ID).Return(record, nil)
	tariffRepo.On("GetActiveByType", mock.Anything, model.TariffTypeHourly).Return(&model.Tariff{
		Type:   model.TariffTypeHourly,
		Price:  decimal.NewFromFloat(10.00),
		Active: true,
	}, nil)
	recordRepo.On("Update", mock.Anything, record).Return(nil)
	spaceRepo.On("SetState", mock.Anything, "A07", model.SpaceStateAvailable).Return(int64(1), nil)

	result, err := svc.RegisterExit(context.Background(), ExitRequest{Plate: "ABC123"})

	assert.NoError(t, err)
	assert.Equal(t, "3 horas", result.Record.Stay)
	assert.Equal(t, "30.00", result.Record.Amount)
	assert.Equal(t, model.RecordStateFinished, record.State)
	assert.NotNil(t, record.ExitTime)
	spaceRepo.AssertExpectations(t)
}

func TestRegisterExitFallsBackToDefaultPrice(t *testing.T) {
	svc, vehicleRepo, spaceRepo, recordRepo, tariffRepo := newParkingFixture()

	exitTime := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return exitTime }

	vehicle := &model.Vehicle{ID: uuid.New(), Plate: "ABC123"}
	record := &model.ParkingRecord{
		VehicleID:   vehicle.ID,
		SpaceNumber: "A01",
		EntryTime:   exitTime.Add(-30 * time.Minute),
		State:       model.RecordStateActive,
	}

	vehicleRepo.On("GetByPlateForUpdate", mock.Anything, "ABC123").Return(vehicle, nil)
	recordRepo.On("GetActiveByVehicle", mock.Anything, vehicle.ID).Return(record, nil)
	tariffRepo.On("GetActiveByType", mock.Anything, model.TariffTypeHourly).Return(nil, gorm.ErrRecordNotFound)
	recordRepo.On("Update", mock.Anything, record).Return(nil)
	spaceRepo.On("SetState", mock.Anything, "A01", model.SpaceStateAvailable).Return(int64(1), nil)

	result, err := svc.RegisterExit(context.Background(), ExitRequest{Plate: "ABC123"})

	assert.NoError(t, err)
	assert.Equal(t, "5.00", result.Record.Amount)
}

func TestRegisterExitVehicleNotFound(t *testing.T) {
	svc, vehicleRepo, _, _, _ := newParkingFixture()

	vehicleRepo.On("GetByPlateForUpdate", mock.Anything, "NOPE99").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.RegisterExit(context.Background(), ExitRequest{Plate: "nope99"})
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestRegisterExitVehicleNotInside(t *testing.T) {
	svc, vehicleRepo, _, recordRepo, _ := newParkingFixture()

	vehicle := &model.Vehicle{ID: uuid.New(), Plate: "ABC123"}
	vehicleRepo.On("GetByPlateForUpdate", mock.Anything, "ABC123").Return(vehicle, nil)
	recordRepo.On("GetActiveByVehicle", mock.Anything, vehicle.ID).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.RegisterExit(context.Background(), ExitRequest{Plate: "ABC123"})
	assert.ErrorIs(t, err, ErrVehicleNotInside)
}

func TestHistoryPagination(t *testing.T) {
	svc, _, _, recordRepo, _ := newParkingFixture()

	recordRepo.On("ListHistory", mock.Anything, (*time.Time)(nil), 10, 10).Return([]model.ParkingRecord{}, int64(25), nil)

	result, err := svc.History(context.Background(), nil, 2, 10)

	assert.NoError(t, err)
	assert.Equal(t, int64(25), result.Total)
	assert.Equal(t, 2, result.Page)
	assert.Equal(t, 3, result.TotalPages)
}
