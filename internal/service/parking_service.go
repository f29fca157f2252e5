package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"parking/internal/model"
	"parking/internal/repository"
	ws "parking/internal/websocket"
	"parking/pkg/pagination"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Business-rule sentinel errors for the vehicle lifecycle.
var (
	ErrNoSpaceAvailable = errors.New("no space available")
	ErrVehicleNotFound  = errors.New("vehicle not found")
	ErrVehicleNotInside = errors.New("vehicle not inside")
)

// VehicleInsideError rejects a second entry for a vehicle that already
// has an active session, carrying where it is parked since when.
type VehicleInsideError struct {
	Space     string
	EntryTime time.Time
}

func (e *VehicleInsideError) Error() string {
	return "vehicle already inside"
}

// DTOs
type EntryRequest struct {
	Plate string `json:"placa" binding:"required,min=3"`
	Make  string `json:"marca" binding:"required"`
	Model string `json:"modelo" binding:"required"`
	Color string `json:"color" binding:"required"`
}

type ExitRequest struct {
	Plate string `json:"placa" binding:"required"`
}

type VehicleInfo struct {
	ID    uuid.UUID `json:"id"`
	Plate string    `json:"placa"`
	Make  string    `json:"marca"`
	Model string    `json:"modelo"`
	Color string    `json:"color"`
}

type EntryResponse struct {
	Vehicle VehicleInfo `json:"vehiculo"`
	Record  struct {
		ID        uuid.UUID `json:"id"`
		Space     string    `json:"espacio"`
		EntryTime time.Time `json:"horaEntrada"`
	} `json:"registro"`
}

type ExitResponse struct {
	Vehicle struct {
		Plate string `json:"placa"`
		Make  string `json:"marca"`
		Model string `json:"modelo"`
	} `json:"vehiculo"`
	Record struct {
		Stay      string    `json:"tiempoEstancia"`
		Amount    string    `json:"monto"`
		EntryTime time.Time `json:"horaEntrada"`
		ExitTime  time.Time `json:"horaSalida"`
	} `json:"registro"`
}

type ActiveVehicle struct {
	ID           uuid.UUID   `json:"id"`
	Space        string      `json:"espacio"`
	EntryTime    time.Time   `json:"horaEntrada"`
	Vehicle      VehicleInfo `json:"vehiculo"`
	RegisteredBy interface{} `json:"registradoPor"`
}

type ActiveList struct {
	Count    int             `json:"count"`
	Vehicles []ActiveVehicle `json:"vehiculos"`
}

type HistoryItem struct {
	ID           uuid.UUID        `json:"id"`
	State        string           `json:"estado"`
	Space        string           `json:"espacio"`
	EntryTime    time.Time        `json:"horaEntrada"`
	ExitTime     *time.Time       `json:"horaSalida"`
	Amount       *decimal.Decimal `json:"monto"`
	RegisteredBy string           `json:"registradoPor"`
}

type VehicleHistory struct {
	Vehicle VehicleInfo   `json:"vehiculo"`
	History []HistoryItem `json:"historial"`
}

type HistoryRow struct {
	ID           uuid.UUID        `json:"id"`
	Plate        string           `json:"placa"`
	Vehicle      string           `json:"vehiculo"`
	Space        string           `json:"espacio"`
	State        string           `json:"estado"`
	EntryTime    time.Time        `json:"horaEntrada"`
	ExitTime     *time.Time       `json:"horaSalida"`
	Amount       *decimal.Decimal `json:"monto"`
	RegisteredBy string           `json:"registradoPor"`
}

type HistoryPage struct {
	Total      int64        `json:"total"`
	Page       int          `json:"page"`
	TotalPages int          `json:"totalPages"`
	Records    []HistoryRow `json:"registros"`
}

// ParkingService is the vehicle lifecycle: entry, exit, active listing,
// plate lookup and paginated history.
type ParkingService interface {
	RegisterEntry(ctx context.Context, operatorID *uuid.UUID, req EntryRequest) (*EntryResponse, error)
	RegisterExit(ctx context.Context, req ExitRequest) (*ExitResponse, error)
	ListActive(ctx context.Context) (*ActiveList, error)
	FindByPlate(ctx context.Context, plate string) (*VehicleHistory, error)
	History(ctx context.Context, day *time.Time, page, limit int) (*HistoryPage, error)
}

type parkingService struct {
	vehicleRepo repository.VehicleRepository
	spaceRepo   repository.SpaceRepository
	recordRepo  repository.RecordRepository
	tariffRepo  repository.TariffRepository
	txManager   repository.TransactionManager
	hub         *ws.Hub
	now         func() time.Time
}

func NewParkingService(
	vehicleRepo repository.VehicleRepository,
	spaceRepo repository.SpaceRepository,
	recordRepo repository.RecordRepository,
	tariffRepo repository.TariffRepository,
	txManager repository.TransactionManager,
	hub *ws.Hub,
) ParkingService {
	return &parkingService{
		vehicleRepo: vehicleRepo,
		spaceRepo:   spaceRepo,
		recordRepo:  recordRepo,
		tariffRepo:  tariffRepo,
		txManager:   txManager,
		hub:         hub,
		now:         time.Now,
	}
}

// RegisterEntry admits a vehicle and assigns it a space. The whole
// operation runs in one transaction: the chosen space row is locked
// until commit and the vehicle row is locked before the already-inside
// check, so two concurrent entries can neither claim the same space nor
// admit the same plate twice.
func (s *parkingService) RegisterEntry(ctx context.Context, operatorID *uuid.UUID, req EntryRequest) (*EntryResponse, error) {
	plate := strings.ToUpper(strings.TrimSpace(req.Plate))

	var vehicle *model.Vehicle
	var record model.ParkingRecord

	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		space, err := s.spaceRepo.ClaimAvailable(txCtx)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoSpaceAvailable
			}
			return fmt.Errorf("failed to claim space: %w", err)
		}

		vehicle, err = s.upsertVehicle(txCtx, plate, req)
		if err != nil {
			return err
		}

		active, err := s.recordRepo.GetActiveByVehicle(txCtx, vehicle.ID)
		if err == nil {
			return &VehicleInsideError{Space: active.SpaceNumber, EntryTime: active.EntryTime}
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check active record: %w", err)
		}

		record = model.ParkingRecord{
			VehicleID:   vehicle.ID,
			UserID:      operatorID,
			SpaceNumber: space.Number,
			EntryTime:   s.now(),
			State:       model.RecordStateActive,
		}
		if err := s.recordRepo.Create(txCtx, &record); err != nil {
			return fmt.Errorf("failed to create record: %w", err)
		}

		if _, err := s.spaceRepo.SetState(txCtx, space.Number, model.SpaceStateOccupied); err != nil {
			return fmt.Errorf("failed to occupy space: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	res := &EntryResponse{Vehicle: toVehicleInfo(vehicle)}
	res.Record.ID = record.ID
	res.Record.Space = record.SpaceNumber
	res.Record.EntryTime = record.EntryTime

	if s.hub != nil {
		s.hub.Publish(ws.EventEntry, map[string]interface{}{
			"placa":       vehicle.Plate,
			"espacio":     record.SpaceNumber,
			"horaEntrada": record.EntryTime,
		})
	}
	return res, nil
}

// upsertVehicle finds or creates the vehicle by plate; descriptive
// fields are last-write-wins on mismatch.
func (s *parkingService) upsertVehicle(ctx context.Context, plate string, req EntryRequest) (*model.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByPlateForUpdate(ctx, plate)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to look up vehicle: %w", err)
		}
		vehicle = &model.Vehicle{
			Plate: plate,
			Make:  req.Make,
			Model: req.Model,
			Color: req.Color,
		}
		if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
			return nil, fmt.Errorf("failed to create vehicle: %w", err)
		}
		return vehicle, nil
	}

	if vehicle.Make != req.Make || vehicle.Model != req.Model || vehicle.Color != req.Color {
		vehicle.Make = req.Make
		vehicle.Model = req.Model
		vehicle.Color = req.Color
		if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
			return nil, fmt.Errorf("failed to update vehicle: %w", err)
		}
	}
	return vehicle, nil
}

// RegisterExit finalizes the active session and releases the space in
// one transaction, so a finished record can never leave its space stuck
// occupied.
func (s *parkingService) RegisterExit(ctx context.Context, req ExitRequest) (*ExitResponse, error) {
	plate := strings.ToUpper(strings.TrimSpace(req.Plate))

	var vehicle *model.Vehicle
	var record *model.ParkingRecord
	var hours int64
	var amount decimal.Decimal

	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		vehicle, err = s.vehicleRepo.GetByPlateForUpdate(txCtx, plate)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrVehicleNotFound
			}
			return fmt.Errorf("failed to look up vehicle: %w", err)
		}

		record, err = s.recordRepo.GetActiveByVehicle(txCtx, vehicle.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrVehicleNotInside
			}
			return fmt.Errorf("failed to look up active record: %w", err)
		}

		exitTime := s.now()
		hours = BillableHours(record.EntryTime, exitTime)

		price := model.DefaultHourlyPrice
		tariff, err := s.tariffRepo.GetActiveByType(txCtx, model.TariffTypeHourly)
		if err == nil {
			price = tariff.Price
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to look up tariff: %w", err)
		}
		amount = BillAmount(hours, price)

		record.ExitTime = &exitTime
		record.Amount = &amount
		record.State = model.RecordStateFinished
		if err := s.recordRepo.Update(txCtx, record); err != nil {
			return fmt.Errorf("failed to finalize record: %w", err)
		}

		if _, err := s.spaceRepo.SetState(txCtx, record.SpaceNumber, model.SpaceStateAvailable); err != nil {
			return fmt.Errorf("failed to release space: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	res := &ExitResponse{}
	res.Vehicle.Plate = vehicle.Plate
	res.Vehicle.Make = vehicle.Make
	res.Vehicle.Model = vehicle.Model
	res.Record.Stay = fmt.Sprintf("%d horas", hours)
	res.Record.Amount = amount.StringFixed(2)
	res.Record.EntryTime = record.EntryTime
	res.Record.ExitTime = *record.ExitTime

	if s.hub != nil {
		s.hub.Publish(ws.EventExit, map[string]interface{}{
			"placa":   vehicle.Plate,
			"espacio": record.SpaceNumber,
			"monto":   amount.StringFixed(2),
		})
	}
	return res, nil
}

func (s *parkingService) ListActive(ctx context.Context) (*ActiveList, error) {
	records, err := s.recordRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active records: %w", err)
	}

	list := &ActiveList{
		Count:    len(records),
		Vehicles: make([]ActiveVehicle, 0, len(records)),
	}
	for _, record := range records {
		item := ActiveVehicle{
			ID:        record.ID,
			Space:     record.SpaceNumber,
			EntryTime: record.EntryTime,
			Vehicle:   toVehicleInfo(&record.Vehicle),
		}
		if record.User != nil {
			item.RegisteredBy = map[string]interface{}{
				"id":     record.User.ID,
				"nombre": record.User.Name,
				"email":  record.User.Email,
			}
		}
		list.Vehicles = append(list.Vehicles, item)
	}
	return list, nil
}

func (s *parkingService) FindByPlate(ctx context.Context, plate string) (*VehicleHistory, error) {
	plate = strings.ToUpper(strings.TrimSpace(plate))

	vehicle, err := s.vehicleRepo.GetByPlate(ctx, plate)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, fmt.Errorf("failed to look up vehicle: %w", err)
	}

	records, err := s.recordRepo.ListByVehicle(ctx, vehicle.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	history := &VehicleHistory{
		Vehicle: toVehicleInfo(vehicle),
		History: make([]HistoryItem, 0, len(records)),
	}
	for _, record := range records {
		item := HistoryItem{
			ID:        record.ID,
			State:     record.State,
			Space:     record.SpaceNumber,
			EntryTime: record.EntryTime,
			ExitTime:  record.ExitTime,
			Amount:    record.Amount,
		}
		if record.User != nil {
			item.RegisteredBy = record.User.Name
		}
		history.History = append(history.History, item)
	}
	return history, nil
}

func (s *parkingService) History(ctx context.Context, day *time.Time, page, limit int) (*HistoryPage, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	records, total, err := s.recordRepo.ListHistory(ctx, day, (page-1)*limit, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	result := &HistoryPage{
		Total:      total,
		Page:       page,
		TotalPages: pagination.TotalPages(total, limit),
		Records:    make([]HistoryRow, 0, len(records)),
	}
	for _, record := range records {
		row := HistoryRow{
			ID:        record.ID,
			Plate:     record.Vehicle.Plate,
			Vehicle:   fmt.Sprintf("%s %s (%s)", record.Vehicle.Make, record.Vehicle.Model, record.Vehicle.Color),
			Space:     record.SpaceNumber,
			State:     record.State,
			EntryTime: record.EntryTime,
			ExitTime:  record.ExitTime,
			Amount:    record.Amount,
		}
		if record.User != nil {
			row.RegisteredBy = record.User.Name
		}
		result.Records = append(result.Records, row)
	}
	return result, nil
}

func toVehicleInfo(vehicle *model.Vehicle) VehicleInfo {
	return VehicleInfo{
		ID:    vehicle.ID,
		Plate: vehicle.Plate,
		Make:  vehicle.Make,
		Model: vehicle.Model,
		Color: vehicle.Color,
	}
}
