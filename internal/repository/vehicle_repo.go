package repository

import (
	"context"

	"parking/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// VehicleRepository defines data access for Vehicle entities.
type VehicleRepository interface {
	GetByPlate(ctx context.Context, plate string) (*model.Vehicle, error)
	// GetByPlateForUpdate locks the vehicle row for the duration of the
	// surrounding transaction, serializing concurrent entries for the
	// same plate.
	GetByPlateForUpdate(ctx context.Context, plate string) (*model.Vehicle, error)
	Create(ctx context.Context, vehicle *model.Vehicle) error
	Update(ctx context.Context, vehicle *model.Vehicle) error
	SearchByPlate(ctx context.Context, query string, limit int) ([]model.Vehicle, error)
}

type vehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) VehicleRepository {
	return &vehicleRepository{db: db}
}

func (r *vehicleRepository) GetByPlate(ctx context.Context, plate string) (*model.Vehicle, error) {
	var vehicle model.Vehicle
	if err := GetDB(ctx, r.db).First(&vehicle, "plate = ?", plate).Error; err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *vehicleRepository) GetByPlateForUpdate(ctx context.Context, plate string) (*model.Vehicle, error) {
	var vehicle model.Vehicle
	if err := GetDB(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&vehicle, "plate = ?", plate).Error; err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *vehicleRepository) Create(ctx context.Context, vehicle *model.Vehicle) error {
	return GetDB(ctx, r.db).Create(vehicle).Error
}

func (r *vehicleRepository) Update(ctx context.Context, vehicle *model.Vehicle) error {
	return GetDB(ctx, r.db).Save(vehicle).Error
}

func (r *vehicleRepository) SearchByPlate(ctx context.Context, query string, limit int) ([]model.Vehicle, error) {
	var vehicles []model.Vehicle
	if err := GetDB(ctx, r.db).
		Where("plate ILIKE ?", "%"+query+"%").
		Limit(limit).
		Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}
