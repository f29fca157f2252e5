package repository

import (
	"context"

	"parking/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TariffRepository defines data access for the append-only tariff history.
type TariffRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Tariff, error)
	// GetActiveByType returns the currently active tariff of a type,
	// preferring the most recent validity start.
	GetActiveByType(ctx context.Context, tariffType string) (*model.Tariff, error)
	ListActive(ctx context.Context) ([]model.Tariff, error)
	ListHistory(ctx context.Context) ([]model.Tariff, error)
	Create(ctx context.Context, tariff *model.Tariff) error
	Update(ctx context.Context, tariff *model.Tariff) error
}

type tariffRepository struct {
	db *gorm.DB
}

func NewTariffRepository(db *gorm.DB) TariffRepository {
	return &tariffRepository{db: db}
}

func (r *tariffRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Tariff, error) {
	var tariff model.Tariff
	if err := GetDB(ctx, r.db).First(&tariff, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &tariff, nil
}

func (r *tariffRepository) GetActiveByType(ctx context.Context, tariffType string) (*model.Tariff, error) {
	var tariff model.Tariff
	if err := GetDB(ctx, r.db).
		Where("type = ? AND active = ?", tariffType, true).
		Order("valid_from DESC").
		First(&tariff).Error; err != nil {
		return nil, err
	}
	return &tariff, nil
}

func (r *tariffRepository) ListActive(ctx context.Context) ([]model.Tariff, error) {
	var tariffs []model.Tariff
	if err := GetDB(ctx, r.db).
		Where("active = ?", true).
		Order("type ASC").
		Find(&tariffs).Error; err != nil {
		return nil, err
	}
	return tariffs, nil
}

func (r *tariffRepository) ListHistory(ctx context.Context) ([]model.Tariff, error) {
	var tariffs []model.Tariff
	if err := GetDB(ctx, r.db).
		Order("valid_from DESC").
		Find(&tariffs).Error; err != nil {
		return nil, err
	}
	return tariffs, nil
}

func (r *tariffRepository) Create(ctx context.Context, tariff *model.Tariff) error {
	return GetDB(ctx, r.db).Create(tariff).Error
}

func (r *tariffRepository) Update(ctx context.Context, tariff *model.Tariff) error {
	return GetDB(ctx, r.db).Save(tariff).Error
}
