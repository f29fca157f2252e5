package repository

import (
	"context"

	"parking/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ConfigurationRepository defines data access for system settings.
type ConfigurationRepository interface {
	List(ctx context.Context) ([]model.Configuration, error)
	UpdateValue(ctx context.Context, key, value string) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type configurationRepository struct {
	db *gorm.DB
}

func NewConfigurationRepository(db *gorm.DB) ConfigurationRepository {
	return &configurationRepository{db: db}
}

func (r *configurationRepository) List(ctx context.Context) ([]model.Configuration, error) {
	var configs []model.Configuration
	if err := GetDB(ctx, r.db).Find(&configs).Error; err != nil {
		return nil, err
	}
	return configs, nil
}

// UpdateValue returns the number of affected rows so callers can map a
// missing key to a not-found error.
func (r *configurationRepository) UpdateValue(ctx context.Context, key, value string) (int64, error) {
	result := GetDB(ctx, r.db).
		Model(&model.Configuration{}).
		Where("key = ?", key).
		Update("value", value)
	return result.RowsAffected, result.Error
}

func (r *configurationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&model.Configuration{}).Count(&count).Error
	return count, err
}

// FormFieldRepository defines data access for dynamic form fields.
type FormFieldRepository interface {
	ListActive(ctx context.Context) ([]model.FormField, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.FormField, error)
	GetByName(ctx context.Context, name string) (*model.FormField, error)
	Create(ctx context.Context, field *model.FormField) error
	Update(ctx context.Context, field *model.FormField) error
}

type formFieldRepository struct {
	db *gorm.DB
}

func NewFormFieldRepository(db *gorm.DB) FormFieldRepository {
	return &formFieldRepository{db: db}
}

func (r *formFieldRepository) ListActive(ctx context.Context) ([]model.FormField, error) {
	var fields []model.FormField
	if err := GetDB(ctx, r.db).
		Where("active = ?", true).
		Order(`"order" ASC`).
		Find(&fields).Error; err != nil {
		return nil, err
	}
	return fields, nil
}

func (r *formFieldRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.FormField, error) {
	var field model.FormField
	if err := GetDB(ctx, r.db).First(&field, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &field, nil
}

func (r *formFieldRepository) GetByName(ctx context.Context, name string) (*model.FormField, error) {
	var field model.FormField
	if err := GetDB(ctx, r.db).First(&field, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &field, nil
}

func (r *formFieldRepository) Create(ctx context.Context, field *model.FormField) error {
	return GetDB(ctx, r.db).Create(field).Error
}

func (r *formFieldRepository) Update(ctx context.Context, field *model.FormField) error {
	return GetDB(ctx, r.db).Save(field).Error
}
