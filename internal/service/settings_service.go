package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"parking/internal/model"
	"parking/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrConfigNotFound    = errors.New("configuración no encontrada")
	ErrFieldNotFound     = errors.New("campo no encontrado")
	ErrFieldNameTaken    = errors.New("ya existe un campo con ese nombre")
	ErrTariffNotFound    = errors.New("tarifa no encontrada")
	ErrInvalidSpaceState = errors.New("estado de espacio no válido")
	ErrSpaceNotFound     = errors.New("espacio no encontrado")
)

// FieldRequest carries the payload for creating or updating a dynamic
// form field.
type FieldRequest struct {
	Name     string `json:"nombre" binding:"required"`
	Label    string `json:"etiqueta" binding:"required"`
	Type     string `json:"tipo" binding:"required,oneof=texto numero select fecha color"`
	Required bool   `json:"obligatorio"`
	Options  string `json:"valoresPredefinidos"`
	Order    int    `json:"orden"`
}

// TariffRequest carries the new price when superseding a tariff.
type TariffRequest struct {
	Price float64 `json:"precio" binding:"required,gt=0"`
}

// SpaceStateRequest changes the state of a single space.
type SpaceStateRequest struct {
	State string `json:"estado" binding:"required,oneof=disponible ocupado mantenimiento"`
}

// SettingsService manages system configuration, dynamic form fields,
// tariffs and the space pool.
type SettingsService interface {
	SystemConfig(ctx context.Context) (map[string]string, error)
	UpdateConfig(ctx context.Context, key, value string) error
	UpdateTotalSpaces(ctx context.Context, count int) error

	ListFields(ctx context.Context) ([]model.FormField, error)
	CreateField(ctx context.Context, req FieldRequest) (*model.FormField, error)
	UpdateField(ctx context.Context, id uuid.UUID, req FieldRequest) (*model.FormField, error)
	DeactivateField(ctx context.Context, id uuid.UUID) error

	ListTariffs(ctx context.Context) ([]model.Tariff, error)
	TariffHistory(ctx context.Context) ([]model.Tariff, error)
	ReplaceTariff(ctx context.Context, id uuid.UUID, price float64) (*model.Tariff, error)

	ListSpaces(ctx context.Context) ([]model.Space, error)
	UpdateSpaceState(ctx context.Context, number, state string) error
}

type settingsService struct {
	configRepo repository.ConfigurationRepository
	fieldRepo  repository.FormFieldRepository
	tariffRepo repository.TariffRepository
	spaceRepo  repository.SpaceRepository
	txManager  repository.TransactionManager
	now        func() time.Time
}

func NewSettingsService(
	configRepo repository.ConfigurationRepository,
	fieldRepo repository.FormFieldRepository,
	tariffRepo repository.TariffRepository,
	spaceRepo repository.SpaceRepository,
	txManager repository.TransactionManager,
) SettingsService {
	return &settingsService{
		configRepo: configRepo,
		fieldRepo:  fieldRepo,
		tariffRepo: tariffRepo,
		spaceRepo:  spaceRepo,
		txManager:  txManager,
		now:        time.Now,
	}
}

func (s *settingsService) SystemConfig(ctx context.Context) (map[string]string, error) {
	configs, err := s.configRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list configuration: %w", err)
	}

	byKey := make(map[string]string, len(configs))
	for _, config := range configs {
		byKey[config.Key] = config.Value
	}
	return byKey, nil
}

func (s *settingsService) UpdateConfig(ctx context.Context, key, value string) error {
	affected, err := s.configRepo.UpdateValue(ctx, key, value)
	if err != nil {
		return fmt.Errorf("failed to update configuration: %w", err)
	}
	if affected == 0 {
		return ErrConfigNotFound
	}
	return nil
}

// UpdateTotalSpaces rewrites the espacios_totales configuration value.
// The space rows themselves are managed by the startup seed.
func (s *settingsService) UpdateTotalSpaces(ctx context.Context, count int) error {
	affected, err := s.configRepo.UpdateValue(ctx, "espacios_totales", strconv.Itoa(count))
	if err != nil {
		return fmt.Errorf("failed to update total spaces: %w", err)
	}
	if affected == 0 {
		return ErrConfigNotFound
	}
	return nil
}

func (s *settingsService) ListFields(ctx context.Context) ([]model.FormField, error) {
	return s.fieldRepo.ListActive(ctx)
}

func (s *settingsService) CreateField(ctx context.Context, req FieldRequest) (*model.FormField, error) {
	existing, err := s.fieldRepo.GetByName(ctx, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrFieldNameTaken
	}

	field := &model.FormField{
		Name:     req.Name,
		Label:    req.Label,
		Type:     req.Type,
		Required: req.Required,
		Options:  req.Options,
		Order:    req.Order,
		Active:   true,
	}
	if err := s.fieldRepo.Create(ctx, field); err != nil {
		return nil, fmt.Errorf("failed to create form field: %w", err)
	}
	return field, nil
}

func (s *settingsService) UpdateField(ctx context.Context, id uuid.UUID, req FieldRequest) (*model.FormField, error) {
	field, err := s.fieldRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFieldNotFound
		}
		return nil, err
	}

	if req.Name != field.Name {
		existing, err := s.fieldRepo.GetByName(ctx, req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, ErrFieldNameTaken
		}
	}

	field.Name = req.Name
	field.Label = req.Label
	field.Type = req.Type
	field.Required = req.Required
	field.Options = req.Options
	field.Order = req.Order
	if err := s.fieldRepo.Update(ctx, field); err != nil {
		return nil, fmt.Errorf("failed to update form field: %w", err)
	}
	return field, nil
}

// DeactivateField soft-deletes a field so historic records keep their
// captured values.
func (s *settingsService) DeactivateField(ctx context.Context, id uuid.UUID) error {
	field, err := s.fieldRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFieldNotFound
		}
		return err
	}

	field.Active = false
	if err := s.fieldRepo.Update(ctx, field); err != nil {
		return fmt.Errorf("failed to deactivate form field: %w", err)
	}
	return nil
}

func (s *settingsService) ListTariffs(ctx context.Context) ([]model.Tariff, error) {
	return s.tariffRepo.ListActive(ctx)
}

func (s *settingsService) TariffHistory(ctx context.Context) ([]model.Tariff, error) {
	return s.tariffRepo.ListHistory(ctx)
}

// ReplaceTariff closes the tariff identified by id and inserts a new
// active row of the same type, keeping the full price history.
func (s *settingsService) ReplaceTariff(ctx context.Context, id uuid.UUID, price float64) (*model.Tariff, error) {
	now := s.now()
	var tariff *model.Tariff

	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.tariffRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTariffNotFound
			}
			return err
		}

		tariff = &model.Tariff{
			Type:      current.Type,
			Price:     decimal.NewFromFloat(price),
			ValidFrom: now,
			Active:    true,
		}
		if current.Active {
			current.Active = false
			until := now
			current.ValidUntil = &until
			if err := s.tariffRepo.Update(txCtx, current); err != nil {
				return fmt.Errorf("failed to close current tariff: %w", err)
			}
		}
		if err := s.tariffRepo.Create(txCtx, tariff); err != nil {
			return fmt.Errorf("failed to create tariff: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tariff, nil
}

func (s *settingsService) ListSpaces(ctx context.Context) ([]model.Space, error) {
	return s.spaceRepo.List(ctx)
}

func (s *settingsService) UpdateSpaceState(ctx context.Context, number, state string) error {
	switch state {
	case model.SpaceStateAvailable, model.SpaceStateOccupied, model.SpaceStateMaintenance:
	default:
		return ErrInvalidSpaceState
	}

	affected, err := s.spaceRepo.SetState(ctx, number, state)
	if err != nil {
		return fmt.Errorf("failed to update space state: %w", err)
	}
	if affected == 0 {
		return ErrSpaceNotFound
	}
	return nil
}
