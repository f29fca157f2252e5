package database

import (
	"fmt"
	"time"

	"parking/internal/logger"
	"parking/internal/model"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Bootstrap seeds the initial accounts, space pool, tariffs, system
// configuration and form fields. Every block is guarded by an existence
// check so repeated startups leave existing data untouched.
func Bootstrap(db *gorm.DB) error {
	if err := seedUsers(db); err != nil {
		return fmt.Errorf("seeding users: %w", err)
	}
	if err := seedSpaces(db); err != nil {
		return fmt.Errorf("seeding spaces: %w", err)
	}
	if err := seedTariffs(db); err != nil {
		return fmt.Errorf("seeding tariffs: %w", err)
	}
	if err := seedConfiguration(db); err != nil {
		return fmt.Errorf("seeding configuration: %w", err)
	}
	if err := seedFormFields(db); err != nil {
		return fmt.Errorf("seeding form fields: %w", err)
	}
	return nil
}

func seedUsers(db *gorm.DB) error {
	seed := []struct {
		name, email, password, role string
	}{
		{"Administrador Principal", "admin@parqueito.com", "admin123", model.RoleAdmin},
		{"Empleado Demo", "empleado@parqueito.com", "empleado123", model.RoleEmployee},
	}

	for _, s := range seed {
		var count int64
		if err := db.Model(&model.User{}).Where("email = ?", s.email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := model.User{
			Name:     s.name,
			Email:    s.email,
			Password: string(hash),
			Role:     s.role,
			Active:   true,
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
		logger.Get().Info("seed user created", zap.String("email", s.email), zap.String("role", s.role))
	}
	return nil
}

func seedSpaces(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Space{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	spaces := make([]model.Space, 0, 20)
	for i := 1; i <= 20; i++ {
		spaceType := model.SpaceTypeNormal
		if i == 1 {
			spaceType = model.SpaceTypeDisabled
		}
		spaces = append(spaces, model.Space{
			Number: fmt.Sprintf("A%02d", i),
			State:  model.SpaceStateAvailable,
			Type:   spaceType,
		})
	}
	if err := db.Create(&spaces).Error; err != nil {
		return err
	}
	logger.Get().Info("seed spaces created", zap.Int("count", len(spaces)))
	return nil
}

func seedTariffs(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Tariff{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	tariffs := []model.Tariff{
		{Type: model.TariffTypeQuarterHour, Price: decimal.NewFromFloat(2.00), ValidFrom: now, Active: true},
		{Type: model.TariffTypeHalfHour, Price: decimal.NewFromFloat(3.00), ValidFrom: now, Active: true},
		{Type: model.TariffTypeHourly, Price: decimal.NewFromFloat(5.00), ValidFrom: now, Active: true},
		{Type: model.TariffTypeFullDay, Price: decimal.NewFromFloat(40.00), ValidFrom: now, Active: true},
	}
	if err := db.Create(&tariffs).Error; err != nil {
		return err
	}
	logger.Get().Info("seed tariffs created", zap.Int("count", len(tariffs)))
	return nil
}

func seedConfiguration(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Configuration{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	configs := []model.Configuration{
		{Key: "espacios_totales", Value: "20", Type: "numero", Description: "Número total de espacios de parqueo"},
		{Key: "horario_apertura", Value: "06:00", Type: "hora", Description: "Hora de apertura del parqueo"},
		{Key: "horario_cierre", Value: "22:00", Type: "hora", Description: "Hora de cierre del parqueo"},
		{Key: "tolerancia_minutos", Value: "15", Type: "numero", Description: "Tolerancia en minutos para cobro"},
	}
	if err := db.Create(&configs).Error; err != nil {
		return err
	}
	logger.Get().Info("seed configuration created", zap.Int("count", len(configs)))
	return nil
}

func seedFormFields(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.FormField{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	fields := []model.FormField{
		{Name: "placa", Label: "Placa del Vehículo", Type: model.FieldTypeText, Required: true, Active: true, Order: 1},
		{Name: "marca", Label: "Marca", Type: model.FieldTypeText, Required: true, Active: true, Order: 2},
		{Name: "modelo", Label: "Modelo", Type: model.FieldTypeText, Required: false, Active: true, Order: 3},
		{Name: "color", Label: "Color", Type: model.FieldTypeText, Required: false, Active: true, Order: 4},
	}
	if err := db.Create(&fields).Error; err != nil {
		return err
	}
	logger.Get().Info("seed form fields created", zap.Int("count", len(fields)))
	return nil
}
