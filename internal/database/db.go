package database

import (
	"parking/internal/logger"
	"parking/internal/model"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewConnection initializes a new connection pool using GORM
func NewConnection(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Auto-migrate core models
	err = db.AutoMigrate(
		&model.User{},
		&model.Vehicle{},
		&model.Space{},
		&model.ParkingRecord{},
		&model.Tariff{},
		&model.Configuration{},
		&model.FormField{},
	)
	if err != nil {
		logger.Get().Warn("failed to auto-migrate models", zap.Error(err))
	}

	return db, nil
}
