package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ParkingRecord state enum constants
const (
	RecordStateActive   = "activo"
	RecordStateFinished = "finalizado"
)

// ParkingRecord is a single parking session from entry to exit. It is
// created on entry, mutated once on exit and never deleted. At most one
// record per vehicle may be in state activo.
type ParkingRecord struct {
	ID          uuid.UUID        `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	VehicleID   uuid.UUID        `gorm:"type:uuid;not null;index" json:"vehiculo_id"`
	Vehicle     Vehicle          `gorm:"foreignKey:VehicleID" json:"-"`
	UserID      *uuid.UUID       `gorm:"type:uuid;index" json:"usuario_id"`
	User        *User            `gorm:"foreignKey:UserID" json:"-"`
	SpaceNumber string           `gorm:"type:varchar(10);not null" json:"espacio"`
	EntryTime   time.Time        `gorm:"not null;index" json:"horaEntrada"`
	ExitTime    *time.Time       `gorm:"index" json:"horaSalida"`
	Amount      *decimal.Decimal `gorm:"type:decimal(10,2)" json:"monto"`
	State       string           `gorm:"type:varchar(20);not null;default:activo;index" json:"estado"`
	CreatedAt   time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}
