package model

import (
	"time"

	"github.com/google/uuid"
)

// Space state enum constants
const (
	SpaceStateAvailable   = "disponible"
	SpaceStateOccupied    = "ocupado"
	SpaceStateMaintenance = "mantenimiento"
)

// Space type enum constants
const (
	SpaceTypeNormal       = "normal"
	SpaceTypeDisabled     = "discapacitado"
	SpaceTypePreferential = "preferencial"
)

// Vehicle is keyed by plate. Descriptive fields are overwritten on
// re-entry when they differ (last write wins).
type Vehicle struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Plate     string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"placa"`
	Make      string    `gorm:"type:varchar(100);not null" json:"marca"`
	Model     string    `gorm:"type:varchar(100)" json:"modelo"`
	Color     string    `gorm:"type:varchar(50)" json:"color"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Space is a physical parking slot. Exactly one space flips
// disponible→ocupado per entry and back on exit; mantenimiento is set
// manually.
type Space struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Number    string    `gorm:"type:varchar(10);uniqueIndex;not null" json:"numero"`
	State     string    `gorm:"type:varchar(20);not null;default:disponible;index" json:"estado"`
	Type      string    `gorm:"type:varchar(20);not null;default:normal" json:"tipo"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
