package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Tariff type enum constants
const (
	TariffTypeQuarterHour = "fraccion_15min"
	TariffTypeHalfHour    = "media_hora"
	TariffTypeHourly      = "hora"
	TariffTypeFullDay     = "dia_completo"
)

// DefaultHourlyPrice is billed per hour when no active hourly tariff row
// exists.
var DefaultHourlyPrice = decimal.NewFromFloat(5.00)

// Tariff stores priced rate categories with an append-only history.
// Updating a price creates a new active row and deactivates the prior
// one; superseded rows are never mutated again.
type Tariff struct {
	ID         uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Type       string          `gorm:"type:varchar(30);not null;index" json:"tipo"`
	Price      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"precio"`
	ValidFrom  time.Time       `gorm:"not null;index" json:"vigenciaDesde"`
	ValidUntil *time.Time      `json:"vigenciaHasta"`
	Active     bool            `gorm:"not null;default:true;index" json:"activa"`
	CreatedAt  time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}
