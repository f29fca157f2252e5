package model

import (
	"time"

	"github.com/google/uuid"
)

// Configuration is a free-form key/value system setting, e.g. total
// spaces or opening hours.
type Configuration struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Key         string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"clave"`
	Value       string    `gorm:"type:varchar(255);not null" json:"valor"`
	Type        string    `gorm:"type:varchar(30);not null;default:texto" json:"tipo"`
	Description string    `gorm:"type:text" json:"descripcion"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// FormField field type enum constants
const (
	FieldTypeText   = "texto"
	FieldTypeSelect = "select"
	FieldTypeNumber = "numero"
	FieldTypeColor  = "color"
	FieldTypeDate   = "fecha"
)

// FormField drives dynamic rendering of the vehicle entry form. Fields
// are soft-deleted by clearing the active flag so existing records keep
// their shape.
type FormField struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"nombre"`
	Label     string    `gorm:"type:varchar(100);not null" json:"etiqueta"`
	Type      string    `gorm:"type:varchar(20);not null;default:texto" json:"tipo"`
	Required  bool      `gorm:"not null;default:false" json:"obligatorio"`
	Active    bool      `gorm:"not null;default:true" json:"activo"`
	Options   string    `gorm:"type:text" json:"valores_predefinidos"` // JSON array for select fields
	Order     int       `gorm:"not null;default:0" json:"orden"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
