package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Producto is an item or service the owner sells.
// Stock is informational: sales never decrement it.
type Producto struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Codigo      string    `gorm:"column:codigo;type:varchar(20);not null;index"`
	UsuarioID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Nombre      string    `gorm:"index;not null"`
	Descripcion *string
	// Categoria drives the dashboard grouping; nil is reported as "Sin categoría".
	Categoria *string
	Precio    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Stock     int             `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Producto) TableName() string { return "productos" }
