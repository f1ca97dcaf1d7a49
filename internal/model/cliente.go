package model

import (
	"time"

	"github.com/google/uuid"
)

// Cliente is a customer of the owner's business.
type Cliente struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Codigo    string    `gorm:"column:codigo;type:varchar(20);not null;index"` // C-0007
	UsuarioID uuid.UUID `gorm:"type:uuid;not null;index"`
	Nombre    string    `gorm:"not null"`
	Email     *string
	Telefono  *string
	Direccion *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Cliente) TableName() string { return "clientes" }
