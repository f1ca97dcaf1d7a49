package model

import "github.com/google/uuid"

// Secuencia is the per-owner counter behind the human-readable codes
// (C-0001, P-0001, V-0001, PG-0001).
type Secuencia struct {
	UsuarioID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Entidad   string    `gorm:"type:varchar(20);primaryKey"`
	Valor     int64     `gorm:"not null;default:0"`
}

func (Secuencia) TableName() string { return "secuencias" }
