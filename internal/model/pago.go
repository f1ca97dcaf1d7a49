package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	MetodoContado   = "Contado"
	NotaPagoContado = "Pago al contado generado automáticamente"
)

// Pago is one monetary application against a Venta's pending balance.
type Pago struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Codigo     string          `gorm:"column:codigo;type:varchar(20);not null;index"`
	UsuarioID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	VentaID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	FechaPago  string          `gorm:"type:varchar(10);not null;index"`
	Monto      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	MetodoPago string          `gorm:"type:varchar(40);not null"`
	Notas      *string
	CreatedAt  time.Time
}

func (Pago) TableName() string { return "pagos" }
