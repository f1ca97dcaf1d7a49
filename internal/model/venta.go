package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	TipoPagoContado = "contado"
	TipoPagoCuotas  = "cuotas"

	EstadoPagado    = "PAGADO"
	EstadoPendiente = "PENDIENTE"
)

// Venta links one Cliente to one Producto for a total amount.
// Invariant: MontoPagado + SaldoPendiente == MontoTotal, and
// Estado == PAGADO iff SaldoPendiente <= 0. Only the ledger code in
// service/pago_service.go and service/venta_service.go writes the balance columns.
type Venta struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Codigo    string    `gorm:"column:codigo;type:varchar(20);not null;index"`
	UsuarioID uuid.UUID `gorm:"type:uuid;not null;index"`

	ClienteID      uuid.UUID `gorm:"type:uuid;not null;index"`
	ClienteNombre  string    `gorm:"not null"` // snapshot at create / edit
	ProductoID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductoNombre string    `gorm:"not null"`

	Fecha          string           `gorm:"type:varchar(10);not null;index"` // YYYY-MM-DD
	TipoPago       string           `gorm:"type:varchar(10);not null"`
	MontoTotal     decimal.Decimal  `gorm:"type:decimal(12,2);not null"`
	NumCuotas      *int             `gorm:"column:num_cuotas"`
	MontoCuota     *decimal.Decimal `gorm:"type:decimal(12,2)"`
	MontoPagado    decimal.Decimal  `gorm:"type:decimal(12,2);not null;default:0"`
	SaldoPendiente decimal.Decimal  `gorm:"type:decimal(12,2);not null;default:0"`
	Estado         string           `gorm:"type:varchar(10);not null;default:'PENDIENTE'"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// belongs-to: the FK columns live on ventas.
	Cliente  *Cliente  `gorm:"foreignKey:ClienteID;references:ID;constraint:OnDelete:RESTRICT"`
	Producto *Producto `gorm:"foreignKey:ProductoID;references:ID;constraint:OnDelete:RESTRICT"`
	Pagos    []Pago    `gorm:"foreignKey:VentaID;constraint:OnDelete:CASCADE"`
}

func (Venta) TableName() string { return "ventas" }
