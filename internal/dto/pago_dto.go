package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type PagoRequest struct {
	VentaID    string          `json:"venta_id"    validate:"required"`
	FechaPago  string          `json:"fecha_pago"  validate:"required,datetime=2006-01-02"`
	Monto      decimal.Decimal `json:"monto"       validate:"gt=0,lte=9999999999.99,max2dec"`
	MetodoPago string          `json:"metodo_pago" validate:"required,max=40"`
	Notas      string          `json:"notas"       validate:"max=500"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PagoResponse struct {
	ID         string          `json:"id"`
	PagoID     string          `json:"pago_id"`
	VentaID    string          `json:"venta_id"`
	FechaPago  string          `json:"fecha_pago"`
	Monto      decimal.Decimal `json:"monto"`
	MetodoPago string          `json:"metodo_pago"`
	Notas      *string         `json:"notas"`
	CreatedAt  string          `json:"created_at"`
}
