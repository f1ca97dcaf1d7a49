package dto

import "github.com/shopspring/decimal"

// ─── Filter / List ──────────────────────────────────────────────────────────

// VentaFilter is bound from the query string of GET /v1/ventas.
type VentaFilter struct {
	Estado string `form:"estado" validate:"omitempty,oneof=PAGADO PENDIENTE"` // empty = all
	Desde  string `form:"desde"  validate:"omitempty,datetime=2006-01-02"`    // inclusive
	Hasta  string `form:"hasta"  validate:"omitempty,datetime=2006-01-02"`    // inclusive
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

// VentaRequest is used for both create and update. NumCuotas is required
// when TipoPago is "cuotas" and must be absent otherwise; that cross-field
// rule lives in validation.Venta.
type VentaRequest struct {
	ClienteID  string          `json:"cliente_id"  validate:"required"`
	ProductoID string          `json:"producto_id" validate:"required"`
	Fecha      string          `json:"fecha"       validate:"required,datetime=2006-01-02"`
	TipoPago   string          `json:"tipo_pago"   validate:"required,oneof=contado cuotas"`
	MontoTotal decimal.Decimal `json:"monto_total" validate:"gt=0,lte=9999999999.99,max2dec"`
	NumCuotas  *int            `json:"num_cuotas"  validate:"omitempty,min=2"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type VentaResponse struct {
	ID             string           `json:"id"`
	VentaID        string           `json:"venta_id"`
	ClienteID      string           `json:"cliente_id"`
	ClienteNombre  string           `json:"cliente_nombre"`
	ProductoID     string           `json:"producto_id"`
	ProductoNombre string           `json:"producto_nombre"`
	Fecha          string           `json:"fecha"`
	TipoPago       string           `json:"tipo_pago"`
	MontoTotal     decimal.Decimal  `json:"monto_total"`
	NumCuotas      *int             `json:"num_cuotas"`
	MontoCuota     *decimal.Decimal `json:"monto_cuota"`
	MontoPagado    decimal.Decimal  `json:"monto_pagado"`
	SaldoPendiente decimal.Decimal  `json:"saldo_pendiente"`
	Estado         string           `json:"estado"`
	CreatedAt      string           `json:"created_at"`
	UpdatedAt      string           `json:"updated_at"`
}
