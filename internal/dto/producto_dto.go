package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// ProductoRequest is used for both create and full update (PUT).
// Stock is optional and defaults to 0.
type ProductoRequest struct {
	Nombre      string          `json:"nombre"      validate:"required,min=2,max=150"`
	Descripcion string          `json:"descripcion" validate:"max=500"`
	Categoria   string          `json:"categoria"   validate:"max=100"`
	Precio      decimal.Decimal `json:"precio"      validate:"gt=0,lte=9999999999.99,max2dec"`
	Stock       *int            `json:"stock"       validate:"omitempty,min=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductoResponse struct {
	ID          string          `json:"id"`
	ProductoID  string          `json:"producto_id"`
	Nombre      string          `json:"nombre"`
	Descripcion *string         `json:"descripcion"`
	Categoria   *string         `json:"categoria"`
	Precio      decimal.Decimal `json:"precio"`
	Stock       int             `json:"stock"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}
