package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// ClienteRequest is used for both create and full update (PUT).
type ClienteRequest struct {
	Nombre    string `json:"nombre"    validate:"required,min=2,max=150"`
	Email     string `json:"email"     validate:"omitempty,email"`
	Telefono  string `json:"telefono"  validate:"max=40"`
	Direccion string `json:"direccion" validate:"max=255"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ClienteResponse struct {
	ID        string  `json:"id"`
	ClienteID string  `json:"cliente_id"`
	Nombre    string  `json:"nombre"`
	Email     *string `json:"email"`
	Telefono  *string `json:"telefono"`
	Direccion *string `json:"direccion"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}
