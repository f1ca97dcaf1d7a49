package validation

import (
	"strings"

	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/dto"
	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ClienteData struct {
	Nombre    string
	Email     *string
	Telefono  *string
	Direccion *string
}

type ProductoData struct {
	Nombre      string
	Descripcion *string
	Categoria   *string
	Precio      decimal.Decimal
	Stock       int
}

type VentaData struct {
	ClienteID  uuid.UUID
	ProductoID uuid.UUID
	Fecha      string
	TipoPago   string
	MontoTotal decimal.Decimal
	NumCuotas  *int // nil unless TipoPago == cuotas
}

type PagoData struct {
	VentaID    uuid.UUID
	FechaPago  string
	Monto      decimal.Decimal
	MetodoPago string
	Notas      *string
}

func Cliente(req dto.ClienteRequest) (*ClienteData, error) {
	req.Nombre = strings.TrimSpace(req.Nombre)
	req.Email = strings.TrimSpace(req.Email)

	fields := map[string]string{}
	collect(fields, validate.Struct(req))
	if err := result(fields); err != nil {
		return nil, err
	}
	return &ClienteData{
		Nombre:    req.Nombre,
		Email:     optional(req.Email),
		Telefono:  optional(req.Telefono),
		Direccion: optional(req.Direccion),
	}, nil
}

func Producto(req dto.ProductoRequest) (*ProductoData, error) {
	req.Nombre = strings.TrimSpace(req.Nombre)

	fields := map[string]string{}
	collect(fields, validate.Struct(req))
	if err := result(fields); err != nil {
		return nil, err
	}
	stock := 0
	if req.Stock != nil {
		stock = *req.Stock
	}
	return &ProductoData{
		Nombre:      req.Nombre,
		Descripcion: optional(req.Descripcion),
		Categoria:   optional(req.Categoria),
		Precio:      req.Precio,
		Stock:       stock,
	}, nil
}

func Venta(req dto.VentaRequest) (*VentaData, error) {
	req.ClienteID = strings.TrimSpace(req.ClienteID)
	req.ProductoID = strings.TrimSpace(req.ProductoID)
	req.Fecha = strings.TrimSpace(req.Fecha)

	fields := map[string]string{}
	collect(fields, validate.Struct(req))

	clienteID := parseID(fields, "cliente_id", req.ClienteID)
	productoID := parseID(fields, "producto_id", req.ProductoID)

	switch req.TipoPago {
	case model.TipoPagoCuotas:
		if req.NumCuotas == nil {
			fields["num_cuotas"] = "required"
		}
	case model.TipoPagoContado:
		if req.NumCuotas != nil {
			fields["num_cuotas"] = "excluded"
		}
	}

	if err := result(fields); err != nil {
		return nil, err
	}
	return &VentaData{
		ClienteID:  clienteID,
		ProductoID: productoID,
		Fecha:      req.Fecha,
		TipoPago:   req.TipoPago,
		MontoTotal: req.MontoTotal,
		NumCuotas:  req.NumCuotas,
	}, nil
}

func Pago(req dto.PagoRequest) (*PagoData, error) {
	req.VentaID = strings.TrimSpace(req.VentaID)
	req.FechaPago = strings.TrimSpace(req.FechaPago)
	req.MetodoPago = strings.TrimSpace(req.MetodoPago)

	fields := map[string]string{}
	collect(fields, validate.Struct(req))
	ventaID := parseID(fields, "venta_id", req.VentaID)

	if err := result(fields); err != nil {
		return nil, err
	}
	return &PagoData{
		VentaID:    ventaID,
		FechaPago:  req.FechaPago,
		Monto:      req.Monto,
		MetodoPago: req.MetodoPago,
		Notas:      optional(req.Notas),
	}, nil
}

// parseID records a "uuid" error unless the field already failed "required".
func parseID(fields map[string]string, name, raw string) uuid.UUID {
	if raw == "" {
		return uuid.Nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		fields[name] = "uuid"
	}
	return id
}
