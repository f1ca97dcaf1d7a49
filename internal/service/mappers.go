package service

import (
	"time"

	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/dto"
	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/model"
)

func formatTime(t time.Time) string { return t.UTC().Format(time.RFC3339) }

func clienteToResponse(c *model.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:        c.ID.String(),
		ClienteID: c.Codigo,
		Nombre:    c.Nombre,
		Email:     c.Email,
		Telefono:  c.Telefono,
		Direccion: c.Direccion,
		CreatedAt: formatTime(c.CreatedAt),
		UpdatedAt: formatTime(c.UpdatedAt),
	}
}

func productoToResponse(p *model.Producto) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		ID:          p.ID.String(),
		ProductoID:  p.Codigo,
		Nombre:      p.Nombre,
		Descripcion: p.Descripcion,
		Categoria:   p.Categoria,
		Precio:      p.Precio,
		Stock:       p.Stock,
		CreatedAt:   formatTime(p.CreatedAt),
		UpdatedAt:   formatTime(p.UpdatedAt),
	}
}

func ventaToResponse(v *model.Venta) *dto.VentaResponse {
	return &dto.VentaResponse{
		ID:             v.ID.String(),
		VentaID:        v.Codigo,
		ClienteID:      v.ClienteID.String(),
		ClienteNombre:  v.ClienteNombre,
		ProductoID:     v.ProductoID.String(),
		ProductoNombre: v.ProductoNombre,
		Fecha:          v.Fecha,
		TipoPago:       v.TipoPago,
		MontoTotal:     v.MontoTotal,
		NumCuotas:      v.NumCuotas,
		MontoCuota:     v.MontoCuota,
		MontoPagado:    v.MontoPagado,
		SaldoPendiente: v.SaldoPendiente,
		Estado:         v.Estado,
		CreatedAt:      formatTime(v.CreatedAt),
		UpdatedAt:      formatTime(v.UpdatedAt),
	}
}

func pagoToResponse(p *model.Pago) *dto.PagoResponse {
	return &dto.PagoResponse{
		ID:         p.ID.String(),
		PagoID:     p.Codigo,
		VentaID:    p.VentaID.String(),
		FechaPago:  p.FechaPago,
		Monto:      p.Monto,
		MetodoPago: p.MetodoPago,
		Notas:      p.Notas,
		CreatedAt:  formatTime(p.CreatedAt),
	}
}

func ventasToResponse(ventas []model.Venta) []dto.VentaResponse {
	out := make([]dto.VentaResponse, 0, len(ventas))
	for i := range ventas {
		out = append(out, *ventaToResponse(&ventas[i]))
	}
	return out
}

func pagosToResponse(pagos []model.Pago) []dto.PagoResponse {
	out := make([]dto.PagoResponse, 0, len(pagos))
	for i := range pagos {
		out = append(out, *pagoToResponse(&pagos[i]))
	}
	return out
}
