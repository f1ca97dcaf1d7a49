// Package analytics computes the dashboard figures from a set of sales.
// It is pure: callers load the rows (owner-scoped) and pass them in.
package analytics

import (
	"sort"

	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/dto"
	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/model"

	"github.com/shopspring/decimal"
)

// SinCategoria is the bucket for products with no category.
const SinCategoria = "Sin categoría"

// MaxUltimasVentas caps the "recent sales" list.
const MaxUltimasVentas = 5

// VentaCategorizada is a Venta annotated with its Producto's category.
type VentaCategorizada struct {
	VentaID        string
	ClienteNombre  string
	Fecha          string // YYYY-MM-DD
	Estado         string
	MontoTotal     decimal.Decimal
	SaldoPendiente decimal.Decimal
	Categoria      *string
}

// NombreCategoria returns the category label, falling back to SinCategoria.
func (v VentaCategorizada) NombreCategoria() string {
	if v.Categoria == nil || *v.Categoria == "" {
		return SinCategoria
	}
	return *v.Categoria
}

// DesdeVenta builds a VentaCategorizada from a Venta with its Producto preloaded.
func DesdeVenta(v model.Venta) VentaCategorizada {
	var cat *string
	if v.Producto != nil {
		cat = v.Producto.Categoria
	}
	return VentaCategorizada{
		VentaID:        v.Codigo,
		ClienteNombre:  v.ClienteNombre,
		Fecha:          v.Fecha,
		Estado:         v.Estado,
		MontoTotal:     v.MontoTotal,
		SaldoPendiente: v.SaldoPendiente,
		Categoria:      cat,
	}
}

// Rango is an inclusive date window. Empty bounds are open.
type Rango struct {
	Desde string
	Hasta string
}

// Incluye reports whether fecha lies within r. ISO dates compare lexicographically.
func (r Rango) Incluye(fecha string) bool {
	if r.Desde != "" && fecha < r.Desde {
		return false
	}
	if r.Hasta != "" && fecha > r.Hasta {
		return false
	}
	return true
}

// Filtrar keeps the sales inside r, preserving order.
func Filtrar(ventas []VentaCategorizada, r Rango) []VentaCategorizada {
	if r.Desde == "" && r.Hasta == "" {
		return ventas
	}
	out := make([]VentaCategorizada, 0, len(ventas))
	for _, v := range ventas {
		if r.Incluye(v.Fecha) {
			out = append(out, v)
		}
	}
	return out
}

// Resumir computes KPIs, recent sales, per-category totals and the per-sale
// period projection over the sales inside r.
func Resumir(ventas []VentaCategorizada, r Rango) dto.DashboardResponse {
	filtradas := Filtrar(ventas, r)

	res := dto.DashboardResponse{
		KPIs: dto.DashboardKPIs{
			MontoTotal:     decimal.Zero,
			SaldoPendiente: decimal.Zero,
		},
		UltimasVentas:      make([]dto.UltimaVenta, 0, MaxUltimasVentas),
		VentasPorCategoria: make([]dto.VentaPorCategoria, 0),
		VentasPorPeriodo:   make([]dto.VentaPorPeriodo, 0, len(filtradas)),
	}

	// Categories are reported in order of first appearance.
	idx := make(map[string]int)
	for _, v := range filtradas {
		res.KPIs.TotalVentas++
		res.KPIs.MontoTotal = res.KPIs.MontoTotal.Add(v.MontoTotal)
		res.KPIs.SaldoPendiente = res.KPIs.SaldoPendiente.Add(v.SaldoPendiente)
		if v.Estado == model.EstadoPagado {
			res.KPIs.VentasPagadas++
		}

		cat := v.NombreCategoria()
		i, ok := idx[cat]
		if !ok {
			i = len(res.VentasPorCategoria)
			idx[cat] = i
			res.VentasPorCategoria = append(res.VentasPorCategoria, dto.VentaPorCategoria{
				Categoria:  cat,
				MontoTotal: decimal.Zero,
			})
		}
		res.VentasPorCategoria[i].MontoTotal = res.VentasPorCategoria[i].MontoTotal.Add(v.MontoTotal)
		res.VentasPorCategoria[i].Cantidad++

		res.VentasPorPeriodo = append(res.VentasPorPeriodo, dto.VentaPorPeriodo{
			Fecha:     v.Fecha,
			Categoria: cat,
			Monto:     v.MontoTotal,
		})
	}

	res.UltimasVentas = append(res.UltimasVentas, ultimas(filtradas)...)
	return res
}

// ultimas returns the MaxUltimasVentas most recent sales by fecha. Ties keep
// input order.
func ultimas(ventas []VentaCategorizada) []dto.UltimaVenta {
	ordenadas := make([]VentaCategorizada, len(ventas))
	copy(ordenadas, ventas)
	sort.SliceStable(ordenadas, func(i, j int) bool {
		return ordenadas[i].Fecha > ordenadas[j].Fecha
	})
	if len(ordenadas) > MaxUltimasVentas {
		ordenadas = ordenadas[:MaxUltimasVentas]
	}
	out := make([]dto.UltimaVenta, 0, len(ordenadas))
	for _, v := range ordenadas {
		out = append(out, dto.UltimaVenta{
			VentaID:       v.VentaID,
			ClienteNombre: v.ClienteNombre,
			MontoTotal:    v.MontoTotal,
			Fecha:         v.Fecha,
			Estado:        v.Estado,
		})
	}
	return out
}
