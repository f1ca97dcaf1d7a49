package analytics

import (
	"testing"

	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/dto"
	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func venta(id, fecha, monto, saldo string, cat *string) VentaCategorizada {
	estado := model.EstadoPendiente
	if decimal.RequireFromString(saldo).IsZero() {
		estado = model.EstadoPagado
	}
	return VentaCategorizada{
		VentaID:        id,
		ClienteNombre:  "Cliente " + id,
		Fecha:          fecha,
		Estado:         estado,
		MontoTotal:     decimal.RequireFromString(monto),
		SaldoPendiente: decimal.RequireFromString(saldo),
		Categoria:      cat,
	}
}

// ── Resumir ───────────────────────────────────────────────────────────────────

func TestResumir_DosVentasDosCategorias(t *testing.T) {
	ventas := []VentaCategorizada{
		venta("V-0001", "2024-01-01", "100", "0", strPtr("A")),
		venta("V-0002", "2024-01-02", "50", "0", strPtr("B")),
	}

	res := Resumir(ventas, Rango{})

	assert.Equal(t, 2, res.KPIs.TotalVentas)
	assert.Equal(t, "150", res.KPIs.MontoTotal.String())
	assert.Equal(t, 2, res.KPIs.VentasPagadas)
	assert.True(t, res.KPIs.SaldoPendiente.IsZero())

	require.Len(t, res.VentasPorCategoria, 2)
	assert.Equal(t, "A", res.VentasPorCategoria[0].Categoria)
	assert.Equal(t, "100", res.VentasPorCategoria[0].MontoTotal.String())
	assert.Equal(t, 1, res.VentasPorCategoria[0].Cantidad)
	assert.Equal(t, "B", res.VentasPorCategoria[1].Categoria)
	assert.Equal(t, "50", res.VentasPorCategoria[1].MontoTotal.String())
	assert.Equal(t, 1, res.VentasPorCategoria[1].Cantidad)
}

func TestResumir_CategoriasEnOrdenDeAparicion(t *testing.T) {
	ventas := []VentaCategorizada{
		venta("V-0003", "2024-03-01", "10", "0", strPtr("Zeta")),
		venta("V-0002", "2024-02-01", "20", "20", nil),
		venta("V-0001", "2024-01-01", "30", "0", strPtr("Zeta")),
		venta("V-0004", "2024-01-15", "5", "5", strPtr("")),
	}

	res := Resumir(ventas, Rango{})

	require.Len(t, res.VentasPorCategoria, 2)
	assert.Equal(t, "Zeta", res.VentasPorCategoria[0].Categoria)
	assert.Equal(t, "40", res.VentasPorCategoria[0].MontoTotal.String())
	assert.Equal(t, 2, res.VentasPorCategoria[0].Cantidad)
	assert.Equal(t, SinCategoria, res.VentasPorCategoria[1].Categoria)
	assert.Equal(t, 2, res.VentasPorCategoria[1].Cantidad)

	assert.Equal(t, "25", res.KPIs.SaldoPendiente.String())
	assert.Equal(t, 2, res.KPIs.VentasPagadas)
}

func TestResumir_UltimasCincoPorFechaDesc(t *testing.T) {
	ventas := []VentaCategorizada{
		venta("V-0001", "2024-01-01", "1", "0", nil),
		venta("V-0007", "2024-07-01", "1", "0", nil),
		venta("V-0003", "2024-03-01", "1", "0", nil),
		venta("V-0005", "2024-05-01", "1", "0", nil),
		venta("V-0002", "2024-02-01", "1", "0", nil),
		venta("V-0006", "2024-06-01", "1", "0", nil),
		venta("V-0004", "2024-04-01", "1", "0", nil),
	}

	res := Resumir(ventas, Rango{})

	require.Len(t, res.UltimasVentas, MaxUltimasVentas)
	ids := make([]string, 0, len(res.UltimasVentas))
	for _, u := range res.UltimasVentas {
		ids = append(ids, u.VentaID)
	}
	assert.Equal(t, []string{"V-0007", "V-0006", "V-0005", "V-0004", "V-0003"}, ids)
	assert.Equal(t, "Cliente V-0007", res.UltimasVentas[0].ClienteNombre)
}

func TestResumir_PorPeriodoEsProyeccionPorVenta(t *testing.T) {
	ventas := []VentaCategorizada{
		venta("V-0001", "2024-01-01", "100", "0", strPtr("A")),
		venta("V-0002", "2024-01-01", "40", "0", strPtr("A")),
	}

	res := Resumir(ventas, Rango{})

	require.Len(t, res.VentasPorPeriodo, 2)
	assert.Equal(t, dto.VentaPorPeriodo{Fecha: "2024-01-01", Categoria: "A", Monto: decimal.RequireFromString("100")}, res.VentasPorPeriodo[0])
	assert.Equal(t, "40", res.VentasPorPeriodo[1].Monto.String())
}

func TestResumir_RangoInclusivo(t *testing.T) {
	ventas := []VentaCategorizada{
		venta("V-0001", "2024-01-31", "1", "0", nil),
		venta("V-0002", "2024-02-01", "2", "0", nil),
		venta("V-0003", "2024-02-15", "4", "0", nil),
		venta("V-0004", "2024-02-29", "8", "0", nil),
		venta("V-0005", "2024-03-01", "16", "0", nil),
	}

	res := Resumir(ventas, Rango{Desde: "2024-02-01", Hasta: "2024-02-29"})

	assert.Equal(t, 3, res.KPIs.TotalVentas)
	assert.Equal(t, "14", res.KPIs.MontoTotal.String())
}

func TestResumir_RangoAbierto(t *testing.T) {
	ventas := []VentaCategorizada{
		venta("V-0001", "2023-12-31", "1", "0", nil),
		venta("V-0002", "2024-01-01", "2", "0", nil),
	}

	assert.Equal(t, 1, Resumir(ventas, Rango{Desde: "2024-01-01"}).KPIs.TotalVentas)
	assert.Equal(t, 1, Resumir(ventas, Rango{Hasta: "2023-12-31"}).KPIs.TotalVentas)
}

func TestResumir_SinVentas(t *testing.T) {
	res := Resumir(nil, Rango{})

	assert.Equal(t, 0, res.KPIs.TotalVentas)
	assert.True(t, res.KPIs.MontoTotal.IsZero())
	assert.NotNil(t, res.UltimasVentas)
	assert.NotNil(t, res.VentasPorCategoria)
	assert.NotNil(t, res.VentasPorPeriodo)
}

func TestDesdeVenta(t *testing.T) {
	v := model.Venta{
		Codigo:        "V-0009",
		ClienteNombre: "Ana",
		Fecha:         "2024-05-05",
		Estado:        model.EstadoPendiente,
		MontoTotal:    decimal.NewFromInt(90),
		Producto:      &model.Producto{Categoria: strPtr("Asesoría")},
	}
	vc := DesdeVenta(v)
	assert.Equal(t, "Asesoría", vc.NombreCategoria())

	v.Producto = nil
	assert.Equal(t, SinCategoria, DesdeVenta(v).NombreCategoria())
}

// ── AgruparPorPeriodo ─────────────────────────────────────────────────────────

func filasPeriodo() []dto.VentaPorPeriodo {
	return []dto.VentaPorPeriodo{
		{Fecha: "2024-02-10", Categoria: "A", Monto: decimal.NewFromInt(10)},
		{Fecha: "2024-01-05", Categoria: "A", Monto: decimal.NewFromInt(20)},
		{Fecha: "2024-01-05", Categoria: "B", Monto: decimal.NewFromInt(5)},
		{Fecha: "2023-12-31", Categoria: "", Monto: decimal.NewFromInt(7)},
	}
}

func TestAgruparPorPeriodo_Dia(t *testing.T) {
	out, err := AgruparPorPeriodo(filasPeriodo(), PeriodoDia)
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "2023-12-31", out[0].Periodo)
	assert.Equal(t, "7", out[0].Categorias[SinCategoria].String())
	assert.Equal(t, "2024-01-05", out[1].Periodo)
	assert.Equal(t, "20", out[1].Categorias["A"].String())
	assert.Equal(t, "5", out[1].Categorias["B"].String())
}

func TestAgruparPorPeriodo_Mes(t *testing.T) {
	out, err := AgruparPorPeriodo(filasPeriodo(), PeriodoMes)
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, []string{"2023-12", "2024-01", "2024-02"}, []string{out[0].Periodo, out[1].Periodo, out[2].Periodo})
}

func TestAgruparPorPeriodo_Anio(t *testing.T) {
	out, err := AgruparPorPeriodo(filasPeriodo(), PeriodoAnio)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "2024", out[1].Periodo)
	assert.Equal(t, "30", out[1].Categorias["A"].String())
	assert.Equal(t, "5", out[1].Categorias["B"].String())
}

func TestAgruparPorPeriodo_PeriodoInvalido(t *testing.T) {
	_, err := AgruparPorPeriodo(filasPeriodo(), Periodo("semana"))
	assert.Error(t, err)
}

func TestAgruparPorPeriodo_FechaInvalida(t *testing.T) {
	_, err := AgruparPorPeriodo([]dto.VentaPorPeriodo{{Fecha: "01/02/2024"}}, PeriodoDia)
	assert.Error(t, err)
}
