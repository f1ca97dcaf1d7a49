package ledger

import (
	"errors"
	"testing"

	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func intPtr(n int) *int { return &n }

// ── MontoCuota ────────────────────────────────────────────────────────────────

func TestMontoCuota_Exacta(t *testing.T) {
	m := MontoCuota(model.TipoPagoCuotas, d("300"), intPtr(3))
	require.NotNil(t, m)
	assert.Equal(t, "100.00", m.StringFixed(2))
}

func TestMontoCuota_Redondeo(t *testing.T) {
	m := MontoCuota(model.TipoPagoCuotas, d("100"), intPtr(3))
	require.NotNil(t, m)
	assert.Equal(t, "33.33", m.StringFixed(2))

	m = MontoCuota(model.TipoPagoCuotas, d("200"), intPtr(3))
	require.NotNil(t, m)
	assert.Equal(t, "66.67", m.StringFixed(2))
}

func TestMontoCuota_Contado(t *testing.T) {
	assert.Nil(t, MontoCuota(model.TipoPagoContado, d("300"), nil))
	assert.Nil(t, MontoCuota(model.TipoPagoContado, d("300"), intPtr(3)))
	assert.Nil(t, MontoCuota(model.TipoPagoCuotas, d("300"), nil))
}

// ── EstadoInicial ─────────────────────────────────────────────────────────────

func TestEstadoInicial_Contado(t *testing.T) {
	s := EstadoInicial(model.TipoPagoContado, d("150"))
	assert.True(t, s.MontoPagado.Equal(d("150")))
	assert.True(t, s.SaldoPendiente.IsZero())
	assert.Equal(t, model.EstadoPagado, s.Estado)
	assert.True(t, VerificarInvariante(d("150"), s))
}

func TestEstadoInicial_Cuotas(t *testing.T) {
	s := EstadoInicial(model.TipoPagoCuotas, d("300"))
	assert.True(t, s.MontoPagado.IsZero())
	assert.True(t, s.SaldoPendiente.Equal(d("300")))
	assert.Equal(t, model.EstadoPendiente, s.Estado)
	assert.True(t, VerificarInvariante(d("300"), s))
}

// ── ValidarPago / AplicarPago ────────────────────────────────────────────────

func TestAplicarPago_SecuenciaHastaPagado(t *testing.T) {
	total := d("300")
	s := EstadoInicial(model.TipoPagoCuotas, total)

	require.NoError(t, ValidarPago(s.SaldoPendiente, d("100")))
	s = AplicarPago(s, d("100"))
	assert.Equal(t, "100.00", s.MontoPagado.StringFixed(2))
	assert.Equal(t, "200.00", s.SaldoPendiente.StringFixed(2))
	assert.Equal(t, model.EstadoPendiente, s.Estado)
	assert.True(t, VerificarInvariante(total, s))

	require.NoError(t, ValidarPago(s.SaldoPendiente, d("200")))
	s = AplicarPago(s, d("200"))
	assert.True(t, s.SaldoPendiente.IsZero())
	assert.Equal(t, model.EstadoPagado, s.Estado)
	assert.True(t, VerificarInvariante(total, s))
}

func TestValidarPago_ExcedeSaldo(t *testing.T) {
	err := ValidarPago(d("200"), d("250"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMontoExcedeSaldo))

	var exc *MontoExcedeSaldoError
	require.True(t, errors.As(err, &exc))
	assert.Equal(t, "200.00", exc.Saldo.StringFixed(2))
	assert.Contains(t, err.Error(), "S/ 200.00")
}

func TestValidarPago_MontoIgualAlSaldo(t *testing.T) {
	assert.NoError(t, ValidarPago(d("200"), d("200")))
}

func TestValidarPago_VentaPagada(t *testing.T) {
	assert.ErrorIs(t, ValidarPago(decimal.Zero, d("1")), ErrVentaPagada)
	assert.ErrorIs(t, ValidarPago(d("-5"), d("1")), ErrVentaPagada)
}

// ── Recalcular ────────────────────────────────────────────────────────────────

func TestRecalcular_TrasEliminarPago(t *testing.T) {
	total := d("300")
	s := Recalcular(total, []decimal.Decimal{d("100")})
	assert.Equal(t, "100.00", s.MontoPagado.StringFixed(2))
	assert.Equal(t, "200.00", s.SaldoPendiente.StringFixed(2))
	assert.Equal(t, model.EstadoPendiente, s.Estado)
}

func TestRecalcular_SinPagos(t *testing.T) {
	s := Recalcular(d("80.50"), nil)
	assert.True(t, s.MontoPagado.IsZero())
	assert.Equal(t, "80.50", s.SaldoPendiente.StringFixed(2))
	assert.Equal(t, model.EstadoPendiente, s.Estado)
}

func TestRecalcular_CentavosExactos(t *testing.T) {
	// 0.1 + 0.2 must reach 0.3 exactly; a float64 ledger would leave 0.00000000000000004 pending.
	s := Recalcular(d("0.30"), []decimal.Decimal{d("0.10"), d("0.20")})
	assert.True(t, s.SaldoPendiente.IsZero())
	assert.Equal(t, model.EstadoPagado, s.Estado)
}

func TestEstadoPara(t *testing.T) {
	assert.Equal(t, model.EstadoPagado, EstadoPara(decimal.Zero))
	assert.Equal(t, model.EstadoPagado, EstadoPara(d("-1")))
	assert.Equal(t, model.EstadoPendiente, EstadoPara(d("0.01")))
}

func TestVerificarInvariante_Rechaza(t *testing.T) {
	assert.False(t, VerificarInvariante(d("100"), Saldo{MontoPagado: d("50"), SaldoPendiente: d("40"), Estado: model.EstadoPendiente}))
	assert.False(t, VerificarInvariante(d("100"), Saldo{MontoPagado: d("100"), SaldoPendiente: decimal.Zero, Estado: model.EstadoPendiente}))
}

func TestSaldo_AplicarYDeVenta(t *testing.T) {
	v := &model.Venta{MontoTotal: d("90")}
	EstadoInicial(model.TipoPagoCuotas, v.MontoTotal).Aplicar(v)
	assert.Equal(t, model.EstadoPendiente, v.Estado)

	s := AplicarPago(DeVenta(v), d("90"))
	s.Aplicar(v)
	assert.Equal(t, model.EstadoPagado, v.Estado)
	assert.True(t, v.SaldoPendiente.IsZero())
}

// ── FormatearSoles ────────────────────────────────────────────────────────────

func TestFormatearSoles(t *testing.T) {
	cases := map[string]string{
		"0":          "S/ 0.00",
		"5.5":        "S/ 5.50",
		"999.99":     "S/ 999.99",
		"1234.5":     "S/ 1,234.50",
		"1234567.89": "S/ 1,234,567.89",
		"-42":        "-S/ 42.00",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatearSoles(d(in)), in)
	}
}
