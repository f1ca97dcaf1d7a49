// Package ledger holds the balance rules of a Venta and its Pagos.
//
// The original database kept ventas.monto_pagado / saldo_pendiente / estado in
// sync with a trigger on the pagos table. Here the same recomputation is plain
// Go, called by the services inside the transaction that inserts or deletes a
// Pago, so the store needs no trigger at all.
package ledger

import (
	"errors"
	"fmt"

	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/model"

	"github.com/shopspring/decimal"
)

var (
	// ErrVentaPagada is returned when a Pago targets a Venta with no pending balance.
	ErrVentaPagada = errors.New("la venta ya está pagada completamente")

	// ErrMontoExcedeSaldo is returned when a Pago is larger than the pending balance.
	ErrMontoExcedeSaldo = errors.New("el monto excede el saldo pendiente")

	// ErrTotalMenorQuePagado is returned when a Venta is edited to a total
	// below what has already been paid.
	ErrTotalMenorQuePagado = errors.New("el monto total no puede ser menor a lo ya pagado")
)

// MontoExcedeSaldoError carries the balance the client must not exceed.
type MontoExcedeSaldoError struct {
	Saldo decimal.Decimal
	Monto decimal.Decimal
}

func (e *MontoExcedeSaldoError) Error() string {
	return fmt.Sprintf("El monto no puede ser mayor al saldo pendiente (%s)", FormatearSoles(e.Saldo))
}

func (e *MontoExcedeSaldoError) Unwrap() error { return ErrMontoExcedeSaldo }

// Saldo is the balance triple stored on a Venta.
type Saldo struct {
	MontoPagado    decimal.Decimal
	SaldoPendiente decimal.Decimal
	Estado         string
}

// EstadoPara returns PAGADO when nothing is pending, PENDIENTE otherwise.
func EstadoPara(saldoPendiente decimal.Decimal) string {
	if saldoPendiente.LessThanOrEqual(decimal.Zero) {
		return model.EstadoPagado
	}
	return model.EstadoPendiente
}

// MontoCuota is total / cuotas rounded to cents, or nil for contado sales.
func MontoCuota(tipoPago string, total decimal.Decimal, numCuotas *int) *decimal.Decimal {
	if tipoPago != model.TipoPagoCuotas || numCuotas == nil || *numCuotas <= 0 {
		return nil
	}
	m := total.Div(decimal.NewFromInt(int64(*numCuotas))).Round(2)
	return &m
}

// EstadoInicial is the balance of a freshly created Venta: contado sales are
// paid in full, cuotas sales start with everything pending.
func EstadoInicial(tipoPago string, total decimal.Decimal) Saldo {
	if tipoPago == model.TipoPagoContado {
		return Saldo{MontoPagado: total, SaldoPendiente: decimal.Zero, Estado: model.EstadoPagado}
	}
	return Saldo{MontoPagado: decimal.Zero, SaldoPendiente: total, Estado: model.EstadoPendiente}
}

// ValidarPago checks a new Pago of monto against the current pending balance.
func ValidarPago(saldoPendiente, monto decimal.Decimal) error {
	if saldoPendiente.LessThanOrEqual(decimal.Zero) {
		return ErrVentaPagada
	}
	if monto.GreaterThan(saldoPendiente) {
		return &MontoExcedeSaldoError{Saldo: saldoPendiente, Monto: monto}
	}
	return nil
}

// AplicarPago adds monto to the paid side of actual.
func AplicarPago(actual Saldo, monto decimal.Decimal) Saldo {
	pendiente := actual.SaldoPendiente.Sub(monto)
	return Saldo{
		MontoPagado:    actual.MontoPagado.Add(monto),
		SaldoPendiente: pendiente,
		Estado:         EstadoPara(pendiente),
	}
}

// Recalcular rebuilds the balance from the full set of payments of a Venta.
// Used after a Pago is deleted or the total changes, instead of reversing the
// single amount, so the stored balance can never drift from the payment rows.
func Recalcular(total decimal.Decimal, pagos []decimal.Decimal) Saldo {
	pagado := decimal.Zero
	for _, p := range pagos {
		pagado = pagado.Add(p)
	}
	pendiente := total.Sub(pagado)
	return Saldo{MontoPagado: pagado, SaldoPendiente: pendiente, Estado: EstadoPara(pendiente)}
}

// VerificarInvariante reports whether s satisfies the Venta invariants for total.
func VerificarInvariante(total decimal.Decimal, s Saldo) bool {
	if !s.MontoPagado.Add(s.SaldoPendiente).Equal(total) {
		return false
	}
	return s.Estado == EstadoPara(s.SaldoPendiente)
}

// DeVenta extracts the stored balance of v.
func DeVenta(v *model.Venta) Saldo {
	return Saldo{MontoPagado: v.MontoPagado, SaldoPendiente: v.SaldoPendiente, Estado: v.Estado}
}

// Aplicar writes s onto v.
func (s Saldo) Aplicar(v *model.Venta) {
	v.MontoPagado = s.MontoPagado
	v.SaldoPendiente = s.SaldoPendiente
	v.Estado = s.Estado
}
