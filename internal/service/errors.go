package service

import (
	"context"
	"errors"

	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/ledger"
	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/repository"

	"gorm.io/gorm"
)

// Store and ledger sentinels, re-exported so handlers depend on one package.
var (
	ErrNotFound            = repository.ErrNotFound
	ErrEnUso               = repository.ErrEnUso
	ErrDuplicado           = repository.ErrDuplicado
	ErrVentaPagada         = ledger.ErrVentaPagada
	ErrMontoExcedeSaldo    = ledger.ErrMontoExcedeSaldo
	ErrTotalMenorQuePagado = ledger.ErrTotalMenorQuePagado
)

var (
	ErrCredenciales  = errors.New("credenciales invalidas")
	ErrTokenInvalido = errors.New("token invalido o expirado")
)

// notFoundError names the missing entity while still matching ErrNotFound.
type notFoundError struct{ msg string }

func (e *notFoundError) Error() string { return e.msg }
func (e *notFoundError) Unwrap() error { return ErrNotFound }

var (
	ErrClienteNoEncontrado  error = &notFoundError{"Cliente no encontrado"}
	ErrProductoNoEncontrado error = &notFoundError{"Producto no encontrado"}
	ErrVentaNoEncontrada    error = &notFoundError{"Venta no encontrada"}
	ErrPagoNoEncontrado     error = &notFoundError{"Pago no encontrado"}
)

// orNotFound replaces a bare ErrNotFound with the entity-specific one.
func orNotFound(err, target error) error {
	if errors.Is(err, ErrNotFound) {
		return target
	}
	return err
}

// enUsoError explains which entity is still referenced.
type enUsoError struct{ msg string }

func (e *enUsoError) Error() string { return e.msg }
func (e *enUsoError) Unwrap() error { return ErrEnUso }

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// duplicadoError carries a user-facing message for unique violations.
type duplicadoError struct{ msg string }

func (e *duplicadoError) Error() string { return e.msg }
func (e *duplicadoError) Unwrap() error { return ErrDuplicado }
