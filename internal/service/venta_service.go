package service

import (
	"context"

	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/dto"
	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/ledger"
	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/model"
	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/repository"
	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/validation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type VentaService interface {
	CrearVenta(ctx context.Context, usuarioID uuid.UUID, req dto.VentaRequest) (*dto.VentaResponse, error)
	ActualizarVenta(ctx context.Context, usuarioID, id uuid.UUID, req dto.VentaRequest) (*dto.VentaResponse, error)
	EliminarVenta(ctx context.Context, usuarioID, id uuid.UUID) error
	ObtenerVenta(ctx context.Context, usuarioID, id uuid.UUID) (*dto.VentaResponse, error)
	ListarVentas(ctx context.Context, usuarioID uuid.UUID, filter dto.VentaFilter) ([]dto.VentaResponse, error)
	ListarVentasPendientes(ctx context.Context, usuarioID uuid.UUID) ([]dto.VentaResponse, error)
}

type ventaService struct {
	repo         repository.VentaRepository
	pagoRepo     repository.PagoRepository
	clienteRepo  repository.ClienteRepository
	productoRepo repository.ProductoRepository
	secuencias   repository.SecuenciaRepository
}

func NewVentaService(
	repo repository.VentaRepository,
	pagoRepo repository.PagoRepository,
	clienteRepo repository.ClienteRepository,
	productoRepo repository.ProductoRepository,
	secuencias repository.SecuenciaRepository,
) VentaService {
	return &ventaService{
		repo:         repo,
		pagoRepo:     pagoRepo,
		clienteRepo:  clienteRepo,
		productoRepo: productoRepo,
		secuencias:   secuencias,
	}
}

// resolver loads the client and product named by data, both owner-scoped.
func (s *ventaService) resolver(ctx context.Context, usuarioID uuid.UUID, data *validation.VentaData) (*model.Cliente, *model.Producto, error) {
	cliente, err := s.clienteRepo.FindByID(ctx, usuarioID, data.ClienteID)
	if err != nil {
		return nil, nil, orNotFound(err, ErrClienteNoEncontrado)
	}
	producto, err := s.productoRepo.FindByID(ctx, usuarioID, data.ProductoID)
	if err != nil {
		return nil, nil, orNotFound(err, ErrProductoNoEncontrado)
	}
	return cliente, producto, nil
}

// ── CrearVenta ────────────────────────────────────────────────────────────────
// One transaction:
//   1. next V- code
//   2. insert the sale with its initial balance
//   3. for contado, insert the automatic full payment

func (s *ventaService) CrearVenta(ctx context.Context, usuarioID uuid.UUID, req dto.VentaRequest) (*dto.VentaResponse, error) {
	data, err := validation.Venta(req)
	if err != nil {
		return nil, err
	}
	cliente, producto, err := s.resolver(ctx, usuarioID, data)
	if err != nil {
		return nil, err
	}

	venta := model.Venta{
		UsuarioID:      usuarioID,
		ClienteID:      cliente.ID,
		ClienteNombre:  cliente.Nombre,
		ProductoID:     producto.ID,
		ProductoNombre: producto.Nombre,
		Fecha:          data.Fecha,
		TipoPago:       data.TipoPago,
		MontoTotal:     data.MontoTotal,
		NumCuotas:      data.NumCuotas,
		MontoCuota:     ledger.MontoCuota(data.TipoPago, data.MontoTotal, data.NumCuotas),
	}
	ledger.EstadoInicial(data.TipoPago, data.MontoTotal).Aplicar(&venta)

	err = runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		code, err := s.secuencias.NextCodigo(ctx, tx, usuarioID, repository.EntidadVenta)
		if err != nil {
			return err
		}
		venta.Codigo = code
		if err := s.repo.Create(ctx, tx, &venta); err != nil {
			return err
		}
		if venta.TipoPago == model.TipoPagoContado {
			return s.crearPagoContado(ctx, tx, &venta, venta.MontoTotal)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ventaToResponse(&venta), nil
}

// crearPagoContado records the automatic payment of a contado sale.
func (s *ventaService) crearPagoContado(ctx context.Context, tx *gorm.DB, venta *model.Venta, monto decimal.Decimal) error {
	code, err := s.secuencias.NextCodigo(ctx, tx, venta.UsuarioID, repository.EntidadPago)
	if err != nil {
		return err
	}
	nota := model.NotaPagoContado
	pago := model.Pago{
		Codigo:     code,
		UsuarioID:  venta.UsuarioID,
		VentaID:    venta.ID,
		FechaPago:  venta.Fecha,
		Monto:      monto,
		MetodoPago: model.MetodoContado,
		Notas:      &nota,
	}
	return s.pagoRepo.Create(ctx, tx, &pago)
}

// ── ActualizarVenta ───────────────────────────────────────────────────────────
// Editing keeps the payment rows. When the total or the payment type changes,
// the balance is rebuilt from those rows:
//   - a total below what was already paid is rejected
//   - a contado sale left with a pending balance gets an automatic payment for it

func (s *ventaService) ActualizarVenta(ctx context.Context, usuarioID, id uuid.UUID, req dto.VentaRequest) (*dto.VentaResponse, error) {
	data, err := validation.Venta(req)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.FindByID(ctx, usuarioID, id); err != nil {
		return nil, orNotFound(err, ErrVentaNoEncontrada)
	}
	cliente, producto, err := s.resolver(ctx, usuarioID, data)
	if err != nil {
		return nil, err
	}

	var venta *model.Venta
	err = runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		v, err := s.repo.FindByIDForUpdate(ctx, tx, usuarioID, id)
		if err != nil {
			return orNotFound(err, ErrVentaNoEncontrada)
		}
		recalcular := !v.MontoTotal.Equal(data.MontoTotal) || v.TipoPago != data.TipoPago

		v.ClienteID = cliente.ID
		v.ClienteNombre = cliente.Nombre
		v.ProductoID = producto.ID
		v.ProductoNombre = producto.Nombre
		v.Fecha = data.Fecha
		v.TipoPago = data.TipoPago
		v.MontoTotal = data.MontoTotal
		v.NumCuotas = data.NumCuotas
		v.MontoCuota = ledger.MontoCuota(data.TipoPago, data.MontoTotal, data.NumCuotas)

		if recalcular {
			montos, err := s.pagoRepo.Montos(ctx, tx, v.ID)
			if err != nil {
				return err
			}
			saldo := ledger.Recalcular(v.MontoTotal, montos)
			if saldo.SaldoPendiente.IsNegative() {
				return ErrTotalMenorQuePagado
			}
			saldo.Aplicar(v)
			if v.TipoPago == model.TipoPagoContado && v.SaldoPendiente.IsPositive() {
				pendiente := v.SaldoPendiente
				if err := s.crearPagoContado(ctx, tx, v, pendiente); err != nil {
					return err
				}
				ledger.AplicarPago(ledger.DeVenta(v), pendiente).Aplicar(v)
			}
		}

		venta = v
		return s.repo.Update(ctx, tx, v)
	})
	if err != nil {
		return nil, err
	}
	return ventaToResponse(venta), nil
}

// ── EliminarVenta ─────────────────────────────────────────────────────────────

func (s *ventaService) EliminarVenta(ctx context.Context, usuarioID, id uuid.UUID) error {
	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if _, err := s.repo.FindByIDForUpdate(ctx, tx, usuarioID, id); err != nil {
			return orNotFound(err, ErrVentaNoEncontrada)
		}
		if err := s.pagoRepo.DeleteByVenta(ctx, tx, usuarioID, id); err != nil {
			return err
		}
		return orNotFound(s.repo.Delete(ctx, tx, usuarioID, id), ErrVentaNoEncontrada)
	})
}

// ── Reads ─────────────────────────────────────────────────────────────────────

func (s *ventaService) ObtenerVenta(ctx context.Context, usuarioID, id uuid.UUID) (*dto.VentaResponse, error) {
	v, err := s.repo.FindByID(ctx, usuarioID, id)
	if err != nil {
		return nil, orNotFound(err, ErrVentaNoEncontrada)
	}
	return ventaToResponse(v), nil
}

// ListarVentas returns the owner's sales, newest first.
func (s *ventaService) ListarVentas(ctx context.Context, usuarioID uuid.UUID, filter dto.VentaFilter) ([]dto.VentaResponse, error) {
	if err := validation.Struct(filter); err != nil {
		return nil, err
	}
	ventas, err := s.repo.List(ctx, usuarioID, filter)
	if err != nil {
		return nil, err
	}
	return ventasToResponse(ventas), nil
}

// ListarVentasPendientes feeds the payment form: only sales with a balance.
func (s *ventaService) ListarVentasPendientes(ctx context.Context, usuarioID uuid.UUID) ([]dto.VentaResponse, error) {
	return s.ListarVentas(ctx, usuarioID, dto.VentaFilter{Estado: model.EstadoPendiente})
}
