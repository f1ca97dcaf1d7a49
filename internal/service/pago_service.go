package service

import (
	"context"

	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/dto"
	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/ledger"
	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/model"
	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/repository"
	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/validation"
	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type PagoService interface {
	CrearPago(ctx context.Context, usuarioID uuid.UUID, req dto.PagoRequest) (*dto.PagoResponse, error)
	EliminarPago(ctx context.Context, usuarioID, id uuid.UUID) error
	ObtenerPago(ctx context.Context, usuarioID, id uuid.UUID) (*dto.PagoResponse, error)
	ListarPagos(ctx context.Context, usuarioID uuid.UUID) ([]dto.PagoResponse, error)
	ListarPagosPorVenta(ctx context.Context, usuarioID, ventaID uuid.UUID) ([]dto.PagoResponse, error)
}

// ReciboQueue accepts receipt jobs. *worker.Dispatcher satisfies it.
type ReciboQueue interface {
	EnqueueRecibo(ctx context.Context, payload worker.ReciboJobPayload) error
}

type pagoService struct {
	repo        repository.PagoRepository
	ventaRepo   repository.VentaRepository
	clienteRepo repository.ClienteRepository
	secuencias  repository.SecuenciaRepository
	recibos     ReciboQueue
}

// NewPagoService wires the payment service. recibos may be nil when Redis is
// not configured; receipts are then simply not generated.
func NewPagoService(
	repo repository.PagoRepository,
	ventaRepo repository.VentaRepository,
	clienteRepo repository.ClienteRepository,
	secuencias repository.SecuenciaRepository,
	recibos ReciboQueue,
) PagoService {
	return &pagoService{
		repo:        repo,
		ventaRepo:   ventaRepo,
		clienteRepo: clienteRepo,
		secuencias:  secuencias,
		recibos:     recibos,
	}
}

// ── CrearPago ─────────────────────────────────────────────────────────────────
// The sale row is locked for the whole transaction so two payments cannot both
// pass the balance check against the same saldo_pendiente.

func (s *pagoService) CrearPago(ctx context.Context, usuarioID uuid.UUID, req dto.PagoRequest) (*dto.PagoResponse, error) {
	data, err := validation.Pago(req)
	if err != nil {
		return nil, err
	}

	var (
		pago  model.Pago
		venta *model.Venta
	)
	err = runTx(ctx, s.ventaRepo.DB(), func(tx *gorm.DB) error {
		v, err := s.ventaRepo.FindByIDForUpdate(ctx, tx, usuarioID, data.VentaID)
		if err != nil {
			return orNotFound(err, ErrVentaNoEncontrada)
		}
		if err := ledger.ValidarPago(v.SaldoPendiente, data.Monto); err != nil {
			return err
		}

		code, err := s.secuencias.NextCodigo(ctx, tx, usuarioID, repository.EntidadPago)
		if err != nil {
			return err
		}
		pago = model.Pago{
			Codigo:     code,
			UsuarioID:  usuarioID,
			VentaID:    v.ID,
			FechaPago:  data.FechaPago,
			Monto:      data.Monto,
			MetodoPago: data.MetodoPago,
			Notas:      data.Notas,
		}
		if err := s.repo.Create(ctx, tx, &pago); err != nil {
			return err
		}

		ledger.AplicarPago(ledger.DeVenta(v), data.Monto).Aplicar(v)
		venta = v
		return s.ventaRepo.UpdateSaldo(ctx, tx, v)
	})
	if err != nil {
		return nil, err
	}

	s.encolarRecibo(ctx, usuarioID, venta, &pago)
	return pagoToResponse(&pago), nil
}

// encolarRecibo is best-effort: the payment is already committed.
func (s *pagoService) encolarRecibo(ctx context.Context, usuarioID uuid.UUID, venta *model.Venta, pago *model.Pago) {
	if s.recibos == nil {
		return
	}
	cliente, err := s.clienteRepo.FindByID(ctx, usuarioID, venta.ClienteID)
	if err != nil {
		log.Warn().Err(err).Str("pago_id", pago.Codigo).Msg("recibo: cliente lookup failed")
		return
	}
	if cliente.Email == nil || *cliente.Email == "" {
		return
	}
	payload := worker.ReciboJobPayload{
		PagoID:    pago.ID.String(),
		UsuarioID: usuarioID.String(),
		Email:     *cliente.Email,
	}
	if err := s.recibos.EnqueueRecibo(ctx, payload); err != nil {
		log.Warn().Err(err).Str("pago_id", pago.Codigo).Msg("recibo: enqueue failed")
	}
}

// ── EliminarPago ──────────────────────────────────────────────────────────────
// The balance is rebuilt from the remaining payments rather than by adding the
// deleted amount back, so a previously drifted balance is corrected too.

func (s *pagoService) EliminarPago(ctx context.Context, usuarioID, id uuid.UUID) error {
	pago, err := s.repo.FindByID(ctx, usuarioID, id)
	if err != nil {
		return orNotFound(err, ErrPagoNoEncontrado)
	}

	return runTx(ctx, s.ventaRepo.DB(), func(tx *gorm.DB) error {
		venta, err := s.ventaRepo.FindByIDForUpdate(ctx, tx, usuarioID, pago.VentaID)
		if err != nil {
			return orNotFound(err, ErrVentaNoEncontrada)
		}
		if err := s.repo.Delete(ctx, tx, usuarioID, id); err != nil {
			return orNotFound(err, ErrPagoNoEncontrado)
		}
		montos, err := s.repo.Montos(ctx, tx, venta.ID)
		if err != nil {
			return err
		}
		ledger.Recalcular(venta.MontoTotal, montos).Aplicar(venta)
		return s.ventaRepo.UpdateSaldo(ctx, tx, venta)
	})
}

// ── Reads ─────────────────────────────────────────────────────────────────────

func (s *pagoService) ObtenerPago(ctx context.Context, usuarioID, id uuid.UUID) (*dto.PagoResponse, error) {
	p, err := s.repo.FindByID(ctx, usuarioID, id)
	if err != nil {
		return nil, orNotFound(err, ErrPagoNoEncontrado)
	}
	return pagoToResponse(p), nil
}

func (s *pagoService) ListarPagos(ctx context.Context, usuarioID uuid.UUID) ([]dto.PagoResponse, error) {
	pagos, err := s.repo.List(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	return pagosToResponse(pagos), nil
}

func (s *pagoService) ListarPagosPorVenta(ctx context.Context, usuarioID, ventaID uuid.UUID) ([]dto.PagoResponse, error) {
	if _, err := s.ventaRepo.FindByID(ctx, usuarioID, ventaID); err != nil {
		return nil, orNotFound(err, ErrVentaNoEncontrada)
	}
	pagos, err := s.repo.ListByVenta(ctx, usuarioID, ventaID)
	if err != nil {
		return nil, err
	}
	return pagosToResponse(pagos), nil
}
