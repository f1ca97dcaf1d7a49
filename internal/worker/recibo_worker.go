package worker

// recibo_worker.go
// Processes receipt jobs from QueueRecibo: renders the payment receipt PDF and,
// when the client has an email, enqueues the email job.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/infra"
	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/ledger"
	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ReciboJobPayload is the job envelope sent to QueueRecibo.
type ReciboJobPayload struct {
	PagoID    string `json:"pago_id"`
	UsuarioID string `json:"usuario_id"`
	Email     string `json:"email,omitempty"`
}

// EmailQueue accepts email jobs. *Dispatcher satisfies it.
type EmailQueue interface {
	EnqueueEmail(ctx context.Context, payload EmailJobPayload) error
}

// ReciboWorker turns a stored Pago into a PDF receipt.
type ReciboWorker struct {
	pagoRepo    repository.PagoRepository
	ventaRepo   repository.VentaRepository
	emails      EmailQueue
	storagePath string
	negocio     string
}

// NewReciboWorker wires all dependencies for the receipt worker.
// emails may be nil, in which case receipts are only written to disk.
func NewReciboWorker(
	pagoRepo repository.PagoRepository,
	ventaRepo repository.VentaRepository,
	emails EmailQueue,
	storagePath string,
	negocio string,
) *ReciboWorker {
	return &ReciboWorker{
		pagoRepo:    pagoRepo,
		ventaRepo:   ventaRepo,
		emails:      emails,
		storagePath: storagePath,
		negocio:     negocio,
	}
}

// Process handles a single receipt job:
//  1. Load the Pago and its Venta (owner-scoped)
//  2. Generate the PDF receipt (fpdf)
//  3. Optionally enqueue the email job
//
// A Pago deleted before the job ran is skipped, not retried.
func (w *ReciboWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload ReciboJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("recibo_worker: invalid payload")
		return nil
	}
	pagoID, err1 := uuid.Parse(payload.PagoID)
	usuarioID, err2 := uuid.Parse(payload.UsuarioID)
	if err := errors.Join(err1, err2); err != nil {
		log.Error().Err(err).Str("pago_id", payload.PagoID).Msg("recibo_worker: invalid ids")
		return nil
	}

	pago, err := w.pagoRepo.FindByID(ctx, usuarioID, pagoID)
	if errors.Is(err, repository.ErrNotFound) {
		log.Warn().Str("pago_id", payload.PagoID).Msg("recibo_worker: pago no longer exists, skipping")
		return nil
	}
	if err != nil {
		return fmt.Errorf("recibo_worker: load pago: %w", err)
	}

	venta, err := w.ventaRepo.FindByID(ctx, usuarioID, pago.VentaID)
	if errors.Is(err, repository.ErrNotFound) {
		log.Warn().Str("pago_id", payload.PagoID).Msg("recibo_worker: venta no longer exists, skipping")
		return nil
	}
	if err != nil {
		return fmt.Errorf("recibo_worker: load venta: %w", err)
	}

	pdfPath, err := infra.GenerateReciboPDF(infra.Recibo{
		Negocio:        w.negocio,
		PagoID:         pago.Codigo,
		VentaID:        venta.Codigo,
		FechaPago:      pago.FechaPago,
		ClienteNombre:  venta.ClienteNombre,
		ProductoNombre: venta.ProductoNombre,
		MetodoPago:     pago.MetodoPago,
		Monto:          pago.Monto,
		MontoTotal:     venta.MontoTotal,
		MontoPagado:    venta.MontoPagado,
		SaldoPendiente: venta.SaldoPendiente,
		Estado:         venta.Estado,
	}, w.storagePath)
	if err != nil {
		return err
	}
	log.Info().Str("pdf", pdfPath).Str("pago_id", pago.Codigo).Msg("recibo_worker: PDF generated")

	if payload.Email == "" || w.emails == nil {
		return nil
	}
	emailJob := EmailJobPayload{
		ToEmail: payload.Email,
		Subject: fmt.Sprintf("%s: recibo de pago %s", w.negocio, pago.Codigo),
		Body: fmt.Sprintf("Hola %s,\n\nAdjuntamos el recibo de tu pago de %s para la venta %s.\nSaldo pendiente: %s.\n",
			venta.ClienteNombre, ledger.FormatearSoles(pago.Monto), venta.Codigo, ledger.FormatearSoles(venta.SaldoPendiente)),
		PDFPath: pdfPath,
	}
	if err := w.emails.EnqueueEmail(ctx, emailJob); err != nil {
		// PDF is already on disk; do not regenerate it on retry
		log.Warn().Err(err).Str("email", payload.Email).Msg("recibo_worker: failed to enqueue email")
	}
	return nil
}
