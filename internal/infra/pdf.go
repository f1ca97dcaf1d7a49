package infra

// pdf.go: payment receipt generation using go-pdf/fpdf.
// A6-size receipt with the business header, the payment, and the sale
// balance after the payment was applied. Saved to storagePath/recibo_{pago_id}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/ledger"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// Recibo is everything printed on a payment receipt.
type Recibo struct {
	Negocio        string
	PagoID         string // display code, e.g. PG-0004
	VentaID        string
	FechaPago      string
	ClienteNombre  string
	ProductoNombre string
	MetodoPago     string
	Monto          decimal.Decimal
	MontoTotal     decimal.Decimal
	MontoPagado    decimal.Decimal
	SaldoPendiente decimal.Decimal
	Estado         string
}

// GenerateReciboPDF writes the receipt and returns the file path.
// storagePath is created if needed.
func GenerateReciboPDF(r Recibo, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("recibo_%s.pdf", sanitizeFileName(r.PagoID))
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A6", "")
	pdf.SetMargins(6, 6, 6)
	pdf.AddPage()
	// core fonts are cp1252; translate accents and the sol sign from UTF-8
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 12

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 7, tr(r.Negocio), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, "Recibo de Pago", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	// ── Payment info ─────────────────────────────────────────────────────────
	row := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 8)
		pdf.CellFormat(contentW*0.4, 5, tr(label), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 8)
		pdf.CellFormat(contentW*0.6, 5, tr(value), "", 1, "R", false, 0, "")
	}
	row("Recibo:", r.PagoID)
	row("Fecha:", r.FechaPago)
	row("Venta:", r.VentaID)
	row("Cliente:", r.ClienteNombre)
	row("Producto:", r.ProductoNombre)
	row("Método:", r.MetodoPago)

	pdf.Ln(2)
	pdf.Line(6, pdf.GetY(), pageW-6, pdf.GetY())
	pdf.Ln(2)

	// ── Amounts ──────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW*0.5, 7, "MONTO PAGADO:", "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW*0.5, 7, tr(ledger.FormatearSoles(r.Monto)), "", 1, "R", false, 0, "")

	pdf.Ln(1)
	row("Total venta:", ledger.FormatearSoles(r.MontoTotal))
	row("Pagado a la fecha:", ledger.FormatearSoles(r.MontoPagado))
	row("Saldo pendiente:", ledger.FormatearSoles(r.SaldoPendiente))
	row("Estado:", r.Estado)

	// ── Footer ───────────────────────────────────────────────────────────────
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 7)
	pdf.CellFormat(contentW, 4, tr("¡Gracias por su preferencia!"), "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	return filePath, nil
}

func sanitizeFileName(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, s)
}
