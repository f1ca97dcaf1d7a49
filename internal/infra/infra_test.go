package infra

import (
	"context"
	"errors"
	"net/smtp"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/config"
	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/model"

	"github.com/jordan-wright/email"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Circuit breaker ───────────────────────────────────────────────────────────

func TestCircuitBreaker_AbreYSeRecupera(t *testing.T) {
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cb := NewCircuitBreaker(CircuitBreakerConfig{FailureThreshold: 2, SuccessThreshold: 1, OpenTimeout: time.Minute})
	cb.now = func() time.Time { return clock }

	boom := errors.New("smtp down")
	assert.ErrorIs(t, cb.Execute(func() error { return boom }), boom)
	assert.Equal(t, CBClosed, cb.State())
	assert.ErrorIs(t, cb.Execute(func() error { return boom }), boom)
	assert.Equal(t, CBOpen, cb.State())

	called := false
	assert.ErrorIs(t, cb.Execute(func() error { called = true; return nil }), ErrCircuitOpen)
	assert.False(t, called)

	clock = clock.Add(time.Minute)
	assert.Equal(t, CBHalfOpen, cb.State())
	require.NoError(t, cb.Execute(func() error { return nil }))
	assert.Equal(t, CBClosed, cb.State())
}

func TestCircuitBreaker_FalloEnHalfOpenReabre(t *testing.T) {
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cb := NewCircuitBreaker(CircuitBreakerConfig{FailureThreshold: 1, OpenTimeout: time.Second})
	cb.now = func() time.Time { return clock }

	_ = cb.Execute(func() error { return errors.New("x") })
	clock = clock.Add(time.Second)
	require.Equal(t, CBHalfOpen, cb.State())

	_ = cb.Execute(func() error { return errors.New("x") })
	assert.Equal(t, CBOpen, cb.State())
	assert.Equal(t, "open", cb.State().String())
}

// ── Mailer ────────────────────────────────────────────────────────────────────

func TestMailer_SendRecibo(t *testing.T) {
	m := NewMailer(&config.Config{SMTPHost: "smtp.example.com", SMTPPort: 587, SMTPUser: "caja@brasa.pe"})
	var got *email.Email
	var gotAddr string
	m.send = func(e *email.Email, addr string, _ smtp.Auth) error {
		got, gotAddr = e, addr
		return nil
	}

	require.True(t, m.Configured())
	require.NoError(t, m.SendRecibo("ana@example.com", "Recibo PG-0001", "Gracias", ""))
	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, []string{"ana@example.com"}, got.To)
	assert.Equal(t, "caja@brasa.pe", got.From)
}

func TestMailer_CircuitoAbierto(t *testing.T) {
	m := NewMailer(&config.Config{SMTPHost: "smtp.example.com", SMTPPort: 587})
	m.send = func(*email.Email, string, smtp.Auth) error { return errors.New("dial tcp: refused") }

	for i := 0; i < DefaultCBConfig().FailureThreshold; i++ {
		assert.Error(t, m.SendRecibo("a@b.pe", "s", "b", ""))
	}
	assert.ErrorIs(t, m.SendRecibo("a@b.pe", "s", "b", ""), ErrCircuitOpen)
}

func TestMailer_SinHost(t *testing.T) {
	assert.False(t, NewMailer(&config.Config{}).Configured())
	var m *Mailer
	assert.False(t, m.Configured())
}

// ── PDF ───────────────────────────────────────────────────────────────────────

func TestGenerateReciboPDF(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "recibos")
	path, err := GenerateReciboPDF(Recibo{
		Negocio:        "SGV Brasa",
		PagoID:         "PG-0004",
		VentaID:        "V-0002",
		FechaPago:      "2024-02-01",
		ClienteNombre:  "Ana Pérez",
		ProductoNombre: "Asesoría",
		MetodoPago:     "Yape",
		Monto:          decimal.NewFromInt(100),
		MontoTotal:     decimal.NewFromInt(300),
		MontoPagado:    decimal.NewFromInt(100),
		SaldoPendiente: decimal.NewFromInt(200),
		Estado:         model.EstadoPendiente,
	}, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "recibo_PG-0004.pdf"), path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestSanitizeFileName(t *testing.T) {
	assert.Equal(t, "PG-0001", sanitizeFileName("PG-0001"))
	assert.Equal(t, "___etc_passwd", sanitizeFileName("../etc/passwd"))
}

// ── Database ──────────────────────────────────────────────────────────────────

func TestNewDatabase_SQLite(t *testing.T) {
	db, err := NewDatabase("sqlite://file:" + t.Name() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	for _, m := range model.All() {
		assert.True(t, db.Migrator().HasTable(m))
	}
	assert.Equal(t, "file:x?mode=memory&_foreign_keys=on", sqliteDSN("file:x?mode=memory"))
	assert.Equal(t, "sgv.db?_foreign_keys=on", sqliteDSN("sgv.db"))
}

// ── Redis ─────────────────────────────────────────────────────────────────────

func TestNewRedis_Opcional(t *testing.T) {
	rdb, err := NewRedis(context.Background(), "")
	assert.NoError(t, err)
	assert.Nil(t, rdb)
}

func TestNewRedis_Errores(t *testing.T) {
	_, err := NewRedis(context.Background(), "http://no-es-redis")
	assert.ErrorContains(t, err, "REDIS_URL")

	rdb, err := NewRedis(context.Background(), "redis://127.0.0.1:1/0")
	assert.ErrorContains(t, err, "127.0.0.1:1")
	assert.Nil(t, rdb)
}
