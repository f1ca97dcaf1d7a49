package infra

import (
	"fmt"
	"net/smtp"

	"github.com/Gbo2412/Proyecto-SGV-BRASA/internal/config"

	"github.com/jordan-wright/email"
)

// Mailer wraps SMTP configuration for sending receipts with PDF attachments.
// Every send goes through a circuit breaker so a dead relay fails fast.
type Mailer struct {
	host     string
	user     string
	password string
	addr     string
	cb       *CircuitBreaker
	send     func(e *email.Email, addr string, auth smtp.Auth) error
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		addr:     fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
		cb:       NewCircuitBreaker(DefaultCBConfig()),
		send: func(e *email.Email, addr string, auth smtp.Auth) error {
			return e.Send(addr, auth)
		},
	}
}

// Configured reports whether an SMTP host was provided.
func (m *Mailer) Configured() bool { return m != nil && m.host != "" }

// Breaker exposes the circuit breaker state for the health endpoint.
func (m *Mailer) Breaker() *CircuitBreaker { return m.cb }

// SendRecibo sends a PDF receipt to the customer email.
func (m *Mailer) SendRecibo(to, subject, body, pdfPath string) error {
	e := email.NewEmail()
	e.From = m.user
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)

	if pdfPath != "" {
		if _, err := e.AttachFile(pdfPath); err != nil {
			return fmt.Errorf("mailer: attach PDF: %w", err)
		}
	}

	auth := smtp.PlainAuth("", m.user, m.password, m.host)
	return m.cb.Execute(func() error {
		return m.send(e, m.addr, auth)
	})
}
