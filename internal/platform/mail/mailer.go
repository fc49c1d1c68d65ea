package mail

import (
	"fmt"
	"net/smtp"

	"go.uber.org/fx"
	"go.uber.org/zap"

	cfgpkg "github.com/agrofono/checkout/pkg/config"
)

// Mailer sends outbound notification mail. Delivery is best-effort; the
// caller decides whether to block on the result.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer sends plain-text mail over SMTP with PLAIN auth.
type SMTPMailer struct {
	cfg *cfgpkg.SMTPConfig
	log *zap.SugaredLogger
}

func NewSMTPMailer(cfg *cfgpkg.Config, log *zap.SugaredLogger) Mailer {
	return &SMTPMailer{cfg: &cfg.SMTP, log: log}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	sender := m.cfg.Sender
	if sender == "" {
		sender = m.cfg.Username
	}

	var auth smtp.Auth
	if m.cfg.Username != "" && m.cfg.Password != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	msg := []byte(
		fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n", sender, to, subject) +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/plain; charset=UTF-8\r\n\r\n" +
			body,
	)

	if err := smtp.SendMail(addr, auth, sender, []string{to}, msg); err != nil {
		m.log.Errorw("smtp_send_failed", "to", to, "err", err)
		return err
	}
	m.log.Infow("smtp_sent", "to", to, "addr", addr)
	return nil
}

var Module = fx.Options(
	fx.Provide(NewSMTPMailer),
)
