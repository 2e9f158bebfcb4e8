package mailer

import (
	"context"
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/meetingmind/meetingmind/internal/apperrors"
	"github.com/meetingmind/meetingmind/internal/config"
	"github.com/meetingmind/meetingmind/internal/logger"
)

type implSender struct {
	cfg    config.SMTPConfig
	logger logger.Logger
}

// New creates an SMTP Sender using STARTTLS on the configured host
func New(cfg config.SMTPConfig, log logger.Logger) Sender {
	return &implSender{cfg: cfg, logger: log}
}

// Send delivers the message through the configured SMTP relay
func (s *implSender) Send(ctx context.Context, msg Message) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.Sender)
	m.SetHeader("To", msg.To...)
	if len(msg.CC) > 0 {
		m.SetHeader("Cc", msg.CC...)
	}
	if len(msg.BCC) > 0 {
		m.SetHeader("Bcc", msg.BCC...)
	}
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTMLBody)

	for _, path := range msg.Attachments {
		m.Attach(path)
	}

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send: %v: %w", err, apperrors.ErrCapability)
	}

	s.logger.Info(ctx, "Email sent: %q to %d recipients", msg.Subject, len(msg.To)+len(msg.CC)+len(msg.BCC))
	return nil
}
