package mail

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"go.uber.org/zap"

	apperrors "github.com/kamplisrinivas/mom-meeting-system/errors"
	"github.com/kamplisrinivas/mom-meeting-system/pkg/config"
)

// SMTPSender sends mail over plain SMTP. The client is constructed per
// send; no transporter singleton is kept between calls.
type SMTPSender struct {
	cfg    *config.SMTPConfig
	logger *zap.Logger
}

// NewSMTPSender creates a new SMTP sender
func NewSMTPSender(cfg *config.SMTPConfig, logger *zap.Logger) *SMTPSender {
	return &SMTPSender{
		cfg:    cfg,
		logger: logger,
	}
}

// Send delivers one message to the recipient list.
func (s *SMTPSender) Send(ctx context.Context, to []string, subject, htmlBody string) error {
	if len(to) == 0 {
		return nil
	}
	if err := s.send(ctx, to, subject, htmlBody); err != nil {
		return apperrors.ErrMailFailed(err)
	}
	return nil
}

func (s *SMTPSender) send(ctx context.Context, to []string, subject, htmlBody string) error {
	var message bytes.Buffer
	fmt.Fprintf(&message, "From: %s\r\n", s.cfg.From)
	fmt.Fprintf(&message, "To: %s\r\n", strings.Join(to, ", "))
	fmt.Fprintf(&message, "Subject: %s\r\n", subject)
	message.WriteString("MIME-Version: 1.0\r\n")
	message.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	message.WriteString("\r\n")
	message.WriteString(htmlBody)

	addr := net.JoinHostPort(s.cfg.Host, s.cfg.Port)

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server %s: %w", addr, err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer client.Close()

	// No authentication against local development relays.
	if s.cfg.Username != "" && s.cfg.Password != "" {
		auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("SMTP auth failed: %w", err)
		}
	}

	if err := client.Mail(s.cfg.From); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	for _, rcpt := range to {
		if err := client.Rcpt(rcpt); err != nil {
			return fmt.Errorf("failed to set recipient %s: %w", rcpt, err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to open data writer: %w", err)
	}
	if _, err := w.Write(message.Bytes()); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}

	if err := client.Quit(); err != nil {
		s.logger.Warn("mail.smtp.quit_failed", zap.Error(err))
	}

	return nil
}
