package sender

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/smtp"

	"github.com/soberpath/go-notification-service/internal/domain"
	"github.com/soberpath/go-notification-service/internal/shared/config"
	"github.com/soberpath/go-notification-service/internal/shared/logger"
)

// EmailSender delivers notifications over SMTP
type EmailSender struct {
	config config.SMTPConfig
	log    *logger.Logger
}

// NewEmailSender creates a new email sender
func NewEmailSender(cfg config.SMTPConfig, log *logger.Logger) *EmailSender {
	return &EmailSender{config: cfg, log: log}
}

// Channel returns the email channel identifier
func (s *EmailSender) Channel() domain.Channel {
	return domain.ChannelEmail
}

// Send delivers the notification to the user's email address
func (s *EmailSender) Send(ctx context.Context, to Recipient, title, body string) error {
	if to.Email == "" {
		return ErrNoRecipient
	}
	return s.sendSMTPEmail(to.Email, title, body)
}

func (s *EmailSender) sendSMTPEmail(to, subject, body string) error {
	from := s.config.FromEmail
	if s.config.FromName != "" {
		from = fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromEmail)
	}

	message := fmt.Sprintf("From: %s\r\n"+
		"To: %s\r\n"+
		"Subject: %s\r\n"+
		"Content-Type: text/plain; charset=UTF-8\r\n"+
		"\r\n"+
		"%s",
		from, to, subject, body)

	auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	// Implicit TLS on port 465, STARTTLS otherwise
	if s.config.Port == 465 {
		tlsConfig := &tls.Config{
			ServerName: s.config.Host,
		}

		conn, err := tls.Dial("tcp", addr, tlsConfig)
		if err != nil {
			return fmt.Errorf("failed to connect to SMTP server: %w", err)
		}
		defer conn.Close()

		client, err := smtp.NewClient(conn, s.config.Host)
		if err != nil {
			return fmt.Errorf("failed to create SMTP client: %w", err)
		}
		defer client.Quit()

		if err = client.Auth(auth); err != nil {
			return fmt.Errorf("SMTP authentication failed: %w", err)
		}

		if err = client.Mail(s.config.FromEmail); err != nil {
			return fmt.Errorf("failed to set sender: %w", err)
		}

		if err = client.Rcpt(to); err != nil {
			return fmt.Errorf("failed to set recipient: %w", err)
		}

		w, err := client.Data()
		if err != nil {
			return fmt.Errorf("failed to get data writer: %w", err)
		}

		if _, err = w.Write([]byte(message)); err != nil {
			return fmt.Errorf("failed to write message: %w", err)
		}

		return w.Close()
	}

	return smtp.SendMail(addr, auth, s.config.FromEmail, []string{to}, []byte(message))
}
