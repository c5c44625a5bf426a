package sender

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/soberpath/go-notification-service/internal/domain"
	"github.com/soberpath/go-notification-service/internal/shared/config"
	"github.com/soberpath/go-notification-service/internal/shared/logger"
)

const twilioAPIBase = "https://api.twilio.com/2010-04-01"

// SMSSender delivers notifications as text messages
type SMSSender struct {
	config config.SMSConfig
	client *http.Client
	log    *logger.Logger
}

// NewSMSSender creates a new SMS sender
func NewSMSSender(cfg config.SMSConfig, log *logger.Logger) *SMSSender {
	return &SMSSender{
		config: cfg,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
	}
}

// Channel returns the SMS channel identifier
func (s *SMSSender) Channel() domain.Channel {
	return domain.ChannelSMS
}

// Send delivers the notification to the user's phone number. SMS has no
// subject line, so the title is folded into the message body.
func (s *SMSSender) Send(ctx context.Context, to Recipient, title, body string) error {
	if to.PhoneNumber == "" {
		return ErrNoRecipient
	}

	switch s.config.Provider {
	case "twilio":
		return s.sendViaTwilio(ctx, to.PhoneNumber, title+": "+body)
	default:
		return fmt.Errorf("unsupported SMS provider: %s", s.config.Provider)
	}
}

// sendViaTwilio posts to the Twilio Messages endpoint
func (s *SMSSender) sendViaTwilio(ctx context.Context, to, message string) error {
	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", twilioAPIBase, s.config.TwilioSID)

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", s.config.TwilioFrom)
	form.Set("Body", message)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(s.config.TwilioSID, s.config.TwilioToken)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("twilio request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("twilio returned status %d", resp.StatusCode)
	}

	s.log.Info("SMS delivered", "to", to, "provider", "twilio")
	return nil
}
