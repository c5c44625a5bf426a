package sender

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/soberpath/go-notification-service/internal/domain"
	"github.com/soberpath/go-notification-service/internal/shared/logger"
)

const pushMaxRetries = 3

// PushSender delivers notifications through the app's push gateway, which
// resolves the user's browser subscription and holds the permission state.
type PushSender struct {
	gatewayURL string
	client     *http.Client
	log        *logger.Logger
}

// NewPushSender creates a new push sender
func NewPushSender(gatewayURL string, log *logger.Logger) *PushSender {
	return &PushSender{
		gatewayURL: gatewayURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
	}
}

// Channel returns the push channel identifier
func (s *PushSender) Channel() domain.Channel {
	return domain.ChannelPush
}

// Send posts the notification to the push gateway with retry and backoff
func (s *PushSender) Send(ctx context.Context, to Recipient, title, body string) error {
	payload, err := json.Marshal(map[string]string{
		"user_id": to.UserID,
		"title":   title,
		"body":    body,
	})
	if err != nil {
		return err
	}

	var lastErr error
	for i := 0; i < pushMaxRetries; i++ {
		if i > 0 {
			backoff := time.Duration(i*i) * time.Second
			s.log.Info("Retrying push delivery", "attempt", i+1, "backoff", backoff)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		if err := s.post(ctx, payload); err != nil {
			lastErr = err
			s.log.Error("Failed to deliver push", "error", err, "attempt", i+1, "user_id", to.UserID)
			continue
		}
		return nil
	}

	return fmt.Errorf("push delivery failed after %d attempts: %w", pushMaxRetries, lastErr)
}

func (s *PushSender) post(ctx context.Context, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.gatewayURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("push gateway returned status %d", resp.StatusCode)
	}
	return nil
}
