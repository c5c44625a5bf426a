package sender

import (
	"context"
	"errors"

	"github.com/soberpath/go-notification-service/internal/domain"
)

// ErrNoRecipient indicates the user has no address for this channel. The
// dispatcher treats it as a skip, not a delivery failure.
var ErrNoRecipient = errors.New("no recipient address for channel")

// Recipient carries the delivery endpoints resolved from preferences
type Recipient struct {
	UserID      string
	Email       string
	PhoneNumber string
}

// Sender delivers a notification through one channel
type Sender interface {
	Channel() domain.Channel
	Send(ctx context.Context, to Recipient, title, body string) error
}
