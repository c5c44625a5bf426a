package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/soberpath/go-notification-service/internal/domain"
	"github.com/soberpath/go-notification-service/internal/metrics"
	"github.com/soberpath/go-notification-service/internal/sender"
	apperrors "github.com/soberpath/go-notification-service/internal/shared/errors"
	"github.com/soberpath/go-notification-service/internal/shared/logger"
)

const deliveryTimeout = 15 * time.Second

// Dispatcher delivers a notification through the user's enabled channels and
// records it in the bounded history log
type Dispatcher struct {
	history HistoryStore
	prefs   PreferencesStore
	senders []sender.Sender
	log     *logger.Logger
	now     func() time.Time
}

// NewDispatcher creates a new dispatcher
func NewDispatcher(history HistoryStore, prefs PreferencesStore, senders []sender.Sender, log *logger.Logger) *Dispatcher {
	return &Dispatcher{
		history: history,
		prefs:   prefs,
		senders: senders,
		log:     log,
		now:     time.Now,
	}
}

// Dispatch attempts delivery on every enabled channel, then appends a
// history entry and truncates the log to its cap. The entry is written
// whether or not any delivery succeeded; its status records the outcome
// explicitly. Channels without a recipient address are skipped, not failed.
func (d *Dispatcher) Dispatch(ctx context.Context, userID, title, message string) (*domain.NotificationHistoryEntry, error) {
	prefs, err := d.prefs.GetByUserID(ctx, userID)
	if err != nil {
		d.log.Warn("Failed to load preferences for dispatch, using defaults", "error", err, "user_id", userID)
		prefs = domain.DefaultPreferences(userID)
	}
	if prefs == nil {
		prefs = domain.DefaultPreferences(userID)
	}

	to := sender.Recipient{
		UserID:      userID,
		Email:       prefs.Email,
		PhoneNumber: prefs.PhoneNumber,
	}

	delivered := false
	for _, s := range d.senders {
		if !prefs.ChannelEnabled(s.Channel()) {
			continue
		}

		sctx, cancel := context.WithTimeout(ctx, deliveryTimeout)
		err := s.Send(sctx, to, title, message)
		cancel()

		if errors.Is(err, sender.ErrNoRecipient) {
			d.log.Debug("Channel has no recipient address, skipping", "channel", s.Channel(), "user_id", userID)
			continue
		}
		if err != nil {
			metrics.NotificationsFailed.WithLabelValues(string(s.Channel())).Inc()
			d.log.Error("Delivery failed", "error", err, "channel", s.Channel(), "user_id", userID)
			continue
		}

		metrics.NotificationsSent.WithLabelValues(string(s.Channel())).Inc()
		delivered = true
	}

	status := domain.DeliveryFailed
	if delivered {
		status = domain.DeliverySent
	}

	entry := &domain.NotificationHistoryEntry{
		ID:      uuid.NewString(),
		UserID:  userID,
		Title:   title,
		Message: message,
		SentAt:  d.now(),
		Status:  status,
	}

	if err := d.history.Insert(ctx, entry); err != nil {
		return nil, apperrors.NewPersistenceError("failed to record notification", err)
	}

	// A trim failure leaves extra history behind but never loses the entry
	if err := d.history.TrimToLimit(ctx, userID, domain.HistoryLimit); err != nil {
		d.log.Warn("Failed to trim notification history", "error", err, "user_id", userID)
	}

	return entry, nil
}
