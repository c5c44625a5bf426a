package service

import (
	"context"

	"github.com/soberpath/go-notification-service/internal/domain"
	"github.com/soberpath/go-notification-service/internal/shared/logger"
)

// Notifier runs the full gate -> personalize -> dispatch pipeline for one
// notification. The scheduler, the event consumer and the manual-send
// endpoint all go through it.
type Notifier struct {
	gate         *Gate
	personalizer *Personalizer
	dispatcher   *Dispatcher
	log          *logger.Logger
}

// NewNotifier creates a new notifier
func NewNotifier(gate *Gate, personalizer *Personalizer, dispatcher *Dispatcher, log *logger.Logger) *Notifier {
	return &Notifier{
		gate:         gate,
		personalizer: personalizer,
		dispatcher:   dispatcher,
		log:          log,
	}
}

// Notify sends one notification to the user for the given trigger type.
// Returns (nil, false, nil) when the gate suppressed the send.
func (n *Notifier) Notify(ctx context.Context, userID string, trigger domain.TriggerType) (*domain.NotificationHistoryEntry, bool, error) {
	if !n.gate.IsAllowed(ctx, userID) {
		n.log.Info("Notification suppressed", "user_id", userID, "trigger", trigger)
		return nil, false, nil
	}

	title, body := n.personalizer.Render(ctx, userID, trigger)

	entry, err := n.dispatcher.Dispatch(ctx, userID, title, body)
	if err != nil {
		return nil, true, err
	}
	return entry, true, nil
}
