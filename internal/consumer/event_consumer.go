package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/soberpath/go-notification-service/internal/domain"
	"github.com/soberpath/go-notification-service/internal/shared/logger"
	"github.com/soberpath/go-notification-service/internal/shared/rabbitmq"
)

const (
	recoveryExchange   = "recovery.events"
	recoveryQueue      = "recovery_notification_queue"
	recoveryRoutingKey = "recovery.*"
)

// ProfileRebuilder regenerates a user's schedules from the stored profile
type ProfileRebuilder interface {
	RebuildSchedules(ctx context.Context, userID string) error
}

// Notifier sends one notification through the gated pipeline
type Notifier interface {
	Notify(ctx context.Context, userID string, trigger domain.TriggerType) (*domain.NotificationHistoryEntry, bool, error)
}

// EventConsumer consumes recovery events from RabbitMQ and reacts to them:
// profile saves rebuild schedules, cravings and milestones trigger sends.
type EventConsumer struct {
	client   *rabbitmq.RabbitMQClient
	profiles ProfileRebuilder
	notifier Notifier
	log      *logger.Logger
}

// NewEventConsumer creates a new event consumer
func NewEventConsumer(client *rabbitmq.RabbitMQClient, profiles ProfileRebuilder, notifier Notifier, log *logger.Logger) *EventConsumer {
	return &EventConsumer{
		client:   client,
		profiles: profiles,
		notifier: notifier,
		log:      log,
	}
}

// Start declares the topology and consumes until the channel closes
func (c *EventConsumer) Start() error {
	c.log.Info("Starting event consumer", "queue", recoveryQueue)

	if err := c.client.DeclareExchange(recoveryExchange, "topic"); err != nil {
		c.log.Error("Failed to declare exchange", "error", err)
		return err
	}
	if err := c.client.DeclareQueue(recoveryQueue); err != nil {
		c.log.Error("Failed to declare queue", "error", err)
		return err
	}
	if err := c.client.BindQueue(recoveryQueue, recoveryRoutingKey, recoveryExchange); err != nil {
		c.log.Error("Failed to bind queue", "error", err)
		return err
	}

	messages, err := c.client.Consume(recoveryQueue)
	if err != nil {
		c.log.Error("Failed to start consuming", "error", err)
		return err
	}

	for msg := range messages {
		c.log.Debug("Received message", "routing_key", msg.RoutingKey)

		var event domain.Event
		if err := json.Unmarshal(msg.Body, &event); err != nil {
			c.log.Error("Failed to unmarshal event", "error", err)
			msg.Nack(false, false) // Don't requeue invalid messages
			continue
		}

		ctx := context.Background()
		if err := c.processEvent(ctx, &event); err != nil {
			c.log.Error("Failed to process event", "error", err, "type", event.Type)
			msg.Nack(false, true) // Requeue for retry
			continue
		}

		msg.Ack(false)
		c.log.Info("Event processed", "type", event.Type, "user_id", event.UserID)
	}

	return nil
}

// processEvent routes one event to its handler
func (c *EventConsumer) processEvent(ctx context.Context, event *domain.Event) error {
	if event.UserID == "" {
		return fmt.Errorf("event %q missing user id", event.Type)
	}

	switch event.Type {
	case domain.EventProfileSaved:
		return c.profiles.RebuildSchedules(ctx, event.UserID)

	case domain.EventCravingReported:
		_, _, err := c.notifier.Notify(ctx, event.UserID, domain.TriggerCraving)
		return err

	case domain.EventStreakMilestone:
		_, _, err := c.notifier.Notify(ctx, event.UserID, domain.TriggerMilestone)
		return err

	default:
		// Unknown types are acked and dropped so a newer producer can't
		// wedge the queue.
		c.log.Warn("Unknown event type", "type", event.Type)
		return nil
	}
}
