package domain

import "time"

// EventType represents the type of event consumed from the app backend
type EventType string

const (
	EventProfileSaved    EventType = "profile.saved"
	EventCravingReported EventType = "craving.reported"
	EventStreakMilestone EventType = "streak.milestone"
)

// Event represents an event from RabbitMQ
type Event struct {
	Type      EventType `json:"type"`
	UserID    string    `json:"user_id"`
	Days      int       `json:"days,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
