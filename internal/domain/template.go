package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TriggerType is the category of event prompting a notification
type TriggerType string

const (
	TriggerPeakTime   TriggerType = "peak_time"
	TriggerCraving    TriggerType = "craving"
	TriggerMilestone  TriggerType = "milestone"
	TriggerMotivation TriggerType = "motivation"
)

// KnownTrigger reports whether t is one of the defined trigger types.
func KnownTrigger(t TriggerType) bool {
	switch t {
	case TriggerPeakTime, TriggerCraving, TriggerMilestone, TriggerMotivation:
		return true
	}
	return false
}

// MessageTemplate is an optional stored override for a trigger type's
// built-in message template. Placeholders use the {{name}} form.
type MessageTemplate struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	TriggerType TriggerType        `json:"trigger_type" bson:"trigger_type"`
	Title       string             `json:"title" bson:"title"`
	Body        string             `json:"body" bson:"body"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}
