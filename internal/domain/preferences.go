package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Channel identifies a delivery channel
type Channel string

const (
	ChannelPush  Channel = "push"
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
)

// NotificationPreferences holds a user's channel enables, delivery endpoints
// and optional quiet hours ("HH:MM" 24-hour local time). Quiet hours are only
// enforced when both bounds are present.
type NotificationPreferences struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID          string             `json:"user_id" bson:"user_id"`
	PushEnabled     bool               `json:"push_enabled" bson:"push_enabled"`
	EmailEnabled    bool               `json:"email_enabled" bson:"email_enabled"`
	SMSEnabled      bool               `json:"sms_enabled" bson:"sms_enabled"`
	Email           string             `json:"email,omitempty" bson:"email,omitempty"`
	PhoneNumber     string             `json:"phone_number,omitempty" bson:"phone_number,omitempty"`
	QuietHoursStart string             `json:"quiet_hours_start,omitempty" bson:"quiet_hours_start,omitempty"`
	QuietHoursEnd   string             `json:"quiet_hours_end,omitempty" bson:"quiet_hours_end,omitempty"`
	CreatedAt       time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at" bson:"updated_at"`
}

// DefaultPreferences returns the preferences assumed for a user who has
// never changed settings: all channels on, no quiet hours.
func DefaultPreferences(userID string) *NotificationPreferences {
	return &NotificationPreferences{
		UserID:       userID,
		PushEnabled:  true,
		EmailEnabled: true,
		SMSEnabled:   true,
	}
}

// AnyChannelEnabled reports whether at least one delivery channel is on.
func (p *NotificationPreferences) AnyChannelEnabled() bool {
	return p.PushEnabled || p.EmailEnabled || p.SMSEnabled
}

// ChannelEnabled reports whether a specific channel is on.
func (p *NotificationPreferences) ChannelEnabled(c Channel) bool {
	switch c {
	case ChannelPush:
		return p.PushEnabled
	case ChannelEmail:
		return p.EmailEnabled
	case ChannelSMS:
		return p.SMSEnabled
	}
	return false
}

// QuietHoursConfigured reports whether both quiet-hours bounds are set.
// A single bound is not enforceable.
func (p *NotificationPreferences) QuietHoursConfigured() bool {
	return p.QuietHoursStart != "" && p.QuietHoursEnd != ""
}
