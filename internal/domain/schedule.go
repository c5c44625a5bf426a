package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationSchedule is one per (user, peak window) pair. The full set for
// a user is regenerated whenever the profile is saved; stale windows from a
// prior profile version never survive a rebuild.
type NotificationSchedule struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID        string             `json:"user_id" bson:"user_id"`
	AddictionType string             `json:"addiction_type" bson:"addiction_type"`
	PeakTime      string             `json:"peak_time" bson:"peak_time"`
	OffsetMinutes int                `json:"offset_minutes" bson:"offset_minutes"`
	IsActive      bool               `json:"is_active" bson:"is_active"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}

// FireMinute returns the minute of day (0..1439) at which this schedule
// fires: the window start minus the lead-time offset, wrapping at midnight.
func (s *NotificationSchedule) FireMinute() (int, error) {
	start, err := ParseWindowStart(s.PeakTime)
	if err != nil {
		return 0, err
	}
	m := start.Hour*60 + start.Minute - s.OffsetMinutes
	if m < 0 {
		m += 24 * 60
	}
	return m, nil
}
