package domain

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AddictionCategoryOther marks a free-text addiction description
const AddictionCategoryOther = "Other"

// AddictionCategories is the fixed set of addiction categories offered by
// the intake flow.
var AddictionCategories = []string{
	"Alcohol",
	"Smoking",
	"Drugs",
	"Gambling",
	"Social Media",
	"Gaming",
	"Food",
	AddictionCategoryOther,
}

// PeakTimeWindows is the fixed roster of eight 3-hour slots covering 24 hours.
// Schedules are only ever built for labels from this roster.
var PeakTimeWindows = []string{
	"12:00 AM - 3:00 AM",
	"3:00 AM - 6:00 AM",
	"6:00 AM - 9:00 AM",
	"9:00 AM - 12:00 PM",
	"12:00 PM - 3:00 PM",
	"3:00 PM - 6:00 PM",
	"6:00 PM - 9:00 PM",
	"9:00 PM - 12:00 AM",
}

// TriggerLabels is the fixed vocabulary of self-reported craving triggers.
var TriggerLabels = []string{
	"Stress",
	"Boredom",
	"Social situations",
	"Loneliness",
	"Anxiety",
	"Celebration",
	"Habit",
	"Peer pressure",
}

// AddictionProfile is a user's self-reported addiction profile, one per user.
// Resubmission of the intake flow replaces it wholesale; no history is kept.
type AddictionProfile struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID           string             `json:"user_id" bson:"user_id"`
	AddictionType    string             `json:"addiction_type" bson:"addiction_type"`
	OtherAddiction   string             `json:"other_addiction,omitempty" bson:"other_addiction,omitempty"`
	DailyFrequency   int                `json:"daily_frequency" bson:"daily_frequency"`
	WeeklyFrequency  int                `json:"weekly_frequency" bson:"weekly_frequency"`
	ImportanceLevel  int                `json:"importance_level" bson:"importance_level"`
	CurrentImpact    string             `json:"current_impact,omitempty" bson:"current_impact,omitempty"`
	PeakTimes        []string           `json:"peak_times" bson:"peak_times"`
	Triggers         []string           `json:"triggers" bson:"triggers"`
	PreviousAttempts int                `json:"previous_attempts" bson:"previous_attempts"`
	MotivationLevel  int                `json:"motivation_level" bson:"motivation_level"`
	SupportSystem    string             `json:"support_system,omitempty" bson:"support_system,omitempty"`
	Goals            string             `json:"goals,omitempty" bson:"goals,omitempty"`
	AdditionalNotes  string             `json:"additional_notes,omitempty" bson:"additional_notes,omitempty"`
	CreatedAt        time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at" bson:"updated_at"`
}

// Normalize clamps level fields into their valid ranges and floors counters
// at zero. Importance and motivation are always kept within [1,10].
func (p *AddictionProfile) Normalize() {
	p.ImportanceLevel = clampLevel(p.ImportanceLevel)
	p.MotivationLevel = clampLevel(p.MotivationLevel)
	if p.DailyFrequency < 0 {
		p.DailyFrequency = 0
	}
	if p.WeeklyFrequency < 0 {
		p.WeeklyFrequency = 0
	}
	if p.WeeklyFrequency > 7 {
		p.WeeklyFrequency = 7
	}
	if p.PreviousAttempts < 0 {
		p.PreviousAttempts = 0
	}
}

// Validate checks vocabulary membership for the enumerated fields. The UI
// enforces these too, but records arriving over the wire are re-checked here.
func (p *AddictionProfile) Validate() error {
	if p.UserID == "" {
		return fmt.Errorf("user id is required")
	}
	if !contains(AddictionCategories, p.AddictionType) {
		return fmt.Errorf("unknown addiction category %q", p.AddictionType)
	}
	for _, w := range p.PeakTimes {
		if !contains(PeakTimeWindows, w) {
			return fmt.Errorf("unknown peak time window %q", w)
		}
	}
	for _, tr := range p.Triggers {
		if !contains(TriggerLabels, tr) {
			return fmt.Errorf("unknown trigger %q", tr)
		}
	}
	return nil
}

// AddictionName returns the display name of the addiction, preferring the
// free-text description when the category is "Other".
func (p *AddictionProfile) AddictionName() string {
	if p.AddictionType == AddictionCategoryOther && p.OtherAddiction != "" {
		return p.OtherAddiction
	}
	return p.AddictionType
}

func clampLevel(v int) int {
	if v < 1 {
		return 1
	}
	if v > 10 {
		return 10
	}
	return v
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
