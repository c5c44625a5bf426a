package domain

// SaveProfileRequest represents an intake-form submission
type SaveProfileRequest struct {
	AddictionType    string   `json:"addiction_type" binding:"required"`
	OtherAddiction   string   `json:"other_addiction,omitempty"`
	DailyFrequency   int      `json:"daily_frequency"`
	WeeklyFrequency  int      `json:"weekly_frequency"`
	ImportanceLevel  int      `json:"importance_level" binding:"required"`
	CurrentImpact    string   `json:"current_impact,omitempty"`
	PeakTimes        []string `json:"peak_times"`
	Triggers         []string `json:"triggers"`
	PreviousAttempts int      `json:"previous_attempts"`
	MotivationLevel  int      `json:"motivation_level" binding:"required"`
	SupportSystem    string   `json:"support_system,omitempty"`
	Goals            string   `json:"goals,omitempty"`
	AdditionalNotes  string   `json:"additional_notes,omitempty"`
}

// Profile converts the request into a profile record for the given user.
func (r *SaveProfileRequest) Profile(userID string) *AddictionProfile {
	return &AddictionProfile{
		UserID:           userID,
		AddictionType:    r.AddictionType,
		OtherAddiction:   r.OtherAddiction,
		DailyFrequency:   r.DailyFrequency,
		WeeklyFrequency:  r.WeeklyFrequency,
		ImportanceLevel:  r.ImportanceLevel,
		CurrentImpact:    r.CurrentImpact,
		PeakTimes:        r.PeakTimes,
		Triggers:         r.Triggers,
		PreviousAttempts: r.PreviousAttempts,
		MotivationLevel:  r.MotivationLevel,
		SupportSystem:    r.SupportSystem,
		Goals:            r.Goals,
		AdditionalNotes:  r.AdditionalNotes,
	}
}

// UpdatePreferencesRequest represents a settings change
type UpdatePreferencesRequest struct {
	PushEnabled     bool   `json:"push_enabled"`
	EmailEnabled    bool   `json:"email_enabled"`
	SMSEnabled      bool   `json:"sms_enabled"`
	Email           string `json:"email,omitempty"`
	PhoneNumber     string `json:"phone_number,omitempty"`
	QuietHoursStart string `json:"quiet_hours_start,omitempty"`
	QuietHoursEnd   string `json:"quiet_hours_end,omitempty"`
}

// TestNotificationRequest triggers a one-off notification through the full
// gate/personalize/dispatch pipeline
type TestNotificationRequest struct {
	TriggerType TriggerType `json:"trigger_type" binding:"required"`
}
