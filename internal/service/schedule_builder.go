package service

import (
	"context"

	"github.com/soberpath/go-notification-service/internal/domain"
	"github.com/soberpath/go-notification-service/internal/metrics"
	"github.com/soberpath/go-notification-service/internal/shared/logger"
)

// ScheduleBuilder derives a user's notification schedules from their profile
type ScheduleBuilder struct {
	schedules ScheduleStore
	log       *logger.Logger
}

// NewScheduleBuilder creates a new schedule builder
func NewScheduleBuilder(schedules ScheduleStore, log *logger.Logger) *ScheduleBuilder {
	return &ScheduleBuilder{
		schedules: schedules,
		log:       log,
	}
}

// Rebuild wholesale-replaces the user's schedule set with one schedule per
// peak window, all carrying the lead-time offset derived from the profile's
// importance level. Every label is parsed up front; a malformed label aborts
// the rebuild before anything is written. An empty peak set produces an
// empty schedule set, which is valid.
func (b *ScheduleBuilder) Rebuild(ctx context.Context, userID string, profile *domain.AddictionProfile) ([]*domain.NotificationSchedule, error) {
	offset := domain.LeadTimeMinutes(profile.ImportanceLevel)

	schedules := make([]*domain.NotificationSchedule, 0, len(profile.PeakTimes))
	for _, window := range profile.PeakTimes {
		if _, err := domain.ParseWindowStart(window); err != nil {
			return nil, err
		}
		schedules = append(schedules, &domain.NotificationSchedule{
			UserID:        userID,
			AddictionType: profile.AddictionType,
			PeakTime:      window,
			OffsetMinutes: offset,
			IsActive:      true,
		})
	}

	if err := b.schedules.ReplaceForUser(ctx, userID, schedules); err != nil {
		return nil, err
	}

	metrics.ScheduleRebuilds.Inc()
	b.log.Info("Rebuilt notification schedules", "user_id", userID, "count", len(schedules), "offset_minutes", offset)
	return schedules, nil
}
