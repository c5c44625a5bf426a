package service

import (
	"context"

	"github.com/soberpath/go-notification-service/internal/domain"
	"github.com/soberpath/go-notification-service/internal/shared/errors"
	"github.com/soberpath/go-notification-service/internal/shared/logger"
)

// ProfileService owns the at-most-one-profile-per-user invariant and keeps
// the schedule set in sync with the profile
type ProfileService struct {
	profiles ProfileStore
	builder  *ScheduleBuilder
	log      *logger.Logger
}

// NewProfileService creates a new profile service
func NewProfileService(profiles ProfileStore, builder *ScheduleBuilder, log *logger.Logger) *ProfileService {
	return &ProfileService{
		profiles: profiles,
		builder:  builder,
		log:      log,
	}
}

// SaveProfile persists the profile (replacing any prior one wholesale) and
// regenerates the user's schedules. Level fields are clamped and enumerated
// fields validated against their vocabularies before anything is written.
func (s *ProfileService) SaveProfile(ctx context.Context, profile *domain.AddictionProfile) ([]*domain.NotificationSchedule, error) {
	profile.Normalize()
	if err := profile.Validate(); err != nil {
		return nil, errors.NewValidationError("invalid profile", err)
	}

	if err := s.profiles.Upsert(ctx, profile); err != nil {
		return nil, errors.NewPersistenceError("failed to save profile", err)
	}

	schedules, err := s.builder.Rebuild(ctx, profile.UserID, profile)
	if err != nil {
		return nil, err
	}

	s.log.Info("Profile saved", "user_id", profile.UserID, "peak_windows", len(profile.PeakTimes))
	return schedules, nil
}

// GetProfile returns the user's current profile, or nil when absent
func (s *ProfileService) GetProfile(ctx context.Context, userID string) (*domain.AddictionProfile, error) {
	return s.profiles.GetByUserID(ctx, userID)
}

// RebuildSchedules regenerates schedules from the stored profile. Used when
// a profile write lands through the app backend rather than this service.
func (s *ProfileService) RebuildSchedules(ctx context.Context, userID string) error {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if profile == nil {
		s.log.Warn("Rebuild requested for user without a profile", "user_id", userID)
		return nil
	}

	_, err = s.builder.Rebuild(ctx, userID, profile)
	return err
}
