package service

import (
	"context"
	"testing"

	"github.com/soberpath/go-notification-service/internal/domain"
	apperrors "github.com/soberpath/go-notification-service/internal/shared/errors"
	"github.com/soberpath/go-notification-service/internal/shared/logger"
)

func newTestProfileService(profiles *fakeProfileStore, schedules *fakeScheduleStore) *ProfileService {
	log := logger.NewLogger()
	return NewProfileService(profiles, NewScheduleBuilder(schedules, log), log)
}

func TestSaveProfileClampsAndRebuilds(t *testing.T) {
	profiles := newFakeProfileStore()
	schedules := newFakeScheduleStore()
	svc := newTestProfileService(profiles, schedules)
	ctx := context.Background()

	profile := &domain.AddictionProfile{
		UserID:          "user-1",
		AddictionType:   "Alcohol",
		ImportanceLevel: 14,
		MotivationLevel: 0,
		PeakTimes:       []string{"6:00 PM - 9:00 PM"},
	}

	built, err := svc.SaveProfile(ctx, profile)
	if err != nil {
		t.Fatalf("SaveProfile() error = %v", err)
	}

	if profile.ImportanceLevel != 10 || profile.MotivationLevel != 1 {
		t.Errorf("levels not clamped: importance=%d motivation=%d", profile.ImportanceLevel, profile.MotivationLevel)
	}
	if len(built) != 1 {
		t.Fatalf("built %d schedules, want 1", len(built))
	}
	// clamped importance 10 falls in the top offset tier
	if built[0].OffsetMinutes != 20 {
		t.Errorf("OffsetMinutes = %d, want 20", built[0].OffsetMinutes)
	}

	stored, _ := schedules.FindByUserID(ctx, "user-1")
	if len(stored) != 1 {
		t.Errorf("stored %d schedules, want 1", len(stored))
	}
}

func TestSaveProfileRejectsUnknownVocabulary(t *testing.T) {
	svc := newTestProfileService(newFakeProfileStore(), newFakeScheduleStore())

	profile := &domain.AddictionProfile{
		UserID:          "user-1",
		AddictionType:   "Chocolate",
		ImportanceLevel: 5,
		MotivationLevel: 5,
	}

	_, err := svc.SaveProfile(context.Background(), profile)
	if err == nil {
		t.Fatal("expected validation error for unknown addiction category")
	}
	appErr, ok := err.(*apperrors.AppError)
	if !ok || appErr.Code != "VALIDATION_ERROR" {
		t.Errorf("expected VALIDATION_ERROR, got %v", err)
	}
}

func TestSaveProfileReplacesExisting(t *testing.T) {
	profiles := newFakeProfileStore()
	svc := newTestProfileService(profiles, newFakeScheduleStore())
	ctx := context.Background()

	first := &domain.AddictionProfile{
		UserID:          "user-1",
		AddictionType:   "Alcohol",
		ImportanceLevel: 5,
		MotivationLevel: 5,
		Goals:           "old goals",
	}
	if _, err := svc.SaveProfile(ctx, first); err != nil {
		t.Fatalf("SaveProfile() error = %v", err)
	}

	second := &domain.AddictionProfile{
		UserID:          "user-1",
		AddictionType:   "Smoking",
		ImportanceLevel: 9,
		MotivationLevel: 7,
	}
	if _, err := svc.SaveProfile(ctx, second); err != nil {
		t.Fatalf("SaveProfile() error = %v", err)
	}

	got, _ := svc.GetProfile(ctx, "user-1")
	if got.AddictionType != "Smoking" {
		t.Errorf("AddictionType = %q, want Smoking", got.AddictionType)
	}
	if got.Goals != "" {
		t.Errorf("Goals = %q; replacement is wholesale, not a merge", got.Goals)
	}
	if !got.CreatedAt.Equal(first.CreatedAt) {
		t.Error("CreatedAt should survive profile replacement")
	}
}

func TestGetProfileAbsent(t *testing.T) {
	svc := newTestProfileService(newFakeProfileStore(), newFakeScheduleStore())

	got, err := svc.GetProfile(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("GetProfile() error = %v", err)
	}
	if got != nil {
		t.Errorf("GetProfile() = %+v, want nil", got)
	}
}

func TestRebuildSchedulesWithoutProfileIsNoop(t *testing.T) {
	schedules := newFakeScheduleStore()
	svc := newTestProfileService(newFakeProfileStore(), schedules)

	if err := svc.RebuildSchedules(context.Background(), "nobody"); err != nil {
		t.Fatalf("RebuildSchedules() error = %v", err)
	}
	stored, _ := schedules.FindByUserID(context.Background(), "nobody")
	if len(stored) != 0 {
		t.Errorf("stored %d schedules, want 0", len(stored))
	}
}
