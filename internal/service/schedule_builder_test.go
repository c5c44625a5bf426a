package service

import (
	"context"
	"errors"
	"testing"

	"github.com/soberpath/go-notification-service/internal/domain"
	"github.com/soberpath/go-notification-service/internal/shared/logger"
)

func testProfile(peakTimes ...string) *domain.AddictionProfile {
	return &domain.AddictionProfile{
		UserID:          "user-1",
		AddictionType:   "Alcohol",
		ImportanceLevel: 8,
		MotivationLevel: 6,
		PeakTimes:       peakTimes,
	}
}

func TestRebuildOnePerPeakWindow(t *testing.T) {
	store := newFakeScheduleStore()
	builder := NewScheduleBuilder(store, logger.NewLogger())

	profile := testProfile("6:00 PM - 9:00 PM", "9:00 PM - 12:00 AM")
	schedules, err := builder.Rebuild(context.Background(), "user-1", profile)
	if err != nil {
		t.Fatalf("Rebuild() error = %v", err)
	}

	if len(schedules) != 2 {
		t.Fatalf("got %d schedules, want 2", len(schedules))
	}
	for _, s := range schedules {
		if s.OffsetMinutes != 15 {
			t.Errorf("OffsetMinutes = %d, want 15 for importance 8", s.OffsetMinutes)
		}
		if s.AddictionType != "Alcohol" {
			t.Errorf("AddictionType = %q, want Alcohol", s.AddictionType)
		}
		if !s.IsActive {
			t.Error("schedule should be active")
		}
	}
}

func TestRebuildIdempotent(t *testing.T) {
	store := newFakeScheduleStore()
	builder := NewScheduleBuilder(store, logger.NewLogger())
	profile := testProfile("6:00 AM - 9:00 AM", "3:00 PM - 6:00 PM")

	first, err := builder.Rebuild(context.Background(), "user-1", profile)
	if err != nil {
		t.Fatalf("first Rebuild() error = %v", err)
	}
	second, err := builder.Rebuild(context.Background(), "user-1", profile)
	if err != nil {
		t.Fatalf("second Rebuild() error = %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("rebuild changed count: %d vs %d", len(first), len(second))
	}

	stored, _ := store.FindByUserID(context.Background(), "user-1")
	if len(stored) != 2 {
		t.Fatalf("stored %d schedules, want 2 (no duplication)", len(stored))
	}
	for i := range stored {
		if stored[i].PeakTime != first[i].PeakTime || stored[i].OffsetMinutes != first[i].OffsetMinutes {
			t.Errorf("schedule %d differs after identical rebuild", i)
		}
	}
}

func TestRebuildReplacesPriorSet(t *testing.T) {
	store := newFakeScheduleStore()
	builder := NewScheduleBuilder(store, logger.NewLogger())
	ctx := context.Background()

	if _, err := builder.Rebuild(ctx, "user-1", testProfile("6:00 AM - 9:00 AM", "9:00 AM - 12:00 PM")); err != nil {
		t.Fatalf("Rebuild() error = %v", err)
	}
	if _, err := builder.Rebuild(ctx, "user-1", testProfile("9:00 PM - 12:00 AM")); err != nil {
		t.Fatalf("Rebuild() error = %v", err)
	}

	stored, _ := store.FindByUserID(ctx, "user-1")
	if len(stored) != 1 {
		t.Fatalf("stored %d schedules, want exactly 1", len(stored))
	}
	if stored[0].PeakTime != "9:00 PM - 12:00 AM" {
		t.Errorf("surviving window = %q, want the new one", stored[0].PeakTime)
	}
}

func TestRebuildEmptyPeakSet(t *testing.T) {
	store := newFakeScheduleStore()
	builder := NewScheduleBuilder(store, logger.NewLogger())
	ctx := context.Background()

	if _, err := builder.Rebuild(ctx, "user-1", testProfile("6:00 AM - 9:00 AM")); err != nil {
		t.Fatalf("Rebuild() error = %v", err)
	}

	schedules, err := builder.Rebuild(ctx, "user-1", testProfile())
	if err != nil {
		t.Fatalf("Rebuild() with empty peak set error = %v", err)
	}
	if len(schedules) != 0 {
		t.Errorf("got %d schedules, want 0", len(schedules))
	}

	stored, _ := store.FindByUserID(ctx, "user-1")
	if len(stored) != 0 {
		t.Errorf("stored %d schedules, want 0", len(stored))
	}
}

func TestRebuildMalformedWindowAborts(t *testing.T) {
	store := newFakeScheduleStore()
	builder := NewScheduleBuilder(store, logger.NewLogger())
	ctx := context.Background()

	if _, err := builder.Rebuild(ctx, "user-1", testProfile("6:00 PM - 9:00 PM")); err != nil {
		t.Fatalf("Rebuild() error = %v", err)
	}

	bad := testProfile("6:00 PM - 9:00 PM")
	bad.PeakTimes = append(bad.PeakTimes, "sometime in the evening")

	_, err := builder.Rebuild(ctx, "user-1", bad)
	if err == nil {
		t.Fatal("expected ParseError from malformed window")
	}
	var parseErr *domain.ParseError
	if !errors.As(err, &parseErr) {
		t.Errorf("expected *domain.ParseError, got %T", err)
	}

	// Nothing was written; the prior set survives intact.
	stored, _ := store.FindByUserID(ctx, "user-1")
	if len(stored) != 1 {
		t.Errorf("stored %d schedules after failed rebuild, want 1", len(stored))
	}
}
