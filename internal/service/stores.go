package service

import (
	"context"

	"github.com/soberpath/go-notification-service/internal/domain"
)

// Storage interfaces consumed by the services. The Mongo repositories
// satisfy them in production; tests substitute in-memory fakes.

// ProfileStore persists addiction profiles keyed by user id
type ProfileStore interface {
	GetByUserID(ctx context.Context, userID string) (*domain.AddictionProfile, error)
	Upsert(ctx context.Context, profile *domain.AddictionProfile) error
}

// ScheduleStore persists per-user notification schedule sets
type ScheduleStore interface {
	ReplaceForUser(ctx context.Context, userID string, schedules []*domain.NotificationSchedule) error
	FindByUserID(ctx context.Context, userID string) ([]*domain.NotificationSchedule, error)
	FindActive(ctx context.Context) ([]*domain.NotificationSchedule, error)
}

// PreferencesStore persists notification preferences keyed by user id
type PreferencesStore interface {
	GetByUserID(ctx context.Context, userID string) (*domain.NotificationPreferences, error)
	Upsert(ctx context.Context, prefs *domain.NotificationPreferences) error
}

// HistoryStore persists the capped per-user notification history
type HistoryStore interface {
	Insert(ctx context.Context, entry *domain.NotificationHistoryEntry) error
	TrimToLimit(ctx context.Context, userID string, limit int) error
	FindByUserID(ctx context.Context, userID string) ([]*domain.NotificationHistoryEntry, error)
	FindByID(ctx context.Context, userID, id string) (*domain.NotificationHistoryEntry, error)
}

// TemplateStore resolves stored message template overrides
type TemplateStore interface {
	FindByTrigger(ctx context.Context, trigger domain.TriggerType) (*domain.MessageTemplate, error)
}
