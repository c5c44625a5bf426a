package service

import (
	"context"
	"sort"
	"time"

	"github.com/soberpath/go-notification-service/internal/domain"
	"github.com/soberpath/go-notification-service/internal/sender"
)

// In-memory store fakes standing in for the Mongo repositories.

type fakeProfileStore struct {
	profiles map[string]*domain.AddictionProfile
	err      error
}

func newFakeProfileStore() *fakeProfileStore {
	return &fakeProfileStore{profiles: make(map[string]*domain.AddictionProfile)}
}

func (s *fakeProfileStore) GetByUserID(_ context.Context, userID string) (*domain.AddictionProfile, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.profiles[userID], nil
}

func (s *fakeProfileStore) Upsert(_ context.Context, profile *domain.AddictionProfile) error {
	if s.err != nil {
		return s.err
	}
	now := time.Now()
	profile.UpdatedAt = now
	if existing := s.profiles[profile.UserID]; existing != nil {
		profile.CreatedAt = existing.CreatedAt
	} else if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	s.profiles[profile.UserID] = profile
	return nil
}

type fakeScheduleStore struct {
	byUser map[string][]*domain.NotificationSchedule
	err    error
}

func newFakeScheduleStore() *fakeScheduleStore {
	return &fakeScheduleStore{byUser: make(map[string][]*domain.NotificationSchedule)}
}

func (s *fakeScheduleStore) ReplaceForUser(_ context.Context, userID string, schedules []*domain.NotificationSchedule) error {
	if s.err != nil {
		return s.err
	}
	delete(s.byUser, userID)
	if len(schedules) > 0 {
		s.byUser[userID] = append([]*domain.NotificationSchedule(nil), schedules...)
	}
	return nil
}

func (s *fakeScheduleStore) FindByUserID(_ context.Context, userID string) ([]*domain.NotificationSchedule, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.byUser[userID], nil
}

func (s *fakeScheduleStore) FindActive(_ context.Context) ([]*domain.NotificationSchedule, error) {
	if s.err != nil {
		return nil, s.err
	}
	var all []*domain.NotificationSchedule
	for _, schedules := range s.byUser {
		for _, sched := range schedules {
			if sched.IsActive {
				all = append(all, sched)
			}
		}
	}
	return all, nil
}

type fakePreferencesStore struct {
	prefs map[string]*domain.NotificationPreferences
	err   error
}

func newFakePreferencesStore() *fakePreferencesStore {
	return &fakePreferencesStore{prefs: make(map[string]*domain.NotificationPreferences)}
}

func (s *fakePreferencesStore) GetByUserID(_ context.Context, userID string) (*domain.NotificationPreferences, error) {
	if s.err != nil {
		return nil, s.err
	}
	if p, ok := s.prefs[userID]; ok {
		return p, nil
	}
	return domain.DefaultPreferences(userID), nil
}

func (s *fakePreferencesStore) Upsert(_ context.Context, prefs *domain.NotificationPreferences) error {
	if s.err != nil {
		return s.err
	}
	s.prefs[prefs.UserID] = prefs
	return nil
}

type fakeHistoryStore struct {
	byUser map[string][]*domain.NotificationHistoryEntry
	err    error
}

func newFakeHistoryStore() *fakeHistoryStore {
	return &fakeHistoryStore{byUser: make(map[string][]*domain.NotificationHistoryEntry)}
}

func (s *fakeHistoryStore) Insert(_ context.Context, entry *domain.NotificationHistoryEntry) error {
	if s.err != nil {
		return s.err
	}
	s.byUser[entry.UserID] = append(s.byUser[entry.UserID], entry)
	return nil
}

func (s *fakeHistoryStore) TrimToLimit(_ context.Context, userID string, limit int) error {
	if s.err != nil {
		return s.err
	}
	entries := s.byUser[userID]
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].SentAt.After(entries[j].SentAt)
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	s.byUser[userID] = entries
	return nil
}

func (s *fakeHistoryStore) FindByUserID(_ context.Context, userID string) ([]*domain.NotificationHistoryEntry, error) {
	if s.err != nil {
		return nil, s.err
	}
	entries := append([]*domain.NotificationHistoryEntry(nil), s.byUser[userID]...)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].SentAt.After(entries[j].SentAt)
	})
	return entries, nil
}

func (s *fakeHistoryStore) FindByID(_ context.Context, userID, id string) (*domain.NotificationHistoryEntry, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, e := range s.byUser[userID] {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

type fakeTemplateStore struct {
	byTrigger map[domain.TriggerType]*domain.MessageTemplate
	err       error
}

func (s *fakeTemplateStore) FindByTrigger(_ context.Context, trigger domain.TriggerType) (*domain.MessageTemplate, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.byTrigger[trigger], nil
}

type sentMessage struct {
	To    sender.Recipient
	Title string
	Body  string
}

type fakeSender struct {
	channel domain.Channel
	err     error
	sent    []sentMessage
}

func (s *fakeSender) Channel() domain.Channel {
	return s.channel
}

func (s *fakeSender) Send(_ context.Context, to sender.Recipient, title, body string) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, sentMessage{To: to, Title: title, Body: body})
	return nil
}
