package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/soberpath/go-notification-service/internal/domain"
	"github.com/soberpath/go-notification-service/internal/shared/logger"
)

func TestRenderWithoutProfileReturnsDefaultVerbatim(t *testing.T) {
	p := NewPersonalizer(newFakeProfileStore(), nil, logger.NewLogger())

	for trigger, tmpl := range defaultTemplates {
		title, body := p.Render(context.Background(), "user-1", trigger)
		if title != tmpl.Title || body != tmpl.Body {
			t.Errorf("Render(%s) without profile modified the default template", trigger)
		}
	}
}

func TestRenderSubstitutesPlaceholders(t *testing.T) {
	profiles := newFakeProfileStore()
	profiles.profiles["user-1"] = &domain.AddictionProfile{
		UserID:          "user-1",
		AddictionType:   "Smoking",
		MotivationLevel: 7,
		Goals:           "run a marathon",
		CreatedAt:       time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC),
	}

	p := NewPersonalizer(profiles, nil, logger.NewLogger())
	p.now = func() time.Time { return time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC) }

	_, body := p.Render(context.Background(), "user-1", domain.TriggerMilestone)

	if strings.Contains(body, "{{") {
		t.Errorf("unsubstituted placeholder in %q", body)
	}
	if !strings.Contains(body, "smoking") {
		t.Errorf("addiction type should be lower-cased in %q", body)
	}
	// 9d23h elapsed rounds up to 10 days
	if !strings.Contains(body, "10 days") {
		t.Errorf("expected 10 days in %q", body)
	}
	if !strings.Contains(body, "7/10") {
		t.Errorf("expected motivation 7/10 in %q", body)
	}
	if !strings.Contains(body, "run a marathon") {
		t.Errorf("expected goals text in %q", body)
	}
}

func TestRenderEmptyGoalsFallback(t *testing.T) {
	profiles := newFakeProfileStore()
	profiles.profiles["user-1"] = &domain.AddictionProfile{
		UserID:          "user-1",
		AddictionType:   "Gaming",
		MotivationLevel: 5,
		CreatedAt:       time.Now().Add(-48 * time.Hour),
	}

	p := NewPersonalizer(profiles, nil, logger.NewLogger())
	_, body := p.Render(context.Background(), "user-1", domain.TriggerPeakTime)

	if !strings.Contains(body, defaultGoals) {
		t.Errorf("expected generic goals phrase in %q", body)
	}
}

func TestRenderUnknownTriggerFallsBackToMotivation(t *testing.T) {
	p := NewPersonalizer(newFakeProfileStore(), nil, logger.NewLogger())

	title, body := p.Render(context.Background(), "user-1", domain.TriggerType("weekly_digest"))
	want := defaultTemplates[domain.TriggerMotivation]
	if title != want.Title || body != want.Body {
		t.Error("unknown trigger type should render the motivation template")
	}
}

func TestRenderUsesOtherAddictionText(t *testing.T) {
	profiles := newFakeProfileStore()
	profiles.profiles["user-1"] = &domain.AddictionProfile{
		UserID:          "user-1",
		AddictionType:   domain.AddictionCategoryOther,
		OtherAddiction:  "Caffeine",
		MotivationLevel: 5,
		CreatedAt:       time.Now().Add(-24 * time.Hour),
	}

	p := NewPersonalizer(profiles, nil, logger.NewLogger())
	_, body := p.Render(context.Background(), "user-1", domain.TriggerPeakTime)

	if !strings.Contains(body, "caffeine") {
		t.Errorf("expected free-text addiction name in %q", body)
	}
}

func TestRenderTemplateOverride(t *testing.T) {
	profiles := newFakeProfileStore()
	profiles.profiles["user-1"] = &domain.AddictionProfile{
		UserID:          "user-1",
		AddictionType:   "Alcohol",
		MotivationLevel: 9,
		CreatedAt:       time.Now().Add(-24 * time.Hour),
	}

	templates := &fakeTemplateStore{byTrigger: map[domain.TriggerType]*domain.MessageTemplate{
		domain.TriggerCraving: {
			TriggerType: domain.TriggerCraving,
			Title:       "Hold On",
			Body:        "Motivation {{motivation}}/10. You chose this.",
		},
	}}

	p := NewPersonalizer(profiles, templates, logger.NewLogger())
	title, body := p.Render(context.Background(), "user-1", domain.TriggerCraving)

	if title != "Hold On" {
		t.Errorf("title = %q, want override", title)
	}
	if !strings.Contains(body, "9/10") {
		t.Errorf("override body not personalized: %q", body)
	}
}

func TestRenderProfileReadFailureDegradesToDefault(t *testing.T) {
	profiles := newFakeProfileStore()
	profiles.err = context.DeadlineExceeded

	p := NewPersonalizer(profiles, nil, logger.NewLogger())
	title, body := p.Render(context.Background(), "user-1", domain.TriggerCraving)

	want := defaultTemplates[domain.TriggerCraving]
	if title != want.Title || body != want.Body {
		t.Error("profile read failure should degrade to the default template")
	}
}
