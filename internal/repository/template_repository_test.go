package repository

import (
	"testing"
	"time"

	"github.com/soberpath/go-notification-service/internal/domain"
)

// TestTemplateCache tests the template caching functionality
func TestTemplateCache(t *testing.T) {
	cache := NewTemplateCache(1 * time.Second)

	template := &domain.MessageTemplate{
		TriggerType: domain.TriggerCraving,
		Title:       "You've Got This",
		Body:        "Cravings pass.",
	}

	key := string(domain.TriggerCraving)
	if err := cache.Set(key, template); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	retrieved, found := cache.Get(key)
	if !found {
		t.Error("Expected to find cached template")
	}
	if retrieved.Title != template.Title {
		t.Errorf("Expected template title %s, got %s", template.Title, retrieved.Title)
	}

	// Test cache expiration
	time.Sleep(1100 * time.Millisecond)
	_, found = cache.Get(key)
	if found {
		t.Error("Expected cache entry to be expired")
	}
}

// TestTemplateCacheInvalidate tests cache invalidation
func TestTemplateCacheInvalidate(t *testing.T) {
	cache := NewTemplateCache(5 * time.Minute)

	template := &domain.MessageTemplate{
		TriggerType: domain.TriggerMilestone,
		Title:       "Milestone Reached",
		Body:        "Keep going.",
	}

	key := string(domain.TriggerMilestone)
	_ = cache.Set(key, template)

	if _, found := cache.Get(key); !found {
		t.Error("Expected to find cached template")
	}

	cache.Invalidate(key)

	if _, found := cache.Get(key); found {
		t.Error("Expected cache entry to be invalidated")
	}
}

// TestTemplateCacheKeyValidation tests cache key validation
func TestTemplateCacheKeyValidation(t *testing.T) {
	cache := NewTemplateCache(5 * time.Minute)

	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{"valid key", "peak_time", false},
		{"empty key", "", true},
		{"key too long", string(make([]byte, 200)), true},
		{"key with null byte", "peak\x00time", true},
		{"key with newline", "peak\ntime", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cache.Set(tt.key, &domain.MessageTemplate{Title: "t", Body: "b"})
			if (err != nil) != tt.wantErr {
				t.Errorf("Set(%q) error = %v, wantErr %v", tt.key, err, tt.wantErr)
			}
		})
	}
}

// TestTemplateCacheSizeLimit tests that oversized templates are rejected
func TestTemplateCacheSizeLimit(t *testing.T) {
	cache := NewTemplateCache(5 * time.Minute)

	big := &domain.MessageTemplate{
		Title: "t",
		Body:  string(make([]byte, maxTemplateSize+1)),
	}

	if err := cache.Set("craving", big); err == nil {
		t.Error("Expected oversized template to be rejected")
	}
}
