package repository

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/soberpath/go-notification-service/internal/domain"
	"github.com/soberpath/go-notification-service/internal/shared/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const templatesCollection = "message_templates"

const (
	maxCacheSize    = 100
	maxCacheKeyLen  = 128
	maxTemplateSize = 64 * 1024
)

// TemplateCache holds cached message templates with a TTL and size cap
type TemplateCache struct {
	templates map[string]*domain.MessageTemplate
	mu        sync.RWMutex
	ttl       time.Duration
	entries   map[string]time.Time
	maxSize   int
}

// NewTemplateCache creates a new template cache
func NewTemplateCache(ttl time.Duration) *TemplateCache {
	return &TemplateCache{
		templates: make(map[string]*domain.MessageTemplate),
		entries:   make(map[string]time.Time),
		ttl:       ttl,
		maxSize:   maxCacheSize,
	}
}

func validateCacheKey(key string) error {
	if len(key) == 0 {
		return errors.New("cache key cannot be empty")
	}
	if len(key) > maxCacheKeyLen {
		return errors.New("cache key exceeds maximum length")
	}
	if strings.ContainsAny(key, "\x00\n\r") {
		return errors.New("cache key contains invalid characters")
	}
	return nil
}

// Get retrieves a template from cache
func (c *TemplateCache) Get(key string) (*domain.MessageTemplate, bool) {
	if err := validateCacheKey(key); err != nil {
		return nil, false
	}

	c.mu.RLock()
	template, exists := c.templates[key]
	entryTime, hasEntry := c.entries[key]
	c.mu.RUnlock()

	if !exists {
		return nil, false
	}

	if !hasEntry || time.Since(entryTime) > c.ttl {
		c.mu.Lock()
		delete(c.templates, key)
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false
	}

	return template, true
}

// Set stores a template in cache
func (c *TemplateCache) Set(key string, template *domain.MessageTemplate) error {
	if err := validateCacheKey(key); err != nil {
		return err
	}

	if template != nil {
		if len(template.Title)+len(template.Body) > maxTemplateSize {
			return errors.New("template size exceeds maximum allowed size")
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.templates) >= c.maxSize && c.templates[key] == nil {
		c.evictOldest()
	}

	c.templates[key] = template
	c.entries[key] = time.Now()
	return nil
}

// evictOldest removes the oldest entry (must be called with lock held)
func (c *TemplateCache) evictOldest() {
	var oldestKey string
	var oldestTime time.Time
	first := true

	for key, entryTime := range c.entries {
		if first || entryTime.Before(oldestTime) {
			oldestKey = key
			oldestTime = entryTime
			first = false
		}
	}

	if oldestKey != "" {
		delete(c.templates, oldestKey)
		delete(c.entries, oldestKey)
	}
}

// Invalidate removes a template from cache
func (c *TemplateCache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.templates, key)
	delete(c.entries, key)
}

// TemplateRepository handles stored message template overrides
type TemplateRepository struct {
	client *mongodb.MongoClient
	cache  *TemplateCache
}

// NewTemplateRepository creates a new template repository
func NewTemplateRepository(client *mongodb.MongoClient) *TemplateRepository {
	return &TemplateRepository{
		client: client,
		cache:  NewTemplateCache(5 * time.Minute),
	}
}

// FindByTrigger returns the stored override for a trigger type, or nil when
// the built-in default applies
func (r *TemplateRepository) FindByTrigger(ctx context.Context, trigger domain.TriggerType) (*domain.MessageTemplate, error) {
	key := string(trigger)
	if cached, found := r.cache.Get(key); found {
		return cached, nil
	}

	var template domain.MessageTemplate
	err := r.client.Collection(templatesCollection).
		FindOne(ctx, bson.M{"trigger_type": trigger}).Decode(&template)

	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	_ = r.cache.Set(key, &template)
	return &template, nil
}

// Upsert stores a template override and invalidates its cache entry
func (r *TemplateRepository) Upsert(ctx context.Context, template *domain.MessageTemplate) error {
	now := time.Now()
	template.UpdatedAt = now
	if template.CreatedAt.IsZero() {
		template.CreatedAt = now
	}
	if template.ID.IsZero() {
		template.ID = primitive.NewObjectID()
	}

	filter := bson.M{"trigger_type": template.TriggerType}
	update := bson.M{"$set": template}
	opts := options.Update().SetUpsert(true)

	_, err := r.client.Collection(templatesCollection).UpdateOne(ctx, filter, update, opts)
	if err == nil {
		r.cache.Invalidate(string(template.TriggerType))
	}
	return err
}
