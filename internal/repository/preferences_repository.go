package repository

import (
	"context"
	"time"

	"github.com/soberpath/go-notification-service/internal/domain"
	"github.com/soberpath/go-notification-service/internal/shared/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const preferencesCollection = "notification_preferences"

// PreferencesRepository handles notification preferences data operations
type PreferencesRepository struct {
	client *mongodb.MongoClient
}

// NewPreferencesRepository creates a new preferences repository
func NewPreferencesRepository(client *mongodb.MongoClient) *PreferencesRepository {
	return &PreferencesRepository{client: client}
}

// EnsureIndexes creates the unique per-user index
func (r *PreferencesRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("user_id_unique_idx"),
		},
	}
	return r.client.CreateIndexes(ctx, preferencesCollection, indexes)
}

// GetByUserID retrieves preferences for a user. A user who has never saved
// settings gets the defaults (all channels on, no quiet hours).
func (r *PreferencesRepository) GetByUserID(ctx context.Context, userID string) (*domain.NotificationPreferences, error) {
	var prefs domain.NotificationPreferences
	err := r.client.Collection(preferencesCollection).
		FindOne(ctx, bson.M{"user_id": userID}).Decode(&prefs)

	if err == mongo.ErrNoDocuments {
		return domain.DefaultPreferences(userID), nil
	}
	if err != nil {
		return nil, err
	}

	return &prefs, nil
}

// Upsert stores the user's preferences, replacing any prior record
func (r *PreferencesRepository) Upsert(ctx context.Context, prefs *domain.NotificationPreferences) error {
	now := time.Now()
	prefs.UpdatedAt = now
	if prefs.CreatedAt.IsZero() {
		prefs.CreatedAt = now
	}

	filter := bson.M{"user_id": prefs.UserID}
	update := bson.M{"$set": prefs}
	opts := options.Update().SetUpsert(true)

	_, err := r.client.Collection(preferencesCollection).UpdateOne(ctx, filter, update, opts)
	return err
}
