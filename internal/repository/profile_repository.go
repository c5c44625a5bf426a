package repository

import (
	"context"
	"time"

	"github.com/soberpath/go-notification-service/internal/domain"
	"github.com/soberpath/go-notification-service/internal/shared/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const profilesCollection = "addiction_profiles"

// ProfileRepository handles addiction profile data operations
type ProfileRepository struct {
	client *mongodb.MongoClient
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(client *mongodb.MongoClient) *ProfileRepository {
	return &ProfileRepository{client: client}
}

// EnsureIndexes creates the unique per-user index backing the
// at-most-one-profile-per-user invariant
func (r *ProfileRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetName("user_idx").SetUnique(true),
		},
	}
	return r.client.CreateIndexes(ctx, profilesCollection, indexes)
}

// GetByUserID retrieves the current profile for a user, or nil when the user
// has never submitted the intake flow
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID string) (*domain.AddictionProfile, error) {
	var profile domain.AddictionProfile
	err := r.client.Collection(profilesCollection).
		FindOne(ctx, bson.M{"user_id": userID}).Decode(&profile)

	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

// Upsert replaces the user's profile wholesale, preserving the original
// creation timestamp across resubmissions. Last write wins.
func (r *ProfileRepository) Upsert(ctx context.Context, profile *domain.AddictionProfile) error {
	now := time.Now()
	profile.UpdatedAt = now

	existing, err := r.GetByUserID(ctx, profile.UserID)
	if err != nil {
		return err
	}
	if existing != nil {
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
	} else {
		profile.ID = primitive.NewObjectID()
		profile.CreatedAt = now
	}

	filter := bson.M{"user_id": profile.UserID}
	update := bson.M{"$set": profile}
	opts := options.Update().SetUpsert(true)

	_, err = r.client.Collection(profilesCollection).UpdateOne(ctx, filter, update, opts)
	return err
}
