package repository

import (
	"context"

	"github.com/soberpath/go-notification-service/internal/domain"
	"github.com/soberpath/go-notification-service/internal/shared/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const historyCollection = "notification_history"

// HistoryRepository handles the capped per-user notification history
type HistoryRepository struct {
	client *mongodb.MongoClient
}

// NewHistoryRepository creates a new history repository
func NewHistoryRepository(client *mongodb.MongoClient) *HistoryRepository {
	return &HistoryRepository{client: client}
}

// EnsureIndexes creates indexes for newest-first history reads
func (r *HistoryRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "sent_at", Value: -1}},
			Options: options.Index().SetName("user_sent_idx"),
		},
	}
	return r.client.CreateIndexes(ctx, historyCollection, indexes)
}

// Insert appends a history entry
func (r *HistoryRepository) Insert(ctx context.Context, entry *domain.NotificationHistoryEntry) error {
	_, err := r.client.Collection(historyCollection).InsertOne(ctx, entry)
	return err
}

// TrimToLimit drops the oldest entries beyond limit for the user
func (r *HistoryRepository) TrimToLimit(ctx context.Context, userID string, limit int) error {
	coll := r.client.Collection(historyCollection)

	opts := options.Find().
		SetSort(bson.M{"sent_at": -1}).
		SetSkip(int64(limit)).
		SetProjection(bson.M{"_id": 1})

	cursor, err := coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	var stale []struct {
		ID string `bson:"_id"`
	}
	if err = cursor.All(ctx, &stale); err != nil {
		return err
	}
	if len(stale) == 0 {
		return nil
	}

	ids := make([]string, 0, len(stale))
	for _, s := range stale {
		ids = append(ids, s.ID)
	}

	_, err = coll.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	return err
}

// FindByUserID returns the user's history, newest first, up to the cap
func (r *HistoryRepository) FindByUserID(ctx context.Context, userID string) ([]*domain.NotificationHistoryEntry, error) {
	opts := options.Find().
		SetSort(bson.M{"sent_at": -1}).
		SetLimit(int64(domain.HistoryLimit))

	cursor, err := r.client.Collection(historyCollection).
		Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []*domain.NotificationHistoryEntry
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// FindByID returns a single history entry owned by the user
func (r *HistoryRepository) FindByID(ctx context.Context, userID, id string) (*domain.NotificationHistoryEntry, error) {
	var entry domain.NotificationHistoryEntry
	err := r.client.Collection(historyCollection).
		FindOne(ctx, bson.M{"_id": id, "user_id": userID}).Decode(&entry)

	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &entry, nil
}

// CountByStatus returns sent/failed counts for the user's retained history
func (r *HistoryRepository) CountByStatus(ctx context.Context, userID string) (map[domain.DeliveryStatus]int64, error) {
	coll := r.client.Collection(historyCollection)
	counts := make(map[domain.DeliveryStatus]int64)

	for _, status := range []domain.DeliveryStatus{domain.DeliverySent, domain.DeliveryFailed} {
		n, err := coll.CountDocuments(ctx, bson.M{"user_id": userID, "status": status})
		if err != nil {
			return nil, err
		}
		counts[status] = n
	}

	return counts, nil
}
