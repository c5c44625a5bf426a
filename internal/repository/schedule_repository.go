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

const schedulesCollection = "notification_schedules"

// ScheduleRepository handles notification schedule data operations
type ScheduleRepository struct {
	client *mongodb.MongoClient
}

// NewScheduleRepository creates a new schedule repository
func NewScheduleRepository(client *mongodb.MongoClient) *ScheduleRepository {
	return &ScheduleRepository{client: client}
}

// EnsureIndexes creates indexes for schedule lookups
func (r *ScheduleRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetName("user_idx"),
		},
		{
			Keys:    bson.D{{Key: "is_active", Value: 1}},
			Options: options.Index().SetName("is_active_idx"),
		},
	}
	return r.client.CreateIndexes(ctx, schedulesCollection, indexes)
}

// ReplaceForUser discards every stored schedule for the user and inserts the
// new set. The stored set always mirrors the current profile's peak windows;
// an empty set is a valid terminal state.
func (r *ScheduleRepository) ReplaceForUser(ctx context.Context, userID string, schedules []*domain.NotificationSchedule) error {
	coll := r.client.Collection(schedulesCollection)

	if _, err := coll.DeleteMany(ctx, bson.M{"user_id": userID}); err != nil {
		return err
	}

	if len(schedules) == 0 {
		return nil
	}

	now := time.Now()
	docs := make([]interface{}, 0, len(schedules))
	for _, s := range schedules {
		s.ID = primitive.NewObjectID()
		s.CreatedAt = now
		s.UpdatedAt = now
		docs = append(docs, s)
	}

	_, err := coll.InsertMany(ctx, docs)
	return err
}

// FindByUserID returns the user's current schedule set
func (r *ScheduleRepository) FindByUserID(ctx context.Context, userID string) ([]*domain.NotificationSchedule, error) {
	cursor, err := r.client.Collection(schedulesCollection).
		Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var schedules []*domain.NotificationSchedule
	if err = cursor.All(ctx, &schedules); err != nil {
		return nil, err
	}
	return schedules, nil
}

// FindActive returns all active schedules across users, for the poller
func (r *ScheduleRepository) FindActive(ctx context.Context) ([]*domain.NotificationSchedule, error) {
	cursor, err := r.client.Collection(schedulesCollection).
		Find(ctx, bson.M{"is_active": true})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var schedules []*domain.NotificationSchedule
	if err = cursor.All(ctx, &schedules); err != nil {
		return nil, err
	}
	return schedules, nil
}
