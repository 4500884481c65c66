package notification

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const collectionName = "notifications"

//go:generate mockgen -source=notification_store.go -destination=mock/notification_store_mock.go -package=mock

type Store interface {
	// Insert reports false when a notification with the same EventKey already exists.
	Insert(ctx context.Context, n *Notification) (bool, error)
	ListByUser(ctx context.Context, userID string, unreadOnly bool, page, pageSize int) ([]Notification, int64, error)
	MarkRead(ctx context.Context, userID string, id bson.ObjectID, at time.Time) (bool, error)
}

type mongoStore struct {
	coll *mongo.Collection
}

func NewStore(ctx context.Context, db *mongo.Database) (Store, error) {
	coll := db.Collection(collectionName)

	if _, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "event_key", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
	}); err != nil {
		return nil, fmt.Errorf("create notifications indexes: %w", err)
	}

	return &mongoStore{coll: coll}, nil
}

func (s *mongoStore) Insert(ctx context.Context, n *Notification) (bool, error) {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	res, err := s.coll.UpdateOne(ctx,
		bson.M{"event_key": n.EventKey},
		bson.M{"$setOnInsert": n},
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		return false, fmt.Errorf("upsert notification: %w", err)
	}
	if res.UpsertedCount == 0 {
		return false, nil
	}
	if id, ok := res.UpsertedID.(bson.ObjectID); ok {
		n.ID = id
	}
	return true, nil
}

func (s *mongoStore) ListByUser(ctx context.Context, userID string, unreadOnly bool, page, pageSize int) ([]Notification, int64, error) {
	filter := bson.M{"user_id": userID}
	if unreadOnly {
		filter["read"] = false
	}

	total, err := s.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count notifications: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find notifications: %w", err)
	}

	results := []Notification{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, 0, fmt.Errorf("decode notifications: %w", err)
	}
	return results, total, nil
}

func (s *mongoStore) MarkRead(ctx context.Context, userID string, id bson.ObjectID, at time.Time) (bool, error) {
	res, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": id, "user_id": userID},
		bson.M{"$set": bson.M{"read": true, "read_at": at}},
	)
	if err != nil {
		return false, fmt.Errorf("mark notification read: %w", err)
	}
	return res.MatchedCount > 0, nil
}
