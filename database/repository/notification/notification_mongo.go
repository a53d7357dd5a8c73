package notificationRepo

import (
	"context"
	"fmt"
	"time"

	"buildlanka/database"
	"buildlanka/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NotificationRepository stores submission acknowledgements written by the
// background worker.
type NotificationRepository interface {
	Create(n *models.Notification) error
	ListByPartner(partnerID string) ([]models.Notification, error)
}

// MongoNotificationRepo implements NotificationRepository using MongoDB.
type MongoNotificationRepo struct {
	coll *mongo.Collection
}

// NewMongoNotificationRepo creates a new NotificationRepository using MongoDB.
func NewMongoNotificationRepo() NotificationRepository {
	return &MongoNotificationRepo{coll: database.Collection("notifications")}
}

func (r *MongoNotificationRepo) Create(n *models.Notification) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, n); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

func (r *MongoNotificationRepo) ListByPartner(partnerID string) ([]models.Notification, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"partnerId": partnerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications for partner %s: %w", partnerID, err)
	}
	defer cursor.Close(ctx)

	var notifications []models.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, fmt.Errorf("failed to decode notifications: %w", err)
	}
	return notifications, nil
}
