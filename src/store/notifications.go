package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/theleywin/talentnest/src/models"
)

type NotificationStore struct {
	coll *mongo.Collection
}

func NewNotificationStore(db *mongo.Database) *NotificationStore {
	return &NotificationStore{coll: db.Collection(NotificationsCollection)}
}

func (s *NotificationStore) Insert(ctx context.Context, n *models.Notification) error {
	now := time.Now().UTC()
	if n.Id.IsZero() {
		n.Id = primitive.NewObjectID()
	}
	n.CreatedAt, n.UpdatedAt = now, now

	_, err := s.coll.InsertOne(ctx, n)
	return translate(err, "store.NotificationStore.Insert")
}

// ListByRecipient returns the recipient's notifications, newest first.
func (s *NotificationStore) ListByRecipient(ctx context.Context, recipient primitive.ObjectID) ([]models.Notification, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := s.coll.Find(ctx, bson.M{"recipient": recipient}, opts)
	if err != nil {
		return nil, translate(err, "store.NotificationStore.ListByRecipient.Find")
	}
	defer cursor.Close(ctx)

	notifications := []models.Notification{}
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, translate(err, "store.NotificationStore.ListByRecipient.All")
	}
	return notifications, nil
}

// MarkRead flags a notification owned by recipient as read.
func (s *NotificationStore) MarkRead(ctx context.Context, id, recipient primitive.ObjectID) (*models.Notification, error) {
	filter := bson.M{"_id": id, "recipient": recipient}
	update := bson.M{"$set": bson.M{"read": true, "updatedAt": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var n models.Notification
	if err := s.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&n); err != nil {
		return nil, translate(err, "store.NotificationStore.MarkRead")
	}
	return &n, nil
}

// Delete removes a notification owned by recipient.
func (s *NotificationStore) Delete(ctx context.Context, id, recipient primitive.ObjectID) error {
	result, err := s.coll.DeleteOne(ctx, bson.M{"_id": id, "recipient": recipient})
	if err != nil {
		return translate(err, "store.NotificationStore.Delete")
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
