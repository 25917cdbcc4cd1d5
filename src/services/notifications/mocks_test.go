package notifications

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/theleywin/talentnest/src/models"
)

type notificationStoreMock struct {
	InsertFunc          func(ctx context.Context, n *models.Notification) error
	ListByRecipientFunc func(ctx context.Context, recipient primitive.ObjectID) ([]models.Notification, error)
	MarkReadFunc        func(ctx context.Context, id, recipient primitive.ObjectID) (*models.Notification, error)
	DeleteFunc          func(ctx context.Context, id, recipient primitive.ObjectID) error
}

func (m *notificationStoreMock) Insert(ctx context.Context, n *models.Notification) error {
	return m.InsertFunc(ctx, n)
}

func (m *notificationStoreMock) ListByRecipient(ctx context.Context, recipient primitive.ObjectID) ([]models.Notification, error) {
	return m.ListByRecipientFunc(ctx, recipient)
}

func (m *notificationStoreMock) MarkRead(ctx context.Context, id, recipient primitive.ObjectID) (*models.Notification, error) {
	return m.MarkReadFunc(ctx, id, recipient)
}

func (m *notificationStoreMock) Delete(ctx context.Context, id, recipient primitive.ObjectID) error {
	return m.DeleteFunc(ctx, id, recipient)
}

type userDirectoryMock struct {
	FindSummariesFunc func(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.UserDto, error)
}

func (m *userDirectoryMock) FindSummaries(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.UserDto, error) {
	return m.FindSummariesFunc(ctx, ids)
}

type postDirectoryMock struct {
	FindPreviewsFunc func(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.PostPreview, error)
}

func (m *postDirectoryMock) FindPreviews(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.PostPreview, error) {
	return m.FindPreviewsFunc(ctx, ids)
}
