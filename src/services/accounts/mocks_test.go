package accounts

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/theleywin/talentnest/src/models"
)

type userStoreMock struct {
	CreateFunc                func(ctx context.Context, user *models.User) error
	FindUserFunc              func(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByUsernameFunc        func(ctx context.Context, username string) (*models.User, error)
	FindByUsernameOrEmailFunc func(ctx context.Context, username, email string) (*models.User, error)
	SuggestionsFunc           func(ctx context.Context, userID primitive.ObjectID, exclude []primitive.ObjectID, limit int64) ([]models.UserDto, error)
	UpdateProfileFunc         func(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.User, error)
}

func (m *userStoreMock) Create(ctx context.Context, user *models.User) error {
	return m.CreateFunc(ctx, user)
}

func (m *userStoreMock) FindUser(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return m.FindUserFunc(ctx, id)
}

func (m *userStoreMock) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return m.FindByUsernameFunc(ctx, username)
}

func (m *userStoreMock) FindByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error) {
	return m.FindByUsernameOrEmailFunc(ctx, username, email)
}

func (m *userStoreMock) Suggestions(ctx context.Context, userID primitive.ObjectID, exclude []primitive.ObjectID, limit int64) ([]models.UserDto, error) {
	return m.SuggestionsFunc(ctx, userID, exclude, limit)
}

func (m *userStoreMock) UpdateProfile(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.User, error) {
	return m.UpdateProfileFunc(ctx, id, fields)
}

type welcome struct {
	to, name, profileURL string
}

type welcomeMailerMock struct {
	mu   sync.Mutex
	sent []welcome
}

func (m *welcomeMailerMock) SendWelcomeEmail(_ context.Context, to, name, profileURL string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, welcome{to, name, profileURL})
}
