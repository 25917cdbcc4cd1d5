// Package accounts handles signup, login and user profiles.
package accounts

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/theleywin/talentnest/src/models"
)

// userStore is the slice of the user store accounts may use. Connection sets
// are out of reach here.
type userStore interface {
	Create(ctx context.Context, user *models.User) error
	FindUser(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error)
	Suggestions(ctx context.Context, userID primitive.ObjectID, exclude []primitive.ObjectID, limit int64) ([]models.UserDto, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.User, error)
}

type tokenIssuer interface {
	GenerateJWT(userID primitive.ObjectID) (string, error)
	VerifyJWT(token string) (primitive.ObjectID, error)
}

type welcomeMailer interface {
	SendWelcomeEmail(ctx context.Context, to, name, profileURL string)
}

type effectRunner interface {
	Go(ctx context.Context, name string, fn func(ctx context.Context) error)
}

const suggestionLimit = 3

// bcryptCost matches the cost used by existing password hashes.
const bcryptCost = 11

type Service struct {
	log       *slog.Logger
	users     userStore
	tokens    tokenIssuer
	mail      welcomeMailer
	effects   effectRunner
	clientURL string
}

func NewService(
	logger *slog.Logger,
	users userStore,
	tokens tokenIssuer,
	mail welcomeMailer,
	effects effectRunner,
	clientURL string,
) *Service {
	return &Service{
		log:       logger.With("service", "accounts"),
		users:     users,
		tokens:    tokens,
		mail:      mail,
		effects:   effects,
		clientURL: clientURL,
	}
}

func (s *Service) profileURL(username string) string {
	return s.clientURL + "/profile/" + username
}
