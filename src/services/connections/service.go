// Package connections is the connection-request lifecycle engine. It is the
// only component allowed to write a user's connection set.
package connections

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/theleywin/talentnest/src/models"
)

// identityStore is the user store seen by the engine. AddConnection and
// RemoveConnection are not exposed to any other service.
type identityStore interface {
	FindUser(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindUsers(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error)
	AddConnection(ctx context.Context, userID, otherID primitive.ObjectID) error
	RemoveConnection(ctx context.Context, userID, otherID primitive.ObjectID) error
}

// ledger holds connection requests.
type ledger interface {
	InsertRequest(ctx context.Context, req *models.Connection) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Connection, error)
	FindPendingBetween(ctx context.Context, a, b primitive.ObjectID) (*models.Connection, error)
	ConditionalUpdateStatus(ctx context.Context, id primitive.ObjectID, expected, next models.ConnectionStatus) (*models.Connection, error)
	FindUnappliedAccepted(ctx context.Context, a, b primitive.ObjectID) ([]models.Connection, error)
	HasActiveAcceptance(ctx context.Context, a, b primitive.ObjectID) (bool, error)
	SeverAccepted(ctx context.Context, a, b primitive.ObjectID) error
	MarkApplied(ctx context.Context, id primitive.ObjectID) error
	ClaimAnnouncement(ctx context.Context, id primitive.ObjectID) (bool, error)
	ListPendingForRecipient(ctx context.Context, recipient primitive.ObjectID) ([]models.Connection, error)
}

type txManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// notificationSink appends user notifications and logs its own failures.
type notificationSink interface {
	Append(ctx context.Context, n models.Notification)
}

// mailer delivers best-effort email and logs its own failures.
type mailer interface {
	SendConnectionAcceptedEmail(ctx context.Context, to, senderName, recipientName, profileURL string)
}

type effectRunner interface {
	Go(ctx context.Context, name string, fn func(ctx context.Context) error)
}

// Service implements the connection lifecycle.
type Service struct {
	log           *slog.Logger
	users         identityStore
	requests      ledger
	tx            txManager
	notifications notificationSink
	mail          mailer
	effects       effectRunner
	clientURL     string
}

func NewService(
	logger *slog.Logger,
	users identityStore,
	requests ledger,
	tx txManager,
	notifications notificationSink,
	mail mailer,
	effects effectRunner,
	clientURL string,
) *Service {
	return &Service{
		log:           logger.With("service", "connections"),
		users:         users,
		requests:      requests,
		tx:            tx,
		notifications: notifications,
		mail:          mail,
		effects:       effects,
		clientURL:     clientURL,
	}
}
