// Package store holds the MongoDB-backed repositories.
package store

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	UsersCollection         = "users"
	ConnectionsCollection   = "connections"
	NotificationsCollection = "notifications"
	PostsCollection         = "posts"
)

var (
	// ErrNotFound indicates no document matched the query.
	ErrNotFound = errors.New("document not found")
	// ErrDuplicate indicates a write violated a unique index.
	ErrDuplicate = errors.New("duplicate key")
)

// translate maps driver errors onto the store sentinels and tags the rest with op.
func translate(err error, op string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return errors.Wrapf(ErrDuplicate, "%s: %v", op, err)
	default:
		return errors.Wrap(err, op)
	}
}

// Transactor runs a unit of work inside a MongoDB multi-document transaction
// when enabled (replica set required). Disabled, it calls fn directly.
type Transactor struct {
	client  *mongo.Client
	enabled bool
}

func NewTransactor(client *mongo.Client, enabled bool) *Transactor {
	return &Transactor{client: client, enabled: enabled}
}

func (t *Transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if t == nil || !t.enabled || t.client == nil {
		return fn(ctx)
	}

	session, err := t.client.StartSession()
	if err != nil {
		return errors.Wrap(err, "store.Transactor.StartSession")
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
