// Package notifications records user-facing events and serves them back to
// their recipient.
package notifications

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"

	"github.com/theleywin/talentnest/src/apperr"
	"github.com/theleywin/talentnest/src/models"
	"github.com/theleywin/talentnest/src/store"
)

var ErrNotificationNotFound = apperr.New(apperr.CodeNotificationNotFound, "Notification not found")

type notificationStore interface {
	Insert(ctx context.Context, n *models.Notification) error
	ListByRecipient(ctx context.Context, recipient primitive.ObjectID) ([]models.Notification, error)
	MarkRead(ctx context.Context, id, recipient primitive.ObjectID) (*models.Notification, error)
	Delete(ctx context.Context, id, recipient primitive.ObjectID) error
}

type userDirectory interface {
	FindSummaries(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.UserDto, error)
}

type postDirectory interface {
	FindPreviews(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.PostPreview, error)
}

type Service struct {
	log           *slog.Logger
	notifications notificationStore
	users         userDirectory
	posts         postDirectory
}

func NewService(logger *slog.Logger, notifications notificationStore, users userDirectory, posts postDirectory) *Service {
	return &Service{
		log:           logger.With("service", "notifications"),
		notifications: notifications,
		users:         users,
		posts:         posts,
	}
}

// Append stores n. A failure is logged and otherwise ignored; callers treat
// notifications as best effort.
func (s *Service) Append(ctx context.Context, n models.Notification) {
	if err := s.notifications.Insert(ctx, &n); err != nil {
		s.log.ErrorContext(ctx, "append notification",
			slog.String("recipient", n.Recipient.Hex()),
			slog.String("type", string(n.Type)),
			slog.String("error", err.Error()),
		)
	}
}

// List returns userID's notifications, newest first, with the related user
// and post populated.
func (s *Service) List(ctx context.Context, userID primitive.ObjectID) ([]models.NotificationDto, error) {
	list, err := s.notifications.ListByRecipient(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "notifications.List")
	}

	var userIDs, postIDs []primitive.ObjectID
	for _, n := range list {
		if !n.RelatedUser.IsZero() {
			userIDs = append(userIDs, n.RelatedUser)
		}
		if !n.RelatedPost.IsZero() {
			postIDs = append(postIDs, n.RelatedPost)
		}
	}

	var (
		users map[primitive.ObjectID]models.UserDto
		posts map[primitive.ObjectID]models.PostPreview
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		users, err = s.users.FindSummaries(gctx, userIDs)
		return err
	})
	g.Go(func() error {
		var err error
		posts, err = s.posts.FindPreviews(gctx, postIDs)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "notifications.List")
	}

	out := make([]models.NotificationDto, 0, len(list))
	for _, n := range list {
		dto := models.NotificationDto{
			ID:        n.Id,
			Recipient: n.Recipient,
			Type:      n.Type,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
			UpdatedAt: n.UpdatedAt,
		}
		if u, ok := users[n.RelatedUser]; ok {
			dto.RelatedUser = &u
		}
		if p, ok := posts[n.RelatedPost]; ok {
			dto.RelatedPost = &p
		}
		out = append(out, dto)
	}
	return out, nil
}

func (s *Service) MarkRead(ctx context.Context, id, userID primitive.ObjectID) (*models.Notification, error) {
	n, err := s.notifications.MarkRead(ctx, id, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, errors.Wrap(err, "notifications.MarkRead")
	}
	return n, nil
}

func (s *Service) Delete(ctx context.Context, id, userID primitive.ObjectID) error {
	if err := s.notifications.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotificationNotFound
		}
		return errors.Wrap(err, "notifications.Delete")
	}
	return nil
}
