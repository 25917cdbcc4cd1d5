// Package posts serves the feed, posts, comments and likes.
package posts

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/theleywin/talentnest/src/apperr"
	"github.com/theleywin/talentnest/src/models"
)

var (
	ErrPostNotFound = apperr.New(apperr.CodePostNotFound, "Post not found")
	ErrNotAuthor    = apperr.New(apperr.CodeNotAuthorized, "You are not authorized to delete this post")
	ErrEmptyPost    = apperr.InvalidArg("Post content cannot be empty")
	ErrEmptyComment = apperr.InvalidArg("Comment content cannot be empty")
)

type postStore interface {
	Insert(ctx context.Context, post *models.Post) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error)
	FindByAuthors(ctx context.Context, authors []primitive.ObjectID) ([]models.Post, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	PushComment(ctx context.Context, postID primitive.ObjectID, comment models.Comment) (*models.Post, error)
	AddLike(ctx context.Context, postID, userID primitive.ObjectID) (*models.Post, error)
	RemoveLike(ctx context.Context, postID, userID primitive.ObjectID) (*models.Post, error)
}

type userDirectory interface {
	FindUser(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindSummaries(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.UserDto, error)
}

type notificationSink interface {
	Append(ctx context.Context, n models.Notification)
}

type commentMailer interface {
	SendCommentNotificationEmail(ctx context.Context, to, recipientName, commenterName, postURL, comment string)
}

type effectRunner interface {
	Go(ctx context.Context, name string, fn func(ctx context.Context) error)
}

type Service struct {
	log           *slog.Logger
	posts         postStore
	users         userDirectory
	notifications notificationSink
	mail          commentMailer
	effects       effectRunner
	clientURL     string
}

func NewService(
	logger *slog.Logger,
	posts postStore,
	users userDirectory,
	notifications notificationSink,
	mail commentMailer,
	effects effectRunner,
	clientURL string,
) *Service {
	return &Service{
		log:           logger.With("service", "posts"),
		posts:         posts,
		users:         users,
		notifications: notifications,
		mail:          mail,
		effects:       effects,
		clientURL:     clientURL,
	}
}

type CreateInput struct {
	Content string `json:"content"`
	Image   string `json:"image"`
}
