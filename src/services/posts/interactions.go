package posts

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/theleywin/talentnest/src/models"
	"github.com/theleywin/talentnest/src/store"
)

// Comment appends a comment by user. The post author is notified and
// emailed unless they commented on their own post.
func (s *Service) Comment(ctx context.Context, postID primitive.ObjectID, user *models.User, content string) (*models.PostDto, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyComment
	}

	if _, err := s.find(ctx, postID); err != nil {
		return nil, err
	}

	post, err := s.posts.PushComment(ctx, postID, models.Comment{User: user.Id, Content: content})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, errors.Wrap(err, "posts.Comment")
	}

	if post.Author != user.Id {
		commenter := user.Name
		s.effects.Go(ctx, "comment-notification", func(ctx context.Context) error {
			return s.announceComment(ctx, post, user.Id, commenter, content)
		})
	}

	return s.populateOne(ctx, post)
}

func (s *Service) announceComment(ctx context.Context, post *models.Post, commenterID primitive.ObjectID, commenterName, content string) error {
	s.notifications.Append(ctx, models.Notification{
		Recipient:   post.Author,
		Type:        models.NotificationTypeComment,
		RelatedUser: commenterID,
		RelatedPost: post.Id,
	})

	author, err := s.users.FindUser(ctx, post.Author)
	if err != nil {
		return errors.Wrap(err, "load post author")
	}
	postURL := s.clientURL + "/post/" + post.Id.Hex()
	s.mail.SendCommentNotificationEmail(ctx, author.Email, author.Name, commenterName, postURL, content)
	return nil
}

// Like toggles userID's like on the post. Liking someone else's post
// notifies its author.
func (s *Service) Like(ctx context.Context, postID, userID primitive.ObjectID) (*models.PostDto, error) {
	post, err := s.find(ctx, postID)
	if err != nil {
		return nil, err
	}

	liking := !post.LikedBy(userID)
	if liking {
		post, err = s.posts.AddLike(ctx, postID, userID)
	} else {
		post, err = s.posts.RemoveLike(ctx, postID, userID)
	}
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, errors.Wrap(err, "posts.Like")
	}

	if liking && post.Author != userID {
		n := models.Notification{
			Recipient:   post.Author,
			Type:        models.NotificationTypeLike,
			RelatedUser: userID,
			RelatedPost: post.Id,
		}
		s.effects.Go(ctx, "like-notification", func(ctx context.Context) error {
			s.notifications.Append(ctx, n)
			return nil
		})
	}

	return s.populateOne(ctx, post)
}
