package posts

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/theleywin/talentnest/src/models"
	"github.com/theleywin/talentnest/src/store"
)

// Feed returns the posts of user and of everyone user is connected to,
// newest first.
func (s *Service) Feed(ctx context.Context, user *models.User) ([]models.PostDto, error) {
	authors := append([]primitive.ObjectID{user.Id}, user.Connections...)

	list, err := s.posts.FindByAuthors(ctx, authors)
	if err != nil {
		return nil, errors.Wrap(err, "posts.Feed")
	}
	return s.populate(ctx, list)
}

func (s *Service) Create(ctx context.Context, authorID primitive.ObjectID, in CreateInput) (*models.PostDto, error) {
	post := &models.Post{
		Author:  authorID,
		Content: strings.TrimSpace(in.Content),
		Image:   strings.TrimSpace(in.Image),
	}
	if post.Content == "" && post.Image == "" {
		return nil, ErrEmptyPost
	}

	if err := s.posts.Insert(ctx, post); err != nil {
		return nil, errors.Wrap(err, "posts.Create")
	}
	s.log.InfoContext(ctx, "post created", slog.String("post_id", post.Id.Hex()))
	return s.populateOne(ctx, post)
}

func (s *Service) Get(ctx context.Context, id primitive.ObjectID) (*models.PostDto, error) {
	post, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.populateOne(ctx, post)
}

// Delete removes the post if userID wrote it.
func (s *Service) Delete(ctx context.Context, id, userID primitive.ObjectID) error {
	post, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if post.Author != userID {
		return ErrNotAuthor
	}

	if err := s.posts.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrPostNotFound
		}
		return errors.Wrap(err, "posts.Delete")
	}
	s.log.InfoContext(ctx, "post deleted", slog.String("post_id", id.Hex()))
	return nil
}

func (s *Service) find(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, errors.Wrap(err, "posts.find")
	}
	return post, nil
}

func (s *Service) populateOne(ctx context.Context, post *models.Post) (*models.PostDto, error) {
	dtos, err := s.populate(ctx, []models.Post{*post})
	if err != nil {
		return nil, err
	}
	return &dtos[0], nil
}

// populate resolves post authors and commenters in one lookup.
func (s *Service) populate(ctx context.Context, list []models.Post) ([]models.PostDto, error) {
	seen := map[primitive.ObjectID]struct{}{}
	var ids []primitive.ObjectID
	add := func(id primitive.ObjectID) {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	for _, p := range list {
		add(p.Author)
		for _, c := range p.Comments {
			add(c.User)
		}
	}

	users, err := s.users.FindSummaries(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "posts.populate")
	}
	summary := func(id primitive.ObjectID) models.UserDto {
		if u, ok := users[id]; ok {
			return u
		}
		return models.UserDto{ID: id}
	}

	out := make([]models.PostDto, 0, len(list))
	for _, p := range list {
		comments := make([]models.CommentDto, 0, len(p.Comments))
		for _, c := range p.Comments {
			comments = append(comments, models.CommentDto{
				ID:        c.Id,
				Content:   c.Content,
				User:      summary(c.User),
				CreatedAt: c.CreatedAt,
			})
		}
		likes := p.Likes
		if likes == nil {
			likes = []primitive.ObjectID{}
		}
		out = append(out, models.PostDto{
			ID:        p.Id,
			Author:    summary(p.Author),
			Content:   p.Content,
			Image:     p.Image,
			Likes:     likes,
			Comments:  comments,
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
		})
	}
	return out, nil
}
