package accounts

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/theleywin/talentnest/src/models"
	"github.com/theleywin/talentnest/src/store"
)

// Suggestions returns a few users that user is not connected to yet.
func (s *Service) Suggestions(ctx context.Context, user *models.User) ([]models.UserDto, error) {
	users, err := s.users.Suggestions(ctx, user.Id, user.Connections, suggestionLimit)
	if err != nil {
		return nil, errors.Wrap(err, "accounts.Suggestions")
	}
	return users, nil
}

func (s *Service) PublicProfile(ctx context.Context, username string) (*models.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, "accounts.PublicProfile")
	}
	user.Password = ""
	return user, nil
}

// UpdateProfile applies the allowed profile fields and returns the updated user.
func (s *Service) UpdateProfile(ctx context.Context, userID primitive.ObjectID, in ProfileUpdate) (*models.User, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	fields := in.fields()
	if len(fields) == 0 {
		return s.current(ctx, userID)
	}

	user, err := s.users.UpdateProfile(ctx, userID, fields)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicate):
			return nil, ErrUsernameTaken
		case errors.Is(err, store.ErrNotFound):
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, "accounts.UpdateProfile")
	}
	user.Password = ""
	return user, nil
}

func (s *Service) current(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	user, err := s.users.FindUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, "accounts.current")
	}
	user.Password = ""
	return user, nil
}
