package accounts

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/theleywin/talentnest/src/models"
	"github.com/theleywin/talentnest/src/store"
)

// Session is an authenticated user and the token that proves it.
type Session struct {
	User  *models.User
	Token string
}

// Signup registers a user and sends the welcome email in the background.
func (s *Service) Signup(ctx context.Context, in SignupInput) (*Session, error) {
	in.normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkAvailable(ctx, in.Username, in.Email); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, errors.Wrap(err, "accounts.Signup: hash password")
	}

	user := &models.User{
		Name:     in.Name,
		Username: in.Username,
		Email:    in.Email,
		Password: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			// Lost a race with a concurrent signup.
			if err := s.checkAvailable(ctx, in.Username, in.Email); err != nil {
				return nil, err
			}
			return nil, ErrUsernameTaken
		}
		return nil, errors.Wrap(err, "accounts.Signup")
	}

	token, err := s.tokens.GenerateJWT(user.Id)
	if err != nil {
		return nil, errors.Wrap(err, "accounts.Signup: token")
	}

	s.log.InfoContext(ctx, "user signed up", slog.String("user_id", user.Id.Hex()))

	email, name, url := user.Email, user.Name, s.profileURL(user.Username)
	s.effects.Go(ctx, "welcome-email", func(ctx context.Context) error {
		s.mail.SendWelcomeEmail(ctx, email, name, url)
		return nil
	})

	user.Password = ""
	return &Session{User: user, Token: token}, nil
}

// checkAvailable reports which of username and email is already registered.
func (s *Service) checkAvailable(ctx context.Context, username, email string) error {
	existing, err := s.users.FindByUsernameOrEmail(ctx, username, email)
	switch {
	case err == nil && existing.Username == username:
		return ErrUsernameTaken
	case err == nil:
		return ErrEmailTaken
	case errors.Is(err, store.ErrNotFound):
		return nil
	default:
		return errors.Wrap(err, "accounts.checkAvailable")
	}
}

func (s *Service) Login(ctx context.Context, in LoginInput) (*Session, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.FindByUsername(ctx, in.Username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errors.Wrap(err, "accounts.Login")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateJWT(user.Id)
	if err != nil {
		return nil, errors.Wrap(err, "accounts.Login: token")
	}

	user.Password = ""
	return &Session{User: user, Token: token}, nil
}

// Authenticate resolves a session token to its user.
func (s *Service) Authenticate(ctx context.Context, token string) (*models.User, error) {
	userID, err := s.tokens.VerifyJWT(token)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	user, err := s.users.FindUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, errors.Wrap(err, "accounts.Authenticate")
	}

	user.Password = ""
	return user, nil
}
