package connections

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/theleywin/talentnest/src/models"
	"github.com/theleywin/talentnest/src/store"
)

// Create opens a pending request from senderID to recipientID and returns its id.
func (s *Service) Create(ctx context.Context, senderID, recipientID primitive.ObjectID) (primitive.ObjectID, error) {
	if senderID == recipientID {
		return primitive.NilObjectID, ErrSelfRequest
	}

	sender, recipient, err := s.loadPair(ctx, senderID, recipientID)
	if err != nil {
		return primitive.NilObjectID, err
	}

	connected, err := s.reconcile(ctx, sender, recipient)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if connected {
		return primitive.NilObjectID, ErrAlreadyConnected
	}

	_, err = s.requests.FindPendingBetween(ctx, senderID, recipientID)
	switch {
	case err == nil:
		return primitive.NilObjectID, ErrDuplicatePending
	case !errors.Is(err, store.ErrNotFound):
		return primitive.NilObjectID, errors.Wrap(err, "connections.Create")
	}

	req := &models.Connection{
		Sender:    senderID,
		Recipient: recipientID,
		Status:    models.ConnectionStatusPending,
	}
	if err := s.requests.InsertRequest(ctx, req); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return primitive.NilObjectID, ErrDuplicatePending
		}
		return primitive.NilObjectID, errors.Wrap(err, "connections.Create")
	}

	s.log.InfoContext(ctx, "connection request created",
		slog.String("request_id", req.Id.Hex()),
		slog.String("sender", senderID.Hex()),
		slog.String("recipient", recipientID.Hex()),
	)
	return req.Id, nil
}

// Accept moves a pending request to accepted and connects both parties.
// The sender is notified and emailed after the transition has committed.
func (s *Service) Accept(ctx context.Context, requestID, actingUserID primitive.ObjectID) error {
	if _, err := s.authorize(ctx, requestID, actingUserID); err != nil {
		return err
	}

	var (
		accepted *models.Connection
		applied  bool
	)
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		req, err := s.transition(ctx, requestID, models.ConnectionStatusAccepted)
		if err != nil {
			return err
		}
		accepted = req
		applied, err = s.apply(ctx, req)
		return err
	})
	if err != nil {
		return err
	}

	if !applied {
		s.log.InfoContext(ctx, "connection removed while accepting",
			slog.String("request_id", requestID.Hex()),
		)
		return nil
	}

	s.log.InfoContext(ctx, "connection request accepted",
		slog.String("request_id", requestID.Hex()),
		slog.String("sender", accepted.Sender.Hex()),
		slog.String("recipient", accepted.Recipient.Hex()),
	)

	s.scheduleAnnouncement(ctx, accepted)
	return nil
}

// Reject moves a pending request to rejected. Connection sets are untouched.
func (s *Service) Reject(ctx context.Context, requestID, actingUserID primitive.ObjectID) error {
	if _, err := s.authorize(ctx, requestID, actingUserID); err != nil {
		return err
	}

	if _, err := s.transition(ctx, requestID, models.ConnectionStatusRejected); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "connection request rejected", slog.String("request_id", requestID.Hex()))
	return nil
}

// Remove disconnects userA and userB in both directions. It is idempotent.
// The pair's acceptances are marked severed and pending requests are left
// alone, so the pair may request again at once.
func (s *Service) Remove(ctx context.Context, userA, userB primitive.ObjectID) error {
	if userA == userB {
		return nil
	}

	if _, _, err := s.loadPair(ctx, userA, userB); err != nil {
		return err
	}

	// Severing first keeps an acceptance still in flight from restoring the edges.
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.requests.SeverAccepted(ctx, userA, userB); err != nil {
			return errors.Wrap(err, "connections.Remove")
		}
		return s.disconnect(ctx, userA, userB)
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "connection removed",
		slog.String("user_a", userA.Hex()),
		slog.String("user_b", userB.Hex()),
	)
	return nil
}

// authorize loads the request and checks that actingUserID may resolve it.
func (s *Service) authorize(ctx context.Context, requestID, actingUserID primitive.ObjectID) (*models.Connection, error) {
	req, err := s.requests.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, errors.Wrap(err, "connections.authorize")
	}
	if req.Recipient != actingUserID {
		return nil, ErrNotAuthorized
	}
	if req.Status != models.ConnectionStatusPending {
		return nil, ErrAlreadyProcessed
	}
	return req, nil
}

// transition applies pending -> next. Losing a race to a concurrent
// accept or reject yields ErrAlreadyProcessed.
func (s *Service) transition(ctx context.Context, requestID primitive.ObjectID, next models.ConnectionStatus) (*models.Connection, error) {
	req, err := s.requests.ConditionalUpdateStatus(ctx, requestID, models.ConnectionStatusPending, next)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrAlreadyProcessed
		}
		return nil, errors.Wrap(err, "connections.transition")
	}
	return req, nil
}

// apply writes both edges of an accepted request and marks it applied. When a
// removal severed the request meanwhile the edges are pulled again and apply
// reports false.
func (s *Service) apply(ctx context.Context, req *models.Connection) (bool, error) {
	if err := s.connect(ctx, req.Sender, req.Recipient); err != nil {
		return false, errors.Wrap(err, "connections.apply")
	}

	err := s.requests.MarkApplied(ctx, req.Id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return false, s.disconnect(ctx, req.Sender, req.Recipient)
	case err != nil:
		return false, errors.Wrap(err, "connections.apply")
	}
	return true, nil
}

func (s *Service) connect(ctx context.Context, a, b primitive.ObjectID) error {
	if err := s.users.AddConnection(ctx, a, b); err != nil {
		return err
	}
	return s.users.AddConnection(ctx, b, a)
}

func (s *Service) disconnect(ctx context.Context, a, b primitive.ObjectID) error {
	if err := s.users.RemoveConnection(ctx, a, b); err != nil {
		return errors.Wrap(err, "connections.disconnect")
	}
	if err := s.users.RemoveConnection(ctx, b, a); err != nil {
		return errors.Wrap(err, "connections.disconnect")
	}
	return nil
}

// scheduleAnnouncement notifies and emails the sender of an accepted request
// in the background. Only the first caller per request announces.
func (s *Service) scheduleAnnouncement(ctx context.Context, req *models.Connection) {
	s.effects.Go(ctx, "connection-accepted", func(ctx context.Context) error {
		claimed, err := s.requests.ClaimAnnouncement(ctx, req.Id)
		if err != nil {
			return errors.Wrap(err, "claim announcement")
		}
		if !claimed {
			return nil
		}
		return s.announceAccepted(ctx, req)
	})
}

func (s *Service) announceAccepted(ctx context.Context, req *models.Connection) error {
	sender, err := s.users.FindUser(ctx, req.Sender)
	if err != nil {
		return errors.Wrap(err, "load sender")
	}
	recipient, err := s.users.FindUser(ctx, req.Recipient)
	if err != nil {
		return errors.Wrap(err, "load recipient")
	}

	s.notifications.Append(ctx, models.Notification{
		Recipient:   sender.Id,
		Type:        models.NotificationTypeConnectionAccepted,
		RelatedUser: recipient.Id,
	})

	profileURL := s.clientURL + "/profile/" + recipient.Username
	s.mail.SendConnectionAcceptedEmail(ctx, sender.Email, sender.Name, recipient.Name, profileURL)
	return nil
}

func (s *Service) loadPair(ctx context.Context, a, b primitive.ObjectID) (*models.User, *models.User, error) {
	userA, err := s.loadUser(ctx, a)
	if err != nil {
		return nil, nil, err
	}
	userB, err := s.loadUser(ctx, b)
	if err != nil {
		return nil, nil, err
	}
	return userA, userB, nil
}

func (s *Service) loadUser(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user, err := s.users.FindUser(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, "connections.loadUser")
	}
	return user, nil
}
