package connections

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/theleywin/talentnest/src/models"
)

// ListRequests returns the pending requests addressed to userID, newest
// first, each with its sender populated. Requests from deleted users are skipped.
func (s *Service) ListRequests(ctx context.Context, userID primitive.ObjectID) ([]models.ConnectionRequestDto, error) {
	pending, err := s.requests.ListPendingForRecipient(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "connections.ListRequests")
	}

	senderIDs := make([]primitive.ObjectID, 0, len(pending))
	for _, req := range pending {
		senderIDs = append(senderIDs, req.Sender)
	}
	senders, err := s.users.FindUsers(ctx, senderIDs)
	if err != nil {
		return nil, errors.Wrap(err, "connections.ListRequests")
	}
	byID := make(map[primitive.ObjectID]*models.User, len(senders))
	for i := range senders {
		byID[senders[i].Id] = &senders[i]
	}

	out := make([]models.ConnectionRequestDto, 0, len(pending))
	for _, req := range pending {
		sender, ok := byID[req.Sender]
		if !ok {
			continue
		}
		out = append(out, models.ConnectionRequestDto{
			ID:        req.Id,
			Sender:    sender.ConnectedSummary(),
			Recipient: req.Recipient,
			Status:    req.Status,
			CreatedAt: req.CreatedAt,
			UpdatedAt: req.UpdatedAt,
		})
	}
	return out, nil
}

// ListConnections returns the users connected to userID.
func (s *Service) ListConnections(ctx context.Context, userID primitive.ObjectID) ([]models.ConnectedUserDto, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	connected, err := s.users.FindUsers(ctx, user.Connections)
	if err != nil {
		return nil, errors.Wrap(err, "connections.ListConnections")
	}

	out := make([]models.ConnectedUserDto, 0, len(connected))
	for i := range connected {
		out = append(out, connected[i].ConnectedSummary())
	}
	return out, nil
}
