package connections

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/theleywin/talentnest/src/models"
	"github.com/theleywin/talentnest/src/store"
)

type Status string

const (
	StatusConnected    Status = "connected"
	StatusPending      Status = "pending"
	StatusReceived     Status = "received"
	StatusNotConnected Status = "notConnected"
)

// Result is the relationship of one user to another. RequestID is set only
// for StatusReceived.
type Result struct {
	Status    Status              `json:"status"`
	RequestID *primitive.ObjectID `json:"requestId,omitempty"`
}

// Status reports how userA relates to userB. Connection is decided by set
// membership, never by request status alone.
func (s *Service) Status(ctx context.Context, userA, userB primitive.ObjectID) (Result, error) {
	a, b, err := s.loadPair(ctx, userA, userB)
	if err != nil {
		return Result{}, err
	}

	connected, err := s.reconcile(ctx, a, b)
	if err != nil {
		return Result{}, err
	}
	if connected {
		return Result{Status: StatusConnected}, nil
	}

	pending, err := s.requests.FindPendingBetween(ctx, userA, userB)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return Result{Status: StatusNotConnected}, nil
	case err != nil:
		return Result{}, errors.Wrap(err, "connections.Status")
	case pending.Sender == userA:
		return Result{Status: StatusPending}, nil
	default:
		id := pending.Id
		return Result{Status: StatusReceived, RequestID: &id}, nil
	}
}

// reconcile repairs the pair's connection sets after an interrupted accept or
// remove and reports whether a and b are connected. a and b must have been
// read before reconcile runs, so every edge they show was written after the
// ledger entry that backs it.
//
// Unapplied acceptances are re-applied and announced. A single edge is
// completed while the pair has an acceptance no removal has severed, and
// pulled otherwise.
func (s *Service) reconcile(ctx context.Context, a, b *models.User) (bool, error) {
	unapplied, err := s.requests.FindUnappliedAccepted(ctx, a.Id, b.Id)
	if err != nil {
		return false, errors.Wrap(err, "connections.reconcile")
	}

	reapplied := 0
	for i := range unapplied {
		req := unapplied[i]
		applied, err := s.apply(ctx, &req)
		if err != nil {
			return false, err
		}
		if applied {
			reapplied++
			s.scheduleAnnouncement(ctx, &req)
		}
	}
	if reapplied > 0 {
		s.log.WarnContext(ctx, "re-applied interrupted acceptance",
			slog.String("user_a", a.Id.Hex()),
			slog.String("user_b", b.Id.Hex()),
			slog.Int("requests", reapplied),
		)
		return true, nil
	}

	aHasB, bHasA := a.IsConnectedTo(b.Id), b.IsConnectedTo(a.Id)
	switch {
	case aHasB && bHasA:
		return true, nil
	case !aHasB && !bHasA:
		return false, nil
	}

	active, err := s.requests.HasActiveAcceptance(ctx, a.Id, b.Id)
	if err != nil {
		return false, errors.Wrap(err, "connections.reconcile")
	}
	if active {
		return s.complete(ctx, a.Id, b.Id)
	}

	holder, other := a, b
	if bHasA {
		holder, other = b, a
	}
	if err := s.users.RemoveConnection(ctx, holder.Id, other.Id); err != nil {
		return false, errors.Wrap(err, "connections.reconcile")
	}
	s.log.WarnContext(ctx, "finished interrupted removal",
		slog.String("holder", holder.Id.Hex()),
		slog.String("other", other.Id.Hex()),
	)
	return false, nil
}

// complete restores both edges of an active acceptance. A removal that severs
// the pair while the edges are written wins and the edges are pulled again.
func (s *Service) complete(ctx context.Context, a, b primitive.ObjectID) (bool, error) {
	if err := s.connect(ctx, a, b); err != nil {
		return false, errors.Wrap(err, "connections.complete")
	}

	active, err := s.requests.HasActiveAcceptance(ctx, a, b)
	if err != nil {
		return false, errors.Wrap(err, "connections.complete")
	}
	if !active {
		return false, s.disconnect(ctx, a, b)
	}

	s.log.WarnContext(ctx, "completed interrupted acceptance",
		slog.String("user_a", a.Hex()),
		slog.String("user_b", b.Hex()),
	)
	return true, nil
}
