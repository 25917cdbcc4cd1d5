package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/theleywin/talentnest/src/models"
)

// ConnectionStore is the connection-request ledger.
type ConnectionStore struct {
	coll *mongo.Collection
}

func NewConnectionStore(db *mongo.Database) *ConnectionStore {
	return &ConnectionStore{coll: db.Collection(ConnectionsCollection)}
}

// InsertRequest stores a new request. A second pending request for the same
// pair fails with ErrDuplicate via the pending_pair_unique index.
func (s *ConnectionStore) InsertRequest(ctx context.Context, req *models.Connection) error {
	now := time.Now().UTC()
	if req.Id.IsZero() {
		req.Id = primitive.NewObjectID()
	}
	req.PairKey = models.PairKey(req.Sender, req.Recipient)
	req.CreatedAt, req.UpdatedAt = now, now

	_, err := s.coll.InsertOne(ctx, req)
	return translate(err, "store.ConnectionStore.InsertRequest")
}

func (s *ConnectionStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Connection, error) {
	var req models.Connection
	if err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&req); err != nil {
		return nil, translate(err, "store.ConnectionStore.FindByID")
	}
	return &req, nil
}

// FindPendingBetween returns the pending request of the unordered pair {a, b}.
func (s *ConnectionStore) FindPendingBetween(ctx context.Context, a, b primitive.ObjectID) (*models.Connection, error) {
	filter := bson.M{
		"pairKey": models.PairKey(a, b),
		"status":  models.ConnectionStatusPending,
	}

	var req models.Connection
	if err := s.coll.FindOne(ctx, filter).Decode(&req); err != nil {
		return nil, translate(err, "store.ConnectionStore.FindPendingBetween")
	}
	return &req, nil
}

// ConditionalUpdateStatus moves the request from expected to next only if the
// stored status is still expected. ErrNotFound means no such transition applied.
func (s *ConnectionStore) ConditionalUpdateStatus(ctx context.Context, id primitive.ObjectID, expected, next models.ConnectionStatus) (*models.Connection, error) {
	filter := bson.M{"_id": id, "status": expected}
	update := bson.M{"$set": bson.M{"status": next, "updatedAt": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var req models.Connection
	if err := s.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&req); err != nil {
		return nil, translate(err, "store.ConnectionStore.ConditionalUpdateStatus")
	}
	return &req, nil
}

// FindUnappliedAccepted returns accepted requests of the pair whose connection
// writes never completed and that no removal has severed.
func (s *ConnectionStore) FindUnappliedAccepted(ctx context.Context, a, b primitive.ObjectID) ([]models.Connection, error) {
	filter := bson.M{
		"pairKey": models.PairKey(a, b),
		"status":  models.ConnectionStatusAccepted,
		"applied": false,
		"severed": bson.M{"$ne": true},
	}

	cursor, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, translate(err, "store.ConnectionStore.FindUnappliedAccepted.Find")
	}
	defer cursor.Close(ctx)

	reqs := []models.Connection{}
	if err := cursor.All(ctx, &reqs); err != nil {
		return nil, translate(err, "store.ConnectionStore.FindUnappliedAccepted.All")
	}
	return reqs, nil
}

// HasActiveAcceptance reports whether the pair has an accepted request that
// no removal has severed.
func (s *ConnectionStore) HasActiveAcceptance(ctx context.Context, a, b primitive.ObjectID) (bool, error) {
	filter := bson.M{
		"pairKey": models.PairKey(a, b),
		"status":  models.ConnectionStatusAccepted,
		"severed": bson.M{"$ne": true},
	}

	n, err := s.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, translate(err, "store.ConnectionStore.HasActiveAcceptance")
	}
	return n > 0, nil
}

// SeverAccepted marks every accepted request of the pair as severed by a removal.
func (s *ConnectionStore) SeverAccepted(ctx context.Context, a, b primitive.ObjectID) error {
	filter := bson.M{
		"pairKey": models.PairKey(a, b),
		"status":  models.ConnectionStatusAccepted,
		"severed": bson.M{"$ne": true},
	}
	update := bson.M{"$set": bson.M{"severed": true, "updatedAt": time.Now().UTC()}}

	_, err := s.coll.UpdateMany(ctx, filter, update)
	return translate(err, "store.ConnectionStore.SeverAccepted")
}

// MarkApplied records that both edges of the acceptance are written. It fails
// with ErrNotFound once the request has been severed.
func (s *ConnectionStore) MarkApplied(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": id, "severed": bson.M{"$ne": true}},
		bson.M{"$set": bson.M{"applied": true, "updatedAt": time.Now().UTC()}},
	)
	if err != nil {
		return translate(err, "store.ConnectionStore.MarkApplied")
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ClaimAnnouncement flags an accepted request as announced and reports whether
// this call was the one that set the flag.
func (s *ConnectionStore) ClaimAnnouncement(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": id, "status": models.ConnectionStatusAccepted, "announced": bson.M{"$ne": true}},
		bson.M{"$set": bson.M{"announced": true}},
	)
	if err != nil {
		return false, translate(err, "store.ConnectionStore.ClaimAnnouncement")
	}
	return res.ModifiedCount == 1, nil
}

// ListPendingForRecipient returns pending requests addressed to recipient, newest first.
func (s *ConnectionStore) ListPendingForRecipient(ctx context.Context, recipient primitive.ObjectID) ([]models.Connection, error) {
	filter := bson.M{
		"recipient": recipient,
		"status":    models.ConnectionStatusPending,
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, translate(err, "store.ConnectionStore.ListPendingForRecipient.Find")
	}
	defer cursor.Close(ctx)

	reqs := []models.Connection{}
	if err := cursor.All(ctx, &reqs); err != nil {
		return nil, translate(err, "store.ConnectionStore.ListPendingForRecipient.All")
	}
	return reqs, nil
}
