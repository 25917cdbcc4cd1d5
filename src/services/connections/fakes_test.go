package connections

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/theleywin/talentnest/src/models"
	"github.com/theleywin/talentnest/src/store"
)

// memUsers is an in-memory identityStore.
type memUsers struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]*models.User

	// addErr, when set, is consulted before every AddConnection.
	addErr func(userID, otherID primitive.ObjectID) error
	// afterAdd, when set, runs after every AddConnection without the lock held.
	afterAdd func(userID, otherID primitive.ObjectID)
}

func newMemUsers() *memUsers {
	return &memUsers{users: map[primitive.ObjectID]*models.User{}}
}

func (m *memUsers) add(username string) primitive.ObjectID {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := primitive.NewObjectID()
	m.users[id] = &models.User{
		Id:          id,
		Name:        username,
		Username:    username,
		Email:       username + "@example.com",
		Connections: []primitive.ObjectID{},
	}
	return id
}

func (m *memUsers) connections(id primitive.ObjectID) []primitive.ObjectID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]primitive.ObjectID{}, m.users[id].Connections...)
}

func (m *memUsers) setConnections(id primitive.ObjectID, conns ...primitive.ObjectID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[id].Connections = append([]primitive.ObjectID{}, conns...)
}

func (m *memUsers) FindUser(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *u
	cp.Connections = append([]primitive.ObjectID{}, u.Connections...)
	return &cp, nil
}

func (m *memUsers) FindUsers(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	out := []models.User{}
	for _, id := range ids {
		u, err := m.FindUser(ctx, id)
		if err == nil {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (m *memUsers) AddConnection(_ context.Context, userID, otherID primitive.ObjectID) error {
	m.mu.Lock()
	if m.addErr != nil {
		if err := m.addErr(userID, otherID); err != nil {
			m.mu.Unlock()
			return err
		}
	}
	if u, ok := m.users[userID]; ok && !u.IsConnectedTo(otherID) {
		u.Connections = append(u.Connections, otherID)
	}
	m.mu.Unlock()

	if m.afterAdd != nil {
		m.afterAdd(userID, otherID)
	}
	return nil
}

func (m *memUsers) RemoveConnection(_ context.Context, userID, otherID primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[userID]
	if !ok {
		return nil
	}
	kept := u.Connections[:0]
	for _, c := range u.Connections {
		if c != otherID {
			kept = append(kept, c)
		}
	}
	u.Connections = kept
	return nil
}

// memLedger is an in-memory ledger that enforces one pending request per pair.
type memLedger struct {
	mu    sync.Mutex
	reqs  map[primitive.ObjectID]*models.Connection
	clock time.Time

	// beforeFindUnapplied, when set, runs at the start of FindUnappliedAccepted
	// without the lock held.
	beforeFindUnapplied func()
}

func newMemLedger() *memLedger {
	return &memLedger{
		reqs:  map[primitive.ObjectID]*models.Connection{},
		clock: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (l *memLedger) tick() time.Time {
	l.clock = l.clock.Add(time.Second)
	return l.clock
}

func (l *memLedger) InsertRequest(_ context.Context, req *models.Connection) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	req.PairKey = models.PairKey(req.Sender, req.Recipient)
	if req.Status == models.ConnectionStatusPending {
		for _, existing := range l.reqs {
			if existing.PairKey == req.PairKey && existing.Status == models.ConnectionStatusPending {
				return store.ErrDuplicate
			}
		}
	}
	if req.Id.IsZero() {
		req.Id = primitive.NewObjectID()
	}
	now := l.tick()
	req.CreatedAt, req.UpdatedAt = now, now

	cp := *req
	l.reqs[req.Id] = &cp
	return nil
}

func (l *memLedger) FindByID(_ context.Context, id primitive.ObjectID) (*models.Connection, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	req, ok := l.reqs[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *req
	return &cp, nil
}

func (l *memLedger) FindPendingBetween(_ context.Context, a, b primitive.ObjectID) (*models.Connection, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := models.PairKey(a, b)
	for _, req := range l.reqs {
		if req.PairKey == key && req.Status == models.ConnectionStatusPending {
			cp := *req
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (l *memLedger) ConditionalUpdateStatus(_ context.Context, id primitive.ObjectID, expected, next models.ConnectionStatus) (*models.Connection, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	req, ok := l.reqs[id]
	if !ok || req.Status != expected {
		return nil, store.ErrNotFound
	}
	req.Status = next
	req.UpdatedAt = l.tick()
	cp := *req
	return &cp, nil
}

func (l *memLedger) FindUnappliedAccepted(_ context.Context, a, b primitive.ObjectID) ([]models.Connection, error) {
	if l.beforeFindUnapplied != nil {
		l.beforeFindUnapplied()
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	key := models.PairKey(a, b)
	out := []models.Connection{}
	for _, req := range l.reqs {
		if l.isActive(req, key) && !req.Applied {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (l *memLedger) isActive(req *models.Connection, key string) bool {
	return req.PairKey == key && req.Status == models.ConnectionStatusAccepted && !req.Severed
}

func (l *memLedger) HasActiveAcceptance(_ context.Context, a, b primitive.ObjectID) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := models.PairKey(a, b)
	for _, req := range l.reqs {
		if l.isActive(req, key) {
			return true, nil
		}
	}
	return false, nil
}

func (l *memLedger) SeverAccepted(_ context.Context, a, b primitive.ObjectID) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := models.PairKey(a, b)
	for _, req := range l.reqs {
		if l.isActive(req, key) {
			req.Severed = true
		}
	}
	return nil
}

func (l *memLedger) MarkApplied(_ context.Context, id primitive.ObjectID) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	req, ok := l.reqs[id]
	if !ok || req.Severed {
		return store.ErrNotFound
	}
	req.Applied = true
	return nil
}

func (l *memLedger) ClaimAnnouncement(_ context.Context, id primitive.ObjectID) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	req, ok := l.reqs[id]
	if !ok || req.Status != models.ConnectionStatusAccepted || req.Announced {
		return false, nil
	}
	req.Announced = true
	return true, nil
}

func (l *memLedger) ListPendingForRecipient(_ context.Context, recipient primitive.ObjectID) ([]models.Connection, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := []models.Connection{}
	for _, req := range l.reqs {
		if req.Recipient == recipient && req.Status == models.ConnectionStatusPending {
			out = append(out, *req)
		}
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].CreatedAt.After(out[j-1].CreatedAt); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out, nil
}

func (l *memLedger) status(id primitive.ObjectID) models.ConnectionStatus {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.reqs[id].Status
}

type recordingSink struct {
	mu   sync.Mutex
	sent []models.Notification
}

func (r *recordingSink) Append(_ context.Context, n models.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, n)
}

func (r *recordingSink) all() []models.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Notification{}, r.sent...)
}

type sentMail struct {
	to, senderName, recipientName, profileURL string
}

type recordingMailer struct {
	mu   sync.Mutex
	sent []sentMail
}

func (r *recordingMailer) SendConnectionAcceptedEmail(_ context.Context, to, senderName, recipientName, profileURL string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, sentMail{to, senderName, recipientName, profileURL})
}

func (r *recordingMailer) all() []sentMail {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]sentMail{}, r.sent...)
}
