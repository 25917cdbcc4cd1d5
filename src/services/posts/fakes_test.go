package posts

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/theleywin/talentnest/src/models"
	"github.com/theleywin/talentnest/src/store"
)

type memPosts struct {
	mu    sync.Mutex
	posts map[primitive.ObjectID]*models.Post
	clock time.Time
}

func newMemPosts() *memPosts {
	return &memPosts{
		posts: map[primitive.ObjectID]*models.Post{},
		clock: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func clonePost(p *models.Post) *models.Post {
	cp := *p
	cp.Likes = append([]primitive.ObjectID{}, p.Likes...)
	cp.Comments = append([]models.Comment{}, p.Comments...)
	return &cp
}

func (m *memPosts) Insert(_ context.Context, post *models.Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	post.Id = primitive.NewObjectID()
	m.clock = m.clock.Add(time.Minute)
	post.CreatedAt, post.UpdatedAt = m.clock, m.clock
	m.posts[post.Id] = clonePost(post)
	return nil
}

func (m *memPosts) FindByID(_ context.Context, id primitive.ObjectID) (*models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.posts[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return clonePost(p), nil
}

func (m *memPosts) FindByAuthors(_ context.Context, authors []primitive.ObjectID) ([]models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []models.Post{}
	for _, p := range m.posts {
		for _, a := range authors {
			if p.Author == a {
				out = append(out, *clonePost(p))
				break
			}
		}
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].CreatedAt.After(out[j-1].CreatedAt); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out, nil
}

func (m *memPosts) Delete(_ context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.posts[id]; !ok {
		return store.ErrNotFound
	}
	delete(m.posts, id)
	return nil
}

func (m *memPosts) update(id primitive.ObjectID, fn func(p *models.Post)) (*models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.posts[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	fn(p)
	return clonePost(p), nil
}

func (m *memPosts) PushComment(_ context.Context, postID primitive.ObjectID, comment models.Comment) (*models.Post, error) {
	comment.Id = primitive.NewObjectID()
	return m.update(postID, func(p *models.Post) { p.Comments = append(p.Comments, comment) })
}

func (m *memPosts) AddLike(_ context.Context, postID, userID primitive.ObjectID) (*models.Post, error) {
	return m.update(postID, func(p *models.Post) {
		if !p.LikedBy(userID) {
			p.Likes = append(p.Likes, userID)
		}
	})
}

func (m *memPosts) RemoveLike(_ context.Context, postID, userID primitive.ObjectID) (*models.Post, error) {
	return m.update(postID, func(p *models.Post) {
		kept := []primitive.ObjectID{}
		for _, id := range p.Likes {
			if id != userID {
				kept = append(kept, id)
			}
		}
		p.Likes = kept
	})
}

type memUsers map[primitive.ObjectID]*models.User

func (m memUsers) FindUser(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	u, ok := m[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m memUsers) FindSummaries(_ context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.UserDto, error) {
	out := map[primitive.ObjectID]models.UserDto{}
	for _, id := range ids {
		if u, ok := m[id]; ok {
			out[id] = u.Summary()
		}
	}
	return out, nil
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

type commentMail struct {
	to, recipientName, commenterName, postURL, comment string
}

type recordingMailer struct {
	mu   sync.Mutex
	sent []commentMail
}

func (r *recordingMailer) SendCommentNotificationEmail(_ context.Context, to, recipientName, commenterName, postURL, comment string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, commentMail{to, recipientName, commenterName, postURL, comment})
}
