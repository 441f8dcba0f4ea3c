package inmemory

import (
	"context"
	"time"

	"socialnet/internal/entity"
	"socialnet/pkg/errs"
)

type postRepository struct {
	s *Store
}

// withAuthor copies p and attaches the author summary, like a preload.
func (s *Store) withAuthor(p *entity.Post) *entity.Post {
	c := *p
	if p.Image != nil {
		c.Image = append([]byte(nil), p.Image...)
	}
	c.User = nil
	if u, ok := s.users[p.UserID]; ok {
		c.User = &entity.UserSummary{ID: u.ID, Username: u.Username}
	}
	return &c
}

func (r *postRepository) Create(_ context.Context, post *entity.Post) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[post.UserID]; !ok {
		return errs.Errorf(errs.ENOTFOUND, "post references a missing record")
	}

	stored := *post
	stored.User = nil
	if stored.ID == "" {
		stored.ID = newID()
	}
	stored.CreatedAt = r.s.stamp()
	r.s.posts[stored.ID] = &stored

	*post = *r.s.withAuthor(&stored)
	return nil
}

func (r *postRepository) GetByID(_ context.Context, id string) (*entity.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	post, ok := r.s.posts[id]
	if !ok {
		return nil, errs.Errorf(errs.ENOTFOUND, "post not found")
	}
	return r.s.withAuthor(post), nil
}

func (r *postRepository) List(_ context.Context) ([]*entity.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	posts := make([]*entity.Post, 0, len(r.s.posts))
	for _, post := range r.s.posts {
		posts = append(posts, r.s.withAuthor(post))
	}
	byCreatedAt(posts, func(p *entity.Post) time.Time { return p.CreatedAt }, true)
	return posts, nil
}

func (r *postRepository) Update(_ context.Context, post *entity.Post) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.posts[post.ID]
	if !ok {
		return errs.Errorf(errs.ENOTFOUND, "post not found")
	}
	stored.Description = post.Description
	stored.Image = append([]byte(nil), post.Image...)
	if post.Image == nil {
		stored.Image = nil
	}

	*post = *r.s.withAuthor(stored)
	return nil
}

func (r *postRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.posts[id]; !ok {
		return errs.Errorf(errs.ENOTFOUND, "post not found")
	}
	r.s.deletePostLocked(id)
	return nil
}
