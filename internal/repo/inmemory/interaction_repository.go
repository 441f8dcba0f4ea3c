package inmemory

import (
	"context"
	"time"

	"socialnet/internal/entity"
	"socialnet/pkg/errs"
)

type commentRepository struct {
	s *Store
}

func (r *commentRepository) Create(_ context.Context, comment *entity.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	_, userOK := r.s.users[comment.UserID]
	_, postOK := r.s.posts[comment.PostID]
	if !userOK || !postOK {
		return errs.Errorf(errs.ENOTFOUND, "comment references a missing record")
	}

	stored := *comment
	if stored.ID == "" {
		stored.ID = newID()
	}
	stored.CreatedAt = r.s.stamp()
	r.s.comments[stored.ID] = &stored

	*comment = stored
	return nil
}

func (r *commentRepository) GetByID(_ context.Context, id string) (*entity.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	comment, ok := r.s.comments[id]
	if !ok {
		return nil, errs.Errorf(errs.ENOTFOUND, "comment not found")
	}
	c := *comment
	return &c, nil
}

func (r *commentRepository) ListByPost(_ context.Context, postID string) ([]*entity.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	comments := []*entity.Comment{}
	for _, comment := range r.s.comments {
		if comment.PostID == postID {
			c := *comment
			comments = append(comments, &c)
		}
	}
	byCreatedAt(comments, func(c *entity.Comment) time.Time { return c.CreatedAt }, false)
	return comments, nil
}

func (r *commentRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.comments[id]; !ok {
		return errs.Errorf(errs.ENOTFOUND, "comment not found")
	}
	delete(r.s.comments, id)
	return nil
}

type likeRepository struct {
	s *Store
}

func (r *likeRepository) Create(_ context.Context, like *entity.Like) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	_, userOK := r.s.users[like.UserID]
	_, postOK := r.s.posts[like.PostID]
	if !userOK || !postOK {
		return errs.Errorf(errs.ENOTFOUND, "like references a missing record")
	}

	key := pair{like.UserID, like.PostID}
	if _, ok := r.s.likes[key]; ok {
		return errs.Errorf(errs.ECONFLICT, "post already liked")
	}

	stored := &entity.Like{UserID: like.UserID, PostID: like.PostID, CreatedAt: r.s.stamp()}
	r.s.likes[key] = stored
	*like = *stored
	return nil
}

func (r *likeRepository) Exists(_ context.Context, userID, postID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	_, ok := r.s.likes[pair{userID, postID}]
	return ok, nil
}

func (r *likeRepository) ListByPost(_ context.Context, postID string) ([]*entity.Like, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	likes := []*entity.Like{}
	for key, like := range r.s.likes {
		if key.b == postID {
			l := *like
			likes = append(likes, &l)
		}
	}
	byCreatedAt(likes, func(l *entity.Like) time.Time { return l.CreatedAt }, false)
	return likes, nil
}

func (r *likeRepository) Delete(_ context.Context, userID, postID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := pair{userID, postID}
	if _, ok := r.s.likes[key]; !ok {
		return errs.Errorf(errs.ENOTFOUND, "like not found")
	}
	delete(r.s.likes, key)
	return nil
}
