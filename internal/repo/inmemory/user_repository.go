package inmemory

import (
	"context"
	"time"

	"socialnet/internal/entity"
	"socialnet/pkg/errs"
)

type userRepository struct {
	s *Store
}

func copyUser(u *entity.User) *entity.User {
	c := *u
	if u.BirthDate != nil {
		bd := *u.BirthDate
		c.BirthDate = &bd
	}
	return &c
}

func (r *userRepository) Create(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.users {
		if existing.Username == user.Username {
			return errs.Errorf(errs.ECONFLICT, "username is already in use")
		}
	}

	stored := copyUser(user)
	if stored.ID == "" {
		stored.ID = newID()
	}
	if _, ok := r.s.users[stored.ID]; ok {
		return errs.Errorf(errs.ECONFLICT, "user already exists")
	}
	stored.CreatedAt = r.s.stamp()
	r.s.users[stored.ID] = stored

	*user = *copyUser(stored)
	return nil
}

func (r *userRepository) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	user, ok := r.s.users[id]
	if !ok {
		return nil, errs.Errorf(errs.ENOTFOUND, "user not found")
	}
	return copyUser(user), nil
}

func (r *userRepository) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, user := range r.s.users {
		if user.Username == username {
			return copyUser(user), nil
		}
	}
	return nil, errs.Errorf(errs.ENOTFOUND, "user not found")
}

func (r *userRepository) List(_ context.Context) ([]*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	users := make([]*entity.User, 0, len(r.s.users))
	for _, user := range r.s.users {
		users = append(users, copyUser(user))
	}
	byCreatedAt(users, func(u *entity.User) time.Time { return u.CreatedAt }, false)
	return users, nil
}

func (r *userRepository) Update(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.users[user.ID]
	if !ok {
		return errs.Errorf(errs.ENOTFOUND, "user not found")
	}
	for id, existing := range r.s.users {
		if id != user.ID && existing.Username == user.Username {
			return errs.Errorf(errs.ECONFLICT, "username is already in use")
		}
	}

	updated := copyUser(user)
	updated.Password = stored.Password
	updated.CreatedAt = stored.CreatedAt
	r.s.users[user.ID] = updated
	return nil
}

func (r *userRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[id]; !ok {
		return errs.Errorf(errs.ENOTFOUND, "user not found")
	}
	r.s.deleteUserLocked(id)
	return nil
}
