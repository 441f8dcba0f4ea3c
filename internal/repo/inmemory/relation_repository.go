package inmemory

import (
	"context"
	"time"

	"socialnet/internal/entity"
	"socialnet/pkg/errs"
)

type relationRepository struct {
	s *Store
}

func (r *relationRepository) usersExist(ids ...string) bool {
	for _, id := range ids {
		if _, ok := r.s.users[id]; !ok {
			return false
		}
	}
	return true
}

func (r *relationRepository) CreateFollow(_ context.Context, follow *entity.Follow) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if !r.usersExist(follow.UserID, follow.FollowID) {
		return errs.Errorf(errs.ENOTFOUND, "follow references a missing record")
	}
	key := pair{follow.UserID, follow.FollowID}
	if _, ok := r.s.follows[key]; ok {
		return errs.Errorf(errs.ECONFLICT, "you already follow this user")
	}

	stored := &entity.Follow{UserID: follow.UserID, FollowID: follow.FollowID, CreatedAt: r.s.stamp()}
	r.s.follows[key] = stored
	*follow = *stored
	return nil
}

func (r *relationRepository) DeleteFollow(_ context.Context, userID, followID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := pair{userID, followID}
	if _, ok := r.s.follows[key]; !ok {
		return errs.Errorf(errs.ENOTFOUND, "you don't follow this user")
	}
	delete(r.s.follows, key)
	return nil
}

func (r *relationRepository) IsFollowing(_ context.Context, userID, followID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	_, ok := r.s.follows[pair{userID, followID}]
	return ok, nil
}

func (r *relationRepository) Followers(_ context.Context, userID string) ([]*entity.Follow, error) {
	return r.listFollows(func(k pair) bool { return k.b == userID }), nil
}

func (r *relationRepository) Following(_ context.Context, userID string) ([]*entity.Follow, error) {
	return r.listFollows(func(k pair) bool { return k.a == userID }), nil
}

func (r *relationRepository) listFollows(match func(pair) bool) []*entity.Follow {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	follows := []*entity.Follow{}
	for key, follow := range r.s.follows {
		if match(key) {
			f := *follow
			follows = append(follows, &f)
		}
	}
	byCreatedAt(follows, func(f *entity.Follow) time.Time { return f.CreatedAt }, false)
	return follows
}

func (r *relationRepository) CreateBlock(_ context.Context, block *entity.Block) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if !r.usersExist(block.UserID, block.BlockedID) {
		return errs.Errorf(errs.ENOTFOUND, "block references a missing record")
	}
	key := pair{block.UserID, block.BlockedID}
	if _, ok := r.s.blocks[key]; ok {
		return errs.Errorf(errs.ECONFLICT, "you already blocked this user")
	}

	stored := &entity.Block{UserID: block.UserID, BlockedID: block.BlockedID, CreatedAt: r.s.stamp()}
	r.s.blocks[key] = stored
	delete(r.s.follows, pair{block.UserID, block.BlockedID})
	delete(r.s.follows, pair{block.BlockedID, block.UserID})

	*block = *stored
	return nil
}

func (r *relationRepository) DeleteBlock(_ context.Context, userID, blockedID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := pair{userID, blockedID}
	if _, ok := r.s.blocks[key]; !ok {
		return errs.Errorf(errs.ENOTFOUND, "you haven't blocked this user")
	}
	delete(r.s.blocks, key)
	return nil
}

func (r *relationRepository) IsBlocked(_ context.Context, userID, blockedID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	_, ok := r.s.blocks[pair{userID, blockedID}]
	return ok, nil
}

func (r *relationRepository) Blocked(_ context.Context, userID string) ([]*entity.Block, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	blocks := []*entity.Block{}
	for key, block := range r.s.blocks {
		if key.a == userID {
			b := *block
			blocks = append(blocks, &b)
		}
	}
	byCreatedAt(blocks, func(b *entity.Block) time.Time { return b.CreatedAt }, false)
	return blocks, nil
}
