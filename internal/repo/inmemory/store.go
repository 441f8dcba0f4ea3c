// Package inmemory implements the repo contracts on maps guarded by a
// single mutex. It mirrors the postgres schema: unique usernames, composite
// keys for likes and relations, and ON DELETE CASCADE for users and posts.
package inmemory

import (
	"sort"
	"sync"
	"time"

	"socialnet/internal/entity"
	"socialnet/internal/repo"

	"github.com/google/uuid"
)

type pair struct {
	a, b string
}

type Store struct {
	mu       sync.RWMutex
	now      func() time.Time
	last     time.Time
	users    map[string]*entity.User
	posts    map[string]*entity.Post
	comments map[string]*entity.Comment
	likes    map[pair]*entity.Like
	follows  map[pair]*entity.Follow
	blocks   map[pair]*entity.Block
}

func NewStore() *Store {
	return &Store{
		now:      func() time.Time { return time.Now().UTC() },
		users:    make(map[string]*entity.User),
		posts:    make(map[string]*entity.Post),
		comments: make(map[string]*entity.Comment),
		likes:    make(map[pair]*entity.Like),
		follows:  make(map[pair]*entity.Follow),
		blocks:   make(map[pair]*entity.Block),
	}
}

func (s *Store) Users() repo.UserRepository {
	return &userRepository{s: s}
}

func (s *Store) Posts() repo.PostRepository {
	return &postRepository{s: s}
}

func (s *Store) Comments() repo.CommentRepository {
	return &commentRepository{s: s}
}

func (s *Store) Likes() repo.LikeRepository {
	return &likeRepository{s: s}
}

func (s *Store) Relations() repo.RelationRepository {
	return &relationRepository{s: s}
}

func newID() string {
	return uuid.New().String()
}

// stamp returns a creation time strictly after every previously issued
// one so that ordering by creation time is stable. Callers hold s.mu.
func (s *Store) stamp() time.Time {
	now := s.now()
	if !now.After(s.last) {
		now = s.last.Add(time.Microsecond)
	}
	s.last = now
	return now
}

func (s *Store) deletePostLocked(id string) {
	delete(s.posts, id)
	for cid, c := range s.comments {
		if c.PostID == id {
			delete(s.comments, cid)
		}
	}
	for k := range s.likes {
		if k.b == id {
			delete(s.likes, k)
		}
	}
}

func (s *Store) deleteUserLocked(id string) {
	delete(s.users, id)
	for pid, p := range s.posts {
		if p.UserID == id {
			s.deletePostLocked(pid)
		}
	}
	for cid, c := range s.comments {
		if c.UserID == id {
			delete(s.comments, cid)
		}
	}
	for k := range s.likes {
		if k.a == id {
			delete(s.likes, k)
		}
	}
	for k := range s.follows {
		if k.a == id || k.b == id {
			delete(s.follows, k)
		}
	}
	for k := range s.blocks {
		if k.a == id || k.b == id {
			delete(s.blocks, k)
		}
	}
}

func byCreatedAt[T any](items []T, at func(T) time.Time, desc bool) {
	sort.SliceStable(items, func(i, j int) bool {
		if desc {
			return at(items[i]).After(at(items[j]))
		}
		return at(items[i]).Before(at(items[j]))
	})
}
