// Package repo declares the storage capabilities the usecases depend on.
// Implementations live in persistent (gorm) and inmemory.
//
// Lookups of a missing record return an errs.ENOTFOUND error; writes that
// violate a uniqueness constraint return errs.ECONFLICT.
package repo

import (
	"context"

	"socialnet/internal/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id string) error
}

type PostRepository interface {
	Create(ctx context.Context, post *entity.Post) error
	GetByID(ctx context.Context, id string) (*entity.Post, error)
	List(ctx context.Context) ([]*entity.Post, error)
	Update(ctx context.Context, post *entity.Post) error
	Delete(ctx context.Context, id string) error
}

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	GetByID(ctx context.Context, id string) (*entity.Comment, error)
	ListByPost(ctx context.Context, postID string) ([]*entity.Comment, error)
	Delete(ctx context.Context, id string) error
}

type LikeRepository interface {
	Create(ctx context.Context, like *entity.Like) error
	Exists(ctx context.Context, userID, postID string) (bool, error)
	ListByPost(ctx context.Context, postID string) ([]*entity.Like, error)
	Delete(ctx context.Context, userID, postID string) error
}

type RelationRepository interface {
	CreateFollow(ctx context.Context, follow *entity.Follow) error
	DeleteFollow(ctx context.Context, userID, followID string) error
	IsFollowing(ctx context.Context, userID, followID string) (bool, error)
	Followers(ctx context.Context, userID string) ([]*entity.Follow, error)
	Following(ctx context.Context, userID string) ([]*entity.Follow, error)

	// CreateBlock stores the block and drops follow edges between the two
	// users in both directions.
	CreateBlock(ctx context.Context, block *entity.Block) error
	DeleteBlock(ctx context.Context, userID, blockedID string) error
	IsBlocked(ctx context.Context, userID, blockedID string) (bool, error)
	Blocked(ctx context.Context, userID string) ([]*entity.Block, error)
}
