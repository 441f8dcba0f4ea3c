package usecase

import (
	"context"
	"fmt"

	"socialnet/internal/entity"
	"socialnet/internal/repo"
	"socialnet/internal/validator"
	"socialnet/pkg/errs"
	"socialnet/pkg/logger"

	"github.com/redis/go-redis/v9"
)

type PostUseCase interface {
	Create(ctx context.Context, userID string, post *entity.Post) (*entity.Post, error)
	GetByID(ctx context.Context, postID string) (*entity.Post, error)
	List(ctx context.Context) ([]*entity.Post, error)
	Update(ctx context.Context, userID string, post *entity.Post) (*entity.Post, error)
	Delete(ctx context.Context, userID, postID string) error
}

type postUseCase struct {
	postRepo  repo.PostRepository
	validator *validator.PostValidator
	cache     *postCache
	logger    *logger.Logger
}

// NewPostUseCase builds the post usecase. With a nil redisClient reads go
// straight to the repository.
func NewPostUseCase(postRepo repo.PostRepository, redisClient *redis.Client, logger *logger.Logger) PostUseCase {
	return &postUseCase{
		postRepo:  postRepo,
		validator: validator.NewPostValidator(postRepo),
		cache:     newPostCache(redisClient, logger),
		logger:    logger,
	}
}

// Create stores a post owned by userID. Any owner id carried by post is
// ignored.
func (uc *postUseCase) Create(ctx context.Context, userID string, post *entity.Post) (*entity.Post, error) {
	created := &entity.Post{
		Description: post.Description,
		Image:       post.Image,
		UserID:      userID,
	}
	if err := uc.validator.ValidateCreate(created); err != nil {
		return nil, err
	}

	if err := uc.postRepo.Create(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}

// GetByID returns nil without error when the post does not exist.
func (uc *postUseCase) GetByID(ctx context.Context, postID string) (*entity.Post, error) {
	if post := uc.cache.get(ctx, postID); post != nil {
		return post, nil
	}

	post, err := uc.postRepo.GetByID(ctx, postID)
	if errs.Is(err, errs.ENOTFOUND) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}

	uc.cache.set(ctx, post)
	return post, nil
}

func (uc *postUseCase) List(ctx context.Context) ([]*entity.Post, error) {
	posts, err := uc.postRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

// Update rewrites the description of a post owned by userID. A nil Image
// keeps the stored image and an empty one removes it.
func (uc *postUseCase) Update(ctx context.Context, userID string, post *entity.Post) (*entity.Post, error) {
	existing, err := uc.validator.ValidateUpdate(ctx, userID, post)
	if err != nil {
		return nil, err
	}

	existing.Description = post.Description
	if post.Image != nil {
		existing.Image = post.Image
		if len(post.Image) == 0 {
			existing.Image = nil
		}
	}
	if err := uc.postRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	uc.cache.invalidate(ctx, existing.ID)
	return existing, nil
}

func (uc *postUseCase) Delete(ctx context.Context, userID, postID string) error {
	if _, err := uc.validator.ValidateDelete(ctx, userID, postID); err != nil {
		return err
	}

	if err := uc.postRepo.Delete(ctx, postID); err != nil {
		return err
	}

	uc.cache.invalidate(ctx, postID)
	uc.logger.Info("Post deleted: id=%s, user_id=%s", postID, userID)
	return nil
}
