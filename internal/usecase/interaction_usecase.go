package usecase

import (
	"context"
	"fmt"

	"socialnet/internal/entity"
	"socialnet/internal/repo"
	"socialnet/internal/validator"
	"socialnet/pkg/logger"
	"socialnet/pkg/queue"
)

type InteractionUseCase interface {
	Like(ctx context.Context, userID, postID string) (*entity.Like, error)
	Unlike(ctx context.Context, userID, postID string) error
	ListLikes(ctx context.Context, postID string) ([]*entity.Like, error)
	Comment(ctx context.Context, userID, postID, description string) (*entity.Comment, error)
	ListComments(ctx context.Context, postID string) ([]*entity.Comment, error)
	DeleteComment(ctx context.Context, userID, commentID string) error
}

type interactionUseCase struct {
	postRepo    repo.PostRepository
	likeRepo    repo.LikeRepository
	commentRepo repo.CommentRepository
	validator   *validator.InteractionValidator
	notifier    notifier
}

// NewInteractionUseCase builds the likes and comments usecase. publisher
// may be nil.
func NewInteractionUseCase(
	postRepo repo.PostRepository,
	likeRepo repo.LikeRepository,
	commentRepo repo.CommentRepository,
	publisher EventPublisher,
	logger *logger.Logger,
) InteractionUseCase {
	return &interactionUseCase{
		postRepo:    postRepo,
		likeRepo:    likeRepo,
		commentRepo: commentRepo,
		validator:   validator.NewInteractionValidator(postRepo, likeRepo, commentRepo),
		notifier:    notifier{publisher: publisher, logger: logger},
	}
}

func (uc *interactionUseCase) Like(ctx context.Context, userID, postID string) (*entity.Like, error) {
	like := &entity.Like{UserID: userID, PostID: postID}
	post, err := uc.validator.ValidateLike(ctx, like)
	if err != nil {
		return nil, err
	}

	if err := uc.likeRepo.Create(ctx, like); err != nil {
		return nil, err
	}

	uc.notifier.notify(queue.Event{
		Type:    queue.EventPostLiked,
		UserID:  post.UserID,
		ActorID: userID,
		PostID:  postID,
	})
	return like, nil
}

func (uc *interactionUseCase) Unlike(ctx context.Context, userID, postID string) error {
	return uc.likeRepo.Delete(ctx, userID, postID)
}

// ListLikes fails with errs.ENOTFOUND for an unknown post.
func (uc *interactionUseCase) ListLikes(ctx context.Context, postID string) ([]*entity.Like, error) {
	if _, err := uc.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	likes, err := uc.likeRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("list likes: %w", err)
	}
	return likes, nil
}

func (uc *interactionUseCase) Comment(ctx context.Context, userID, postID, description string) (*entity.Comment, error) {
	comment := &entity.Comment{Description: description, UserID: userID, PostID: postID}
	post, err := uc.validator.ValidateComment(ctx, comment)
	if err != nil {
		return nil, err
	}

	if err := uc.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	uc.notifier.notify(queue.Event{
		Type:      queue.EventPostCommented,
		UserID:    post.UserID,
		ActorID:   userID,
		PostID:    postID,
		CommentID: comment.ID,
	})
	return comment, nil
}

func (uc *interactionUseCase) ListComments(ctx context.Context, postID string) ([]*entity.Comment, error) {
	if _, err := uc.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	comments, err := uc.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

// DeleteComment is allowed for the comment author and the post owner.
func (uc *interactionUseCase) DeleteComment(ctx context.Context, userID, commentID string) error {
	if _, err := uc.validator.ValidateCommentDelete(ctx, userID, commentID); err != nil {
		return err
	}
	return uc.commentRepo.Delete(ctx, commentID)
}
