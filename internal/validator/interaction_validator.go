package validator

import (
	"context"
	"strings"

	"socialnet/internal/entity"
	"socialnet/internal/repo"
	"socialnet/pkg/errs"
)

type InteractionValidator struct {
	posts    repo.PostRepository
	likes    repo.LikeRepository
	comments repo.CommentRepository
}

func NewInteractionValidator(posts repo.PostRepository, likes repo.LikeRepository, comments repo.CommentRepository) *InteractionValidator {
	return &InteractionValidator{posts: posts, likes: likes, comments: comments}
}

// ValidateLike checks the post exists and has not been liked by the user
// yet. It returns the post so callers can notify its owner.
func (v *InteractionValidator) ValidateLike(ctx context.Context, like *entity.Like) (*entity.Post, error) {
	if like.UserID == "" {
		return nil, errs.Errorf(errs.EINVALID, "user id is required")
	}
	post, err := v.posts.GetByID(ctx, like.PostID)
	if err != nil {
		return nil, err
	}
	liked, err := v.likes.Exists(ctx, like.UserID, like.PostID)
	if err != nil {
		return nil, err
	}
	if liked {
		return nil, errs.Errorf(errs.ECONFLICT, "post already liked")
	}
	return post, nil
}

// ValidateComment checks the comment body and that the post exists.
func (v *InteractionValidator) ValidateComment(ctx context.Context, comment *entity.Comment) (*entity.Post, error) {
	if strings.TrimSpace(comment.Description) == "" {
		return nil, errs.Errorf(errs.EINVALID, "description is required")
	}
	if comment.UserID == "" {
		return nil, errs.Errorf(errs.EINVALID, "user id is required")
	}
	return v.posts.GetByID(ctx, comment.PostID)
}

// ValidateCommentDelete allows the comment author and the post owner.
func (v *InteractionValidator) ValidateCommentDelete(ctx context.Context, requesterID, commentID string) (*entity.Comment, error) {
	if requesterID == "" {
		return nil, errs.Errorf(errs.EINVALID, "user id is required")
	}
	comment, err := v.comments.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.UserID == requesterID {
		return comment, nil
	}

	post, err := v.posts.GetByID(ctx, comment.PostID)
	if err != nil {
		return nil, err
	}
	if post.UserID != requesterID {
		return nil, errs.Errorf(errs.EFORBIDDEN, "you are not allowed to delete this comment")
	}
	return comment, nil
}
