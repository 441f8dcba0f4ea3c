package validator

import (
	"context"
	"strings"

	"socialnet/internal/entity"
	"socialnet/internal/repo"
	"socialnet/pkg/errs"
)

type PostValidator struct {
	posts repo.PostRepository
}

func NewPostValidator(posts repo.PostRepository) *PostValidator {
	return &PostValidator{posts: posts}
}

// ValidateCreate checks field presence only; it performs no reads.
func (v *PostValidator) ValidateCreate(post *entity.Post) error {
	if strings.TrimSpace(post.Description) == "" {
		return errs.Errorf(errs.EINVALID, "description is required")
	}
	if post.UserID == "" {
		return errs.Errorf(errs.EINVALID, "user id is required")
	}
	return nil
}

// ValidateUpdate checks the new content and that requesterID owns the
// stored post, which it returns.
func (v *PostValidator) ValidateUpdate(ctx context.Context, requesterID string, post *entity.Post) (*entity.Post, error) {
	if err := v.ValidateCreate(&entity.Post{Description: post.Description, UserID: requesterID}); err != nil {
		return nil, err
	}
	return v.owned(ctx, requesterID, post.ID, "update")
}

// ValidateDelete checks that requesterID owns the post and returns it.
func (v *PostValidator) ValidateDelete(ctx context.Context, requesterID, postID string) (*entity.Post, error) {
	if requesterID == "" {
		return nil, errs.Errorf(errs.EINVALID, "user id is required")
	}
	return v.owned(ctx, requesterID, postID, "delete")
}

func (v *PostValidator) owned(ctx context.Context, requesterID, postID, action string) (*entity.Post, error) {
	existing, err := v.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if existing.UserID != requesterID {
		return nil, errs.Errorf(errs.EFORBIDDEN, "you are not allowed to %s this post", action)
	}
	return existing, nil
}
