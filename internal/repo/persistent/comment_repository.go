package persistent

import (
	"context"

	"socialnet/internal/entity"
	"socialnet/internal/model"
	"socialnet/internal/repo"
	"socialnet/pkg/errs"

	"gorm.io/gorm"
)

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) repo.CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	commentModel := ToCommentModel(comment)
	if err := r.db.WithContext(ctx).Omit("User", "Post").Create(commentModel).Error; err != nil {
		return translate(err, "comment")
	}
	*comment = *ToCommentEntity(commentModel)
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, id string) (*entity.Comment, error) {
	var commentModel model.CommentModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&commentModel).Error; err != nil {
		return nil, translate(err, "comment")
	}
	return ToCommentEntity(&commentModel), nil
}

func (r *commentRepository) ListByPost(ctx context.Context, postID string) ([]*entity.Comment, error) {
	var commentModels []model.CommentModel
	if err := r.db.WithContext(ctx).Where("post_id = ?", postID).Order("created_at ASC").Find(&commentModels).Error; err != nil {
		return nil, translate(err, "comment")
	}

	comments := make([]*entity.Comment, len(commentModels))
	for i := range commentModels {
		comments[i] = ToCommentEntity(&commentModels[i])
	}
	return comments, nil
}

func (r *commentRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&model.CommentModel{}, "id = ?", id)
	if result.Error != nil {
		return translate(result.Error, "comment")
	}
	if result.RowsAffected == 0 {
		return errs.Errorf(errs.ENOTFOUND, "comment not found")
	}
	return nil
}
