package persistent

import (
	"context"

	"socialnet/internal/entity"
	"socialnet/internal/model"
	"socialnet/internal/repo"
	"socialnet/pkg/errs"

	"gorm.io/gorm"
)

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) repo.LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Create(ctx context.Context, like *entity.Like) error {
	likeModel := &model.LikeModel{UserID: like.UserID, PostID: like.PostID}
	if err := r.db.WithContext(ctx).Omit("User", "Post").Create(likeModel).Error; err != nil {
		if errs.Is(translate(err, "like"), errs.ECONFLICT) {
			return errs.Errorf(errs.ECONFLICT, "post already liked")
		}
		return translate(err, "like")
	}
	*like = *ToLikeEntity(likeModel)
	return nil
}

func (r *likeRepository) Exists(ctx context.Context, userID, postID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.LikeModel{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	return count > 0, err
}

func (r *likeRepository) ListByPost(ctx context.Context, postID string) ([]*entity.Like, error) {
	var likeModels []model.LikeModel
	if err := r.db.WithContext(ctx).Where("post_id = ?", postID).Order("created_at ASC").Find(&likeModels).Error; err != nil {
		return nil, translate(err, "like")
	}

	likes := make([]*entity.Like, len(likeModels))
	for i := range likeModels {
		likes[i] = ToLikeEntity(&likeModels[i])
	}
	return likes, nil
}

func (r *likeRepository) Delete(ctx context.Context, userID, postID string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&model.LikeModel{})
	if result.Error != nil {
		return translate(result.Error, "like")
	}
	if result.RowsAffected == 0 {
		return errs.Errorf(errs.ENOTFOUND, "like not found")
	}
	return nil
}
