package persistent

import (
	"context"

	"socialnet/internal/entity"
	"socialnet/internal/model"
	"socialnet/internal/repo"
	"socialnet/pkg/errs"

	"gorm.io/gorm"
)

type relationRepository struct {
	db *gorm.DB
}

func NewRelationRepository(db *gorm.DB) repo.RelationRepository {
	return &relationRepository{db: db}
}

func (r *relationRepository) CreateFollow(ctx context.Context, follow *entity.Follow) error {
	followModel := &model.FollowModel{UserID: follow.UserID, UserFollowID: follow.FollowID}
	if err := r.db.WithContext(ctx).Omit("User", "UserFollow").Create(followModel).Error; err != nil {
		if errs.Is(translate(err, "follow"), errs.ECONFLICT) {
			return errs.Errorf(errs.ECONFLICT, "you already follow this user")
		}
		return translate(err, "follow")
	}
	*follow = *ToFollowEntity(followModel)
	return nil
}

func (r *relationRepository) DeleteFollow(ctx context.Context, userID, followID string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND user_follow_id = ?", userID, followID).
		Delete(&model.FollowModel{})
	if result.Error != nil {
		return translate(result.Error, "follow")
	}
	if result.RowsAffected == 0 {
		return errs.Errorf(errs.ENOTFOUND, "you don't follow this user")
	}
	return nil
}

func (r *relationRepository) IsFollowing(ctx context.Context, userID, followID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.FollowModel{}).
		Where("user_id = ? AND user_follow_id = ?", userID, followID).
		Count(&count).Error
	return count > 0, err
}

func (r *relationRepository) Followers(ctx context.Context, userID string) ([]*entity.Follow, error) {
	return r.listFollows(ctx, "user_follow_id = ?", userID)
}

func (r *relationRepository) Following(ctx context.Context, userID string) ([]*entity.Follow, error) {
	return r.listFollows(ctx, "user_id = ?", userID)
}

func (r *relationRepository) listFollows(ctx context.Context, where string, userID string) ([]*entity.Follow, error) {
	var followModels []model.FollowModel
	if err := r.db.WithContext(ctx).Where(where, userID).Order("created_at ASC").Find(&followModels).Error; err != nil {
		return nil, translate(err, "follow")
	}

	follows := make([]*entity.Follow, len(followModels))
	for i := range followModels {
		follows[i] = ToFollowEntity(&followModels[i])
	}
	return follows, nil
}

func (r *relationRepository) CreateBlock(ctx context.Context, block *entity.Block) error {
	blockModel := &model.BlockModel{UserID: block.UserID, UserBlockedID: block.BlockedID}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("User", "UserBlocked").Create(blockModel).Error; err != nil {
			return err
		}
		return tx.
			Where("(user_id = ? AND user_follow_id = ?) OR (user_id = ? AND user_follow_id = ?)",
				block.UserID, block.BlockedID, block.BlockedID, block.UserID).
			Delete(&model.FollowModel{}).Error
	})
	if err != nil {
		if errs.Is(translate(err, "block"), errs.ECONFLICT) {
			return errs.Errorf(errs.ECONFLICT, "you already blocked this user")
		}
		return translate(err, "block")
	}

	*block = *ToBlockEntity(blockModel)
	return nil
}

func (r *relationRepository) DeleteBlock(ctx context.Context, userID, blockedID string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND user_blocked_id = ?", userID, blockedID).
		Delete(&model.BlockModel{})
	if result.Error != nil {
		return translate(result.Error, "block")
	}
	if result.RowsAffected == 0 {
		return errs.Errorf(errs.ENOTFOUND, "you haven't blocked this user")
	}
	return nil
}

func (r *relationRepository) IsBlocked(ctx context.Context, userID, blockedID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.BlockModel{}).
		Where("user_id = ? AND user_blocked_id = ?", userID, blockedID).
		Count(&count).Error
	return count > 0, err
}

func (r *relationRepository) Blocked(ctx context.Context, userID string) ([]*entity.Block, error) {
	var blockModels []model.BlockModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at ASC").Find(&blockModels).Error; err != nil {
		return nil, translate(err, "block")
	}

	blocks := make([]*entity.Block, len(blockModels))
	for i := range blockModels {
		blocks[i] = ToBlockEntity(&blockModels[i])
	}
	return blocks, nil
}
