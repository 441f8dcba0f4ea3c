package persistent

import (
	"context"

	"socialnet/internal/entity"
	"socialnet/internal/model"
	"socialnet/internal/repo"
	"socialnet/pkg/errs"

	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repo.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := ToUserModel(user)
	if err := r.db.WithContext(ctx).Create(userModel).Error; err != nil {
		if errs.Is(translate(err, "user"), errs.ECONFLICT) {
			return errs.Errorf(errs.ECONFLICT, "username is already in use")
		}
		return translate(err, "user")
	}
	*user = *ToUserEntity(userModel)
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&userModel).Error; err != nil {
		return nil, translate(err, "user")
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&userModel).Error; err != nil {
		return nil, translate(err, "user")
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	var userModels []model.UserModel
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&userModels).Error; err != nil {
		return nil, err
	}

	users := make([]*entity.User, len(userModels))
	for i := range userModels {
		users[i] = ToUserEntity(&userModels[i])
	}
	return users, nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	userModel := ToUserModel(user)
	result := r.db.WithContext(ctx).Model(&model.UserModel{ID: user.ID}).
		Select("name", "username", "active", "birth_date", "profile_image").
		Updates(userModel)
	if result.Error != nil {
		if errs.Is(translate(result.Error, "user"), errs.ECONFLICT) {
			return errs.Errorf(errs.ECONFLICT, "username is already in use")
		}
		return translate(result.Error, "user")
	}
	if result.RowsAffected == 0 {
		return errs.Errorf(errs.ENOTFOUND, "user not found")
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&model.UserModel{}, "id = ?", id)
	if result.Error != nil {
		return translate(result.Error, "user")
	}
	if result.RowsAffected == 0 {
		return errs.Errorf(errs.ENOTFOUND, "user not found")
	}
	return nil
}
