package persistent

import (
	"context"

	"socialnet/internal/entity"
	"socialnet/internal/model"
	"socialnet/internal/repo"
	"socialnet/pkg/errs"

	"gorm.io/gorm"
)

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) repo.PostRepository {
	return &postRepository{db: db}
}

func withAuthor(db *gorm.DB) *gorm.DB {
	return db.Preload("User", func(db *gorm.DB) *gorm.DB {
		return db.Select("id", "username")
	})
}

func (r *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postModel := ToPostModel(post)
	if err := r.db.WithContext(ctx).Omit("User").Create(postModel).Error; err != nil {
		return translate(err, "post")
	}
	return r.reload(ctx, post, postModel.ID)
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	var postModel model.PostModel
	if err := withAuthor(r.db.WithContext(ctx)).Where("id = ?", id).First(&postModel).Error; err != nil {
		return nil, translate(err, "post")
	}
	return ToPostEntity(&postModel), nil
}

func (r *postRepository) List(ctx context.Context) ([]*entity.Post, error) {
	var postModels []model.PostModel
	if err := withAuthor(r.db.WithContext(ctx)).Order("created_at DESC").Find(&postModels).Error; err != nil {
		return nil, err
	}

	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts, nil
}

func (r *postRepository) Update(ctx context.Context, post *entity.Post) error {
	result := r.db.WithContext(ctx).Model(&model.PostModel{ID: post.ID}).
		Select("description", "image").
		Updates(ToPostModel(post))
	if result.Error != nil {
		return translate(result.Error, "post")
	}
	if result.RowsAffected == 0 {
		return errs.Errorf(errs.ENOTFOUND, "post not found")
	}
	return r.reload(ctx, post, post.ID)
}

func (r *postRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&model.PostModel{}, "id = ?", id)
	if result.Error != nil {
		return translate(result.Error, "post")
	}
	if result.RowsAffected == 0 {
		return errs.Errorf(errs.ENOTFOUND, "post not found")
	}
	return nil
}

func (r *postRepository) reload(ctx context.Context, post *entity.Post, id string) error {
	stored, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	*post = *stored
	return nil
}
