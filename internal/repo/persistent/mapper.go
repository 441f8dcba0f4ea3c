package persistent

import (
	"socialnet/internal/entity"
	"socialnet/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:           m.ID,
		Name:         m.Name,
		Username:     m.Username,
		Password:     m.Password,
		Active:       m.Active,
		BirthDate:    m.BirthDate,
		ProfileImage: m.ProfileImage,
		CreatedAt:    m.CreatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:           e.ID,
		Name:         e.Name,
		Username:     e.Username,
		Password:     e.Password,
		Active:       e.Active,
		BirthDate:    e.BirthDate,
		ProfileImage: e.ProfileImage,
		CreatedAt:    e.CreatedAt,
	}
}

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	post := &entity.Post{
		ID:          m.ID,
		Description: m.Description,
		Image:       m.Image,
		UserID:      m.UserID,
		CreatedAt:   m.CreatedAt,
	}
	if m.User.ID != "" {
		post.User = &entity.UserSummary{ID: m.User.ID, Username: m.User.Username}
	}
	return post
}

func ToPostModel(e *entity.Post) *model.PostModel {
	if e == nil {
		return nil
	}

	return &model.PostModel{
		ID:          e.ID,
		Description: e.Description,
		Image:       e.Image,
		UserID:      e.UserID,
		CreatedAt:   e.CreatedAt,
	}
}

func ToCommentEntity(m *model.CommentModel) *entity.Comment {
	if m == nil {
		return nil
	}

	return &entity.Comment{
		ID:          m.ID,
		Description: m.Description,
		UserID:      m.UserID,
		PostID:      m.PostID,
		CreatedAt:   m.CreatedAt,
	}
}

func ToCommentModel(e *entity.Comment) *model.CommentModel {
	if e == nil {
		return nil
	}

	return &model.CommentModel{
		ID:          e.ID,
		Description: e.Description,
		UserID:      e.UserID,
		PostID:      e.PostID,
		CreatedAt:   e.CreatedAt,
	}
}

func ToLikeEntity(m *model.LikeModel) *entity.Like {
	if m == nil {
		return nil
	}
	return &entity.Like{UserID: m.UserID, PostID: m.PostID, CreatedAt: m.CreatedAt}
}

func ToFollowEntity(m *model.FollowModel) *entity.Follow {
	if m == nil {
		return nil
	}
	return &entity.Follow{UserID: m.UserID, FollowID: m.UserFollowID, CreatedAt: m.CreatedAt}
}

func ToBlockEntity(m *model.BlockModel) *entity.Block {
	if m == nil {
		return nil
	}
	return &entity.Block{UserID: m.UserID, BlockedID: m.UserBlockedID, CreatedAt: m.CreatedAt}
}
