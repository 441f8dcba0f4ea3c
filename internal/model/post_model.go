package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostModel struct {
	ID          string    `gorm:"type:uuid;primary_key"`
	Description string    `gorm:"type:text;not null"`
	Image       []byte    `gorm:"type:bytea"`
	UserID      string    `gorm:"type:uuid;not null;index"`
	User        UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
}

func (PostModel) TableName() string {
	return "posts"
}

func (p *PostModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

type CommentModel struct {
	ID          string    `gorm:"type:uuid;primary_key"`
	Description string    `gorm:"type:text;not null"`
	UserID      string    `gorm:"type:uuid;not null;index"`
	User        UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	PostID      string    `gorm:"type:uuid;not null;index"`
	Post        PostModel `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
}

func (CommentModel) TableName() string {
	return "comments"
}

func (c *CommentModel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

type LikeModel struct {
	UserID    string    `gorm:"type:uuid;primaryKey"`
	User      UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	PostID    string    `gorm:"type:uuid;primaryKey;index"`
	Post      PostModel `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
}

func (LikeModel) TableName() string {
	return "likes"
}
