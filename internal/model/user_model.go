package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	ID           string     `gorm:"type:uuid;primary_key"`
	Name         string     `gorm:"not null"`
	Username     string     `gorm:"uniqueIndex;not null"`
	Password     string     `gorm:"not null"`
	Active       bool       `gorm:"not null"`
	BirthDate    *time.Time `gorm:"type:date"`
	ProfileImage string     `gorm:"type:varchar(500)"`
	CreatedAt    time.Time
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
