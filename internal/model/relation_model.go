package model

import "time"

type FollowModel struct {
	UserID       string    `gorm:"type:uuid;primaryKey"`
	User         UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	UserFollowID string    `gorm:"type:uuid;primaryKey;index"`
	UserFollow   UserModel `gorm:"foreignKey:UserFollowID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time
}

func (FollowModel) TableName() string {
	return "user_follows"
}

type BlockModel struct {
	UserID        string    `gorm:"type:uuid;primaryKey"`
	User          UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	UserBlockedID string    `gorm:"type:uuid;primaryKey;index"`
	UserBlocked   UserModel `gorm:"foreignKey:UserBlockedID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time
}

func (BlockModel) TableName() string {
	return "user_blocked"
}

// All lists every model in dependency order for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&PostModel{},
		&CommentModel{},
		&LikeModel{},
		&FollowModel{},
		&BlockModel{},
	}
}
