package entity

import "time"

type Post struct {
	ID          string       `json:"id"`
	Description string       `json:"description"`
	Image       []byte       `json:"image,omitempty"`
	UserID      string       `json:"user_id"`
	User        *UserSummary `json:"user,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}

type Comment struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	UserID      string    `json:"user_id"`
	PostID      string    `json:"post_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// Like is identified by the (UserID, PostID) pair.
type Like struct {
	UserID    string    `json:"user_id"`
	PostID    string    `json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}
