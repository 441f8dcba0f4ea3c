package entity

import "time"

// Follow is a directed edge: UserID follows FollowID.
type Follow struct {
	UserID    string    `json:"user_id"`
	FollowID  string    `json:"user_follow_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Block is a directed edge: UserID blocked BlockedID.
type Block struct {
	UserID    string    `json:"user_id"`
	BlockedID string    `json:"user_blocked_id"`
	CreatedAt time.Time `json:"created_at"`
}
