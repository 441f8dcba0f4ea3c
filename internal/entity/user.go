package entity

import "time"

type User struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Username     string     `json:"username"`
	Password     string     `json:"-"`
	Active       bool       `json:"active"`
	BirthDate    *time.Time `json:"birth_date"`
	ProfileImage string     `json:"profile_image,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// UserPatch holds the fields of a partial user update. Nil means unchanged.
type UserPatch struct {
	Name      *string
	Username  *string
	Active    *bool
	BirthDate *time.Time
}

// UserSummary is the public identity embedded in other resources.
type UserSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}
