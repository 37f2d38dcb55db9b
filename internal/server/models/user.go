package models

import "time"

// User is an account row. PasswordHash is a bcrypt digest and is never
// exposed through the API or written to logs.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Nickname     string
	AvatarKey    string
	IsActive     bool
	IsSuperuser  bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
