package domain

import "time"

// User models a registered account. PasswordHash is never serialized; the
// struct doubles as the public projection returned by the auth endpoints.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}
