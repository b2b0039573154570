package ports

import (
	"context"

	"github.com/clipforge/clip-shortener/internal/core/domain"
)

// RegisterInput carries the registration form fields, plaintext included.
type RegisterInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

type AuthService interface {
	// Register validates the input, stores the new user and returns an
	// access token plus the created user.
	Register(ctx context.Context, in RegisterInput) (string, *domain.User, error)
	// Login authenticates by email/password and returns an access token
	// plus the matched user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
