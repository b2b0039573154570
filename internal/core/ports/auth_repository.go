package ports

import (
	"context"

	"github.com/clipforge/clip-shortener/internal/core/domain"
)

// AuthRepository defines the interface for user credential persistence.
type AuthRepository interface {
	// Create inserts the user and returns it with the assigned identifier.
	// Returns domain.ErrUserExists when the insert violates a uniqueness
	// constraint on username or email.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
