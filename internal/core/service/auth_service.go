package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/clipforge/clip-shortener/internal/auth"
	"github.com/clipforge/clip-shortener/internal/core/domain"
	"github.com/clipforge/clip-shortener/internal/core/ports"
)

const minPasswordLength = 8

// AuthService implements registration and login on top of the credential
// store, the password hasher and the token issuer.
type AuthService struct {
	repo   ports.AuthRepository
	issuer *auth.Issuer
	log    zerolog.Logger
}

func NewAuthService(repo ports.AuthRepository, issuer *auth.Issuer, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, issuer: issuer, log: log}
}

// Register validates the form, persists the new user and issues a token.
// Validation short-circuits on the first failure; the messages are part of
// the wire contract.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (string, *domain.User, error) {
	if in.Username == "" || in.Email == "" || in.Password == "" || in.ConfirmPassword == "" {
		return "", nil, domain.NewValidationError("All fields are required")
	}
	if in.Password != in.ConfirmPassword {
		return "", nil, domain.NewValidationError("Passwords do not match")
	}
	if len(in.Password) < minPasswordLength {
		return "", nil, domain.NewValidationError("Password must be at least 8 characters long")
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	username := strings.TrimSpace(in.Username)

	// Fast-path uniqueness check. The unique indexes on the store remain the
	// authoritative signal: a concurrent registration that slips past this
	// check still surfaces as ErrUserExists from Create.
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return "", nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, err
	}
	if _, err := s.repo.FindByUsername(ctx, username); err == nil {
		return "", nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return "", nil, err
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	token, err := s.issuer.Issue(created)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Int64("user_id", created.ID).Str("username", created.Username).Msg("user registered")

	return token, created, nil
}

// Login authenticates by email and password. A missing user and a wrong
// password produce the identical ErrInvalidCredentials so callers cannot
// enumerate accounts; only a deactivated account with correct credentials is
// reported distinctly.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.NewValidationError("Email and password are required")
	}

	user, err := s.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	if !user.IsActive {
		return "", nil, domain.ErrAccountDeactivated
	}

	token, err := s.issuer.Issue(user)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Int64("user_id", user.ID).Msg("user logged in")

	return token, user, nil
}
