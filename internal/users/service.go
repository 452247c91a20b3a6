package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"resume-vault/internal/shared/auth"
)

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password, so login responses don't leak which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidInput reports a missing or malformed email/password.
	ErrInvalidInput = errors.New("email and password are required")
)

// Service contains signup, login and profile logic.
type Service struct {
	Repo   Repo
	Tokens *auth.Tokens
}

// NewService constructs a Service.
func NewService(repo Repo, tokens *auth.Tokens) *Service {
	return &Service{Repo: repo, Tokens: tokens}
}

// Signup registers a new account with a bcrypt-hashed password.
func (s *Service) Signup(ctx context.Context, email, password string) error {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	return s.Repo.Create(ctx, user)
}

// Login verifies credentials and issues a bearer token on success.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.Tokens.Sign(user.ID)
}

// Profile returns the stored user record for the given id.
func (s *Service) Profile(ctx context.Context, userID string) (User, error) {
	if strings.TrimSpace(userID) == "" {
		return User{}, ErrNotFound
	}
	return s.Repo.GetByID(ctx, userID)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
