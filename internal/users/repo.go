package users

import (
	"context"
	"errors"
)

var (
	// ErrNotFound reports that no user matches the lookup.
	ErrNotFound = errors.New("user not found")
	// ErrEmailTaken reports a signup against an already registered email.
	ErrEmailTaken = errors.New("email already registered")
)

// Repo defines persistence operations for users.
type Repo interface {
	Create(ctx context.Context, user User) error
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, userID string) (User, error)
}
