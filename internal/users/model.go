package users

import "time"

// User is a registered account. PasswordHash never leaves this package.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
