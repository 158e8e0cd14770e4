package users

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when no user exists for the given email.
	ErrNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when an account with the email already exists.
	ErrEmailTaken = errors.New("email already taken")
)

// Repository is the credential store. Email uniqueness is enforced at this
// boundary: Create must fail with ErrEmailTaken for a duplicate email even
// when two registrations race.
type Repository interface {
	Create(ctx context.Context, email, passwordHash string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
}
