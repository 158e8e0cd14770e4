package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sujithsojan/etrackerbackend/internal/users"
)

var (
	// ErrMissingCredentials is returned when email or password is absent.
	ErrMissingCredentials = errors.New("email and password required")
	// ErrDuplicateEmail is returned when registering an email that exists.
	ErrDuplicateEmail = errors.New("user already exists")
	// ErrInvalidCredentials is returned for both an unknown email and a wrong
	// password, so responses do not reveal which emails are registered.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Service orchestrates registration and login over the credential store,
// the password hasher and the token issuer.
type Service struct {
	repo   users.Repository
	hasher Hasher
	tokens *TokenIssuer
}

func NewService(repo users.Repository, hasher Hasher, tokens *TokenIssuer) *Service {
	return &Service{repo: repo, hasher: hasher, tokens: tokens}
}

// Register creates an account for the email with a hashed password. No token
// is issued at registration; the caller logs in separately.
func (s *Service) Register(ctx context.Context, email, password string) (*users.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	// Pre-check so the common duplicate case never pays for a hash. The store
	// still enforces uniqueness on insert, which closes the race between two
	// concurrent registrations for the same email.
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, users.ErrNotFound) {
		return nil, fmt.Errorf("look up email: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repo.Create(ctx, email, hash)
	if err != nil {
		if errors.Is(err, users.ErrEmailTaken) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login verifies the credentials and issues a bearer token bound to the
// account's id and email.
func (s *Service) Login(ctx context.Context, email, password string) (string, *users.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", nil, ErrMissingCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("look up email: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return token, user, nil
}
