package users

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepository keeps users in a map. It backs tests and local runs
// without a database and enforces the same uniqueness contract as Postgres.
type MemoryRepository struct {
	mu      sync.RWMutex
	byEmail map[string]*User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byEmail: make(map[string]*User)}
}

func (r *MemoryRepository) Create(_ context.Context, email, passwordHash string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[email]; ok {
		return nil, ErrEmailTaken
	}

	u := &User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	r.byEmail[email] = u

	cp := *u
	return &cp, nil
}

func (r *MemoryRepository) FindByEmail(_ context.Context, email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

// All returns every stored user. Used by the debug listing endpoint.
func (r *MemoryRepository) All(_ context.Context) ([]User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]User, 0, len(r.byEmail))
	for _, u := range r.byEmail {
		out = append(out, *u)
	}
	return out, nil
}

// Count reports how many users are stored.
func (r *MemoryRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byEmail)
}
