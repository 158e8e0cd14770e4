package expense

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory Store used by tests and database-free runs.
type MemoryStore struct {
	mu    sync.RWMutex
	items []Expense
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make([]Expense, 0)}
}

func (s *MemoryStore) Insert(_ context.Context, exp *Expense) (*Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	exp.ID = uuid.NewString()
	exp.CreatedAt = time.Now().UTC()
	s.items = append(s.items, *exp)
	return exp, nil
}

func (s *MemoryStore) ListAll(_ context.Context) ([]Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Expense, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *MemoryStore) ListByUser(_ context.Context, userID string) ([]Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Expense, 0)
	for _, e := range s.items {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *MemoryStore) MonthlySummary(_ context.Context, userID string, year, month int) (*MonthlySummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sum := &MonthlySummary{
		UserID:          userID,
		Month:           fmt.Sprintf("%04d-%02d", year, month),
		CategoryBreakup: make([]CategoryBucket, 0),
	}

	byCategory := make(map[string]float64)
	for _, e := range s.items {
		if e.UserID != userID {
			continue
		}
		d, err := time.Parse("2006-01-02", e.Date)
		if err != nil || d.Year() != year || int(d.Month()) != month {
			continue
		}
		byCategory[e.Category] += e.Amount
		sum.Total += e.Amount
		sum.Transactions++
	}
	for cat, total := range byCategory {
		sum.CategoryBreakup = append(sum.CategoryBreakup, CategoryBucket{Category: cat, Total: total})
	}
	return sum, nil
}
