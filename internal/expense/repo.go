package expense

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store is the persistence surface the handlers depend on.
type Store interface {
	Insert(ctx context.Context, exp *Expense) (*Expense, error)
	ListAll(ctx context.Context) ([]Expense, error)
	ListByUser(ctx context.Context, userID string) ([]Expense, error)
	MonthlySummary(ctx context.Context, userID string, year, month int) (*MonthlySummary, error)
}

type Repository struct {
	Pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{Pool: pool}
}

func (r *Repository) Insert(ctx context.Context, exp *Expense) (*Expense, error) {
	err := r.Pool.QueryRow(
		ctx,
		`INSERT INTO expenses (user_id, date, category, description, amount)
         VALUES ($1, $2, $3, $4, $5)
         RETURNING id, to_char(date, 'YYYY-MM-DD'), created_at`,
		exp.UserID, exp.Date, exp.Category, exp.Description, exp.Amount,
	).Scan(&exp.ID, &exp.Date, &exp.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert expense: %w", err)
	}
	return exp, nil
}

func (r *Repository) ListAll(ctx context.Context) ([]Expense, error) {
	return r.list(ctx, `
		SELECT id, user_id, to_char(date, 'YYYY-MM-DD'), category, description, amount, created_at
		FROM expenses
		ORDER BY created_at DESC
	`)
}

func (r *Repository) ListByUser(ctx context.Context, userID string) ([]Expense, error) {
	return r.list(ctx, `
		SELECT id, user_id, to_char(date, 'YYYY-MM-DD'), category, description, amount, created_at
		FROM expenses
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]Expense, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query expenses: %w", err)
	}
	defer rows.Close()

	out := make([]Expense, 0)
	for rows.Next() {
		var e Expense
		if err := rows.Scan(
			&e.ID,
			&e.UserID,
			&e.Date,
			&e.Category,
			&e.Description,
			&e.Amount,
			&e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *Repository) MonthlySummary(ctx context.Context, userID string, year, month int) (*MonthlySummary, error) {
	sum := &MonthlySummary{
		UserID:          userID,
		Month:           fmt.Sprintf("%04d-%02d", year, month),
		CategoryBreakup: make([]CategoryBucket, 0),
	}

	rows, err := r.Pool.Query(ctx, `
		SELECT category, COALESCE(SUM(amount), 0), COUNT(*)
		FROM expenses
		WHERE user_id = $1
		  AND EXTRACT(YEAR FROM date) = $2
		  AND EXTRACT(MONTH FROM date) = $3
		GROUP BY category
		ORDER BY 2 DESC
	`, userID, year, month)
	if err != nil {
		return nil, fmt.Errorf("query summary: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var b CategoryBucket
		var count int64
		if err := rows.Scan(&b.Category, &b.Total, &count); err != nil {
			return nil, fmt.Errorf("scan summary row: %w", err)
		}
		sum.Total += b.Total
		sum.Transactions += count
		sum.CategoryBreakup = append(sum.CategoryBreakup, b)
	}
	return sum, rows.Err()
}
