package expense

import "time"

// Expense mirrors the inherited record shape: the owner reference is a free
// string and nothing ties it to an authenticated caller on the legacy routes.
type Expense struct {
	ID          string    `db:"id" json:"id"`
	UserID      string    `db:"user_id" json:"userId"`
	Date        string    `db:"date" json:"date"` // YYYY-MM-DD
	Category    string    `db:"category" json:"category"`
	Description string    `db:"description" json:"description"`
	Amount      float64   `db:"amount" json:"amount"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

type CreateExpenseRequest struct {
	UserID      string  `json:"userId"`
	Date        string  `json:"date"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// MonthlySummary aggregates a user's spending for one calendar month.
type MonthlySummary struct {
	UserID          string           `json:"userId"`
	Month           string           `json:"month"` // YYYY-MM
	Total           float64          `json:"total"`
	Transactions    int64            `json:"transactions"`
	CategoryBreakup []CategoryBucket `json:"categoryBreakup"`
}

type CategoryBucket struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}
