package users

import "time"

// User represents a persisted user record. The password hash never leaves
// the backend; json tags exclude it from any serialized response.
type User struct {
	ID           string    `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
