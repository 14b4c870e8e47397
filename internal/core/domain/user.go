package domain

import "time"

// User represents an authenticable principal in the domain.
// PasswordHash is empty for accounts created via federation that never set a local password.
type User struct {
	UserID       string    `json:"userID"` // Primary Key (UUID)
	Email        string    `json:"email"`  // Unique, matched case-insensitively
	FullName     string    `json:"fullName"`
	PasswordHash string    `json:"-"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// HasPassword reports whether password login is available for this account.
func (u User) HasPassword() bool {
	return u.PasswordHash != ""
}
