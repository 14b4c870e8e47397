package domain

import "time"

// Category groups transactions. A nil UserID marks a global category shared by all
// users; those cannot be modified or deleted through the API.
type Category struct {
	CategoryID  string    `json:"categoryID"`
	UserID      *string   `json:"userID,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// IsGlobal reports whether the category is shared rather than user-owned.
func (c Category) IsGlobal() bool {
	return c.UserID == nil
}
