package models

import (
	"database/sql"
	"time"
)

// Category is the database representation of a category row.
// user_id is NULL for global categories.
type Category struct {
	CategoryID  string         `db:"category_id"`
	UserID      sql.NullString `db:"user_id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}
