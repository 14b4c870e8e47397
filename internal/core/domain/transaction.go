package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a single financial transaction owned by a user.
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	UserID        string          `json:"userID"`
	CategoryID    *string         `json:"categoryID,omitempty"`
	Amount        decimal.Decimal `json:"amount"` // Positive value; precise decimal type
	Currency      string          `json:"currency"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}
