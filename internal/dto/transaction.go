package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/xpay-app/xpay_backend/internal/core/domain"
)

// CreateTransactionRequest is the payload for creating or updating a transaction.
type CreateTransactionRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Currency    string          `json:"currency" binding:"omitempty,len=3"`
	Date        time.Time       `json:"date" binding:"required"`
	Description string          `json:"description" binding:"omitempty,max=1000"`
	CategoryID  *string         `json:"category_id" binding:"omitempty,uuid"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Skip       int     `form:"skip,default=0" binding:"omitempty,min=0"`
	Limit      int     `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	CategoryID *string `form:"category_id" binding:"omitempty,uuid"`
	DateFrom   *string `form:"date_from" binding:"omitempty,datetime=2006-01-02"`
	DateTo     *string `form:"date_to" binding:"omitempty,datetime=2006-01-02"`
}

// TransactionResponse is the client-facing view of a transaction.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	UserID        string          `json:"userID"`
	CategoryID    *string         `json:"category_id,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ToTransactionResponse converts a domain.Transaction to a TransactionResponse DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		UserID:        t.UserID,
		CategoryID:    t.CategoryID,
		Amount:        t.Amount,
		Currency:      t.Currency,
		Date:          t.Date,
		Description:   t.Description,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

// ToTransactionResponseSlice converts a slice of domain transactions.
func ToTransactionResponseSlice(ts []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(ts))
	for i := range ts {
		out[i] = ToTransactionResponse(&ts[i])
	}
	return out
}
