package repositories

import (
	"context"
	"time"

	"github.com/xpay-app/xpay_backend/internal/core/domain"
)

// TransactionFilter narrows transaction listings. Nil fields are ignored.
type TransactionFilter struct {
	CategoryID *string
	DateFrom   *time.Time
	DateTo     *time.Time
}

// TransactionRepositoryFacade defines persistence operations for transactions.
// All reads and writes are scoped to the owning user.
type TransactionRepositoryFacade interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	FindTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error)

	// FindTransactions lists the user's transactions ordered by date descending,
	// returning the page and the total count matching the filter.
	FindTransactions(ctx context.Context, userID string, filter TransactionFilter, limit int, offset int) ([]domain.Transaction, int64, error)

	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	DeleteTransaction(ctx context.Context, userID string, transactionID string) error
}
