package services

import (
	"context"

	"github.com/xpay-app/xpay_backend/internal/core/domain"
	"github.com/xpay-app/xpay_backend/internal/dto"
)

// TransactionSvcFacade defines the interface for transaction management.
// Every operation is scoped to the acting user; foreign transactions read as not found.
type TransactionSvcFacade interface {
	CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	GetTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) ([]domain.Transaction, int64, error)
	UpdateTransaction(ctx context.Context, userID string, transactionID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, userID string, transactionID string) error
}
