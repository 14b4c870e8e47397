package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/xpay-app/xpay_backend/internal/apperrors"
	"github.com/xpay-app/xpay_backend/internal/core/domain"
	portsrepo "github.com/xpay-app/xpay_backend/internal/core/ports/repositories"
	portssvc "github.com/xpay-app/xpay_backend/internal/core/ports/services"
	"github.com/xpay-app/xpay_backend/internal/dto"
)

const defaultCurrency = "USD"

const dateOnlyFormat = "2006-01-02"

type transactionService struct {
	transactionRepo portsrepo.TransactionRepositoryFacade
}

// NewTransactionService creates a new instance of transactionService.
func NewTransactionService(transactionRepo portsrepo.TransactionRepositoryFacade) portssvc.TransactionSvcFacade {
	return &transactionService{transactionRepo: transactionRepo}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if err := validateTransactionRequest(req); err != nil {
		return nil, err
	}

	currency := req.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		CategoryID:    req.CategoryID,
		Amount:        req.Amount,
		Currency:      currency,
		Date:          req.Date,
		Description:   req.Description,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	return &txn, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error) {
	return s.transactionRepo.FindTransactionByID(ctx, userID, transactionID)
}

func (s *transactionService) ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) ([]domain.Transaction, int64, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	skip := params.Skip
	if skip < 0 {
		skip = 0
	}

	filter := portsrepo.TransactionFilter{CategoryID: params.CategoryID}
	if params.DateFrom != nil {
		from, err := time.Parse(dateOnlyFormat, *params.DateFrom)
		if err != nil {
			return nil, 0, apperrors.NewBadRequestError("Invalid date_from")
		}
		filter.DateFrom = &from
	}
	if params.DateTo != nil {
		to, err := time.Parse(dateOnlyFormat, *params.DateTo)
		if err != nil {
			return nil, 0, apperrors.NewBadRequestError("Invalid date_to")
		}
		// Inclusive upper bound: extend to the end of the day.
		to = to.Add(24*time.Hour - time.Nanosecond)
		filter.DateTo = &to
	}

	return s.transactionRepo.FindTransactions(ctx, userID, filter, limit, skip)
}

func (s *transactionService) UpdateTransaction(ctx context.Context, userID string, transactionID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if err := validateTransactionRequest(req); err != nil {
		return nil, err
	}

	txn, err := s.transactionRepo.FindTransactionByID(ctx, userID, transactionID)
	if err != nil {
		return nil, err
	}

	txn.Amount = req.Amount
	if req.Currency != "" {
		txn.Currency = req.Currency
	}
	txn.Date = req.Date
	txn.Description = req.Description
	txn.CategoryID = req.CategoryID
	txn.UpdatedAt = time.Now()

	if err := s.transactionRepo.UpdateTransaction(ctx, *txn); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}
	return txn, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, userID string, transactionID string) error {
	return s.transactionRepo.DeleteTransaction(ctx, userID, transactionID)
}

func validateTransactionRequest(req dto.CreateTransactionRequest) error {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return apperrors.NewBadRequestError("Amount must be greater than zero")
	}
	return nil
}
