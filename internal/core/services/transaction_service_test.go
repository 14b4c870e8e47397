package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/xpay-app/xpay_backend/internal/apperrors"
	"github.com/xpay-app/xpay_backend/internal/core/domain"
	portsrepo "github.com/xpay-app/xpay_backend/internal/core/ports/repositories"
	portssvc "github.com/xpay-app/xpay_backend/internal/core/ports/services"
	"github.com/xpay-app/xpay_backend/internal/core/services"
	"github.com/xpay-app/xpay_backend/internal/dto"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, transactionID)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

func (m *MockTransactionRepository) FindTransactions(ctx context.Context, userID string, filter portsrepo.TransactionFilter, limit int, offset int) ([]domain.Transaction, int64, error) {
	args := m.Called(ctx, userID, filter, limit, offset)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Get(1).(int64), args.Error(2)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, userID string, transactionID string) error {
	args := m.Called(ctx, userID, transactionID)
	return args.Error(0)
}

// --- Test Suite ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo *MockTransactionRepository
	service     portssvc.TransactionSvcFacade
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.service = services.NewTransactionService(suite.mockTxnRepo)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateTransactionRequest{
		Amount:      decimal.NewFromFloat(12.50),
		Date:        time.Now(),
		Description: "lunch",
	}

	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.UserID == userID && txn.Currency == "USD" && txn.Description == "lunch"
	})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, userID, req)

	suite.Require().NoError(err)
	suite.NotEmpty(txn.TransactionID)
	suite.Equal("USD", txn.Currency)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Amount: decimal.Zero,
		Date:   time.Now(),
	}

	txn, err := suite.service.CreateTransaction(ctx, uuid.NewString(), req)

	suite.Nil(txn)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(400, appErr.Code)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_DefaultsAndDateBounds() {
	ctx := context.Background()
	userID := uuid.NewString()
	from := "2026-01-01"
	to := "2026-01-31"
	params := dto.ListTransactionsParams{DateFrom: &from, DateTo: &to}

	suite.mockTxnRepo.On("FindTransactions", ctx, userID, mock.MatchedBy(func(f portsrepo.TransactionFilter) bool {
		if f.DateFrom == nil || f.DateTo == nil {
			return false
		}
		// Upper bound is inclusive: pushed to the very end of Jan 31.
		return f.DateFrom.Equal(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)) &&
			f.DateTo.After(time.Date(2026, 1, 31, 23, 59, 59, 0, time.UTC))
	}), 20, 0).Return([]domain.Transaction{}, int64(0), nil).Once()

	_, total, err := suite.service.ListTransactions(ctx, userID, params)

	suite.Require().NoError(err)
	suite.Equal(int64(0), total)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_InvalidDate() {
	ctx := context.Background()
	bad := "31-01-2026"
	params := dto.ListTransactionsParams{DateFrom: &bad}

	_, _, err := suite.service.ListTransactions(ctx, uuid.NewString(), params)

	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(400, appErr.Code)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()
	txnID := uuid.NewString()
	req := dto.CreateTransactionRequest{Amount: decimal.NewFromInt(5), Date: time.Now()}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, userID, txnID).Return(nil, apperrors.ErrNotFound).Once()

	txn, err := suite.service.UpdateTransaction(ctx, userID, txnID, req)

	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_KeepsCurrencyWhenOmitted() {
	ctx := context.Background()
	userID := uuid.NewString()
	stored := &domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		Amount:        decimal.NewFromInt(10),
		Currency:      "EUR",
		Date:          time.Now(),
	}
	req := dto.CreateTransactionRequest{Amount: decimal.NewFromInt(15), Date: time.Now()}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, userID, stored.TransactionID).Return(stored, nil).Once()
	suite.mockTxnRepo.On("UpdateTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Currency == "EUR" && txn.Amount.Equal(decimal.NewFromInt(15))
	})).Return(nil).Once()

	txn, err := suite.service.UpdateTransaction(ctx, userID, stored.TransactionID, req)

	suite.Require().NoError(err)
	suite.Equal("EUR", txn.Currency)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_Delegates() {
	ctx := context.Background()
	userID := uuid.NewString()
	txnID := uuid.NewString()

	suite.mockTxnRepo.On("DeleteTransaction", ctx, userID, txnID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteTransaction(ctx, userID, txnID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
