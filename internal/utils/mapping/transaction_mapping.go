package mapping

import (
	"database/sql"

	"github.com/xpay-app/xpay_backend/internal/core/domain"
	"github.com/xpay-app/xpay_backend/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction.
// Description is passed through as-is; the repository encrypts it before persisting.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	m := models.Transaction{
		TransactionID: d.TransactionID,
		UserID:        d.UserID,
		Amount:        d.Amount,
		Currency:      d.Currency,
		Date:          d.Date,
		Description:   d.Description,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
	if d.CategoryID != nil {
		m.CategoryID = sql.NullString{String: *d.CategoryID, Valid: true}
	}
	return m
}

// ToDomainTransaction converts a model Transaction to a domain Transaction.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	d := domain.Transaction{
		TransactionID: m.TransactionID,
		UserID:        m.UserID,
		Amount:        m.Amount,
		Currency:      m.Currency,
		Date:          m.Date,
		Description:   m.Description,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.CategoryID.Valid {
		categoryID := m.CategoryID.String
		d.CategoryID = &categoryID
	}
	return d
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions.
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
