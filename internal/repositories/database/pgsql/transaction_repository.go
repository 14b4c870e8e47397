package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xpay-app/xpay_backend/internal/apperrors"
	"github.com/xpay-app/xpay_backend/internal/core/domain"
	portsrepo "github.com/xpay-app/xpay_backend/internal/core/ports/repositories"
	"github.com/xpay-app/xpay_backend/internal/models"
	"github.com/xpay-app/xpay_backend/internal/utils/fieldcipher"
	"github.com/xpay-app/xpay_backend/internal/utils/mapping"
)

// PgxTransactionRepository persists transactions. Descriptions are run through the
// field cipher so the column never holds plaintext; an undecryptable value reads
// back as empty rather than failing the query.
type PgxTransactionRepository struct {
	BaseRepository
	cipher *fieldcipher.Cipher
}

// NewTransactionRepository creates a pgx-backed transaction repository.
func NewTransactionRepository(db *pgxpool.Pool, cipher *fieldcipher.Cipher) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: db}, cipher: cipher}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)

	encrypted, err := r.encryptDescription(m.Description)
	if err != nil {
		return err
	}

	query := `
        INSERT INTO transactions (transaction_id, user_id, category_id, amount, currency, date, description, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err = r.Pool.Exec(ctx, query,
		m.TransactionID, m.UserID, m.CategoryID, m.Amount, m.Currency, m.Date, encrypted, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT transaction_id, user_id, category_id, amount, currency, date, description, created_at, updated_at
		FROM transactions
		WHERE transaction_id = $1 AND user_id = $2;
	`
	var m models.Transaction
	err := r.Pool.QueryRow(ctx, query, transactionID, userID).Scan(
		&m.TransactionID, &m.UserID, &m.CategoryID, &m.Amount, &m.Currency, &m.Date, &m.Description, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}

	m.Description = r.decryptDescription(m.Description)
	d := mapping.ToDomainTransaction(m)
	return &d, nil
}

func (r *PgxTransactionRepository) FindTransactions(ctx context.Context, userID string, filter portsrepo.TransactionFilter, limit int, offset int) ([]domain.Transaction, int64, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	conditions := []string{"user_id = $1"}
	args := []any{userID}

	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		conditions = append(conditions, fmt.Sprintf("category_id = $%d", len(args)))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		conditions = append(conditions, fmt.Sprintf("date >= $%d", len(args)))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		conditions = append(conditions, fmt.Sprintf("date <= $%d", len(args)))
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := "SELECT COUNT(*) FROM transactions WHERE " + where
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	args = append(args, limit, offset)
	listQuery := fmt.Sprintf(`
        SELECT transaction_id, user_id, category_id, amount, currency, date, description, created_at, updated_at
        FROM transactions
        WHERE %s
        ORDER BY date DESC
        LIMIT $%d OFFSET $%d;`, where, len(args)-1, len(args))

	rows, err := r.Pool.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	modelTxns := []models.Transaction{}
	for rows.Next() {
		var m models.Transaction
		if err := rows.Scan(&m.TransactionID, &m.UserID, &m.CategoryID, &m.Amount, &m.Currency, &m.Date, &m.Description, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		m.Description = r.decryptDescription(m.Description)
		modelTxns = append(modelTxns, m)
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("error iterating transaction rows: %w", rows.Err())
	}

	return mapping.ToDomainTransactionSlice(modelTxns), total, nil
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)

	encrypted, err := r.encryptDescription(m.Description)
	if err != nil {
		return err
	}

	query := `
        UPDATE transactions
        SET category_id = $1, amount = $2, currency = $3, date = $4, description = $5, updated_at = $6
        WHERE transaction_id = $7 AND user_id = $8;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.CategoryID, m.Amount, m.Currency, m.Date, encrypted, m.UpdatedAt, m.TransactionID, m.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("transaction not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, userID string, transactionID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1 AND user_id = $2;`, transactionID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("transaction not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxTransactionRepository) encryptDescription(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}
	encrypted, err := r.cipher.EncryptString(plaintext)
	if err != nil {
		return "", fmt.Errorf("failed to encrypt transaction description: %w", err)
	}
	return encrypted, nil
}

func (r *PgxTransactionRepository) decryptDescription(ciphertext string) string {
	return r.cipher.DecryptString(ciphertext)
}
