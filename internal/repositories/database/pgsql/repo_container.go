package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xpay-app/xpay_backend/internal/core/services"
	"github.com/xpay-app/xpay_backend/internal/utils/fieldcipher"
)

// NewRepositoryProvider wires all pgx repositories over one shared pool.
func NewRepositoryProvider(pool *pgxpool.Pool, cipher *fieldcipher.Cipher) services.RepositoryProvider {
	return services.RepositoryProvider{
		User:        NewUserRepository(pool),
		Category:    NewCategoryRepository(pool),
		Transaction: NewTransactionRepository(pool, cipher),
	}
}
