package repositories

import (
	"context"

	"github.com/xpay-app/xpay_backend/internal/core/domain"
)

// CategoryRepositoryFacade defines persistence operations for categories.
type CategoryRepositoryFacade interface {
	SaveCategory(ctx context.Context, category domain.Category) error

	// FindCategoryByID retrieves a category regardless of ownership; the service
	// layer decides visibility.
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// FindCategoriesForUser lists global categories plus those owned by userID.
	FindCategoriesForUser(ctx context.Context, userID string) ([]domain.Category, error)

	UpdateCategory(ctx context.Context, category domain.Category) error

	DeleteCategory(ctx context.Context, categoryID string) error

	// CountTransactionsForCategory reports how many transactions reference the category.
	CountTransactionsForCategory(ctx context.Context, categoryID string) (int64, error)
}
