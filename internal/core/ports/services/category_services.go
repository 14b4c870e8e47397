package services

import (
	"context"

	"github.com/xpay-app/xpay_backend/internal/core/domain"
	"github.com/xpay-app/xpay_backend/internal/dto"
)

// CategorySvcFacade defines the interface for category management.
// Global categories (no owner) are readable by everyone but immutable via the API.
type CategorySvcFacade interface {
	CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.Category, error)
	GetCategoryByID(ctx context.Context, userID string, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context, userID string) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, userID string, categoryID string, req dto.CreateCategoryRequest) (*domain.Category, error)
	DeleteCategory(ctx context.Context, userID string, categoryID string) error
}
