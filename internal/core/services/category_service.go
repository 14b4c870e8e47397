package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/xpay-app/xpay_backend/internal/apperrors"
	"github.com/xpay-app/xpay_backend/internal/core/domain"
	portsrepo "github.com/xpay-app/xpay_backend/internal/core/ports/repositories"
	portssvc "github.com/xpay-app/xpay_backend/internal/core/ports/services"
	"github.com/xpay-app/xpay_backend/internal/dto"
)

type categoryService struct {
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates a new instance of categoryService.
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: categoryRepo}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.Category, error) {
	now := time.Now()
	category := domain.Category{
		CategoryID:  uuid.NewString(),
		UserID:      &userID,
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &category, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, userID string, categoryID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	// Global categories are visible to everyone; owned ones only to their owner.
	if !category.IsGlobal() && *category.UserID != userID {
		return nil, apperrors.ErrNotFound
	}
	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	return s.categoryRepo.FindCategoriesForUser(ctx, userID)
}

func (s *categoryService) UpdateCategory(ctx context.Context, userID string, categoryID string, req dto.CreateCategoryRequest) (*domain.Category, error) {
	category, err := s.GetCategoryByID(ctx, userID, categoryID)
	if err != nil {
		return nil, err
	}
	if category.IsGlobal() {
		return nil, apperrors.NewForbiddenError("Cannot modify global categories")
	}

	category.Name = req.Name
	category.Description = req.Description
	category.UpdatedAt = time.Now()

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, userID string, categoryID string) error {
	category, err := s.GetCategoryByID(ctx, userID, categoryID)
	if err != nil {
		return err
	}
	if category.IsGlobal() {
		return apperrors.NewForbiddenError("Cannot delete global categories")
	}

	count, err := s.categoryRepo.CountTransactionsForCategory(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("failed to check category usage: %w", err)
	}
	if count > 0 {
		return apperrors.NewConflictError("Category is in use")
	}

	return s.categoryRepo.DeleteCategory(ctx, categoryID)
}
