package services

import (
	"context"

	"github.com/xpay-app/xpay_backend/internal/core/domain"
	"github.com/xpay-app/xpay_backend/internal/dto"
)

// UserSvcFacade defines the interface for user management and credential checks.
type UserSvcFacade interface {
	// RegisterUser creates a new active user with a hashed password.
	// Returns a conflict AppError when the email is already registered, including
	// when a concurrent registration wins the store-level uniqueness race.
	RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// AuthenticateUser verifies email+password. Unknown email, missing password
	// hash, wrong password and inactive account all fail with the same
	// apperrors.ErrInvalidCredentials.
	AuthenticateUser(ctx context.Context, email string, password string) (*domain.User, error)

	// FindOrCreateOAuthUser reconciles a validated federated identity with the
	// local store. New accounts are created active with no password hash.
	FindOrCreateOAuthUser(ctx context.Context, email string, fullName string) (*domain.User, error)

	// GetUserByID retrieves a user by their ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// UpdateUser applies profile changes for the given user.
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error)

	// DeactivateUser clears the active flag. Already-issued tokens stay valid
	// until expiry; there is no revocation mechanism.
	DeactivateUser(ctx context.Context, userID string) error
}
