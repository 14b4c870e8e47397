package services

import (
	portsrepo "github.com/xpay-app/xpay_backend/internal/core/ports/repositories"
	portssvc "github.com/xpay-app/xpay_backend/internal/core/ports/services"
	"github.com/xpay-app/xpay_backend/internal/platform/config"
)

// RepositoryProvider bundles the repositories the service container needs.
type RepositoryProvider struct {
	User        portsrepo.UserRepositoryFacade
	Category    portsrepo.CategoryRepositoryFacade
	Transaction portsrepo.TransactionRepositoryFacade
}

// NewServiceContainer wires all application services over the given repositories.
func NewServiceContainer(cfg *config.Config, repos RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		User:        NewUserService(repos.User),
		Token:       NewTokenService(cfg),
		GoogleOAuth: NewGoogleOAuthService(cfg),
		Category:    NewCategoryService(repos.Category),
		Transaction: NewTransactionService(repos.Transaction),
	}
}
