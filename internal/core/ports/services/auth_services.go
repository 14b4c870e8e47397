package services

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"

	"github.com/xpay-app/xpay_backend/internal/core/domain"
)

// TokenSvcFacade defines the interface for bearer token issuance and verification.
type TokenSvcFacade interface {
	// IssueToken signs a token for the subject. extraClaims may carry auxiliary
	// data (echoed profile fields); reserved claims (sub/iat/exp) always win.
	// A zero expiryOverride uses the configured default duration.
	IssueToken(ctx context.Context, subject string, extraClaims map[string]any, expiryOverride time.Duration) (string, time.Time, error)

	// VerifyToken validates signature and expiry and returns the claim set.
	// All failures collapse into apperrors.ErrInvalidToken.
	VerifyToken(ctx context.Context, tokenString string) (jwt.MapClaims, error)
}

// GoogleOAuthSvcFacade defines the interface for Google OAuth operations.
type GoogleOAuthSvcFacade interface {
	// GenerateStateString creates a secure random string used as the CSRF state.
	GenerateStateString(ctx context.Context) (string, error)
	// GetGoogleLoginURL returns the URL to redirect the user to for Google login.
	GetGoogleLoginURL(ctx context.Context, state string) string
	// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
	// The exchange runs under a bounded timeout; timeouts surface as exchange failures.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)
	// FetchUserInfo resolves the federated identity claim for the token, preferring
	// a validated id_token when the provider returned one and falling back to the
	// userinfo endpoint.
	FetchUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error)
	// ValidateGoogleIDToken validates an ID token string from Google and returns its payload.
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}
