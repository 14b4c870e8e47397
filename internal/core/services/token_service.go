package services

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	portssvc "github.com/xpay-app/xpay_backend/internal/core/ports/services"
	"github.com/xpay-app/xpay_backend/internal/platform/config"
	"github.com/xpay-app/xpay_backend/internal/utils"
)

// tokenService implements TokenSvcFacade on top of HS256 JWTs. Tokens are stateless:
// validity is purely a function of signature and expiry, there is no revocation list.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

func (s *tokenService) IssueToken(ctx context.Context, subject string, extraClaims map[string]any, expiryOverride time.Duration) (string, time.Time, error) {
	expiry := s.cfg.JWTExpiryDuration
	if expiryOverride > 0 {
		expiry = expiryOverride
	}
	expiryTime := time.Now().Add(expiry)

	token, err := utils.GenerateJWT(subject, s.cfg.JWTSecret, s.cfg.JWTIssuer, s.cfg.JWTExpiryDuration, extraClaims, expiryOverride)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiryTime, nil
}

func (s *tokenService) VerifyToken(ctx context.Context, tokenString string) (jwt.MapClaims, error) {
	return utils.ParseAndValidateJWT(tokenString, s.cfg.JWTSecret)
}
