package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/xpay-app/xpay_backend/internal/apperrors"
)

// GenerateJWT signs a new HS256 token for the given subject. Extra claims are copied
// first and sub/iat/exp are set afterwards, so callers can never overwrite them.
// A zero expiryOverride falls back to defaultExpiry.
func GenerateJWT(subject string, secret string, issuer string, defaultExpiry time.Duration, extraClaims map[string]any, expiryOverride time.Duration) (string, error) {
	expiry := defaultExpiry
	if expiryOverride > 0 {
		expiry = expiryOverride
	}

	now := time.Now()
	claims := jwt.MapClaims{}
	for k, v := range extraClaims {
		claims[k] = v
	}
	if issuer != "" {
		claims["iss"] = issuer
	}
	// Reserved claims win over anything caller-supplied.
	claims["sub"] = subject
	claims["iat"] = jwt.NewNumericDate(now)
	claims["exp"] = jwt.NewNumericDate(now.Add(expiry))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAndValidateJWT parses a token string and validates its signature and expiry.
// The signing method is checked before any claim is trusted, so a forged header
// cannot smuggle claims past verification. Every failure mode (bad signature,
// malformed token, expired) collapses into apperrors.ErrInvalidToken.
func ParseAndValidateJWT(tokenString string, secretKey string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secretKey), nil
	})

	if err != nil || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	return claims, nil
}
