package utils_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xpay-app/xpay_backend/internal/apperrors"
	"github.com/xpay-app/xpay_backend/internal/utils"
)

const (
	testSecret = "test-secret-key"
	testIssuer = "test-issuer"
)

func TestGenerateJWT_RoundTrip(t *testing.T) {
	token, err := utils.GenerateJWT("user-123", testSecret, testIssuer, time.Hour, nil, 0)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ParseAndValidateJWT(token, testSecret)
	require.NoError(t, err)

	sub, err := claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, "user-123", sub)

	iss, err := claims.GetIssuer()
	require.NoError(t, err)
	assert.Equal(t, testIssuer, iss)

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp.Time, 5*time.Second)
}

func TestGenerateJWT_ExtraClaimsCarried(t *testing.T) {
	extra := map[string]any{
		"email":     "user@example.com",
		"full_name": "Some User",
	}
	token, err := utils.GenerateJWT("user-123", testSecret, testIssuer, time.Hour, extra, 0)
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", claims["email"])
	assert.Equal(t, "Some User", claims["full_name"])
}

func TestGenerateJWT_ReservedClaimsWin(t *testing.T) {
	// A caller trying to smuggle its own sub/exp through extra claims loses.
	extra := map[string]any{
		"sub": "attacker",
		"exp": time.Now().Add(24 * 365 * time.Hour).Unix(),
	}
	token, err := utils.GenerateJWT("real-subject", testSecret, testIssuer, time.Hour, extra, 0)
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(token, testSecret)
	require.NoError(t, err)

	sub, err := claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, "real-subject", sub)

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp.Time, 5*time.Second)
}

func TestGenerateJWT_ExpiryOverride(t *testing.T) {
	token, err := utils.GenerateJWT("user-123", testSecret, testIssuer, time.Hour, nil, 5*time.Minute)
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(token, testSecret)
	require.NoError(t, err)

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(5*time.Minute), exp.Time, 5*time.Second)
}

func TestParseAndValidateJWT_WrongSecret(t *testing.T) {
	token, err := utils.GenerateJWT("user-123", testSecret, testIssuer, time.Hour, nil, 0)
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(token, "a-different-secret")
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestParseAndValidateJWT_Expired(t *testing.T) {
	token, err := utils.GenerateJWT("user-123", testSecret, testIssuer, time.Hour, nil, -time.Minute)
	require.NoError(t, err)
	// Negative override falls back to the default; build a genuinely expired one directly.
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-123",
		"exp": jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	})
	expiredString, err := expired.SignedString([]byte(testSecret))
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(expiredString, testSecret)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)

	// The non-expired token from above is still fine.
	_, err = utils.ParseAndValidateJWT(token, testSecret)
	assert.NoError(t, err)
}

func TestParseAndValidateJWT_Malformed(t *testing.T) {
	for _, tokenString := range []string{"", "garbage", "a.b.c"} {
		claims, err := utils.ParseAndValidateJWT(tokenString, testSecret)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	}
}

func TestParseAndValidateJWT_RejectsNonHMACMethod(t *testing.T) {
	// alg=none style token must be rejected even with a valid-looking payload.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "user-123"})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(tokenString, testSecret)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
