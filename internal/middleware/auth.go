package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	portssvc "github.com/xpay-app/xpay_backend/internal/core/ports/services"
)

// credentialFailureMessage is the single message returned for every resolution
// failure. Bad token, missing subject claim and unknown user are deliberately
// indistinguishable to the caller.
const credentialFailureMessage = "Could not validate credentials"

// AuthMiddleware resolves the acting user from the bearer token: verify the token,
// extract the subject claim, and look the user up in the store. The active flag is
// not re-checked here; an issued token is trusted until it expires.
func AuthMiddleware(tokenService portssvc.TokenSvcFacade, userService portssvc.UserSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
			logger.Warn("Authorization header missing or malformed")
			abortUnauthorized(c)
			return
		}

		claims, err := tokenService.VerifyToken(c.Request.Context(), parts[1])
		if err != nil {
			logger.Warn("Token verification failed", slog.String("error", err.Error()))
			abortUnauthorized(c)
			return
		}

		subject, err := claims.GetSubject()
		if err != nil || subject == "" {
			logger.Warn("Subject claim missing from valid token")
			abortUnauthorized(c)
			return
		}

		user, err := userService.GetUserByID(c.Request.Context(), subject)
		if err != nil || user == nil {
			logger.Warn("Token subject does not match a stored user", slog.String("subject", subject))
			abortUnauthorized(c)
			return
		}

		ctxWithUser := context.WithValue(c.Request.Context(), userIDKey, user.UserID)
		enrichedLogger := logger.With(slog.String("user_id", user.UserID))
		c.Request = c.Request.WithContext(context.WithValue(ctxWithUser, loggerCtxKey, enrichedLogger))

		c.Next()
	}
}

// abortUnauthorized writes the uniform 401 with a re-authentication challenge.
func abortUnauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": credentialFailureMessage})
}
