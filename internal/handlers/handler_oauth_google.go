package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/xpay-app/xpay_backend/internal/apperrors"
	portssvc "github.com/xpay-app/xpay_backend/internal/core/ports/services"
	"github.com/xpay-app/xpay_backend/internal/middleware"
	"github.com/xpay-app/xpay_backend/internal/platform/config"
)

const (
	oauthStateCookieName = "oauth_state"
	oauthStateCookieTTL  = 600 // seconds
)

// GoogleOAuthHandler handles the browser-redirect Google login flow: it sends the
// user to Google with a signed CSRF state, then on callback exchanges the code,
// resolves or creates the local account, and hands the browser back to the
// frontend with an application token.
type GoogleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthSvcFacade
	userService        portssvc.UserSvcFacade
	tokenService       portssvc.TokenSvcFacade
	sessionSecret      string
	frontendBaseURL    string
	secureCookies      bool
}

// NewGoogleOAuthHandler creates a new GoogleOAuthHandler.
func NewGoogleOAuthHandler(services *portssvc.ServiceContainer, cfg *config.Config) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{
		googleOAuthService: services.GoogleOAuth,
		userService:        services.User,
		tokenService:       services.Token,
		sessionSecret:      cfg.SessionSecret,
		frontendBaseURL:    cfg.FrontendBaseURL,
		secureCookies:      cfg.IsProduction,
	}
}

// registerGoogleOAuthRoutes registers the Google OAuth routes. Skipped entirely
// when the provider is not configured.
func registerGoogleOAuthRoutes(rg *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	if !cfg.GoogleOAuthEnabled {
		return
	}
	h := NewGoogleOAuthHandler(services, cfg)

	googleRoutes := rg.Group("/auth/google")
	{
		googleRoutes.GET("/login", h.InitiateGoogleLogin)
		googleRoutes.GET("/callback", h.CallbackGoogle)
	}
}

// InitiateGoogleLogin godoc
// @Summary Start Google login
// @Description Redirects the browser to Google's consent screen with a CSRF state.
// @Tags oauth
// @Success 302
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/login [get]
func (h *GoogleOAuthHandler) InitiateGoogleLogin(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	state, err := h.googleOAuthService.GenerateStateString(ctx)
	if err != nil {
		logger.Error("Failed to generate OAuth state", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to start login flow"})
		return
	}

	// The cookie holds an HMAC of the state, not the state itself, so a stolen
	// cookie alone cannot forge a matching callback.
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookieName, h.signState(state), oauthStateCookieTTL, "/", "", h.secureCookies, true)

	c.Redirect(http.StatusFound, h.googleOAuthService.GetGoogleLoginURL(ctx, state))
}

// CallbackGoogle godoc
// @Summary Google login callback
// @Description Completes the Google login flow and redirects to the frontend with an access token.
// @Tags oauth
// @Success 302
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /auth/google/callback [get]
func (h *GoogleOAuthHandler) CallbackGoogle(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	if errParam := c.Query("error"); errParam != "" {
		logger.Warn("Google returned an error on callback", slog.String("error", errParam))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Google login was cancelled or failed"})
		return
	}

	state := c.Query("state")
	cookieValue, err := c.Cookie(oauthStateCookieName)
	if err != nil || state == "" || !hmac.Equal([]byte(cookieValue), []byte(h.signState(state))) {
		logger.Warn("OAuth state mismatch on callback")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid OAuth state"})
		return
	}
	// One-shot state: clear the cookie whether or not the rest succeeds.
	c.SetCookie(oauthStateCookieName, "", -1, "/", "", h.secureCookies, true)

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Authorization code is required"})
		return
	}

	oauth2Token, err := h.googleOAuthService.ExchangeCodeForToken(ctx, code)
	if err != nil {
		logger.Error("Failed to exchange authorization code with Google", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Failed to communicate with Google"})
		return
	}

	userInfo, err := h.googleOAuthService.FetchUserInfo(ctx, oauth2Token)
	if err != nil {
		logger.Error("Failed to fetch Google user info", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Failed to retrieve user info from Google"})
		return
	}

	user, err := h.userService.FindOrCreateOAuthUser(ctx, userInfo.Email, userInfo.Name)
	if err != nil {
		if errors.Is(err, apperrors.ErrMissingEmail) {
			logger.Warn("Google account has no email address")
		} else {
			logger.Error("Failed to resolve OAuth user", slog.String("error", err.Error()))
		}
		respondWithError(c, err)
		return
	}

	extraClaims := map[string]any{
		"email":     user.Email,
		"full_name": user.FullName,
	}
	accessToken, _, err := h.tokenService.IssueToken(ctx, user.UserID, extraClaims, 0)
	if err != nil {
		logger.Error("Failed to issue access token", slog.String("error", err.Error()), slog.String("user_id", user.UserID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	logger.Info("Google login completed", slog.String("user_id", user.UserID))

	redirectURL := h.frontendBaseURL + "/?access_token=" + url.QueryEscape(accessToken)
	c.Redirect(http.StatusFound, redirectURL)
}

// signState derives the cookie value from the state using the session secret.
func (h *GoogleOAuthHandler) signState(state string) string {
	mac := hmac.New(sha256.New, []byte(h.sessionSecret))
	mac.Write([]byte(state))
	return hex.EncodeToString(mac.Sum(nil))
}
