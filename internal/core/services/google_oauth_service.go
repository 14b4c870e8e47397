package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"

	"github.com/xpay-app/xpay_backend/internal/core/domain"
	portssvc "github.com/xpay-app/xpay_backend/internal/core/ports/services"
	"github.com/xpay-app/xpay_backend/internal/platform/config"
	"github.com/xpay-app/xpay_backend/internal/utils"
)

// providerTimeout bounds every network call to Google. A timed-out exchange is
// reported like any other exchange failure.
const providerTimeout = 10 * time.Second

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// googleOAuthService implements GoogleOAuthSvcFacade using the standard
// authorization-code flow.
type googleOAuthService struct {
	cfg          *config.Config
	oauth2Config *oauth2.Config
	// userInfoURL is overridable so tests can point at a fake provider.
	userInfoURL string
}

// NewGoogleOAuthService creates a new instance of googleOAuthService.
func NewGoogleOAuthService(cfg *config.Config) portssvc.GoogleOAuthSvcFacade {
	return &googleOAuthService{
		cfg: cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
			Endpoint:     google.Endpoint,
		},
		userInfoURL: googleUserInfoURL,
	}
}

// NewGoogleOAuthServiceForEndpoint builds the service against a custom endpoint and
// userinfo URL. Used by tests to run the full callback flow against a fake provider.
func NewGoogleOAuthServiceForEndpoint(cfg *config.Config, endpoint oauth2.Endpoint, userInfoURL string) portssvc.GoogleOAuthSvcFacade {
	return &googleOAuthService{
		cfg: cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     endpoint,
		},
		userInfoURL: userInfoURL,
	}
}

func (s *googleOAuthService) GenerateStateString(ctx context.Context) (string, error) {
	// 16 bytes -> 32 char hex string
	state, err := utils.GenerateSecureRandomString(16)
	if err != nil {
		return "", fmt.Errorf("failed to generate state string for OAuth: %w", err)
	}
	return state, nil
}

func (s *googleOAuthService) GetGoogleLoginURL(ctx context.Context, state string) string {
	return s.oauth2Config.AuthCodeURL(state)
}

func (s *googleOAuthService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	ctx, cancel := context.WithTimeout(ctx, providerTimeout)
	defer cancel()

	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange oauth code for token: %w", err)
	}
	return token, nil
}

// FetchUserInfo resolves the federated identity claim. When Google returned an
// id_token alongside the access token it is validated and decoded locally;
// otherwise the userinfo endpoint is queried with the access token.
func (s *googleOAuthService) FetchUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error) {
	if idTokenString, ok := token.Extra("id_token").(string); ok && idTokenString != "" {
		payload, err := s.ValidateGoogleIDToken(ctx, idTokenString)
		if err != nil {
			return nil, err
		}
		email, _ := payload.Claims["email"].(string)
		name, _ := payload.Claims["name"].(string)
		verified, _ := payload.Claims["email_verified"].(bool)
		return &domain.GoogleUserInfo{
			ID:            payload.Subject,
			Email:         email,
			VerifiedEmail: verified,
			Name:          name,
		}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, providerTimeout)
	defer cancel()

	client := s.oauth2Config.Client(ctx, token)
	resp, err := client.Get(s.userInfoURL)
	if err != nil {
		return nil, fmt.Errorf("failed to get user info from google: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google api returned non-200 status for userinfo: %s", resp.Status)
	}

	var userInfo domain.GoogleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		return nil, fmt.Errorf("failed to decode user info from google: %w", err)
	}

	return &userInfo, nil
}

func (s *googleOAuthService) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	if s.cfg.GoogleClientID == "" {
		return nil, errors.New("google client ID is not configured in the application")
	}

	ctx, cancel := context.WithTimeout(ctx, providerTimeout)
	defer cancel()

	payload, err := idtoken.Validate(ctx, idTokenString, s.cfg.GoogleClientID)
	if err != nil {
		return nil, fmt.Errorf("google ID token validation failed: %w", err)
	}
	return payload, nil
}
