package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/xpay-app/xpay_backend/internal/apperrors"
	"github.com/xpay-app/xpay_backend/internal/core/domain"
	portssvc "github.com/xpay-app/xpay_backend/internal/core/ports/services"
	"github.com/xpay-app/xpay_backend/internal/dto"
	"github.com/xpay-app/xpay_backend/internal/handlers"
)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserService) AuthenticateUser(ctx context.Context, email string, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserService) FindOrCreateOAuthUser(ctx context.Context, email string, fullName string) (*domain.User, error) {
	args := m.Called(ctx, email, fullName)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, userID, req)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserService) DeactivateUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) IssueToken(ctx context.Context, subject string, extraClaims map[string]any, expiryOverride time.Duration) (string, time.Time, error) {
	args := m.Called(ctx, subject, extraClaims, expiryOverride)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockTokenService) VerifyToken(ctx context.Context, tokenString string) (jwt.MapClaims, error) {
	args := m.Called(ctx, tokenString)
	var claims jwt.MapClaims
	if args.Get(0) != nil {
		claims = args.Get(0).(jwt.MapClaims)
	}
	return claims, args.Error(1)
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

// --- Test Suite ---
type AuthHandlerTestSuite struct {
	suite.Suite
	mockUserService  *MockUserService
	mockTokenService *MockTokenService
	router           *gin.Engine
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockUserService = new(MockUserService)
	suite.mockTokenService = new(MockTokenService)

	h := handlers.NewAuthHandler(suite.mockUserService, suite.mockTokenService)
	suite.router = gin.New()
	suite.router.POST("/auth/register", h.Register)
	suite.router.POST("/auth/login", h.Login)
}

func (suite *AuthHandlerTestSuite) postJSON(path string, body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func testUser() *domain.User {
	return &domain.User{
		UserID:   "user-1",
		Email:    "user@example.com",
		FullName: "Test User",
		IsActive: true,
	}
}

// --- Register Tests ---

func (suite *AuthHandlerTestSuite) TestRegister_Success() {
	user := testUser()
	suite.mockUserService.On("RegisterUser", mock.Anything, mock.MatchedBy(func(req dto.RegisterRequest) bool {
		return req.Email == "user@example.com"
	})).Return(user, nil).Once()
	suite.mockTokenService.On("IssueToken", mock.Anything, "user-1", mock.Anything, time.Duration(0)).
		Return("signed-token", time.Now().Add(time.Hour), nil).Once()

	w := suite.postJSON("/auth/register", gin.H{
		"email":     "user@example.com",
		"password":  "password123",
		"full_name": "Test User",
	})

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.AuthResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("signed-token", resp.AccessToken)
	suite.Equal("bearer", resp.TokenType)
	suite.Equal("user@example.com", resp.User.Email)

	suite.mockUserService.AssertExpectations(suite.T())
	suite.mockTokenService.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestRegister_DuplicateEmail() {
	suite.mockUserService.On("RegisterUser", mock.Anything, mock.AnythingOfType("dto.RegisterRequest")).
		Return(nil, apperrors.NewConflictError("Email already registered")).Once()

	w := suite.postJSON("/auth/register", gin.H{
		"email":    "taken@example.com",
		"password": "password123",
	})

	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(w.Body.String(), "Email already registered")
}

func (suite *AuthHandlerTestSuite) TestRegister_ShortPassword() {
	w := suite.postJSON("/auth/register", gin.H{
		"email":    "user@example.com",
		"password": "short",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockUserService.AssertNotCalled(suite.T(), "RegisterUser")
}

func (suite *AuthHandlerTestSuite) TestRegister_InvalidEmail() {
	w := suite.postJSON("/auth/register", gin.H{
		"email":    "not-an-email",
		"password": "password123",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockUserService.AssertNotCalled(suite.T(), "RegisterUser")
}

// --- Login Tests ---

func (suite *AuthHandlerTestSuite) TestLogin_Success() {
	user := testUser()
	suite.mockUserService.On("AuthenticateUser", mock.Anything, "user@example.com", "password123").
		Return(user, nil).Once()
	suite.mockTokenService.On("IssueToken", mock.Anything, "user-1", mock.Anything, time.Duration(0)).
		Return("signed-token", time.Now().Add(time.Hour), nil).Once()

	w := suite.postJSON("/auth/login", gin.H{
		"email":    "user@example.com",
		"password": "password123",
	})

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.AuthResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("signed-token", resp.AccessToken)
	suite.Equal("bearer", resp.TokenType)
}

func (suite *AuthHandlerTestSuite) TestLogin_InvalidCredentials() {
	suite.mockUserService.On("AuthenticateUser", mock.Anything, "user@example.com", "wrong").
		Return(nil, apperrors.ErrInvalidCredentials).Once()

	w := suite.postJSON("/auth/login", gin.H{
		"email":    "user@example.com",
		"password": "wrong",
	})

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Contains(w.Body.String(), "Invalid email or password")
	suite.Equal("Bearer", w.Header().Get("WWW-Authenticate"))
}

func (suite *AuthHandlerTestSuite) TestLogin_UnknownEmailSameResponse() {
	// Unknown account and wrong password produce identical responses.
	suite.mockUserService.On("AuthenticateUser", mock.Anything, "ghost@example.com", "password123").
		Return(nil, apperrors.ErrInvalidCredentials).Once()

	w := suite.postJSON("/auth/login", gin.H{
		"email":    "ghost@example.com",
		"password": "password123",
	})

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Contains(w.Body.String(), "Invalid email or password")
}

func (suite *AuthHandlerTestSuite) TestLogin_MissingFields() {
	w := suite.postJSON("/auth/login", gin.H{"email": "user@example.com"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockUserService.AssertNotCalled(suite.T(), "AuthenticateUser")
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
