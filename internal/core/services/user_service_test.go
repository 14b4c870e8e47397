package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/xpay-app/xpay_backend/internal/apperrors"
	"github.com/xpay-app/xpay_backend/internal/core/domain"
	portssvc "github.com/xpay-app/xpay_backend/internal/core/ports/services"
	"github.com/xpay-app/xpay_backend/internal/core/services"
	"github.com/xpay-app/xpay_backend/internal/dto"
	"github.com/xpay-app/xpay_backend/internal/utils"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

// --- RegisterUser Tests ---

func (suite *UserServiceTestSuite) TestRegisterUser_Success() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Email:    "New.User@Example.COM",
		Password: "password123",
		FullName: "New User",
	}

	suite.mockUserRepo.On("FindUserByEmail", ctx, "new.user@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Email == "new.user@example.com" &&
			user.FullName == "New User" &&
			user.IsActive &&
			user.PasswordHash != "" &&
			user.PasswordHash != req.Password
	})).Return(nil).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.Equal("new.user@example.com", user.Email)
	suite.NotEmpty(user.UserID)
	suite.True(user.IsActive)
	suite.True(utils.CheckPasswordHash(req.Password, user.PasswordHash))

	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterUser_DuplicateEmail() {
	ctx := context.Background()
	req := dto.RegisterRequest{Email: "taken@example.com", Password: "password123"}
	existing := &domain.User{UserID: uuid.NewString(), Email: "taken@example.com"}

	suite.mockUserRepo.On("FindUserByEmail", ctx, "taken@example.com").Return(existing, nil).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(409, appErr.Code)

	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterUser_RaceLoserGetsConflict() {
	// The optimistic check misses but the store-level unique index fires.
	ctx := context.Background()
	req := dto.RegisterRequest{Email: "raced@example.com", Password: "password123"}

	suite.mockUserRepo.On("FindUserByEmail", ctx, "raced@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(apperrors.ErrDuplicate).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(409, appErr.Code)

	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- AuthenticateUser Tests ---

func (suite *UserServiceTestSuite) registeredUser(password string) *domain.User {
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	return &domain.User{
		UserID:       uuid.NewString(),
		Email:        "user@example.com",
		PasswordHash: hash,
		IsActive:     true,
	}
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	user := suite.registeredUser("password123")

	suite.mockUserRepo.On("FindUserByEmail", ctx, "user@example.com").Return(user, nil).Once()

	got, err := suite.service.AuthenticateUser(ctx, "User@Example.com", "password123")

	suite.Require().NoError(err)
	suite.Equal(user.UserID, got.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownEmail() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "nobody@example.com").Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.AuthenticateUser(ctx, "nobody@example.com", "password123")

	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	user := suite.registeredUser("password123")
	suite.mockUserRepo.On("FindUserByEmail", ctx, "user@example.com").Return(user, nil).Once()

	got, err := suite.service.AuthenticateUser(ctx, "user@example.com", "wrong-password")

	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_OAuthOnlyAccount() {
	// No local password hash: password login must fail indistinguishably.
	ctx := context.Background()
	user := &domain.User{UserID: uuid.NewString(), Email: "user@example.com", IsActive: true}
	suite.mockUserRepo.On("FindUserByEmail", ctx, "user@example.com").Return(user, nil).Once()

	got, err := suite.service.AuthenticateUser(ctx, "user@example.com", "anything")

	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_InactiveAccount() {
	ctx := context.Background()
	user := suite.registeredUser("password123")
	user.IsActive = false
	suite.mockUserRepo.On("FindUserByEmail", ctx, "user@example.com").Return(user, nil).Once()

	got, err := suite.service.AuthenticateUser(ctx, "user@example.com", "password123")

	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- FindOrCreateOAuthUser Tests ---

func (suite *UserServiceTestSuite) TestFindOrCreateOAuthUser_ExistingUserReused() {
	ctx := context.Background()
	existing := &domain.User{UserID: uuid.NewString(), Email: "user@example.com", FullName: "Original Name"}
	suite.mockUserRepo.On("FindUserByEmail", ctx, "user@example.com").Return(existing, nil).Once()

	got, err := suite.service.FindOrCreateOAuthUser(ctx, "User@Example.com", "Provider Name")

	suite.Require().NoError(err)
	suite.Equal(existing.UserID, got.UserID)
	// Provider profile fields never overwrite the stored ones.
	suite.Equal("Original Name", got.FullName)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestFindOrCreateOAuthUser_CreatesPasswordlessUser() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "new@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Email == "new@example.com" &&
			user.FullName == "Provider Name" &&
			user.IsActive &&
			user.PasswordHash == ""
	})).Return(nil).Once()

	got, err := suite.service.FindOrCreateOAuthUser(ctx, "new@example.com", "Provider Name")

	suite.Require().NoError(err)
	suite.False(got.HasPassword())
	suite.True(got.IsActive)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestFindOrCreateOAuthUser_MissingNameDefaults() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "new@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(nil).Once()

	got, err := suite.service.FindOrCreateOAuthUser(ctx, "new@example.com", "")

	suite.Require().NoError(err)
	suite.Equal("Unknown", got.FullName)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestFindOrCreateOAuthUser_MissingEmail() {
	ctx := context.Background()

	got, err := suite.service.FindOrCreateOAuthUser(ctx, "", "Provider Name")

	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrMissingEmail)
}

func (suite *UserServiceTestSuite) TestFindOrCreateOAuthUser_ConcurrentCreateReusesWinner() {
	ctx := context.Background()
	winner := &domain.User{UserID: uuid.NewString(), Email: "raced@example.com"}

	suite.mockUserRepo.On("FindUserByEmail", ctx, "raced@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(apperrors.ErrDuplicate).Once()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "raced@example.com").Return(winner, nil).Once()

	got, err := suite.service.FindOrCreateOAuthUser(ctx, "raced@example.com", "Name")

	suite.Require().NoError(err)
	suite.Equal(winner.UserID, got.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- UpdateUser / DeactivateUser Tests ---

func (suite *UserServiceTestSuite) TestUpdateUser_ChangesFullName() {
	ctx := context.Background()
	userID := uuid.NewString()
	stored := &domain.User{UserID: userID, Email: "user@example.com", FullName: "Old Name"}
	newName := "New Name"

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(stored, nil).Once()
	suite.mockUserRepo.On("UpdateUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.UserID == userID && user.FullName == newName
	})).Return(nil).Once()

	got, err := suite.service.UpdateUser(ctx, userID, dto.UpdateUserRequest{FullName: &newName})

	suite.Require().NoError(err)
	suite.Equal(newName, got.FullName)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestDeactivateUser_ClearsActiveFlag() {
	ctx := context.Background()
	userID := uuid.NewString()
	stored := &domain.User{UserID: userID, Email: "user@example.com", IsActive: true}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(stored, nil).Once()
	suite.mockUserRepo.On("UpdateUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.UserID == userID && !user.IsActive
	})).Return(nil).Once()

	err := suite.service.DeactivateUser(ctx, userID)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestDeactivateUser_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeactivateUser(ctx, userID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
