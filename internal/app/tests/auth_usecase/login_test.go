package authusecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"notehub/internal/app"
	"notehub/internal/domain/entities"
	"notehub/internal/domain/services"
)

var (
	ErrDatabaseConnection   = errors.New("database connection error")
	ErrPasswordVerification = errors.New("password verification error")
	ErrTokenGeneration      = errors.New("token generation failed")
)

func TestLogin(t *testing.T) {
	testUsername := "alice"
	testPassword := "pw1"
	userID := "user-123"
	hashedPassword := "hashed_password"

	now := time.Now()
	tokenExpiry := now.Add(15 * time.Minute)
	accessToken := "access-token-123"

	testUser := &entities.User{
		ID:           userID,
		Username:     testUsername,
		PasswordHash: hashedPassword,
		CreatedAt:    now.Add(-24 * time.Hour),
	}

	expectedSession := &services.Session{
		UserID:    userID,
		Token:     accessToken,
		ExpiresAt: tokenExpiry,
	}

	tests := []struct {
		name         string
		username     string
		password     string
		setupMocks   func(mockUserRepo *mockUserRepository, mockPasswordSvc *mockPasswordService, mockTokenSvc *mockTokenService)
		expectedRes  *services.Session
		expectedErr  error
		errorContext string
	}{
		{
			name:     "success - user logged in successfully",
			username: testUsername,
			password: testPassword,
			setupMocks: func(mockUserRepo *mockUserRepository, mockPasswordSvc *mockPasswordService, mockTokenSvc *mockTokenService) {
				mockUserRepo.On("FindByUsername", mock.Anything, testUsername).Return(testUser, nil).Once()
				mockPasswordSvc.On("Verify", mock.Anything, testPassword, hashedPassword).Return(true, nil).Once()
				mockTokenSvc.On("GenerateToken", mock.Anything, userID).
					Return(accessToken, tokenExpiry, nil).Once()
			},
			expectedRes: expectedSession,
			expectedErr: nil,
		},
		{
			name:     "error - user not found",
			username: "nonexistent",
			password: testPassword,
			setupMocks: func(mockUserRepo *mockUserRepository, _ *mockPasswordService, _ *mockTokenService) {
				mockUserRepo.On("FindByUsername", mock.Anything, "nonexistent").
					Return(nil, entities.ErrUserNotFound).Once()
			},
			expectedRes:  nil,
			expectedErr:  services.ErrInvalidCredentials,
			errorContext: "invalid credentials",
		},
		{
			name:     "error - database error finding user",
			username: testUsername,
			password: testPassword,
			setupMocks: func(mockUserRepo *mockUserRepository, _ *mockPasswordService, _ *mockTokenService) {
				mockUserRepo.On("FindByUsername", mock.Anything, testUsername).
					Return(nil, ErrDatabaseConnection).Once()
			},
			expectedRes:  nil,
			expectedErr:  ErrDatabaseConnection,
			errorContext: "finding user",
		},
		{
			name:     "error - password verification error",
			username: testUsername,
			password: testPassword,
			setupMocks: func(mockUserRepo *mockUserRepository, mockPasswordSvc *mockPasswordService, _ *mockTokenService) {
				mockUserRepo.On("FindByUsername", mock.Anything, testUsername).Return(testUser, nil).Once()
				mockPasswordSvc.On("Verify", mock.Anything, testPassword, hashedPassword).
					Return(false, ErrPasswordVerification).Once()
			},
			expectedRes:  nil,
			expectedErr:  ErrPasswordVerification,
			errorContext: "verifying password",
		},
		{
			name:     "error - invalid password",
			username: testUsername,
			password: "wrongpassword",
			setupMocks: func(mockUserRepo *mockUserRepository, mockPasswordSvc *mockPasswordService, _ *mockTokenService) {
				mockUserRepo.On("FindByUsername", mock.Anything, testUsername).Return(testUser, nil).Once()
				mockPasswordSvc.On("Verify", mock.Anything, "wrongpassword", hashedPassword).
					Return(false, nil).Once()
			},
			expectedRes:  nil,
			expectedErr:  services.ErrInvalidCredentials,
			errorContext: "invalid credentials",
		},
		{
			name:     "error - token generation fails",
			username: testUsername,
			password: testPassword,
			setupMocks: func(mockUserRepo *mockUserRepository, mockPasswordSvc *mockPasswordService, mockTokenSvc *mockTokenService) {
				mockUserRepo.On("FindByUsername", mock.Anything, testUsername).Return(testUser, nil).Once()
				mockPasswordSvc.On("Verify", mock.Anything, testPassword, hashedPassword).Return(true, nil).Once()
				mockTokenSvc.On("GenerateToken", mock.Anything, userID).
					Return("", time.Time{}, ErrTokenGeneration).Once()
			},
			expectedRes:  nil,
			expectedErr:  services.ErrTokenGenerationFailed,
			errorContext: "generating token",
		},
	}

	for _, ttt := range tests {
		t.Run(ttt.name, func(t *testing.T) {
			mockUserRepo := new(mockUserRepository)
			mockPasswordSvc := new(mockPasswordService)
			mockTokenSvc := new(mockTokenService)

			ttt.setupMocks(mockUserRepo, mockPasswordSvc, mockTokenSvc)

			authUseCase := app.NewAuthUseCase(mockUserRepo, mockPasswordSvc, mockTokenSvc)

			ctx := context.Background()
			session, err := authUseCase.Login(ctx, ttt.username, ttt.password)

			if ttt.expectedErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), ttt.errorContext)

				if errors.Is(err, services.ErrInvalidCredentials) ||
					errors.Is(err, services.ErrTokenGenerationFailed) {
					assert.ErrorIs(t, err, ttt.expectedErr)
				}

				assert.Nil(t, session)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, session)
				assert.Equal(t, ttt.expectedRes.UserID, session.UserID)
				assert.Equal(t, ttt.expectedRes.Token, session.Token)
				assert.Equal(t, ttt.expectedRes.ExpiresAt, session.ExpiresAt)
			}

			mockUserRepo.AssertExpectations(t)
			mockPasswordSvc.AssertExpectations(t)
			mockTokenSvc.AssertExpectations(t)
		})
	}
}
