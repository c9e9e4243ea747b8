package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"vendasim/internal/config"
	"vendasim/internal/domain"
	"vendasim/internal/service"
	"vendasim/mocks"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:             "test-secret-key-for-unit-tests",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 168 * time.Hour,
		Issuer:             "vendasim-test",
	}
}

func hashPassword(password string) string {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), 12)
	return string(hash)
}

func TestAuthService_Login_Success(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	user := &domain.User{
		ID:           uuid.New(),
		Email:        "trainee@test.com",
		PasswordHash: hashPassword("password123"),
		FullName:     "Test Trainee",
		Role:         domain.RoleTrainee,
		IsActive:     true,
	}
	userRepo.On("GetByEmail", mock.Anything, "trainee@test.com").Return(user, nil)

	result, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "trainee@test.com",
		Password: "password123",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.True(t, result.ExpiresAt.After(time.Now()))

	userRepo.AssertExpectations(t)
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	user := &domain.User{
		ID:           uuid.New(),
		Email:        "trainee@test.com",
		PasswordHash: hashPassword("correct-password"),
		IsActive:     true,
	}
	userRepo.On("GetByEmail", mock.Anything, "trainee@test.com").Return(user, nil)

	result, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "trainee@test.com",
		Password: "wrong-password",
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	userRepo.On("GetByEmail", mock.Anything, "ghost@test.com").Return(nil, domain.ErrNotFound)

	result, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "ghost@test.com",
		Password: "password123",
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_InactiveUser(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	user := &domain.User{
		ID:           uuid.New(),
		Email:        "inactive@test.com",
		PasswordHash: hashPassword("password123"),
		IsActive:     false,
	}
	userRepo.On("GetByEmail", mock.Anything, "inactive@test.com").Return(user, nil)

	result, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "inactive@test.com",
		Password: "password123",
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrUserInactive)
}

func TestAuthService_ValidateToken_RoundTrip(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	user := &domain.User{
		ID:           uuid.New(),
		Email:        "admin@test.com",
		PasswordHash: hashPassword("password123"),
		Role:         domain.RoleAdmin,
		IsActive:     true,
	}
	userRepo.On("GetByEmail", mock.Anything, "admin@test.com").Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "admin@test.com",
		Password: "password123",
	})
	assert.NoError(t, err)

	claims, err := svc.ValidateToken(pair.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestAuthService_ValidateToken_RejectsRefreshToken(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	user := &domain.User{
		ID:           uuid.New(),
		Email:        "trainee@test.com",
		PasswordHash: hashPassword("password123"),
		Role:         domain.RoleTrainee,
		IsActive:     true,
	}
	userRepo.On("GetByEmail", mock.Anything, "trainee@test.com").Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "trainee@test.com",
		Password: "password123",
	})
	assert.NoError(t, err)

	// A refresh token must not pass access-token validation.
	claims, err := svc.ValidateToken(pair.RefreshToken)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestAuthService_RefreshToken_Success(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	user := &domain.User{
		ID:           uuid.New(),
		Email:        "trainee@test.com",
		PasswordHash: hashPassword("password123"),
		Role:         domain.RoleTrainee,
		IsActive:     true,
	}
	userRepo.On("GetByEmail", mock.Anything, "trainee@test.com").Return(user, nil)
	userRepo.On("GetByID", mock.Anything, user.ID).Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "trainee@test.com",
		Password: "password123",
	})
	assert.NoError(t, err)

	renewed, err := svc.RefreshToken(context.Background(), pair.RefreshToken)
	assert.NoError(t, err)
	assert.NotEmpty(t, renewed.AccessToken)
}

func TestAuthService_RefreshToken_Garbage(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	renewed, err := svc.RefreshToken(context.Background(), "not-a-token")
	assert.Nil(t, renewed)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
