package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vendasim/internal/domain"
	"vendasim/internal/service"
	"vendasim/mocks"
)

func TestPasswordResetService_ForgotPassword_SendsEmail(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	emailSender := new(mocks.MockEmailSender)
	svc := service.NewPasswordResetService(userRepo, emailSender, testJWTConfig())

	user := &domain.User{
		ID:       uuid.New(),
		Email:    "trainee@test.com",
		FullName: "Test Trainee",
		Role:     domain.RoleTrainee,
		IsActive: true,
	}

	userRepo.On("GetByEmail", mock.Anything, "trainee@test.com").Return(user, nil)
	userRepo.On("SetPasswordResetToken", mock.Anything, user.ID, mock.AnythingOfType("string")).Return(nil)
	emailSender.On("SendPasswordResetEmail", mock.Anything, "trainee@test.com", "Test Trainee", mock.AnythingOfType("string")).Return(nil)

	err := svc.ForgotPassword(context.Background(), service.ForgotPasswordInput{Email: "trainee@test.com"})

	require.NoError(t, err)
	userRepo.AssertExpectations(t)
	emailSender.AssertExpectations(t)
}

func TestPasswordResetService_ForgotPassword_UnknownEmailStillSucceeds(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	emailSender := new(mocks.MockEmailSender)
	svc := service.NewPasswordResetService(userRepo, emailSender, testJWTConfig())

	userRepo.On("GetByEmail", mock.Anything, "ghost@test.com").Return(nil, domain.ErrNotFound)

	err := svc.ForgotPassword(context.Background(), service.ForgotPasswordInput{Email: "ghost@test.com"})

	assert.NoError(t, err)
	emailSender.AssertNotCalled(t, "SendPasswordResetEmail")
}

func TestPasswordResetService_ResetPassword_RoundTrip(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	emailSender := new(mocks.MockEmailSender)
	svc := service.NewPasswordResetService(userRepo, emailSender, testJWTConfig())

	user := &domain.User{
		ID:       uuid.New(),
		Email:    "trainee@test.com",
		FullName: "Test Trainee",
		Role:     domain.RoleTrainee,
		IsActive: true,
	}

	var sentToken string
	var storedJTI string
	userRepo.On("GetByEmail", mock.Anything, "trainee@test.com").Return(user, nil)
	userRepo.On("SetPasswordResetToken", mock.Anything, user.ID, mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { storedJTI = args.String(2) }).
		Return(nil)
	emailSender.On("SendPasswordResetEmail", mock.Anything, user.Email, user.FullName, mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { sentToken = args.String(3) }).
		Return(nil)

	require.NoError(t, svc.ForgotPassword(context.Background(), service.ForgotPasswordInput{Email: "trainee@test.com"}))
	require.NotEmpty(t, sentToken)

	userRepo.On("ResetPassword", mock.Anything, user.ID, mock.AnythingOfType("string"), storedJTI).Return(nil)

	err := svc.ResetPassword(context.Background(), service.ResetPasswordInput{
		Token:       sentToken,
		NewPassword: "new-password-123",
	})

	require.NoError(t, err)
	userRepo.AssertExpectations(t)
}

func TestPasswordResetService_ResetPassword_GarbageToken(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	emailSender := new(mocks.MockEmailSender)
	svc := service.NewPasswordResetService(userRepo, emailSender, testJWTConfig())

	err := svc.ResetPassword(context.Background(), service.ResetPasswordInput{
		Token:       "not-a-token",
		NewPassword: "new-password-123",
	})

	assert.ErrorIs(t, err, domain.ErrPasswordResetTokenInvalid)
	userRepo.AssertNotCalled(t, "ResetPassword")
}

func TestPasswordResetService_ResetPassword_AccessTokenRejected(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	emailSender := new(mocks.MockEmailSender)
	resetSvc := service.NewPasswordResetService(userRepo, emailSender, testJWTConfig())
	authSvc := service.NewAuthService(userRepo, testJWTConfig())

	user := &domain.User{
		ID:           uuid.New(),
		Email:        "trainee@test.com",
		PasswordHash: hashPassword("password123"),
		Role:         domain.RoleTrainee,
		IsActive:     true,
	}
	userRepo.On("GetByEmail", mock.Anything, "trainee@test.com").Return(user, nil)

	pair, err := authSvc.Login(context.Background(), service.LoginInput{
		Email:    "trainee@test.com",
		Password: "password123",
	})
	require.NoError(t, err)

	// An access token has the wrong audience and must not reset a password.
	err = resetSvc.ResetPassword(context.Background(), service.ResetPasswordInput{
		Token:       pair.AccessToken,
		NewPassword: "new-password-123",
	})

	assert.ErrorIs(t, err, domain.ErrPasswordResetTokenInvalid)
	userRepo.AssertNotCalled(t, "ResetPassword")
}
