package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendPasswordResetEmail(ctx context.Context, toEmail, toName, resetToken string) error {
	args := m.Called(ctx, toEmail, toName, resetToken)
	return args.Error(0)
}

func (m *MockEmailSender) SendWelcomeEmail(ctx context.Context, toEmail, toName string) error {
	args := m.Called(ctx, toEmail, toName)
	return args.Error(0)
}
