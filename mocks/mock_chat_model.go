package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"vendasim/internal/port"
)

// MockChatModel is a mock implementation of port.ChatModel.
type MockChatModel struct {
	mock.Mock
}

func (m *MockChatModel) Complete(ctx context.Context, system string, messages []port.ChatMessage) (*port.ChatResult, error) {
	args := m.Called(ctx, system, messages)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.ChatResult), args.Error(1)
}
