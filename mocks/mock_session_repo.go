package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"vendasim/internal/domain"
)

// MockSessionRepo is a mock implementation of port.SessionRepository.
type MockSessionRepo struct {
	mock.Mock
}

func (m *MockSessionRepo) Create(ctx context.Context, session *domain.SimulationSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepo) GetByID(ctx context.Context, sessionID uuid.UUID) (*domain.SimulationSession, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SimulationSession), args.Error(1)
}

func (m *MockSessionRepo) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.SimulationSession, int, error) {
	args := m.Called(ctx, userID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.SimulationSession), args.Int(1), args.Error(2)
}

func (m *MockSessionRepo) Update(ctx context.Context, session *domain.SimulationSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepo) AppendMessage(ctx context.Context, msg *domain.SimulationMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockSessionRepo) ListMessages(ctx context.Context, sessionID uuid.UUID) ([]domain.SimulationMessage, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SimulationMessage), args.Error(1)
}
