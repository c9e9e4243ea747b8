package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"vendasim/internal/domain"
)

// MockEvaluationRepo is a mock implementation of port.EvaluationRepository.
type MockEvaluationRepo struct {
	mock.Mock
}

func (m *MockEvaluationRepo) Create(ctx context.Context, eval *domain.Evaluation) error {
	args := m.Called(ctx, eval)
	return args.Error(0)
}

func (m *MockEvaluationRepo) GetBySessionID(ctx context.Context, sessionID uuid.UUID) (*domain.Evaluation, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Evaluation), args.Error(1)
}

func (m *MockEvaluationRepo) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Evaluation, int, error) {
	args := m.Called(ctx, userID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Evaluation), args.Int(1), args.Error(2)
}

func (m *MockEvaluationRepo) ListForExport(ctx context.Context, filter domain.StatsFilter) ([]domain.EvaluationExportRow, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EvaluationExportRow), args.Error(1)
}
