package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"vendasim/internal/domain"
)

// MockStatsRepo is a mock implementation of port.StatsRepository.
type MockStatsRepo struct {
	mock.Mock
}

func (m *MockStatsRepo) TraineeSummary(ctx context.Context, filter domain.StatsFilter) ([]domain.TraineeSummaryRow, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TraineeSummaryRow), args.Error(1)
}

func (m *MockStatsRepo) OutcomeSeries(ctx context.Context, filter domain.StatsFilter) ([]domain.OutcomeSeriesRow, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OutcomeSeriesRow), args.Error(1)
}

func (m *MockStatsRepo) QuizPerformance(ctx context.Context, filter domain.StatsFilter) ([]domain.QuizPerformanceRow, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.QuizPerformanceRow), args.Error(1)
}
