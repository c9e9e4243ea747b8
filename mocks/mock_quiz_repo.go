package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"vendasim/internal/domain"
)

// MockQuizRepo is a mock implementation of port.QuizRepository.
type MockQuizRepo struct {
	mock.Mock
}

func (m *MockQuizRepo) Create(ctx context.Context, quiz *domain.Quiz, questions []domain.QuizQuestion) error {
	args := m.Called(ctx, quiz, questions)
	return args.Error(0)
}

func (m *MockQuizRepo) GetByID(ctx context.Context, quizID uuid.UUID) (*domain.Quiz, error) {
	args := m.Called(ctx, quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quiz), args.Error(1)
}

func (m *MockQuizRepo) List(ctx context.Context, activeOnly bool, offset, limit int) ([]domain.Quiz, int, error) {
	args := m.Called(ctx, activeOnly, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Quiz), args.Int(1), args.Error(2)
}

func (m *MockQuizRepo) Update(ctx context.Context, quiz *domain.Quiz) error {
	args := m.Called(ctx, quiz)
	return args.Error(0)
}

func (m *MockQuizRepo) Delete(ctx context.Context, quizID uuid.UUID) error {
	args := m.Called(ctx, quizID)
	return args.Error(0)
}

func (m *MockQuizRepo) ListQuestions(ctx context.Context, quizID uuid.UUID) ([]domain.QuizQuestion, error) {
	args := m.Called(ctx, quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.QuizQuestion), args.Error(1)
}

func (m *MockQuizRepo) CreateAttempt(ctx context.Context, attempt *domain.QuizAttempt) error {
	args := m.Called(ctx, attempt)
	return args.Error(0)
}

func (m *MockQuizRepo) ListAttempts(ctx context.Context, quizID, userID uuid.UUID) ([]domain.QuizAttempt, error) {
	args := m.Called(ctx, quizID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.QuizAttempt), args.Error(1)
}
