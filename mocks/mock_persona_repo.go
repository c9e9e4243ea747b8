package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"vendasim/internal/domain"
)

// MockPersonaRepo is a mock implementation of port.PersonaRepository.
type MockPersonaRepo struct {
	mock.Mock
}

func (m *MockPersonaRepo) Create(ctx context.Context, persona *domain.Persona) error {
	args := m.Called(ctx, persona)
	return args.Error(0)
}

func (m *MockPersonaRepo) GetByID(ctx context.Context, personaID uuid.UUID) (*domain.Persona, error) {
	args := m.Called(ctx, personaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Persona), args.Error(1)
}

func (m *MockPersonaRepo) List(ctx context.Context, activeOnly bool, offset, limit int) ([]domain.Persona, int, error) {
	args := m.Called(ctx, activeOnly, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Persona), args.Int(1), args.Error(2)
}

func (m *MockPersonaRepo) Update(ctx context.Context, persona *domain.Persona) error {
	args := m.Called(ctx, persona)
	return args.Error(0)
}

func (m *MockPersonaRepo) Delete(ctx context.Context, personaID uuid.UUID) error {
	args := m.Called(ctx, personaID)
	return args.Error(0)
}
