package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"vendasim/internal/domain"
)

// MockFlashcardRepo is a mock implementation of port.FlashcardRepository.
type MockFlashcardRepo struct {
	mock.Mock
}

func (m *MockFlashcardRepo) CreateDeck(ctx context.Context, deck *domain.Deck) error {
	args := m.Called(ctx, deck)
	return args.Error(0)
}

func (m *MockFlashcardRepo) GetDeck(ctx context.Context, deckID uuid.UUID) (*domain.Deck, error) {
	args := m.Called(ctx, deckID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deck), args.Error(1)
}

func (m *MockFlashcardRepo) ListDecks(ctx context.Context, activeOnly bool, offset, limit int) ([]domain.Deck, int, error) {
	args := m.Called(ctx, activeOnly, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Deck), args.Int(1), args.Error(2)
}

func (m *MockFlashcardRepo) UpdateDeck(ctx context.Context, deck *domain.Deck) error {
	args := m.Called(ctx, deck)
	return args.Error(0)
}

func (m *MockFlashcardRepo) DeleteDeck(ctx context.Context, deckID uuid.UUID) error {
	args := m.Called(ctx, deckID)
	return args.Error(0)
}

func (m *MockFlashcardRepo) CreateCard(ctx context.Context, card *domain.Flashcard) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockFlashcardRepo) ListCards(ctx context.Context, deckID uuid.UUID) ([]domain.Flashcard, error) {
	args := m.Called(ctx, deckID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flashcard), args.Error(1)
}

func (m *MockFlashcardRepo) UpdateCard(ctx context.Context, card *domain.Flashcard) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockFlashcardRepo) DeleteCard(ctx context.Context, cardID uuid.UUID) error {
	args := m.Called(ctx, cardID)
	return args.Error(0)
}

func (m *MockFlashcardRepo) RecordReview(ctx context.Context, review *domain.CardReview) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}
