package service

import (
	"context"

	"github.com/google/uuid"

	"vendasim/internal/domain"
	"vendasim/internal/port"
)

// CreateDeckInput is the DTO for creating a flashcard deck.
type CreateDeckInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// UpdateDeckInput is the DTO for updating a deck.
type UpdateDeckInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

// CardInput is the DTO for creating or updating a flashcard.
type CardInput struct {
	Front string `json:"front" binding:"required"`
	Back  string `json:"back" binding:"required"`
}

// ReviewInput is the DTO for recording a card review.
type ReviewInput struct {
	Grade domain.ReviewGrade `json:"grade" binding:"required,oneof=again good"`
}

// FlashcardService defines the deck and card contract.
type FlashcardService interface {
	CreateDeck(ctx context.Context, createdBy uuid.UUID, input CreateDeckInput) (*domain.Deck, error)
	GetDeck(ctx context.Context, deckID uuid.UUID) (*domain.Deck, error)
	ListDecks(ctx context.Context, activeOnly bool, offset, limit int) ([]domain.Deck, int, error)
	UpdateDeck(ctx context.Context, deckID uuid.UUID, input UpdateDeckInput) (*domain.Deck, error)
	DeleteDeck(ctx context.Context, deckID uuid.UUID) error

	CreateCard(ctx context.Context, deckID uuid.UUID, input CardInput) (*domain.Flashcard, error)
	ListCards(ctx context.Context, deckID uuid.UUID) ([]domain.Flashcard, error)
	UpdateCard(ctx context.Context, cardID uuid.UUID, input CardInput) (*domain.Flashcard, error)
	DeleteCard(ctx context.Context, cardID uuid.UUID) error
	Review(ctx context.Context, userID, cardID uuid.UUID, input ReviewInput) error
}

type flashcardService struct {
	repo port.FlashcardRepository
}

// NewFlashcardService creates a new FlashcardService implementation.
func NewFlashcardService(repo port.FlashcardRepository) FlashcardService {
	return &flashcardService{repo: repo}
}

func (s *flashcardService) CreateDeck(ctx context.Context, createdBy uuid.UUID, input CreateDeckInput) (*domain.Deck, error) {
	deck := &domain.Deck{
		Title:       input.Title,
		Description: input.Description,
		IsActive:    true,
		CreatedBy:   createdBy,
	}
	if err := s.repo.CreateDeck(ctx, deck); err != nil {
		return nil, err
	}
	return deck, nil
}

func (s *flashcardService) GetDeck(ctx context.Context, deckID uuid.UUID) (*domain.Deck, error) {
	return s.repo.GetDeck(ctx, deckID)
}

func (s *flashcardService) ListDecks(ctx context.Context, activeOnly bool, offset, limit int) ([]domain.Deck, int, error) {
	return s.repo.ListDecks(ctx, activeOnly, offset, limit)
}

func (s *flashcardService) UpdateDeck(ctx context.Context, deckID uuid.UUID, input UpdateDeckInput) (*domain.Deck, error) {
	deck, err := s.repo.GetDeck(ctx, deckID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		deck.Title = *input.Title
	}
	if input.Description != nil {
		deck.Description = *input.Description
	}
	if input.IsActive != nil {
		deck.IsActive = *input.IsActive
	}

	if err := s.repo.UpdateDeck(ctx, deck); err != nil {
		return nil, err
	}
	return deck, nil
}

func (s *flashcardService) DeleteDeck(ctx context.Context, deckID uuid.UUID) error {
	return s.repo.DeleteDeck(ctx, deckID)
}

func (s *flashcardService) CreateCard(ctx context.Context, deckID uuid.UUID, input CardInput) (*domain.Flashcard, error) {
	if _, err := s.repo.GetDeck(ctx, deckID); err != nil {
		return nil, err
	}

	card := &domain.Flashcard{
		DeckID: deckID,
		Front:  input.Front,
		Back:   input.Back,
	}
	if err := s.repo.CreateCard(ctx, card); err != nil {
		return nil, err
	}
	return card, nil
}

func (s *flashcardService) ListCards(ctx context.Context, deckID uuid.UUID) ([]domain.Flashcard, error) {
	if _, err := s.repo.GetDeck(ctx, deckID); err != nil {
		return nil, err
	}
	return s.repo.ListCards(ctx, deckID)
}

func (s *flashcardService) UpdateCard(ctx context.Context, cardID uuid.UUID, input CardInput) (*domain.Flashcard, error) {
	card := &domain.Flashcard{
		ID:    cardID,
		Front: input.Front,
		Back:  input.Back,
	}
	if err := s.repo.UpdateCard(ctx, card); err != nil {
		return nil, err
	}
	return card, nil
}

func (s *flashcardService) DeleteCard(ctx context.Context, cardID uuid.UUID) error {
	return s.repo.DeleteCard(ctx, cardID)
}

func (s *flashcardService) Review(ctx context.Context, userID, cardID uuid.UUID, input ReviewInput) error {
	return s.repo.RecordReview(ctx, &domain.CardReview{
		CardID: cardID,
		UserID: userID,
		Grade:  input.Grade,
	})
}
