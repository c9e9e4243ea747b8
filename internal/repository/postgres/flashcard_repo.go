package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"vendasim/internal/domain"
	"vendasim/internal/port"
)

type flashcardRepo struct {
	db *sqlx.DB
}

// NewFlashcardRepo creates a new PostgreSQL-backed FlashcardRepository.
func NewFlashcardRepo(db *sqlx.DB) port.FlashcardRepository {
	return &flashcardRepo{db: db}
}

func (r *flashcardRepo) CreateDeck(ctx context.Context, deck *domain.Deck) error {
	deck.ID = uuid.New()
	now := time.Now().UTC()
	deck.CreatedAt = now
	deck.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO decks (id, title, description, is_active, created_by, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		deck.ID, deck.Title, deck.Description, deck.IsActive, deck.CreatedBy,
		deck.CreatedAt, deck.UpdatedAt)
	if err != nil {
		return fmt.Errorf("flashcardRepo.CreateDeck: %w", err)
	}
	return nil
}

func (r *flashcardRepo) GetDeck(ctx context.Context, deckID uuid.UUID) (*domain.Deck, error) {
	var deck domain.Deck
	err := r.db.GetContext(ctx, &deck, "SELECT * FROM decks WHERE id = $1", deckID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("flashcardRepo.GetDeck: %w", err)
	}
	return &deck, nil
}

func (r *flashcardRepo) ListDecks(ctx context.Context, activeOnly bool, offset, limit int) ([]domain.Deck, int, error) {
	where := ""
	if activeOnly {
		where = "WHERE is_active"
	}

	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM decks "+where)
	if err != nil {
		return nil, 0, fmt.Errorf("flashcardRepo.ListDecks count: %w", err)
	}

	var decks []domain.Deck
	err = r.db.SelectContext(ctx, &decks,
		"SELECT * FROM decks "+where+" ORDER BY title LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("flashcardRepo.ListDecks: %w", err)
	}
	return decks, total, nil
}

func (r *flashcardRepo) UpdateDeck(ctx context.Context, deck *domain.Deck) error {
	deck.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE decks SET title = $1, description = $2, is_active = $3, updated_at = $4
		 WHERE id = $5`,
		deck.Title, deck.Description, deck.IsActive, deck.UpdatedAt, deck.ID)
	if err != nil {
		return fmt.Errorf("flashcardRepo.UpdateDeck: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *flashcardRepo) DeleteDeck(ctx context.Context, deckID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM decks WHERE id = $1", deckID)
	if err != nil {
		return fmt.Errorf("flashcardRepo.DeleteDeck: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *flashcardRepo) CreateCard(ctx context.Context, card *domain.Flashcard) error {
	card.ID = uuid.New()
	now := time.Now().UTC()
	card.CreatedAt = now
	card.UpdatedAt = now

	query := `INSERT INTO flashcards (id, deck_id, front, back, position, created_at, updated_at)
		VALUES ($1, $2, $3, $4,
			(SELECT COALESCE(MAX(position), 0) + 1 FROM flashcards WHERE deck_id = $2),
			$5, $6)
		RETURNING position`

	err := r.db.QueryRowxContext(ctx, query,
		card.ID, card.DeckID, card.Front, card.Back, card.CreatedAt, card.UpdatedAt).
		Scan(&card.Position)
	if err != nil {
		return fmt.Errorf("flashcardRepo.CreateCard: %w", err)
	}
	return nil
}

func (r *flashcardRepo) ListCards(ctx context.Context, deckID uuid.UUID) ([]domain.Flashcard, error) {
	var cards []domain.Flashcard
	err := r.db.SelectContext(ctx, &cards,
		"SELECT * FROM flashcards WHERE deck_id = $1 ORDER BY position", deckID)
	if err != nil {
		return nil, fmt.Errorf("flashcardRepo.ListCards: %w", err)
	}
	return cards, nil
}

func (r *flashcardRepo) UpdateCard(ctx context.Context, card *domain.Flashcard) error {
	card.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE flashcards SET front = $1, back = $2, updated_at = $3 WHERE id = $4`,
		card.Front, card.Back, card.UpdatedAt, card.ID)
	if err != nil {
		return fmt.Errorf("flashcardRepo.UpdateCard: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *flashcardRepo) DeleteCard(ctx context.Context, cardID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM flashcards WHERE id = $1", cardID)
	if err != nil {
		return fmt.Errorf("flashcardRepo.DeleteCard: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *flashcardRepo) RecordReview(ctx context.Context, review *domain.CardReview) error {
	review.ID = uuid.New()
	review.ReviewedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO card_reviews (id, card_id, user_id, grade, reviewed_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		review.ID, review.CardID, review.UserID, review.Grade, review.ReviewedAt)
	if err != nil {
		return fmt.Errorf("flashcardRepo.RecordReview: %w", err)
	}
	return nil
}
