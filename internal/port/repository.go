package port

import (
	"context"

	"github.com/google/uuid"

	"vendasim/internal/domain"
)

// UserRepository defines the contract for user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, int, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, userID uuid.UUID) error
	SetPasswordResetToken(ctx context.Context, userID uuid.UUID, tokenID string) error
	ResetPassword(ctx context.Context, userID uuid.UUID, passwordHash, expectedTokenID string) error
}

// PersonaRepository defines the contract for persona persistence.
type PersonaRepository interface {
	Create(ctx context.Context, persona *domain.Persona) error
	GetByID(ctx context.Context, personaID uuid.UUID) (*domain.Persona, error)
	List(ctx context.Context, activeOnly bool, offset, limit int) ([]domain.Persona, int, error)
	Update(ctx context.Context, persona *domain.Persona) error
	Delete(ctx context.Context, personaID uuid.UUID) error
}

// SessionRepository defines the contract for simulation session persistence.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.SimulationSession) error
	GetByID(ctx context.Context, sessionID uuid.UUID) (*domain.SimulationSession, error)
	ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.SimulationSession, int, error)
	Update(ctx context.Context, session *domain.SimulationSession) error

	AppendMessage(ctx context.Context, msg *domain.SimulationMessage) error
	ListMessages(ctx context.Context, sessionID uuid.UUID) ([]domain.SimulationMessage, error)
}

// EvaluationRepository defines the contract for evaluation persistence.
type EvaluationRepository interface {
	Create(ctx context.Context, eval *domain.Evaluation) error
	GetBySessionID(ctx context.Context, sessionID uuid.UUID) (*domain.Evaluation, error)
	ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Evaluation, int, error)
	ListForExport(ctx context.Context, filter domain.StatsFilter) ([]domain.EvaluationExportRow, error)
}

// QuizRepository defines the contract for quiz persistence.
type QuizRepository interface {
	Create(ctx context.Context, quiz *domain.Quiz, questions []domain.QuizQuestion) error
	GetByID(ctx context.Context, quizID uuid.UUID) (*domain.Quiz, error)
	List(ctx context.Context, activeOnly bool, offset, limit int) ([]domain.Quiz, int, error)
	Update(ctx context.Context, quiz *domain.Quiz) error
	Delete(ctx context.Context, quizID uuid.UUID) error

	ListQuestions(ctx context.Context, quizID uuid.UUID) ([]domain.QuizQuestion, error)
	CreateAttempt(ctx context.Context, attempt *domain.QuizAttempt) error
	ListAttempts(ctx context.Context, quizID, userID uuid.UUID) ([]domain.QuizAttempt, error)
}

// FlashcardRepository defines the contract for deck and card persistence.
type FlashcardRepository interface {
	CreateDeck(ctx context.Context, deck *domain.Deck) error
	GetDeck(ctx context.Context, deckID uuid.UUID) (*domain.Deck, error)
	ListDecks(ctx context.Context, activeOnly bool, offset, limit int) ([]domain.Deck, int, error)
	UpdateDeck(ctx context.Context, deck *domain.Deck) error
	DeleteDeck(ctx context.Context, deckID uuid.UUID) error

	CreateCard(ctx context.Context, card *domain.Flashcard) error
	ListCards(ctx context.Context, deckID uuid.UUID) ([]domain.Flashcard, error)
	UpdateCard(ctx context.Context, card *domain.Flashcard) error
	DeleteCard(ctx context.Context, cardID uuid.UUID) error
	RecordReview(ctx context.Context, review *domain.CardReview) error
}
