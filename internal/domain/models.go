package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated user of the training platform.
type User struct {
	ID                   uuid.UUID `db:"id" json:"id"`
	Email                string    `db:"email" json:"email"`
	PasswordHash         string    `db:"password_hash" json:"-"`
	FullName             string    `db:"full_name" json:"full_name"`
	Role                 UserRole  `db:"role" json:"role"`
	IsActive             bool      `db:"is_active" json:"is_active"`
	PasswordResetTokenID *string   `db:"password_reset_token_id" json:"-"`
	CreatedAt            time.Time `db:"created_at" json:"created_at"`
	UpdatedAt            time.Time `db:"updated_at" json:"updated_at"`
}

// Persona represents a simulated client profile trainees practice against.
type Persona struct {
	ID            uuid.UUID         `db:"id" json:"id"`
	Name          string            `db:"name" json:"name"`
	Course        string            `db:"course" json:"course"`
	LifeSituation string            `db:"life_situation" json:"life_situation"`
	Seeks         string            `db:"seeks" json:"seeks"`
	Fear          string            `db:"fear" json:"fear"`
	Behavior      string            `db:"behavior" json:"behavior"`
	Difficulty    PersonaDifficulty `db:"difficulty" json:"difficulty"`
	IsBoss        bool              `db:"is_boss" json:"is_boss"`
	IsActive      bool              `db:"is_active" json:"is_active"`
	CreatedBy     uuid.UUID         `db:"created_by" json:"created_by"`
	CreatedAt     time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time         `db:"updated_at" json:"updated_at"`
}

// SimulationSession represents one simulated sales conversation.
type SimulationSession struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	UserID      uuid.UUID       `db:"user_id" json:"user_id"`
	PersonaID   uuid.UUID       `db:"persona_id" json:"persona_id"`
	Status      SessionStatus   `db:"status" json:"status"`
	Outcome     *SessionOutcome `db:"outcome" json:"outcome"`
	ModelUsed   string          `db:"model_used" json:"model_used"`
	ArchiveKey  string          `db:"archive_key" json:"archive_key"`
	StartedAt   time.Time       `db:"started_at" json:"started_at"`
	CompletedAt *time.Time      `db:"completed_at" json:"completed_at"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updated_at"`
}

// SimulationMessage is a single turn within a simulation session.
type SimulationMessage struct {
	ID        uuid.UUID     `db:"id" json:"id"`
	SessionID uuid.UUID     `db:"session_id" json:"session_id"`
	Sender    MessageSender `db:"sender" json:"sender"`
	Content   string        `db:"content" json:"content"`
	Seq       int           `db:"seq" json:"seq"`
	CreatedAt time.Time     `db:"created_at" json:"created_at"`
}

// Evaluation stores the structured result parsed from a final simulation report.
type Evaluation struct {
	ID             uuid.UUID       `db:"id" json:"id"`
	SessionID      uuid.UUID       `db:"session_id" json:"session_id"`
	UserID         uuid.UUID       `db:"user_id" json:"user_id"`
	Outcome        SessionOutcome  `db:"outcome" json:"outcome"`
	BossConvinced  bool            `db:"boss_convinced" json:"boss_convinced"`
	Acolhimento    *float64        `db:"rating_acolhimento" json:"rating_acolhimento"`
	Clareza        *float64        `db:"rating_clareza" json:"rating_clareza"`
	Argumentacao   *float64        `db:"rating_argumentacao" json:"rating_argumentacao"`
	Fechamento     *float64        `db:"rating_fechamento" json:"rating_fechamento"`
	StructuredData json.RawMessage `db:"structured_data" json:"structured_data"`
	RawText        string          `db:"raw_text" json:"-"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`

	// TranscriptURL is a short-lived presigned link to the archived
	// transcript, filled in at read time and never stored.
	TranscriptURL string `db:"-" json:"transcript_url,omitempty"`
}

// Quiz represents a knowledge check built by an admin.
type Quiz struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	CreatedBy   uuid.UUID `db:"created_by" json:"created_by"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// QuizQuestion is a multiple-choice question belonging to a quiz.
type QuizQuestion struct {
	ID           uuid.UUID       `db:"id" json:"id"`
	QuizID       uuid.UUID       `db:"quiz_id" json:"quiz_id"`
	Prompt       string          `db:"prompt" json:"prompt"`
	Options      json.RawMessage `db:"options" json:"options"`
	CorrectIndex int             `db:"correct_index" json:"-"`
	Position     int             `db:"position" json:"position"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
}

// QuizAttempt records a trainee's scored submission for a quiz.
type QuizAttempt struct {
	ID        uuid.UUID       `db:"id" json:"id"`
	QuizID    uuid.UUID       `db:"quiz_id" json:"quiz_id"`
	UserID    uuid.UUID       `db:"user_id" json:"user_id"`
	Score     float64         `db:"score" json:"score"`
	Correct   int             `db:"correct" json:"correct"`
	Total     int             `db:"total" json:"total"`
	Answers   json.RawMessage `db:"answers" json:"answers"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
}

// Deck groups flashcards by topic.
type Deck struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	CreatedBy   uuid.UUID `db:"created_by" json:"created_by"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Flashcard is a front/back study card within a deck.
type Flashcard struct {
	ID        uuid.UUID `db:"id" json:"id"`
	DeckID    uuid.UUID `db:"deck_id" json:"deck_id"`
	Front     string    `db:"front" json:"front"`
	Back      string    `db:"back" json:"back"`
	Position  int       `db:"position" json:"position"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// CardReview records one review of a flashcard by a trainee.
type CardReview struct {
	ID         uuid.UUID   `db:"id" json:"id"`
	CardID     uuid.UUID   `db:"card_id" json:"card_id"`
	UserID     uuid.UUID   `db:"user_id" json:"user_id"`
	Grade      ReviewGrade `db:"grade" json:"grade"`
	ReviewedAt time.Time   `db:"reviewed_at" json:"reviewed_at"`
}

// StatsFilter narrows reporting queries.
type StatsFilter struct {
	From        *time.Time
	To          *time.Time
	UserID      *uuid.UUID
	Granularity StatsGranularity
}

// TraineeSummaryRow aggregates a trainee's simulation performance.
type TraineeSummaryRow struct {
	UserID          uuid.UUID `db:"user_id" json:"user_id"`
	FullName        string    `db:"full_name" json:"full_name"`
	Sessions        int       `db:"sessions" json:"sessions"`
	SalesClosed     int       `db:"sales_closed" json:"sales_closed"`
	SalesLost       int       `db:"sales_lost" json:"sales_lost"`
	Undetermined    int       `db:"undetermined" json:"undetermined"`
	BossWins        int       `db:"boss_wins" json:"boss_wins"`
	AvgAcolhimento  *float64  `db:"avg_acolhimento" json:"avg_acolhimento"`
	AvgClareza      *float64  `db:"avg_clareza" json:"avg_clareza"`
	AvgArgumentacao *float64  `db:"avg_argumentacao" json:"avg_argumentacao"`
	AvgFechamento   *float64  `db:"avg_fechamento" json:"avg_fechamento"`
}

// OutcomeSeriesRow is one period bucket in the outcome time series.
type OutcomeSeriesRow struct {
	Period       time.Time `db:"period" json:"period"`
	Sessions     int       `db:"sessions" json:"sessions"`
	SalesClosed  int       `db:"sales_closed" json:"sales_closed"`
	SalesLost    int       `db:"sales_lost" json:"sales_lost"`
	Undetermined int       `db:"undetermined" json:"undetermined"`
}

// EvaluationExportRow is a flattened evaluation joined with trainee and
// persona data, used by the CSV export.
type EvaluationExportRow struct {
	SessionID     uuid.UUID      `db:"session_id"`
	TraineeEmail  string         `db:"trainee_email"`
	TraineeName   string         `db:"trainee_name"`
	PersonaName   string         `db:"persona_name"`
	Outcome       SessionOutcome `db:"outcome"`
	BossConvinced bool           `db:"boss_convinced"`
	Acolhimento   *float64       `db:"rating_acolhimento"`
	Clareza       *float64       `db:"rating_clareza"`
	Argumentacao  *float64       `db:"rating_argumentacao"`
	Fechamento    *float64       `db:"rating_fechamento"`
	CompletedAt   time.Time      `db:"completed_at"`
}

// QuizPerformanceRow aggregates attempt results per quiz.
type QuizPerformanceRow struct {
	QuizID    uuid.UUID `db:"quiz_id" json:"quiz_id"`
	Title     string    `db:"title" json:"title"`
	Attempts  int       `db:"attempts" json:"attempts"`
	AvgScore  *float64  `db:"avg_score" json:"avg_score"`
	BestScore *float64  `db:"best_score" json:"best_score"`
}
