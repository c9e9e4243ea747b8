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

type quizRepo struct {
	db *sqlx.DB
}

// NewQuizRepo creates a new PostgreSQL-backed QuizRepository.
func NewQuizRepo(db *sqlx.DB) port.QuizRepository {
	return &quizRepo{db: db}
}

func (r *quizRepo) Create(ctx context.Context, quiz *domain.Quiz, questions []domain.QuizQuestion) error {
	quiz.ID = uuid.New()
	now := time.Now().UTC()
	quiz.CreatedAt = now
	quiz.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("quizRepo.Create begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO quizzes (id, title, description, is_active, created_by, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		quiz.ID, quiz.Title, quiz.Description, quiz.IsActive, quiz.CreatedBy,
		quiz.CreatedAt, quiz.UpdatedAt)
	if err != nil {
		return fmt.Errorf("quizRepo.Create quiz: %w", err)
	}

	for i := range questions {
		q := &questions[i]
		q.ID = uuid.New()
		q.QuizID = quiz.ID
		q.Position = i + 1
		q.CreatedAt = now
		_, err = tx.ExecContext(ctx,
			`INSERT INTO quiz_questions (id, quiz_id, prompt, options, correct_index, position, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			q.ID, q.QuizID, q.Prompt, q.Options, q.CorrectIndex, q.Position, q.CreatedAt)
		if err != nil {
			return fmt.Errorf("quizRepo.Create question %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("quizRepo.Create commit: %w", err)
	}
	return nil
}

func (r *quizRepo) GetByID(ctx context.Context, quizID uuid.UUID) (*domain.Quiz, error) {
	var quiz domain.Quiz
	err := r.db.GetContext(ctx, &quiz, "SELECT * FROM quizzes WHERE id = $1", quizID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("quizRepo.GetByID: %w", err)
	}
	return &quiz, nil
}

func (r *quizRepo) List(ctx context.Context, activeOnly bool, offset, limit int) ([]domain.Quiz, int, error) {
	where := ""
	if activeOnly {
		where = "WHERE is_active"
	}

	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM quizzes "+where)
	if err != nil {
		return nil, 0, fmt.Errorf("quizRepo.List count: %w", err)
	}

	var quizzes []domain.Quiz
	err = r.db.SelectContext(ctx, &quizzes,
		"SELECT * FROM quizzes "+where+" ORDER BY created_at DESC LIMIT $1 OFFSET $2",
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("quizRepo.List: %w", err)
	}
	return quizzes, total, nil
}

func (r *quizRepo) Update(ctx context.Context, quiz *domain.Quiz) error {
	quiz.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE quizzes SET title = $1, description = $2, is_active = $3, updated_at = $4
		 WHERE id = $5`,
		quiz.Title, quiz.Description, quiz.IsActive, quiz.UpdatedAt, quiz.ID)
	if err != nil {
		return fmt.Errorf("quizRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *quizRepo) Delete(ctx context.Context, quizID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM quizzes WHERE id = $1", quizID)
	if err != nil {
		return fmt.Errorf("quizRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *quizRepo) ListQuestions(ctx context.Context, quizID uuid.UUID) ([]domain.QuizQuestion, error) {
	var questions []domain.QuizQuestion
	err := r.db.SelectContext(ctx, &questions,
		"SELECT * FROM quiz_questions WHERE quiz_id = $1 ORDER BY position", quizID)
	if err != nil {
		return nil, fmt.Errorf("quizRepo.ListQuestions: %w", err)
	}
	return questions, nil
}

func (r *quizRepo) CreateAttempt(ctx context.Context, attempt *domain.QuizAttempt) error {
	attempt.ID = uuid.New()
	attempt.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO quiz_attempts (id, quiz_id, user_id, score, correct, total, answers, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		attempt.ID, attempt.QuizID, attempt.UserID, attempt.Score, attempt.Correct,
		attempt.Total, attempt.Answers, attempt.CreatedAt)
	if err != nil {
		return fmt.Errorf("quizRepo.CreateAttempt: %w", err)
	}
	return nil
}

func (r *quizRepo) ListAttempts(ctx context.Context, quizID, userID uuid.UUID) ([]domain.QuizAttempt, error) {
	var attempts []domain.QuizAttempt
	err := r.db.SelectContext(ctx, &attempts,
		`SELECT * FROM quiz_attempts WHERE quiz_id = $1 AND user_id = $2 ORDER BY created_at DESC`,
		quizID, userID)
	if err != nil {
		return nil, fmt.Errorf("quizRepo.ListAttempts: %w", err)
	}
	return attempts, nil
}
