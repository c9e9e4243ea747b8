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

type sessionRepo struct {
	db *sqlx.DB
}

// NewSessionRepo creates a new PostgreSQL-backed SessionRepository.
func NewSessionRepo(db *sqlx.DB) port.SessionRepository {
	return &sessionRepo{db: db}
}

func (r *sessionRepo) Create(ctx context.Context, session *domain.SimulationSession) error {
	session.ID = uuid.New()
	now := time.Now().UTC()
	session.StartedAt = now
	session.CreatedAt = now
	session.UpdatedAt = now

	query := `INSERT INTO simulation_sessions (id, user_id, persona_id, status, outcome,
		model_used, archive_key, started_at, completed_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.ExecContext(ctx, query,
		session.ID, session.UserID, session.PersonaID, session.Status, session.Outcome,
		session.ModelUsed, session.ArchiveKey, session.StartedAt, session.CompletedAt,
		session.CreatedAt, session.UpdatedAt)
	if err != nil {
		return fmt.Errorf("sessionRepo.Create: %w", err)
	}
	return nil
}

func (r *sessionRepo) GetByID(ctx context.Context, sessionID uuid.UUID) (*domain.SimulationSession, error) {
	var session domain.SimulationSession
	err := r.db.GetContext(ctx, &session,
		"SELECT * FROM simulation_sessions WHERE id = $1", sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("sessionRepo.GetByID: %w", err)
	}
	return &session, nil
}

func (r *sessionRepo) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.SimulationSession, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM simulation_sessions WHERE user_id = $1", userID)
	if err != nil {
		return nil, 0, fmt.Errorf("sessionRepo.ListByUser count: %w", err)
	}

	var sessions []domain.SimulationSession
	err = r.db.SelectContext(ctx, &sessions,
		"SELECT * FROM simulation_sessions WHERE user_id = $1 ORDER BY started_at DESC LIMIT $2 OFFSET $3",
		userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("sessionRepo.ListByUser: %w", err)
	}
	return sessions, total, nil
}

func (r *sessionRepo) Update(ctx context.Context, session *domain.SimulationSession) error {
	session.UpdatedAt = time.Now().UTC()
	query := `UPDATE simulation_sessions SET status = $1, outcome = $2, model_used = $3,
		archive_key = $4, completed_at = $5, updated_at = $6
		WHERE id = $7`
	result, err := r.db.ExecContext(ctx, query,
		session.Status, session.Outcome, session.ModelUsed, session.ArchiveKey,
		session.CompletedAt, session.UpdatedAt, session.ID)
	if err != nil {
		return fmt.Errorf("sessionRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *sessionRepo) AppendMessage(ctx context.Context, msg *domain.SimulationMessage) error {
	msg.ID = uuid.New()
	msg.CreatedAt = time.Now().UTC()

	// Seq is assigned inside the insert so concurrent appends to the same
	// session cannot race on a client-side counter.
	query := `INSERT INTO simulation_messages (id, session_id, sender, content, seq, created_at)
		VALUES ($1, $2, $3, $4,
			(SELECT COALESCE(MAX(seq), 0) + 1 FROM simulation_messages WHERE session_id = $2),
			$5)
		RETURNING seq`

	err := r.db.QueryRowxContext(ctx, query,
		msg.ID, msg.SessionID, msg.Sender, msg.Content, msg.CreatedAt).Scan(&msg.Seq)
	if err != nil {
		return fmt.Errorf("sessionRepo.AppendMessage: %w", err)
	}
	return nil
}

func (r *sessionRepo) ListMessages(ctx context.Context, sessionID uuid.UUID) ([]domain.SimulationMessage, error) {
	var messages []domain.SimulationMessage
	err := r.db.SelectContext(ctx, &messages,
		"SELECT * FROM simulation_messages WHERE session_id = $1 ORDER BY seq", sessionID)
	if err != nil {
		return nil, fmt.Errorf("sessionRepo.ListMessages: %w", err)
	}
	return messages, nil
}
