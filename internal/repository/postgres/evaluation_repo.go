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

type evaluationRepo struct {
	db *sqlx.DB
}

// NewEvaluationRepo creates a new PostgreSQL-backed EvaluationRepository.
func NewEvaluationRepo(db *sqlx.DB) port.EvaluationRepository {
	return &evaluationRepo{db: db}
}

func (r *evaluationRepo) Create(ctx context.Context, eval *domain.Evaluation) error {
	eval.ID = uuid.New()
	eval.CreatedAt = time.Now().UTC()

	query := `INSERT INTO evaluations (id, session_id, user_id, outcome, boss_convinced,
		rating_acolhimento, rating_clareza, rating_argumentacao, rating_fechamento,
		structured_data, raw_text, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.db.ExecContext(ctx, query,
		eval.ID, eval.SessionID, eval.UserID, eval.Outcome, eval.BossConvinced,
		eval.Acolhimento, eval.Clareza, eval.Argumentacao, eval.Fechamento,
		eval.StructuredData, eval.RawText, eval.CreatedAt)
	if err != nil {
		return fmt.Errorf("evaluationRepo.Create: %w", err)
	}
	return nil
}

func (r *evaluationRepo) GetBySessionID(ctx context.Context, sessionID uuid.UUID) (*domain.Evaluation, error) {
	var eval domain.Evaluation
	err := r.db.GetContext(ctx, &eval,
		"SELECT * FROM evaluations WHERE session_id = $1", sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("evaluationRepo.GetBySessionID: %w", err)
	}
	return &eval, nil
}

func (r *evaluationRepo) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Evaluation, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM evaluations WHERE user_id = $1", userID)
	if err != nil {
		return nil, 0, fmt.Errorf("evaluationRepo.ListByUser count: %w", err)
	}

	var evals []domain.Evaluation
	err = r.db.SelectContext(ctx, &evals,
		"SELECT * FROM evaluations WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3",
		userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("evaluationRepo.ListByUser: %w", err)
	}
	return evals, total, nil
}

func (r *evaluationRepo) ListForExport(ctx context.Context, filter domain.StatsFilter) ([]domain.EvaluationExportRow, error) {
	clause, args := exportWhereClause(filter)
	query := `SELECT e.session_id, u.email AS trainee_email, u.full_name AS trainee_name,
			p.name AS persona_name, e.outcome, e.boss_convinced,
			e.rating_acolhimento, e.rating_clareza, e.rating_argumentacao, e.rating_fechamento,
			e.created_at AS completed_at
		FROM evaluations e
		JOIN users u ON u.id = e.user_id
		JOIN simulation_sessions s ON s.id = e.session_id
		JOIN personas p ON p.id = s.persona_id
		` + clause + `
		ORDER BY e.created_at DESC`

	var rows []domain.EvaluationExportRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("evaluationRepo.ListForExport: %w", err)
	}
	return rows, nil
}

// exportWhereClause constructs a dynamic WHERE clause for evaluation queries.
// It returns the clause string (possibly empty) and the positional arguments.
func exportWhereClause(filter domain.StatsFilter) (clause string, args []interface{}) {
	argN := 1
	var conds []string

	if filter.From != nil {
		conds = append(conds, fmt.Sprintf("e.created_at >= $%d", argN))
		args = append(args, *filter.From)
		argN++
	}
	if filter.To != nil {
		conds = append(conds, fmt.Sprintf("e.created_at <= $%d", argN))
		args = append(args, *filter.To)
		argN++
	}
	if filter.UserID != nil {
		conds = append(conds, fmt.Sprintf("e.user_id = $%d", argN))
		args = append(args, *filter.UserID)
	}

	for i, c := range conds {
		if i == 0 {
			clause = "WHERE " + c
		} else {
			clause += " AND " + c
		}
	}
	return clause, args
}
