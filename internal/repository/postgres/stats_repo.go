package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"vendasim/internal/domain"
	"vendasim/internal/port"
)

type statsRepo struct {
	db *sqlx.DB
}

// NewStatsRepo creates a new PostgreSQL-backed StatsRepository.
func NewStatsRepo(db *sqlx.DB) port.StatsRepository {
	return &statsRepo{db: db}
}

// dateTruncExpr returns the PostgreSQL date_trunc expression for the given granularity.
func dateTruncExpr(granularity domain.StatsGranularity) string {
	switch granularity {
	case domain.GranularityDay:
		return "date_trunc('day', e.created_at)"
	case domain.GranularityWeek:
		return "date_trunc('week', e.created_at)"
	case domain.GranularityMonth:
		return "date_trunc('month', e.created_at)"
	default:
		return "date_trunc('day', e.created_at)"
	}
}

func (r *statsRepo) TraineeSummary(ctx context.Context, filter domain.StatsFilter) ([]domain.TraineeSummaryRow, error) {
	clause, args := exportWhereClause(filter)
	query := `SELECT u.id AS user_id, u.full_name,
			COUNT(*) AS sessions,
			COUNT(*) FILTER (WHERE e.outcome = 'venda_realizada') AS sales_closed,
			COUNT(*) FILTER (WHERE e.outcome = 'venda_nao_realizada') AS sales_lost,
			COUNT(*) FILTER (WHERE e.outcome = 'indeterminado') AS undetermined,
			COUNT(*) FILTER (WHERE e.boss_convinced) AS boss_wins,
			AVG(e.rating_acolhimento) AS avg_acolhimento,
			AVG(e.rating_clareza) AS avg_clareza,
			AVG(e.rating_argumentacao) AS avg_argumentacao,
			AVG(e.rating_fechamento) AS avg_fechamento
		FROM evaluations e
		JOIN users u ON u.id = e.user_id
		` + clause + `
		GROUP BY u.id, u.full_name
		ORDER BY sessions DESC`

	var rows []domain.TraineeSummaryRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("statsRepo.TraineeSummary: %w", err)
	}
	return rows, nil
}

func (r *statsRepo) OutcomeSeries(ctx context.Context, filter domain.StatsFilter) ([]domain.OutcomeSeriesRow, error) {
	clause, args := exportWhereClause(filter)
	query := `SELECT ` + dateTruncExpr(filter.Granularity) + ` AS period,
			COUNT(*) AS sessions,
			COUNT(*) FILTER (WHERE e.outcome = 'venda_realizada') AS sales_closed,
			COUNT(*) FILTER (WHERE e.outcome = 'venda_nao_realizada') AS sales_lost,
			COUNT(*) FILTER (WHERE e.outcome = 'indeterminado') AS undetermined
		FROM evaluations e
		` + clause + `
		GROUP BY period
		ORDER BY period`

	var rows []domain.OutcomeSeriesRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("statsRepo.OutcomeSeries: %w", err)
	}
	return rows, nil
}

func (r *statsRepo) QuizPerformance(ctx context.Context, filter domain.StatsFilter) ([]domain.QuizPerformanceRow, error) {
	argN := 1
	clause := ""
	var args []interface{}
	if filter.From != nil {
		clause += fmt.Sprintf(" AND a.created_at >= $%d", argN)
		args = append(args, *filter.From)
		argN++
	}
	if filter.To != nil {
		clause += fmt.Sprintf(" AND a.created_at <= $%d", argN)
		args = append(args, *filter.To)
		argN++
	}
	if filter.UserID != nil {
		clause += fmt.Sprintf(" AND a.user_id = $%d", argN)
		args = append(args, *filter.UserID)
	}

	query := `SELECT q.id AS quiz_id, q.title,
			COUNT(a.id) AS attempts,
			AVG(a.score) AS avg_score,
			MAX(a.score) AS best_score
		FROM quizzes q
		LEFT JOIN quiz_attempts a ON a.quiz_id = q.id` + clause + `
		GROUP BY q.id, q.title
		ORDER BY q.title`

	var rows []domain.QuizPerformanceRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("statsRepo.QuizPerformance: %w", err)
	}
	return rows, nil
}
