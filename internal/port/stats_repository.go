package port

import (
	"context"

	"vendasim/internal/domain"
)

// StatsRepository provides aggregate reporting queries for admins.
type StatsRepository interface {
	TraineeSummary(ctx context.Context, filter domain.StatsFilter) ([]domain.TraineeSummaryRow, error)
	OutcomeSeries(ctx context.Context, filter domain.StatsFilter) ([]domain.OutcomeSeriesRow, error)
	QuizPerformance(ctx context.Context, filter domain.StatsFilter) ([]domain.QuizPerformanceRow, error)
}
