package service

import (
	"context"
	"fmt"
	"io"

	"vendasim/internal/csvexport"
	"vendasim/internal/domain"
	"vendasim/internal/port"
)

// StatsService defines the admin reporting contract.
type StatsService interface {
	TraineeSummary(ctx context.Context, filter domain.StatsFilter) ([]domain.TraineeSummaryRow, error)
	OutcomeSeries(ctx context.Context, filter domain.StatsFilter) ([]domain.OutcomeSeriesRow, error)
	QuizPerformance(ctx context.Context, filter domain.StatsFilter) ([]domain.QuizPerformanceRow, error)
	ExportEvaluationsCSV(ctx context.Context, filter domain.StatsFilter, w io.Writer) error
}

type statsService struct {
	statsRepo port.StatsRepository
	evalRepo  port.EvaluationRepository
}

// NewStatsService creates a new StatsService implementation.
func NewStatsService(statsRepo port.StatsRepository, evalRepo port.EvaluationRepository) StatsService {
	return &statsService{statsRepo: statsRepo, evalRepo: evalRepo}
}

func (s *statsService) TraineeSummary(ctx context.Context, filter domain.StatsFilter) ([]domain.TraineeSummaryRow, error) {
	return s.statsRepo.TraineeSummary(ctx, filter)
}

func (s *statsService) OutcomeSeries(ctx context.Context, filter domain.StatsFilter) ([]domain.OutcomeSeriesRow, error) {
	if filter.Granularity == "" {
		filter.Granularity = domain.GranularityDay
	}
	return s.statsRepo.OutcomeSeries(ctx, filter)
}

func (s *statsService) QuizPerformance(ctx context.Context, filter domain.StatsFilter) ([]domain.QuizPerformanceRow, error) {
	return s.statsRepo.QuizPerformance(ctx, filter)
}

// ExportEvaluationsCSV streams the filtered evaluations as CSV, prefixed with
// a UTF-8 BOM so Excel renders the Portuguese text correctly.
func (s *statsService) ExportEvaluationsCSV(ctx context.Context, filter domain.StatsFilter, w io.Writer) error {
	rows, err := s.evalRepo.ListForExport(ctx, filter)
	if err != nil {
		return err
	}

	if _, err := w.Write(csvexport.BOM); err != nil {
		return fmt.Errorf("stats.ExportEvaluationsCSV: writing BOM: %w", err)
	}

	cw := csvexport.NewWriter(w)
	if err := cw.WriteHeader(); err != nil {
		return fmt.Errorf("stats.ExportEvaluationsCSV: writing header: %w", err)
	}
	if err := cw.WriteEvaluations(rows); err != nil {
		return fmt.Errorf("stats.ExportEvaluationsCSV: writing rows: %w", err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("stats.ExportEvaluationsCSV: flushing: %w", err)
	}
	return nil
}
