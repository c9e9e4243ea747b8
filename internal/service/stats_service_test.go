package service_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vendasim/internal/domain"
	"vendasim/internal/service"
	"vendasim/mocks"
)

func TestStatsService_OutcomeSeries_DefaultsGranularity(t *testing.T) {
	statsRepo := new(mocks.MockStatsRepo)
	evalRepo := new(mocks.MockEvaluationRepo)
	svc := service.NewStatsService(statsRepo, evalRepo)

	statsRepo.On("OutcomeSeries", mock.Anything, mock.MatchedBy(func(f domain.StatsFilter) bool {
		return f.Granularity == domain.GranularityDay
	})).Return([]domain.OutcomeSeriesRow{}, nil)

	_, err := svc.OutcomeSeries(context.Background(), domain.StatsFilter{})

	require.NoError(t, err)
	statsRepo.AssertExpectations(t)
}

func TestStatsService_ExportEvaluationsCSV(t *testing.T) {
	statsRepo := new(mocks.MockStatsRepo)
	evalRepo := new(mocks.MockEvaluationRepo)
	svc := service.NewStatsService(statsRepo, evalRepo)

	rating := 4.5
	rows := []domain.EvaluationExportRow{
		{
			SessionID:    uuid.New(),
			TraineeName:  "Ana Lima",
			TraineeEmail: "ana@test.com",
			PersonaName:  "Mariana Souza",
			Outcome:      domain.OutcomeSaleClosed,
			Acolhimento:  &rating,
			CompletedAt:  time.Date(2026, 8, 14, 10, 0, 0, 0, time.UTC),
		},
	}
	evalRepo.On("ListForExport", mock.Anything, mock.Anything).Return(rows, nil)

	var buf bytes.Buffer
	err := svc.ExportEvaluationsCSV(context.Background(), domain.StatsFilter{}, &buf)

	require.NoError(t, err)
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\xef\xbb\xbf"), "output must start with a UTF-8 BOM")
	assert.Contains(t, out, "Ana Lima")
	assert.Contains(t, out, "venda_realizada")
}
