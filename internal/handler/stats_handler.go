package handler

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"vendasim/internal/csvexport"
	"vendasim/internal/domain"
	"vendasim/internal/service"
)

// StatsHandler handles admin reporting endpoints.
type StatsHandler struct {
	statsService service.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// validGranularities defines the allowed granularity values.
var validGranularities = map[domain.StatsGranularity]bool{
	domain.GranularityDay:   true,
	domain.GranularityWeek:  true,
	domain.GranularityMonth: true,
}

// parseStatsFilter extracts common report filter parameters from query params.
func parseStatsFilter(c *gin.Context) (domain.StatsFilter, error) {
	var filter domain.StatsFilter

	if fromStr := c.Query("from"); fromStr != "" {
		t, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return filter, fmt.Errorf("invalid 'from' date: must be YYYY-MM-DD")
		}
		filter.From = &t
	}
	if toStr := c.Query("to"); toStr != "" {
		t, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return filter, fmt.Errorf("invalid 'to' date: must be YYYY-MM-DD")
		}
		filter.To = &t
	}

	if uidStr := c.Query("user_id"); uidStr != "" {
		uid, err := uuid.Parse(uidStr)
		if err != nil {
			return filter, fmt.Errorf("invalid 'user_id': must be a valid UUID")
		}
		filter.UserID = &uid
	}

	granularity := domain.StatsGranularity(c.DefaultQuery("granularity", string(domain.GranularityDay)))
	if !validGranularities[granularity] {
		return filter, fmt.Errorf("invalid 'granularity': must be one of day, week, month")
	}
	filter.Granularity = granularity

	return filter, nil
}

// TraineeSummary handles GET /api/v1/stats/trainees
func (h *StatsHandler) TraineeSummary(c *gin.Context) {
	filter, err := parseStatsFilter(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	rows, err := h.statsService.TraineeSummary(c.Request.Context(), filter)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, rows)
}

// OutcomeSeries handles GET /api/v1/stats/outcomes
func (h *StatsHandler) OutcomeSeries(c *gin.Context) {
	filter, err := parseStatsFilter(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	rows, err := h.statsService.OutcomeSeries(c.Request.Context(), filter)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, rows)
}

// QuizPerformance handles GET /api/v1/stats/quizzes
func (h *StatsHandler) QuizPerformance(c *gin.Context) {
	filter, err := parseStatsFilter(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	rows, err := h.statsService.QuizPerformance(c.Request.Context(), filter)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, rows)
}

// ExportEvaluations handles GET /api/v1/stats/evaluations/export
//
// Streams a CSV attachment instead of the JSON envelope.
func (h *StatsHandler) ExportEvaluations(c *gin.Context) {
	filter, err := parseStatsFilter(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	filename := csvexport.BuildFilename("avaliacoes")
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := h.statsService.ExportEvaluationsCSV(c.Request.Context(), filter, c.Writer); err != nil {
		// Headers may already be out; log and abort the stream.
		requestID, _ := c.Get("request_id")
		log.Printf("[%v] csv export error: %v", requestID, err)
		c.Abort()
		return
	}
}
