package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"vendasim/internal/domain"
	"vendasim/internal/service"
)

// QuizHandler handles quiz endpoints.
type QuizHandler struct {
	quizService service.QuizService
}

// NewQuizHandler creates a new QuizHandler.
func NewQuizHandler(quizService service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// Create handles POST /api/v1/quizzes
func (h *QuizHandler) Create(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.CreateQuizInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	quiz, err := h.quizService.Create(c.Request.Context(), userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, quiz)
}

// List handles GET /api/v1/quizzes
func (h *QuizHandler) List(c *gin.Context) {
	_, role, ok := extractAuthContext(c)
	if !ok {
		return
	}

	activeOnly := true
	if role == domain.RoleAdmin && c.Query("include_inactive") == "true" {
		activeOnly = false
	}

	offset, limit := parsePagination(c)
	quizzes, total, err := h.quizService.List(c.Request.Context(), activeOnly, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, quizzes, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Get handles GET /api/v1/quizzes/:id
func (h *QuizHandler) Get(c *gin.Context) {
	quizID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid quiz id")
		return
	}

	detail, err := h.quizService.Get(c.Request.Context(), quizID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, detail)
}

// Update handles PUT /api/v1/quizzes/:id
func (h *QuizHandler) Update(c *gin.Context) {
	quizID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid quiz id")
		return
	}

	var input service.UpdateQuizInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	quiz, err := h.quizService.Update(c.Request.Context(), quizID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, quiz)
}

// Delete handles DELETE /api/v1/quizzes/:id
func (h *QuizHandler) Delete(c *gin.Context) {
	quizID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid quiz id")
		return
	}

	if err := h.quizService.Delete(c.Request.Context(), quizID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "quiz deactivated"})
}

// Submit handles POST /api/v1/quizzes/:id/attempts
func (h *QuizHandler) Submit(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	quizID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid quiz id")
		return
	}

	var input service.SubmitQuizInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	attempt, err := h.quizService.Submit(c.Request.Context(), userID, quizID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, attempt)
}

// ListAttempts handles GET /api/v1/quizzes/:id/attempts
func (h *QuizHandler) ListAttempts(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	quizID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid quiz id")
		return
	}

	attempts, err := h.quizService.ListAttempts(c.Request.Context(), userID, quizID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, attempts)
}
