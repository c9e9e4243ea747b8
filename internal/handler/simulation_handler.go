package handler

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"vendasim/internal/chat"
	"vendasim/internal/config"
	"vendasim/internal/service"
)

// SimulationHandler handles simulation session endpoints.
//
// Deliverers are held per session so that a new turn on the same session
// supersedes any in-flight paced delivery instead of racing it.
type SimulationHandler struct {
	simulationService service.SimulationService
	chatCfg           config.ChatConfig

	mu         sync.Mutex
	deliverers map[uuid.UUID]*chat.Deliverer
}

// NewSimulationHandler creates a new SimulationHandler.
func NewSimulationHandler(simulationService service.SimulationService, chatCfg config.ChatConfig) *SimulationHandler {
	return &SimulationHandler{
		simulationService: simulationService,
		chatCfg:           chatCfg,
		deliverers:        make(map[uuid.UUID]*chat.Deliverer),
	}
}

// delivererFor returns the session's deliverer, creating it on first use.
func (h *SimulationHandler) delivererFor(sessionID uuid.UUID) *chat.Deliverer {
	h.mu.Lock()
	defer h.mu.Unlock()
	d, ok := h.deliverers[sessionID]
	if !ok {
		d = chat.NewDeliverer(h.chatCfg.MinDelay(), h.chatCfg.MaxDelay())
		h.deliverers[sessionID] = d
	}
	return d
}

// dropDeliverer cancels any in-flight delivery for the session and forgets
// the deliverer. Called when a session stops accepting turns.
func (h *SimulationHandler) dropDeliverer(sessionID uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if d, ok := h.deliverers[sessionID]; ok {
		d.Cancel()
		delete(h.deliverers, sessionID)
	}
}

// startSessionInput is the request body for starting a session.
type startSessionInput struct {
	PersonaID uuid.UUID `json:"persona_id" binding:"required"`
}

// Start handles POST /api/v1/simulations
func (h *SimulationHandler) Start(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input startSessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	session, err := h.simulationService.Start(c.Request.Context(), userID, input.PersonaID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, session)
}

// SendMessage handles POST /api/v1/simulations/:id/messages
//
// The full turn result is returned at once; clients that want paced delivery
// use the streaming variant instead.
func (h *SimulationHandler) SendMessage(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid session id")
		return
	}

	var input service.SendMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	result, err := h.simulationService.SendMessage(c.Request.Context(), userID, sessionID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// sseSink emits delivery events as server-sent events.
type sseSink struct {
	c *gin.Context
}

func (s *sseSink) AppendChunk(chunk string) {
	s.c.SSEvent("chunk", gin.H{"content": chunk})
	s.c.Writer.Flush()
}

func (s *sseSink) SetTyping(typing bool) {
	s.c.SSEvent("typing", gin.H{"typing": typing})
	s.c.Writer.Flush()
}

// StreamMessage handles POST /api/v1/simulations/:id/messages/stream
//
// Chat replies are delivered as paced SSE chunk events with typing indicator
// events around them. A final report skips pacing and arrives as a single
// evaluation event.
func (h *SimulationHandler) StreamMessage(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid session id")
		return
	}

	var input service.SendMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	result, err := h.simulationService.SendMessage(c.Request.Context(), userID, sessionID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	if result.Evaluation != nil {
		h.dropDeliverer(sessionID)
		c.SSEvent("evaluation", gin.H{"evaluation": result.Evaluation, "model_used": result.ModelUsed})
		c.Writer.Flush()
	} else {
		h.delivererFor(sessionID).Deliver(c.Request.Context(), result.Chunks, &sseSink{c: c})
	}

	c.SSEvent("done", gin.H{"model_used": result.ModelUsed})
	c.Writer.Flush()
}

// Get handles GET /api/v1/simulations/:id
func (h *SimulationHandler) Get(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid session id")
		return
	}

	detail, err := h.simulationService.Get(c.Request.Context(), userID, sessionID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, detail)
}

// List handles GET /api/v1/simulations
func (h *SimulationHandler) List(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	offset, limit := parsePagination(c)
	sessions, total, err := h.simulationService.List(c.Request.Context(), userID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, sessions, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Abandon handles POST /api/v1/simulations/:id/abandon
func (h *SimulationHandler) Abandon(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid session id")
		return
	}

	if err := h.simulationService.Abandon(c.Request.Context(), userID, sessionID); err != nil {
		HandleError(c, err)
		return
	}

	h.dropDeliverer(sessionID)
	RespondOK(c, gin.H{"message": "session abandoned"})
}

// GetEvaluation handles GET /api/v1/simulations/:id/evaluation
func (h *SimulationHandler) GetEvaluation(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid session id")
		return
	}

	eval, err := h.simulationService.GetEvaluation(c.Request.Context(), userID, sessionID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, eval)
}
