package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"vendasim/internal/domain"
	"vendasim/internal/service"
)

// PersonaHandler handles client persona endpoints.
type PersonaHandler struct {
	personaService service.PersonaService
}

// NewPersonaHandler creates a new PersonaHandler.
func NewPersonaHandler(personaService service.PersonaService) *PersonaHandler {
	return &PersonaHandler{personaService: personaService}
}

// Create handles POST /api/v1/personas
func (h *PersonaHandler) Create(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.CreatePersonaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	persona, err := h.personaService.Create(c.Request.Context(), userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, persona)
}

// List handles GET /api/v1/personas
//
// Trainees only see active personas; admins can pass include_inactive=true.
func (h *PersonaHandler) List(c *gin.Context) {
	_, role, ok := extractAuthContext(c)
	if !ok {
		return
	}

	activeOnly := true
	if role == domain.RoleAdmin && c.Query("include_inactive") == "true" {
		activeOnly = false
	}

	offset, limit := parsePagination(c)
	personas, total, err := h.personaService.List(c.Request.Context(), activeOnly, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, personas, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Get handles GET /api/v1/personas/:id
func (h *PersonaHandler) Get(c *gin.Context) {
	personaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid persona id")
		return
	}

	persona, err := h.personaService.GetByID(c.Request.Context(), personaID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, persona)
}

// Update handles PUT /api/v1/personas/:id
func (h *PersonaHandler) Update(c *gin.Context) {
	personaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid persona id")
		return
	}

	var input service.UpdatePersonaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	persona, err := h.personaService.Update(c.Request.Context(), personaID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, persona)
}

// Delete handles DELETE /api/v1/personas/:id
func (h *PersonaHandler) Delete(c *gin.Context) {
	personaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid persona id")
		return
	}

	if err := h.personaService.Delete(c.Request.Context(), personaID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "persona deactivated"})
}
