package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"vendasim/internal/domain"
	"vendasim/internal/service"
)

// FlashcardHandler handles deck and flashcard endpoints.
type FlashcardHandler struct {
	flashcardService service.FlashcardService
}

// NewFlashcardHandler creates a new FlashcardHandler.
func NewFlashcardHandler(flashcardService service.FlashcardService) *FlashcardHandler {
	return &FlashcardHandler{flashcardService: flashcardService}
}

// CreateDeck handles POST /api/v1/decks
func (h *FlashcardHandler) CreateDeck(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.CreateDeckInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	deck, err := h.flashcardService.CreateDeck(c.Request.Context(), userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, deck)
}

// ListDecks handles GET /api/v1/decks
func (h *FlashcardHandler) ListDecks(c *gin.Context) {
	_, role, ok := extractAuthContext(c)
	if !ok {
		return
	}

	activeOnly := true
	if role == domain.RoleAdmin && c.Query("include_inactive") == "true" {
		activeOnly = false
	}

	offset, limit := parsePagination(c)
	decks, total, err := h.flashcardService.ListDecks(c.Request.Context(), activeOnly, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, decks, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetDeck handles GET /api/v1/decks/:id
func (h *FlashcardHandler) GetDeck(c *gin.Context) {
	deckID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid deck id")
		return
	}

	deck, err := h.flashcardService.GetDeck(c.Request.Context(), deckID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, deck)
}

// UpdateDeck handles PUT /api/v1/decks/:id
func (h *FlashcardHandler) UpdateDeck(c *gin.Context) {
	deckID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid deck id")
		return
	}

	var input service.UpdateDeckInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	deck, err := h.flashcardService.UpdateDeck(c.Request.Context(), deckID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, deck)
}

// DeleteDeck handles DELETE /api/v1/decks/:id
func (h *FlashcardHandler) DeleteDeck(c *gin.Context) {
	deckID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid deck id")
		return
	}

	if err := h.flashcardService.DeleteDeck(c.Request.Context(), deckID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "deck deactivated"})
}

// CreateCard handles POST /api/v1/decks/:id/cards
func (h *FlashcardHandler) CreateCard(c *gin.Context) {
	deckID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid deck id")
		return
	}

	var input service.CardInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	card, err := h.flashcardService.CreateCard(c.Request.Context(), deckID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, card)
}

// ListCards handles GET /api/v1/decks/:id/cards
func (h *FlashcardHandler) ListCards(c *gin.Context) {
	deckID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid deck id")
		return
	}

	cards, err := h.flashcardService.ListCards(c.Request.Context(), deckID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, cards)
}

// UpdateCard handles PUT /api/v1/cards/:id
func (h *FlashcardHandler) UpdateCard(c *gin.Context) {
	cardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid card id")
		return
	}

	var input service.CardInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	card, err := h.flashcardService.UpdateCard(c.Request.Context(), cardID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, card)
}

// DeleteCard handles DELETE /api/v1/cards/:id
func (h *FlashcardHandler) DeleteCard(c *gin.Context) {
	cardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid card id")
		return
	}

	if err := h.flashcardService.DeleteCard(c.Request.Context(), cardID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "card deleted"})
}

// ReviewCard handles POST /api/v1/cards/:id/reviews
func (h *FlashcardHandler) ReviewCard(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	cardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid card id")
		return
	}

	var input service.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.flashcardService.Review(c.Request.Context(), userID, cardID, input); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "review recorded"})
}
