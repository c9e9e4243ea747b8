package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vendasim/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService          service.AuthService
	passwordResetService service.PasswordResetService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService, passwordResetService service.PasswordResetService) *AuthHandler {
	return &AuthHandler{
		authService:          authService,
		passwordResetService: passwordResetService,
	}
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input service.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	pair, err := h.authService.Login(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, pair)
}

// Refresh handles POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var input service.RefreshInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	pair, err := h.authService.RefreshToken(c.Request.Context(), input.RefreshToken)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, pair)
}

// ForgotPassword handles POST /api/v1/auth/forgot-password
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var input service.ForgotPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.passwordResetService.ForgotPassword(c.Request.Context(), input); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "if the email exists, a reset link has been sent"})
}

// ResetPassword handles POST /api/v1/auth/reset-password
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var input service.ResetPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.passwordResetService.ResetPassword(c.Request.Context(), input); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "password has been reset"})
}
