package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"vendasim/internal/domain"
	"vendasim/internal/handler"
	"vendasim/internal/service"
	"vendasim/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func postJSON(t *testing.T, h gin.HandlerFunc, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h(c)
	return w
}

func TestAuthHandler_Login_Success(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	h := handler.NewAuthHandler(mockAuth, nil)

	tokenPair := &service.TokenPair{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		ExpiresAt:    time.Now().Add(15 * time.Minute),
	}
	mockAuth.On("Login", mock.Anything, service.LoginInput{
		Email:    "trainee@test.com",
		Password: "password123",
	}).Return(tokenPair, nil)

	w := postJSON(t, h.Login, "/api/v1/auth/login", map[string]string{
		"email":    "trainee@test.com",
		"password": "password123",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	mockAuth.AssertExpectations(t)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	h := handler.NewAuthHandler(mockAuth, nil)

	mockAuth.On("Login", mock.Anything, mock.AnythingOfType("service.LoginInput")).
		Return(nil, domain.ErrInvalidCredentials)

	w := postJSON(t, h.Login, "/api/v1/auth/login", map[string]string{
		"email":    "trainee@test.com",
		"password": "wrongpassword",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "INVALID_CREDENTIALS", resp.Error.Code)
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	h := handler.NewAuthHandler(mockAuth, nil)

	w := postJSON(t, h.Login, "/api/v1/auth/login", map[string]string{
		"email": "trainee@test.com",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockAuth.AssertNotCalled(t, "Login")
}

func TestAuthHandler_ForgotPassword_AlwaysOK(t *testing.T) {
	mockReset := new(mocks.MockPasswordResetService)
	h := handler.NewAuthHandler(nil, mockReset)

	mockReset.On("ForgotPassword", mock.Anything, service.ForgotPasswordInput{
		Email: "ghost@test.com",
	}).Return(nil)

	w := postJSON(t, h.ForgotPassword, "/api/v1/auth/forgot-password", map[string]string{
		"email": "ghost@test.com",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	mockReset.AssertExpectations(t)
}

func TestAuthHandler_ResetPassword_InvalidToken(t *testing.T) {
	mockReset := new(mocks.MockPasswordResetService)
	h := handler.NewAuthHandler(nil, mockReset)

	mockReset.On("ResetPassword", mock.Anything, mock.AnythingOfType("service.ResetPasswordInput")).
		Return(domain.ErrPasswordResetTokenInvalid)

	w := postJSON(t, h.ResetPassword, "/api/v1/auth/reset-password", map[string]string{
		"token":        "stale-token",
		"new_password": "new-password-123",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_RESET_TOKEN", resp.Error.Code)
}
