package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/moodtrail/backend/internal/middleware"
	"github.com/JonnyWalker81/moodtrail/backend/internal/models"
	"github.com/JonnyWalker81/moodtrail/backend/internal/service"
)

type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	authResp, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err, "user", "")
		return
	}
	c.JSON(http.StatusOK, authResp)
}

// Signup handles POST /api/v1/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if !bindJSON(c, &req) {
		return
	}

	authResp, err := h.authService.Signup(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err, "user", "")
		return
	}
	c.JSON(http.StatusCreated, authResp)
}

// Logout handles POST /api/v1/auth/logout. Tokens are revoked client side.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "logged out successfully"})
}

// Me handles GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID := currentUser(c)
	user, err := h.authService.CurrentUser(c.Request.Context(), userID, middleware.BearerToken(c))
	if err != nil {
		writeError(c, err, "user", userID)
		return
	}
	c.JSON(http.StatusOK, user)
}
