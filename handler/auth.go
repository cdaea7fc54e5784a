package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Vaibhav01-bit/WordWave/model"
	"github.com/Vaibhav01-bit/WordWave/store"
)

type AuthHandler struct {
	sessions *store.SessionStore
}

func NewAuthHandler(sessions *store.SessionStore) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

type loginRequest struct {
	ID       string `json:"id" binding:"required"`
	Username string `json:"username"`
	Email    string `json:"email" binding:"required"`
	Role     string `json:"role"`
}

// Login records an identity already verified by the external login
// collaborator. No credential checking happens here.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := model.User{
		ID:       req.ID,
		Username: req.Username,
		Email:    req.Email,
		Role:     req.Role,
	}
	if user.Username == "" {
		user.Username = usernameFromEmail(user.Email)
	}
	if user.Role == "" {
		user.Role = model.RoleUser
	}

	h.sessions.Login(user)
	c.JSON(http.StatusOK, gin.H{"authenticated": true, "user": user})
}

// Logout clears the session and tells the client where to navigate.
func (h *AuthHandler) Logout(c *gin.Context) {
	redirect := h.sessions.Logout()
	c.JSON(http.StatusOK, gin.H{"authenticated": false, "redirect": redirect})
}

// Session reports the current auth state.
func (h *AuthHandler) Session(c *gin.Context) {
	user, ok := h.sessions.User()
	if !ok {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"authenticated": true, "user": user})
}

// RequireAdmin guards admin-only routes on the recorded session role. The
// role is a client-readable flag, not a hardened access control.
func (h *AuthHandler) RequireAdmin(c *gin.Context) {
	user, ok := h.sessions.User()
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required"})
		return
	}
	if user.Role != model.RoleAdmin {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin role required"})
		return
	}
	c.Next()
}

func usernameFromEmail(email string) string {
	return strings.SplitN(email, "@", 2)[0]
}
