package delivery

import (
	"errors"
	"log"
	"net/http"

	authdto "moviehub-backend/internal/auth/dto"
	"moviehub-backend/internal/auth/usecase"
	"moviehub-backend/pkg/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionCookieName = "session_id"

// AuthHandler handles registration and login requests
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	sessions    *session.Store // nil when Redis is not configured
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase, sessions *session.Store) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		sessions:    sessions,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authUsecase.Register(&req)
	if err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyRegistered) {
			c.JSON(http.StatusConflict, gin.H{"error": "user already exists, please login"})
			return
		}
		log.Printf("[ERROR] register failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	h.markSession(c, resp.ID)
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authUsecase.Login(&req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "username or password is invalid"})
			return
		}
		log.Printf("[ERROR] login failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	h.markSession(c, resp.ID)
	c.JSON(http.StatusOK, resp)
}

// Me returns the identity claims of the presented token.
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"id":    c.GetString("userID"),
		"email": c.GetString("email"),
	})
}

// markSession records the advisory session marker and hands the session id to
// the client as a cookie. Failures are logged and swallowed: the marker is
// never load-bearing.
func (h *AuthHandler) markSession(c *gin.Context, userID string) {
	if h.sessions == nil {
		return
	}

	sessionID, err := c.Cookie(sessionCookieName)
	if err != nil || sessionID == "" {
		sessionID = uuid.New().String()
	}

	if err := h.sessions.Mark(c.Request.Context(), sessionID, userID); err != nil {
		log.Printf("[WARN] failed to mark session: %v", err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookieName, sessionID, 0, "/", "", false, true)
}
