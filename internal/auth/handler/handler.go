// Package handler provides HTTP handlers for auth endpoints.
package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/coachlab/evaluator/internal/auth/model"
	"github.com/coachlab/evaluator/internal/auth/service"
)

// Handler handles HTTP requests for auth endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new auth handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Register handles POST /auth/register request.
func (h *Handler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrEmailTaken):
			errorResponse(c, "EMAIL_TAKEN", "email already registered", http.StatusConflict)
		case errors.Is(err, model.ErrInvalidRole):
			errorResponse(c, "INVALID_REQUEST", "role must be coach or athlete", http.StatusBadRequest)
		default:
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login handles POST /auth/login request.
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			errorResponse(c, "INVALID_CREDENTIALS", "invalid email or password", http.StatusUnauthorized)
			return
		}
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Logout handles POST /auth/logout request.
func (h *Handler) Logout(c *gin.Context) {
	token := BearerToken(c)
	if token == "" {
		errorResponse(c, "UNAUTHORIZED", "missing session token", http.StatusUnauthorized)
		return
	}

	if err := h.service.Logout(c.Request.Context(), token); err != nil {
		if errors.Is(err, model.ErrSessionNotFound) {
			errorResponse(c, "UNAUTHORIZED", "session not found", http.StatusUnauthorized)
			return
		}
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

// BearerToken extracts the session token from the Authorization header.
func BearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}
