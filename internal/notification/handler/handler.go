// Package handler provides HTTP handlers for notification endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/coachlab/evaluator/internal/middleware"
	"github.com/coachlab/evaluator/internal/notification/model"
	"github.com/coachlab/evaluator/internal/notification/service"
)

// Handler handles HTTP requests for notification endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new notification handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// List handles GET /notifications request for the authenticated user.
func (h *Handler) List(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			errorResponse(c, "INVALID_REQUEST", "limit must be a non-negative integer", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	resp, err := h.service.List(c.Request.Context(), userID, limit)
	if err != nil {
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// MarkRead handles POST /notifications/:id/read request.
func (h *Handler) MarkRead(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid notification id", http.StatusBadRequest)
		return
	}

	if err := h.service.MarkRead(c.Request.Context(), userID, uint(id)); err != nil {
		if errors.Is(err, model.ErrNotificationNotFound) {
			notFoundResponse(c, "notification not found")
			return
		}
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "read"})
}
