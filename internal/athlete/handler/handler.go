// Package handler provides HTTP handlers for the athlete-facing module.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/coachlab/evaluator/internal/athlete/model"
	"github.com/coachlab/evaluator/internal/athlete/service"
	"github.com/coachlab/evaluator/internal/middleware"
	performanceModel "github.com/coachlab/evaluator/internal/performance/model"
	teamModel "github.com/coachlab/evaluator/internal/team/model"
)

// Handler handles HTTP requests for athlete-facing operations.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new athlete handler instance.
func New(service service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Dashboard handles GET /athlete/dashboard requests.
func (h *Handler) Dashboard(c *gin.Context) {
	athleteID := middleware.CurrentUserID(c)

	dashboard, err := h.service.Dashboard(c.Request.Context(), athleteID)
	if err != nil {
		h.logger.Errorw("Dashboard failed", "athlete_id", athleteID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

// Profile handles GET /athlete/profile requests.
func (h *Handler) Profile(c *gin.Context) {
	athleteID := middleware.CurrentUserID(c)

	profile, err := h.service.Profile(c.Request.Context(), athleteID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			notFoundResponse(c, "user not found")
			return
		}
		h.logger.Errorw("Profile failed", "athlete_id", athleteID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// TeamStats handles GET /athlete/teams/:team_id requests.
func (h *Handler) TeamStats(c *gin.Context) {
	athleteID := middleware.CurrentUserID(c)
	teamID := c.Param("team_id")

	stats, err := h.service.TeamStats(c.Request.Context(), athleteID, teamID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNotMember):
			errorResponse(c, "FORBIDDEN", "not a member of this team", http.StatusForbidden)
		case errors.Is(err, teamModel.ErrTeamNotFound):
			notFoundResponse(c, "team not found")
		default:
			h.logger.Errorw("TeamStats failed", "team_id", teamID, "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Compare handles GET /athlete/teams/:team_id/compare/:metric_name requests.
func (h *Handler) Compare(c *gin.Context) {
	athleteID := middleware.CurrentUserID(c)
	teamID := c.Param("team_id")
	metricName := c.Param("metric_name")

	entries, err := h.service.Compare(c.Request.Context(), athleteID, teamID, metricName)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNotMember):
			errorResponse(c, "FORBIDDEN", "not a member of this team", http.StatusForbidden)
		case errors.Is(err, performanceModel.ErrMetricNotFound):
			notFoundResponse(c, "metric not defined for team")
		default:
			h.logger.Errorw("Compare failed", "team_id", teamID, "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"metric": metricName, "comparison": entries})
}

// History handles GET /athlete/teams/:team_id/history/:metric_name requests.
func (h *Handler) History(c *gin.Context) {
	athleteID := middleware.CurrentUserID(c)
	teamID := c.Param("team_id")
	metricName := c.Param("metric_name")

	points, err := h.service.History(c.Request.Context(), athleteID, teamID, metricName)
	if err != nil {
		if errors.Is(err, model.ErrNotMember) {
			errorResponse(c, "FORBIDDEN", "not a member of this team", http.StatusForbidden)
			return
		}
		h.logger.Errorw("History failed", "team_id", teamID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"metric": metricName, "series": points})
}
