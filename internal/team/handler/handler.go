// Package handler provides HTTP handlers for team endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/coachlab/evaluator/internal/middleware"
	"github.com/coachlab/evaluator/internal/team/model"
	"github.com/coachlab/evaluator/internal/team/service"
)

// Handler handles HTTP requests for team endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new team handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Dashboard handles GET /coach/dashboard request.
func (h *Handler) Dashboard(c *gin.Context) {
	coachID := middleware.CurrentUserID(c)

	resp, err := h.service.Dashboard(c.Request.Context(), coachID)
	if err != nil {
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListTeams handles GET /coach/teams request.
func (h *Handler) ListTeams(c *gin.Context) {
	coachID := middleware.CurrentUserID(c)

	resp, err := h.service.ListTeams(c.Request.Context(), coachID)
	if err != nil {
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateTeam handles POST /coach/teams request.
func (h *Handler) CreateTeam(c *gin.Context) {
	coachID := middleware.CurrentUserID(c)

	var req model.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	team, err := h.service.CreateTeam(c.Request.Context(), coachID, &req)
	if err != nil {
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"team": team})
}

// GetTeam handles GET /coach/teams/:team_id request.
func (h *Handler) GetTeam(c *gin.Context) {
	resp, err := h.service.GetTeam(c.Request.Context(), c.Param("team_id"))
	if err != nil {
		if errors.Is(err, model.ErrTeamNotFound) {
			notFoundResponse(c, "team not found")
			return
		}
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListMetrics handles GET /coach/teams/:team_id/metrics request.
func (h *Handler) ListMetrics(c *gin.Context) {
	resp, err := h.service.GetTeam(c.Request.Context(), c.Param("team_id"))
	if err != nil {
		if errors.Is(err, model.ErrTeamNotFound) {
			notFoundResponse(c, "team not found")
			return
		}
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"metrics": resp.Metrics})
}

// AddMetric handles POST /coach/teams/:team_id/metrics request.
func (h *Handler) AddMetric(c *gin.Context) {
	var req model.AddMetricRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	metric, err := h.service.AddMetric(c.Request.Context(), c.Param("team_id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrTeamNotFound):
			notFoundResponse(c, "team not found")
		case errors.Is(err, model.ErrMetricExists):
			errorResponse(c, "METRIC_EXISTS", "metric already defined for team", http.StatusConflict)
		default:
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"metric": metric})
}

// AddCricketMetrics handles POST /coach/teams/:team_id/metrics/cricket request.
func (h *Handler) AddCricketMetrics(c *gin.Context) {
	added, err := h.service.AddCricketMetrics(c.Request.Context(), c.Param("team_id"))
	if err != nil {
		if errors.Is(err, model.ErrTeamNotFound) {
			notFoundResponse(c, "team not found")
			return
		}
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"metrics": added})
}

// AddAthlete handles POST /coach/teams/:team_id/athletes request.
func (h *Handler) AddAthlete(c *gin.Context) {
	var req model.AddAthleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	err := h.service.AddAthlete(c.Request.Context(), c.Param("team_id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrTeamNotFound):
			notFoundResponse(c, "team not found")
		case errors.Is(err, model.ErrAthleteNotFound):
			notFoundResponse(c, "athlete not found")
		case errors.Is(err, model.ErrAlreadyMember):
			errorResponse(c, "ALREADY_MEMBER", "athlete already on team", http.StatusConflict)
		case errors.Is(err, model.ErrInvalidRole):
			errorResponse(c, "INVALID_REQUEST", "invalid member role", http.StatusBadRequest)
		default:
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "added"})
}

// UpdateRole handles PUT /coach/teams/:team_id/role request.
func (h *Handler) UpdateRole(c *gin.Context) {
	var req model.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	err := h.service.UpdateRole(c.Request.Context(), c.Param("team_id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrTeamNotFound):
			notFoundResponse(c, "team not found")
		case errors.Is(err, model.ErrNotMember):
			notFoundResponse(c, "athlete not on team")
		case errors.Is(err, model.ErrInvalidRole):
			errorResponse(c, "INVALID_REQUEST", "invalid member role", http.StatusBadRequest)
		default:
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}
