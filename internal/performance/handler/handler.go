// Package handler provides HTTP handlers for performance module.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/coachlab/evaluator/internal/middleware"
	"github.com/coachlab/evaluator/internal/performance/model"
	"github.com/coachlab/evaluator/internal/performance/service"
)

// Handler handles HTTP requests for performance operations.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new performance handler instance.
func New(service service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Record handles POST /coach/teams/:team_id/performances requests.
func (h *Handler) Record(c *gin.Context) {
	teamID := c.Param("team_id")

	var req model.RecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debugw("Record invalid request", "error", err)
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	p, err := h.service.Record(c.Request.Context(), teamID, middleware.CurrentUserID(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrTeamNotFound):
			notFoundResponse(c, "team not found")
		case errors.Is(err, model.ErrMetricNotFound):
			notFoundResponse(c, "metric not defined for team")
		case errors.Is(err, model.ErrNotMember):
			errorResponse(c, "NOT_MEMBER", "athlete not on team", http.StatusBadRequest)
		default:
			h.logger.Errorw("Record failed", "team_id", teamID, "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, p)
}

// ListTeam handles GET /coach/teams/:team_id/performances requests.
func (h *Handler) ListTeam(c *gin.Context) {
	teamID := c.Param("team_id")

	performances, err := h.service.ListTeam(c.Request.Context(), teamID)
	if err != nil {
		if errors.Is(err, model.ErrTeamNotFound) {
			notFoundResponse(c, "team not found")
			return
		}
		h.logger.Errorw("ListTeam failed", "team_id", teamID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"performances": performances})
}

// TeamSeries handles GET /coach/teams/:team_id/series/:metric_name requests.
func (h *Handler) TeamSeries(c *gin.Context) {
	teamID := c.Param("team_id")
	metricName := c.Param("metric_name")

	points, err := h.service.TeamSeries(c.Request.Context(), teamID, metricName)
	if err != nil {
		if errors.Is(err, model.ErrMetricNotFound) {
			notFoundResponse(c, "metric not defined for team")
			return
		}
		h.logger.Errorw("TeamSeries failed", "team_id", teamID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"metric": metricName, "series": points})
}

// TeamAverages handles GET /coach/teams/:team_id/averages requests.
func (h *Handler) TeamAverages(c *gin.Context) {
	teamID := c.Param("team_id")

	averages, err := h.service.TeamAverages(c.Request.Context(), teamID)
	if err != nil {
		h.logger.Errorw("TeamAverages failed", "team_id", teamID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"averages": averages})
}

// AthleteDetail handles GET /coach/athletes/:athlete_id requests.
func (h *Handler) AthleteDetail(c *gin.Context) {
	athleteID := c.Param("athlete_id")
	teamID := c.Query("team_id")

	performances, err := h.service.ListAthlete(c.Request.Context(), athleteID, teamID)
	if err != nil {
		h.logger.Errorw("AthleteDetail failed", "athlete_id", athleteID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	customMetrics, err := h.service.ListCustomMetrics(c.Request.Context(), athleteID)
	if err != nil {
		h.logger.Errorw("AthleteDetail custom metrics failed", "athlete_id", athleteID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"athlete_id":     athleteID,
		"performances":   performances,
		"custom_metrics": customMetrics,
	})
}

// Milestones handles GET /coach/athletes/:athlete_id/milestones requests.
func (h *Handler) Milestones(c *gin.Context) {
	athleteID := c.Param("athlete_id")

	milestones, err := h.service.Milestones(c.Request.Context(), athleteID)
	if err != nil {
		h.logger.Errorw("Milestones failed", "athlete_id", athleteID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"milestones": milestones})
}

// AddCustomMetric handles POST /coach/athletes/:athlete_id/custom-metrics requests.
func (h *Handler) AddCustomMetric(c *gin.Context) {
	athleteID := c.Param("athlete_id")

	var req model.AddCustomMetricRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debugw("AddCustomMetric invalid request", "error", err)
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	m, err := h.service.AddCustomMetric(c.Request.Context(), athleteID, &req)
	if err != nil {
		if errors.Is(err, model.ErrCustomMetricExists) {
			errorResponse(c, "METRIC_EXISTS", "custom metric already defined", http.StatusConflict)
			return
		}
		h.logger.Errorw("AddCustomMetric failed", "athlete_id", athleteID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, m)
}

// RecordCustom handles POST /coach/athletes/:athlete_id/custom-performances requests.
func (h *Handler) RecordCustom(c *gin.Context) {
	athleteID := c.Param("athlete_id")

	var req model.RecordCustomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debugw("RecordCustom invalid request", "error", err)
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	p, err := h.service.RecordCustom(c.Request.Context(), athleteID, &req)
	if err != nil {
		if errors.Is(err, model.ErrCustomMetricNotFound) {
			notFoundResponse(c, "custom metric not found")
			return
		}
		h.logger.Errorw("RecordCustom failed", "athlete_id", athleteID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, p)
}

// Report handles POST /coach/reports requests.
func (h *Handler) Report(c *gin.Context) {
	var req model.ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debugw("Report invalid request", "error", err)
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	report, err := h.service.Report(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrTeamNotFound):
			notFoundResponse(c, "team not found")
		case errors.Is(err, model.ErrInvalidReportType):
			errorResponse(c, "INVALID_REPORT_TYPE", "invalid report type", http.StatusBadRequest)
		default:
			h.logger.Errorw("Report failed", "team_id", req.TeamID, "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, report)
}
