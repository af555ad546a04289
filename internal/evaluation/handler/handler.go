// Package handler provides HTTP handlers for the evaluation engine.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/coachlab/evaluator/internal/evaluation/model"
	"github.com/coachlab/evaluator/internal/evaluation/service"
	"github.com/coachlab/evaluator/internal/middleware"
)

// Handler handles HTTP requests for evaluation operations.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new evaluation handler instance.
func New(service service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: service, logger: logger}
}

// EvaluateAthlete handles GET /coach/athletes/:athlete_id/evaluation requests.
// An optional team_id query parameter scopes the evaluation to one team.
func (h *Handler) EvaluateAthlete(c *gin.Context) {
	athleteID := c.Param("athlete_id")
	teamID := c.Query("team_id")

	result, err := h.service.Evaluate(c.Request.Context(), athleteID, teamID)
	if err != nil {
		h.respondError(c, athleteID, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// EvaluateSelf handles GET /athlete/evaluation requests for the
// authenticated athlete.
func (h *Handler) EvaluateSelf(c *gin.Context) {
	athleteID := middleware.CurrentUserID(c)
	teamID := c.Query("team_id")

	result, err := h.service.Evaluate(c.Request.Context(), athleteID, teamID)
	if err != nil {
		h.respondError(c, athleteID, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) respondError(c *gin.Context, athleteID string, err error) {
	switch {
	case errors.Is(err, model.ErrAthleteNotFound):
		notFoundResponse(c, "athlete not found")
	case errors.Is(err, model.ErrTeamNotFound):
		notFoundResponse(c, "team not found")
	default:
		h.logger.Errorw("Evaluate failed", "athlete_id", athleteID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
	}
}
