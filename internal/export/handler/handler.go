// Package handler provides HTTP handlers for spreadsheet exports.
package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	evaluationModel "github.com/coachlab/evaluator/internal/evaluation/model"
	"github.com/coachlab/evaluator/internal/export/service"
	teamModel "github.com/coachlab/evaluator/internal/team/model"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeCSV  = "text/csv"
)

// Handler handles HTTP requests for export operations.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new export handler instance.
func New(service service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: service, logger: logger}
}

// ExportTeam handles GET /coach/teams/:team_id/export requests. The format
// query parameter selects csv; the default is xlsx.
func (h *Handler) ExportTeam(c *gin.Context) {
	teamID := c.Param("team_id")

	var (
		data []byte
		err  error
	)
	if c.Query("format") == "csv" {
		data, err = h.service.TeamCSV(c.Request.Context(), teamID)
	} else {
		data, err = h.service.TeamWorkbook(c.Request.Context(), teamID)
	}

	if err != nil {
		if errors.Is(err, teamModel.ErrTeamNotFound) {
			notFoundResponse(c, "team not found")
			return
		}
		h.logger.Errorw("ExportTeam failed", "team_id", teamID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	h.send(c, data, "team_"+teamID, c.Query("format") == "csv")
}

// ExportAthlete handles GET /coach/athletes/:athlete_id/export requests. The
// format query parameter selects csv; the default is xlsx.
func (h *Handler) ExportAthlete(c *gin.Context) {
	athleteID := c.Param("athlete_id")

	var (
		data []byte
		err  error
	)
	if c.Query("format") == "csv" {
		data, err = h.service.AthleteCSV(c.Request.Context(), athleteID)
	} else {
		data, err = h.service.AthleteWorkbook(c.Request.Context(), athleteID)
	}

	if err != nil {
		if errors.Is(err, evaluationModel.ErrAthleteNotFound) {
			notFoundResponse(c, "athlete not found")
			return
		}
		h.logger.Errorw("ExportAthlete failed", "athlete_id", athleteID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	h.send(c, data, "athlete_"+athleteID, c.Query("format") == "csv")
}

func (h *Handler) send(c *gin.Context, data []byte, basename string, asCSV bool) {
	ext, contentType := "xlsx", contentTypeXLSX
	if asCSV {
		ext, contentType = "csv", contentTypeCSV
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.%s"`, basename, ext))
	c.Data(http.StatusOK, contentType, data)
}
