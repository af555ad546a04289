// Package router provides export module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	evaluationService "github.com/coachlab/evaluator/internal/evaluation/service"
	"github.com/coachlab/evaluator/internal/export/handler"
	"github.com/coachlab/evaluator/internal/export/service"
	performanceService "github.com/coachlab/evaluator/internal/performance/service"
	teamService "github.com/coachlab/evaluator/internal/team/service"
)

// RegisterRoutes registers export routes under the coach group.
func RegisterRoutes(
	coach *gin.RouterGroup,
	teams teamService.Service,
	performances performanceService.Service,
	evaluations evaluationService.Service,
	logger *zap.SugaredLogger,
) {
	svc := service.New(teams, performances, evaluations, logger)
	h := handler.New(svc, logger)

	coach.GET("/teams/:team_id/export", h.ExportTeam)
	coach.GET("/athletes/:athlete_id/export", h.ExportAthlete)
}
