// Package router provides performance module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	notification "github.com/coachlab/evaluator/internal/notification/service"
	"github.com/coachlab/evaluator/internal/performance/handler"
	"github.com/coachlab/evaluator/internal/performance/repository"
	"github.com/coachlab/evaluator/internal/performance/service"
)

// RegisterRoutes registers performance module routes under the coach group
// and returns the service so athlete-facing modules can reuse it.
func RegisterRoutes(coach *gin.RouterGroup, db *gorm.DB, notifier notification.Service, logger *zap.SugaredLogger) service.Service {
	repo := repository.New(db, logger)
	svc := service.New(repo, notifier, logger)
	h := handler.New(svc, logger)

	coach.POST("/teams/:team_id/performances", h.Record)
	coach.GET("/teams/:team_id/performances", h.ListTeam)
	coach.GET("/teams/:team_id/series/:metric_name", h.TeamSeries)
	coach.GET("/teams/:team_id/averages", h.TeamAverages)
	coach.POST("/reports", h.Report)
	coach.GET("/athletes/:athlete_id", h.AthleteDetail)
	coach.GET("/athletes/:athlete_id/milestones", h.Milestones)
	coach.POST("/athletes/:athlete_id/custom-metrics", h.AddCustomMetric)
	coach.POST("/athletes/:athlete_id/custom-performances", h.RecordCustom)

	return svc
}
