// Package router provides team module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	notification "github.com/coachlab/evaluator/internal/notification/service"
	"github.com/coachlab/evaluator/internal/team/handler"
	"github.com/coachlab/evaluator/internal/team/repository"
	"github.com/coachlab/evaluator/internal/team/service"
)

// RegisterRoutes registers team module routes under the coach group and
// returns the service so other modules can resolve teams and rosters.
func RegisterRoutes(coach *gin.RouterGroup, db *gorm.DB, notifier notification.Service, logger *zap.SugaredLogger) service.Service {
	repo := repository.New(db, logger)
	svc := service.New(repo, notifier, logger)
	h := handler.New(svc, logger)

	coach.GET("/dashboard", h.Dashboard)
	coach.GET("/teams", h.ListTeams)
	coach.POST("/teams", h.CreateTeam)
	coach.GET("/teams/:team_id", h.GetTeam)
	coach.GET("/teams/:team_id/metrics", h.ListMetrics)
	coach.POST("/teams/:team_id/metrics", h.AddMetric)
	coach.POST("/teams/:team_id/metrics/cricket", h.AddCricketMetrics)
	coach.POST("/teams/:team_id/athletes", h.AddAthlete)
	coach.PUT("/teams/:team_id/role", h.UpdateRole)

	return svc
}
