// Package router provides athlete module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/coachlab/evaluator/internal/athlete/handler"
	"github.com/coachlab/evaluator/internal/athlete/repository"
	"github.com/coachlab/evaluator/internal/athlete/service"
	notificationService "github.com/coachlab/evaluator/internal/notification/service"
	performanceService "github.com/coachlab/evaluator/internal/performance/service"
	teamService "github.com/coachlab/evaluator/internal/team/service"
)

// RegisterRoutes registers athlete-facing routes under the athlete group.
func RegisterRoutes(
	athlete *gin.RouterGroup,
	db *gorm.DB,
	teams teamService.Service,
	performances performanceService.Service,
	notifier notificationService.Service,
	logger *zap.SugaredLogger,
) {
	repo := repository.New(db, logger)
	svc := service.New(repo, teams, performances, notifier, logger)
	h := handler.New(svc, logger)

	athlete.GET("/dashboard", h.Dashboard)
	athlete.GET("/profile", h.Profile)
	athlete.GET("/teams/:team_id", h.TeamStats)
	athlete.GET("/teams/:team_id/compare/:metric_name", h.Compare)
	athlete.GET("/teams/:team_id/history/:metric_name", h.History)
}
