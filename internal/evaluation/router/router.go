// Package router provides evaluation module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/coachlab/evaluator/internal/evaluation/handler"
	"github.com/coachlab/evaluator/internal/evaluation/repository"
	"github.com/coachlab/evaluator/internal/evaluation/service"
)

// RegisterRoutes registers evaluation routes under the coach and athlete
// groups and returns the service so the export module can score athletes.
func RegisterRoutes(coach, athlete *gin.RouterGroup, db *gorm.DB, logger *zap.SugaredLogger) service.Service {
	repo := repository.New(db, logger)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	coach.GET("/athletes/:athlete_id/evaluation", h.EvaluateAthlete)
	athlete.GET("/evaluation", h.EvaluateSelf)

	return svc
}
