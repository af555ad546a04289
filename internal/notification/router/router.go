// Package router provides notification module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/coachlab/evaluator/internal/notification/handler"
	"github.com/coachlab/evaluator/internal/notification/repository"
	"github.com/coachlab/evaluator/internal/notification/service"
)

// RegisterRoutes registers notification module routes under the coach and
// athlete groups and returns the service for other modules to produce
// notifications through.
func RegisterRoutes(coach, athlete *gin.RouterGroup, db *gorm.DB, logger *zap.SugaredLogger) service.Service {
	repo := repository.New(db, logger)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	for _, g := range []*gin.RouterGroup{coach, athlete} {
		g.GET("/notifications", h.List)
		g.POST("/notifications/:id/read", h.MarkRead)
	}

	return svc
}
