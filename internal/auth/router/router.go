// Package router provides auth module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/coachlab/evaluator/internal/auth/handler"
	"github.com/coachlab/evaluator/internal/auth/repository"
	"github.com/coachlab/evaluator/internal/auth/service"
)

// RegisterRoutes registers auth module routes and returns the service
// so the middleware and other modules can resolve sessions.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) service.Service {
	repo := repository.New(db, logger)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	r.POST("/auth/logout", h.Logout)

	return svc
}
