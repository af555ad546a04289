// Package main provides the entry point for the evaluator HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	athleteRouter "github.com/coachlab/evaluator/internal/athlete/router"
	authModel "github.com/coachlab/evaluator/internal/auth/model"
	authRouter "github.com/coachlab/evaluator/internal/auth/router"
	authService "github.com/coachlab/evaluator/internal/auth/service"
	"github.com/coachlab/evaluator/internal/config"
	"github.com/coachlab/evaluator/internal/database/database"
	"github.com/coachlab/evaluator/internal/database/migrate"
	evaluationRouter "github.com/coachlab/evaluator/internal/evaluation/router"
	exportRouter "github.com/coachlab/evaluator/internal/export/router"
	"github.com/coachlab/evaluator/internal/health"
	"github.com/coachlab/evaluator/internal/middleware"
	notificationRouter "github.com/coachlab/evaluator/internal/notification/router"
	performanceRouter "github.com/coachlab/evaluator/internal/performance/router"
	teamRouter "github.com/coachlab/evaluator/internal/team/router"
	"github.com/coachlab/evaluator/pkg/logger"
)

func main() {
	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	appLogger, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	db, err := database.New()
	if err != nil {
		appLogger.Fatalw("failed to connect to database", "error", err)
	}

	if err := migrate.Migrate(db); err != nil {
		appLogger.Fatalw("failed to apply migrations", "error", err)
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(middleware.Logger(appLogger))
	r.Use(middleware.Recovery(appLogger))

	healthHandler := health.New(db, appLogger)
	r.GET("/health", healthHandler.Check)

	authSvc := authRouter.RegisterRoutes(r, db, appLogger)
	go cleanupSessions(authSvc, appLogger)

	authorized := r.Group("/")
	authorized.Use(middleware.RequireAuth(authSvc, appLogger))

	coach := authorized.Group("/coach")
	coach.Use(middleware.RequireRole(authModel.RoleCoach))

	athlete := authorized.Group("/athlete")
	athlete.Use(middleware.RequireRole(authModel.RoleAthlete))

	notifierSvc := notificationRouter.RegisterRoutes(coach, athlete, db, appLogger)
	teamSvc := teamRouter.RegisterRoutes(coach, db, notifierSvc, appLogger)
	performanceSvc := performanceRouter.RegisterRoutes(coach, db, notifierSvc, appLogger)
	evaluationSvc := evaluationRouter.RegisterRoutes(coach, athlete, db, appLogger)
	exportRouter.RegisterRoutes(coach, teamSvc, performanceSvc, evaluationSvc, appLogger)
	athleteRouter.RegisterRoutes(athlete, db, teamSvc, performanceSvc, notifierSvc, appLogger)

	server := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	appLogger.Infow("starting server", "address", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		appLogger.Fatalw("server stopped", "error", err)
	}
}

// cleanupSessions removes expired sessions once an hour.
func cleanupSessions(authSvc authService.Service, logger *zap.SugaredLogger) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		if _, err := authSvc.CleanupSessions(context.Background()); err != nil {
			logger.Errorw("session cleanup failed", "error", err)
		}
	}
}
