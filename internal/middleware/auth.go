package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/coachlab/evaluator/internal/auth/handler"
	"github.com/coachlab/evaluator/internal/auth/model"
	"github.com/coachlab/evaluator/internal/auth/service"
)

// Context keys set by the auth middleware.
const (
	ContextUserKey = "auth_user"
	ContextUserID  = "auth_user_id"
	ContextRole    = "auth_role"
)

// RequireAuth returns a middleware that resolves the session token from the
// Authorization header and stores the authenticated user in the context.
func RequireAuth(authSvc service.Service, logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := handler.BearerToken(c)
		if token == "" {
			unauthorized(c, "missing session token")
			return
		}

		user, err := authSvc.ValidateSession(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, model.ErrSessionNotFound) || errors.Is(err, model.ErrUserNotFound) {
				unauthorized(c, "session not found or expired")
				return
			}
			logger.Errorw("session validation failed", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": gin.H{"code": "INTERNAL_ERROR", "message": "internal server error"},
			})
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextUserID, user.UserID)
		c.Set(ContextRole, user.Role)
		c.Next()
	}
}

// RequireRole returns a middleware that rejects requests whose authenticated
// user does not carry the given role. Must run after RequireAuth.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextRole) != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": gin.H{"code": "FORBIDDEN", "message": "insufficient role"},
			})
			return
		}
		c.Next()
	}
}

// CurrentUserID returns the authenticated user's ID from the context.
func CurrentUserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}

func unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": gin.H{"code": "UNAUTHORIZED", "message": message},
	})
}
