// Package service provides business logic layer for auth module.
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/coachlab/evaluator/internal/auth/model"
	"github.com/coachlab/evaluator/internal/auth/repository"
)

// DefaultSessionTTL is the session lifetime used unless overridden.
const DefaultSessionTTL = 24 * time.Hour

// Service defines the interface for auth business logic operations.
type Service interface {
	// Register creates a new user account with a bcrypt-hashed password.
	Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error)

	// Login verifies credentials and issues a session token.
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)

	// Logout invalidates a session token.
	Logout(ctx context.Context, token string) error

	// ValidateSession resolves a session token to its user.
	ValidateSession(ctx context.Context, token string) (*model.User, error)

	// GetUser finds a user by user_id.
	GetUser(ctx context.Context, userID string) (*model.User, error)

	// CleanupSessions removes expired sessions.
	CleanupSessions(ctx context.Context) (int64, error)
}

type service struct {
	repo       repository.Repository
	sessionTTL time.Duration
	logger     *zap.SugaredLogger
}

// New creates a new auth service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, sessionTTL: DefaultSessionTTL, logger: logger}
}

// NewWithTTL creates a new auth service instance with a custom session lifetime.
func NewWithTTL(repo repository.Repository, ttl time.Duration, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, sessionTTL: ttl, logger: logger}
}

// Register creates a new user account with a bcrypt-hashed password.
func (s *service) Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error) {
	s.logger.Debugw("Register called", "email", req.Email, "role", req.Role)

	if !model.ValidRole(req.Role) {
		s.logger.Debugw("Register validation failed", "role", req.Role)
		return nil, model.ErrInvalidRole
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	_, err := s.repo.GetUserByEmail(ctx, email)
	if err == nil {
		s.logger.Debugw("Register email already taken", "email", email)
		return nil, model.ErrEmailTaken
	}
	if !errors.Is(err, model.ErrUserNotFound) {
		s.logger.Errorw("Register lookup failed", "email", email, "error", err)
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Errorw("Register password hashing failed", "error", err)
		return nil, err
	}

	user := &model.User{
		UserID:       uuid.NewString(),
		Username:     strings.TrimSpace(req.Username),
		Email:        email,
		PasswordHash: string(hash),
		Role:         req.Role,
		CreatedAt:    time.Now(),
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		s.logger.Errorw("Register failed", "email", email, "error", err)
		return nil, err
	}

	s.logger.Infow("Register completed", "user_id", user.UserID, "role", user.Role)
	return &model.RegisterResponse{User: *user}, nil
}

// Login verifies credentials and issues a session token.
func (s *service) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	s.logger.Debugw("Login called", "email", email)

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			s.logger.Warnw("Login failed", "email", email, "reason", "unknown email")
			return nil, model.ErrInvalidCredentials
		}
		s.logger.Errorw("Login lookup failed", "email", email, "error", err)
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warnw("Login failed", "email", email, "reason", "password mismatch")
		return nil, model.ErrInvalidCredentials
	}

	session := &model.Session{
		Token:     uuid.NewString(),
		UserID:    user.UserID,
		ExpiresAt: time.Now().Add(s.sessionTTL),
		CreatedAt: time.Now(),
	}

	if err := s.repo.CreateSession(ctx, session); err != nil {
		s.logger.Errorw("Login session creation failed", "user_id", user.UserID, "error", err)
		return nil, err
	}

	s.logger.Infow("Login completed", "user_id", user.UserID, "role", user.Role)
	return &model.LoginResponse{Token: session.Token, User: *user}, nil
}

// Logout invalidates a session token.
func (s *service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return model.ErrSessionNotFound
	}

	if err := s.repo.DeleteSession(ctx, token); err != nil {
		if errors.Is(err, model.ErrSessionNotFound) {
			return err
		}
		s.logger.Errorw("Logout failed", "error", err)
		return err
	}

	s.logger.Infow("Logout completed")
	return nil
}

// ValidateSession resolves a session token to its user.
func (s *service) ValidateSession(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, model.ErrSessionNotFound
	}

	session, err := s.repo.GetSession(ctx, token)
	if err != nil {
		return nil, err
	}

	if session.Expired(time.Now()) {
		// Best effort cleanup; the session is rejected either way.
		_ = s.repo.DeleteSession(ctx, token)
		return nil, model.ErrSessionNotFound
	}

	user, err := s.repo.GetUserByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	return user, nil
}

// GetUser finds a user by user_id.
func (s *service) GetUser(ctx context.Context, userID string) (*model.User, error) {
	if userID == "" {
		return nil, model.ErrUserNotFound
	}
	return s.repo.GetUserByID(ctx, userID)
}

// CleanupSessions removes expired sessions.
func (s *service) CleanupSessions(ctx context.Context) (int64, error) {
	deleted, err := s.repo.DeleteExpiredSessions(ctx, time.Now())
	if err != nil {
		s.logger.Errorw("CleanupSessions failed", "error", err)
		return 0, err
	}

	if deleted > 0 {
		s.logger.Infow("expired sessions removed", "count", deleted)
	}
	return deleted, nil
}
