// Package repository provides data access layer for auth module.
package repository

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/coachlab/evaluator/internal/auth/model"
)

// Repository defines the interface for auth data access operations.
type Repository interface {
	// CreateUser inserts a new user row.
	CreateUser(ctx context.Context, user *model.User) error

	// GetUserByEmail finds a user by email.
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)

	// GetUserByID finds a user by user_id.
	GetUserByID(ctx context.Context, userID string) (*model.User, error)

	// CreateSession inserts a new session row.
	CreateSession(ctx context.Context, session *model.Session) error

	// GetSession finds a session by token.
	GetSession(ctx context.Context, token string) (*model.Session, error)

	// DeleteSession removes a session by token.
	DeleteSession(ctx context.Context, token string) error

	// DeleteExpiredSessions removes sessions past their expiry time.
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new auth repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// CreateUser inserts a new user row.
func (r *repository) CreateUser(ctx context.Context, user *model.User) error {
	r.logger.Debugw("CreateUser called", "user_id", user.UserID, "email", user.Email)

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			r.logger.Debugw("CreateUser duplicate email", "email", user.Email)
			return model.ErrEmailTaken
		}
		r.logger.Errorw("CreateUser database error", "email", user.Email, "error", err)
		return err
	}

	return nil
}

// GetUserByEmail finds a user by email.
func (r *repository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	r.logger.Debugw("GetUserByEmail called", "email", email)

	var user model.User
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrUserNotFound
		}
		r.logger.Errorw("GetUserByEmail database error", "email", email, "error", err)
		return nil, err
	}

	return &user, nil
}

// GetUserByID finds a user by user_id.
func (r *repository) GetUserByID(ctx context.Context, userID string) (*model.User, error) {
	r.logger.Debugw("GetUserByID called", "user_id", userID)

	var user model.User
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrUserNotFound
		}
		r.logger.Errorw("GetUserByID database error", "user_id", userID, "error", err)
		return nil, err
	}

	return &user, nil
}

// CreateSession inserts a new session row.
func (r *repository) CreateSession(ctx context.Context, session *model.Session) error {
	r.logger.Debugw("CreateSession called", "user_id", session.UserID)

	if err := r.db.WithContext(ctx).Create(session).Error; err != nil {
		r.logger.Errorw("CreateSession database error", "user_id", session.UserID, "error", err)
		return err
	}

	return nil
}

// GetSession finds a session by token.
func (r *repository) GetSession(ctx context.Context, token string) (*model.Session, error) {
	var session model.Session
	err := r.db.WithContext(ctx).
		Where("token = ?", token).
		First(&session).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrSessionNotFound
		}
		r.logger.Errorw("GetSession database error", "error", err)
		return nil, err
	}

	return &session, nil
}

// DeleteSession removes a session by token.
func (r *repository) DeleteSession(ctx context.Context, token string) error {
	result := r.db.WithContext(ctx).
		Where("token = ?", token).
		Delete(&model.Session{})

	if result.Error != nil {
		r.logger.Errorw("DeleteSession database error", "error", result.Error)
		return result.Error
	}

	if result.RowsAffected == 0 {
		return model.ErrSessionNotFound
	}

	return nil
}

// DeleteExpiredSessions removes sessions past their expiry time.
func (r *repository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at < ?", now).
		Delete(&model.Session{})

	if result.Error != nil {
		r.logger.Errorw("DeleteExpiredSessions database error", "error", result.Error)
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
