// Package repository provides data access layer for the athlete-facing module.
package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/coachlab/evaluator/internal/athlete/model"
)

// Profile is the subset of the user row the athlete module needs.
type Profile struct {
	UserID   string `gorm:"column:user_id"`
	Username string `gorm:"column:username"`
	Email    string `gorm:"column:email"`
}

// Repository defines the interface for athlete module data access operations.
type Repository interface {
	// GetProfile returns the athlete's user row.
	GetProfile(ctx context.Context, userID string) (*Profile, error)

	// IsMember reports whether the athlete is on the team roster.
	IsMember(ctx context.Context, teamID, athleteID string) (bool, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new athlete repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// GetProfile returns the athlete's user row.
func (r *repository) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	var profiles []Profile
	err := r.db.WithContext(ctx).
		Table("users").
		Select("user_id, username, email").
		Where("user_id = ?", userID).
		Limit(1).
		Scan(&profiles).Error

	if err != nil {
		r.logger.Errorw("GetProfile database error", "user_id", userID, "error", err)
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, model.ErrUserNotFound
	}

	return &profiles[0], nil
}

// IsMember reports whether the athlete is on the team roster.
func (r *repository) IsMember(ctx context.Context, teamID, athleteID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("team_members").
		Where("team_id = ? AND athlete_id = ?", teamID, athleteID).
		Count(&count).Error

	if err != nil {
		r.logger.Errorw("IsMember database error", "team_id", teamID, "error", err)
		return false, err
	}

	return count > 0, nil
}
