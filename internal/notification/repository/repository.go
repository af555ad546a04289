// Package repository provides data access layer for notification module.
package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/coachlab/evaluator/internal/notification/model"
)

// Repository defines the interface for notification data access operations.
type Repository interface {
	// Create inserts a new notification row.
	Create(ctx context.Context, n *model.Notification) error

	// ListForUser returns the user's most recent notifications.
	ListForUser(ctx context.Context, userID string, limit int) ([]model.Notification, error)

	// MarkRead flags a notification as read, scoped to its owner.
	MarkRead(ctx context.Context, userID string, id uint) error

	// CountUnread returns the number of unread notifications for a user.
	CountUnread(ctx context.Context, userID string) (int64, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new notification repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// Create inserts a new notification row.
func (r *repository) Create(ctx context.Context, n *model.Notification) error {
	r.logger.Debugw("Create called", "user_id", n.UserID, "type", n.Type)

	if err := r.db.WithContext(ctx).Create(n).Error; err != nil {
		r.logger.Errorw("Create database error", "user_id", n.UserID, "error", err)
		return err
	}

	return nil
}

// ListForUser returns the user's most recent notifications.
func (r *repository) ListForUser(ctx context.Context, userID string, limit int) ([]model.Notification, error) {
	r.logger.Debugw("ListForUser called", "user_id", userID, "limit", limit)

	var notifications []model.Notification
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&notifications).Error

	if err != nil {
		r.logger.Errorw("ListForUser database error", "user_id", userID, "error", err)
		return nil, err
	}

	if notifications == nil {
		notifications = []model.Notification{}
	}

	return notifications, nil
}

// MarkRead flags a notification as read, scoped to its owner.
func (r *repository) MarkRead(ctx context.Context, userID string, id uint) error {
	result := r.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read", true)

	if result.Error != nil {
		r.logger.Errorw("MarkRead database error", "user_id", userID, "id", id, "error", result.Error)
		return result.Error
	}

	if result.RowsAffected == 0 {
		return model.ErrNotificationNotFound
	}

	return nil
}

// CountUnread returns the number of unread notifications for a user.
func (r *repository) CountUnread(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Count(&count).Error

	if err != nil {
		r.logger.Errorw("CountUnread database error", "user_id", userID, "error", err)
		return 0, err
	}

	return count, nil
}
