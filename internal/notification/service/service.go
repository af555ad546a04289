// Package service provides business logic layer for notification module.
package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/coachlab/evaluator/internal/notification/model"
	"github.com/coachlab/evaluator/internal/notification/repository"
)

// Service defines the interface for notification business logic operations.
type Service interface {
	// Notify creates a notification for a user.
	Notify(ctx context.Context, userID, message, notificationType, relatedID string) error

	// List returns the user's inbox with the unread count.
	List(ctx context.Context, userID string, limit int) (*model.ListResponse, error)

	// MarkRead flags a notification as read.
	MarkRead(ctx context.Context, userID string, id uint) error

	// UnreadCount returns the number of unread notifications for a user.
	UnreadCount(ctx context.Context, userID string) (int64, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new notification service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

// Notify creates a notification for a user.
func (s *service) Notify(ctx context.Context, userID, message, notificationType, relatedID string) error {
	s.logger.Debugw("Notify called", "user_id", userID, "type", notificationType)

	n := &model.Notification{
		UserID:    userID,
		Message:   message,
		Type:      notificationType,
		RelatedID: relatedID,
		Read:      false,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, n); err != nil {
		s.logger.Errorw("Notify failed", "user_id", userID, "error", err)
		return err
	}

	return nil
}

// List returns the user's inbox with the unread count.
func (s *service) List(ctx context.Context, userID string, limit int) (*model.ListResponse, error) {
	s.logger.Debugw("List called", "user_id", userID)

	if limit <= 0 {
		limit = model.DefaultListLimit
	}

	notifications, err := s.repo.ListForUser(ctx, userID, limit)
	if err != nil {
		s.logger.Errorw("List failed", "user_id", userID, "error", err)
		return nil, err
	}

	unread, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		s.logger.Errorw("List unread count failed", "user_id", userID, "error", err)
		return nil, err
	}

	return &model.ListResponse{Notifications: notifications, UnreadCount: unread}, nil
}

// MarkRead flags a notification as read.
func (s *service) MarkRead(ctx context.Context, userID string, id uint) error {
	s.logger.Debugw("MarkRead called", "user_id", userID, "id", id)
	return s.repo.MarkRead(ctx, userID, id)
}

// UnreadCount returns the number of unread notifications for a user.
func (s *service) UnreadCount(ctx context.Context, userID string) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}
