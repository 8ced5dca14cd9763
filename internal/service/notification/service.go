// Package notification serves a member's in-app notifications.
package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/saudaghar/marketplace-backend/internal/domain"
	"github.com/saudaghar/marketplace-backend/pkg/ctxutil"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

type notificationRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Notification, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error)
}

// Service implements notification reads and read-state changes.
type Service struct {
	log  *slog.Logger
	repo notificationRepo
}

// NewService creates a new notification service.
func NewService(logger *slog.Logger, repo notificationRepo) *Service {
	return &Service{
		log:  logger.With("service", "notification"),
		repo: repo,
	}
}

// List returns the caller's notifications, newest first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]domain.Notification, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if limit <= 0 {
		limit = defaultLimit
	}
	limit = min(limit, maxLimit)
	offset = max(offset, 0)

	items, err := s.repo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("notification.List: %w", err)
	}
	return items, nil
}

// UnreadCount returns how many of the caller's notifications are unread.
func (s *Service) UnreadCount(ctx context.Context) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	n, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("notification.UnreadCount: %w", err)
	}
	return n, nil
}

// MarkRead marks one of the caller's notifications as read.
func (s *Service) MarkRead(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.repo.MarkRead(ctx, id, userID); err != nil {
		return fmt.Errorf("notification.MarkRead: %w", err)
	}
	return nil
}

// MarkAllRead marks every unread notification of the caller as read and
// returns how many changed.
func (s *Service) MarkAllRead(ctx context.Context) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	n, err := s.repo.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("notification.MarkAllRead: %w", err)
	}

	if n > 0 {
		s.log.InfoContext(ctx, "notifications marked read",
			slog.String("user_id", userID.String()),
			slog.Int("count", n))
	}
	return n, nil
}
