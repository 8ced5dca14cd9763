package messaging

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/saudaghar/marketplace-backend/internal/domain"
	"github.com/saudaghar/marketplace-backend/pkg/ctxutil"
)

// Inbox returns the messages the caller received, newest first.
func (s *Service) Inbox(ctx context.Context, limit, offset int) ([]domain.Message, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	limit, offset = clampPage(limit, offset)
	msgs, err := s.messages.ListByReceiver(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("messaging.Inbox: %w", err)
	}
	return msgs, nil
}

// MarkRead marks a received message as read. Messages addressed to someone
// else are reported as not found.
func (s *Service) MarkRead(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.messages.MarkRead(ctx, id, userID); err != nil {
		return fmt.Errorf("messaging.MarkRead: %w", err)
	}
	return nil
}

// UnreadCount returns how many received messages the caller has not read.
func (s *Service) UnreadCount(ctx context.Context) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	n, err := s.messages.CountUnread(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("messaging.UnreadCount: %w", err)
	}
	return n, nil
}
