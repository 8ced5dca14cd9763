// Package dashboard assembles a member's own activity summary.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/saudaghar/marketplace-backend/internal/domain"
	"github.com/saudaghar/marketplace-backend/pkg/ctxutil"
)

// RecentLimit is how many of the member's own listings the summary carries.
const RecentLimit = 5

type listingRepo interface {
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
	ListRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Listing, error)
}

type unreadCounter interface {
	CountUnread(ctx context.Context, userID uuid.UUID) (int, error)
}

// Service builds dashboards.
type Service struct {
	log           *slog.Logger
	listings      listingRepo
	messages      unreadCounter
	notifications unreadCounter
}

// NewService creates a dashboard service.
func NewService(logger *slog.Logger, listings listingRepo, messages, notifications unreadCounter) *Service {
	return &Service{
		log:           logger.With("service", "dashboard"),
		listings:      listings,
		messages:      messages,
		notifications: notifications,
	}
}

// Get returns the caller's listing count, unread message and notification
// counts, and newest listings of any status. The four reads run concurrently
// and the first failure cancels the rest.
func (s *Service) Get(ctx context.Context) (domain.Dashboard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Dashboard{}, domain.ErrUnauthorized
	}

	var d domain.Dashboard
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.listings.CountByUser(gctx, userID)
		if err != nil {
			return fmt.Errorf("count listings: %w", err)
		}
		d.ListingCount = n
		return nil
	})

	g.Go(func() error {
		n, err := s.messages.CountUnread(gctx, userID)
		if err != nil {
			return fmt.Errorf("count unread messages: %w", err)
		}
		d.UnreadMessages = n
		return nil
	})

	g.Go(func() error {
		n, err := s.notifications.CountUnread(gctx, userID)
		if err != nil {
			return fmt.Errorf("count unread notifications: %w", err)
		}
		d.UnreadNotifications = n
		return nil
	})

	g.Go(func() error {
		recent, err := s.listings.ListRecentByUser(gctx, userID, RecentLimit)
		if err != nil {
			return fmt.Errorf("recent listings: %w", err)
		}
		d.RecentListings = recent
		return nil
	})

	if err := g.Wait(); err != nil {
		s.log.ErrorContext(ctx, "dashboard failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()))
		return domain.Dashboard{}, fmt.Errorf("dashboard.Get: %w", err)
	}

	if d.RecentListings == nil {
		d.RecentListings = []domain.Listing{}
	}
	return d, nil
}
