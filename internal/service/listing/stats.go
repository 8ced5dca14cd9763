package listing

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/saudaghar/marketplace-backend/internal/domain"
)

// Stats returns the landing page counters. The three reads run concurrently.
func (s *Service) Stats(ctx context.Context) (domain.MarketStats, error) {
	var stats domain.MarketStats

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.listings.CountActive(gctx)
		if err != nil {
			return fmt.Errorf("count active listings: %w", err)
		}
		stats.ActiveListings = n
		return nil
	})

	g.Go(func() error {
		n, err := s.profiles.Count(gctx)
		if err != nil {
			return fmt.Errorf("count members: %w", err)
		}
		stats.Members = n
		return nil
	})

	g.Go(func() error {
		n, err := s.listings.SumActiveViews(gctx)
		if err != nil {
			return fmt.Errorf("sum views: %w", err)
		}
		stats.TotalViews = n
		return nil
	})

	if err := g.Wait(); err != nil {
		return domain.MarketStats{}, fmt.Errorf("listing.Stats: %w", err)
	}
	return stats, nil
}
