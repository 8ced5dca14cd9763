package listing

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/saudaghar/marketplace-backend/internal/domain"
	"github.com/saudaghar/marketplace-backend/pkg/ctxutil"
)

// Get returns a listing and counts the view. Inactive listings are visible
// to their owner only, and owners do not add views.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	l, err := s.listings.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("listing.Get: %w", err)
	}

	userID, _ := ctxutil.UserIDFromCtx(ctx)
	if l.IsOwnedBy(userID) {
		return l, nil
	}
	if !l.IsActive() {
		return nil, fmt.Errorf("listing.Get: listing %s: %w", id, domain.ErrNotFound)
	}

	viewed, err := s.listings.RecordView(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("listing.Get record view: %w", err)
	}
	return viewed, nil
}

// ListMine returns the caller's active listings, newest first.
func (s *Service) ListMine(ctx context.Context) ([]domain.Listing, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	listings, err := s.listings.ListByUser(ctx, userID, domain.ListingStatusActive)
	if err != nil {
		return nil, fmt.Errorf("listing.ListMine: %w", err)
	}
	return listings, nil
}

// Featured returns the most viewed active listings.
func (s *Service) Featured(ctx context.Context) ([]domain.Listing, error) {
	listings, err := s.listings.ListMostViewed(ctx, s.cfg.FeaturedLimit)
	if err != nil {
		return nil, fmt.Errorf("listing.Featured: %w", err)
	}
	return listings, nil
}

// CategoryCounts returns the active listing count of every category, in
// catalogue order, including empty ones.
func (s *Service) CategoryCounts(ctx context.Context) ([]domain.CategoryCount, error) {
	counts, err := s.listings.CountByCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing.CategoryCounts: %w", err)
	}

	byCategory := make(map[domain.Category]int, len(counts))
	for _, c := range counts {
		byCategory[c.Category] = c.Count
	}

	out := make([]domain.CategoryCount, len(domain.Categories))
	for i, c := range domain.Categories {
		out[i] = domain.CategoryCount{Category: c, Count: byCategory[c]}
	}
	return out, nil
}

// Filter runs the advanced search page query.
func (s *Service) Filter(ctx context.Context, input FilterInput) ([]domain.Listing, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	listings, err := s.listings.Filter(ctx, input.toDomain())
	if err != nil {
		return nil, fmt.Errorf("listing.Filter: %w", err)
	}
	return listings, nil
}
