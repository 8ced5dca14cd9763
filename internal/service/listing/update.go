package listing

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/saudaghar/marketplace-backend/internal/domain"
	"github.com/saudaghar/marketplace-backend/pkg/ctxutil"
)

// Update applies a partial update. Only the owner may edit a listing.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*domain.Listing, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg.MaxImages); err != nil {
		return nil, err
	}

	l, err := s.ownedListing(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("listing.Update: %w", err)
	}

	if input.MaterialName != nil {
		l.MaterialName = domain.CollapseSpaces(*input.MaterialName)
	}
	if input.Category != nil {
		l.Category = *input.Category
	}
	if input.Condition != nil {
		l.Condition = *input.Condition
	}
	if input.Quantity != nil {
		l.Quantity = strings.TrimSpace(*input.Quantity)
	}
	if input.ClearPrice {
		l.Price = nil
	} else if input.Price != nil {
		l.Price = input.Price
	}
	if input.IsExchangeOnly != nil {
		l.IsExchangeOnly = *input.IsExchangeOnly
	}
	if input.Location != nil {
		l.Location = domain.CollapseSpaces(*input.Location)
	}
	if input.City != nil {
		l.City = domain.NormalizeCity(*input.City)
	}
	if input.Description != nil {
		l.Description = strings.TrimSpace(*input.Description)
	}
	if input.Images != nil {
		l.Images = input.Images
	}
	if input.ContactPreferences != nil {
		l.ContactPreferences = *input.ContactPreferences
	}
	if input.ListingType != nil {
		l.ListingType = *input.ListingType
	}
	l.UpdatedAt = s.now()

	updated, err := s.listings.Update(ctx, l)
	if err != nil {
		return nil, fmt.Errorf("listing.Update: %w", err)
	}

	s.log.InfoContext(ctx, "listing updated",
		slog.String("user_id", userID.String()),
		slog.String("listing_id", id.String()))

	return updated, nil
}

// Deactivate hides a listing from search. Only the owner may do it.
func (s *Service) Deactivate(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if _, err := s.ownedListing(ctx, id, userID); err != nil {
		return fmt.Errorf("listing.Deactivate: %w", err)
	}

	if err := s.listings.SetStatus(ctx, id, domain.ListingStatusInactive, s.now()); err != nil {
		return fmt.Errorf("listing.Deactivate: %w", err)
	}

	s.log.InfoContext(ctx, "listing deactivated",
		slog.String("user_id", userID.String()),
		slog.String("listing_id", id.String()))
	return nil
}

func (s *Service) ownedListing(ctx context.Context, id, userID uuid.UUID) (*domain.Listing, error) {
	l, err := s.listings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !l.IsOwnedBy(userID) {
		return nil, domain.ErrForbidden
	}
	return l, nil
}
