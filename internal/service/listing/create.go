package listing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/saudaghar/marketplace-backend/internal/adapter/events"
	"github.com/saudaghar/marketplace-backend/internal/domain"
	"github.com/saudaghar/marketplace-backend/pkg/ctxutil"
)

// Create posts a new active listing for the authenticated member.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Listing, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.normalize()
	if err := input.Validate(s.cfg.MaxImages); err != nil {
		return nil, err
	}

	prefs := domain.DefaultContactPreferences()
	if input.ContactPreferences != nil {
		prefs = *input.ContactPreferences
	}

	now := s.now()
	created, err := s.listings.Create(ctx, &domain.Listing{
		ID:                 uuid.New(),
		UserID:             userID,
		MaterialName:       input.MaterialName,
		Category:           input.Category,
		Condition:          input.Condition,
		Quantity:           input.Quantity,
		Price:              input.Price,
		IsExchangeOnly:     input.IsExchangeOnly,
		Location:           input.Location,
		City:               input.City,
		Description:        input.Description,
		Images:             input.Images,
		ContactPreferences: prefs,
		Status:             domain.ListingStatusActive,
		ListingType:        input.ListingType,
		CreatedAt:          now,
		UpdatedAt:          now,
	})
	if err != nil {
		return nil, fmt.Errorf("listing.Create: %w", err)
	}

	s.log.InfoContext(ctx, "listing created",
		slog.String("user_id", userID.String()),
		slog.String("listing_id", created.ID.String()),
		slog.String("city", created.City))

	s.publish(ctx, events.ListingCreated{
		ListingID:    created.ID,
		UserID:       created.UserID,
		MaterialName: created.MaterialName,
		Category:     created.Category.String(),
		City:         created.City,
		ListingType:  created.ListingType.String(),
		Price:        created.Price,
		CreatedAt:    created.CreatedAt,
	})

	return created, nil
}

// publish is best effort: the write already committed.
func (s *Service) publish(ctx context.Context, e events.Event) {
	if err := s.publisher.Publish(ctx, e); err != nil {
		s.log.WarnContext(ctx, "event publish failed",
			slog.String("type", e.EventType()),
			slog.String("error", err.Error()))
	}
}
