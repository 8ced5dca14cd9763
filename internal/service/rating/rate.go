package rating

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/saudaghar/marketplace-backend/internal/adapter/events"
	"github.com/saudaghar/marketplace-backend/internal/domain"
	"github.com/saudaghar/marketplace-backend/pkg/ctxutil"
)

const newRatingTitle = "New Rating"

// Rate stores the caller's rating of a listing's seller. The rating, the
// seller's recomputed reputation, the completed transaction and the seller
// notification commit together.
func (s *Service) Rate(ctx context.Context, input RateInput) (*domain.Rating, error) {
	raterID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if input.Comment != nil {
		c := strings.TrimSpace(*input.Comment)
		if c == "" {
			input.Comment = nil
		} else {
			input.Comment = &c
		}
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	l, err := s.listings.GetByID(ctx, input.ListingID)
	if err != nil {
		return nil, fmt.Errorf("rating.Rate get listing: %w", err)
	}
	if l.IsOwnedBy(raterID) {
		return nil, domain.NewValidationError("listing_id", "cannot rate your own listing")
	}

	now := s.now()
	r := &domain.Rating{
		ID:        uuid.New(),
		ListingID: l.ID,
		RaterID:   raterID,
		SellerID:  l.UserID,
		Score:     input.Score,
		Comment:   input.Comment,
		CreatedAt: now,
	}

	var reputation float64
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.ratings.Create(txCtx, r); err != nil {
			return fmt.Errorf("create rating: %w", err)
		}

		score, err := s.profiles.RecomputeReputation(txCtx, r.SellerID, now)
		if err != nil {
			return fmt.Errorf("recompute reputation: %w", err)
		}
		reputation = score

		if err := s.transactions.Create(txCtx, &domain.Transaction{
			ID:        uuid.New(),
			ListingID: l.ID,
			BuyerID:   raterID,
			SellerID:  l.UserID,
			Status:    domain.TransactionStatusCompleted,
			Notes:     r.Comment,
			CreatedAt: now,
		}); err != nil {
			return fmt.Errorf("create transaction: %w", err)
		}

		related := l.ID
		if err := s.notifications.Create(txCtx, &domain.Notification{
			ID:        uuid.New(),
			UserID:    l.UserID,
			Type:      domain.NotificationTypeNewRating,
			Title:     newRatingTitle,
			Message:   fmt.Sprintf("You received a %d-star rating for %q", r.Score, l.MaterialName),
			RelatedID: &related,
			CreatedAt: now,
		}); err != nil {
			return fmt.Errorf("create notification: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("rating.Rate: %w", err)
	}

	s.log.InfoContext(ctx, "listing rated",
		slog.String("user_id", raterID.String()),
		slog.String("listing_id", l.ID.String()),
		slog.Int("rating", r.Score),
		slog.Float64("reputation", reputation))

	if err := s.publisher.Publish(ctx, events.RatingSubmitted{
		RatingID:        r.ID,
		ListingID:       r.ListingID,
		RaterID:         r.RaterID,
		SellerID:        r.SellerID,
		Rating:          r.Score,
		ReputationScore: reputation,
		CreatedAt:       r.CreatedAt,
	}); err != nil {
		s.log.WarnContext(ctx, "event publish failed",
			slog.String("type", events.TypeRatingSubmitted),
			slog.String("error", err.Error()))
	}

	return r, nil
}

// ForListing returns the ratings left on a listing, newest first.
func (s *Service) ForListing(ctx context.Context, listingID uuid.UUID) ([]domain.Rating, error) {
	ratings, err := s.ratings.ListByListing(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("rating.ForListing: %w", err)
	}
	return ratings, nil
}
