// Package rating records seller ratings and keeps reputation scores current.
package rating

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/saudaghar/marketplace-backend/internal/adapter/events"
	"github.com/saudaghar/marketplace-backend/internal/domain"
)

const maxCommentLen = 1000

type ratingRepo interface {
	Create(ctx context.Context, r *domain.Rating) error
	ListByListing(ctx context.Context, listingID uuid.UUID) ([]domain.Rating, error)
}

type listingReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Listing, error)
}

type reputationStore interface {
	RecomputeReputation(ctx context.Context, sellerID uuid.UUID, at time.Time) (float64, error)
}

type transactionRepo interface {
	Create(ctx context.Context, tx *domain.Transaction) error
}

type notificationRepo interface {
	Create(ctx context.Context, n *domain.Notification) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type eventPublisher interface {
	Publish(ctx context.Context, e events.Event) error
}

// Deps groups the stores the rating service writes to.
type Deps struct {
	Ratings       ratingRepo
	Listings      listingReader
	Profiles      reputationStore
	Transactions  transactionRepo
	Notifications notificationRepo
	Tx            txManager
	Publisher     eventPublisher
}

// Service implements rating submission and lookup.
type Service struct {
	log           *slog.Logger
	ratings       ratingRepo
	listings      listingReader
	profiles      reputationStore
	transactions  transactionRepo
	notifications notificationRepo
	tx            txManager
	publisher     eventPublisher
	now           func() time.Time
}

// NewService creates a new rating service.
func NewService(logger *slog.Logger, deps Deps) *Service {
	return &Service{
		log:           logger.With("service", "rating"),
		ratings:       deps.Ratings,
		listings:      deps.Listings,
		profiles:      deps.Profiles,
		transactions:  deps.Transactions,
		notifications: deps.Notifications,
		tx:            deps.Tx,
		publisher:     deps.Publisher,
		now:           time.Now,
	}
}

// RateInput is a rating of a listing's seller.
type RateInput struct {
	ListingID uuid.UUID
	Score     int
	Comment   *string
}

// Validate validates the rate input.
func (i RateInput) Validate() error {
	var errs []domain.FieldError

	if i.ListingID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "listing_id", Message: "required"})
	}
	if i.Score < domain.MinRatingScore || i.Score > domain.MaxRatingScore {
		errs = append(errs, domain.FieldError{Field: "rating", Message: "must be between 1 and 5"})
	}
	if i.Comment != nil && len(*i.Comment) > maxCommentLen {
		errs = append(errs, domain.FieldError{Field: "comment", Message: "too long"})
	}

	return domain.JoinFieldErrors(errs)
}
