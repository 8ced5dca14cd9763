package listing

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/saudaghar/marketplace-backend/internal/adapter/events"
	"github.com/saudaghar/marketplace-backend/internal/config"
	"github.com/saudaghar/marketplace-backend/internal/domain"
)

type listingRepo interface {
	Create(ctx context.Context, l *domain.Listing) (*domain.Listing, error)
	Update(ctx context.Context, l *domain.Listing) (*domain.Listing, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Listing, error)
	RecordView(ctx context.Context, id uuid.UUID) (*domain.Listing, error)
	SetStatus(ctx context.Context, id uuid.UUID, status domain.ListingStatus, at time.Time) error
	ListByUser(ctx context.Context, userID uuid.UUID, status domain.ListingStatus) ([]domain.Listing, error)
	ListMostViewed(ctx context.Context, limit int) ([]domain.Listing, error)
	Filter(ctx context.Context, f domain.ListingFilter) ([]domain.Listing, error)
	CountByCategory(ctx context.Context) ([]domain.CategoryCount, error)
	CountActive(ctx context.Context) (int, error)
	SumActiveViews(ctx context.Context) (int64, error)
}

type profileCounter interface {
	Count(ctx context.Context) (int, error)
}

type eventPublisher interface {
	Publish(ctx context.Context, e events.Event) error
}

// Service implements listing operations other than free-text search.
type Service struct {
	log       *slog.Logger
	listings  listingRepo
	profiles  profileCounter
	publisher eventPublisher
	cfg       config.ListingConfig
	now       func() time.Time
}

// NewService creates a new listing service.
func NewService(
	logger *slog.Logger,
	listings listingRepo,
	profiles profileCounter,
	publisher eventPublisher,
	cfg config.ListingConfig,
) *Service {
	return &Service{
		log:       logger.With("service", "listing"),
		listings:  listings,
		profiles:  profiles,
		publisher: publisher,
		cfg:       cfg,
		now:       time.Now,
	}
}
