package profile

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/saudaghar/marketplace-backend/internal/domain"
)

type profileRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	Update(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
}

// Service implements business profile operations.
type Service struct {
	log      *slog.Logger
	profiles profileRepo
	now      func() time.Time
}

// NewService creates a new profile service.
func NewService(logger *slog.Logger, profiles profileRepo) *Service {
	return &Service{
		log:      logger.With("service", "profile"),
		profiles: profiles,
		now:      time.Now,
	}
}
