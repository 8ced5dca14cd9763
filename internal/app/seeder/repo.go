// Package seeder fills a development database with demo sellers and listings
// spread across Pakistani cities.
package seeder

import (
	"context"

	"github.com/google/uuid"

	"github.com/saudaghar/marketplace-backend/internal/domain"
)

// ProfileStore is the profile storage used by the pipeline.
// Implemented by the postgres profile.Repo.
type ProfileStore interface {
	ListIDs(ctx context.Context, limit int) ([]uuid.UUID, error)
	Create(ctx context.Context, p *domain.Profile, passwordHash string) (*domain.Profile, error)
}

// ListingStore is the listing storage used by the pipeline.
// Implemented by the postgres listing.Repo.
type ListingStore interface {
	BulkInsert(ctx context.Context, listings []domain.Listing) (int, error)
}
