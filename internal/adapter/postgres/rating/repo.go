// Package rating implements seller rating storage using PostgreSQL.
package rating

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/saudaghar/marketplace-backend/internal/adapter/postgres"
	"github.com/saudaghar/marketplace-backend/internal/domain"
)

const (
	entity    = "rating"
	tableName = "ratings"
)

var columns = []string{"id", "listing_id", "rater_id", "seller_id", "rating", "comment", "created_at"}

// Repo provides rating persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new rating repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a rating. A second rating by the same rater on the same
// listing fails with domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, rt *domain.Rating) error {
	sql, args, err := postgres.Builder.
		Insert(tableName).
		Columns(columns...).
		Values(rt.ID, rt.ListingID, rt.RaterID, rt.SellerID, rt.Score, rt.Comment, rt.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build rating insert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, entity, rt.ID)
	}
	return nil
}

// ListByListing returns the ratings left on a listing, newest first.
func (r *Repo) ListByListing(ctx context.Context, listingID uuid.UUID) ([]domain.Rating, error) {
	sql, args, err := postgres.Builder.
		Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"listing_id": listingID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ratings query: %w", err)
	}

	var rows []ratingRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, entity, listingID)
	}

	out := make([]domain.Rating, len(rows))
	for i, row := range rows {
		out[i] = domain.Rating{
			ID:        row.ID,
			ListingID: row.ListingID,
			RaterID:   row.RaterID,
			SellerID:  row.SellerID,
			Score:     row.Rating,
			Comment:   row.Comment,
			CreatedAt: row.CreatedAt,
		}
	}
	return out, nil
}

type ratingRow struct {
	ID        uuid.UUID `db:"id"`
	ListingID uuid.UUID `db:"listing_id"`
	RaterID   uuid.UUID `db:"rater_id"`
	SellerID  uuid.UUID `db:"seller_id"`
	Rating    int       `db:"rating"`
	Comment   *string   `db:"comment"`
	CreatedAt time.Time `db:"created_at"`
}
