// Package dataloader provides per-request loaders that batch the seller
// profile lookups of listing responses into a single SQL call.
package dataloader

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/saudaghar/marketplace-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type profileRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Profile, error)
}

// Loaders holds the per-request loader instances.
type Loaders struct {
	SellerByID *dataloader.Loader[uuid.UUID, *domain.PublicProfile]
}

// NewLoaders creates loaders backed by profiles. Call it once per request:
// loaders cache results for their whole lifetime.
func NewLoaders(profiles profileRepo) *Loaders {
	return &Loaders{
		SellerByID: dataloader.NewBatchedLoader(
			newSellerBatchFn(profiles),
			dataloader.WithWait[uuid.UUID, *domain.PublicProfile](wait),
			dataloader.WithBatchCapacity[uuid.UUID, *domain.PublicProfile](maxBatch),
		),
	}
}

// newSellerBatchFn resolves sellers in key order. A missing profile yields a
// nil seller, not an error, so one deleted account cannot fail a page.
func newSellerBatchFn(repo profileRepo) dataloader.BatchFunc[uuid.UUID, *domain.PublicProfile] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.PublicProfile] {
		profiles, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			results := make([]*dataloader.Result[*domain.PublicProfile], len(keys))
			for i := range results {
				results[i] = &dataloader.Result[*domain.PublicProfile]{Error: err}
			}
			return results
		}

		byID := make(map[uuid.UUID]*domain.PublicProfile, len(profiles))
		for i := range profiles {
			pub := profiles[i].Public()
			byID[pub.ID] = &pub
		}

		results := make([]*dataloader.Result[*domain.PublicProfile], len(keys))
		for i, key := range keys {
			results[i] = &dataloader.Result[*domain.PublicProfile]{Data: byID[key]}
		}
		return results
	}
}

// Sellers loads the sellers of listings, deduplicated and batched. The
// returned map holds only sellers that exist.
func (l *Loaders) Sellers(ctx context.Context, listings []domain.Listing) (map[uuid.UUID]*domain.PublicProfile, error) {
	seen := make(map[uuid.UUID]struct{}, len(listings))
	ids := make([]uuid.UUID, 0, len(listings))
	for _, item := range listings {
		if _, ok := seen[item.UserID]; ok {
			continue
		}
		seen[item.UserID] = struct{}{}
		ids = append(ids, item.UserID)
	}

	out := make(map[uuid.UUID]*domain.PublicProfile, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	sellers, errs := l.SellerByID.LoadMany(ctx, ids)()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	for i, id := range ids {
		if sellers[i] != nil {
			out[id] = sellers[i]
		}
	}
	return out, nil
}

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context, or nil if the middleware
// did not run.
func FromContext(ctx context.Context) *Loaders {
	l, _ := ctx.Value(loadersKey).(*Loaders)
	return l
}

// Middleware attaches fresh loaders to every request.
func Middleware(profiles profileRepo) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithLoaders(r.Context(), NewLoaders(profiles))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
