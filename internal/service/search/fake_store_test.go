package search

import (
	"context"
	"slices"
	"strings"

	"github.com/saudaghar/marketplace-backend/internal/domain"
)

// memoryStore mimics the Postgres store semantics over a fixed slice.
type memoryStore struct {
	listings []domain.Listing
}

func (m *memoryStore) Find(_ context.Context, q domain.ListingQuery) ([]domain.Listing, error) {
	out := []domain.Listing{}
	for _, l := range m.listings {
		if !l.IsActive() {
			continue
		}
		if q.LocationTerm != "" && !matchesLocation(l, q.LocationTerm) {
			continue
		}
		if q.TextTerm != "" && !matchesText(l, strings.ToLower(q.TextTerm)) {
			continue
		}
		out = append(out, l)
	}
	slices.SortStableFunc(out, func(a, b domain.Listing) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func matchesLocation(l domain.Listing, term string) bool {
	return strings.EqualFold(l.City, term) ||
		strings.Contains(strings.ToLower(l.Location), strings.ToLower(term))
}
