package search

import (
	"context"

	"github.com/saudaghar/marketplace-backend/internal/domain"
)

// Pipeline is a two-phase search for stores that accept only one predicate
// family per query: a coarse remote fetch by location, then Refine by text.
type Pipeline struct {
	store          listingStore
	candidateLimit int
	resultLimit    int
}

// NewPipeline creates a pipeline fetching at most candidateLimit listings
// and returning at most resultLimit.
func NewPipeline(store listingStore, candidateLimit, resultLimit int) *Pipeline {
	return &Pipeline{store: store, candidateLimit: candidateLimit, resultLimit: resultLimit}
}

// Run fetches the location window once and refines it. A window with fewer
// matches than resultLimit is returned as is.
func (p *Pipeline) Run(ctx context.Context, location, text string) ([]domain.Listing, error) {
	candidates, err := p.store.Find(ctx, domain.ListingQuery{
		LocationTerm: location,
		Limit:        p.candidateLimit,
	})
	if err != nil {
		return nil, err
	}
	return Refine(candidates, text, p.resultLimit), nil
}
