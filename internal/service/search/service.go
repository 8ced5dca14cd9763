package search

import (
	"context"
	"log/slog"
	"strings"

	"github.com/saudaghar/marketplace-backend/internal/config"
	"github.com/saudaghar/marketplace-backend/internal/domain"
)

// listingStore is the remote half of a search: it applies the active filter,
// at most one predicate family per term, newest-first ordering and the cap.
type listingStore interface {
	Find(ctx context.Context, q domain.ListingQuery) ([]domain.Listing, error)
}

// Strategy names which of the four composed queries served a search.
type Strategy string

const (
	StrategyRecent   Strategy = "recent"
	StrategyLocation Strategy = "location"
	StrategyText     Strategy = "text"
	StrategyCombined Strategy = "combined"
)

func (s Strategy) String() string { return string(s) }

// SelectStrategy picks the strategy for already trimmed terms.
func SelectStrategy(location, text string) Strategy {
	switch {
	case location != "" && text != "":
		return StrategyCombined
	case location != "":
		return StrategyLocation
	case text != "":
		return StrategyText
	default:
		return StrategyRecent
	}
}

// Result is a composed search outcome. Listings is never nil.
type Result struct {
	Listings []domain.Listing
	Strategy Strategy
}

// Composer turns a location term and a text term into a store query.
type Composer struct {
	log      *slog.Logger
	store    listingStore
	pipeline *Pipeline
	cfg      config.SearchConfig
}

// NewComposer creates a composer over the given store. The store's lifecycle
// stays with the caller.
func NewComposer(logger *slog.Logger, store listingStore, cfg config.SearchConfig) *Composer {
	return &Composer{
		log:      logger.With("service", "search"),
		store:    store,
		pipeline: NewPipeline(store, cfg.CandidateLimit, cfg.ResultLimit),
		cfg:      cfg,
	}
}

// Search runs the strategy selected by the trimmed terms.
func (c *Composer) Search(ctx context.Context, location, text string) (Result, error) {
	location = strings.TrimSpace(location)
	text = strings.TrimSpace(text)
	strategy := SelectStrategy(location, text)

	var (
		listings []domain.Listing
		err      error
	)

	switch strategy {
	case StrategyCombined:
		listings, err = c.pipeline.Run(ctx, location, text)
	case StrategyLocation:
		listings, err = c.store.Find(ctx, domain.ListingQuery{LocationTerm: location, Limit: c.cfg.ResultLimit})
	case StrategyText:
		listings, err = c.store.Find(ctx, domain.ListingQuery{TextTerm: text, Limit: c.cfg.ResultLimit})
	default:
		listings, err = c.store.Find(ctx, domain.ListingQuery{Limit: c.cfg.RecentLimit})
	}

	if err != nil {
		c.log.ErrorContext(ctx, "listing search failed",
			slog.String("strategy", strategy.String()),
			slog.String("error", err.Error()),
		)
		return Result{Listings: []domain.Listing{}, Strategy: strategy}, &FetchError{Strategy: strategy, Err: err}
	}

	if listings == nil {
		listings = []domain.Listing{}
	}

	c.log.DebugContext(ctx, "listing search",
		slog.String("strategy", strategy.String()),
		slog.Int("count", len(listings)),
	)

	return Result{Listings: listings, Strategy: strategy}, nil
}

// Recent returns the newest active listings for the home page.
func (c *Composer) Recent(ctx context.Context) ([]domain.Listing, error) {
	res, err := c.Search(ctx, "", "")
	if err != nil {
		return res.Listings, err
	}
	return res.Listings, nil
}
