package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/saudaghar/marketplace-backend/internal/domain"
)

// ErrNoSellers is returned when no seller account exists or could be created.
var ErrNoSellers = errors.New("seeder: no sellers available")

// Result summarises a run.
type Result struct {
	SellersFound    int
	SellersCreated  int
	SellerErrors    int
	ListingsPlanned int
	ListingsCreated int
	BatchErrors     int
	Duration        time.Duration
}

// HasErrors reports whether any seller or batch failed.
func (r Result) HasErrors() bool {
	return r.SellerErrors > 0 || r.BatchErrors > 0
}

// Pipeline reuses existing accounts as sellers, tops them up with demo
// accounts and inserts generated listings in batches.
type Pipeline struct {
	log      *slog.Logger
	profiles ProfileStore
	listings ListingStore
	gen      *Generator
	cfg      Config
	hash     func(password string) (string, error)
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, profiles ProfileStore, listings ListingStore, gen *Generator, cfg Config) *Pipeline {
	return &Pipeline{
		log:      log.With("component", "seeder"),
		profiles: profiles,
		listings: listings,
		gen:      gen,
		cfg:      cfg,
		hash:     hashPassword,
	}
}

// Run executes the pipeline. In dry-run mode existing sellers are read but
// nothing is written.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	start := time.Now()
	var res Result

	sellers, err := p.ensureSellers(ctx, &res)
	if err != nil {
		return res, err
	}

	planned := make([]uuid.UUID, p.cfg.Count)
	for i := range planned {
		planned[i] = sellers[i%len(sellers)]
	}
	res.ListingsPlanned = len(planned)

	batchSize := max(1, p.cfg.BatchSize)
	batches := (len(planned) + batchSize - 1) / batchSize
	for b := 0; b < batches; b++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		lo, hi := b*batchSize, min((b+1)*batchSize, len(planned))
		batch := make([]domain.Listing, 0, hi-lo)
		for _, sellerID := range planned[lo:hi] {
			batch = append(batch, p.gen.Listing(sellerID))
		}

		if p.cfg.DryRun {
			res.ListingsCreated += len(batch)
			continue
		}

		n, err := p.listings.BulkInsert(ctx, batch)
		res.ListingsCreated += n
		if err != nil {
			res.BatchErrors++
			p.log.ErrorContext(ctx, "insert listing batch",
				slog.Int("batch", b+1), slog.Int("of", batches), slog.String("error", err.Error()))
			continue
		}
		p.log.InfoContext(ctx, "listing batch inserted",
			slog.Int("batch", b+1), slog.Int("of", batches), slog.Int("total", res.ListingsCreated))
	}

	res.Duration = time.Since(start)
	p.log.InfoContext(ctx, "seeding finished",
		slog.Int("sellers_found", res.SellersFound),
		slog.Int("sellers_created", res.SellersCreated),
		slog.Int("listings", res.ListingsCreated),
		slog.Bool("dry_run", p.cfg.DryRun),
		slog.Duration("duration", res.Duration),
	)
	return res, nil
}

func (p *Pipeline) ensureSellers(ctx context.Context, res *Result) ([]uuid.UUID, error) {
	want := p.cfg.sellerCount()

	ids, err := p.profiles.ListIDs(ctx, want)
	if err != nil {
		return nil, fmt.Errorf("list existing sellers: %w", err)
	}
	res.SellersFound = len(ids)

	missing := want - len(ids)
	if missing > 0 {
		hash, err := p.hash(p.cfg.Password)
		if err != nil {
			return nil, fmt.Errorf("hash seed password: %w", err)
		}

		for i := 0; i < missing; i++ {
			seller := p.gen.Seller(len(ids) + 1)
			if p.cfg.DryRun {
				ids = append(ids, seller.ID)
				res.SellersCreated++
				continue
			}

			created, err := p.profiles.Create(ctx, &seller, hash)
			if err != nil {
				res.SellerErrors++
				p.log.ErrorContext(ctx, "create seller", slog.String("email", seller.Email), slog.String("error", err.Error()))
				continue
			}
			ids = append(ids, created.ID)
			res.SellersCreated++
		}
	}

	if len(ids) == 0 {
		return nil, ErrNoSellers
	}
	return ids, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
