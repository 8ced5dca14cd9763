// Command seeder fills a development database with demo seller accounts and
// listings spread across Pakistani cities. It is intended to be run by hand,
// not as part of the main server.
//
// Flags:
//
//	--count          number of listings to generate (overrides SEEDER_COUNT)
//	--dry-run        generate data without writing to the database
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/saudaghar/marketplace-backend/internal/adapter/postgres"
	listingrepo "github.com/saudaghar/marketplace-backend/internal/adapter/postgres/listing"
	profilerepo "github.com/saudaghar/marketplace-backend/internal/adapter/postgres/profile"
	"github.com/saudaghar/marketplace-backend/internal/app"
	"github.com/saudaghar/marketplace-backend/internal/app/seeder"
	"github.com/saudaghar/marketplace-backend/internal/config"
)

// Compile-time interface assertions.
var (
	_ seeder.ProfileStore = (*profilerepo.Repo)(nil)
	_ seeder.ListingStore = (*listingrepo.Repo)(nil)
)

func main() {
	countFlag := flag.Int("count", 0, "number of listings to generate")
	dryRunFlag := flag.Bool("dry-run", false, "generate data without writing to DB")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	// Load app config (for DB connection).
	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *countFlag > 0 {
		seederCfg.Count = *countFlag
	}
	if *dryRunFlag {
		seederCfg.DryRun = true
	}

	seed := seederCfg.RandSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	appCfg.Database.ApplicationName = "saudaghar-seeder"
	// Bulk inserts run longer than API queries.
	appCfg.Database.StatementTimeout = 0
	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	pipeline := seeder.NewPipeline(
		logger,
		profilerepo.New(pool),
		listingrepo.New(pool),
		seeder.NewGenerator(seed, time.Now),
		*seederCfg,
	)

	res, err := pipeline.Run(ctx)
	if err != nil {
		logger.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if res.HasErrors() {
		logger.Warn("seeding completed with errors",
			slog.Int("seller_errors", res.SellerErrors),
			slog.Int("batch_errors", res.BatchErrors),
		)
		os.Exit(1)
	}

	logger.Info("seeding completed successfully", slog.Int("listings", res.ListingsCreated))
}
