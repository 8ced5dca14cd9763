// Command cleanup-tokens deletes expired and revoked refresh tokens.
// It is meant to run from cron.
//
// Usage:
//
//	cleanup-tokens
//
// Only the database and log settings are read; DATABASE_DSN is required.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/saudaghar/marketplace-backend/internal/adapter/postgres"
	tokenrepo "github.com/saudaghar/marketplace-backend/internal/adapter/postgres/token"
	"github.com/saudaghar/marketplace-backend/internal/app"
	"github.com/saudaghar/marketplace-backend/internal/config"
)

func main() {
	var cfg struct {
		Database config.DatabaseConfig
		Log      config.LogConfig
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg.Database.ApplicationName = "saudaghar-cleanup-tokens"
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	n, err := tokenrepo.New(pool).DeleteExpired(ctx)
	if err != nil {
		logger.Error("cleanup tokens", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("refresh tokens cleaned up", slog.Int("deleted", n))
}
