package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/saudaghar/marketplace-backend/internal/config"
)

const jobTimeout = time.Minute

type tokenCleaner interface {
	CleanupExpiredTokens(ctx context.Context) (int, error)
}

// Scheduler runs periodic maintenance inside the API process. Each run gets
// its own timeout; a failed run is logged and retried at the next tick.
type Scheduler struct {
	cron *cron.Cron
	log  *slog.Logger
}

// NewScheduler registers the jobs named in cfg. With the scheduler disabled
// it returns a Scheduler with no jobs.
func NewScheduler(logger *slog.Logger, cfg config.SchedulerConfig, tokens tokenCleaner) (*Scheduler, error) {
	s := &Scheduler{
		cron: cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		log:  logger.With("component", "scheduler"),
	}
	if !cfg.Enabled {
		return s, nil
	}

	if _, err := s.cron.AddFunc(cfg.TokenCleanup, s.job("token_cleanup", func(ctx context.Context) error {
		_, err := tokens.CleanupExpiredTokens(ctx)
		return err
	})); err != nil {
		return nil, fmt.Errorf("schedule token cleanup %q: %w", cfg.TokenCleanup, err)
	}
	return s, nil
}

func (s *Scheduler) job(name string, fn func(ctx context.Context) error) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		start := time.Now()
		if err := fn(ctx); err != nil {
			s.log.Error("job failed", slog.String("job", name), slog.String("error", err.Error()))
			return
		}
		s.log.Debug("job done", slog.String("job", name), slog.Duration("duration", time.Since(start)))
	}
}

// Start runs the jobs in the background.
func (s *Scheduler) Start() {
	if len(s.cron.Entries()) > 0 {
		s.log.Info("scheduler started", slog.Int("jobs", len(s.cron.Entries())))
	}
	s.cron.Start()
}

// Stop halts scheduling and waits for running jobs, up to ctx.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		s.log.Warn("scheduler stop timed out")
	}
}
