package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/fluent/fluent-logger-golang/fluent"

	"github.com/saudaghar/marketplace-backend/internal/adapter/postgres"
	"github.com/saudaghar/marketplace-backend/internal/config"
	"github.com/saudaghar/marketplace-backend/migrations"
)

// Run is the application entry point. It loads configuration, connects the
// database and the event broker, serves the REST API and shuts down
// gracefully on SIGINT or SIGTERM.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var sinks []slog.Handler
	if cfg.Fluent.Enabled {
		client, err := NewFluentClient(cfg.Fluent)
		if err != nil {
			return err
		}
		defer closeFluent(client)
		sinks = append(sinks, NewFluentHandler(client, cfg.Fluent.Tag, cfg.Log.Level))
	}

	logger := NewLogger(cfg.Log, sinks...)

	logger.Info("starting application",
		slog.Any("build", Build()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("fluent", cfg.Fluent.Enabled),
		slog.Bool("events", cfg.Events.Enabled),
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, migrations.FS, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	publisher, err := newPublisher(logger, cfg.Events)
	if err != nil {
		return err
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Warn("close event publisher", slog.String("error", err.Error()))
		}
	}()

	c := NewContainer(logger, cfg, pool, publisher)
	defer c.Limiter.Stop()

	sched, err := NewScheduler(logger, cfg.Scheduler, c.Auth)
	if err != nil {
		return err
	}
	sched.Start()
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		sched.Stop(stopCtx)
	}()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      c.Router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	return serve(ctx, logger, srv, cfg.Server)
}

// serve runs srv until ctx is cancelled or the listener fails, then drains
// in-flight requests within the shutdown timeout.
func serve(ctx context.Context, logger *slog.Logger, srv *http.Server, cfg config.ServerConfig) error {
	serverErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info("shutting down", slog.Duration("timeout", cfg.ShutdownTimeout))
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

func closeFluent(client *fluent.Fluent) {
	// The logger may already be gone; nothing useful to do with the error.
	_ = client.Close()
}
