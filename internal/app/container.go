package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/saudaghar/marketplace-backend/internal/adapter/events"
	"github.com/saudaghar/marketplace-backend/internal/adapter/postgres"
	listingrepo "github.com/saudaghar/marketplace-backend/internal/adapter/postgres/listing"
	messagerepo "github.com/saudaghar/marketplace-backend/internal/adapter/postgres/message"
	notificationrepo "github.com/saudaghar/marketplace-backend/internal/adapter/postgres/notification"
	profilerepo "github.com/saudaghar/marketplace-backend/internal/adapter/postgres/profile"
	ratingrepo "github.com/saudaghar/marketplace-backend/internal/adapter/postgres/rating"
	tokenrepo "github.com/saudaghar/marketplace-backend/internal/adapter/postgres/token"
	transactionrepo "github.com/saudaghar/marketplace-backend/internal/adapter/postgres/transaction"
	jwtauth "github.com/saudaghar/marketplace-backend/internal/auth"
	"github.com/saudaghar/marketplace-backend/internal/config"
	"github.com/saudaghar/marketplace-backend/internal/service/auth"
	"github.com/saudaghar/marketplace-backend/internal/service/dashboard"
	"github.com/saudaghar/marketplace-backend/internal/service/listing"
	"github.com/saudaghar/marketplace-backend/internal/service/messaging"
	"github.com/saudaghar/marketplace-backend/internal/service/notification"
	"github.com/saudaghar/marketplace-backend/internal/service/profile"
	"github.com/saudaghar/marketplace-backend/internal/service/rating"
	"github.com/saudaghar/marketplace-backend/internal/service/search"
	"github.com/saudaghar/marketplace-backend/internal/service/transaction"
	"github.com/saudaghar/marketplace-backend/internal/transport/dataloader"
	"github.com/saudaghar/marketplace-backend/internal/transport/middleware"
	"github.com/saudaghar/marketplace-backend/internal/transport/rest"
)

// EventPublisher is what the app needs from either publisher implementation.
type EventPublisher interface {
	Publish(ctx context.Context, e events.Event) error
	Ping(ctx context.Context) error
	Close() error
}

// newPublisher connects to RabbitMQ when events are enabled and otherwise
// logs events locally. Both validate payloads against the event contracts.
func newPublisher(logger *slog.Logger, cfg config.EventsConfig) (EventPublisher, error) {
	contracts, err := events.LoadContracts()
	if err != nil {
		return nil, fmt.Errorf("load event contracts: %w", err)
	}

	if !cfg.Enabled {
		return events.NewLogPublisher(logger, contracts), nil
	}

	p, err := events.NewPublisher(logger, cfg, contracts)
	if err != nil {
		return nil, fmt.Errorf("connect event broker: %w", err)
	}
	return p, nil
}

// Container holds the wired HTTP handler and the pieces that need stopping.
type Container struct {
	Router  http.Handler
	Limiter *middleware.RateLimiter
	Auth    *auth.Service
}

// NewContainer wires repositories, services and handlers over pool. The
// caller stops Limiter and closes publisher.
func NewContainer(logger *slog.Logger, cfg *config.Config, pool *pgxpool.Pool, publisher EventPublisher) *Container {
	txm := postgres.NewTxManager(pool)

	// Repositories. Each resolves the context transaction first, so the same
	// instances serve both plain and transactional calls.
	profiles := profilerepo.New(pool)
	tokens := tokenrepo.New(pool)
	listings := listingrepo.New(pool)
	messages := messagerepo.New(pool)
	notifications := notificationrepo.New(pool)
	ratings := ratingrepo.New(pool)
	transactions := transactionrepo.New(pool)

	jwt := jwtauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authSvc := auth.NewService(logger, profiles, tokens, txm, jwt, cfg.Auth)
	profileSvc := profile.NewService(logger, profiles)
	listingSvc := listing.NewService(logger, listings, profiles, publisher, cfg.Listing)
	searchSvc := search.NewComposer(logger, listings, cfg.Search)
	messagingSvc := messaging.NewService(logger, messages, notifications, listings, txm, publisher)
	notificationSvc := notification.NewService(logger, notifications)
	ratingSvc := rating.NewService(logger, rating.Deps{
		Ratings:       ratings,
		Listings:      listings,
		Profiles:      profiles,
		Transactions:  transactions,
		Notifications: notifications,
		Tx:            txm,
		Publisher:     publisher,
	})
	transactionSvc := transaction.NewService(logger, transactions)
	dashboardSvc := dashboard.NewService(logger, listings, messages, notifications)

	handlers := rest.Handlers{
		Health: rest.NewHealthHandler(map[string]rest.Pinger{
			"database": pool,
			"events":   publisher,
		}, Build().String()),
		Auth:      rest.NewAuthHandler(authSvc, logger),
		Listing:   rest.NewListingHandler(listingSvc, searchSvc, logger),
		Profile:   rest.NewProfileHandler(profileSvc, logger),
		Activity:  rest.NewActivityHandler(messagingSvc, notificationSvc, ratingSvc, transactionSvc, logger),
		Dashboard: rest.NewDashboardHandler(dashboardSvc, logger),
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)

	router := rest.NewRouter(handlers, rest.RouterDeps{
		Logger:     logger,
		CORS:       cfg.CORS,
		RateLimit:  cfg.RateLimit,
		Limiter:    limiter,
		Tokens:     authSvc,
		PerRequest: []middleware.Middleware{dataloader.Middleware(profiles)},
	})

	return &Container{Router: router, Limiter: limiter, Auth: authSvc}
}
