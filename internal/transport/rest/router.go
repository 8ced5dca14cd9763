package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/saudaghar/marketplace-backend/internal/config"
	"github.com/saudaghar/marketplace-backend/internal/transport/middleware"
)

// Handlers groups every REST handler the router mounts.
type Handlers struct {
	Health    *HealthHandler
	Auth      *AuthHandler
	Listing   *ListingHandler
	Profile   *ProfileHandler
	Activity  *ActivityHandler
	Dashboard *DashboardHandler
}

// RouterDeps carries the cross-cutting pieces of the middleware stack.
type RouterDeps struct {
	Logger     *slog.Logger
	CORS       config.CORSConfig
	RateLimit  config.RateLimitConfig
	Limiter    *middleware.RateLimiter
	Tokens     middleware.TokenValidator
	PerRequest []middleware.Middleware
}

// NewRouter builds the HTTP handler. Middleware order: RequestID, Logger,
// Recovery, CORS, RateLimit, Auth, then per-request middleware such as the
// dataloaders.
func NewRouter(h Handlers, deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Get("/health", h.Health.Health)
	r.Get("/health/live", h.Health.Live)
	r.Get("/health/ready", h.Health.Ready)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequestID)
		r.Use(middleware.Logger(deps.Logger))
		r.Use(middleware.Recovery(deps.Logger))
		r.Use(middleware.CORS(deps.CORS))
		if deps.RateLimit.Enabled && deps.Limiter != nil {
			r.Use(deps.Limiter.Limit(deps.RateLimit.RequestsPerMin))
		}
		r.Use(middleware.Auth(deps.Tokens))
		for _, mw := range deps.PerRequest {
			r.Use(mw)
		}

		r.Route("/api/v1", func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				if deps.RateLimit.Enabled && deps.Limiter != nil {
					r.Use(deps.Limiter.Limit(deps.RateLimit.AuthPerMin))
				}
				r.Post("/register", h.Auth.Register)
				r.Post("/login", h.Auth.Login)
				r.Post("/refresh", h.Auth.Refresh)
				r.With(middleware.RequireUser).Post("/logout", h.Auth.Logout)
			})

			r.Route("/listings", func(r chi.Router) {
				r.Get("/", h.Listing.Search)
				r.Get("/recent", h.Listing.Recent)
				r.Get("/filter", h.Listing.Filter)
				r.Get("/featured", h.Listing.Featured)
				r.Get("/categories", h.Listing.Categories)
				r.Get("/{id}", h.Listing.Get)
				r.Get("/{id}/ratings", h.Activity.Ratings)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireUser)
					r.Post("/", h.Listing.Create)
					r.Patch("/{id}", h.Listing.Update)
					r.Post("/{id}/deactivate", h.Listing.Deactivate)
					r.Post("/{id}/ratings", h.Activity.Rate)
					r.Post("/{id}/messages", h.Activity.SendMessage)
				})
			})

			r.Get("/stats", h.Listing.Stats)
			r.Get("/profiles/{id}", h.Profile.Get)

			r.Route("/me", func(r chi.Router) {
				r.Use(middleware.RequireUser)
				r.Get("/", h.Profile.Me)
				r.Patch("/", h.Profile.UpdateMe)
				r.Post("/password", h.Auth.ChangePassword)
				r.Get("/dashboard", h.Dashboard.Summary)
				r.Get("/listings", h.Listing.Mine)
				r.Get("/messages", h.Activity.Inbox)
				r.Get("/messages/unread-count", h.Activity.MessageUnreadCount)
				r.Post("/messages/{id}/read", h.Activity.MarkMessageRead)
				r.Get("/notifications", h.Activity.Notifications)
				r.Get("/notifications/unread-count", h.Activity.UnreadCount)
				r.Post("/notifications/{id}/read", h.Activity.MarkNotificationRead)
				r.Post("/notifications/read-all", h.Activity.MarkAllNotificationsRead)
				r.Get("/transactions", h.Activity.Transactions)
			})
		})
	})

	return r
}
