package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/saudaghar/marketplace-backend/internal/domain"
)

type dashboardService interface {
	Get(ctx context.Context) (domain.Dashboard, error)
}

// DashboardHandler serves the member dashboard summary.
type DashboardHandler struct {
	svc dashboardService
	log *slog.Logger
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(svc dashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{svc: svc, log: logger.With("handler", "dashboard")}
}

type dashboardResponse struct {
	ListingCount        int               `json:"listing_count"`
	UnreadMessages      int               `json:"unread_messages"`
	UnreadNotifications int               `json:"unread_notifications"`
	RecentListings      []listingResponse `json:"recent_listings"`
}

// Summary handles GET /me/dashboard.
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Get(r.Context())
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	recent := make([]listingResponse, len(d.RecentListings))
	for i, l := range d.RecentListings {
		recent[i] = toListingResponse(l, nil)
	}

	writeJSON(w, http.StatusOK, dashboardResponse{
		ListingCount:        d.ListingCount,
		UnreadMessages:      d.UnreadMessages,
		UnreadNotifications: d.UnreadNotifications,
		RecentListings:      recent,
	})
}
