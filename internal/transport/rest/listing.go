package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/saudaghar/marketplace-backend/internal/domain"
	"github.com/saudaghar/marketplace-backend/internal/service/listing"
	"github.com/saudaghar/marketplace-backend/internal/service/search"
)

type listingService interface {
	Create(ctx context.Context, input listing.CreateInput) (*domain.Listing, error)
	Update(ctx context.Context, id uuid.UUID, input listing.UpdateInput) (*domain.Listing, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Listing, error)
	ListMine(ctx context.Context) ([]domain.Listing, error)
	Featured(ctx context.Context) ([]domain.Listing, error)
	CategoryCounts(ctx context.Context) ([]domain.CategoryCount, error)
	Filter(ctx context.Context, input listing.FilterInput) ([]domain.Listing, error)
	Stats(ctx context.Context) (domain.MarketStats, error)
}

type searchService interface {
	Search(ctx context.Context, location, text string) (search.Result, error)
	Recent(ctx context.Context) ([]domain.Listing, error)
}

// ListingHandler serves listing reads, writes and the search endpoints.
type ListingHandler struct {
	listings listingService
	search   searchService
	log      *slog.Logger
}

// NewListingHandler creates a ListingHandler.
func NewListingHandler(listings listingService, searcher searchService, logger *slog.Logger) *ListingHandler {
	return &ListingHandler{listings: listings, search: searcher, log: logger.With("handler", "listing")}
}

type searchResponse struct {
	Listings []listingResponse `json:"listings"`
	Count    int               `json:"count"`
	Strategy string            `json:"strategy"`
	Seq      *uint64           `json:"seq,omitempty"`
}

type listingsResponse struct {
	Listings []listingResponse `json:"listings"`
	Count    int               `json:"count"`
}

// Search handles GET /listings?location=&q=&seq=. seq is an opaque client
// sequence number echoed back so the caller can drop stale responses.
func (h *ListingHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var seq *uint64
	if raw := q.Get("seq"); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			writeServiceError(h.log, w, r, domain.NewValidationError("seq", "must be a non-negative integer"))
			return
		}
		seq = &n
	}

	res, err := h.search.Search(r.Context(), q.Get("location"), q.Get("q"))
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Listings: listingsWithSellers(r.Context(), h.log, res.Listings),
		Count:    len(res.Listings),
		Strategy: res.Strategy.String(),
		Seq:      seq,
	})
}

// Recent handles GET /listings/recent.
func (h *ListingHandler) Recent(w http.ResponseWriter, r *http.Request) {
	items, err := h.search.Recent(r.Context())
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	h.writeListings(w, r, items)
}

// Filter handles GET /listings/filter.
func (h *ListingHandler) Filter(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	minPrice, err := floatQuery(r, "min_price")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	maxPrice, err := floatQuery(r, "max_price")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	limit, err := intQuery(r, "limit", 0)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	items, err := h.listings.Filter(r.Context(), listing.FilterInput{
		City:        q.Get("city"),
		Location:    q.Get("location"),
		Category:    q.Get("category"),
		Condition:   q.Get("condition"),
		ListingType: q.Get("type"),
		MinPrice:    minPrice,
		MaxPrice:    maxPrice,
		Query:       q.Get("q"),
		Limit:       limit,
	})
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	h.writeListings(w, r, items)
}

// Featured handles GET /listings/featured.
func (h *ListingHandler) Featured(w http.ResponseWriter, r *http.Request) {
	items, err := h.listings.Featured(r.Context())
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	h.writeListings(w, r, items)
}

type categoryCountResponse struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// Categories handles GET /listings/categories.
func (h *ListingHandler) Categories(w http.ResponseWriter, r *http.Request) {
	counts, err := h.listings.CategoryCounts(r.Context())
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(counts, func(c domain.CategoryCount) categoryCountResponse {
		return categoryCountResponse{Category: string(c.Category), Count: c.Count}
	}))
}

// Get handles GET /listings/{id}.
func (h *ListingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	l, err := h.listings.Get(r.Context(), id)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listingsWithSellers(r.Context(), h.log, []domain.Listing{*l})[0])
}

// Mine handles GET /me/listings.
func (h *ListingHandler) Mine(w http.ResponseWriter, r *http.Request) {
	items, err := h.listings.ListMine(r.Context())
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	h.writeListings(w, r, items)
}

type listingRequest struct {
	MaterialName       *string                    `json:"material_name"`
	Category           *domain.Category           `json:"category"`
	Condition          *domain.Condition          `json:"condition"`
	Quantity           *string                    `json:"quantity"`
	Price              *float64                   `json:"price"`
	ClearPrice         bool                       `json:"clear_price"`
	IsExchangeOnly     *bool                      `json:"is_exchange_only"`
	Location           *string                    `json:"location"`
	City               *string                    `json:"city"`
	Description        *string                    `json:"description"`
	Images             []string                   `json:"images"`
	ContactPreferences *domain.ContactPreferences `json:"contact_preferences"`
	ListingType        *domain.ListingType        `json:"listing_type"`
}

func (req listingRequest) toCreate() listing.CreateInput {
	return listing.CreateInput{
		MaterialName:       deref(req.MaterialName),
		Category:           deref(req.Category),
		Condition:          deref(req.Condition),
		Quantity:           deref(req.Quantity),
		Price:              req.Price,
		IsExchangeOnly:     deref(req.IsExchangeOnly),
		Location:           deref(req.Location),
		City:               deref(req.City),
		Description:        deref(req.Description),
		Images:             req.Images,
		ContactPreferences: req.ContactPreferences,
		ListingType:        deref(req.ListingType),
	}
}

func (req listingRequest) toUpdate() listing.UpdateInput {
	return listing.UpdateInput{
		MaterialName:       req.MaterialName,
		Category:           req.Category,
		Condition:          req.Condition,
		Quantity:           req.Quantity,
		Price:              req.Price,
		ClearPrice:         req.ClearPrice,
		IsExchangeOnly:     req.IsExchangeOnly,
		Location:           req.Location,
		City:               req.City,
		Description:        req.Description,
		Images:             req.Images,
		ContactPreferences: req.ContactPreferences,
		ListingType:        req.ListingType,
	}
}

// Create handles POST /listings.
func (h *ListingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req listingRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	l, err := h.listings.Create(r.Context(), req.toCreate())
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toListingResponse(*l, nil))
}

// Update handles PATCH /listings/{id}.
func (h *ListingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	var req listingRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	l, err := h.listings.Update(r.Context(), id, req.toUpdate())
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toListingResponse(*l, nil))
}

// Deactivate handles POST /listings/{id}/deactivate.
func (h *ListingHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	if err := h.listings.Deactivate(r.Context(), id); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type statsResponse struct {
	ActiveListings int   `json:"active_listings"`
	Members        int   `json:"members"`
	TotalViews     int64 `json:"total_views"`
}

// Stats handles GET /stats.
func (h *ListingHandler) Stats(w http.ResponseWriter, r *http.Request) {
	st, err := h.listings.Stats(r.Context())
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, statsResponse{
		ActiveListings: st.ActiveListings,
		Members:        st.Members,
		TotalViews:     st.TotalViews,
	})
}

func (h *ListingHandler) writeListings(w http.ResponseWriter, r *http.Request, items []domain.Listing) {
	writeJSON(w, http.StatusOK, listingsResponse{
		Listings: listingsWithSellers(r.Context(), h.log, items),
		Count:    len(items),
	})
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
