package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/saudaghar/marketplace-backend/internal/domain"
	"github.com/saudaghar/marketplace-backend/internal/service/messaging"
	"github.com/saudaghar/marketplace-backend/internal/service/rating"
)

type messagingService interface {
	Send(ctx context.Context, input messaging.SendInput) (*domain.Message, error)
	Inbox(ctx context.Context, limit, offset int) ([]domain.Message, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	UnreadCount(ctx context.Context) (int, error)
}

type notificationService interface {
	List(ctx context.Context, limit, offset int) ([]domain.Notification, error)
	UnreadCount(ctx context.Context) (int, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context) (int, error)
}

type ratingService interface {
	Rate(ctx context.Context, input rating.RateInput) (*domain.Rating, error)
	ForListing(ctx context.Context, listingID uuid.UUID) ([]domain.Rating, error)
}

type transactionService interface {
	List(ctx context.Context) ([]domain.Transaction, error)
}

// ActivityHandler serves member-to-member interactions: messages,
// notifications, ratings and the transaction history they produce.
type ActivityHandler struct {
	messages      messagingService
	notifications notificationService
	ratings       ratingService
	transactions  transactionService
	log           *slog.Logger
}

// NewActivityHandler creates an ActivityHandler.
func NewActivityHandler(
	messages messagingService,
	notifications notificationService,
	ratings ratingService,
	transactions transactionService,
	logger *slog.Logger,
) *ActivityHandler {
	return &ActivityHandler{
		messages:      messages,
		notifications: notifications,
		ratings:       ratings,
		transactions:  transactions,
		log:           logger.With("handler", "activity"),
	}
}

type sendMessageRequest struct {
	Message       string               `json:"message"`
	ContactMethod domain.ContactMethod `json:"contact_method"`
}

// SendMessage handles POST /listings/{id}/messages.
func (h *ActivityHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	listingID, err := uuidParam(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	var req sendMessageRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	msg, err := h.messages.Send(r.Context(), messaging.SendInput{
		ListingID:     listingID,
		Text:          req.Message,
		ContactMethod: req.ContactMethod,
	})
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toMessageResponse(*msg))
}

// Inbox handles GET /me/messages?limit=&offset=.
func (h *ActivityHandler) Inbox(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := pageQuery(r)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	msgs, err := h.messages.Inbox(r.Context(), limit, offset)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(msgs, toMessageResponse))
}

// MarkMessageRead handles POST /me/messages/{id}/read.
func (h *ActivityHandler) MarkMessageRead(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	if err := h.messages.MarkRead(r.Context(), id); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Notifications handles GET /me/notifications?limit=&offset=.
func (h *ActivityHandler) Notifications(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := pageQuery(r)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	items, err := h.notifications.List(r.Context(), limit, offset)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(items, toNotificationResponse))
}

// MessageUnreadCount handles GET /me/messages/unread-count.
func (h *ActivityHandler) MessageUnreadCount(w http.ResponseWriter, r *http.Request) {
	n, err := h.messages.UnreadCount(r.Context())
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"count": n})
}

// UnreadCount handles GET /me/notifications/unread-count.
func (h *ActivityHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	n, err := h.notifications.UnreadCount(r.Context())
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"count": n})
}

// MarkNotificationRead handles POST /me/notifications/{id}/read.
func (h *ActivityHandler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	if err := h.notifications.MarkRead(r.Context(), id); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MarkAllNotificationsRead handles POST /me/notifications/read-all.
func (h *ActivityHandler) MarkAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	n, err := h.notifications.MarkAllRead(r.Context())
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"updated": n})
}

type rateRequest struct {
	Rating  int     `json:"rating"`
	Comment *string `json:"comment"`
}

// Rate handles POST /listings/{id}/ratings.
func (h *ActivityHandler) Rate(w http.ResponseWriter, r *http.Request) {
	listingID, err := uuidParam(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	var req rateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rt, err := h.ratings.Rate(r.Context(), rating.RateInput{
		ListingID: listingID,
		Score:     req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toRatingResponse(*rt))
}

// Ratings handles GET /listings/{id}/ratings.
func (h *ActivityHandler) Ratings(w http.ResponseWriter, r *http.Request) {
	listingID, err := uuidParam(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	items, err := h.ratings.ForListing(r.Context(), listingID)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(items, toRatingResponse))
}

// Transactions handles GET /me/transactions.
func (h *ActivityHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	items, err := h.transactions.List(r.Context())
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(items, toTransactionResponse))
}

func pageQuery(r *http.Request) (limit, offset int, err error) {
	if limit, err = intQuery(r, "limit", 0); err != nil {
		return 0, 0, err
	}
	if offset, err = intQuery(r, "offset", 0); err != nil {
		return 0, 0, err
	}
	return limit, offset, nil
}
