package messaging

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/saudaghar/marketplace-backend/internal/adapter/events"
	"github.com/saudaghar/marketplace-backend/internal/domain"
	"github.com/saudaghar/marketplace-backend/pkg/ctxutil"
)

const newMessageTitle = "New Message"

// Send delivers an enquiry to the listing owner and notifies them. The
// message and the notification are written in one transaction.
func (s *Service) Send(ctx context.Context, input SendInput) (*domain.Message, error) {
	senderID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	l, err := s.listings.GetByID(ctx, input.ListingID)
	if err != nil {
		return nil, fmt.Errorf("messaging.Send get listing: %w", err)
	}
	if !l.IsActive() {
		return nil, fmt.Errorf("messaging.Send: listing %s: %w", l.ID, domain.ErrNotFound)
	}
	if l.IsOwnedBy(senderID) {
		return nil, domain.NewValidationError("listing_id", "cannot message your own listing")
	}

	now := s.now()
	msg := &domain.Message{
		ID:            uuid.New(),
		ListingID:     l.ID,
		SenderID:      senderID,
		ReceiverID:    l.UserID,
		Body:          input.Text,
		ContactMethod: input.ContactMethod,
		CreatedAt:     now,
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.messages.Create(txCtx, msg); err != nil {
			return fmt.Errorf("create message: %w", err)
		}
		related := l.ID
		if err := s.notifications.Create(txCtx, &domain.Notification{
			ID:        uuid.New(),
			UserID:    l.UserID,
			Type:      domain.NotificationTypeNewMessage,
			Title:     newMessageTitle,
			Message:   fmt.Sprintf("You received a message about %q", l.MaterialName),
			RelatedID: &related,
			CreatedAt: now,
		}); err != nil {
			return fmt.Errorf("create notification: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("messaging.Send: %w", err)
	}

	s.log.InfoContext(ctx, "message sent",
		slog.String("user_id", senderID.String()),
		slog.String("listing_id", l.ID.String()),
		slog.String("contact_method", msg.ContactMethod.String()))

	if err := s.publisher.Publish(ctx, events.MessageSent{
		MessageID:     msg.ID,
		ListingID:     msg.ListingID,
		SenderID:      msg.SenderID,
		ReceiverID:    msg.ReceiverID,
		ContactMethod: msg.ContactMethod.String(),
		CreatedAt:     msg.CreatedAt,
	}); err != nil {
		s.log.WarnContext(ctx, "event publish failed",
			slog.String("type", events.TypeMessageSent),
			slog.String("error", err.Error()))
	}

	return msg, nil
}
