package messaging

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/saudaghar/marketplace-backend/internal/adapter/events"
	"github.com/saudaghar/marketplace-backend/internal/domain"
)

const (
	maxBodyLen       = 2000
	defaultPageLimit = 50
	maxPageLimit     = 100
)

type messageRepo interface {
	Create(ctx context.Context, m *domain.Message) error
	ListByReceiver(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Message, error)
	MarkRead(ctx context.Context, id, receiverID uuid.UUID) error
	CountUnread(ctx context.Context, receiverID uuid.UUID) (int, error)
}

type notificationRepo interface {
	Create(ctx context.Context, n *domain.Notification) error
}

type listingReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Listing, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type eventPublisher interface {
	Publish(ctx context.Context, e events.Event) error
}

// Service implements buyer to seller messaging.
type Service struct {
	log           *slog.Logger
	messages      messageRepo
	notifications notificationRepo
	listings      listingReader
	tx            txManager
	publisher     eventPublisher
	now           func() time.Time
}

// NewService creates a new messaging service.
func NewService(
	logger *slog.Logger,
	messages messageRepo,
	notifications notificationRepo,
	listings listingReader,
	tx txManager,
	publisher eventPublisher,
) *Service {
	return &Service{
		log:           logger.With("service", "messaging"),
		messages:      messages,
		notifications: notifications,
		listings:      listings,
		tx:            tx,
		publisher:     publisher,
		now:           time.Now,
	}
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
