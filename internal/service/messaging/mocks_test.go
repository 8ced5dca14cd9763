package messaging

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/saudaghar/marketplace-backend/internal/adapter/events"
	"github.com/saudaghar/marketplace-backend/internal/domain"
)

type mockMessageRepo struct {
	CreateFunc         func(ctx context.Context, m *domain.Message) error
	ListByReceiverFunc func(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Message, error)
	MarkReadFunc       func(ctx context.Context, id, receiverID uuid.UUID) error
	CountUnreadFunc    func(ctx context.Context, receiverID uuid.UUID) (int, error)

	mu      sync.Mutex
	created []*domain.Message
}

func (m *mockMessageRepo) Create(ctx context.Context, msg *domain.Message) error {
	m.mu.Lock()
	m.created = append(m.created, msg)
	m.mu.Unlock()
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, msg)
	}
	return nil
}

func (m *mockMessageRepo) ListByReceiver(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Message, error) {
	if m.ListByReceiverFunc != nil {
		return m.ListByReceiverFunc(ctx, userID, limit, offset)
	}
	return []domain.Message{}, nil
}

func (m *mockMessageRepo) MarkRead(ctx context.Context, id, receiverID uuid.UUID) error {
	if m.MarkReadFunc != nil {
		return m.MarkReadFunc(ctx, id, receiverID)
	}
	return nil
}

func (m *mockMessageRepo) CountUnread(ctx context.Context, receiverID uuid.UUID) (int, error) {
	if m.CountUnreadFunc != nil {
		return m.CountUnreadFunc(ctx, receiverID)
	}
	return 0, nil
}

type mockNotificationRepo struct {
	CreateFunc func(ctx context.Context, n *domain.Notification) error

	mu      sync.Mutex
	created []*domain.Notification
}

func (m *mockNotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	m.mu.Lock()
	m.created = append(m.created, n)
	m.mu.Unlock()
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, n)
	}
	return nil
}

type mockListingReader struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Listing, error)
}

func (m *mockListingReader) GetByID(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

// mockTx runs fn inline. An error from fn is returned unchanged, the same
// way the real manager returns it after rolling back.
type mockTx struct {
	calls int
}

func (m *mockTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type mockPublisher struct {
	PublishFunc func(ctx context.Context, e events.Event) error

	mu        sync.Mutex
	published []events.Event
}

func (m *mockPublisher) Publish(ctx context.Context, e events.Event) error {
	m.mu.Lock()
	m.published = append(m.published, e)
	m.mu.Unlock()
	if m.PublishFunc != nil {
		return m.PublishFunc(ctx, e)
	}
	return nil
}
