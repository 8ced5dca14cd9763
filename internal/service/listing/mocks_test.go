package listing

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/saudaghar/marketplace-backend/internal/adapter/events"
	"github.com/saudaghar/marketplace-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Manual mocks (moq-style with func fields)
// ---------------------------------------------------------------------------

type mockListingRepo struct {
	CreateFunc          func(ctx context.Context, l *domain.Listing) (*domain.Listing, error)
	UpdateFunc          func(ctx context.Context, l *domain.Listing) (*domain.Listing, error)
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.Listing, error)
	RecordViewFunc      func(ctx context.Context, id uuid.UUID) (*domain.Listing, error)
	SetStatusFunc       func(ctx context.Context, id uuid.UUID, status domain.ListingStatus, at time.Time) error
	ListByUserFunc      func(ctx context.Context, userID uuid.UUID, status domain.ListingStatus) ([]domain.Listing, error)
	ListMostViewedFunc  func(ctx context.Context, limit int) ([]domain.Listing, error)
	FilterFunc          func(ctx context.Context, f domain.ListingFilter) ([]domain.Listing, error)
	CountByCategoryFunc func(ctx context.Context) ([]domain.CategoryCount, error)
	CountActiveFunc     func(ctx context.Context) (int, error)
	SumActiveViewsFunc  func(ctx context.Context) (int64, error)

	mu         sync.Mutex
	viewCalls  int
	updateArgs []*domain.Listing
}

func (m *mockListingRepo) Create(ctx context.Context, l *domain.Listing) (*domain.Listing, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, l)
	}
	out := *l
	return &out, nil
}

func (m *mockListingRepo) Update(ctx context.Context, l *domain.Listing) (*domain.Listing, error) {
	m.mu.Lock()
	m.updateArgs = append(m.updateArgs, l)
	m.mu.Unlock()
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, l)
	}
	out := *l
	return &out, nil
}

func (m *mockListingRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockListingRepo) RecordView(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	m.mu.Lock()
	m.viewCalls++
	m.mu.Unlock()
	if m.RecordViewFunc != nil {
		return m.RecordViewFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockListingRepo) SetStatus(ctx context.Context, id uuid.UUID, status domain.ListingStatus, at time.Time) error {
	if m.SetStatusFunc != nil {
		return m.SetStatusFunc(ctx, id, status, at)
	}
	return nil
}

func (m *mockListingRepo) ListByUser(ctx context.Context, userID uuid.UUID, status domain.ListingStatus) ([]domain.Listing, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID, status)
	}
	return []domain.Listing{}, nil
}

func (m *mockListingRepo) ListMostViewed(ctx context.Context, limit int) ([]domain.Listing, error) {
	if m.ListMostViewedFunc != nil {
		return m.ListMostViewedFunc(ctx, limit)
	}
	return []domain.Listing{}, nil
}

func (m *mockListingRepo) Filter(ctx context.Context, f domain.ListingFilter) ([]domain.Listing, error) {
	if m.FilterFunc != nil {
		return m.FilterFunc(ctx, f)
	}
	return []domain.Listing{}, nil
}

func (m *mockListingRepo) CountByCategory(ctx context.Context) ([]domain.CategoryCount, error) {
	if m.CountByCategoryFunc != nil {
		return m.CountByCategoryFunc(ctx)
	}
	return nil, nil
}

func (m *mockListingRepo) CountActive(ctx context.Context) (int, error) {
	if m.CountActiveFunc != nil {
		return m.CountActiveFunc(ctx)
	}
	return 0, nil
}

func (m *mockListingRepo) SumActiveViews(ctx context.Context) (int64, error) {
	if m.SumActiveViewsFunc != nil {
		return m.SumActiveViewsFunc(ctx)
	}
	return 0, nil
}

type mockProfileCounter struct {
	CountFunc func(ctx context.Context) (int, error)
}

func (m *mockProfileCounter) Count(ctx context.Context) (int, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
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
