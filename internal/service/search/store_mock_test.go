package search

import (
	"context"
	"sync"

	"github.com/saudaghar/marketplace-backend/internal/domain"
)

var _ listingStore = &listingStoreMock{}

type listingStoreMock struct {
	FindFunc func(ctx context.Context, q domain.ListingQuery) ([]domain.Listing, error)

	calls struct {
		Find []struct {
			Ctx context.Context
			Q   domain.ListingQuery
		}
	}
	lockFind sync.RWMutex
}

func (mock *listingStoreMock) Find(ctx context.Context, q domain.ListingQuery) ([]domain.Listing, error) {
	if mock.FindFunc == nil {
		panic("listingStoreMock.FindFunc: method is nil but listingStore.Find was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Q   domain.ListingQuery
	}{Ctx: ctx, Q: q}
	mock.lockFind.Lock()
	mock.calls.Find = append(mock.calls.Find, callInfo)
	mock.lockFind.Unlock()
	return mock.FindFunc(ctx, q)
}

func (mock *listingStoreMock) FindCalls() []struct {
	Ctx context.Context
	Q   domain.ListingQuery
} {
	mock.lockFind.RLock()
	calls := mock.calls.Find
	mock.lockFind.RUnlock()
	return calls
}
