package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saudaghar/marketplace-backend/internal/domain"
	"github.com/saudaghar/marketplace-backend/pkg/ctxutil"
)

type fakeListings struct {
	count     int
	recent    []domain.Listing
	countErr  error
	recentErr error

	gotUser  uuid.UUID
	gotLimit int
}

func (f *fakeListings) CountByUser(context.Context, uuid.UUID) (int, error) {
	return f.count, f.countErr
}

func (f *fakeListings) ListRecentByUser(_ context.Context, userID uuid.UUID, limit int) ([]domain.Listing, error) {
	f.gotUser, f.gotLimit = userID, limit
	return f.recent, f.recentErr
}

type fakeCounter struct {
	counts map[uuid.UUID]int
	err    error
}

func (f *fakeCounter) CountUnread(_ context.Context, userID uuid.UUID) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.counts[userID], nil
}

func TestGet(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	recent := []domain.Listing{{ID: uuid.New(), UserID: userID}, {ID: uuid.New(), UserID: userID}}
	listings := &fakeListings{count: 7, recent: recent}
	svc := NewService(slog.Default(), listings,
		&fakeCounter{counts: map[uuid.UUID]int{userID: 2}},
		&fakeCounter{counts: map[uuid.UUID]int{userID: 4}},
	)

	got, err := svc.Get(ctxutil.WithUserID(context.Background(), userID))
	require.NoError(t, err)

	assert.Equal(t, 7, got.ListingCount)
	assert.Equal(t, 2, got.UnreadMessages)
	assert.Equal(t, 4, got.UnreadNotifications)
	assert.Equal(t, recent, got.RecentListings)
	assert.Equal(t, userID, listings.gotUser)
	assert.Equal(t, RecentLimit, listings.gotLimit)
}

func TestGet_EmptyRecentIsNotNil(t *testing.T) {
	t.Parallel()

	svc := NewService(slog.Default(), &fakeListings{}, &fakeCounter{}, &fakeCounter{})

	got, err := svc.Get(ctxutil.WithUserID(context.Background(), uuid.New()))
	require.NoError(t, err)
	assert.NotNil(t, got.RecentListings)
	assert.Empty(t, got.RecentListings)
}

func TestGet_Unauthorized(t *testing.T) {
	t.Parallel()

	svc := NewService(slog.Default(), &fakeListings{}, &fakeCounter{}, &fakeCounter{})

	_, err := svc.Get(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestGet_AnyFailureFails(t *testing.T) {
	t.Parallel()

	boom := errors.New("connection refused")
	tests := []struct {
		name          string
		listings      *fakeListings
		messages      *fakeCounter
		notifications *fakeCounter
	}{
		{"listing count", &fakeListings{countErr: boom}, &fakeCounter{}, &fakeCounter{}},
		{"recent listings", &fakeListings{recentErr: boom}, &fakeCounter{}, &fakeCounter{}},
		{"messages", &fakeListings{}, &fakeCounter{err: boom}, &fakeCounter{}},
		{"notifications", &fakeListings{}, &fakeCounter{}, &fakeCounter{err: boom}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := NewService(slog.Default(), tt.listings, tt.messages, tt.notifications)
			got, err := svc.Get(ctxutil.WithUserID(context.Background(), uuid.New()))
			assert.ErrorIs(t, err, boom)
			assert.Equal(t, domain.Dashboard{}, got)
		})
	}
}
