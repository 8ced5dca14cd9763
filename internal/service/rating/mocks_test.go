package rating

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/saudaghar/marketplace-backend/internal/adapter/events"
	"github.com/saudaghar/marketplace-backend/internal/domain"
)

// memStores backs every store the rating service needs with slices, and
// records the order of writes so tests can check the transaction body.
type memStores struct {
	listing       *domain.Listing
	ratings       []domain.Rating
	transactions  []domain.Transaction
	notifications []domain.Notification
	published     []events.Event
	writes        []string
	txCalls       int

	ratingErr     error
	reputationErr error
	publishErr    error
	reputation    float64
}

func (m *memStores) GetByID(_ context.Context, id uuid.UUID) (*domain.Listing, error) {
	if m.listing == nil || m.listing.ID != id {
		return nil, domain.ErrNotFound
	}
	return m.listing, nil
}

type ratingStore struct{ *memStores }

func (s ratingStore) Create(_ context.Context, r *domain.Rating) error {
	if s.ratingErr != nil {
		return s.ratingErr
	}
	for _, existing := range s.ratings {
		if existing.ListingID == r.ListingID && existing.RaterID == r.RaterID {
			return domain.ErrAlreadyExists
		}
	}
	s.writes = append(s.writes, "rating")
	s.ratings = append(s.ratings, *r)
	return nil
}

func (s ratingStore) ListByListing(_ context.Context, listingID uuid.UUID) ([]domain.Rating, error) {
	out := []domain.Rating{}
	for _, r := range s.ratings {
		if r.ListingID == listingID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memStores) RecomputeReputation(_ context.Context, sellerID uuid.UUID, _ time.Time) (float64, error) {
	if m.reputationErr != nil {
		return 0, m.reputationErr
	}
	m.writes = append(m.writes, "reputation")
	var sum, n int
	for _, r := range m.ratings {
		if r.SellerID == sellerID {
			sum += r.Score
			n++
		}
	}
	if n == 0 {
		return 0, nil
	}
	m.reputation = float64(sum) / float64(n)
	return m.reputation, nil
}

type transactionStore struct{ *memStores }

func (s transactionStore) Create(_ context.Context, tx *domain.Transaction) error {
	s.writes = append(s.writes, "transaction")
	s.transactions = append(s.transactions, *tx)
	return nil
}

type notificationStore struct{ *memStores }

func (s notificationStore) Create(_ context.Context, n *domain.Notification) error {
	s.writes = append(s.writes, "notification")
	s.notifications = append(s.notifications, *n)
	return nil
}

func (m *memStores) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.txCalls++
	return fn(ctx)
}

func (m *memStores) Publish(_ context.Context, e events.Event) error {
	m.published = append(m.published, e)
	return m.publishErr
}
