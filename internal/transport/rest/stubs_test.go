package rest

import (
	"context"

	"github.com/google/uuid"

	"github.com/saudaghar/marketplace-backend/internal/domain"
	"github.com/saudaghar/marketplace-backend/internal/service/auth"
	"github.com/saudaghar/marketplace-backend/internal/service/listing"
	"github.com/saudaghar/marketplace-backend/internal/service/messaging"
	"github.com/saudaghar/marketplace-backend/internal/service/rating"
	"github.com/saudaghar/marketplace-backend/internal/service/search"
)

// Stubs embed the service interface so that a test only fills in the calls
// it exercises; anything else panics with a nil dereference.

type stubAuth struct {
	authService
	loginFn  func(ctx context.Context, in auth.LoginPasswordInput) (*auth.AuthResult, error)
	logoutFn func(ctx context.Context) error
	changeFn func(ctx context.Context, in auth.ChangePasswordInput) error
}

func (s *stubAuth) LoginWithPassword(ctx context.Context, in auth.LoginPasswordInput) (*auth.AuthResult, error) {
	return s.loginFn(ctx, in)
}

func (s *stubAuth) Logout(ctx context.Context) error { return s.logoutFn(ctx) }

func (s *stubAuth) ChangePassword(ctx context.Context, in auth.ChangePasswordInput) error {
	return s.changeFn(ctx, in)
}

type stubListings struct {
	listingService
	createFn     func(ctx context.Context, in listing.CreateInput) (*domain.Listing, error)
	getFn        func(ctx context.Context, id uuid.UUID) (*domain.Listing, error)
	deactivateFn func(ctx context.Context, id uuid.UUID) error
	filterFn     func(ctx context.Context, in listing.FilterInput) ([]domain.Listing, error)
}

func (s *stubListings) Create(ctx context.Context, in listing.CreateInput) (*domain.Listing, error) {
	return s.createFn(ctx, in)
}

func (s *stubListings) Get(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	return s.getFn(ctx, id)
}

func (s *stubListings) Deactivate(ctx context.Context, id uuid.UUID) error {
	return s.deactivateFn(ctx, id)
}

func (s *stubListings) Filter(ctx context.Context, in listing.FilterInput) ([]domain.Listing, error) {
	return s.filterFn(ctx, in)
}

type stubSearch struct {
	searchFn func(ctx context.Context, location, text string) (search.Result, error)
}

func (s *stubSearch) Search(ctx context.Context, location, text string) (search.Result, error) {
	return s.searchFn(ctx, location, text)
}

func (s *stubSearch) Recent(ctx context.Context) ([]domain.Listing, error) {
	res, err := s.searchFn(ctx, "", "")
	return res.Listings, err
}

type stubProfiles struct {
	profileService
	meFn func(ctx context.Context) (*domain.Profile, error)
}

func (s *stubProfiles) Me(ctx context.Context) (*domain.Profile, error) { return s.meFn(ctx) }

type stubMessaging struct {
	messagingService
	sendFn   func(ctx context.Context, in messaging.SendInput) (*domain.Message, error)
	unreadFn func(ctx context.Context) (int, error)
}

func (s *stubMessaging) UnreadCount(ctx context.Context) (int, error) { return s.unreadFn(ctx) }

func (s *stubMessaging) Send(ctx context.Context, in messaging.SendInput) (*domain.Message, error) {
	return s.sendFn(ctx, in)
}

type stubRatings struct {
	ratingService
	rateFn func(ctx context.Context, in rating.RateInput) (*domain.Rating, error)
}

func (s *stubRatings) Rate(ctx context.Context, in rating.RateInput) (*domain.Rating, error) {
	return s.rateFn(ctx, in)
}

type stubNotifications struct {
	notificationService
	unreadFn func(ctx context.Context) (int, error)
}

func (s *stubNotifications) UnreadCount(ctx context.Context) (int, error) { return s.unreadFn(ctx) }

type stubDashboard struct {
	getFn func(ctx context.Context) (domain.Dashboard, error)
}

func (s *stubDashboard) Get(ctx context.Context) (domain.Dashboard, error) { return s.getFn(ctx) }

type stubTransactions struct {
	transactionService
}

type stubTokens struct {
	tokens map[string]uuid.UUID
}

func (s *stubTokens) ValidateToken(_ context.Context, token string) (uuid.UUID, error) {
	if id, ok := s.tokens[token]; ok {
		return id, nil
	}
	return uuid.Nil, domain.ErrUnauthorized
}

type stubProfileRepo struct {
	profiles []domain.Profile
}

func (s *stubProfileRepo) GetByIDs(_ context.Context, ids []uuid.UUID) ([]domain.Profile, error) {
	var out []domain.Profile
	for _, p := range s.profiles {
		for _, id := range ids {
			if p.ID == id {
				out = append(out, p)
			}
		}
	}
	return out, nil
}
