package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/saudaghar/marketplace-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedProfile creates a business profile with a placeholder password hash.
func SeedProfile(t *testing.T, pool *pgxpool.Pool) domain.Profile {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	p := domain.Profile{
		ID:              uuid.New(),
		Email:           "trader-" + suffix + "@example.com",
		FullName:        "Trader " + suffix,
		CNICNumber:      "42101-1234567-1",
		BusinessName:    "Traders " + suffix,
		BusinessType:    "Manufacturer",
		BusinessAddress: "SITE Area",
		Phone:           "03001234567",
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO profiles (id, email, password_hash, full_name, cnic_number, business_name,
		                       business_type, business_address, phone, created_at, updated_at)
		 VALUES ($1, $2, 'seed-hash', $3, $4, $5, $6, $7, $8, $9, $10)`,
		p.ID, p.Email, p.FullName, p.CNICNumber, p.BusinessName,
		p.BusinessType, p.BusinessAddress, p.Phone, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProfile: %v", err)
	}

	return p
}

// ListingOption customises a seeded listing.
type ListingOption func(l *domain.Listing)

// WithCity sets city and location.
func WithCity(city, location string) ListingOption {
	return func(l *domain.Listing) {
		l.City = city
		l.Location = location
	}
}

// WithText sets the three text-searchable fields.
func WithText(material, description string, category domain.Category) ListingOption {
	return func(l *domain.Listing) {
		l.MaterialName = material
		l.Description = description
		l.Category = category
	}
}

// WithCreatedAt fixes the listing's creation time.
func WithCreatedAt(at time.Time) ListingOption {
	return func(l *domain.Listing) {
		l.CreatedAt = at.UTC().Truncate(time.Microsecond)
		l.UpdatedAt = l.CreatedAt
	}
}

// WithStatus sets the listing status.
func WithStatus(status domain.ListingStatus) ListingOption {
	return func(l *domain.Listing) { l.Status = status }
}

// WithViews sets views_count.
func WithViews(n int) ListingOption {
	return func(l *domain.Listing) { l.ViewsCount = n }
}

// WithPrice sets the asking price.
func WithPrice(p float64) ListingOption {
	return func(l *domain.Listing) { l.Price = &p }
}

// SeedListing inserts an active listing owned by userID. Defaults describe a
// steel scrap lot in Karachi created now.
func SeedListing(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, opts ...ListingOption) domain.Listing {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	l := domain.Listing{
		ID:                 uuid.New(),
		UserID:             userID,
		MaterialName:       "Steel offcuts",
		Category:           domain.CategoryMetalScrap,
		Condition:          domain.ConditionLeftover,
		Quantity:           "500 kg",
		Location:           "SITE Area",
		City:               "Karachi",
		Description:        "Mild steel offcuts from fabrication",
		Images:             []string{},
		ContactPreferences: domain.DefaultContactPreferences(),
		Status:             domain.ListingStatusActive,
		ListingType:        domain.ListingTypeSell,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	for _, opt := range opts {
		opt(&l)
	}

	prefs, err := json.Marshal(l.ContactPreferences)
	if err != nil {
		t.Fatalf("testhelper: SeedListing marshal prefs: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO listings (id, user_id, material_name, category, condition, quantity, price,
		                       is_exchange_only, location, city, description, images, contact_preferences,
		                       status, views_count, listing_type, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`,
		l.ID, l.UserID, l.MaterialName, string(l.Category), string(l.Condition), l.Quantity, l.Price,
		l.IsExchangeOnly, l.Location, l.City, l.Description, l.Images, prefs,
		string(l.Status), l.ViewsCount, string(l.ListingType), l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedListing: %v", err)
	}

	return l
}
