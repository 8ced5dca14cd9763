package seeder

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/saudaghar/marketplace-backend/internal/domain"
)

// Generator produces random but plausible sellers and listings.
type Generator struct {
	rnd *rand.Rand
	now func() time.Time
}

// NewGenerator creates a generator. The same seed and clock yield the same data.
func NewGenerator(seed uint64, now func() time.Time) *Generator {
	return &Generator{rnd: rand.New(rand.NewPCG(seed, seed^0x5a0da)), now: now}
}

// Seller returns a demo seller profile; n numbers it for display.
func (g *Generator) Seller(n int) domain.Profile {
	now := g.now().UTC()
	tag := uuid.New().String()[:8]

	return domain.Profile{
		ID:              uuid.New(),
		Email:           fmt.Sprintf("seller%d.%s@demo.saudaghar.pk", n, tag),
		FullName:        fmt.Sprintf("Demo Seller %d", n),
		CNICNumber:      fmt.Sprintf("42201-%07d-%d", g.rnd.IntN(10_000_000), g.rnd.IntN(10)),
		BusinessName:    fmt.Sprintf("Demo Traders %d", n),
		BusinessType:    pick(g, businessTypes),
		BusinessAddress: locationTemplates[0](pick(g, Cities[:len(Cities)-1])),
		Phone:           fmt.Sprintf("03%09d", g.rnd.IntN(1_000_000_000)),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// Listing returns an active demo listing owned by sellerID, created within
// the last 30 days.
func (g *Generator) Listing(sellerID uuid.UUID) domain.Listing {
	category := domain.Categories[g.rnd.IntN(len(domain.Categories))]
	material := pick(g, materialNames[category])
	condition := pick(g, conditions)
	listingType := pick(g, listingTypes)
	city := pick(g, Cities)

	var price *float64
	if listingType != domain.ListingTypeExchange {
		p := pick(g, prices)
		price = &p
	}

	createdAt := g.now().UTC().
		AddDate(0, 0, -g.rnd.IntN(30)).
		Truncate(24 * time.Hour).
		Add(time.Duration(g.rnd.IntN(24))*time.Hour + time.Duration(g.rnd.IntN(60))*time.Minute)

	return domain.Listing{
		ID:             uuid.New(),
		UserID:         sellerID,
		MaterialName:   material,
		Category:       category,
		Condition:      condition,
		Quantity:       pick(g, quantities),
		Price:          price,
		IsExchangeOnly: listingType == domain.ListingTypeExchange && g.rnd.Float64() < 0.6,
		Location:       pick(g, locationTemplates)(city),
		City:           city,
		Description:    pick(g, descriptionTemplates)(material, string(condition), string(listingType)),
		Images:         []string{},
		ContactPreferences: domain.ContactPreferences{
			Call:     g.rnd.Float64() > 0.3,
			Message:  g.rnd.Float64() > 0.2,
			WhatsApp: g.rnd.Float64() > 0.4,
		},
		Status:      domain.ListingStatusActive,
		ViewsCount:  g.rnd.IntN(500),
		ListingType: listingType,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
}

func pick[T any](g *Generator, items []T) T {
	return items[g.rnd.IntN(len(items))]
}

func lower(s string) string { return strings.ToLower(s) }
