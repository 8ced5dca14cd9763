package listing

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/saudaghar/marketplace-backend/internal/domain"
)

// listingRow mirrors the listings table for pgxscan.
type listingRow struct {
	ID                 uuid.UUID `db:"id"`
	UserID             uuid.UUID `db:"user_id"`
	MaterialName       string    `db:"material_name"`
	Category           string    `db:"category"`
	Condition          string    `db:"condition"`
	Quantity           string    `db:"quantity"`
	Price              *float64  `db:"price"`
	IsExchangeOnly     bool      `db:"is_exchange_only"`
	Location           string    `db:"location"`
	City               string    `db:"city"`
	Description        string    `db:"description"`
	Images             []string  `db:"images"`
	ContactPreferences []byte    `db:"contact_preferences"`
	Status             string    `db:"status"`
	ViewsCount         int       `db:"views_count"`
	ListingType        string    `db:"listing_type"`
	CreatedAt          time.Time `db:"created_at"`
	UpdatedAt          time.Time `db:"updated_at"`
}

type categoryCountRow struct {
	Category string `db:"category"`
	Count    int    `db:"count"`
}

func (row listingRow) toDomain() domain.Listing {
	images := row.Images
	if images == nil {
		images = []string{}
	}
	prefs := domain.DefaultContactPreferences()
	if len(row.ContactPreferences) > 0 {
		// A malformed document keeps the defaults; the column is written only by this package.
		_ = json.Unmarshal(row.ContactPreferences, &prefs)
	}
	return domain.Listing{
		ID:                 row.ID,
		UserID:             row.UserID,
		MaterialName:       row.MaterialName,
		Category:           domain.Category(row.Category),
		Condition:          domain.Condition(row.Condition),
		Quantity:           row.Quantity,
		Price:              row.Price,
		IsExchangeOnly:     row.IsExchangeOnly,
		Location:           row.Location,
		City:               row.City,
		Description:        row.Description,
		Images:             images,
		ContactPreferences: prefs,
		Status:             domain.ListingStatus(row.Status),
		ViewsCount:         row.ViewsCount,
		ListingType:        domain.ListingType(row.ListingType),
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
	}
}

// toDomainSlice never returns nil so an empty result is distinguishable from a failure.
func toDomainSlice(rows []listingRow) []domain.Listing {
	out := make([]domain.Listing, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out
}
