package domain

import (
	"time"

	"github.com/google/uuid"
)

// Listing is a marketplace post offering, requesting or swapping material.
type Listing struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	MaterialName       string
	Category           Category
	Condition          Condition
	Quantity           string
	Price              *float64
	IsExchangeOnly     bool
	Location           string
	City               string
	Description        string
	Images             []string
	ContactPreferences ContactPreferences
	Status             ListingStatus
	ViewsCount         int
	ListingType        ListingType
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ContactPreferences lists the channels a seller accepts.
type ContactPreferences struct {
	Call     bool `json:"call"`
	Message  bool `json:"message"`
	WhatsApp bool `json:"whatsapp"`
}

// DefaultContactPreferences matches the listing form's initial state.
func DefaultContactPreferences() ContactPreferences {
	return ContactPreferences{Call: true, Message: true}
}

// IsActive reports whether the listing is visible to search.
func (l *Listing) IsActive() bool {
	return l.Status == ListingStatusActive
}

// IsOwnedBy reports whether userID posted the listing.
func (l *Listing) IsOwnedBy(userID uuid.UUID) bool {
	return l.UserID == userID
}

// ListingFilter holds the advanced search page filters. Empty fields are ignored.
type ListingFilter struct {
	City        string
	Location    string
	Category    Category
	Condition   Condition
	ListingType ListingType
	MinPrice    *float64
	MaxPrice    *float64
	Query       string
	Limit       int
}

// CategoryCount is the number of active listings in a category.
type CategoryCount struct {
	Category Category
	Count    int
}

// MarketStats summarises marketplace activity for the landing page.
type MarketStats struct {
	ActiveListings int
	Members        int
	TotalViews     int64
}

// Dashboard is a member's own activity summary.
type Dashboard struct {
	ListingCount        int
	UnreadMessages      int
	UnreadNotifications int
	RecentListings      []Listing
}

// ListingQuery is the store-agnostic description of a search fetch. The store
// always restricts to active listings and orders by CreatedAt descending.
type ListingQuery struct {
	// LocationTerm matches city case-insensitively by equality, or location by substring.
	LocationTerm string
	// TextTerm matches material name, description or category by substring.
	TextTerm string
	Limit    int
}
