package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message is a buyer enquiry sent to a listing owner.
type Message struct {
	ID            uuid.UUID
	ListingID     uuid.UUID
	SenderID      uuid.UUID
	ReceiverID    uuid.UUID
	Body          string
	ContactMethod ContactMethod
	Read          bool
	CreatedAt     time.Time
}

// Notification is an in-app alert for a member.
type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Type      NotificationType
	Title     string
	Message   string
	Read      bool
	RelatedID *uuid.UUID
	CreatedAt time.Time
}

// Rating is a 1..5 score a member gave a seller for a listing.
type Rating struct {
	ID        uuid.UUID
	ListingID uuid.UUID
	RaterID   uuid.UUID
	SellerID  uuid.UUID
	Score     int
	Comment   *string
	CreatedAt time.Time
}

const (
	MinRatingScore = 1
	MaxRatingScore = 5
)

// Transaction records a deal between a buyer and a seller on a listing.
type Transaction struct {
	ID        uuid.UUID
	ListingID uuid.UUID
	BuyerID   uuid.UUID
	SellerID  uuid.UUID
	Status    TransactionStatus
	Notes     *string
	CreatedAt time.Time

	// Joined from the listing for display.
	MaterialName string
	City         string
}
