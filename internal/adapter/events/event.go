// Package events publishes marketplace domain events to RabbitMQ. Every
// payload is checked against its embedded JSON schema before it leaves the process.
package events

import (
	"time"

	"github.com/google/uuid"
)

// Event is a payload with a routing key that names its schema.
type Event interface {
	EventType() string
}

const (
	TypeListingCreated  = "listing.created"
	TypeMessageSent     = "message.sent"
	TypeRatingSubmitted = "rating.submitted"
)

// ListingCreated is emitted after a listing is stored.
type ListingCreated struct {
	ListingID    uuid.UUID `json:"listing_id"`
	UserID       uuid.UUID `json:"user_id"`
	MaterialName string    `json:"material_name"`
	Category     string    `json:"category"`
	City         string    `json:"city"`
	ListingType  string    `json:"listing_type"`
	Price        *float64  `json:"price"`
	CreatedAt    time.Time `json:"created_at"`
}

func (ListingCreated) EventType() string { return TypeListingCreated }

// MessageSent is emitted after a buyer contacts a seller.
type MessageSent struct {
	MessageID     uuid.UUID `json:"message_id"`
	ListingID     uuid.UUID `json:"listing_id"`
	SenderID      uuid.UUID `json:"sender_id"`
	ReceiverID    uuid.UUID `json:"receiver_id"`
	ContactMethod string    `json:"contact_method"`
	CreatedAt     time.Time `json:"created_at"`
}

func (MessageSent) EventType() string { return TypeMessageSent }

// RatingSubmitted is emitted after a rating and its completed transaction are stored.
type RatingSubmitted struct {
	RatingID        uuid.UUID `json:"rating_id"`
	ListingID       uuid.UUID `json:"listing_id"`
	RaterID         uuid.UUID `json:"rater_id"`
	SellerID        uuid.UUID `json:"seller_id"`
	Rating          int       `json:"rating"`
	ReputationScore float64   `json:"reputation_score"`
	CreatedAt       time.Time `json:"created_at"`
}

func (RatingSubmitted) EventType() string { return TypeRatingSubmitted }
