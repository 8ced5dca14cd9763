package rest

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/saudaghar/marketplace-backend/internal/domain"
	"github.com/saudaghar/marketplace-backend/internal/transport/dataloader"
)

type listingResponse struct {
	ID                 string                    `json:"id"`
	UserID             string                    `json:"user_id"`
	MaterialName       string                    `json:"material_name"`
	Category           string                    `json:"category"`
	Condition          string                    `json:"condition"`
	Quantity           string                    `json:"quantity"`
	Price              *float64                  `json:"price"`
	IsExchangeOnly     bool                      `json:"is_exchange_only"`
	Location           string                    `json:"location"`
	City               string                    `json:"city"`
	Description        string                    `json:"description"`
	Images             []string                  `json:"images"`
	ContactPreferences domain.ContactPreferences `json:"contact_preferences"`
	Status             string                    `json:"status"`
	ViewsCount         int                       `json:"views_count"`
	ListingType        string                    `json:"listing_type"`
	CreatedAt          time.Time                 `json:"created_at"`
	UpdatedAt          time.Time                 `json:"updated_at"`
	Seller             *publicProfileResponse    `json:"seller,omitempty"`
}

func toListingResponse(l domain.Listing, seller *domain.PublicProfile) listingResponse {
	images := l.Images
	if images == nil {
		images = []string{}
	}
	resp := listingResponse{
		ID:                 l.ID.String(),
		UserID:             l.UserID.String(),
		MaterialName:       l.MaterialName,
		Category:           string(l.Category),
		Condition:          string(l.Condition),
		Quantity:           l.Quantity,
		Price:              l.Price,
		IsExchangeOnly:     l.IsExchangeOnly,
		Location:           l.Location,
		City:               l.City,
		Description:        l.Description,
		Images:             images,
		ContactPreferences: l.ContactPreferences,
		Status:             string(l.Status),
		ViewsCount:         l.ViewsCount,
		ListingType:        string(l.ListingType),
		CreatedAt:          l.CreatedAt,
		UpdatedAt:          l.UpdatedAt,
	}
	if seller != nil {
		p := toPublicProfileResponse(*seller)
		resp.Seller = &p
	}
	return resp
}

// listingsWithSellers converts listings and attaches their sellers through
// the request's loaders. Seller lookup failures are logged and degrade to
// listings without a seller block.
func listingsWithSellers(ctx context.Context, log *slog.Logger, listings []domain.Listing) []listingResponse {
	var sellers map[uuid.UUID]*domain.PublicProfile
	if loaders := dataloader.FromContext(ctx); loaders != nil {
		var err error
		sellers, err = loaders.Sellers(ctx, listings)
		if err != nil {
			log.WarnContext(ctx, "seller lookup failed",
				slog.Int("listings", len(listings)),
				slog.String("error", err.Error()))
		}
	}

	out := make([]listingResponse, len(listings))
	for i, l := range listings {
		out[i] = toListingResponse(l, sellers[l.UserID])
	}
	return out
}

type profileResponse struct {
	ID                 string    `json:"id"`
	Email              string    `json:"email"`
	FullName           string    `json:"full_name"`
	CNICNumber         string    `json:"cnic_number"`
	BusinessName       string    `json:"business_name"`
	BusinessType       string    `json:"business_type"`
	BusinessAddress    string    `json:"business_address"`
	Phone              string    `json:"phone"`
	NTNNumber          *string   `json:"ntn_number"`
	CNICPhotoURL       *string   `json:"cnic_photo_url"`
	BusinessLicenseURL *string   `json:"business_license_url"`
	Verified           bool      `json:"verified"`
	ReputationScore    float64   `json:"reputation_score"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func toProfileResponse(p *domain.Profile) profileResponse {
	return profileResponse{
		ID:                 p.ID.String(),
		Email:              p.Email,
		FullName:           p.FullName,
		CNICNumber:         p.CNICNumber,
		BusinessName:       p.BusinessName,
		BusinessType:       p.BusinessType,
		BusinessAddress:    p.BusinessAddress,
		Phone:              p.Phone,
		NTNNumber:          p.NTNNumber,
		CNICPhotoURL:       p.CNICPhotoURL,
		BusinessLicenseURL: p.BusinessLicenseURL,
		Verified:           p.Verified,
		ReputationScore:    p.ReputationScore,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

type publicProfileResponse struct {
	ID              string    `json:"id"`
	FullName        string    `json:"full_name"`
	BusinessName    string    `json:"business_name"`
	BusinessType    string    `json:"business_type"`
	Verified        bool      `json:"verified"`
	ReputationScore float64   `json:"reputation_score"`
	CreatedAt       time.Time `json:"created_at"`
}

func toPublicProfileResponse(p domain.PublicProfile) publicProfileResponse {
	return publicProfileResponse{
		ID:              p.ID.String(),
		FullName:        p.FullName,
		BusinessName:    p.BusinessName,
		BusinessType:    p.BusinessType,
		Verified:        p.Verified,
		ReputationScore: p.ReputationScore,
		CreatedAt:       p.CreatedAt,
	}
}

type messageResponse struct {
	ID            string    `json:"id"`
	ListingID     string    `json:"listing_id"`
	SenderID      string    `json:"sender_id"`
	ReceiverID    string    `json:"receiver_id"`
	Message       string    `json:"message"`
	ContactMethod string    `json:"contact_method"`
	Read          bool      `json:"read"`
	CreatedAt     time.Time `json:"created_at"`
}

func toMessageResponse(m domain.Message) messageResponse {
	return messageResponse{
		ID:            m.ID.String(),
		ListingID:     m.ListingID.String(),
		SenderID:      m.SenderID.String(),
		ReceiverID:    m.ReceiverID.String(),
		Message:       m.Body,
		ContactMethod: string(m.ContactMethod),
		Read:          m.Read,
		CreatedAt:     m.CreatedAt,
	}
}

type notificationResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	RelatedID *string   `json:"related_id"`
	CreatedAt time.Time `json:"created_at"`
}

func toNotificationResponse(n domain.Notification) notificationResponse {
	resp := notificationResponse{
		ID:        n.ID.String(),
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
	if n.RelatedID != nil {
		id := n.RelatedID.String()
		resp.RelatedID = &id
	}
	return resp
}

type ratingResponse struct {
	ID        string    `json:"id"`
	ListingID string    `json:"listing_id"`
	RaterID   string    `json:"rater_id"`
	SellerID  string    `json:"seller_id"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

func toRatingResponse(r domain.Rating) ratingResponse {
	return ratingResponse{
		ID:        r.ID.String(),
		ListingID: r.ListingID.String(),
		RaterID:   r.RaterID.String(),
		SellerID:  r.SellerID.String(),
		Rating:    r.Score,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}

type transactionResponse struct {
	ID           string    `json:"id"`
	ListingID    string    `json:"listing_id"`
	BuyerID      string    `json:"buyer_id"`
	SellerID     string    `json:"seller_id"`
	Status       string    `json:"status"`
	Notes        *string   `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
	MaterialName string    `json:"material_name"`
	City         string    `json:"city"`
}

func toTransactionResponse(t domain.Transaction) transactionResponse {
	return transactionResponse{
		ID:           t.ID.String(),
		ListingID:    t.ListingID.String(),
		BuyerID:      t.BuyerID.String(),
		SellerID:     t.SellerID.String(),
		Status:       string(t.Status),
		Notes:        t.Notes,
		CreatedAt:    t.CreatedAt,
		MaterialName: t.MaterialName,
		City:         t.City,
	}
}

func mapSlice[T, R any](in []T, fn func(T) R) []R {
	out := make([]R, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}
