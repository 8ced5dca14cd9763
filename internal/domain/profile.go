package domain

import (
	"time"

	"github.com/google/uuid"
)

// Profile is a registered business account.
type Profile struct {
	ID                 uuid.UUID
	Email              string
	FullName           string
	CNICNumber         string
	BusinessName       string
	BusinessType       string
	BusinessAddress    string
	Phone              string
	NTNNumber          *string
	CNICPhotoURL       *string
	BusinessLicenseURL *string
	Verified           bool
	ReputationScore    float64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// PublicProfile is what other members see about a seller.
type PublicProfile struct {
	ID              uuid.UUID
	FullName        string
	BusinessName    string
	BusinessType    string
	Verified        bool
	ReputationScore float64
	CreatedAt       time.Time
}

// Public strips contact and identity documents from the profile.
func (p *Profile) Public() PublicProfile {
	return PublicProfile{
		ID:              p.ID,
		FullName:        p.FullName,
		BusinessName:    p.BusinessName,
		BusinessType:    p.BusinessType,
		Verified:        p.Verified,
		ReputationScore: p.ReputationScore,
		CreatedAt:       p.CreatedAt,
	}
}

// RefreshToken represents a hashed refresh token stored in the database.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// IsRevoked returns true if the token has been revoked.
func (t *RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}

// IsExpired returns true if the token has expired relative to now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}
