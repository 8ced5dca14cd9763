package auth

import (
	"time"

	"github.com/saudaghar/marketplace-backend/internal/domain"
)

// AuthResult is returned by Register, LoginWithPassword and Refresh.
type AuthResult struct {
	AccessToken  string
	RefreshToken string // raw token, never the hash
	ExpiresIn    time.Duration
	Profile      *domain.Profile
}
