// Package auth issues and verifies the credentials used by the API:
// HS256 access tokens and opaque refresh tokens.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrEmptyToken is returned when no access token was presented.
var ErrEmptyToken = errors.New("token is empty")

// JWTManager signs and verifies access tokens.
type JWTManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
	parser    *jwt.Parser
	now       func() time.Time
}

// NewJWTManager creates a JWT manager. The secret length is enforced by config validation.
func NewJWTManager(secret, issuer string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(issuer),
			jwt.WithExpirationRequired(),
		),
		now: time.Now,
	}
}

// GenerateAccessToken signs a token whose subject is the profile id.
func (m *JWTManager) GenerateAccessToken(profileID uuid.UUID) (string, error) {
	now := m.now()
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   profileID.String(),
		Issuer:    m.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateAccessToken verifies signature, issuer and expiry and returns the
// profile id carried in the subject.
func (m *JWTManager) ValidateAccessToken(tokenString string) (uuid.UUID, error) {
	if tokenString == "" {
		return uuid.Nil, ErrEmptyToken
	}

	var claims jwt.RegisteredClaims
	_, err := m.parser.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("parse token: %w", err)
	}

	profileID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid subject: %w", err)
	}
	return profileID, nil
}
