package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/saudaghar/marketplace-backend/internal/config"
	"github.com/saudaghar/marketplace-backend/internal/domain"
)

// profileRepo defines the profile persistence needed by the auth service.
type profileRepo interface {
	Create(ctx context.Context, p *domain.Profile, passwordHash string) (*domain.Profile, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	GetCredentials(ctx context.Context, email string) (*domain.Profile, string, error)
	GetPasswordHash(ctx context.Context, id uuid.UUID) (string, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string, at time.Time) error
}

// tokenRepo defines the refresh token repository interface needed by auth service.
type tokenRepo interface {
	Create(ctx context.Context, token *domain.RefreshToken) error
	GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	RevokeByID(ctx context.Context, id uuid.UUID) error
	RevokeAllByUser(ctx context.Context, userID uuid.UUID) error
	DeleteExpired(ctx context.Context) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// jwtManager defines the token primitives needed by auth service.
type jwtManager interface {
	GenerateAccessToken(profileID uuid.UUID) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, error)
	GenerateRefreshToken() (raw string, hash string, err error)
}

// Service implements registration, login and session management.
type Service struct {
	log      *slog.Logger
	profiles profileRepo
	tokens   tokenRepo
	tx       txManager
	jwt      jwtManager
	cfg      config.AuthConfig
	now      func() time.Time
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	profiles profileRepo,
	tokens tokenRepo,
	tx txManager,
	jwt jwtManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "auth"),
		profiles: profiles,
		tokens:   tokens,
		tx:       tx,
		jwt:      jwt,
		cfg:      cfg,
		now:      time.Now,
	}
}

// issueTokens signs an access token, stores the hash of a fresh refresh
// token and returns both to the caller.
func (s *Service) issueTokens(ctx context.Context, profile *domain.Profile) (*AuthResult, error) {
	accessToken, err := s.jwt.GenerateAccessToken(profile.ID)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	rawRefresh, hashRefresh, err := s.jwt.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	now := s.now()
	refreshToken := &domain.RefreshToken{
		ID:        uuid.New(),
		UserID:    profile.ID,
		TokenHash: hashRefresh,
		ExpiresAt: now.Add(s.cfg.RefreshTokenTTL),
		CreatedAt: now,
	}
	if err := s.tokens.Create(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &AuthResult{
		AccessToken:  accessToken,
		RefreshToken: rawRefresh,
		ExpiresIn:    s.cfg.AccessTokenTTL,
		Profile:      profile,
	}, nil
}
