package profile

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/saudaghar/marketplace-backend/internal/domain"
	"github.com/saudaghar/marketplace-backend/pkg/ctxutil"
)

// Me returns the full profile of the authenticated member.
func (s *Service) Me(ctx context.Context) (*domain.Profile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	p, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("profile.Me: %w", err)
	}
	return p, nil
}

// Get returns the public view of any member's profile.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.PublicProfile, error) {
	p, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("profile.Get: %w", err)
	}
	pub := p.Public()
	return &pub, nil
}

// Update applies a partial update to the authenticated member's profile.
func (s *Service) Update(ctx context.Context, input UpdateProfileInput) (*domain.Profile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	p, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("profile.Update get: %w", err)
	}

	setText(&p.FullName, input.FullName)
	setText(&p.BusinessName, input.BusinessName)
	setText(&p.BusinessType, input.BusinessType)
	if input.BusinessAddress != nil {
		p.BusinessAddress = strings.TrimSpace(*input.BusinessAddress)
	}
	if input.Phone != nil {
		p.Phone = strings.TrimSpace(*input.Phone)
	}
	setOptional(&p.NTNNumber, input.NTNNumber)
	setOptional(&p.CNICPhotoURL, input.CNICPhotoURL)
	setOptional(&p.BusinessLicenseURL, input.BusinessLicenseURL)
	p.UpdatedAt = s.now()

	updated, err := s.profiles.Update(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("profile.Update: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated", slog.String("user_id", userID.String()))
	return updated, nil
}

func setText(dst *string, v *string) {
	if v != nil {
		*dst = domain.CollapseSpaces(*v)
	}
}

func setOptional(dst **string, v *string) {
	if v == nil {
		return
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		*dst = nil
		return
	}
	*dst = &trimmed
}
