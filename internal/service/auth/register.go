package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/saudaghar/marketplace-backend/internal/domain"
)

// Register creates a business profile with email + password credentials.
// Returns ErrAlreadyExists if the email or CNIC is already registered.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	input.normalize()

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	now := s.now()
	profile, err := s.profiles.Create(ctx, &domain.Profile{
		ID:                 uuid.New(),
		Email:              input.Email,
		FullName:           input.FullName,
		CNICNumber:         input.CNICNumber,
		BusinessName:       input.BusinessName,
		BusinessType:       input.BusinessType,
		BusinessAddress:    input.BusinessAddress,
		Phone:              input.Phone,
		NTNNumber:          input.NTNNumber,
		CNICPhotoURL:       input.CNICPhotoURL,
		BusinessLicenseURL: input.BusinessLicenseURL,
		CreatedAt:          now,
		UpdatedAt:          now,
	}, string(hash))
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.Register: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	result, err := s.issueTokens(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("auth.Register issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "profile registered",
		slog.String("user_id", profile.ID.String()))

	return result, nil
}
