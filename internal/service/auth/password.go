package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/saudaghar/marketplace-backend/internal/domain"
	"github.com/saudaghar/marketplace-backend/pkg/ctxutil"
)

// ChangePassword replaces the caller's password after checking the current
// one. Every refresh token of the caller is revoked in the same transaction,
// so other sessions must log in again.
func (s *Service) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	current, err := s.profiles.GetPasswordHash(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrUnauthorized
		}
		return fmt.Errorf("auth.ChangePassword get hash: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(current), []byte(input.Current)) != nil {
		return domain.NewValidationError("current_password", "is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.New), s.cfg.BcryptCost)
	if err != nil {
		return fmt.Errorf("auth.ChangePassword hash password: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.profiles.UpdatePassword(txCtx, userID, string(hash), s.now()); err != nil {
			return fmt.Errorf("update password: %w", err)
		}
		if err := s.tokens.RevokeAllByUser(txCtx, userID); err != nil {
			return fmt.Errorf("revoke tokens: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("auth.ChangePassword: %w", err)
	}

	s.log.InfoContext(ctx, "password changed", slog.String("user_id", userID.String()))
	return nil
}
