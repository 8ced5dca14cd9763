// Package transaction lists the deals a member took part in.
package transaction

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/saudaghar/marketplace-backend/internal/domain"
	"github.com/saudaghar/marketplace-backend/pkg/ctxutil"
)

type transactionRepo interface {
	ListByParticipant(ctx context.Context, userID uuid.UUID) ([]domain.Transaction, error)
}

// Service implements transaction history reads.
type Service struct {
	log  *slog.Logger
	repo transactionRepo
}

// NewService creates a new transaction service.
func NewService(logger *slog.Logger, repo transactionRepo) *Service {
	return &Service{
		log:  logger.With("service", "transaction"),
		repo: repo,
	}
}

// List returns transactions where the caller is buyer or seller, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Transaction, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	txs, err := s.repo.ListByParticipant(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("transaction.List: %w", err)
	}
	if txs == nil {
		txs = []domain.Transaction{}
	}
	return txs, nil
}
