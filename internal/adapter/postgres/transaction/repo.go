// Package transaction implements buyer/seller deal records using PostgreSQL.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/saudaghar/marketplace-backend/internal/adapter/postgres"
	"github.com/saudaghar/marketplace-backend/internal/domain"
)

const entity = "transaction"

// Repo provides transaction persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new transaction repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a transaction.
func (r *Repo) Create(ctx context.Context, tx *domain.Transaction) error {
	sql, args, err := postgres.Builder.
		Insert("transactions").
		Columns("id", "listing_id", "buyer_id", "seller_id", "status", "notes", "created_at").
		Values(tx.ID, tx.ListingID, tx.BuyerID, tx.SellerID, string(tx.Status), tx.Notes, tx.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build transaction insert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, entity, tx.ID)
	}
	return nil
}

// ListByParticipant returns transactions where userID is buyer or seller,
// newest first, with the listing's material name and city joined in.
func (r *Repo) ListByParticipant(ctx context.Context, userID uuid.UUID) ([]domain.Transaction, error) {
	sql, args, err := postgres.Builder.
		Select(
			"t.id", "t.listing_id", "t.buyer_id", "t.seller_id", "t.status", "t.notes", "t.created_at",
			"l.material_name", "l.city",
		).
		From("transactions t").
		Join("listings l ON l.id = t.listing_id").
		Where(squirrel.Or{
			squirrel.Eq{"t.buyer_id": userID},
			squirrel.Eq{"t.seller_id": userID},
		}).
		OrderBy("t.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build transactions query: %w", err)
	}

	var rows []transactionRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, entity, uuid.Nil)
	}

	out := make([]domain.Transaction, len(rows))
	for i, row := range rows {
		out[i] = domain.Transaction{
			ID:           row.ID,
			ListingID:    row.ListingID,
			BuyerID:      row.BuyerID,
			SellerID:     row.SellerID,
			Status:       domain.TransactionStatus(row.Status),
			Notes:        row.Notes,
			CreatedAt:    row.CreatedAt,
			MaterialName: row.MaterialName,
			City:         row.City,
		}
	}
	return out, nil
}

type transactionRow struct {
	ID           uuid.UUID `db:"id"`
	ListingID    uuid.UUID `db:"listing_id"`
	BuyerID      uuid.UUID `db:"buyer_id"`
	SellerID     uuid.UUID `db:"seller_id"`
	Status       string    `db:"status"`
	Notes        *string   `db:"notes"`
	CreatedAt    time.Time `db:"created_at"`
	MaterialName string    `db:"material_name"`
	City         string    `db:"city"`
}
