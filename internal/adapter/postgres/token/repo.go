// Package token implements the RefreshToken repository using PostgreSQL.
package token

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

const (
	entity    = "refresh_token"
	tableName = "refresh_tokens"
)

// Repo provides refresh-token persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new token repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a new refresh token.
func (r *Repo) Create(ctx context.Context, token *domain.RefreshToken) error {
	sql, args, err := postgres.Builder.
		Insert(tableName).
		Columns("id", "user_id", "token_hash", "expires_at", "created_at").
		Values(token.ID, token.UserID, token.TokenHash, token.ExpiresAt, token.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build token insert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, entity, token.ID)
	}
	return nil
}

// GetByHash returns an active (non-revoked, non-expired) refresh token by its hash.
// Returns domain.ErrNotFound if the token does not exist, is revoked, or is expired.
func (r *Repo) GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	sql, args, err := postgres.Builder.
		Select("id", "user_id", "token_hash", "expires_at", "created_at", "revoked_at").
		From(tableName).
		Where(squirrel.Eq{"token_hash": tokenHash, "revoked_at": nil}).
		Where("expires_at > now()").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build token query: %w", err)
	}

	var row tokenRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, entity, uuid.Nil)
	}

	return &domain.RefreshToken{
		ID:        row.ID,
		UserID:    row.UserID,
		TokenHash: row.TokenHash,
		ExpiresAt: row.ExpiresAt,
		CreatedAt: row.CreatedAt,
		RevokedAt: row.RevokedAt,
	}, nil
}

// RevokeByID revokes a specific refresh token by setting revoked_at.
// Idempotent: revoking an already-revoked token is not an error.
func (r *Repo) RevokeByID(ctx context.Context, id uuid.UUID) error {
	return r.revoke(ctx, squirrel.Eq{"id": id}, id)
}

// RevokeAllByUser revokes all active refresh tokens for the given user.
func (r *Repo) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	return r.revoke(ctx, squirrel.Eq{"user_id": userID}, userID)
}

func (r *Repo) revoke(ctx context.Context, where squirrel.Eq, id uuid.UUID) error {
	sql, args, err := postgres.Builder.
		Update(tableName).
		Set("revoked_at", squirrel.Expr("now()")).
		Where(where).
		Where(squirrel.Eq{"revoked_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build token revoke: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, entity, id)
	}
	return nil
}

// DeleteExpired removes all expired or revoked tokens from the database.
// Returns the count of deleted tokens.
// May delete many records; does not use a transaction.
func (r *Repo) DeleteExpired(ctx context.Context) (int, error) {
	sql, args, err := postgres.Builder.
		Delete(tableName).
		Where(squirrel.Or{
			squirrel.Expr("expires_at <= now()"),
			squirrel.NotEq{"revoked_at": nil},
		}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build token cleanup: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, entity, uuid.Nil)
	}
	return int(tag.RowsAffected()), nil
}

type tokenRow struct {
	ID        uuid.UUID  `db:"id"`
	UserID    uuid.UUID  `db:"user_id"`
	TokenHash string     `db:"token_hash"`
	ExpiresAt time.Time  `db:"expires_at"`
	CreatedAt time.Time  `db:"created_at"`
	RevokedAt *time.Time `db:"revoked_at"`
}
