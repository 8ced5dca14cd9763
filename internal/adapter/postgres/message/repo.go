// Package message implements buyer-to-seller message storage using PostgreSQL.
package message

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
	entity    = "message"
	tableName = "messages"
)

var columns = []string{"id", "listing_id", "sender_id", "receiver_id", "message", "contact_method", "read", "created_at"}

// Repo provides message persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new message repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a message.
func (r *Repo) Create(ctx context.Context, m *domain.Message) error {
	sql, args, err := postgres.Builder.
		Insert(tableName).
		Columns(columns...).
		Values(m.ID, m.ListingID, m.SenderID, m.ReceiverID, m.Body, string(m.ContactMethod), m.Read, m.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build message insert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, entity, m.ID)
	}
	return nil
}

// ListByReceiver returns messages received by userID, newest first.
func (r *Repo) ListByReceiver(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Message, error) {
	sql, args, err := postgres.Builder.
		Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"receiver_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build inbox query: %w", err)
	}

	var rows []messageRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, entity, uuid.Nil)
	}

	out := make([]domain.Message, len(rows))
	for i, row := range rows {
		out[i] = domain.Message{
			ID:            row.ID,
			ListingID:     row.ListingID,
			SenderID:      row.SenderID,
			ReceiverID:    row.ReceiverID,
			Body:          row.Message,
			ContactMethod: domain.ContactMethod(row.ContactMethod),
			Read:          row.Read,
			CreatedAt:     row.CreatedAt,
		}
	}
	return out, nil
}

// CountUnread returns the number of unread messages addressed to receiverID.
func (r *Repo) CountUnread(ctx context.Context, receiverID uuid.UUID) (int, error) {
	sql, args, err := postgres.Builder.
		Select("COUNT(*)").
		From(tableName).
		Where(squirrel.Eq{"receiver_id": receiverID, "read": false}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build unread count: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, entity, uuid.Nil)
	}
	return n, nil
}

// MarkRead marks a message read if receiverID received it.
func (r *Repo) MarkRead(ctx context.Context, id, receiverID uuid.UUID) error {
	sql, args, err := postgres.Builder.
		Update(tableName).
		Set("read", true).
		Where(squirrel.Eq{"id": id, "receiver_id": receiverID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build mark read: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

type messageRow struct {
	ID            uuid.UUID `db:"id"`
	ListingID     uuid.UUID `db:"listing_id"`
	SenderID      uuid.UUID `db:"sender_id"`
	ReceiverID    uuid.UUID `db:"receiver_id"`
	Message       string    `db:"message"`
	ContactMethod string    `db:"contact_method"`
	Read          bool      `db:"read"`
	CreatedAt     time.Time `db:"created_at"`
}
