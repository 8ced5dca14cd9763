// Package notification implements in-app notification storage using PostgreSQL.
package notification

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
	entity    = "notification"
	tableName = "notifications"
)

var columns = []string{"id", "user_id", "type", "title", "message", "read", "related_id", "created_at"}

// Repo provides notification persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new notification repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a notification.
func (r *Repo) Create(ctx context.Context, n *domain.Notification) error {
	sql, args, err := postgres.Builder.
		Insert(tableName).
		Columns(columns...).
		Values(n.ID, n.UserID, string(n.Type), n.Title, n.Message, n.Read, n.RelatedID, n.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build notification insert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, entity, n.ID)
	}
	return nil
}

// ListByUser returns a page of notifications for userID, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Notification, error) {
	sql, args, err := postgres.Builder.
		Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build notifications query: %w", err)
	}

	var rows []notificationRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, entity, uuid.Nil)
	}

	out := make([]domain.Notification, len(rows))
	for i, row := range rows {
		out[i] = domain.Notification{
			ID:        row.ID,
			UserID:    row.UserID,
			Type:      domain.NotificationType(row.Type),
			Title:     row.Title,
			Message:   row.Message,
			Read:      row.Read,
			RelatedID: row.RelatedID,
			CreatedAt: row.CreatedAt,
		}
	}
	return out, nil
}

// CountUnread returns the number of unread notifications for userID.
func (r *Repo) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	sql, args, err := postgres.Builder.
		Select("COUNT(*)").
		From(tableName).
		Where(squirrel.Eq{"user_id": userID, "read": false}).
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

// MarkRead marks one of userID's notifications read.
func (r *Repo) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	n, err := r.markRead(ctx, squirrel.Eq{"id": id, "user_id": userID}, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

// MarkAllRead marks every unread notification of userID read and returns how many changed.
func (r *Repo) MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error) {
	return r.markRead(ctx, squirrel.Eq{"user_id": userID, "read": false}, userID)
}

func (r *Repo) markRead(ctx context.Context, where squirrel.Eq, id uuid.UUID) (int, error) {
	sql, args, err := postgres.Builder.
		Update(tableName).
		Set("read", true).
		Where(where).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build mark read: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, entity, id)
	}
	return int(tag.RowsAffected()), nil
}

type notificationRow struct {
	ID        uuid.UUID  `db:"id"`
	UserID    uuid.UUID  `db:"user_id"`
	Type      string     `db:"type"`
	Title     string     `db:"title"`
	Message   string     `db:"message"`
	Read      bool       `db:"read"`
	RelatedID *uuid.UUID `db:"related_id"`
	CreatedAt time.Time  `db:"created_at"`
}
