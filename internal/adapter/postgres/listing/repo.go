// Package listing implements the listings store using PostgreSQL.
package listing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/saudaghar/marketplace-backend/internal/adapter/postgres"
	"github.com/saudaghar/marketplace-backend/internal/domain"
)

const entity = "listing"

// Repo provides listing persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new listing repository. db is usually the pool; inside
// TxManager.RunInTx the context transaction takes precedence.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Find runs a search fetch. See domain.ListingQuery for the predicate contract.
func (r *Repo) Find(ctx context.Context, q domain.ListingQuery) ([]domain.Listing, error) {
	return r.selectListings(ctx, buildSearch(q))
}

// Filter runs the advanced search page query.
func (r *Repo) Filter(ctx context.Context, f domain.ListingFilter) ([]domain.Listing, error) {
	return r.selectListings(ctx, buildFilter(f))
}

// GetByID returns a listing regardless of status.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	query := postgres.Builder.
		Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"id": id})

	return r.getOne(ctx, query, id)
}

// RecordView increments views_count and returns the updated listing.
func (r *Repo) RecordView(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	query := postgres.Builder.
		Update(tableName).
		Set("views_count", squirrel.Expr("views_count + 1")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + returningColumns())

	return r.getOne(ctx, query, id)
}

// Create inserts a listing and returns the stored row.
func (r *Repo) Create(ctx context.Context, l *domain.Listing) (*domain.Listing, error) {
	query := postgres.Builder.
		Insert(tableName).
		Columns(columns...).
		Values(
			l.ID, l.UserID, l.MaterialName, string(l.Category), string(l.Condition), l.Quantity, l.Price,
			l.IsExchangeOnly, l.Location, l.City, l.Description, imagesOrEmpty(l.Images), l.ContactPreferences,
			string(l.Status), l.ViewsCount, string(l.ListingType), l.CreatedAt, l.UpdatedAt,
		).
		Suffix("RETURNING " + returningColumns())

	return r.getOne(ctx, query, l.ID)
}

// Update overwrites the editable fields of a listing.
func (r *Repo) Update(ctx context.Context, l *domain.Listing) (*domain.Listing, error) {
	query := postgres.Builder.
		Update(tableName).
		SetMap(map[string]any{
			"material_name":       l.MaterialName,
			"category":            string(l.Category),
			"condition":           string(l.Condition),
			"quantity":            l.Quantity,
			"price":               l.Price,
			"is_exchange_only":    l.IsExchangeOnly,
			"location":            l.Location,
			"city":                l.City,
			"description":         l.Description,
			"images":              imagesOrEmpty(l.Images),
			"contact_preferences": l.ContactPreferences,
			"listing_type":        string(l.ListingType),
			"updated_at":          l.UpdatedAt,
		}).
		Where(squirrel.Eq{"id": l.ID}).
		Suffix("RETURNING " + returningColumns())

	return r.getOne(ctx, query, l.ID)
}

// SetStatus changes a listing's visibility.
func (r *Repo) SetStatus(ctx context.Context, id uuid.UUID, status domain.ListingStatus, at time.Time) error {
	sql, args, err := postgres.Builder.
		Update(tableName).
		Set("status", string(status)).
		Set("updated_at", at).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build set status: %w", err)
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

// ListByUser returns a user's listings with the given status, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, status domain.ListingStatus) ([]domain.Listing, error) {
	query := postgres.Builder.
		Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"user_id": userID, "status": string(status)}).
		OrderBy("created_at DESC", "id DESC")

	return r.selectListings(ctx, query)
}

// ListRecentByUser returns a user's newest listings of any status.
func (r *Repo) ListRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Listing, error) {
	query := postgres.Builder.
		Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit))

	return r.selectListings(ctx, query)
}

// CountByUser returns how many listings a user has posted, inactive included.
func (r *Repo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	sql, args, err := postgres.Builder.
		Select("COUNT(*)").
		From(tableName).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build user listing count: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, entity, userID)
	}
	return n, nil
}

// ListMostViewed returns active listings by views_count descending.
func (r *Repo) ListMostViewed(ctx context.Context, limit int) ([]domain.Listing, error) {
	query := postgres.Builder.
		Select(columns...).
		From(tableName).
		Where(activeOnly()).
		OrderBy("views_count DESC", "created_at DESC").
		Limit(uint64(limit))

	return r.selectListings(ctx, query)
}

// CountByCategory returns the number of active listings per category.
func (r *Repo) CountByCategory(ctx context.Context) ([]domain.CategoryCount, error) {
	sql, args, err := postgres.Builder.
		Select("category", "COUNT(*) AS count").
		From(tableName).
		Where(activeOnly()).
		GroupBy("category").
		OrderBy("count DESC", "category").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build category counts: %w", err)
	}

	var rows []categoryCountRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, entity, uuid.Nil)
	}

	counts := make([]domain.CategoryCount, len(rows))
	for i, row := range rows {
		counts[i] = domain.CategoryCount{Category: domain.Category(row.Category), Count: row.Count}
	}
	return counts, nil
}

// CountActive returns the number of active listings.
func (r *Repo) CountActive(ctx context.Context) (int, error) {
	var n int
	if err := r.scalar(ctx, "COUNT(*)", &n); err != nil {
		return 0, err
	}
	return n, nil
}

// SumActiveViews returns the total views across active listings.
func (r *Repo) SumActiveViews(ctx context.Context) (int64, error) {
	var n int64
	if err := r.scalar(ctx, "COALESCE(SUM(views_count), 0)", &n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *Repo) scalar(ctx context.Context, expr string, dst any) error {
	sql, args, err := postgres.Builder.
		Select(expr).
		From(tableName).
		Where(activeOnly()).
		ToSql()
	if err != nil {
		return fmt.Errorf("build aggregate: %w", err)
	}

	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(dst); err != nil {
		return postgres.MapError(err, entity, uuid.Nil)
	}
	return nil
}

func (r *Repo) selectListings(ctx context.Context, query squirrel.Sqlizer) ([]domain.Listing, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build listing query: %w", err)
	}

	var rows []listingRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, entity, uuid.Nil)
	}

	return toDomainSlice(rows), nil
}

func (r *Repo) getOne(ctx context.Context, query squirrel.Sqlizer, id uuid.UUID) (*domain.Listing, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build listing query: %w", err)
	}

	var row listingRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, entity, id)
	}

	l := row.toDomain()
	return &l, nil
}

func returningColumns() string {
	return strings.Join(columns, ", ")
}

func imagesOrEmpty(images []string) []string {
	if images == nil {
		return []string{}
	}
	return images
}
