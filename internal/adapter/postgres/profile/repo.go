// Package profile implements the business profile repository using PostgreSQL.
package profile

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

const (
	entity    = "profile"
	tableName = "profiles"
)

var columns = []string{
	"id", "email", "full_name", "cnic_number", "business_name", "business_type",
	"business_address", "phone", "ntn_number", "cnic_photo_url", "business_license_url",
	"verified", "reputation_score", "created_at", "updated_at",
}

var credentialColumns = append(columns[:len(columns):len(columns)], "password_hash")

// Repo provides profile persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new profile repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a profile together with its password hash.
func (r *Repo) Create(ctx context.Context, p *domain.Profile, passwordHash string) (*domain.Profile, error) {
	query := postgres.Builder.
		Insert(tableName).
		Columns(credentialColumns...).
		Values(
			p.ID, p.Email, p.FullName, p.CNICNumber, p.BusinessName, p.BusinessType,
			p.BusinessAddress, p.Phone, p.NTNNumber, p.CNICPhotoURL, p.BusinessLicenseURL,
			p.Verified, p.ReputationScore, p.CreatedAt, p.UpdatedAt, passwordHash,
		).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	return r.getOne(ctx, query, p.ID)
}

// GetByID returns a profile by id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	query := postgres.Builder.Select(columns...).From(tableName).Where(squirrel.Eq{"id": id})
	return r.getOne(ctx, query, id)
}

// GetByIDs returns the profiles that exist among ids, in no particular order.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Profile, error) {
	if len(ids) == 0 {
		return []domain.Profile{}, nil
	}

	sql, args, err := postgres.Builder.
		Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build profiles by ids: %w", err)
	}

	var rows []profileRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, entity, uuid.Nil)
	}

	out := make([]domain.Profile, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// GetCredentials returns the profile and password hash for an email.
func (r *Repo) GetCredentials(ctx context.Context, email string) (*domain.Profile, string, error) {
	sql, args, err := postgres.Builder.
		Select(credentialColumns...).
		From(tableName).
		Where(squirrel.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, "", fmt.Errorf("build credentials query: %w", err)
	}

	var row credentialsRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, "", postgres.MapError(err, entity, uuid.Nil)
	}

	p := row.profileRow.toDomain()
	return &p, row.PasswordHash, nil
}

// GetPasswordHash returns the stored password hash of a profile.
func (r *Repo) GetPasswordHash(ctx context.Context, id uuid.UUID) (string, error) {
	sql, args, err := postgres.Builder.
		Select("password_hash").
		From(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("build password hash query: %w", err)
	}

	var hash string
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&hash); err != nil {
		return "", postgres.MapError(err, entity, id)
	}
	return hash, nil
}

// UpdatePassword replaces the password hash of a profile.
func (r *Repo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string, at time.Time) error {
	sql, args, err := postgres.Builder.
		Update(tableName).
		Set("password_hash", passwordHash).
		Set("updated_at", at).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build password update: %w", err)
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

// Update overwrites the editable profile fields.
func (r *Repo) Update(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	query := postgres.Builder.
		Update(tableName).
		SetMap(map[string]any{
			"full_name":            p.FullName,
			"business_name":        p.BusinessName,
			"business_type":        p.BusinessType,
			"business_address":     p.BusinessAddress,
			"phone":                p.Phone,
			"ntn_number":           p.NTNNumber,
			"cnic_photo_url":       p.CNICPhotoURL,
			"business_license_url": p.BusinessLicenseURL,
			"updated_at":           p.UpdatedAt,
		}).
		Where(squirrel.Eq{"id": p.ID}).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	return r.getOne(ctx, query, p.ID)
}

// RecomputeReputation sets the seller's reputation_score to the average of
// all ratings they received and returns the new score.
func (r *Repo) RecomputeReputation(ctx context.Context, sellerID uuid.UUID, at time.Time) (float64, error) {
	sql, args, err := postgres.Builder.
		Update(tableName).
		Set("reputation_score", squirrel.Expr(
			"(SELECT COALESCE(ROUND(AVG(rating)::numeric, 2), 0) FROM ratings WHERE seller_id = ?)", sellerID)).
		Set("updated_at", at).
		Where(squirrel.Eq{"id": sellerID}).
		Suffix("RETURNING reputation_score").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build reputation update: %w", err)
	}

	var score float64
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&score); err != nil {
		return 0, postgres.MapError(err, entity, sellerID)
	}
	return score, nil
}

// Count returns the number of registered profiles.
func (r *Repo) Count(ctx context.Context) (int, error) {
	sql, args, err := postgres.Builder.Select("COUNT(*)").From(tableName).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build profile count: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, entity, uuid.Nil)
	}
	return n, nil
}

// ListIDs returns up to limit profile ids, oldest accounts first.
func (r *Repo) ListIDs(ctx context.Context, limit int) ([]uuid.UUID, error) {
	sql, args, err := postgres.Builder.
		Select("id").
		From(tableName).
		OrderBy("created_at", "id").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build profile ids: %w", err)
	}

	var ids []uuid.UUID
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &ids, sql, args...); err != nil {
		return nil, postgres.MapError(err, entity, uuid.Nil)
	}
	return ids, nil
}

func (r *Repo) getOne(ctx context.Context, query squirrel.Sqlizer, id uuid.UUID) (*domain.Profile, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build profile query: %w", err)
	}

	var row profileRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, entity, id)
	}

	p := row.toDomain()
	return &p, nil
}

type profileRow struct {
	ID                 uuid.UUID `db:"id"`
	Email              string    `db:"email"`
	FullName           string    `db:"full_name"`
	CNICNumber         string    `db:"cnic_number"`
	BusinessName       string    `db:"business_name"`
	BusinessType       string    `db:"business_type"`
	BusinessAddress    string    `db:"business_address"`
	Phone              string    `db:"phone"`
	NTNNumber          *string   `db:"ntn_number"`
	CNICPhotoURL       *string   `db:"cnic_photo_url"`
	BusinessLicenseURL *string   `db:"business_license_url"`
	Verified           bool      `db:"verified"`
	ReputationScore    float64   `db:"reputation_score"`
	CreatedAt          time.Time `db:"created_at"`
	UpdatedAt          time.Time `db:"updated_at"`
}

type credentialsRow struct {
	profileRow
	PasswordHash string `db:"password_hash"`
}

func (row profileRow) toDomain() domain.Profile {
	return domain.Profile{
		ID:                 row.ID,
		Email:              row.Email,
		FullName:           row.FullName,
		CNICNumber:         row.CNICNumber,
		BusinessName:       row.BusinessName,
		BusinessType:       row.BusinessType,
		BusinessAddress:    row.BusinessAddress,
		Phone:              row.Phone,
		NTNNumber:          row.NTNNumber,
		CNICPhotoURL:       row.CNICPhotoURL,
		BusinessLicenseURL: row.BusinessLicenseURL,
		Verified:           row.Verified,
		ReputationScore:    row.ReputationScore,
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
	}
}
