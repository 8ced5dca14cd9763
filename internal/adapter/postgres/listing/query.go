package listing

import (
	"github.com/Masterminds/squirrel"

	postgres "github.com/saudaghar/marketplace-backend/internal/adapter/postgres"
	"github.com/saudaghar/marketplace-backend/internal/domain"
)

const (
	tableName = "listings"

	defaultFilterLimit = 50
	maxFilterLimit     = 200
)

var columns = []string{
	"id", "user_id", "material_name", "category", "condition", "quantity", "price",
	"is_exchange_only", "location", "city", "description", "images", "contact_preferences",
	"status", "views_count", "listing_type", "created_at", "updated_at",
}

func activeOnly() squirrel.Eq {
	return squirrel.Eq{"status": string(domain.ListingStatusActive)}
}

// locationPredicate matches the city by case-insensitive equality or the
// free-text location by substring.
func locationPredicate(term string) squirrel.Sqlizer {
	return squirrel.Or{
		squirrel.Expr("LOWER(city) = LOWER(?)", term),
		squirrel.ILike{"location": postgres.ContainsPattern(term)},
	}
}

// textPredicate matches material name, description or category by substring.
func textPredicate(term string) squirrel.Sqlizer {
	pattern := postgres.ContainsPattern(term)
	return squirrel.Or{
		squirrel.ILike{"material_name": pattern},
		squirrel.ILike{"description": pattern},
		squirrel.ILike{"category": pattern},
	}
}

// buildSearch composes the remote half of a listings search: active only,
// optional location and text predicates, newest first, capped.
func buildSearch(q domain.ListingQuery) squirrel.SelectBuilder {
	b := postgres.Builder.
		Select(columns...).
		From(tableName).
		Where(activeOnly())

	if q.LocationTerm != "" {
		b = b.Where(locationPredicate(q.LocationTerm))
	}
	if q.TextTerm != "" {
		b = b.Where(textPredicate(q.TextTerm))
	}

	b = b.OrderBy("created_at DESC", "id DESC")
	if q.Limit > 0 {
		b = b.Limit(uint64(q.Limit))
	}
	return b
}

// buildFilter composes the advanced search page query.
func buildFilter(f domain.ListingFilter) squirrel.SelectBuilder {
	b := postgres.Builder.
		Select(columns...).
		From(tableName).
		Where(activeOnly())

	if f.City != "" {
		b = b.Where(squirrel.Expr("LOWER(city) = LOWER(?)", f.City))
	}
	if f.Location != "" {
		b = b.Where(squirrel.ILike{"location": postgres.ContainsPattern(f.Location)})
	}
	if f.Category != "" {
		b = b.Where(squirrel.Eq{"category": string(f.Category)})
	}
	if f.Condition != "" {
		b = b.Where(squirrel.Eq{"condition": string(f.Condition)})
	}
	if f.ListingType != "" {
		b = b.Where(squirrel.Eq{"listing_type": string(f.ListingType)})
	}
	if f.MinPrice != nil {
		b = b.Where(squirrel.GtOrEq{"price": *f.MinPrice})
	}
	if f.MaxPrice != nil {
		b = b.Where(squirrel.LtOrEq{"price": *f.MaxPrice})
	}
	if f.Query != "" {
		pattern := postgres.ContainsPattern(f.Query)
		b = b.Where(squirrel.Or{
			squirrel.ILike{"material_name": pattern},
			squirrel.ILike{"description": pattern},
		})
	}

	limit := f.Limit
	if limit <= 0 {
		limit = defaultFilterLimit
	}
	if limit > maxFilterLimit {
		limit = maxFilterLimit
	}

	return b.OrderBy("created_at DESC", "id DESC").Limit(uint64(limit))
}
