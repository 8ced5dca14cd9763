package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/saudaghar/marketplace-backend/internal/domain"
)

// pgCodes maps PostgreSQL SQLSTATE codes onto domain errors.
var pgCodes = map[string]error{
	"23505": domain.ErrAlreadyExists, // unique_violation, e.g. a second rating on one listing
	"23503": domain.ErrNotFound,      // foreign_key_violation, e.g. a message to a deleted listing
	"23514": domain.ErrValidation,    // check_violation
	"23502": domain.ErrValidation,    // not_null_violation
	"22001": domain.ErrValidation,    // string_data_right_truncation
	"22P02": domain.ErrValidation,    // invalid_text_representation
}

// MapError converts pgx/pgconn errors to domain errors, naming the entity and
// the violated constraint. Context cancellation passes through unmapped.
func MapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if mapped, ok := pgCodes[pgErr.Code]; ok {
			if pgErr.ConstraintName != "" {
				return fmt.Errorf("%s %s (%s): %w", entity, id, pgErr.ConstraintName, mapped)
			}
			return fmt.Errorf("%s %s: %w", entity, id, mapped)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern turns a user term into an ILIKE pattern that matches the
// term as a literal substring.
func ContainsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
