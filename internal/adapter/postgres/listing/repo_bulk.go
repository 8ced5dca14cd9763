package listing

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/saudaghar/marketplace-backend/internal/adapter/postgres"
	"github.com/saudaghar/marketplace-backend/internal/domain"
)

// BulkInsert inserts listings in one pgx.Batch. Rows whose id already exists
// are skipped. Returns the number of inserted rows.
func (r *Repo) BulkInsert(ctx context.Context, listings []domain.Listing) (int, error) {
	if len(listings) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, l := range listings {
		sql, args, err := postgres.Builder.
			Insert(tableName).
			Columns(columns...).
			Values(
				l.ID, l.UserID, l.MaterialName, string(l.Category), string(l.Condition), l.Quantity, l.Price,
				l.IsExchangeOnly, l.Location, l.City, l.Description, imagesOrEmpty(l.Images), l.ContactPreferences,
				string(l.Status), l.ViewsCount, string(l.ListingType), l.CreatedAt, l.UpdatedAt,
			).
			Suffix("ON CONFLICT (id) DO NOTHING").
			ToSql()
		if err != nil {
			return 0, fmt.Errorf("build listing bulk insert: %w", err)
		}
		batch.Queue(sql, args...)
	}

	results := postgres.QuerierFromCtx(ctx, r.db).SendBatch(ctx, batch)
	defer results.Close()

	inserted := 0
	for range listings {
		tag, err := results.Exec()
		if err != nil {
			return inserted, postgres.MapError(err, entity, uuid.Nil)
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}
