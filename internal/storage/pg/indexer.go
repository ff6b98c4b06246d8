package pg

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/DjordjeVuckovic/resource-hub/internal/domain/resource"
	"github.com/DjordjeVuckovic/resource-hub/internal/storage"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Indexer struct {
	db *pgxpool.Pool
}

func NewIndexer(pool *Pool) *Indexer {
	return &Indexer{db: pool.db}
}

// Replace swaps the stored dataset for records inside one transaction.
func (s *Indexer) Replace(ctx context.Context, kind resource.Kind, ds storage.Dataset, records []resource.RawRecord) error {
	rows := make([][]interface{}, len(records))
	now := time.Now()

	for i, rec := range records {
		payload, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("failed to marshal record %d: %w", i, err)
		}
		rows[i] = []interface{}{string(kind), string(ds), i, rec.String("id"), payload, now}
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM resources WHERE kind = $1 AND dataset = $2`, string(kind), string(ds)); err != nil {
		return fmt.Errorf("failed to clear %s/%s: %w", kind, ds, err)
	}

	_, err = tx.CopyFrom(
		ctx,
		pgx.Identifier{"resources"},
		[]string{"kind", "dataset", "position", "id", "payload", "imported_at"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("failed to bulk insert records: %w", err)
	}

	return tx.Commit(ctx)
}
