package pg

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/resource-hub/internal/domain/resource"
	"github.com/DjordjeVuckovic/resource-hub/internal/storage"
	"github.com/jackc/pgx/v5/pgxpool"
)

const loadSQL = `
	SELECT payload
	FROM resources
	WHERE kind = $1 AND dataset = $2
	ORDER BY position
`

// Source reads datasets from the resources table.
type Source struct {
	db *pgxpool.Pool
}

func NewSource(pool *Pool) *Source {
	return &Source{db: pool.db}
}

func (s *Source) Load(ctx context.Context, kind resource.Kind, ds storage.Dataset) ([]resource.RawRecord, error) {
	rows, err := s.db.Query(ctx, loadSQL, string(kind), string(ds))
	if err != nil {
		return nil, fmt.Errorf("failed to query %s/%s: %w", kind, ds, err)
	}
	defer rows.Close()

	var records []resource.RawRecord
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}

		var rec resource.RawRecord
		if err := json.Unmarshal(payload, &rec); err != nil {
			return nil, fmt.Errorf("failed to unmarshal record payload: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	slog.Debug("Loaded pg dataset", "kind", kind, "dataset", ds, "count", len(records))
	return records, nil
}

func (s *Source) LoadCanonical(ctx context.Context, kind resource.Kind) ([]resource.RawRecord, error) {
	return s.Load(ctx, kind, storage.Canonical)
}

func (s *Source) LoadCustom(ctx context.Context, kind resource.Kind) ([]resource.RawRecord, error) {
	return s.Load(ctx, kind, storage.Custom)
}
