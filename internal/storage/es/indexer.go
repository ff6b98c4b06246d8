package es

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/DjordjeVuckovic/resource-hub/internal/domain/resource"
	"github.com/DjordjeVuckovic/resource-hub/internal/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esutil"
)

type Indexer struct {
	client    *elasticsearch.TypedClient
	indexName string
}

func NewIndexer(ctx context.Context, config ClientConfig) (*Indexer, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	idx := &Indexer{client: client, indexName: config.IndexName}
	if err := idx.EnsureIndex(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}
	return idx, nil
}

func (e *Indexer) EnsureIndex(ctx context.Context) error {
	exists, err := e.client.Indices.Exists(e.indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}
	if exists {
		return nil
	}

	mappings := buildMapping()
	res, err := e.client.Indices.Create(e.indexName).Mappings(&mappings).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	if !res.Acknowledged {
		return fmt.Errorf("index creation was not acknowledged")
	}

	slog.Info("Index created successfully", "index", e.indexName)
	return nil
}

// Replace deletes the stored dataset and bulk indexes records in its place.
func (e *Indexer) Replace(ctx context.Context, kind resource.Kind, ds storage.Dataset, records []resource.RawRecord) error {
	if _, err := e.client.DeleteByQuery(e.indexName).Query(datasetQuery(kind, ds)).Refresh(true).Do(ctx); err != nil {
		return fmt.Errorf("failed to clear %s/%s: %w", kind, ds, err)
	}
	if len(records) == 0 {
		return nil
	}

	bi, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Index:         e.indexName,
		Client:        e.client,
		NumWorkers:    2,
		FlushBytes:    5e+6,
		FlushInterval: 30 * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to create bulk indexer: %w", err)
	}

	var failed atomic.Int64
	for i, rec := range records {
		body, err := json.Marshal(RecordDocument{
			Kind:     string(kind),
			Dataset:  string(ds),
			Position: i,
			RecordID: rec.String("id"),
			Record:   rec,
		})
		if err != nil {
			return fmt.Errorf("failed to marshal record %d: %w", i, err)
		}

		err = bi.Add(ctx, esutil.BulkIndexerItem{
			Action:     "index",
			DocumentID: documentID(kind, ds, i),
			Body:       bytes.NewReader(body),
			OnFailure: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
				failed.Add(1)
				if err != nil {
					slog.Error("bulk index error", "error", err, "id", item.DocumentID)
				} else {
					slog.Error("bulk index error", "status", res.Status, "reason", res.Error.Reason, "id", item.DocumentID)
				}
			},
		})
		if err != nil {
			return fmt.Errorf("failed to add record %d to bulk indexer: %w", i, err)
		}
	}

	if err := bi.Close(ctx); err != nil {
		return fmt.Errorf("failed to close bulk indexer: %w", err)
	}
	if n := failed.Load(); n > 0 {
		return fmt.Errorf("failed to index %d out of %d records", n, len(records))
	}

	if _, err := e.client.Indices.Refresh().Index(e.indexName).Do(ctx); err != nil {
		return fmt.Errorf("failed to refresh index: %w", err)
	}

	slog.Info("Dataset indexed", "kind", kind, "dataset", ds, "count", len(records), "index", e.indexName)
	return nil
}
