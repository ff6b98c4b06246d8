package es

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/DjordjeVuckovic/resource-hub/internal/domain/resource"
	"github.com/DjordjeVuckovic/resource-hub/internal/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
)

// MaxDatasetSize bounds the records fetched for one dataset.
const MaxDatasetSize = 10_000

type Source struct {
	client    *elasticsearch.TypedClient
	indexName string
}

func NewSource(config ClientConfig) (*Source, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	return &Source{
		client:    client,
		indexName: config.IndexName,
	}, nil
}

func (s *Source) Load(ctx context.Context, kind resource.Kind, ds storage.Dataset) ([]resource.RawRecord, error) {
	asc := sortorder.Asc
	res, err := s.client.Search().
		Index(s.indexName).
		Query(datasetQuery(kind, ds)).
		Sort(&types.SortOptions{
			SortOptions: map[string]types.FieldSort{
				"position": {Order: &asc},
			},
		}).
		Size(MaxDatasetSize).
		Do(ctx)
	if err != nil {
		var esErr *types.ElasticsearchError
		if errors.As(err, &esErr) && esErr.Status == http.StatusNotFound {
			slog.Debug("Index not found, dataset is empty", "index", s.indexName, "kind", kind, "dataset", ds)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to search %s/%s: %w", kind, ds, err)
	}

	records := make([]resource.RawRecord, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var doc RecordDocument
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal document: %w", err)
		}
		if doc.Record != nil {
			records = append(records, doc.Record)
		}
	}

	slog.Debug("Loaded es dataset", "kind", kind, "dataset", ds, "count", len(records))
	return records, nil
}

func (s *Source) LoadCanonical(ctx context.Context, kind resource.Kind) ([]resource.RawRecord, error) {
	return s.Load(ctx, kind, storage.Canonical)
}

func (s *Source) LoadCustom(ctx context.Context, kind resource.Kind) ([]resource.RawRecord, error) {
	return s.Load(ctx, kind, storage.Custom)
}
