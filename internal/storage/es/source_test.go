//go:build integration

package es

import (
	"context"
	"testing"

	"github.com/DjordjeVuckovic/resource-hub/internal/domain/resource"
	"github.com/DjordjeVuckovic/resource-hub/internal/storage"
	pkgtesting "github.com/DjordjeVuckovic/resource-hub/pkg/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_Integration(t *testing.T) {
	ctx := context.Background()
	container := pkgtesting.NewESContainer(ctx, t)
	cfg := ClientConfig{
		Addresses: []string{container.Address},
		IndexName: "resources_test",
	}

	hc, err := NewHealthChecker(cfg)
	require.NoError(t, err)
	require.True(t, hc.Healthy(ctx))

	src, err := NewSource(cfg)
	require.NoError(t, err)

	t.Run("missing index is empty", func(t *testing.T) {
		records, err := src.LoadCanonical(ctx, resource.KindNews)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	indexer, err := NewIndexer(ctx, cfg)
	require.NoError(t, err)

	t.Run("replace keeps input order", func(t *testing.T) {
		err := indexer.Replace(ctx, resource.KindNews, storage.Custom, []resource.RawRecord{
			{"id": "n2", "title": map[string]any{"en": "Second"}, "date": "2024-02-01"},
			{"id": "n1", "title": map[string]any{"en": "First"}, "date": "2024-01-01", "tags": []any{"events"}},
		})
		require.NoError(t, err)

		records, err := src.LoadCustom(ctx, resource.KindNews)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "n2", records[0].String("id"))
		assert.Equal(t, []string{"events"}, records[1].Strings("tags"))

		canonical, err := src.LoadCanonical(ctx, resource.KindNews)
		require.NoError(t, err)
		assert.Empty(t, canonical, "datasets are isolated")
	})

	t.Run("replace swaps the whole dataset", func(t *testing.T) {
		err := indexer.Replace(ctx, resource.KindNews, storage.Custom, []resource.RawRecord{
			{"id": "n3", "title": "Third", "date": "2024-03-01"},
		})
		require.NoError(t, err)

		records, err := src.LoadCustom(ctx, resource.KindNews)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "n3", records[0].String("id"))
	})
}
