package in_mem

import (
	"context"
	"testing"

	"github.com/DjordjeVuckovic/resource-hub/internal/domain/resource"
	"github.com/DjordjeVuckovic/resource-hub/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemSource(t *testing.T) {
	src := NewInMemSource()
	ctx := context.Background()

	input := []resource.RawRecord{{"id": "a"}, {"id": "b"}}
	src.Put(resource.KindNews, storage.Custom, input)
	input[0] = resource.RawRecord{"id": "changed"}

	custom, err := src.LoadCustom(ctx, resource.KindNews)
	require.NoError(t, err)
	require.Len(t, custom, 2)
	assert.Equal(t, "a", custom[0].String("id"), "Put copies its input")

	custom[1] = resource.RawRecord{"id": "mutated"}
	again, err := src.LoadCustom(ctx, resource.KindNews)
	require.NoError(t, err)
	assert.Equal(t, "b", again[1].String("id"), "Load returns a copy")

	canonical, err := src.LoadCanonical(ctx, resource.KindNews)
	require.NoError(t, err)
	assert.Empty(t, canonical)
}
