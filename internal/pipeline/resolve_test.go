package pipeline

import (
	"testing"

	"github.com/DjordjeVuckovic/resource-hub/internal/domain/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func res(id, title, date string) resource.Resource {
	return resource.Resource{
		ID:    id,
		Title: resource.MultilingualText{"en": title},
		Date:  date,
		Tags:  []string{},
	}
}

func ids(items []resource.Resource) []string {
	out := make([]string, len(items))
	for i, r := range items {
		out[i] = r.ID
	}
	return out
}

func TestResolve(t *testing.T) {
	t.Run("custom replaces canonical entirely", func(t *testing.T) {
		canonical := []resource.Resource{res("a", "A", "2024-01-01"), res("b", "B", "2024-02-01")}
		canonical[0].Featured = true
		custom := []resource.Resource{res("a", "A2", "2024-03-01")}

		out := Resolve(canonical, custom)

		require.Equal(t, []string{"b", "a"}, ids(out))
		assert.Equal(t, "A2", out[1].Title.Get(resource.LangEnglish))
		assert.False(t, out[1].Featured, "fields are not merged from the canonical record")
	})

	t.Run("canonical then custom preserving input order", func(t *testing.T) {
		canonical := []resource.Resource{res("c", "C", "2024-01-01"), res("a", "A", "2024-01-01")}
		custom := []resource.Resource{res("z", "Z", "2024-01-01"), res("y", "Y", "2024-01-01")}

		assert.Equal(t, []string{"c", "a", "z", "y"}, ids(Resolve(canonical, custom)))
	})

	t.Run("duplicate custom ids keep the last occurrence", func(t *testing.T) {
		custom := []resource.Resource{res("a", "first", "2024-01-01"), res("b", "B", "2024-01-01"), res("a", "last", "2024-01-01")}

		out := Resolve(nil, custom)

		require.Equal(t, []string{"a", "b"}, ids(out))
		assert.Equal(t, "last", out[0].Title.Get(resource.LangEnglish))
	})

	t.Run("empty inputs", func(t *testing.T) {
		out := Resolve(nil, nil)
		assert.NotNil(t, out)
		assert.Empty(t, out)
	})

	t.Run("does not mutate inputs", func(t *testing.T) {
		canonical := []resource.Resource{res("a", "A", "2024-01-01")}
		custom := []resource.Resource{res("a", "A2", "2024-01-01")}
		_ = Resolve(canonical, custom)
		assert.Equal(t, "A", canonical[0].Title.Get(resource.LangEnglish))
	})
}

func TestResolve_UniqueIDs(t *testing.T) {
	canonical := []resource.Resource{
		res("a", "A", "2024-01-01"), res("b", "B", "2024-01-01"), res("a", "A again", "2024-01-01"), res("c", "C", "2024-01-01"),
	}
	custom := []resource.Resource{res("c", "C2", "2024-01-01"), res("d", "D", "2024-01-01"), res("d", "D2", "2024-01-01")}

	out := Resolve(canonical, custom)

	seen := make(map[string]bool)
	for _, r := range out {
		assert.False(t, seen[r.ID], "duplicate id %s", r.ID)
		seen[r.ID] = true
	}
	assert.Len(t, out, 4)

	for _, r := range out {
		if r.ID == "c" {
			assert.Equal(t, "C2", r.Title.Get(resource.LangEnglish))
		}
	}
}
