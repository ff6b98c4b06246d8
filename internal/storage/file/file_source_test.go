package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/DjordjeVuckovic/resource-hub/internal/domain/resource"
	"github.com/DjordjeVuckovic/resource-hub/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_LoadJSONAndYAML(t *testing.T) {
	fsys := fstest.MapFS{
		"blog/canonical.json": {Data: []byte(`[
			{"id": "a", "title": {"en": "A", "hu": "Á"}, "date": "2024-01-01", "tags": ["x"]},
			{"id": "b", "title": {"en": "B"}, "date": "2024-02-01"}
		]`)},
		"blog/custom.yaml": {Data: []byte(`
- id: a
  title:
    en: A2
  date: "2024-03-01"
  author:
    name: Anna
    role:
      en: Editor
`)},
	}
	src := NewSourceFS(fsys)
	ctx := context.Background()

	canonical, err := src.LoadCanonical(ctx, resource.KindBlog)
	require.NoError(t, err)
	require.Len(t, canonical, 2)
	assert.Equal(t, "a", canonical[0].String("id"))
	assert.Equal(t, "Á", canonical[0].Multilingual("title").Get(resource.LangHungarian))

	custom, err := src.LoadCustom(ctx, resource.KindBlog)
	require.NoError(t, err)
	require.Len(t, custom, 1)
	assert.Equal(t, "A2", custom[0].Multilingual("title").Get(resource.LangEnglish))
	assert.Equal(t, "Anna", custom[0].Author("author").Name)
	assert.Equal(t, "Editor", custom[0].Author("author").Role.Get(resource.LangEnglish))
}

func TestSource_MissingFilesAreEmpty(t *testing.T) {
	src := NewSourceFS(fstest.MapFS{})

	records, err := src.LoadCustom(context.Background(), resource.KindUpdates)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSource_MalformedFileFails(t *testing.T) {
	src := NewSourceFS(fstest.MapFS{
		"news/canonical.json": {Data: []byte(`{"not": "a list"`)},
	})

	_, err := src.Load(context.Background(), resource.KindNews, storage.Canonical)
	assert.ErrorContains(t, err, "news/canonical.json")
}

func TestSource_Markdown(t *testing.T) {
	fsys := fstest.MapFS{
		"case-studies/custom/b-crates.md": {Data: []byte(`---
title: Reusable crates
date: "2024-05-01"
client: Logistics Co
tags: [logistics, sustainability]
---
# Results

Crates now last **ten** years.
`)},
		"case-studies/custom/a-caps.md": {Data: []byte(`---
id: cs-caps
title:
  en: Bottle caps
  de: Flaschenverschlüsse
date: "2024-04-01"
---
`)},
		"case-studies/custom/notes.txt": {Data: []byte("ignored")},
	}
	src := NewSourceFS(fsys)

	records, err := src.LoadCustom(context.Background(), resource.KindCaseStudies)
	require.NoError(t, err)
	require.Len(t, records, 2)

	caps := records[0]
	assert.Equal(t, "cs-caps", caps.String("id"))
	assert.Equal(t, "Flaschenverschlüsse", caps.Multilingual("title").Get(resource.LangGerman))
	assert.Nil(t, caps["content"])

	crates := records[1]
	assert.Equal(t, "b-crates", crates.String("id"), "id defaults to the file name")
	assert.Equal(t, "Logistics Co", crates.String("client"))
	assert.Equal(t, []string{"logistics", "sustainability"}, crates.Strings("tags"))
	html := crates.Multilingual("content").Get(resource.LangEnglish)
	assert.Contains(t, html, "<h1>Results</h1>")
	assert.Contains(t, html, "<strong>ten</strong>")
}

func TestNewSource_Directory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "updates"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "updates", "canonical.yml"), []byte(`
- id: u1
  title: Firmware 2.0
  date: "2024-06-01"
  priority: critical
`), 0o644))

	records, err := NewSource(dir).LoadCanonical(context.Background(), resource.KindUpdates)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "critical", records[0].String("priority"))
}
