package file

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/DjordjeVuckovic/resource-hub/internal/domain/resource"
	"github.com/DjordjeVuckovic/resource-hub/internal/storage"
	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"
)

// Source reads datasets from a content directory laid out as
//
//	<root>/<kind>/canonical.json|yaml|yml
//	<root>/<kind>/canonical/*.md
//	<root>/<kind>/custom.json|yaml|yml
//	<root>/<kind>/custom/*.md
//
// Every file is optional.
type Source struct {
	fsys     fs.FS
	markdown goldmark.Markdown
}

func NewSource(root string) *Source {
	return NewSourceFS(os.DirFS(root))
}

func NewSourceFS(fsys fs.FS) *Source {
	return &Source{
		fsys:     fsys,
		markdown: goldmark.New(),
	}
}

var datasetExtensions = []string{".json", ".yaml", ".yml"}

func (s *Source) Load(ctx context.Context, kind resource.Kind, ds storage.Dataset) ([]resource.RawRecord, error) {
	var records []resource.RawRecord

	for _, ext := range datasetExtensions {
		name := fmt.Sprintf("%s/%s%s", kind, ds, ext)
		data, err := fs.ReadFile(s.fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}

		decoded, err := decodeDataset(ext, data)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
		slog.Debug("Loaded dataset file", "file", name, "count", len(decoded))
		records = append(records, decoded...)
	}

	docs, err := s.loadMarkdown(ctx, fmt.Sprintf("%s/%s", kind, ds))
	if err != nil {
		return nil, err
	}

	return append(records, docs...), nil
}

func (s *Source) LoadCanonical(ctx context.Context, kind resource.Kind) ([]resource.RawRecord, error) {
	return s.Load(ctx, kind, storage.Canonical)
}

func (s *Source) LoadCustom(ctx context.Context, kind resource.Kind) ([]resource.RawRecord, error) {
	return s.Load(ctx, kind, storage.Custom)
}

func decodeDataset(ext string, data []byte) ([]resource.RawRecord, error) {
	var maps []map[string]any
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &maps); err != nil {
			return nil, err
		}
	default:
		// nested mappings must stay map[string]any, so decode plain maps
		dec := yaml.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&maps); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	}
	return resource.Records(maps), nil
}

func (s *Source) loadMarkdown(ctx context.Context, dir string) ([]resource.RawRecord, error) {
	entries, err := fs.ReadDir(s.fsys, dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".md") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	records := make([]resource.RawRecord, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path := dir + "/" + name
		data, err := fs.ReadFile(s.fsys, path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		rec, err := s.parseDocument(strings.TrimSuffix(name, filepath.Ext(name)), data)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// parseDocument reads the front matter as the record and renders the body
// into the English content variant.
func (s *Source) parseDocument(name string, data []byte) (resource.RawRecord, error) {
	meta := make(map[string]any)
	body, err := frontmatter.Parse(bytes.NewReader(data), &meta)
	if err != nil {
		return nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	rec := resource.RawRecord(meta)
	if rec.String("id") == "" {
		rec["id"] = name
	}

	if len(bytes.TrimSpace(body)) > 0 {
		var html bytes.Buffer
		if err := s.markdown.Convert(body, &html); err != nil {
			return nil, fmt.Errorf("render markdown: %w", err)
		}
		rec["content"] = map[string]any{string(resource.LangEnglish): html.String()}
	}
	return rec, nil
}
