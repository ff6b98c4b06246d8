package processor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/resource-hub/internal/domain/resource"
	"github.com/DjordjeVuckovic/resource-hub/internal/pipeline"
	"github.com/DjordjeVuckovic/resource-hub/internal/storage"
)

// Indexer replaces a stored dataset.
type Indexer interface {
	Replace(ctx context.Context, kind resource.Kind, ds storage.Dataset, records []resource.RawRecord) error
}

// PipelineConfig defines configuration for the import pipeline
type PipelineConfig struct {
	Name        string
	Kinds       []resource.Kind
	Datasets    []storage.Dataset
	DropInvalid bool
}

// ImportPipeline copies datasets from a content source into a database backend.
type ImportPipeline struct {
	source  storage.DatasetLoader
	indexer Indexer
	config  *PipelineConfig
}

type PipelineOption func(pipeline *ImportPipeline)

// WithKinds restricts the import to the given kinds
func WithKinds(kinds ...resource.Kind) PipelineOption {
	return func(p *ImportPipeline) {
		p.config.Kinds = kinds
	}
}

// WithDatasets restricts the import to the given datasets
func WithDatasets(datasets ...storage.Dataset) PipelineOption {
	return func(p *ImportPipeline) {
		p.config.Datasets = datasets
	}
}

// WithDropInvalid skips records that would never be listed because they lack
// an id, title or date.
func WithDropInvalid() PipelineOption {
	return func(p *ImportPipeline) {
		p.config.DropInvalid = true
	}
}

func NewImportPipeline(source storage.DatasetLoader, indexer Indexer, opts ...PipelineOption) *ImportPipeline {
	p := &ImportPipeline{
		source:  source,
		indexer: indexer,
		config: &PipelineConfig{
			Name:     "import-pipeline",
			Kinds:    resource.Kinds,
			Datasets: []storage.Dataset{storage.Canonical, storage.Custom},
		},
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Run imports every configured dataset. A failing dataset does not stop the
// others; all failures are returned together.
func (p *ImportPipeline) Run(ctx context.Context) error {
	start := time.Now()
	slog.Info("🛫 Starting pipeline run",
		"pipeline", p.config.Name,
		"kinds", p.config.Kinds,
		"drop_invalid", p.config.DropInvalid,
	)

	var errs []error
	imported := 0
	for _, kind := range p.config.Kinds {
		for _, ds := range p.config.Datasets {
			if err := ctx.Err(); err != nil {
				return err
			}

			n, err := p.importDataset(ctx, kind, ds)
			if err != nil {
				slog.Error("Error importing dataset", "error", err, "kind", kind, "dataset", ds, "pipeline", p.config.Name)
				errs = append(errs, err)
				continue
			}
			imported += n
		}
	}

	runErr := errors.Join(errs...)
	slog.Info("Pipeline run completed",
		"pipeline", p.config.Name,
		"imported", imported,
		"duration", time.Since(start),
		"error", runErr,
	)
	return runErr
}

func (p *ImportPipeline) importDataset(ctx context.Context, kind resource.Kind, ds storage.Dataset) (int, error) {
	spec, err := resource.SpecFor(kind)
	if err != nil {
		return 0, err
	}

	records, err := p.source.Load(ctx, kind, ds)
	if err != nil {
		return 0, fmt.Errorf("load %s/%s: %w", kind, ds, err)
	}

	kept := records[:0:0]
	for _, raw := range records {
		if _, ok := pipeline.Transform(spec, raw); !ok {
			slog.Warn("Record would be rejected at listing time",
				"kind", kind,
				"dataset", ds,
				"id", raw.String("id"),
				"dropped", p.config.DropInvalid,
			)
			if p.config.DropInvalid {
				continue
			}
		}
		kept = append(kept, raw)
	}

	if err := p.indexer.Replace(ctx, kind, ds, kept); err != nil {
		return 0, fmt.Errorf("replace %s/%s: %w", kind, ds, err)
	}

	slog.Debug("Dataset imported", "kind", kind, "dataset", ds, "count", len(kept), "pipeline", p.config.Name)
	return len(kept), nil
}
