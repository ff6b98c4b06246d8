package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/DjordjeVuckovic/resource-hub/internal/domain/resource"
	"github.com/DjordjeVuckovic/resource-hub/internal/metrics"
	"github.com/DjordjeVuckovic/resource-hub/internal/storage"
)

var ErrNotFound = errors.New("resource not found")

// Query describes one listing request.
type Query struct {
	Criteria Criteria
	SortBy   string
	Order    Order
	Limit    int
	Debug    bool
}

// Debug describes the datasets behind a listing. Available facet values are
// taken from the resolved set before filtering.
type Debug struct {
	Regular   int
	Custom    int
	Total     int
	Filters   map[string]string
	Available map[string][]string
}

func (d Debug) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(d.Available)+4)
	for k, v := range d.Available {
		out[k] = v
	}
	out["regular"] = d.Regular
	out["custom"] = d.Custom
	out["total"] = d.Total
	out["filters"] = d.Filters
	return json.Marshal(out)
}

type Listing struct {
	Items []resource.Resource
	Debug *Debug
}

type Service struct {
	source  storage.Source
	metrics *metrics.Metrics
}

func NewService(source storage.Source, m *metrics.Metrics) *Service {
	if source == nil {
		source = storage.Empty{}
	}
	return &Service{source: source, metrics: m}
}

type resolvedSet struct {
	regular int
	custom  int
	items   []resource.Resource
}

// List runs the listing pipeline for one kind.
func (s *Service) List(ctx context.Context, kind resource.Kind, q Query) (*Listing, error) {
	spec, err := resource.SpecFor(kind)
	if err != nil {
		return nil, err
	}
	defer s.observe(spec.Collection, time.Now())

	set, err := s.resolveKinds(ctx, []resource.KindSpec{spec})
	if err != nil {
		return nil, err
	}
	return s.query(spec, set, q), nil
}

// ListAll runs the listing pipeline over every kind at once.
func (s *Service) ListAll(ctx context.Context, q Query) (*Listing, error) {
	defer s.observe(resource.AggregateSpec.Collection, time.Now())

	specs := make([]resource.KindSpec, 0, len(resource.Kinds))
	for _, k := range resource.Kinds {
		specs = append(specs, resource.MustSpec(k))
	}

	set, err := s.resolveKinds(ctx, specs)
	if err != nil {
		return nil, err
	}
	return s.query(resource.AggregateSpec, set, q), nil
}

// Get returns the resolved resource of kind whose id or slug equals key.
func (s *Service) Get(ctx context.Context, kind resource.Kind, key string) (*resource.Resource, error) {
	spec, err := resource.SpecFor(kind)
	if err != nil {
		return nil, err
	}

	set, err := s.resolveKinds(ctx, []resource.KindSpec{spec})
	if err != nil {
		return nil, err
	}
	for _, r := range set.items {
		if r.ID == key {
			return &r, nil
		}
	}
	for _, r := range set.items {
		if r.Slug == key {
			return &r, nil
		}
	}
	return nil, fmt.Errorf("%s %q: %w", kind, key, ErrNotFound)
}

func (s *Service) resolveKinds(ctx context.Context, specs []resource.KindSpec) (*resolvedSet, error) {
	var canonical, custom []resource.Resource
	for _, spec := range specs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		raw := s.safeLoad(ctx, spec.Kind, storage.Canonical, s.source.LoadCanonical)
		items, rejected := TransformAll(spec, raw)
		canonical = append(canonical, items...)
		s.rejected(spec.Kind, rejected)

		raw = s.safeLoad(ctx, spec.Kind, storage.Custom, s.source.LoadCustom)
		items, rejected = TransformAll(spec, raw)
		custom = append(custom, items...)
		s.rejected(spec.Kind, rejected)
	}

	return &resolvedSet{
		regular: len(canonical),
		custom:  len(custom),
		items:   Resolve(canonical, custom),
	}, nil
}

type loadFunc func(ctx context.Context, kind resource.Kind) ([]resource.RawRecord, error)

// safeLoad treats a failing or panicking dataset load as an empty dataset.
func (s *Service) safeLoad(ctx context.Context, kind resource.Kind, ds storage.Dataset, load loadFunc) (records []resource.RawRecord) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Dataset load panicked, serving empty dataset", "kind", kind, "dataset", ds, "panic", r)
			s.loadFailed(kind, ds)
			records = nil
		}
	}()

	records, err := load(ctx, kind)
	if err != nil {
		slog.Error("Failed to load dataset, serving empty dataset", "kind", kind, "dataset", ds, "error", err)
		s.loadFailed(kind, ds)
		return nil
	}
	return records
}

func (s *Service) query(spec resource.KindSpec, set *resolvedSet, q Query) *Listing {
	items := Filter(set.items, spec, q.Criteria)
	items = Sort(items, spec, q.SortBy, q.Order)
	items = Limit(items, q.Limit)

	listing := &Listing{Items: items}
	if q.Debug {
		listing.Debug = &Debug{
			Regular:   set.regular,
			Custom:    set.custom,
			Total:     len(set.items),
			Filters:   q.Criteria.Active(),
			Available: AvailableFacets(spec, set.items),
		}
	}
	return listing
}

// AvailableFacets collects the distinct tags and facet values of items.
func AvailableFacets(spec resource.KindSpec, items []resource.Resource) map[string][]string {
	out := make(map[string][]string, len(spec.Facets)+1)

	var tags []string
	for _, r := range items {
		tags = append(tags, r.Tags...)
	}
	out["availableTags"] = distinct(tags)

	for _, f := range spec.Facets {
		var values []string
		for _, r := range items {
			values = append(values, f.Values(r)...)
		}
		out[f.DebugKey] = distinct(values)
	}
	return out
}

func distinct(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

func (s *Service) observe(collection string, start time.Time) {
	if s.metrics == nil {
		return
	}
	s.metrics.RequestsTotal.WithLabelValues(collection).Inc()
	s.metrics.PipelineDuration.WithLabelValues(collection).Observe(time.Since(start).Seconds())
}

func (s *Service) loadFailed(kind resource.Kind, ds storage.Dataset) {
	if s.metrics == nil {
		return
	}
	s.metrics.LoadFailuresTotal.WithLabelValues(string(kind), string(ds)).Inc()
}

func (s *Service) rejected(kind resource.Kind, n int) {
	if s.metrics == nil || n == 0 {
		return
	}
	s.metrics.RejectedRecordsTotal.WithLabelValues(string(kind)).Add(float64(n))
}
