package storage

import (
	"context"

	"github.com/DjordjeVuckovic/resource-hub/internal/domain/resource"
)

type Dataset string

const (
	Canonical Dataset = "canonical"
	Custom    Dataset = "custom"
)

// Source provides the raw datasets of a content kind. A dataset that does
// not exist yields no records and no error.
type Source interface {
	LoadCanonical(ctx context.Context, kind resource.Kind) ([]resource.RawRecord, error)
	LoadCustom(ctx context.Context, kind resource.Kind) ([]resource.RawRecord, error)
}

// DatasetLoader is implemented by backends that address both datasets the same way.
type DatasetLoader interface {
	Load(ctx context.Context, kind resource.Kind, dataset Dataset) ([]resource.RawRecord, error)
}

type loaderSource struct {
	l DatasetLoader
}

// FromLoader adapts a DatasetLoader to a Source.
func FromLoader(l DatasetLoader) Source {
	return loaderSource{l: l}
}

func (s loaderSource) LoadCanonical(ctx context.Context, kind resource.Kind) ([]resource.RawRecord, error) {
	return s.l.Load(ctx, kind, Canonical)
}

func (s loaderSource) LoadCustom(ctx context.Context, kind resource.Kind) ([]resource.RawRecord, error) {
	return s.l.Load(ctx, kind, Custom)
}

// Empty is a Source without records.
type Empty struct{}

func (Empty) LoadCanonical(context.Context, resource.Kind) ([]resource.RawRecord, error) {
	return nil, nil
}

func (Empty) LoadCustom(context.Context, resource.Kind) ([]resource.RawRecord, error) {
	return nil, nil
}

// Split reads canonical records from one source and overrides from another.
type Split struct {
	Canonical Source
	Custom    Source
}

func (s Split) LoadCanonical(ctx context.Context, kind resource.Kind) ([]resource.RawRecord, error) {
	if s.Canonical == nil {
		return nil, nil
	}
	return s.Canonical.LoadCanonical(ctx, kind)
}

func (s Split) LoadCustom(ctx context.Context, kind resource.Kind) ([]resource.RawRecord, error) {
	if s.Custom == nil {
		return nil, nil
	}
	return s.Custom.LoadCustom(ctx, kind)
}
