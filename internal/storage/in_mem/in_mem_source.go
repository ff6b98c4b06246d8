package in_mem

import (
	"context"
	"log/slog"
	"sync"

	"github.com/DjordjeVuckovic/resource-hub/internal/domain/resource"
	"github.com/DjordjeVuckovic/resource-hub/internal/storage"
)

type key struct {
	kind    resource.Kind
	dataset storage.Dataset
}

// InMemSource keeps datasets in memory. Loads return copies of the stored slices.
type InMemSource struct {
	storageLock sync.RWMutex
	storage     map[key][]resource.RawRecord
}

func NewInMemSource() *InMemSource {
	return &InMemSource{
		storage: make(map[key][]resource.RawRecord),
	}
}

// Put replaces a dataset.
func (s *InMemSource) Put(kind resource.Kind, ds storage.Dataset, records []resource.RawRecord) {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	s.storage[key{kind, ds}] = append([]resource.RawRecord(nil), records...)
	slog.Debug("Stored in-memory dataset", "kind", kind, "dataset", ds, "count", len(records))
}

func (s *InMemSource) Load(_ context.Context, kind resource.Kind, ds storage.Dataset) ([]resource.RawRecord, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	records := s.storage[key{kind, ds}]
	return append([]resource.RawRecord(nil), records...), nil
}

func (s *InMemSource) LoadCanonical(ctx context.Context, kind resource.Kind) ([]resource.RawRecord, error) {
	return s.Load(ctx, kind, storage.Canonical)
}

func (s *InMemSource) LoadCustom(ctx context.Context, kind resource.Kind) ([]resource.RawRecord, error) {
	return s.Load(ctx, kind, storage.Custom)
}
