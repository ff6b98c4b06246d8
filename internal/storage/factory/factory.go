package factory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/resource-hub/internal/domain/resource"
	"github.com/DjordjeVuckovic/resource-hub/internal/storage"
	"github.com/DjordjeVuckovic/resource-hub/internal/storage/es"
	"github.com/DjordjeVuckovic/resource-hub/internal/storage/file"
	"github.com/DjordjeVuckovic/resource-hub/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/resource-hub/internal/storage/pg"
	"github.com/DjordjeVuckovic/resource-hub/internal/storage/s3"
	pkgserver "github.com/DjordjeVuckovic/resource-hub/pkg/server"
)

// Storage is the composed source of both datasets. It owns the backend
// connections and reports healthy when every backend does.
type Storage struct {
	storage.Source

	checkers pkgserver.HealthCheckers
	closers  []func()
}

func (s *Storage) Healthy(ctx context.Context) bool {
	return s.checkers.Healthy(ctx)
}

func (s *Storage) Close() {
	for _, c := range s.closers {
		c()
	}
}

// NewSource builds the canonical and custom backends. A backend type shared
// by both datasets is opened once.
func NewSource(ctx context.Context, cfg *StorageConfig) (*Storage, error) {
	s := &Storage{}
	opened := make(map[storage.Type]storage.Source)

	open := func(t storage.Type) (storage.Source, error) {
		if src, ok := opened[t]; ok {
			return src, nil
		}
		src, err := s.open(ctx, t, cfg)
		if err != nil {
			return nil, err
		}
		opened[t] = src
		return src, nil
	}

	canonical, err := open(cfg.Type)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("failed to open canonical storage: %w", err)
	}
	custom, err := open(cfg.CustomType)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("failed to open custom storage: %w", err)
	}

	s.Source = storage.Split{Canonical: canonical, Custom: custom}
	slog.Info("Storage initialized", "canonical", cfg.Type, "custom", cfg.CustomType)
	return s, nil
}

func (s *Storage) open(ctx context.Context, t storage.Type, cfg *StorageConfig) (storage.Source, error) {
	switch t {
	case storage.File:
		return file.NewSource(cfg.ContentDir), nil

	case storage.PG:
		pool, err := pg.NewPool(ctx, cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}
		s.checkers = append(s.checkers, pg.NewHealthChecker(pool))
		s.closers = append(s.closers, pool.Close)
		return pg.NewSource(pool), nil

	case storage.ES:
		src, err := es.NewSource(cfg.Es)
		if err != nil {
			return nil, err
		}
		hc, err := es.NewHealthChecker(cfg.Es)
		if err != nil {
			return nil, err
		}
		s.checkers = append(s.checkers, hc)
		return src, nil

	case storage.S3:
		return s3.NewSource(cfg.S3)

	case storage.InMem:
		return in_mem.NewInMemSource(), nil

	case storage.None:
		return storage.Empty{}, nil

	default:
		return nil, fmt.Errorf(string(storage.ErrUnsupportedSource), t)
	}
}

// Indexer replaces a stored dataset. Only database backends can be written.
type Indexer interface {
	Replace(ctx context.Context, kind resource.Kind, ds storage.Dataset, records []resource.RawRecord) error
}

func NewIndexer(ctx context.Context, t storage.Type, cfg *StorageConfig) (Indexer, func(), error) {
	switch t {
	case storage.PG:
		pool, err := pg.NewPool(ctx, cfg.Pg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}
		return pg.NewIndexer(pool), pool.Close, nil

	case storage.ES:
		idx, err := es.NewIndexer(ctx, cfg.Es)
		if err != nil {
			return nil, nil, err
		}
		return idx, func() {}, nil

	default:
		return nil, nil, fmt.Errorf(string(storage.ErrUnsupportedSource), t)
	}
}
