package pg

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultAppName = "resource-hub"

// PoolConfig configures the resources database pool. MaxConns of zero keeps
// the pgxpool default.
type PoolConfig struct {
	ConnStr  string
	MaxConns int
	AppName  string
}

// Pool is the pgx pool shared by the resource source, the indexer and the
// health checker.
type Pool struct {
	db *pgxpool.Pool
}

func NewPool(ctx context.Context, cfg PoolConfig) (*Pool, error) {
	poolCfg, err := parsePoolConfig(cfg)
	if err != nil {
		return nil, err
	}

	db, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("open resources pool: %w", err)
	}
	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping resources database: %w", err)
	}

	return &Pool{db: db}, nil
}

func parsePoolConfig(cfg PoolConfig) (*pgxpool.Config, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.ConnStr)
	if err != nil {
		return nil, fmt.Errorf("parse PG_CONNECTION_STRING: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = int32(cfg.MaxConns)
	}

	appName := cfg.AppName
	if appName == "" {
		appName = defaultAppName
	}
	if _, ok := poolCfg.ConnConfig.RuntimeParams["application_name"]; !ok {
		poolCfg.ConnConfig.RuntimeParams["application_name"] = appName
	}
	return poolCfg, nil
}

func (p *Pool) Close() {
	p.db.Close()
}

func (p *Pool) Ping(ctx context.Context) error {
	return p.db.Ping(ctx)
}
