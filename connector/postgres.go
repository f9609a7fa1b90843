package connector

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/seam-db/seam/dialect"
)

type postgresProvider struct{}

func init() {
	Register("postgres", postgresProvider{})
}

func (postgresProvider) Dialect() dialect.Dialect {
	return dialect.NewPostgresDialect()
}

func (p postgresProvider) Connect(ctx context.Context, cfg Config) (Connection, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withPoolDefaults()

	dsn := NewDSNBuilder("postgres").
		Auth(cfg.Username, cfg.Password).
		Host(cfg.Host, cfg.Port).
		Database(cfg.Database).
		Param("sslmode", cfg.SSLMode).
		Params(cfg.Params).
		Build()

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("connector: parse postgres dsn: %w", err)
	}
	poolCfg.MaxConns = int32(cfg.Pool.MaxOpen)
	poolCfg.MaxConnLifetime = cfg.Pool.MaxLifetime
	poolCfg.MaxConnIdleTime = cfg.Pool.MaxIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connector: connect postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("connector: ping postgres: %w", err)
	}

	db := stdlib.OpenDBFromPool(pool)
	applyPool(db, cfg)
	return &sqlConnection{db: db, dialect: p.Dialect()}, nil
}
