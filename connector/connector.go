// Package connector opens database connections for the engine: provider
// registration by name, DSN construction, pool configuration, and
// retry-with-backoff connects. Each provider pairs a driver with the
// dialect the builders must use against it.
package connector

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/seam-db/seam/dialect"
)

// Connection is an open database handle plus the dialect it speaks.
type Connection interface {
	DB() *sql.DB
	Dialect() dialect.Dialect
	Health(ctx context.Context) error
	Stats() ConnectionStats
	Close() error
}

// ConnectionStats represents database connection pool statistics.
type ConnectionStats struct {
	OpenConnections int
	InUse           int
	Idle            int
}

// Provider connects to one backend kind.
type Provider interface {
	Connect(ctx context.Context, config Config) (Connection, error)
	Dialect() dialect.Dialect
}

var globalManager = &manager{providers: make(map[string]Provider)}

type manager struct {
	mu        sync.RWMutex
	providers map[string]Provider
}

// Register makes a provider available under name. Providers in this package
// register themselves at init.
func Register(name string, provider Provider) {
	globalManager.mu.Lock()
	defer globalManager.mu.Unlock()
	globalManager.providers[name] = provider
}

// Connect opens a connection through the named provider, honoring the
// config's connect timeout and retry policy.
func Connect(ctx context.Context, name string, cfg Config) (Connection, error) {
	globalManager.mu.RLock()
	provider, ok := globalManager.providers[name]
	globalManager.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("connector: provider %q not registered", name)
	}

	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	if cfg.Retry != nil {
		return retryConnect(ctx, *cfg.Retry, func(ctx context.Context) (Connection, error) {
			return provider.Connect(ctx, cfg)
		})
	}
	return provider.Connect(ctx, cfg)
}

// sqlConnection adapts a *sql.DB plus dialect into a Connection. All three
// built-in providers return one.
type sqlConnection struct {
	db      *sql.DB
	dialect dialect.Dialect
}

func (c *sqlConnection) DB() *sql.DB              { return c.db }
func (c *sqlConnection) Dialect() dialect.Dialect { return c.dialect }

func (c *sqlConnection) Health(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

func (c *sqlConnection) Stats() ConnectionStats {
	s := c.db.Stats()
	return ConnectionStats{
		OpenConnections: s.OpenConnections,
		InUse:           s.InUse,
		Idle:            s.Idle,
	}
}

func (c *sqlConnection) Close() error { return c.db.Close() }

func applyPool(db *sql.DB, cfg Config) {
	db.SetMaxOpenConns(cfg.Pool.MaxOpen)
	db.SetMaxIdleConns(cfg.Pool.MaxIdle)
	db.SetConnMaxLifetime(cfg.Pool.MaxLifetime)
	db.SetConnMaxIdleTime(cfg.Pool.MaxIdleTime)
}
