// Package seam composes parameterized SQL statements from filter shapes
// and executes them against a dialect-specific connection. The root
// package is a facade; the real work lives in stmt, filter, builder,
// schema, dialect, connector, and engine.
package seam

import (
	"context"

	"github.com/seam-db/seam/builder"
	"github.com/seam-db/seam/connector"
	"github.com/seam-db/seam/engine"
	"github.com/seam-db/seam/schema"
)

type Config = connector.Config
type Query = builder.Query
type Model = schema.Model
type Property = schema.Property
type Engine = engine.Engine

const (
	Postgres = "postgres"
	MySQL    = "mysql"
	SQLite   = "sqlite"
)

// NewRegistry returns an empty model registry.
func NewRegistry() *schema.Registry {
	return schema.NewRegistry()
}

// Open connects to the named provider and wraps the connection in an
// engine bound to the given registry. Closing the engine does not close
// the underlying connection; keep the Connection to manage its lifetime.
func Open(ctx context.Context, provider string, cfg Config, registry *schema.Registry, opts ...engine.Option) (*engine.Engine, connector.Connection, error) {
	conn, err := connector.Connect(ctx, provider, cfg)
	if err != nil {
		return nil, nil, err
	}
	return engine.NewFromConnection(conn, registry, opts...), conn, nil
}
