// Package engine executes built statements: it wires the statement
// builders, the schema registry, and an Executor together into a CRUD
// surface, mapping affected-row counts onto the not-found error taxonomy.
// The engine itself holds no per-request state; every operation is a pure
// function of its arguments plus the executor.
package engine

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/seam-db/seam/builder"
	"github.com/seam-db/seam/cache"
	"github.com/seam-db/seam/connector"
	"github.com/seam-db/seam/dialect"
	"github.com/seam-db/seam/schema"
	"github.com/seam-db/seam/utils"
)

type Engine struct {
	exec       Executor
	dialect    dialect.Dialect
	builder    *builder.Builder
	registry   *schema.Registry
	generators *schema.GeneratorRegistry
	stmts      *cache.StatementCache
}

type Option func(*Engine, *[]builder.Option)

// WithStatementCache caches prepared statements keyed by statement
// fingerprint. Only enable it when the executor outlives the statements,
// i.e. a *sql.DB rather than a transaction.
func WithStatementCache(size int) Option {
	return func(e *Engine, _ *[]builder.Option) {
		e.stmts = cache.NewStatementCache(size)
	}
}

// WithGenerators replaces the default id generator registry.
func WithGenerators(g *schema.GeneratorRegistry) Option {
	return func(e *Engine, _ *[]builder.Option) {
		e.generators = g
	}
}

// WithDiagnostic forwards skipped-field notifications from the builders.
func WithDiagnostic(fn builder.Diagnostic) Option {
	return func(_ *Engine, bopts *[]builder.Option) {
		*bopts = append(*bopts, builder.WithDiagnostic(fn))
	}
}

func New(exec Executor, d dialect.Dialect, registry *schema.Registry, opts ...Option) *Engine {
	e := &Engine{
		exec:       exec,
		dialect:    d,
		registry:   registry,
		generators: schema.NewGeneratorRegistry(),
	}
	var bopts []builder.Option
	for _, opt := range opts {
		opt(e, &bopts)
	}
	e.builder = builder.New(d, bopts...)
	return e
}

// NewFromConnection builds an engine over an open connection, with the
// prepared-statement cache enabled.
func NewFromConnection(conn connector.Connection, registry *schema.Registry, opts ...Option) *Engine {
	opts = append([]Option{WithStatementCache(128)}, opts...)
	return New(conn.DB(), conn.Dialect(), registry, opts...)
}

// Builder exposes the statement builders for callers that want SQL text
// without execution.
func (e *Engine) Builder() *builder.Builder {
	return e.builder
}

// Close releases the prepared-statement cache, if any.
func (e *Engine) Close() error {
	if e.stmts != nil {
		return e.stmts.Close()
	}
	return nil
}

func (e *Engine) model(name string) (*schema.Model, error) {
	return e.registry.Lookup(name)
}

func (e *Engine) query(ctx context.Context, text string, params []any) (*sql.Rows, error) {
	if e.stmts != nil {
		ps, err := e.prepared(ctx, text)
		if err != nil {
			return nil, err
		}
		return ps.QueryContext(ctx, params...)
	}
	return e.exec.QueryContext(ctx, text, params...)
}

func (e *Engine) run(ctx context.Context, text string, params []any) (sql.Result, error) {
	if e.stmts != nil {
		ps, err := e.prepared(ctx, text)
		if err != nil {
			return nil, err
		}
		return ps.ExecContext(ctx, params...)
	}
	return e.exec.ExecContext(ctx, text, params...)
}

func (e *Engine) prepared(ctx context.Context, text string) (*sql.Stmt, error) {
	key := utils.CombineFingerprints(
		utils.FingerprintString(e.dialect.Name()),
		utils.FingerprintString(text),
	)
	return e.stmts.GetOrPrepare(ctx, key, e.exec, text)
}

// idWhere builds the where shape addressing one row by identifier.
func idWhere(m *schema.Model, id any) (map[string]any, error) {
	if id == nil {
		return nil, ErrMissingIdentifier
	}
	ids := m.IDProperties()
	switch len(ids) {
	case 0:
		return nil, fmt.Errorf("engine: model %q declares no identifier property", m.Name)
	case 1:
		return map[string]any{ids[0].Name: id}, nil
	default:
		return nil, fmt.Errorf("engine: model %q has a composite identifier; use a filter", m.Name)
	}
}
