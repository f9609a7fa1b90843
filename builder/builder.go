// Package builder composes SELECT, INSERT, UPDATE, REPLACE and DELETE
// statements from model metadata, a dialect-neutral where predicate, and
// caller-supplied data. Every builder is a pure function of its inputs:
// no state survives a call, so concurrent use needs no locking.
package builder

import (
	"errors"

	"github.com/seam-db/seam/dialect"
	"github.com/seam-db/seam/schema"
	"github.com/seam-db/seam/stmt"
)

// ErrMultiRowInsertUnsupported is returned by InsertAll when the dialect
// cannot express a multi-row INSERT. Callers must treat it as fatal rather
// than degrade to per-row inserts.
var ErrMultiRowInsertUnsupported = errors.New("builder: dialect does not support multi-row INSERT")

// Diagnostic observes filter fields and data keys that were silently
// skipped because the model does not declare them. Skipping is a tolerance
// feature (filters may carry relation names this layer does not own), but
// a dropped clause widens the query, so it is worth surfacing.
type Diagnostic func(model, field string)

type Builder struct {
	dialect dialect.Dialect
	skipped Diagnostic
}

type Option func(*Builder)

// WithDiagnostic installs a hook invoked once per skipped field.
func WithDiagnostic(fn Diagnostic) Option {
	return func(b *Builder) { b.skipped = fn }
}

func New(d dialect.Dialect, opts ...Option) *Builder {
	b := &Builder{dialect: d}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Builder) Dialect() dialect.Dialect {
	return b.dialect
}

func (b *Builder) skip(model, field string) {
	if b.skipped != nil {
		b.skipped(model, field)
	}
}

// column resolves and escapes a property's column name for this dialect.
func (b *Builder) column(m *schema.Model, p *schema.Property) string {
	return b.dialect.QuoteIdentifier(m.ColumnName(p, b.dialect.Name()))
}

// table escapes the model's table name.
func (b *Builder) table(m *schema.Model) string {
	return b.dialect.QuoteIdentifier(m.Table)
}

// finalize collapses s and rewrites its generic placeholders into the
// dialect's bind tokens. Every public builder funnels through here.
func (b *Builder) finalize(s *stmt.Stmt) (string, []any) {
	return s.Parameterize(b.dialect.Placeholder)
}
