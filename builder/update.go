package builder

import (
	"errors"

	"github.com/seam-db/seam/schema"
	"github.com/seam-db/seam/stmt"
)

// ErrNoFields is returned when an update or replace projects no columns.
var ErrNoFields = errors.New("builder: no settable fields")

type updateConfig struct {
	includeIDs bool
}

type UpdateOption func(*updateConfig)

// IncludeIDs lets an update assign identifier columns, which are excluded
// by default.
func IncludeIDs() UpdateOption {
	return func(c *updateConfig) { c.includeIDs = true }
}

// Update builds an UPDATE setting the supplied data keys, constrained by
// the where predicate. Identifier and read-only properties are skipped
// unless IncludeIDs is given (read-only stays excluded regardless).
func (b *Builder) Update(m *schema.Model, where, data map[string]any, opts ...UpdateOption) (string, []any, error) {
	var cfg updateConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	fields, err := b.Fields(m, data, func(p *schema.Property) bool {
		return p.ReadOnly || (p.ID && !cfg.includeIDs)
	})
	if err != nil {
		return "", nil, err
	}
	return b.buildUpdate(m, where, fields)
}

// Replace builds an UPDATE that projects the model's full declared property
// set, so properties omitted from data are reset to null rather than left
// alone.
func (b *Builder) Replace(m *schema.Model, where, data map[string]any) (string, []any, error) {
	for key := range data {
		if _, ok := m.Property(key); !ok {
			b.skip(m.Name, key)
		}
	}
	fields, err := b.FieldsForReplace(m, data)
	if err != nil {
		return "", nil, err
	}
	return b.buildUpdate(m, where, fields)
}

func (b *Builder) buildUpdate(m *schema.Model, where map[string]any, fields []Field) (string, []any, error) {
	if len(fields) == 0 {
		return "", nil, ErrNoFields
	}

	assignments := make([]*stmt.Stmt, len(fields))
	for i, f := range fields {
		assignments[i] = stmt.Raw(f.Column + "=").Merge(f.Value, "")
	}

	s := stmt.Raw("UPDATE " + b.table(m) + " SET ").
		Merge(stmt.Join(assignments, ","), "")
	if err := b.mergeWhere(s, m, where); err != nil {
		return "", nil, err
	}

	text, params := b.finalize(s)
	return text, params, nil
}
