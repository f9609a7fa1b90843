// Package schema is the read-only model metadata registry consumed by the
// statement builders: property definitions, identifier properties, column
// name resolution (with per-dialect overrides), value-conversion hooks, and
// id generation. The builders never mutate anything defined here.
package schema

import "fmt"

// Converter translates between property values and column-ready values.
type Converter func(v any) (any, error)

// Property describes one model property and how it maps to a column.
type Property struct {
	Name string

	// Column overrides the naming-strategy column name. ColumnOverrides
	// refines it further per dialect name.
	Column          string
	ColumnOverrides map[string]string

	ID       bool
	ReadOnly bool
	Nullable bool

	// Generator names a registered id generator ("uuid", "ulid") invoked
	// when an insert carries no value for an ID property.
	Generator string

	// ToColumn converts a property value to its column representation;
	// FromColumn converts back when scanning. Nil means identity.
	ToColumn   Converter
	FromColumn Converter
}

// ColumnName resolves the column identifier for the given dialect name,
// unescaped.
func (p *Property) ColumnName(strategy NamingStrategy, dialectName string) string {
	if name, ok := p.ColumnOverrides[dialectName]; ok {
		return name
	}
	if p.Column != "" {
		return p.Column
	}
	return strategy.ColumnName(p.Name)
}

// ColumnValue applies the property's conversion hook to v. Nil passes
// through untouched so NULL semantics stay visible to the compiler.
func (p *Property) ColumnValue(v any) (any, error) {
	if v == nil || p.ToColumn == nil {
		return v, nil
	}
	out, err := p.ToColumn(v)
	if err != nil {
		return nil, fmt.Errorf("schema: convert %q: %w", p.Name, err)
	}
	return out, nil
}

// Model is the declared shape of one persistable entity. Property order is
// declaration order and is visible in built statements.
type Model struct {
	Name  string
	Table string

	naming     NamingStrategy
	properties []*Property
	index      map[string]*Property
}

// ModelOption customizes a model at construction.
type ModelOption func(*Model)

// WithTable pins the table name instead of deriving it from Name.
func WithTable(table string) ModelOption {
	return func(m *Model) { m.Table = table }
}

// WithNaming replaces the default snake-case naming strategy.
func WithNaming(s NamingStrategy) ModelOption {
	return func(m *Model) { m.naming = s }
}

// NewModel declares a model. Duplicate property names panic: model
// declarations are program text, not runtime data.
func NewModel(name string, properties []*Property, opts ...ModelOption) *Model {
	m := &Model{
		Name:   name,
		naming: SnakeCaseNaming{},
		index:  make(map[string]*Property, len(properties)),
	}
	for _, opt := range opts {
		opt(m)
	}
	for _, p := range properties {
		if _, dup := m.index[p.Name]; dup {
			panic(fmt.Sprintf("schema: model %q declares property %q twice", name, p.Name))
		}
		m.properties = append(m.properties, p)
		m.index[p.Name] = p
	}
	if m.Table == "" {
		m.Table = m.naming.TableName(name)
	}
	return m
}

// Property looks up a property by name.
func (m *Model) Property(name string) (*Property, bool) {
	p, ok := m.index[name]
	return p, ok
}

// Properties returns the declared properties in declaration order. Callers
// must not mutate the returned slice.
func (m *Model) Properties() []*Property {
	return m.properties
}

// IDProperties returns the identifier properties in declaration order.
func (m *Model) IDProperties() []*Property {
	var ids []*Property
	for _, p := range m.properties {
		if p.ID {
			ids = append(ids, p)
		}
	}
	return ids
}

// ColumnName resolves a property's column identifier for a dialect.
func (m *Model) ColumnName(p *Property, dialectName string) string {
	return p.ColumnName(m.naming, dialectName)
}
