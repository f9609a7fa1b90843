package builder

import (
	"reflect"
	"sort"

	"github.com/seam-db/seam/schema"
	"github.com/seam-db/seam/stmt"
)

// Field is one projected property: its escaped column name and the value
// fragment binding its column-ready value.
type Field struct {
	Property *schema.Property
	Column   string
	Value    *stmt.Stmt
}

// Fields projects the supplied data keys, in sorted order, onto the model's
// columns. Unknown keys are skipped (with a diagnostic); declared properties
// for which exclude returns true are skipped silently. A nil exclude keeps
// everything.
func (b *Builder) Fields(m *schema.Model, data map[string]any, exclude func(*schema.Property) bool) ([]Field, error) {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]Field, 0, len(keys))
	for _, key := range keys {
		p, ok := m.Property(key)
		if !ok {
			b.skip(m.Name, key)
			continue
		}
		if exclude != nil && exclude(p) {
			continue
		}
		f, err := b.field(m, p, data[key])
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return fields, nil
}

// FieldsForReplace projects the model's full declared property set, in
// declaration order, so properties omitted from data are reset to null.
// Identifier properties are excluded; they are addressed by the WHERE.
func (b *Builder) FieldsForReplace(m *schema.Model, data map[string]any) ([]Field, error) {
	var fields []Field
	for _, p := range m.Properties() {
		if p.ID || p.ReadOnly {
			continue
		}
		f, err := b.field(m, p, data[p.Name])
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return fields, nil
}

func (b *Builder) field(m *schema.Model, p *schema.Property, value any) (Field, error) {
	v, err := b.columnValue(p, value)
	if err != nil {
		return Field{}, err
	}
	frag, ok := v.(*stmt.Stmt)
	if !ok {
		frag = stmt.Value(v)
	}
	return Field{Property: p, Column: b.column(m, p), Value: frag}, nil
}

// expandList flattens a set/range operand into its elements. Slices of any
// element type expand; []byte and non-sequences are single values; nil is
// the empty list.
func expandList(operand any) []any {
	switch v := operand.(type) {
	case nil:
		return nil
	case []any:
		return v
	case []byte:
		return []any{operand}
	}
	rv := reflect.ValueOf(operand)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return []any{operand}
	}
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items
}
