package builder

import (
	"strings"

	"github.com/seam-db/seam/dialect"
	"github.com/seam-db/seam/schema"
	"github.com/seam-db/seam/stmt"
)

// Query is the read-side input: a where predicate plus projection, ordering
// and pagination. Order entries are property names with an optional ASC or
// DESC suffix ("age DESC"). Offset counts skipped rows.
type Query struct {
	Where  map[string]any
	Fields []string
	Order  []string
	Limit  int
	Offset int
}

// Select builds a SELECT for m. When the query specifies no ordering the
// model's identifier properties order the result, keeping pagination stable.
func (b *Builder) Select(m *schema.Model, q *Query) (string, []any, error) {
	if q == nil {
		q = &Query{}
	}

	s := stmt.Raw("SELECT " + b.projection(m, q.Fields) + " FROM " + b.table(m))

	if err := b.mergeWhere(s, m, q.Where); err != nil {
		return "", nil, err
	}

	order := b.orderBy(m, q.Order)
	if len(order) == 0 {
		order = b.defaultOrder(m)
	}
	if len(order) > 0 {
		s.Merge(stmt.Raw("ORDER BY "+strings.Join(order, ",")), " ")
	}

	if q.Limit > 0 || q.Offset > 0 {
		s = b.dialect.ApplyPagination(s, dialect.Pagination{
			Limit:  q.Limit,
			Offset: q.Offset,
			Order:  order,
		})
	}

	text, params := b.finalize(s)
	return text, params, nil
}

// Count builds SELECT count(*) constrained by the where predicate.
func (b *Builder) Count(m *schema.Model, where map[string]any) (string, []any, error) {
	s := stmt.Raw("SELECT count(*) FROM " + b.table(m))
	if err := b.mergeWhere(s, m, where); err != nil {
		return "", nil, err
	}
	text, params := b.finalize(s)
	return text, params, nil
}

// mergeWhere appends the compiled WHERE body, prefixing the keyword only
// when the body is non-empty.
func (b *Builder) mergeWhere(s *stmt.Stmt, m *schema.Model, where map[string]any) error {
	body, err := b.Where(m, where)
	if err != nil {
		return err
	}
	if body.Text != "" {
		s.Merge(stmt.Raw("WHERE"), " ").Merge(body, " ")
	}
	return nil
}

// projection renders the selected column list, defaulting to every declared
// property. Unknown field names are skipped.
func (b *Builder) projection(m *schema.Model, fields []string) string {
	var cols []string
	if len(fields) == 0 {
		for _, p := range m.Properties() {
			cols = append(cols, b.column(m, p))
		}
	} else {
		for _, name := range fields {
			p, ok := m.Property(name)
			if !ok {
				b.skip(m.Name, name)
				continue
			}
			cols = append(cols, b.column(m, p))
		}
	}
	if len(cols) == 0 {
		return "*"
	}
	return strings.Join(cols, ",")
}

// orderBy resolves order entries to escaped columns with a normalized
// direction. Unknown properties and directions are skipped.
func (b *Builder) orderBy(m *schema.Model, order []string) []string {
	var out []string
	for _, entry := range order {
		name, dir, _ := strings.Cut(strings.TrimSpace(entry), " ")
		p, ok := m.Property(name)
		if !ok {
			b.skip(m.Name, name)
			continue
		}
		col := b.column(m, p)
		switch strings.ToUpper(strings.TrimSpace(dir)) {
		case "DESC":
			out = append(out, col+" DESC")
		default:
			out = append(out, col)
		}
	}
	return out
}

func (b *Builder) defaultOrder(m *schema.Model) []string {
	var out []string
	for _, p := range m.IDProperties() {
		out = append(out, b.column(m, p))
	}
	return out
}
