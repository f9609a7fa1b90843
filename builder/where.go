package builder

import (
	"regexp"
	"strings"

	"github.com/seam-db/seam/filter"
	"github.com/seam-db/seam/schema"
	"github.com/seam-db/seam/stmt"
)

// Where compiles a where shape into the WHERE body for m, without the
// leading WHERE keyword. An empty, nil, or entirely-skipped predicate
// compiles to an empty statement. Unknown fields contribute nothing; only
// a failing value-conversion hook produces an error.
func (b *Builder) Where(m *schema.Model, where map[string]any) (*stmt.Stmt, error) {
	return b.compileAll(m, filter.Parse(where))
}

// compileAll joins per-key fragments with AND. Top-level fragments are not
// parenthesized; explicit combinator clauses are.
func (b *Builder) compileAll(m *schema.Model, exprs []*filter.Expression) (*stmt.Stmt, error) {
	parts := make([]*stmt.Stmt, 0, len(exprs))
	for _, e := range exprs {
		s, err := b.compile(m, e)
		if err != nil {
			return nil, err
		}
		if s.Text == "" {
			continue
		}
		parts = append(parts, s)
	}
	return stmt.Join(parts, " AND "), nil
}

func (b *Builder) compile(m *schema.Model, e *filter.Expression) (*stmt.Stmt, error) {
	switch e.Kind {
	case filter.KindAnd, filter.KindOr:
		return b.combine(m, e)
	}

	p, ok := m.Property(e.Field)
	if !ok {
		b.skip(m.Name, e.Field)
		return stmt.Empty(), nil
	}
	col := b.column(m, p)

	switch e.Kind {
	case filter.KindIsNull:
		return stmt.Raw(col + " IS NULL"), nil
	case filter.KindEquality:
		return b.equality(col, p, e.Value)
	default:
		return b.condition(col, p, e)
	}
}

// combine compiles an and/or combinator: each surviving clause's text is
// wrapped in parentheses and the survivors are joined with the uppercased
// combinator.
func (b *Builder) combine(m *schema.Model, e *filter.Expression) (*stmt.Stmt, error) {
	sep := " AND "
	if e.Kind == filter.KindOr {
		sep = " OR "
	}

	parts := make([]*stmt.Stmt, 0, len(e.Groups))
	for _, group := range e.Groups {
		clause, err := b.compileAll(m, group)
		if err != nil {
			return nil, err
		}
		if clause.Text == "" {
			continue
		}
		clause.Text = "(" + clause.Text + ")"
		parts = append(parts, clause)
	}
	return stmt.Join(parts, sep), nil
}

// equality compiles implicit field equality. A null column value becomes
// IS NULL; a nested fragment is merged directly after the equals sign.
func (b *Builder) equality(col string, p *schema.Property, value any) (*stmt.Stmt, error) {
	v, err := b.columnValue(p, value)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return stmt.Raw(col + " IS NULL"), nil
	}
	if frag, ok := v.(*stmt.Stmt); ok {
		return stmt.Raw(col + "=").Merge(frag.Collapse(), ""), nil
	}
	return stmt.New(col+"=?", v)
}

func (b *Builder) condition(col string, p *schema.Property, e *filter.Expression) (*stmt.Stmt, error) {
	switch e.Op {
	case filter.OpBetween:
		vals, err := b.columnValues(p, e.Value)
		if err != nil {
			return nil, err
		}
		// Exactly two operands; missing entries become null.
		var lo, hi any
		if len(vals) > 0 {
			lo = vals[0]
		}
		if len(vals) > 1 {
			hi = vals[1]
		}
		return stmt.New(col+" BETWEEN ? AND ?", lo, hi)

	case filter.OpInq, filter.OpNin:
		vals, err := b.columnValues(p, e.Value)
		if err != nil {
			return nil, err
		}
		if len(vals) == 0 {
			if e.Op == filter.OpNin {
				// NOT IN an empty set is always true: no clause.
				return stmt.Empty(), nil
			}
			// IN an empty set matches nothing; IN (NULL) preserves that.
			vals = []any{nil}
		}
		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(vals)), ",")
		return stmt.New(col+" "+e.Op.SQL()+" ("+placeholders+")", vals...)

	case filter.OpRegexp:
		// A true regular-expression operand bypasses the conversion hook.
		if re, ok := e.Value.(*regexp.Regexp); ok {
			return stmt.New(col+" REGEXP ?", re.String())
		}
		v, err := b.columnValue(p, e.Value)
		if err != nil {
			return nil, err
		}
		return stmt.New(col+" REGEXP ?", v)

	case filter.OpNeq:
		v, err := b.columnValue(p, e.Value)
		if err != nil {
			return nil, err
		}
		if v == nil {
			return stmt.Raw(col + " IS NOT NULL"), nil
		}
		return stmt.New(col+" != ?", v)

	default: // gt, gte, lt, lte, like, nlike
		v, err := b.columnValue(p, e.Value)
		if err != nil {
			return nil, err
		}
		return stmt.New(col+" "+e.Op.SQL()+" ?", v)
	}
}

// columnValue converts one operand through the property's conversion hook.
// Nested statements pass through verbatim; they are sub-expressions, not
// bind values.
func (b *Builder) columnValue(p *schema.Property, v any) (any, error) {
	if frag, ok := v.(*stmt.Stmt); ok {
		return frag, nil
	}
	return p.ColumnValue(v)
}

// columnValues coerces a set/range operand into a converted value list. A
// non-sequence operand becomes a one-element list.
func (b *Builder) columnValues(p *schema.Property, operand any) ([]any, error) {
	items := expandList(operand)
	out := make([]any, 0, len(items))
	for _, item := range items {
		v, err := b.columnValue(p, item)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
