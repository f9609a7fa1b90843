package builder

import (
	"errors"
	"strings"

	"github.com/seam-db/seam/schema"
	"github.com/seam-db/seam/stmt"
)

// ErrNoRows is returned by InsertAll when called with no rows at all.
var ErrNoRows = errors.New("builder: insert requires at least one row")

// Insert builds a single-row INSERT from the supplied data keys. Properties
// the data does not mention are left to their column defaults.
func (b *Builder) Insert(m *schema.Model, data map[string]any) (string, []any, error) {
	fields, err := b.Fields(m, data, nil)
	if err != nil {
		return "", nil, err
	}

	s := stmt.Raw("INSERT INTO " + b.table(m))
	if len(fields) == 0 {
		s.Merge(stmt.Raw(b.dialect.EmptyInsertClause()), " ")
	} else {
		s.Merge(stmt.Raw("("+columnList(fields)+")"), "").
			Merge(stmt.Raw("VALUES("), " ").
			Merge(rowValues(fields), "").
			Merge(stmt.Raw(")"), "")
	}

	text, params := b.finalize(s)
	return text, params, nil
}

// InsertAll builds one multi-row INSERT. The first row's keys pick the
// projected properties (in declaration order); later rows bind null for
// any of those they omit. Dialects without multi-row support get no
// statement at all: silently fanning out N single inserts would surprise
// the caller.
func (b *Builder) InsertAll(m *schema.Model, rows []map[string]any) (string, []any, error) {
	if !b.dialect.SupportsMultiRowInsert() {
		return "", nil, ErrMultiRowInsertUnsupported
	}
	if len(rows) == 0 {
		return "", nil, ErrNoRows
	}

	var props []*schema.Property
	for _, p := range m.Properties() {
		if _, ok := rows[0][p.Name]; ok {
			props = append(props, p)
		}
	}
	for key := range rows[0] {
		if _, ok := m.Property(key); !ok {
			b.skip(m.Name, key)
		}
	}

	var fields []Field
	for _, p := range props {
		fields = append(fields, Field{Property: p, Column: b.column(m, p)})
	}

	s := stmt.Raw("INSERT INTO " + b.table(m) + "(" + columnList(fields) + ") VALUES")
	for i, row := range rows {
		var frags []*stmt.Stmt
		for _, p := range props {
			f, err := b.field(m, p, row[p.Name])
			if err != nil {
				return "", nil, err
			}
			frags = append(frags, f.Value)
		}
		if i > 0 {
			s.Merge(stmt.Raw(","), "")
		}
		s.Merge(stmt.Raw("("), "").Merge(stmt.Join(frags, ","), "").Merge(stmt.Raw(")"), "")
	}

	text, params := b.finalize(s)
	return text, params, nil
}

func columnList(fields []Field) string {
	cols := make([]string, len(fields))
	for i, f := range fields {
		cols[i] = f.Column
	}
	return strings.Join(cols, ",")
}

func rowValues(fields []Field) *stmt.Stmt {
	frags := make([]*stmt.Stmt, len(fields))
	for i, f := range fields {
		frags[i] = f.Value
	}
	return stmt.Join(frags, ",")
}
