// Package dialect defines the contract every database-specific adapter must
// satisfy so the statement builders can stay dialect-neutral: identifier and
// literal escaping, placeholder syntax, pagination wrapping, multi-row insert
// capability, and result-shape parsing. The builders call these hooks but
// implement none of them.
package dialect

import (
	"database/sql"

	"github.com/seam-db/seam/stmt"
)

// Pagination carries the limit/offset inputs handed to a dialect. A
// non-positive Limit means unlimited; Order is the pre-escaped ORDER BY
// expression list for dialects whose pagination syntax requires one.
type Pagination struct {
	Limit  int
	Offset int
	Order  []string
}

type Dialect interface {
	// Name identifies the dialect; schema column overrides and cache keys
	// are scoped by it.
	Name() string

	// QuoteIdentifier escapes a table or column name.
	QuoteIdentifier(name string) string

	// EscapeLiteral renders v as an inline SQL literal. Builders prefer
	// bound parameters; this exists for the few spots (defaults, DDL)
	// where a literal is unavoidable.
	EscapeLiteral(v any) string

	// Placeholder returns the bind-parameter token for the n-th parameter,
	// n starting at 1.
	Placeholder(n int) string

	// ApplyPagination appends the dialect's limit/offset clause to s.
	ApplyPagination(s *stmt.Stmt, p Pagination) *stmt.Stmt

	// SupportsMultiRowInsert reports whether a single INSERT may carry
	// multiple VALUES rows.
	SupportsMultiRowInsert() bool

	// EmptyInsertClause is the clause completing an INSERT that assigns
	// no columns, leaving every one to its default.
	EmptyInsertClause() string

	// AffectedRows extracts the mutated row count from an exec result.
	AffectedRows(res sql.Result) (int64, error)

	// InsertedID extracts the generated identifier from an insert result.
	InsertedID(res sql.Result) (int64, error)
}
