package dialect

import (
	"database/sql"
	"fmt"
	"strconv"

	"github.com/seam-db/seam/stmt"
)

type SQLite struct{}

func NewSQLiteDialect() Dialect {
	return &SQLite{}
}

func (SQLite) Name() string {
	return "sqlite"
}

func (SQLite) QuoteIdentifier(name string) string {
	return `"` + name + `"`
}

func (SQLite) Placeholder(int) string {
	return "?"
}

func (SQLite) EscapeLiteral(v any) string {
	switch val := v.(type) {
	case bool:
		// SQLite stores booleans as integers.
		if val {
			return "1"
		}
		return "0"
	case []byte:
		return fmt.Sprintf("X'%x'", val)
	default:
		return escapeLiteral(v)
	}
}

func (SQLite) ApplyPagination(s *stmt.Stmt, p Pagination) *stmt.Stmt {
	if p.Limit > 0 {
		s.Merge(stmt.Raw("LIMIT "+strconv.Itoa(p.Limit)), " ")
		if p.Offset > 0 {
			s.Merge(stmt.Raw("OFFSET "+strconv.Itoa(p.Offset)), " ")
		}
	} else if p.Offset > 0 {
		s.Merge(stmt.Raw("LIMIT -1 OFFSET "+strconv.Itoa(p.Offset)), " ")
	}
	return s
}

func (SQLite) SupportsMultiRowInsert() bool {
	return true
}

func (SQLite) EmptyInsertClause() string {
	return "DEFAULT VALUES"
}

func (SQLite) AffectedRows(res sql.Result) (int64, error) {
	return res.RowsAffected()
}

func (SQLite) InsertedID(res sql.Result) (int64, error) {
	return res.LastInsertId()
}
