package dialect

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/seam-db/seam/stmt"
)

type Postgres struct{}

func NewPostgresDialect() Dialect {
	return &Postgres{}
}

func (Postgres) Name() string {
	return "postgres"
}

func (Postgres) QuoteIdentifier(name string) string {
	return `"` + name + `"`
}

func (Postgres) Placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}

func (Postgres) EscapeLiteral(v any) string {
	if b, ok := v.([]byte); ok {
		return fmt.Sprintf(`E'\\x%x'`, b) // hex bytea literal
	}
	return escapeLiteral(v)
}

func (Postgres) ApplyPagination(s *stmt.Stmt, p Pagination) *stmt.Stmt {
	if p.Limit > 0 {
		s.Merge(stmt.Raw("LIMIT "+strconv.Itoa(p.Limit)), " ")
	}
	if p.Offset > 0 {
		s.Merge(stmt.Raw("OFFSET "+strconv.Itoa(p.Offset)), " ")
	}
	return s
}

func (Postgres) SupportsMultiRowInsert() bool {
	return true
}

func (Postgres) EmptyInsertClause() string {
	return "DEFAULT VALUES"
}

func (Postgres) AffectedRows(res sql.Result) (int64, error) {
	return res.RowsAffected()
}

// InsertedID is unavailable through the lib-level result on Postgres; callers
// needing the generated id supply one via a schema generator or a RETURNING
// clause of their own.
func (Postgres) InsertedID(sql.Result) (int64, error) {
	return 0, errors.New("dialect: postgres does not report LastInsertId")
}
