package dialect

import (
	"database/sql"
	"fmt"
	"strconv"

	"github.com/seam-db/seam/stmt"
)

type MySQL struct{}

func NewMySQLDialect() Dialect {
	return &MySQL{}
}

func (MySQL) Name() string {
	return "mysql"
}

func (MySQL) QuoteIdentifier(name string) string {
	return "`" + name + "`"
}

func (MySQL) Placeholder(int) string {
	return "?"
}

func (MySQL) EscapeLiteral(v any) string {
	if b, ok := v.([]byte); ok {
		return fmt.Sprintf("X'%x'", b)
	}
	return escapeLiteral(v)
}

func (MySQL) ApplyPagination(s *stmt.Stmt, p Pagination) *stmt.Stmt {
	// MySQL has no bare OFFSET clause.
	if p.Limit > 0 {
		s.Merge(stmt.Raw("LIMIT "+strconv.Itoa(p.Limit)), " ")
		if p.Offset > 0 {
			s.Merge(stmt.Raw("OFFSET "+strconv.Itoa(p.Offset)), " ")
		}
	} else if p.Offset > 0 {
		s.Merge(stmt.Raw("LIMIT 18446744073709551615 OFFSET "+strconv.Itoa(p.Offset)), " ")
	}
	return s
}

func (MySQL) SupportsMultiRowInsert() bool {
	return true
}

// MySQL has no DEFAULT VALUES form.
func (MySQL) EmptyInsertClause() string {
	return "VALUES()"
}

func (MySQL) AffectedRows(res sql.Result) (int64, error) {
	return res.RowsAffected()
}

func (MySQL) InsertedID(res sql.Result) (int64, error) {
	return res.LastInsertId()
}
