package dialect

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/seam-db/seam/stmt"
)

func TestQuoteIdentifier(t *testing.T) {
	assert.Equal(t, `"users"`, NewPostgresDialect().QuoteIdentifier("users"))
	assert.Equal(t, "`users`", NewMySQLDialect().QuoteIdentifier("users"))
	assert.Equal(t, `"users"`, NewSQLiteDialect().QuoteIdentifier("users"))
}

func TestPlaceholders(t *testing.T) {
	pg := NewPostgresDialect()
	assert.Equal(t, "$1", pg.Placeholder(1))
	assert.Equal(t, "$12", pg.Placeholder(12))
	assert.Equal(t, "?", NewMySQLDialect().Placeholder(3))
	assert.Equal(t, "?", NewSQLiteDialect().Placeholder(3))
}

func TestEscapeLiteral(t *testing.T) {
	pg := NewPostgresDialect()
	assert.Equal(t, "NULL", pg.EscapeLiteral(nil))
	assert.Equal(t, "'O''Brien'", pg.EscapeLiteral("O'Brien"))
	assert.Equal(t, "TRUE", pg.EscapeLiteral(true))
	assert.Equal(t, "42", pg.EscapeLiteral(42))
	assert.Equal(t, "1.5", pg.EscapeLiteral(1.5))

	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "'2024-03-01 12:00:00.000000'", pg.EscapeLiteral(ts))

	assert.Equal(t, "1", NewSQLiteDialect().EscapeLiteral(true))
	assert.Equal(t, "X'ff00'", NewMySQLDialect().EscapeLiteral([]byte{0xff, 0x00}))
}

func TestEmptyInsertClause(t *testing.T) {
	assert.Equal(t, "DEFAULT VALUES", NewPostgresDialect().EmptyInsertClause())
	assert.Equal(t, "VALUES()", NewMySQLDialect().EmptyInsertClause())
	assert.Equal(t, "DEFAULT VALUES", NewSQLiteDialect().EmptyInsertClause())
}

func TestApplyPagination(t *testing.T) {
	base := func() *stmt.Stmt { return stmt.Raw("SELECT * FROM t") }

	s := NewPostgresDialect().ApplyPagination(base(), Pagination{Limit: 10, Offset: 5})
	assert.Equal(t, "SELECT * FROM t LIMIT 10 OFFSET 5", s.Text)

	s = NewMySQLDialect().ApplyPagination(base(), Pagination{Limit: 10})
	assert.Equal(t, "SELECT * FROM t LIMIT 10", s.Text)

	s = NewMySQLDialect().ApplyPagination(base(), Pagination{Offset: 5})
	assert.Equal(t, "SELECT * FROM t LIMIT 18446744073709551615 OFFSET 5", s.Text)

	s = NewSQLiteDialect().ApplyPagination(base(), Pagination{Offset: 5})
	assert.Equal(t, "SELECT * FROM t LIMIT -1 OFFSET 5", s.Text)

	s = NewSQLiteDialect().ApplyPagination(base(), Pagination{})
	assert.Equal(t, "SELECT * FROM t", s.Text)
}
