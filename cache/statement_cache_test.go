package cache

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	_, err = db.Exec("CREATE TABLE kv (k TEXT, v TEXT)")
	require.NoError(t, err)
	return db
}

func TestGetOrPrepareReusesStatements(t *testing.T) {
	db := openDB(t)
	c := NewStatementCache(8)
	defer c.Close()

	ctx := context.Background()
	first, err := c.GetOrPrepare(ctx, 1, db, "SELECT v FROM kv WHERE k = ?")
	require.NoError(t, err)

	second, err := c.GetOrPrepare(ctx, 1, db, "SELECT v FROM kv WHERE k = ?")
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestEvictionClosesStatements(t *testing.T) {
	db := openDB(t)
	c := NewStatementCache(1)
	defer c.Close()

	ctx := context.Background()
	first, err := c.GetOrPrepare(ctx, 1, db, "SELECT v FROM kv WHERE k = ?")
	require.NoError(t, err)

	_, err = c.GetOrPrepare(ctx, 2, db, "SELECT k FROM kv WHERE v = ?")
	require.NoError(t, err)

	// The evicted statement is closed; using it fails.
	_, err = first.QueryContext(ctx, "a")
	assert.Error(t, err)
}
