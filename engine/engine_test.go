package engine

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seam-db/seam/builder"
	"github.com/seam-db/seam/dialect"
	"github.com/seam-db/seam/schema"
)

func testEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE customers (id INTEGER PRIMARY KEY, name TEXT, vip INTEGER)`)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE sessions (id TEXT PRIMARY KEY, note TEXT)`)
	require.NoError(t, err)

	reg := schema.NewRegistry()
	reg.Register(schema.NewModel("Customer", []*schema.Property{
		{Name: "id", ID: true},
		{Name: "name"},
		{Name: "vip"},
	}))
	reg.Register(schema.NewModel("Session", []*schema.Property{
		{Name: "id", ID: true, Generator: "uuid"},
		{Name: "note"},
	}))

	return New(db, dialect.NewSQLiteDialect(), reg, opts...)
}

func TestInsertAndFindRoundTrip(t *testing.T) {
	e := testEngine(t, WithStatementCache(16))
	defer e.Close()
	ctx := context.Background()

	id, err := e.Insert(ctx, "Customer", map[string]any{"name": "John", "vip": true})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	_, err = e.Insert(ctx, "Customer", map[string]any{"name": "Mary", "vip": false})
	require.NoError(t, err)

	rows, err := e.Find(ctx, "Customer", &builder.Query{Where: map[string]any{"vip": true}})
	require.NoError(t, err)
	defer rows.Close()

	var names []string
	for rows.Next() {
		var rowID int64
		var name string
		var vip bool
		require.NoError(t, rows.Scan(&rowID, &name, &vip))
		names = append(names, name)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []string{"John"}, names)
}

func TestFindByID(t *testing.T) {
	e := testEngine(t)
	ctx := context.Background()

	id, err := e.Insert(ctx, "Customer", map[string]any{"name": "John"})
	require.NoError(t, err)

	rows, err := e.FindByID(ctx, "Customer", id)
	require.NoError(t, err)
	defer rows.Close()
	require.True(t, rows.Next())

	_, err = e.FindByID(ctx, "Customer", nil)
	assert.ErrorIs(t, err, ErrMissingIdentifier)
}

func TestCountAndExists(t *testing.T) {
	e := testEngine(t)
	ctx := context.Background()

	id, err := e.Insert(ctx, "Customer", map[string]any{"name": "John", "vip": true})
	require.NoError(t, err)
	_, err = e.Insert(ctx, "Customer", map[string]any{"name": "Mary", "vip": false})
	require.NoError(t, err)

	n, err := e.Count(ctx, "Customer", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = e.Count(ctx, "Customer", map[string]any{"vip": true})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	ok, err := e.Exists(ctx, "Customer", id)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = e.Exists(ctx, "Customer", int64(999))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestInsertGeneratesID(t *testing.T) {
	e := testEngine(t)
	ctx := context.Background()

	id, err := e.Insert(ctx, "Session", map[string]any{"note": "hello"})
	require.NoError(t, err)
	require.IsType(t, "", id)
	assert.Len(t, id.(string), 36)

	ok, err := e.Exists(ctx, "Session", id)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestInsertAll(t *testing.T) {
	e := testEngine(t)
	ctx := context.Background()

	n, err := e.InsertAll(ctx, "Customer", []map[string]any{
		{"name": "John", "vip": true},
		{"name": "Mary"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestUpdateByID(t *testing.T) {
	e := testEngine(t)
	ctx := context.Background()

	id, err := e.Insert(ctx, "Customer", map[string]any{"name": "John", "vip": false})
	require.NoError(t, err)

	require.NoError(t, e.UpdateByID(ctx, "Customer", id, map[string]any{"vip": true}))

	n, err := e.Count(ctx, "Customer", map[string]any{"vip": true})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	err = e.UpdateByID(ctx, "Customer", int64(999), map[string]any{"vip": true})
	assert.ErrorIs(t, err, ErrNoMatchingRow)

	err = e.UpdateByID(ctx, "Customer", nil, map[string]any{"vip": true})
	assert.ErrorIs(t, err, ErrMissingIdentifier)
}

func TestReplaceByIDResetsOmitted(t *testing.T) {
	e := testEngine(t)
	ctx := context.Background()

	id, err := e.Insert(ctx, "Customer", map[string]any{"name": "John", "vip": true})
	require.NoError(t, err)

	require.NoError(t, e.ReplaceByID(ctx, "Customer", id, map[string]any{"name": "Johnny"}))

	rows, err := e.FindByID(ctx, "Customer", id)
	require.NoError(t, err)
	require.True(t, rows.Next())

	var rowID int64
	var name string
	var vip sql.NullBool
	require.NoError(t, rows.Scan(&rowID, &name, &vip))
	assert.Equal(t, "Johnny", name)
	assert.False(t, vip.Valid)
	// Release the connection before the next statement; the pool holds
	// only one.
	require.NoError(t, rows.Close())

	err = e.ReplaceByID(ctx, "Customer", int64(999), map[string]any{"name": "x"})
	assert.ErrorIs(t, err, ErrNoMatchingRow)
}

func TestDelete(t *testing.T) {
	e := testEngine(t)
	ctx := context.Background()

	id, err := e.Insert(ctx, "Customer", map[string]any{"name": "John"})
	require.NoError(t, err)
	_, err = e.Insert(ctx, "Customer", map[string]any{"name": "Mary"})
	require.NoError(t, err)

	require.NoError(t, e.DeleteByID(ctx, "Customer", id))

	n, err := e.DeleteAll(ctx, "Customer", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestInsertDoesNotMutateCallerData(t *testing.T) {
	e := testEngine(t)
	data := map[string]any{"note": "hello"}

	_, err := e.Insert(context.Background(), "Session", data)
	require.NoError(t, err)
	_, hasID := data["id"]
	assert.False(t, hasID)
}

func TestUnknownModel(t *testing.T) {
	e := testEngine(t)
	_, err := e.Count(context.Background(), "Ghost", nil)
	assert.Error(t, err)
}
