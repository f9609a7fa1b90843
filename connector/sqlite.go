package connector

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/seam-db/seam/dialect"
)

// sqliteProvider connects to a file-backed or in-memory SQLite database.
// The Database field carries the path (or ":memory:"); host, port, and
// credentials are unused.
type sqliteProvider struct{}

func init() {
	Register("sqlite", sqliteProvider{})
}

func (sqliteProvider) Dialect() dialect.Dialect {
	return dialect.NewSQLiteDialect()
}

func (p sqliteProvider) Connect(ctx context.Context, cfg Config) (Connection, error) {
	if cfg.Database == "" {
		return nil, fmt.Errorf("connector: sqlite requires a database path")
	}
	cfg = cfg.withPoolDefaults()

	db, err := sql.Open("sqlite3", cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connector: open sqlite: %w", err)
	}
	applyPool(db, cfg)
	if strings.Contains(cfg.Database, ":memory:") {
		// Each pooled connection would otherwise open its own private
		// in-memory database, and releasing the last one would drop it.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connector: ping sqlite: %w", err)
	}
	return &sqlConnection{db: db, dialect: p.Dialect()}, nil
}
