package engine

import (
	"context"
	"database/sql"
)

// Executor is the execution collaborator: it accepts final SQL text plus
// bound parameters and returns row sets or exec results. *sql.DB and
// *sql.Tx both satisfy it, so every engine operation works inside a
// caller-managed transaction unchanged.
type Executor interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
}
