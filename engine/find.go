package engine

import (
	"context"
	"database/sql"

	"github.com/seam-db/seam/builder"
)

// Find executes a SELECT for the named model. The caller owns the returned
// rows and must close them.
func (e *Engine) Find(ctx context.Context, model string, q *builder.Query) (*sql.Rows, error) {
	m, err := e.model(model)
	if err != nil {
		return nil, err
	}
	text, params, err := e.builder.Select(m, q)
	if err != nil {
		return nil, err
	}
	return e.query(ctx, text, params)
}

// FindByID executes a SELECT addressing one row by identifier.
func (e *Engine) FindByID(ctx context.Context, model string, id any) (*sql.Rows, error) {
	m, err := e.model(model)
	if err != nil {
		return nil, err
	}
	where, err := idWhere(m, id)
	if err != nil {
		return nil, err
	}
	text, params, err := e.builder.Select(m, &builder.Query{Where: where, Limit: 1})
	if err != nil {
		return nil, err
	}
	return e.query(ctx, text, params)
}

// Count returns the number of rows matching where.
func (e *Engine) Count(ctx context.Context, model string, where map[string]any) (int64, error) {
	m, err := e.model(model)
	if err != nil {
		return 0, err
	}
	text, params, err := e.builder.Count(m, where)
	if err != nil {
		return 0, err
	}

	rows, err := e.query(ctx, text, params)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var n int64
	if rows.Next() {
		if err := rows.Scan(&n); err != nil {
			return 0, err
		}
	}
	return n, rows.Err()
}

// Exists reports whether a row with the given identifier exists.
func (e *Engine) Exists(ctx context.Context, model string, id any) (bool, error) {
	m, err := e.model(model)
	if err != nil {
		return false, err
	}
	where, err := idWhere(m, id)
	if err != nil {
		return false, err
	}
	n, err := e.Count(ctx, model, where)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
