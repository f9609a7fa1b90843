package engine

import (
	"context"
)

// DeleteAll deletes every row matching where (all rows when where is
// empty) and returns the affected-row count.
func (e *Engine) DeleteAll(ctx context.Context, model string, where map[string]any) (int64, error) {
	m, err := e.model(model)
	if err != nil {
		return 0, err
	}
	text, params, err := e.builder.Delete(m, where)
	if err != nil {
		return 0, err
	}
	res, err := e.run(ctx, text, params)
	if err != nil {
		return 0, err
	}
	return e.dialect.AffectedRows(res)
}

// DeleteByID deletes the row with the given identifier. Deleting an absent
// id is not an error; the row is equally gone either way.
func (e *Engine) DeleteByID(ctx context.Context, model string, id any) error {
	m, err := e.model(model)
	if err != nil {
		return err
	}
	where, err := idWhere(m, id)
	if err != nil {
		return err
	}
	_, err = e.DeleteAll(ctx, model, where)
	return err
}
