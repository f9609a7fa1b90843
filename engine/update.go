package engine

import (
	"context"
)

// UpdateAll updates every row matching where and returns the affected-row
// count.
func (e *Engine) UpdateAll(ctx context.Context, model string, where, data map[string]any) (int64, error) {
	m, err := e.model(model)
	if err != nil {
		return 0, err
	}
	text, params, err := e.builder.Update(m, where, data)
	if err != nil {
		return 0, err
	}
	res, err := e.run(ctx, text, params)
	if err != nil {
		return 0, err
	}
	return e.dialect.AffectedRows(res)
}

// UpdateByID updates the row with the given identifier, setting only the
// supplied data keys. ErrNoMatchingRow reports an id that matched nothing.
func (e *Engine) UpdateByID(ctx context.Context, model string, id any, data map[string]any) error {
	return e.pointMutation(ctx, model, id, data, false)
}

// ReplaceByID replaces the row with the given identifier: properties
// omitted from data are reset, not preserved.
func (e *Engine) ReplaceByID(ctx context.Context, model string, id any, data map[string]any) error {
	return e.pointMutation(ctx, model, id, data, true)
}

func (e *Engine) pointMutation(ctx context.Context, model string, id any, data map[string]any, replace bool) error {
	m, err := e.model(model)
	if err != nil {
		return err
	}
	where, err := idWhere(m, id)
	if err != nil {
		return err
	}

	var text string
	var params []any
	if replace {
		text, params, err = e.builder.Replace(m, where, data)
	} else {
		text, params, err = e.builder.Update(m, where, data)
	}
	if err != nil {
		return err
	}

	res, err := e.run(ctx, text, params)
	if err != nil {
		return err
	}
	n, err := e.dialect.AffectedRows(res)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNoMatchingRow
	}
	return nil
}
