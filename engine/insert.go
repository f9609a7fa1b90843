package engine

import (
	"context"
)

// Insert creates one row and returns its identifier: the caller-supplied or
// generated value when known, otherwise the driver-reported inserted id.
// When the model's identifier property names a generator and data carries
// no value for it, a fresh id is generated before the statement is built.
func (e *Engine) Insert(ctx context.Context, model string, data map[string]any) (any, error) {
	m, err := e.model(model)
	if err != nil {
		return nil, err
	}

	// Work on a copy; generated ids must not leak into the caller's map.
	row := make(map[string]any, len(data)+1)
	for k, v := range data {
		row[k] = v
	}

	var id any
	for _, p := range m.IDProperties() {
		if v, ok := row[p.Name]; ok && v != nil {
			id = v
			continue
		}
		if p.Generator == "" {
			continue
		}
		generated, err := e.generators.Generate(p.Generator)
		if err != nil {
			return nil, err
		}
		row[p.Name] = generated
		id = generated
	}

	text, params, err := e.builder.Insert(m, row)
	if err != nil {
		return nil, err
	}
	res, err := e.run(ctx, text, params)
	if err != nil {
		return nil, err
	}

	if id != nil {
		return id, nil
	}
	if driverID, err := e.dialect.InsertedID(res); err == nil {
		return driverID, nil
	}
	return nil, nil
}

// InsertAll creates rows in one multi-row statement and returns the
// affected-row count. Dialects without multi-row support fail fast with
// builder.ErrMultiRowInsertUnsupported.
func (e *Engine) InsertAll(ctx context.Context, model string, rows []map[string]any) (int64, error) {
	m, err := e.model(model)
	if err != nil {
		return 0, err
	}
	text, params, err := e.builder.InsertAll(m, rows)
	if err != nil {
		return 0, err
	}
	res, err := e.run(ctx, text, params)
	if err != nil {
		return 0, err
	}
	return e.dialect.AffectedRows(res)
}
