package engine

import "errors"

var (
	// ErrMissingIdentifier reports a point operation invoked without an
	// identifier value. It is raised before any statement is built.
	ErrMissingIdentifier = errors.New("engine: operation requires an identifier value")

	// ErrNoMatchingRow reports an update or replace by id that affected
	// zero rows.
	ErrNoMatchingRow = errors.New("engine: no row matches the given id")
)
