package table

import "errors"

var (
	// ErrRaggedRow is returned by New when a row does not have one cell per column.
	ErrRaggedRow = errors.New("table: row length does not match column count")

	// ErrOutOfRange indicates a row or column index outside the table.
	ErrOutOfRange = errors.New("table: index out of range")

	// ErrUnknownColumn indicates that no column carries the requested label.
	ErrUnknownColumn = errors.New("table: unknown column")
)
