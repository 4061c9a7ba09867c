// SPDX-License-Identifier: MIT
// Package: strawman/dummy
//
// impl_frame.go - DummyDF(rows, cols).
//
// Contract:
//   - rows, cols, content length ≥ 0 (else ErrNegative).
//   - WithColumns, when given, has exactly cols labels (else ErrColumnCount).
//   - Allowed chars non-empty whenever a cell is generated (else ErrEmptyAlphabet).
//
// Determinism:
//   - One generator for the whole table; cells are drawn row-major
//     (row 0 col 0, row 0 col 1, ...), so a seed fixes every cell.
//
// Complexity: O(rows*cols*contentLength) time and space.

package dummy

import (
	"github.com/katalvlaran/strawman/seq"
	"github.com/katalvlaran/strawman/table"
)

// DummyDF returns a rows×cols table of independently generated random strings.
// Columns default to "0".."cols-1".
func DummyDF(rows, cols int, opts ...Option) (*table.Table, error) {
	const m = MethodDummyDF
	cfg := newConfig(opts...)

	if err := checkNonNegative(m, "rows", rows); err != nil {
		return nil, err
	}
	if err := checkNonNegative(m, "cols", cols); err != nil {
		return nil, err
	}
	if err := checkNonNegative(m, "content_length", cfg.contentLength); err != nil {
		return nil, err
	}
	if cfg.columns != nil && len(cfg.columns) != cols {
		return nil, invalidf(m, ErrColumnCount,
			"length of columns (%d) does not match shape (%d, %d)", len(cfg.columns), rows, cols)
	}
	if rows*cols > 0 && cfg.allowedChars == "" {
		return nil, invalidf(m, ErrEmptyAlphabet, "allowed chars must not be empty")
	}

	columns := cfg.columns
	if columns == nil {
		columns = table.DefaultColumns(cols)
	}

	rng := cfg.random(m)
	records := make([][]string, rows)
	for i := range records {
		row, err := seq.RandomStrings(cols, cfg.contentLength, cfg.allowedChars, rng)
		if err != nil {
			return nil, err
		}
		records[i] = row
	}

	return table.New(columns, records)
}
