// Package table provides Table, the immutable grid of string cells returned by
// the generators in package dummy.
//
// A Table is a list of column labels plus row-major cell storage. Cells carry
// no relation to each other beyond the shared column labels, and every
// accessor returns copies, so a Table handed to a test can never be mutated
// behind the caller's back.
//
// Errors are package sentinels checked with errors.Is:
//   - ErrRaggedRow:     a row length differs from the column count.
//   - ErrOutOfRange:    a row or column index outside the table.
//   - ErrUnknownColumn: a column label that is not present.
package table
