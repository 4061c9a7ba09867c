// SPDX-License-Identifier: MIT
// Package: strawman/dummy
//
// errors.go - sentinel errors and the ValidationError carrier.
//
// Policy:
//   • Every rejected request is a *ValidationError.
//   • errors.Is(err, ErrValidation) matches all of them; errors.Is against a
//     kind sentinel (ErrNegative, ErrInfeasible, ...) narrows the reason.
//   • Messages carry the method name and the offending values; tests MUST
//     branch on sentinels, never on strings.

package dummy

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/strawman/seq"
)

// ErrValidation is matched by every error returned for an invalid request.
var ErrValidation = errors.New("dummy: invalid generation parameters")

// ErrNegative indicates a count or length parameter below zero.
var ErrNegative = errors.New("dummy: parameter must be non-negative")

// ErrExceedsLength indicates an entity or relation count larger than the
// requested number of rows.
var ErrExceedsLength = errors.New("dummy: parameter exceeds length")

// ErrColumnCount indicates that the supplied column labels do not match the
// table width.
var ErrColumnCount = errors.New("dummy: column count mismatch")

// ErrInfeasible indicates that the universes cannot yield the requested
// number of distinct valid triples.
var ErrInfeasible = errors.New("dummy: not enough unique triples obtainable")

// ErrEmptyAlphabet is seq.ErrEmptyAlphabet, surfaced when random strings are
// requested from an empty set of allowed characters.
var ErrEmptyAlphabet = seq.ErrEmptyAlphabet

// ValidationError describes a rejected request.
type ValidationError struct {
	Method string // MethodDummyDF or MethodDummyTriples
	Reason string // human-readable detail with the offending values
	Kind   error  // one of the kind sentinels above
}

// Error implements error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Method, e.Reason)
}

// Unwrap exposes both ErrValidation and the kind sentinel to errors.Is.
func (e *ValidationError) Unwrap() []error {
	return []error{ErrValidation, e.Kind}
}

// invalidf builds a *ValidationError for method with the given kind.
func invalidf(method string, kind error, format string, args ...interface{}) error {
	return &ValidationError{
		Method: method,
		Reason: fmt.Sprintf(format, args...),
		Kind:   kind,
	}
}
