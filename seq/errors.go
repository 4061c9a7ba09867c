package seq

import "errors"

var (
	// ErrEmptySequence is returned when an element must be drawn from an empty slice.
	ErrEmptySequence = errors.New("seq: sequence is empty")

	// ErrEmptyAlphabet is returned by RandomString when no characters are allowed.
	ErrEmptyAlphabet = errors.New("seq: alphabet is empty")

	// ErrNegativeLength is returned when a requested output length is below zero.
	ErrNegativeLength = errors.New("seq: length must be non-negative")
)
