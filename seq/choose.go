package seq

import (
	"fmt"
	"math/rand"
	"slices"
)

// Choose returns one element of s selected uniformly at random.
// Returns ErrEmptySequence if s has no elements.
// Complexity: O(1).
func Choose[E any](s []E, rng *rand.Rand) (E, error) {
	var zero E
	if len(s) == 0 {
		return zero, fmt.Errorf("Choose: %w", ErrEmptySequence)
	}
	rng = Resolve(rng)

	return s[rng.Intn(len(s))], nil
}

// Permute returns a new slice holding every element of s exactly once in
// uniformly random order. s itself is not modified.
// Complexity: O(n) time, O(n) space.
func Permute[E any](s []E, rng *rand.Rand) []E {
	out := slices.Clone(s)
	if out == nil {
		out = []E{}
	}
	shuffleInPlace(out, Resolve(rng))

	return out
}

// PermuteToLength concatenates fresh random permutations of s and truncates
// the last one so the result has exactly length elements. When
// length >= len(s) every element of s appears at least once; when
// length < len(s) the result is a prefix of a single permutation.
//
// Errors:
//   - ErrNegativeLength if length < 0.
//   - ErrEmptySequence if s is empty and length > 0.
//
// Complexity: O(length + len(s)) time, O(length) space.
func PermuteToLength[E any](s []E, length int, rng *rand.Rand) ([]E, error) {
	if length < 0 {
		return nil, fmt.Errorf("PermuteToLength: length=%d: %w", length, ErrNegativeLength)
	}
	if len(s) == 0 && length > 0 {
		return nil, fmt.Errorf("PermuteToLength: length=%d: %w", length, ErrEmptySequence)
	}
	rng = Resolve(rng)

	out := make([]E, 0, length)
	for len(out) < length {
		block := Permute(s, rng)
		if rest := length - len(out); rest < len(block) {
			block = block[:rest]
		}
		out = append(out, block...)
	}

	return out, nil
}

// shuffleInPlace is a Fisher–Yates shuffle driven by rng.
func shuffleInPlace[E any](a []E, rng *rand.Rand) {
	var i, j int
	for i = len(a) - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
