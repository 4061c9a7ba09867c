package seq

import (
	"fmt"
	"math/rand"
	"strings"
)

// ASCIILetters is the default alphabet: lowercase then uppercase Latin letters.
const ASCIILetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// RandomString concatenates size characters drawn independently (with
// replacement) from alphabet. The alphabet is read as runes, so multi-byte
// characters are never split.
//
// Errors:
//   - ErrNegativeLength if size < 0.
//   - ErrEmptyAlphabet if alphabet is "".
func RandomString(size int, alphabet string, rng *rand.Rand) (string, error) {
	if size < 0 {
		return "", fmt.Errorf("RandomString: size=%d: %w", size, ErrNegativeLength)
	}
	if alphabet == "" {
		return "", fmt.Errorf("RandomString: %w", ErrEmptyAlphabet)
	}
	rng = Resolve(rng)

	chars := []rune(alphabet)
	var b strings.Builder
	b.Grow(size)
	for i := 0; i < size; i++ {
		b.WriteRune(chars[rng.Intn(len(chars))])
	}

	return b.String(), nil
}

// RandomStrings returns n strings produced by RandomString in order.
func RandomStrings(n, size int, alphabet string, rng *rand.Rand) ([]string, error) {
	if n < 0 {
		return nil, fmt.Errorf("RandomStrings: n=%d: %w", n, ErrNegativeLength)
	}
	rng = Resolve(rng)

	out := make([]string, n)
	var err error
	for i := range out {
		if out[i], err = RandomString(size, alphabet, rng); err != nil {
			return nil, err
		}
	}

	return out, nil
}
