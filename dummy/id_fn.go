package dummy

import (
	"fmt"
	"io"
	"strconv"

	"github.com/google/uuid"
)

// IDFn maps a zero-based index to an identifier. It must be pure: the same
// index always yields the same string.
type IDFn func(idx int) string

// PrefixIDFn returns prefix + decimal index, e.g. PrefixIDFn("e")(3) → "e3".
// This is the default scheme for entities and relations.
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// LetterIDFn returns prefix + a bijective base-26 label of the index:
// A..Z, then AA..ZZ, then AAA. LetterIDFn("")(26) → "AA".
// The returned IDFn panics on a negative index.
func LetterIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("dummy: LetterIDFn index %d < 0", idx))
		}
		var label [16]byte // 26^14 > MaxInt64
		pos := len(label)
		for n := idx + 1; n > 0; n = (n - 1) / 26 {
			pos--
			label[pos] = byte('A' + (n-1)%26)
		}
		return prefix + string(label[pos:])
	}
}

// WithEntityIDScheme synthesizes entity IDs with fn instead of the prefix.
// Panics on nil.
func WithEntityIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("dummy: WithEntityIDScheme(nil)")
	}
	return func(c *config) {
		c.entityIDFn = fn
	}
}

// WithRelationIDScheme synthesizes relation IDs with fn instead of the prefix.
// Panics on nil.
func WithRelationIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("dummy: WithRelationIDScheme(nil)")
	}
	return func(c *config) {
		c.relationIDFn = fn
	}
}

// WithUUIDEntityIDs synthesizes entity IDs as random version-4 UUIDs read
// from the call's generator, so they are reproducible under WithSeed.
// Ignored when WithEntityIDs is given.
func WithUUIDEntityIDs() Option {
	return func(c *config) {
		c.uuidEntities = true
	}
}

// makeIDs returns fn(0..n-1).
func makeIDs(fn IDFn, n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fn(i)
	}
	return ids
}

// uuidIDs reads n UUIDs from r.
func uuidIDs(n int, r io.Reader) ([]string, error) {
	ids := make([]string, n)
	for i := range ids {
		u, err := uuid.NewRandomFromReader(r)
		if err != nil {
			return nil, fmt.Errorf("uuidIDs: %w", err)
		}
		ids[i] = u.String()
	}
	return ids, nil
}
