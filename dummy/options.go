// SPDX-License-Identifier: MIT
// Package: strawman/dummy
//
// options.go - functional options shared by DummyDF and DummyTriples.
//
// Contract:
//   • Options mutate a per-call config; later options override earlier ones.
//   • Options whose argument can only be a programmer error (nil RNG, nil ID
//     scheme, nil logger) panic at construction time.
//   • Numeric options never panic: out-of-range values are reported by the
//     generator as a *ValidationError so callers get an error, not a crash.
//   • Options irrelevant to a generator are ignored by it (e.g. WithNumEntities
//     for DummyDF).

package dummy

import (
	"math/rand"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/strawman/seq"
)

// Option customizes a generator call by mutating its config.
type Option func(*config)

// WithSeed seeds a fresh generator for the call. Same seed and options ⇒
// identical output.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = seq.NewRand(seed)
	}
}

// WithRand hands the call a caller-owned generator. The call advances it.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("dummy: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithLogger routes the call's debug output (the auto-selected seed) to l.
// Panics on nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("dummy: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithContentLength sets the length of every random string (default 3).
func WithContentLength(n int) Option {
	return func(c *config) {
		c.contentLength = n
	}
}

// WithAllowedChars sets the alphabet random strings are drawn from
// (default seq.ASCIILetters).
func WithAllowedChars(chars string) Option {
	return func(c *config) {
		c.allowedChars = chars
	}
}

// WithColumns sets the column labels. DummyDF requires one label per column,
// DummyTriples exactly three. No labels restores the generator default.
func WithColumns(columns ...string) Option {
	var cols []string
	if len(columns) > 0 {
		cols = slices.Clone(columns)
	}
	return func(c *config) {
		c.columns = cols
	}
}

// WithNumEntities sets the number of synthesized entities.
// Default: floor(length*0.7), also when WithEntityIDs is given.
func WithNumEntities(n int) Option {
	return func(c *config) {
		c.numEntities, c.hasNumEntities = n, true
	}
}

// WithNumRelations sets the number of synthesized relations.
// Default: max(floor(length/num_entities²)+1, floor(num_entities*0.7)).
func WithNumRelations(n int) Option {
	return func(c *config) {
		c.numRelations, c.hasNumRelations = n, true
	}
}

// WithEntityPrefix sets the prefix of synthesized entity IDs (default "e").
func WithEntityPrefix(prefix string) Option {
	return func(c *config) {
		c.entityPrefix = prefix
	}
}

// WithRelationPrefix sets the prefix of synthesized relation IDs (default "rel").
func WithRelationPrefix(prefix string) Option {
	return func(c *config) {
		c.relationPrefix = prefix
	}
}

// WithRelationTriples selects the tail universe. true (default): tails are
// entities. false: tails are num_entities random attribute strings.
func WithRelationTriples(enabled bool) Option {
	return func(c *config) {
		c.relationTriples = enabled
	}
}

// WithEntityIDs replaces synthesized entity IDs with ids.
func WithEntityIDs(ids ...string) Option {
	cp := slices.Clone(ids)
	if cp == nil {
		cp = []string{}
	}
	return func(c *config) {
		c.entityIDs = cp
	}
}

// WithRelationIDs replaces synthesized relation IDs with ids.
func WithRelationIDs(ids ...string) Option {
	cp := slices.Clone(ids)
	if cp == nil {
		cp = []string{}
	}
	return func(c *config) {
		c.relationIDs = cp
	}
}
