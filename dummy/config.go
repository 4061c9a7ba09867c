// SPDX-License-Identifier: MIT
// Package: strawman/dummy
//
// config.go - per-call configuration and deterministic defaults.
//
// Defaults:
//   • rng             = nil → auto-selected seed, logged at debug
//   • logger          = nil → logging.Default() tagged component=dummy
//   • contentLength   = DefaultContentLength (3)
//   • allowedChars    = seq.ASCIILetters
//   • columns         = nil → positional ("0".."n-1") or head/relation/tail
//   • entityPrefix    = "e",   relationPrefix = "rel"
//   • relationTriples = true
//   • entity/relation IDs and ID schemes unset → prefix + decimal index

package dummy

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/strawman/internal/logging"
	"github.com/katalvlaran/strawman/seq"
)

// config aggregates every knob of a generator call. Built by newConfig and
// passed by value.
type config struct {
	rng    *rand.Rand
	logger *log.Logger

	contentLength int
	allowedChars  string
	columns       []string // nil: generator default

	numEntities     int
	hasNumEntities  bool
	numRelations    int
	hasNumRelations bool

	entityPrefix   string
	relationPrefix string
	entityIDFn     IDFn // nil: PrefixIDFn(entityPrefix)
	relationIDFn   IDFn // nil: PrefixIDFn(relationPrefix)
	uuidEntities   bool

	relationTriples bool
	entityIDs       []string // nil: synthesize
	relationIDs     []string // nil: synthesize
}

// newConfig applies opts over the defaults, in order.
// Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	cfg := config{
		contentLength:   DefaultContentLength,
		allowedChars:    seq.ASCIILetters,
		entityPrefix:    DefaultEntityPrefix,
		relationPrefix:  DefaultRelationPrefix,
		relationTriples: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// log returns the configured logger, or the package default.
func (c config) log() *log.Logger {
	if c.logger != nil {
		return c.logger
	}
	return logging.WithComponent(nil, "dummy")
}

// random returns the configured generator, or seq.AutoRand tagged with method
// so the call can be replayed with WithSeed.
func (c config) random(method string) *rand.Rand {
	if c.rng != nil {
		return c.rng
	}
	return seq.AutoRand(c.log(), "method", method)
}
