// SPDX-License-Identifier: MIT
// Package: strawman/seq
//
// rng.go - construction of deterministic generators.
//
// Policy:
//   - An explicit seed always wins: NewRand(seed) ⇒ identical streams.
//   - Without a seed, AutoSeed picks one in [0, MaxAutoSeed) from the
//     process-wide source and AutoRand logs it, so any run can be replayed.

package seq

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/strawman/internal/logging"
)

// MaxAutoSeed bounds the seeds chosen by AutoSeed (exclusive).
const MaxAutoSeed int64 = 10000

// NewRand returns a generator seeded with seed.
// Complexity: O(1).
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// AutoSeed draws a seed in [0, MaxAutoSeed) from the unseeded global source.
func AutoSeed() int64 {
	return rand.Int63n(MaxAutoSeed)
}

// AutoRand creates a generator from AutoSeed and logs "selected seed" at debug
// level on logger, with keyvals followed by the seed. A nil logger means the
// package default.
func AutoRand(logger *log.Logger, keyvals ...interface{}) *rand.Rand {
	if logger == nil {
		logger = logging.WithComponent(nil, "seq")
	}
	seed := AutoSeed()
	kv := append(keyvals[:len(keyvals):len(keyvals)], "seed", seed)
	logger.Debug("selected seed", kv...)

	return NewRand(seed)
}

// Resolve returns rng unchanged when non-nil, otherwise AutoRand(nil).
func Resolve(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	return AutoRand(nil)
}
