// Package seq provides the small random-sequence primitives the generators in
// package dummy are built from:
//
//   - Choose:          uniform pick of one element.
//   - Permute:         fresh Fisher–Yates permutation (input untouched).
//   - PermuteToLength: concatenated permutations truncated to a target length,
//     so every element appears once the length reaches len(s).
//   - RandomString:    fixed-size string drawn with replacement from an alphabet.
//   - Split:           contiguous near-equal parts, the last absorbing the remainder.
//
// Determinism:
//
//	All helpers draw only from the *rand.Rand they are handed. Passing a nil rng
//	is allowed and behaves like Resolve(nil): a fresh generator is seeded from
//	AutoSeed and the seed is logged at debug level for replay.
//
// Concurrency:
//
//	*rand.Rand is not goroutine-safe. Give every goroutine its own generator.
package seq
