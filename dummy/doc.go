// Package dummy generates synthetic string tables for tests and examples.
//
// Two entry points cover the package:
//
//   - DummyDF(rows, cols, opts...):  a rows×cols grid of independent random
//     strings, filled row-major from a single generator.
//   - DummyTriples(length, opts...): exactly length unique (head, relation,
//     tail) rows over an entity and a relation universe. Every entity and
//     relation is offered at least once, and head ≠ tail unless only a single
//     tail value exists. GenerateTriples returns the same rows as []Triple.
//
// Configuration:
//
//	Functional options (Option) resolve into an immutable config per call.
//	WithSeed / WithRand make a call reproducible; without them a seed in
//	[0, seq.MaxAutoSeed) is chosen and logged at debug level.
//
// Errors:
//
//	Every rejected request returns a *ValidationError before any triple is
//	sampled. It matches errors.Is(err, ErrValidation) and the specific kind
//	(ErrNegative, ErrExceedsLength, ErrColumnCount, ErrInfeasible,
//	ErrEmptyAlphabet). No partial table is ever returned.
//
// Concurrency:
//
//	Calls share no state. A *rand.Rand passed with WithRand must not be used by
//	two calls at the same time.
package dummy
