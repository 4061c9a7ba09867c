// SPDX-License-Identifier: MIT
// Package: strawman/dummy
//
// validators.go - request checks run before any sampling.
//
// Two stages guard DummyTriples:
//   1) checkCoherence looks at the raw request (what the caller asked for).
//   2) checkUniverses looks at the resolved universes (after defaulting and
//      ID synthesis) and proves that the sampling loops terminate with exactly
//      length rows.
// Both stages return the first violation as a *ValidationError.

package dummy

// checkNonNegative rejects v < 0, naming the parameter.
func checkNonNegative(method, name string, v int) error {
	if v < 0 {
		return invalidf(method, ErrNegative, "%s must be >= 0 but was %d", name, v)
	}
	return nil
}

// checkCoherence validates the raw DummyTriples request.
//
// Zero-valued num_entities / num_rel are treated as "not constraining" by the
// length and feasibility checks, matching how an absent value behaves.
// Complexity: O(1).
func checkCoherence(length int, cfg config) error {
	const m = MethodDummyTriples

	if err := checkNonNegative(m, "length", length); err != nil {
		return err
	}
	if cfg.hasNumEntities {
		if err := checkNonNegative(m, "num_entities", cfg.numEntities); err != nil {
			return err
		}
	}
	if cfg.hasNumRelations {
		if err := checkNonNegative(m, "num_rel", cfg.numRelations); err != nil {
			return err
		}
	}
	if err := checkNonNegative(m, "content_length", cfg.contentLength); err != nil {
		return err
	}
	if cfg.hasNumEntities && cfg.numEntities > length {
		return invalidf(m, ErrExceedsLength,
			"num_entities=%d cannot be larger than length=%d", cfg.numEntities, length)
	}
	if cfg.hasNumRelations && cfg.numRelations > length {
		return invalidf(m, ErrExceedsLength,
			"num_rel=%d cannot be larger than length=%d", cfg.numRelations, length)
	}
	if cfg.columns != nil && len(cfg.columns) != TripleWidth {
		return invalidf(m, ErrColumnCount,
			"columns can only be length of %d but got %q", TripleWidth, cfg.columns)
	}
	if cfg.relationTriples && cfg.numEntities > 0 && cfg.numRelations > 0 {
		possible := cfg.numEntities * cfg.numRelations * (cfg.numEntities - 1)
		if possible < length {
			return invalidf(m, ErrInfeasible,
				"cannot create %d unique rows with %d entities and %d relations",
				length, cfg.numEntities, cfg.numRelations)
		}
	}

	return nil
}

// checkUniverses validates the resolved universes against length.
//
// It guarantees that:
//   - every universe is non-empty when rows are requested;
//   - the coverage phase, which inserts max(|heads|,|rels|) triples, cannot
//     overshoot length;
//   - every head has at least one admissible tail, so tail resampling ends;
//   - at least length distinct admissible triples exist, so the fill phase ends.
//
// Complexity: O(|heads| + |rels| + |tails|).
func checkUniverses(length int, heads, rels, tails []string) error {
	const m = MethodDummyTriples
	if length == 0 {
		return nil
	}
	if len(heads) == 0 || len(rels) == 0 || len(tails) == 0 {
		return invalidf(m, ErrInfeasible,
			"cannot create %d rows from %d entities, %d relations and %d tail values",
			length, len(heads), len(rels), len(tails))
	}
	if width := max(len(heads), len(rels)); width > length {
		return invalidf(m, ErrExceedsLength,
			"%d entities and %d relations need at least %d rows but length=%d",
			len(heads), len(rels), width, length)
	}

	distinctTails := distinct(tails)
	singleTail := len(tails) == 1
	relCount := len(distinct(rels))

	possible := 0
	for h := range distinct(heads) {
		admissible := len(distinctTails)
		if _, self := distinctTails[h]; self && !singleTail {
			admissible--
		}
		if admissible == 0 {
			return invalidf(m, ErrInfeasible, "no tail value differs from head %q", h)
		}
		possible += relCount * admissible
	}
	if possible < length {
		return invalidf(m, ErrInfeasible,
			"cannot create %d unique rows: only %d distinct triples obtainable", length, possible)
	}

	return nil
}

// distinct returns the set of values in s.
func distinct(s []string) map[string]struct{} {
	set := make(map[string]struct{}, len(s))
	for _, v := range s {
		set[v] = struct{}{}
	}
	return set
}
