// SPDX-License-Identifier: MIT
// Package: strawman/dummy
//
// impl_triples.go - GenerateTriples / DummyTriples / TriplesTable.
//
// Model:
//   - heads = entity IDs (supplied, UUID, scheme or "<prefix><i>").
//   - rels  = relation IDs (supplied, scheme or "<prefix><i>").
//   - tails = heads (relation triples) or num_entities random strings
//     (attribute triples).
//
// Sampling (after validation):
//   1) Coverage, once: extend heads and rels to max(|heads|,|rels|) with
//      seq.PermuteToLength, pair them positionally, draw a tail for each pair.
//   2) Fill: draw head, relation, tail uniformly until length distinct
//      triples exist.
//   Tails equal to the head are redrawn unless there is a single tail value.
//   Duplicates are absorbed by an insertion-ordered set.
//
// Determinism (generator consumption order):
//   UUID entity IDs → attribute tails → head permutations → relation
//   permutations → coverage tails → fill draws (head, relation, tail).
//
// Termination:
//   checkUniverses proves that every head has an admissible tail and that at
//   least length admissible triples exist; each has non-zero probability per
//   fill draw, so the rejection loop ends with probability 1.

package dummy

import (
	"math/rand"

	"github.com/katalvlaran/strawman/seq"
	"github.com/katalvlaran/strawman/table"
)

// Triple is one (head, relation, tail) row.
type Triple struct {
	Head     string
	Relation string
	Tail     string
}

// Strings returns the triple as a table row.
func (t Triple) Strings() []string {
	return []string{t.Head, t.Relation, t.Tail}
}

// DummyTriples returns a table of exactly length unique triples with columns
// head, relation, tail (or WithColumns).
//
// Example rows for DummyTriples(10):
//
//	   head relation tail
//	0    e4     rel1   e0
//	1    e3     rel1   e1
func DummyTriples(length int, opts ...Option) (*table.Table, error) {
	cfg := newConfig(opts...)
	triples, err := generateTriples(length, cfg)
	if err != nil {
		return nil, err
	}

	return TriplesTable(triples, cfg.columns)
}

// GenerateTriples returns the rows DummyTriples would tabulate, in insertion
// order.
func GenerateTriples(length int, opts ...Option) ([]Triple, error) {
	return generateTriples(length, newConfig(opts...))
}

// TriplesTable tabulates triples under columns (nil ⇒ DefaultTripleColumns).
// columns must hold exactly TripleWidth labels.
func TriplesTable(triples []Triple, columns []string) (*table.Table, error) {
	if columns == nil {
		columns = DefaultTripleColumns()
	}
	if len(columns) != TripleWidth {
		return nil, invalidf(MethodTriplesTable, ErrColumnCount,
			"columns can only be length of %d but got %q", TripleWidth, columns)
	}
	rows := make([][]string, len(triples))
	for i, t := range triples {
		rows[i] = t.Strings()
	}

	return table.New(columns, rows)
}

// generateTriples validates, resolves universes and runs both sampling phases.
func generateTriples(length int, cfg config) ([]Triple, error) {
	const m = MethodDummyTriples

	// 1) Raw request.
	if err := checkCoherence(length, cfg); err != nil {
		return nil, err
	}

	// 2) Defaults.
	numEntities := resolveNumEntities(length, cfg)
	numRelations := resolveNumRelations(length, numEntities, cfg)
	if !cfg.relationTriples && numEntities > 0 && cfg.allowedChars == "" {
		return nil, invalidf(m, ErrEmptyAlphabet, "allowed chars must not be empty for attribute triples")
	}

	// 3) Universes.
	rng := cfg.random(m)
	heads, err := entityUniverse(numEntities, cfg, rng)
	if err != nil {
		return nil, err
	}
	rels := relationUniverse(numRelations, cfg)
	tails := heads
	if !cfg.relationTriples {
		if tails, err = seq.RandomStrings(numEntities, cfg.contentLength, cfg.allowedChars, rng); err != nil {
			return nil, err
		}
	}
	if err = checkUniverses(length, heads, rels, tails); err != nil {
		return nil, err
	}

	rows := newTripleSet(length)
	if length == 0 {
		return rows.slice(), nil
	}

	// 4) Coverage phase.
	width := max(len(heads), len(rels))
	coverHeads, err := seq.PermuteToLength(heads, width, rng)
	if err != nil {
		return nil, err
	}
	coverRels, err := seq.PermuteToLength(rels, width, rng)
	if err != nil {
		return nil, err
	}
	var tail string
	for i := range coverHeads {
		if tail, err = chooseTail(coverHeads[i], tails, rng); err != nil {
			return nil, err
		}
		rows.add(Triple{Head: coverHeads[i], Relation: coverRels[i], Tail: tail})
	}

	// 5) Fill phase.
	var head, rel string
	for rows.size() < length {
		if head, err = seq.Choose(heads, rng); err != nil {
			return nil, err
		}
		if rel, err = seq.Choose(rels, rng); err != nil {
			return nil, err
		}
		if tail, err = chooseTail(head, tails, rng); err != nil {
			return nil, err
		}
		rows.add(Triple{Head: head, Relation: rel, Tail: tail})
	}

	return rows.slice(), nil
}

// resolveNumEntities: explicit count, else floor(length*0.7). Supplied entity
// IDs do not change the count; it still sizes the relations and attribute tails.
func resolveNumEntities(length int, cfg config) int {
	if cfg.hasNumEntities {
		return cfg.numEntities
	}
	return int(float64(length) * entityRatio)
}

// resolveNumRelations: explicit count, else len(relation IDs), else
// max(floor(length/numEntities²)+1, floor(numEntities*0.7)); 0 without entities.
func resolveNumRelations(length, numEntities int, cfg config) int {
	switch {
	case cfg.hasNumRelations:
		return cfg.numRelations
	case cfg.relationIDs != nil:
		return len(cfg.relationIDs)
	case numEntities == 0:
		return 0
	default:
		minimum := length/(numEntities*numEntities) + 1
		return max(minimum, int(float64(numEntities)*relationRatio))
	}
}

// entityUniverse resolves the head values.
func entityUniverse(n int, cfg config, rng *rand.Rand) ([]string, error) {
	switch {
	case cfg.entityIDs != nil:
		return cfg.entityIDs, nil
	case cfg.uuidEntities:
		return uuidIDs(n, rng)
	case cfg.entityIDFn != nil:
		return makeIDs(cfg.entityIDFn, n), nil
	default:
		return makeIDs(PrefixIDFn(cfg.entityPrefix), n), nil
	}
}

// relationUniverse resolves the relation values.
func relationUniverse(n int, cfg config) []string {
	switch {
	case cfg.relationIDs != nil:
		return cfg.relationIDs
	case cfg.relationIDFn != nil:
		return makeIDs(cfg.relationIDFn, n)
	default:
		return makeIDs(PrefixIDFn(cfg.relationPrefix), n)
	}
}

// chooseTail draws a tail different from head. With a single tail value the
// self-loop is unavoidable and accepted.
func chooseTail(head string, tails []string, rng *rand.Rand) (string, error) {
	tail, err := seq.Choose(tails, rng)
	for err == nil && tail == head && len(tails) != 1 {
		tail, err = seq.Choose(tails, rng)
	}
	return tail, err
}

// tripleSet is an insertion-ordered set of triples.
type tripleSet struct {
	index map[Triple]struct{}
	order []Triple
}

func newTripleSet(capacity int) *tripleSet {
	return &tripleSet{
		index: make(map[Triple]struct{}, capacity),
		order: make([]Triple, 0, capacity),
	}
}

// add inserts t unless present and reports whether it was new.
func (s *tripleSet) add(t Triple) bool {
	if _, ok := s.index[t]; ok {
		return false
	}
	s.index[t] = struct{}{}
	s.order = append(s.order, t)
	return true
}

func (s *tripleSet) size() int { return len(s.order) }

func (s *tripleSet) slice() []Triple { return s.order }
