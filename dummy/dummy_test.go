package dummy_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strawman/dummy"
	"github.com/katalvlaran/strawman/seq"
	"github.com/katalvlaran/strawman/table"
)

// columnSet returns the distinct values of a column.
func columnSet(t *testing.T, tb *table.Table, name string) map[string]bool {
	t.Helper()
	vals, err := tb.Column(name)
	require.NoError(t, err)
	set := make(map[string]bool, len(vals))
	for _, v := range vals {
		set[v] = true
	}
	return set
}

// assertValidTriples checks row count, uniqueness and the no-self-loop rule.
func assertValidTriples(t *testing.T, tb *table.Table, length int) {
	t.Helper()
	rows, cols := tb.Shape()
	require.Equal(t, length, rows)
	require.Equal(t, 3, cols)
	assert.False(t, tb.HasDuplicateRows(), "rows must be unique")
	for _, r := range tb.Records() {
		assert.NotEqual(t, r[0], r[2], "self-loop in %v", r)
	}
}

func TestDummyDF_Shape(t *testing.T) {
	t.Parallel()
	for _, shape := range [][2]int{{10, 3}, {1, 1}, {0, 4}, {3, 0}, {0, 0}, {25, 7}} {
		tb, err := dummy.DummyDF(shape[0], shape[1], dummy.WithSeed(1))
		require.NoError(t, err)
		r, c := tb.Shape()
		assert.Equal(t, shape[0], r)
		assert.Equal(t, shape[1], c)
	}
}

func TestDummyDF_Cells(t *testing.T) {
	t.Parallel()
	tb, err := dummy.DummyDF(6, 4, dummy.WithSeed(3), dummy.WithContentLength(5), dummy.WithAllowedChars("xyz"))
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2", "3"}, tb.Columns())
	for _, row := range tb.Records() {
		for _, cell := range row {
			assert.Len(t, cell, 5)
			assert.Empty(t, strings.Trim(cell, "xyz"))
		}
	}
}

func TestDummyDF_Deterministic(t *testing.T) {
	t.Parallel()
	a, err := dummy.DummyDF(10, 3, dummy.WithSeed(17))
	require.NoError(t, err)
	b, err := dummy.DummyDF(10, 3, dummy.WithSeed(17))
	require.NoError(t, err)
	assert.True(t, a.Equal(b))

	c, err := dummy.DummyDF(10, 3, dummy.WithSeed(18))
	require.NoError(t, err)
	assert.False(t, a.Equal(c))
}

func TestDummyDF_RowMajorFromSharedRand(t *testing.T) {
	t.Parallel()
	tb, err := dummy.DummyDF(2, 3, dummy.WithSeed(5))
	require.NoError(t, err)

	rng := seq.NewRand(5)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			want, err := seq.RandomString(dummy.DefaultContentLength, seq.ASCIILetters, rng)
			require.NoError(t, err)
			got, err := tb.At(i, j)
			require.NoError(t, err)
			assert.Equal(t, want, got, "cell (%d,%d)", i, j)
		}
	}
}

func TestDummyDF_Columns(t *testing.T) {
	t.Parallel()
	tb, err := dummy.DummyDF(2, 2, dummy.WithColumns("a", "b"), dummy.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, tb.Columns())
}

func TestWithColumns_NoLabelsUsesDefault(t *testing.T) {
	t.Parallel()
	df, err := dummy.DummyDF(3, 3, dummy.WithColumns(), dummy.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2"}, df.Columns())

	trips, err := dummy.DummyTriples(10, dummy.WithColumns(), dummy.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, dummy.DefaultTripleColumns(), trips.Columns())
}

func TestDummyDF_BadInputs(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		rows, cols int
		opts       []dummy.Option
		kind       error
	}{
		{"negative_rows", -1, 3, nil, dummy.ErrNegative},
		{"negative_cols", 3, -1, nil, dummy.ErrNegative},
		{"negative_content", 3, 3, []dummy.Option{dummy.WithContentLength(-2)}, dummy.ErrNegative},
		{"column_mismatch", 3, 3, []dummy.Option{dummy.WithColumns("a", "b")}, dummy.ErrColumnCount},
		{"empty_alphabet", 3, 3, []dummy.Option{dummy.WithAllowedChars("")}, dummy.ErrEmptyAlphabet},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			tb, err := dummy.DummyDF(tc.rows, tc.cols, tc.opts...)
			assert.Nil(t, tb)
			assert.ErrorIs(t, err, dummy.ErrValidation)
			assert.ErrorIs(t, err, tc.kind)

			var verr *dummy.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, dummy.MethodDummyDF, verr.Method)
		})
	}
}

func TestDummyDF_LogsAutoSeed(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	_, err := dummy.DummyDF(2, 2, dummy.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "selected seed")
	assert.Contains(t, buf.String(), "seed=")

	buf.Reset()
	_, err = dummy.DummyDF(2, 2, dummy.WithLogger(logger), dummy.WithSeed(4))
	require.NoError(t, err)
	assert.Empty(t, buf.String(), "explicit seeds are not logged")
}

func TestDummyTriples_Basic(t *testing.T) {
	t.Parallel()
	const numEntities = 5
	tb, err := dummy.DummyTriples(10,
		dummy.WithNumEntities(numEntities),
		dummy.WithNumRelations(3),
		dummy.WithEntityPrefix("e"),
		dummy.WithSeed(1),
	)
	require.NoError(t, err)
	assertValidTriples(t, tb, 10)
	assert.Equal(t, dummy.DefaultTripleColumns(), tb.Columns())

	heads := columnSet(t, tb, dummy.HeadColumn)
	tails := columnSet(t, tb, dummy.TailColumn)
	entities := map[string]bool{}
	for h := range heads {
		assert.True(t, strings.HasPrefix(h, "e"))
		entities[h] = true
	}
	for v := range tails {
		assert.True(t, strings.HasPrefix(v, "e"))
		entities[v] = true
	}
	assert.Len(t, entities, numEntities)
	assert.Len(t, heads, numEntities, "coverage offers every entity as a head")
	assert.Len(t, columnSet(t, tb, dummy.RelationColumn), 3)
}

func TestDummyTriples_Properties(t *testing.T) {
	t.Parallel()
	for _, length := range []int{4, 5, 10, 17, 50, 120} {
		for seed := int64(0); seed < 5; seed++ {
			tb, err := dummy.DummyTriples(length, dummy.WithSeed(seed))
			require.NoError(t, err, "length=%d seed=%d", length, seed)
			assertValidTriples(t, tb, length)

			numEntities := int(float64(length) * 0.7)
			assert.Len(t, columnSet(t, tb, dummy.HeadColumn), numEntities,
				"length=%d seed=%d", length, seed)
		}
	}
}

func TestDummyTriples_Deterministic(t *testing.T) {
	t.Parallel()
	a, err := dummy.DummyTriples(10, dummy.WithSeed(17))
	require.NoError(t, err)
	b, err := dummy.DummyTriples(10, dummy.WithSeed(17))
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}

func TestDummyTriples_WithRandAdvances(t *testing.T) {
	t.Parallel()
	rng := seq.NewRand(9)
	a, err := dummy.DummyTriples(30, dummy.WithRand(rng))
	require.NoError(t, err)
	b, err := dummy.DummyTriples(30, dummy.WithRand(rng))
	require.NoError(t, err)
	assert.False(t, a.Equal(b), "a shared generator keeps advancing")

	c, err := dummy.DummyTriples(30, dummy.WithRand(seq.NewRand(9)))
	require.NoError(t, err)
	assert.True(t, a.Equal(c))
}

func TestDummyTriples_SuppliedIDs(t *testing.T) {
	t.Parallel()
	entities := []string{"alice", "bob", "carol", "dave"}
	relations := []string{"knows", "likes"}

	tb, err := dummy.DummyTriples(20,
		dummy.WithEntityIDs(entities...),
		dummy.WithRelationIDs(relations...),
		dummy.WithSeed(2),
	)
	require.NoError(t, err)
	assertValidTriples(t, tb, 20)

	heads := columnSet(t, tb, dummy.HeadColumn)
	assert.Len(t, heads, len(entities))
	for _, e := range entities {
		assert.True(t, heads[e], "missing head %q", e)
	}
	rels := columnSet(t, tb, dummy.RelationColumn)
	assert.Len(t, rels, len(relations))
	for _, r := range relations {
		assert.True(t, rels[r], "missing relation %q", r)
	}
}

func TestDummyTriples_SuppliedIDsKeepDerivedCounts(t *testing.T) {
	t.Parallel()

	// floor(10*0.7)=7 entities ⇒ max(10/49+1, floor(7*0.7)) = 4 relations.
	tb, err := dummy.DummyTriples(10, dummy.WithEntityIDs("a", "b", "c"), dummy.WithSeed(5))
	require.NoError(t, err)
	assertValidTriples(t, tb, 10)
	assert.Equal(t, map[string]bool{"a": true, "b": true, "c": true}, columnSet(t, tb, dummy.HeadColumn))
	assert.Equal(t,
		map[string]bool{"rel0": true, "rel1": true, "rel2": true, "rel3": true},
		columnSet(t, tb, dummy.RelationColumn))

	// floor(4*0.7)=2 entities ⇒ 2 relations and 2 attribute tails: 1×2×2 = 4 rows.
	tb, err = dummy.DummyTriples(4,
		dummy.WithEntityIDs("a"),
		dummy.WithRelationTriples(false),
		dummy.WithSeed(5),
	)
	require.NoError(t, err)
	assertValidTriples(t, tb, 4)
	assert.Equal(t, map[string]bool{"rel0": true, "rel1": true}, columnSet(t, tb, dummy.RelationColumn))
	assert.Len(t, columnSet(t, tb, dummy.TailColumn), 2)
}

func TestDummyTriples_AttributeMode(t *testing.T) {
	t.Parallel()
	tb, err := dummy.DummyTriples(10,
		dummy.WithRelationTriples(false),
		dummy.WithColumns("subject", "predicate", "object"),
		dummy.WithSeed(4),
	)
	require.NoError(t, err)
	assertValidTriples(t, tb, 10)
	assert.Equal(t, []string{"subject", "predicate", "object"}, tb.Columns())

	heads := columnSet(t, tb, "subject")
	objects := columnSet(t, tb, "object")
	for v := range objects {
		assert.False(t, heads[v], "attribute %q overlaps an entity", v)
		assert.Len(t, v, dummy.DefaultContentLength)
	}
}

func TestDummyTriples_AttributeEmptyStrings(t *testing.T) {
	t.Parallel()
	tb, err := dummy.DummyTriples(10,
		dummy.WithRelationTriples(false),
		dummy.WithContentLength(0),
		dummy.WithSeed(4),
	)
	require.NoError(t, err)
	assertValidTriples(t, tb, 10)
	assert.Equal(t, map[string]bool{"": true}, columnSet(t, tb, dummy.TailColumn))
}

func TestDummyTriples_SingleTailSelfLoop(t *testing.T) {
	t.Parallel()
	triples, err := dummy.GenerateTriples(2,
		dummy.WithEntityIDs("solo"),
		dummy.WithRelationIDs("r0", "r1"),
		dummy.WithSeed(1),
	)
	require.NoError(t, err)
	assert.ElementsMatch(t, []dummy.Triple{
		{Head: "solo", Relation: "r0", Tail: "solo"},
		{Head: "solo", Relation: "r1", Tail: "solo"},
	}, triples)
}

func TestDummyTriples_UUIDEntities(t *testing.T) {
	t.Parallel()
	a, err := dummy.DummyTriples(12, dummy.WithUUIDEntityIDs(), dummy.WithSeed(3))
	require.NoError(t, err)
	assertValidTriples(t, a, 12)
	for h := range columnSet(t, a, dummy.HeadColumn) {
		u, err := uuid.Parse(h)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(4), u.Version())
	}

	b, err := dummy.DummyTriples(12, dummy.WithUUIDEntityIDs(), dummy.WithSeed(3))
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}

func TestDummyTriples_IDSchemes(t *testing.T) {
	t.Parallel()
	tb, err := dummy.DummyTriples(10,
		dummy.WithNumEntities(4),
		dummy.WithNumRelations(2),
		dummy.WithEntityIDScheme(dummy.PrefixIDFn("node-")),
		dummy.WithRelationIDScheme(dummy.LetterIDFn("")),
		dummy.WithSeed(8),
	)
	require.NoError(t, err)
	assertValidTriples(t, tb, 10)
	assert.Equal(t, map[string]bool{"A": true, "B": true}, columnSet(t, tb, dummy.RelationColumn))
	for h := range columnSet(t, tb, dummy.HeadColumn) {
		assert.True(t, strings.HasPrefix(h, "node-"))
	}
}

func TestDummyTriples_ZeroLength(t *testing.T) {
	t.Parallel()
	tb, err := dummy.DummyTriples(0, dummy.WithSeed(1))
	require.NoError(t, err)
	r, c := tb.Shape()
	assert.Zero(t, r)
	assert.Equal(t, 3, c)
}

func TestDummyTriples_BadInputs(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		length int
		opts   []dummy.Option
		kind   error
	}{
		{"more_entities_than_rows", 1, []dummy.Option{dummy.WithNumEntities(100), dummy.WithNumRelations(2)}, dummy.ErrExceedsLength},
		{"more_relations_than_rows", 10, []dummy.Option{dummy.WithNumEntities(1), dummy.WithNumRelations(20)}, dummy.ErrExceedsLength},
		{"not_enough_unique", 10, []dummy.Option{dummy.WithNumEntities(1), dummy.WithNumRelations(2)}, dummy.ErrInfeasible},
		{"negative_length", -10, []dummy.Option{dummy.WithNumEntities(1), dummy.WithNumRelations(2)}, dummy.ErrNegative},
		{"negative_entities", 10, []dummy.Option{dummy.WithNumEntities(-1)}, dummy.ErrNegative},
		{"negative_relations", 10, []dummy.Option{dummy.WithNumRelations(-1)}, dummy.ErrNegative},
		{"negative_content", 10, []dummy.Option{dummy.WithContentLength(-1)}, dummy.ErrNegative},
		{"too_many_columns", 10, []dummy.Option{dummy.WithColumns("too", "many", "values", "for", "triples")}, dummy.ErrColumnCount},
		{"derived_single_entity", 1, nil, dummy.ErrInfeasible},
		{"derived_too_many_relations", 2, nil, dummy.ErrExceedsLength},
		{"derived_not_enough_unique", 3, nil, dummy.ErrInfeasible},
		{"empty_entity_ids", 5, []dummy.Option{dummy.WithEntityIDs()}, dummy.ErrInfeasible},
		{"too_many_entity_ids", 2, []dummy.Option{dummy.WithEntityIDs("a", "b", "c"), dummy.WithRelationIDs("r")}, dummy.ErrExceedsLength},
		{"duplicate_entity_ids", 2, []dummy.Option{dummy.WithEntityIDs("a", "a"), dummy.WithRelationIDs("r")}, dummy.ErrInfeasible},
		{"attribute_empty_alphabet", 10, []dummy.Option{dummy.WithRelationTriples(false), dummy.WithAllowedChars("")}, dummy.ErrEmptyAlphabet},
		{"attribute_over_constrained", 10, []dummy.Option{
			dummy.WithRelationTriples(false),
			dummy.WithNumEntities(2),
			dummy.WithNumRelations(2),
			dummy.WithAllowedChars("a"),
			dummy.WithContentLength(1),
		}, dummy.ErrInfeasible},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			tb, err := dummy.DummyTriples(tc.length, tc.opts...)
			assert.Nil(t, tb)
			assert.ErrorIs(t, err, dummy.ErrValidation)
			assert.ErrorIs(t, err, tc.kind)

			var verr *dummy.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, dummy.MethodDummyTriples, verr.Method)
			assert.True(t, strings.HasPrefix(err.Error(), dummy.MethodDummyTriples+": "))
		})
	}
}

func TestGenerateTriples_MatchesTable(t *testing.T) {
	t.Parallel()
	triples, err := dummy.GenerateTriples(15, dummy.WithSeed(6))
	require.NoError(t, err)
	tb, err := dummy.DummyTriples(15, dummy.WithSeed(6))
	require.NoError(t, err)

	require.Len(t, triples, 15)
	for i, tr := range triples {
		row, err := tb.Row(i)
		require.NoError(t, err)
		assert.Equal(t, tr.Strings(), row)
	}
}

func TestTriplesTable(t *testing.T) {
	t.Parallel()
	triples := []dummy.Triple{{Head: "a", Relation: "r", Tail: "b"}}

	tb, err := dummy.TriplesTable(triples, nil)
	require.NoError(t, err)
	assert.Equal(t, dummy.DefaultTripleColumns(), tb.Columns())

	_, err = dummy.TriplesTable(triples, []string{"only", "two"})
	assert.ErrorIs(t, err, dummy.ErrColumnCount)
	assert.ErrorIs(t, err, dummy.ErrValidation)
}

func TestOptions_PanicOnNil(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { dummy.WithRand(nil) })
	assert.Panics(t, func() { dummy.WithLogger(nil) })
	assert.Panics(t, func() { dummy.WithEntityIDScheme(nil) })
	assert.Panics(t, func() { dummy.WithRelationIDScheme(nil) })
}

func TestLetterIDFn(t *testing.T) {
	t.Parallel()
	letters := dummy.LetterIDFn("")
	cases := map[int]string{0: "A", 25: "Z", 26: "AA", 27: "AB", 701: "ZZ", 702: "AAA"}
	for in, want := range cases {
		assert.Equal(t, want, letters(in))
	}
	assert.Equal(t, "col-AB", dummy.LetterIDFn("col-")(27))
	assert.Panics(t, func() { letters(-1) })
	assert.Equal(t, "rel7", dummy.PrefixIDFn("rel")(7))
}
