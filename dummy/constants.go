package dummy

// Method names used as error context.
const (
	// MethodDummyDF is the canonical name of DummyDF.
	MethodDummyDF = "DummyDF"
	// MethodDummyTriples is the canonical name of DummyTriples and GenerateTriples.
	MethodDummyTriples = "DummyTriples"
	// MethodTriplesTable is the canonical name of TriplesTable.
	MethodTriplesTable = "TriplesTable"
)

// Defaults applied when the matching option is absent.
const (
	// DefaultContentLength is the length of every generated cell string.
	DefaultContentLength = 3
	// DefaultEntityPrefix prefixes synthesized entity IDs ("e0","e1",...).
	DefaultEntityPrefix = "e"
	// DefaultRelationPrefix prefixes synthesized relation IDs ("rel0",...).
	DefaultRelationPrefix = "rel"
)

// TripleWidth is the number of columns of a triple table.
const TripleWidth = 3

// Column labels of a triple table when WithColumns is not given.
const (
	HeadColumn     = "head"
	RelationColumn = "relation"
	TailColumn     = "tail"
)

// DefaultTripleColumns returns a fresh copy of the default triple labels.
func DefaultTripleColumns() []string {
	return []string{HeadColumn, RelationColumn, TailColumn}
}

// Ratios used to derive universe sizes from the requested length.
const (
	entityRatio   = 0.7 // num_entities = floor(length * entityRatio)
	relationRatio = 0.7 // num_rel ≥ floor(num_entities * relationRatio)
)
