// Package strawman generates synthetic string tables for tests and examples:
// random-content data frames and random knowledge-graph triples.
//
// What is inside?
//
//	dummy/  — DummyDF (rows×cols random strings) and DummyTriples (unique
//	          head/relation/tail rows covering every entity, no self-loops)
//	seq/    — random-sequence primitives: Choose, Permute, PermuteToLength,
//	          RandomString, Split
//	table/  — Table, the immutable labelled string grid both generators return
//
// Every generator takes functional options and is reproducible under
// dummy.WithSeed. Without a seed one is picked in [0, 10000) and logged at
// debug level (set STRAWMAN_LOG_LEVEL=debug to see it), so a failing fixture
// can always be replayed.
//
// Quick example:
//
//	trips, err := dummy.DummyTriples(10, dummy.WithSeed(7))
//	if err != nil {
//		// errors.Is(err, dummy.ErrValidation)
//	}
//	fmt.Println(trips)
//
//	   head relation tail
//	0    e4     rel1   e0
//	1    e3     rel1   e1
//	...
//
//	go get github.com/katalvlaran/strawman
package strawman
