// Package harness provides differential testing of a two-integer function
// against a trusted reference model.
//
// A Harness has two independent entry points and both should run for full
// coverage:
//
//   - RunFixedCases checks literal cases with known expected results. Fixed
//     cases document edge behavior, including behavior that is known to be
//     wrong.
//   - RunPropertyCheck compares the implementation against the reference model
//     over a generated Domain of input pairs.
//
// The reference model is ReferenceMax unless replaced with WithReference. It
// never shares code with the implementation under test, so any disagreement
// is attributed to the implementation.
//
// # Domains
//
// A Domain is checked in three phases, in this order:
//
//  1. Pairs: explicit input pairs, usually replayed from a regression corpus.
//  2. Values: the cartesian product of the edge values. With the default
//     BoundaryValues this covers the minimum, maximum, zero and every equal
//     pair of edges.
//  3. Trials: pairs drawn from a seeded generator that mixes uniform int32
//     values, edge values and equal pairs.
//
// The same Domain always yields the same pairs in the same order, so a run is
// reproducible from its seed.
//
// # Failures
//
// Every disagreement is a *ResultMismatch carrying the exact input pair, the
// actual result and the expected result. The property check stops at the
// first mismatch unless WithKeepGoing is set, in which case it collects every
// distinct failing pair.
//
// # Suites
//
// Fixed cases and property defaults can be loaded from YAML or CUE suite
// files with LoadSuite:
//
//	name: example_max
//	cases:
//	  - {name: ascending, a: 1, b: 2, expect: 2}
//	property:
//	  seed: 1
//	  trials: 10000
//	  values: [694201337]
package harness
