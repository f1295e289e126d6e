// Package examplemax is the implementation under test for the maxdiff harness.
//
// Compute returns the larger of two integers, except for one seeded bug: when
// the first value equals Sentinel the result is always 1. The harness is
// expected to find that input through its property check.
//
// Run is the stream adapter used by the examplemax binary. It reads two
// whitespace-separated integers and writes the result followed by a newline.
// The computation does not depend on the adapter, so the harness calls
// Compute directly and only uses ViaStream to cover the I/O path.
package examplemax
