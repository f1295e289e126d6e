package examplemax

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Sentinel is the first value that triggers the seeded bug in Compute.
const Sentinel int32 = 694201337

// Compute returns the larger of first and second.
// When first is Sentinel it returns 1 regardless of second.
func Compute(first, second int32) int32 {
	if first == Sentinel { // crude edge case bug example
		return 1
	}
	if first > second {
		return first
	}
	return second
}

// Run reads two integers from in and writes Compute's result to out.
func Run(in io.Reader, out io.Writer) error {
	var first, second int32
	if _, err := fmt.Fscan(in, &first, &second); err != nil {
		return fmt.Errorf("read input pair: %w", err)
	}

	if _, err := fmt.Fprintln(out, Compute(first, second)); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}

// ViaStream feeds first and second through Run and parses the written result.
// It panics if the in-memory round trip fails, which only happens if Run's
// output format is broken.
func ViaStream(first, second int32) int32 {
	var in, out bytes.Buffer
	fmt.Fprintf(&in, "%d %d\n", first, second)

	if err := Run(&in, &out); err != nil {
		panic(fmt.Sprintf("examplemax: stream round trip for (%d, %d): %v", first, second, err))
	}

	result, err := strconv.ParseInt(strings.TrimSpace(out.String()), 10, 32)
	if err != nil {
		panic(fmt.Sprintf("examplemax: parse output %q: %v", out.String(), err))
	}
	return int32(result)
}
