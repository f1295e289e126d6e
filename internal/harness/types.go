package harness

import (
	"errors"
	"fmt"
)

// Func is a pure two-argument integer function checked by the harness.
type Func func(a, b int32) int32

// InputPair is one input to the function under test.
type InputPair struct {
	A int32 `json:"a"`
	B int32 `json:"b"`
}

// String formats the pair the way failure reports print it.
func (p InputPair) String() string {
	return fmt.Sprintf("a=%d b=%d", p.A, p.B)
}

// TestCase is a named input pair with its expected result.
type TestCase struct {
	Name     string
	Input    InputPair
	Expected int32
}

// Report kinds.
const (
	KindFixed    = "fixed"
	KindProperty = "property"
)

// CaseOutcome is the result of one fixed case.
type CaseOutcome struct {
	Name     string `json:"name"`
	A        int32  `json:"a"`
	B        int32  `json:"b"`
	Actual   int32  `json:"actual"`
	Expected int32  `json:"expected"`
	Pass     bool   `json:"pass"`
}

// Report is the outcome of a fixed-case run or a property check.
type Report struct {
	// Kind is KindFixed or KindProperty.
	Kind string `json:"kind"`

	// Pass is true if every checked input agreed.
	Pass bool `json:"pass"`

	// Checked is the number of input pairs evaluated.
	// A property check that stops at its first mismatch counts up to and
	// including the failing pair.
	Checked int `json:"checked"`

	// Seed is the generator seed of a property check.
	Seed int64 `json:"seed,omitempty"`

	// Cases holds one outcome per fixed case, in input order.
	Cases []CaseOutcome `json:"cases,omitempty"`

	// Failures holds every reported mismatch in the order found.
	Failures []*ResultMismatch `json:"failures,omitempty"`
}

func newReport(kind string) *Report {
	return &Report{
		Kind: kind,
		Pass: true,
	}
}

// AddFailure records a mismatch and marks the report as failed.
func (r *Report) AddFailure(m *ResultMismatch) {
	r.Failures = append(r.Failures, m)
	r.Pass = false
}

// Err returns nil for a passing report, otherwise all failures joined.
func (r *Report) Err() error {
	if len(r.Failures) == 0 {
		return nil
	}
	errs := make([]error, len(r.Failures))
	for i, m := range r.Failures {
		errs[i] = m
	}
	return errors.Join(errs...)
}

// Passed returns the number of fixed cases that agreed.
func (r *Report) Passed() int {
	n := 0
	for _, c := range r.Cases {
		if c.Pass {
			n++
		}
	}
	return n
}
