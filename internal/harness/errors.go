package harness

import (
	"errors"
	"fmt"
)

// ResultMismatch reports an input pair on which the implementation under test
// disagreed with the expected result.
type ResultMismatch struct {
	// Case names the fixed case. Empty for property checks.
	Case string `json:"case,omitempty"`

	// Trial is the 1-based position of the pair in the property check.
	// Zero for fixed cases.
	Trial int `json:"trial,omitempty"`

	Input    InputPair `json:"input"`
	Actual   int32     `json:"actual"`
	Expected int32     `json:"expected"`
}

// Error implements the error interface.
func (e *ResultMismatch) Error() string {
	switch {
	case e.Case != "":
		return fmt.Sprintf("result mismatch in case %q: %s actual=%d expected=%d", e.Case, e.Input, e.Actual, e.Expected)
	case e.Trial > 0:
		return fmt.Sprintf("result mismatch at trial %d: %s actual=%d expected=%d", e.Trial, e.Input, e.Actual, e.Expected)
	default:
		return fmt.Sprintf("result mismatch: %s actual=%d expected=%d", e.Input, e.Actual, e.Expected)
	}
}

// IsMismatch returns true if err is or wraps a *ResultMismatch.
func IsMismatch(err error) bool {
	_, ok := AsMismatch(err)
	return ok
}

// AsMismatch returns the first *ResultMismatch in err's chain.
func AsMismatch(err error) (*ResultMismatch, bool) {
	var m *ResultMismatch
	if errors.As(err, &m) {
		return m, true
	}
	return nil, false
}
