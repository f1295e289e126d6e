package cli

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/roach88/maxdiff/internal/harness"
)

// printer groups digits in counts ("10,049 pairs").
var printer = message.NewPrinter(language.English)

// renderFixed prints one line per case followed by a summary.
func renderFixed(w io.Writer, suiteName string, r *harness.Report) {
	for _, c := range r.Cases {
		if c.Pass {
			fmt.Fprintf(w, "✓ %s\n", c.Name)
			continue
		}
		fmt.Fprintf(w, "✗ %s: a=%d b=%d actual=%d expected=%d\n", c.Name, c.A, c.B, c.Actual, c.Expected)
	}

	failed := len(r.Cases) - r.Passed()
	fmt.Fprintln(w)
	printer.Fprintf(w, "Fixed Cases (%s): %d passed, %d failed, %d total\n", suiteName, r.Passed(), failed, len(r.Cases))
}

// renderProperty prints every mismatch followed by a summary.
func renderProperty(w io.Writer, r *harness.Report) {
	for _, m := range r.Failures {
		fmt.Fprintf(w, "✗ trial %d: %s actual=%d expected=%d\n", m.Trial, m.Input, m.Actual, m.Expected)
	}

	if len(r.Failures) > 0 {
		fmt.Fprintln(w)
	}
	printer.Fprintf(w, "Property Check: %d pairs checked, %d mismatches", r.Checked, len(r.Failures))
	fmt.Fprintf(w, " (seed %d)\n", r.Seed)
	if r.Pass {
		fmt.Fprintln(w, "✓ All pairs agree with the reference model")
	}
}
