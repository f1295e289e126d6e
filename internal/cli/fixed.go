package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/maxdiff/internal/harness"
)

// FixedOptions holds flags for the fixed command.
type FixedOptions struct {
	HarnessOptions
}

// NewFixedCommand creates the fixed command.
func NewFixedCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &FixedOptions{HarnessOptions: HarnessOptions{RootOptions: rootOpts}}

	cmd := &cobra.Command{
		Use:   "fixed <suite>",
		Short: "Run the literal cases of a suite",
		Long: `Run every fixed case in a suite file against the implementation under test.

Each case is compared to its expected result with exact equality. All cases
run; every failing case is printed with its inputs, actual and expected value.

Exit codes:
  0 - All cases passed
  1 - One or more cases failed
  2 - Command error (missing or invalid suite, bad flags)

Examples:
  maxdiff fixed ./testdata/example_max.yaml
  maxdiff fixed ./suites/example_max.cue --impl examplemax-stream
  maxdiff fixed ./testdata/example_max.yaml --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFixed(opts, args[0], cmd)
		},
	}

	addHarnessFlags(cmd, &opts.HarnessOptions)

	return cmd
}

func runFixed(opts *FixedOptions, suitePath string, cmd *cobra.Command) error {
	suite, err := loadSuite(opts.RootOptions, suitePath, cmd)
	if err != nil {
		return err
	}

	h, err := opts.newHarness(cmd)
	if err != nil {
		return err
	}

	report, err := h.RunFixedCases(commandContext(cmd), suite.TestCases())
	if err != nil {
		return WrapExitError(ExitCommandError, "fixed cases interrupted", err)
	}

	return outputFixed(opts.RootOptions, cmd, suite.Name, report)
}

// loadSuite loads a suite, reporting load errors in the configured format.
func loadSuite(opts *RootOptions, path string, cmd *cobra.Command) (*harness.Suite, error) {
	suite, err := harness.LoadSuite(path)
	if err != nil {
		out := newFormatter(opts, cmd)
		if out.JSON() {
			_ = out.Error(ErrCodeSuite, err.Error(), map[string]string{"path": path})
		}
		return nil, WrapExitError(ExitCommandError, "failed to load suite", err)
	}
	out := newFormatter(opts, cmd)
	out.VerboseLog("loaded suite %q: %d cases", suite.Name, len(suite.Cases))
	return suite, nil
}

func outputFixed(opts *RootOptions, cmd *cobra.Command, suiteName string, report *harness.Report) error {
	out := newFormatter(opts, cmd)
	failed := len(report.Failures)
	message := fmt.Sprintf("%d fixed case(s) failed", failed)

	if out.JSON() {
		if err := out.Outcome(report.Pass, report, message); err != nil {
			return err
		}
	} else {
		renderFixed(out.Writer, suiteName, report)
	}

	if !report.Pass {
		return NewExitError(ExitFailure, message)
	}
	return nil
}
