package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/maxdiff/internal/harness"
)

// CheckResult is the JSON payload of the check command.
type CheckResult struct {
	Suite    string          `json:"suite"`
	Fixed    *harness.Report `json:"fixed"`
	Property *harness.Report `json:"property"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PropOptions{HarnessOptions: HarnessOptions{RootOptions: rootOpts}}

	cmd := &cobra.Command{
		Use:   "check <suite>",
		Short: "Run fixed cases and the property check",
		Long: `Run both harness entry points for a suite: its fixed cases, then the
property check with the suite's property settings (flags override them).

Both always run; the command fails if either one finds a mismatch.

Examples:
  maxdiff check ./testdata/example_max.yaml
  maxdiff check ./testdata/example_max.yaml --keep-going --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts, args[0], cmd)
		},
	}

	addHarnessFlags(cmd, &opts.HarnessOptions)
	addPropFlags(cmd, opts)

	return cmd
}

func runCheck(opts *PropOptions, suitePath string, cmd *cobra.Command) error {
	suite, err := loadSuite(opts.RootOptions, suitePath, cmd)
	if err != nil {
		return err
	}

	h, err := opts.newHarness(cmd)
	if err != nil {
		return err
	}

	fixed, err := h.RunFixedCases(commandContext(cmd), suite.TestCases())
	if err != nil {
		return WrapExitError(ExitCommandError, "fixed cases interrupted", err)
	}

	property, err := runProperty(opts, suite, cmd)
	if err != nil {
		return err
	}

	out := newFormatter(opts.RootOptions, cmd)
	pass := fixed.Pass && property.Pass
	message := fmt.Sprintf("%d fixed case(s) and %d input pair(s) mismatched", len(fixed.Failures), len(property.Failures))

	if out.JSON() {
		result := CheckResult{Suite: suite.Name, Fixed: fixed, Property: property}
		if err := out.Outcome(pass, result, message); err != nil {
			return err
		}
	} else {
		renderFixed(out.Writer, suite.Name, fixed)
		fmt.Fprintln(out.Writer)
		renderProperty(out.Writer, property)
	}

	if !pass {
		return NewExitError(ExitFailure, message)
	}
	return nil
}
