package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/maxdiff/internal/corpus"
	"github.com/roach88/maxdiff/internal/harness"
)

// NewPropCommand creates the prop command.
func NewPropCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PropOptions{HarnessOptions: HarnessOptions{RootOptions: rootOpts}}

	cmd := &cobra.Command{
		Use:   "prop [suite]",
		Short: "Compare against the reference model over generated inputs",
		Long: `Run the property check: the implementation under test must agree with
max(a, b) on every generated input pair.

Pairs come from the corpus (if --corpus is set), then every combination of the
edge values (int32 boundaries plus --value and the suite's property.values),
then --trials seeded random pairs. The same seed always produces the same
pairs. The first mismatch stops the run unless --keep-going is set.

Exit codes:
  0 - All pairs agree
  1 - At least one mismatch
  2 - Command error (invalid suite, bad flags, corpus I/O)

Examples:
  maxdiff prop
  maxdiff prop --value 694201337
  maxdiff prop ./testdata/example_max.yaml --seed 42 --trials 100000 --workers 8
  maxdiff prop --value 694201337 --keep-going --corpus ./corpus.db`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var suite *harness.Suite
			if len(args) == 1 {
				var err error
				if suite, err = loadSuite(opts.RootOptions, args[0], cmd); err != nil {
					return err
				}
			}
			report, err := runProperty(opts, suite, cmd)
			if err != nil {
				return err
			}
			return outputProperty(opts.RootOptions, cmd, report)
		},
	}

	addHarnessFlags(cmd, &opts.HarnessOptions)
	addPropFlags(cmd, opts)

	return cmd
}

// runProperty builds the domain, replays and records the corpus, and runs
// the property check.
func runProperty(opts *PropOptions, suite *harness.Suite, cmd *cobra.Command) (*harness.Report, error) {
	domain, err := buildDomain(opts, suite, cmd)
	if err != nil {
		return nil, err
	}

	h, err := opts.newHarness(cmd, harness.WithKeepGoing(opts.KeepGoing))
	if err != nil {
		return nil, err
	}

	ctx := commandContext(cmd)
	out := newFormatter(opts.RootOptions, cmd)

	var store *corpus.Store
	if opts.Corpus != "" {
		store, err = corpus.Open(opts.Corpus)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "failed to open corpus", err)
		}
		defer store.Close()

		pairs, err := store.Inputs(ctx)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "failed to read corpus", err)
		}
		out.VerboseLog("replaying %d corpus input(s)", len(pairs))
		domain = domain.WithPairs(pairs...)
	}

	out.VerboseLog("property check: seed=%d pairs=%d workers=%d", domain.Seed, domain.Size(), opts.Workers)
	report, err := h.RunPropertyCheck(ctx, domain)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "property check interrupted", err)
	}

	if store != nil {
		if err := recordCorpus(ctx, store, report, domain.Trials, out); err != nil {
			return nil, err
		}
	}
	return report, nil
}

func recordCorpus(ctx context.Context, store *corpus.Store, report *harness.Report, trials int, out *OutputFormatter) error {
	run, added, err := store.Record(ctx, report, trials)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to record corpus", err)
	}
	if run != nil {
		out.VerboseLog("recorded run %s: %d new corpus input(s)", run.ID, added)
	}
	return nil
}

func outputProperty(opts *RootOptions, cmd *cobra.Command, report *harness.Report) error {
	out := newFormatter(opts, cmd)
	message := fmt.Sprintf("%d mismatching input pair(s)", len(report.Failures))

	if out.JSON() {
		if err := out.Outcome(report.Pass, report, message); err != nil {
			return err
		}
	} else {
		renderProperty(out.Writer, report)
	}

	if !report.Pass {
		return NewExitError(ExitFailure, message)
	}
	return nil
}
