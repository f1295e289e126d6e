package cli

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/maxdiff/internal/examplemax"
	"github.com/roach88/maxdiff/internal/harness"
)

// implementations maps --impl names to functions under test.
var implementations = map[string]harness.Func{
	"examplemax":        examplemax.Compute,
	"examplemax-stream": examplemax.ViaStream,
	"reference":         harness.ReferenceMax,
}

// ImplNames returns the accepted --impl values, sorted.
func ImplNames() []string {
	return slices.Sorted(maps.Keys(implementations))
}

// HarnessOptions holds flags shared by commands that run the harness.
type HarnessOptions struct {
	*RootOptions
	Impl    string
	Workers int
}

func addHarnessFlags(cmd *cobra.Command, opts *HarnessOptions) {
	cmd.Flags().StringVar(&opts.Impl, "impl", "examplemax", fmt.Sprintf("implementation under test %v", ImplNames()))
	cmd.Flags().IntVar(&opts.Workers, "workers", 1, "number of goroutines evaluating inputs")
}

// newHarness builds a harness for the selected implementation, logging to
// the command's stderr.
func (o *HarnessOptions) newHarness(cmd *cobra.Command, extra ...harness.Option) (*harness.Harness, error) {
	impl, ok := implementations[o.Impl]
	if !ok {
		return nil, NewExitError(ExitCommandError, fmt.Sprintf("unknown implementation %q: must be one of %v", o.Impl, ImplNames()))
	}
	if o.Workers < 1 {
		return nil, NewExitError(ExitCommandError, fmt.Sprintf("workers must be at least 1, got %d", o.Workers))
	}

	opts := []harness.Option{
		harness.WithLogger(newLogger(o.RootOptions, cmd.ErrOrStderr())),
		harness.WithWorkers(o.Workers),
	}
	return harness.New(impl, append(opts, extra...)...), nil
}

// PropOptions holds property check flags.
type PropOptions struct {
	HarnessOptions
	Seed      int64
	Trials    int
	Values    []int
	KeepGoing bool
	Corpus    string
}

func addPropFlags(cmd *cobra.Command, opts *PropOptions) {
	cmd.Flags().Int64Var(&opts.Seed, "seed", harness.DefaultSeed, "random generator seed")
	cmd.Flags().IntVar(&opts.Trials, "trials", harness.DefaultTrials, "number of random pairs")
	cmd.Flags().IntSliceVar(&opts.Values, "value", nil, "extra edge value to pair with every other edge (repeatable)")
	cmd.Flags().BoolVar(&opts.KeepGoing, "keep-going", false, "report every distinct mismatch instead of stopping at the first")
	cmd.Flags().StringVar(&opts.Corpus, "corpus", "", "SQLite regression corpus to replay and record mismatches in")
}

// buildDomain starts from the suite's domain (or the default) and applies
// flags the user set explicitly.
func buildDomain(opts *PropOptions, suite *harness.Suite, cmd *cobra.Command) (harness.Domain, error) {
	domain := harness.DefaultDomain()
	if suite != nil {
		domain = suite.Domain()
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		domain.Seed = opts.Seed
	}
	if flags.Changed("trials") {
		domain.Trials = opts.Trials
	}

	for _, v := range opts.Values {
		if v < math.MinInt32 || v > math.MaxInt32 {
			return harness.Domain{}, NewExitError(ExitCommandError, fmt.Sprintf("--value %d is outside the int32 range", v))
		}
		domain = domain.WithValues(int32(v))
	}

	if err := domain.Validate(); err != nil {
		return harness.Domain{}, WrapExitError(ExitCommandError, "invalid property domain", err)
	}
	return domain, nil
}
