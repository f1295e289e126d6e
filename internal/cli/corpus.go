package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/maxdiff/internal/corpus"
)

// CorpusOptions holds flags for the corpus commands.
type CorpusOptions struct {
	*RootOptions
	Database string
}

// NewCorpusCommand creates the corpus command group.
func NewCorpusCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "corpus",
		Short: "Inspect a regression corpus",
	}

	cmd.AddCommand(newCorpusListCommand(rootOpts))

	return cmd
}

func newCorpusListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CorpusOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded mismatching inputs",
		Long: `List every input pair recorded by "maxdiff prop --corpus", oldest first.

Example:
  maxdiff corpus list --db ./corpus.db`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCorpusList(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to corpus database (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runCorpusList(opts *CorpusOptions, cmd *cobra.Command) error {
	out := newFormatter(opts.RootOptions, cmd)

	// Listing never creates a corpus.
	if _, err := os.Stat(opts.Database); err != nil {
		if out.JSON() {
			_ = out.Error(ErrCodeCorpus, fmt.Sprintf("corpus not found: %s", opts.Database), nil)
		}
		return WrapExitError(ExitCommandError, fmt.Sprintf("corpus not found: %s", opts.Database), err)
	}

	store, err := corpus.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open corpus", err)
	}
	defer store.Close()

	entries, err := store.Mismatches(commandContext(cmd))
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read corpus", err)
	}

	if out.JSON() {
		return out.Success(entries)
	}

	for _, e := range entries {
		fmt.Fprintf(out.Writer, "#%d %s actual=%d expected=%d (run %s)\n", e.Seq, e.Input, e.Actual, e.Expected, e.RunID)
	}
	printer.Fprintf(out.Writer, "%d mismatching input(s)\n", len(entries))
	return nil
}
