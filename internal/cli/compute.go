package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/maxdiff/internal/examplemax"
)

// NewComputeCommand creates the compute command.
func NewComputeCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Read two integers from stdin and print ExampleMax's result",
		Long: `Run the implementation under test through its stream adapter: read two
whitespace-separated integers from stdin and write the result to stdout.

Example:
  echo "1 2" | maxdiff compute`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := examplemax.Run(cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
				out := newFormatter(rootOpts, cmd)
				if out.JSON() {
					_ = out.Error(ErrCodeInput, err.Error(), nil)
				}
				return WrapExitError(ExitCommandError, "compute failed", err)
			}
			return nil
		},
	}

	return cmd
}
