// Command maxdiff checks ExampleMax against a reference model.
//
// See "maxdiff --help" for the available commands.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/roach88/maxdiff/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := cli.NewRootCommand().ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	stop()
	os.Exit(cli.GetExitCode(err))
}
