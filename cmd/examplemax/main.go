// Command examplemax reads two integers from stdin and prints the larger one.
//
//	echo "3 7" | examplemax
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/roach88/maxdiff/internal/examplemax"
)

func main() {
	in := bufio.NewReader(os.Stdin)
	out := bufio.NewWriter(os.Stdout)

	if err := examplemax.Run(in, out); err != nil {
		fmt.Fprintln(os.Stderr, "examplemax:", err)
		os.Exit(1)
	}
	if err := out.Flush(); err != nil {
		fmt.Fprintln(os.Stderr, "examplemax: flush output:", err)
		os.Exit(1)
	}
}
