// Command lumen is the CLI driver for the core: a thin cobra wrapper
// around pkg/lumen's Evaluate, since the CLI, REPL, and logging are
// explicitly outside the core's own surface.
package main

import (
	"fmt"
	"os"

	"github.com/lumen-lang/lumen/cmd/lumen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
