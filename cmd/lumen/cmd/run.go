package cmd

import (
	"fmt"
	"os"

	"github.com/lumen-lang/lumen/pkg/lumen"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Run a Lumen script file",
	Args:  cobra.ExactArgs(1),
	RunE:  runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runScript(_ *cobra.Command, args []string) error {
	fileName := args[0]
	source, err := os.ReadFile(fileName)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", fileName, err)
	}

	if _, err := lumen.Evaluate(fileName, string(source)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return fmt.Errorf("running %s failed", fileName)
	}
	return nil
}
