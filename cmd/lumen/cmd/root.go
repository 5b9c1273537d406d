package cmd

import "github.com/spf13/cobra"

// Version is set by build flags, the way the teacher's root command stamps
// its release builds.
var Version = "0.1.0-dev"

var rootCmd = &cobra.Command{
	Use:     "lumen",
	Short:   "Lumen scripting language interpreter",
	Long:    `lumen runs Lumen scripts: a small dynamic language with ASCII and CJK spellings for every keyword and operator.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
