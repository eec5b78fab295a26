package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "resultspec",
	Short: "Declarative checks for recorded action results.",
	Long: `resultspec verifies recorded HTTP action results against declarative
expectation files. Record what your handler produced, describe the
shape you expect in a small YAML file, and resultspec tells you where
they disagree.`,
}

func Execute(v, bt string) {
	version = v
	buildTime = bt
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
}
