package cmd

import (
	"fmt"

	"github.com/abdul-hamid-achik/resultspec/packages/scenario"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file|directory>...",
	Short: "Validate scenario files without running them",
	Long: `Validate scenario files for structural errors without loading their
recorded results.

Examples:
  resultspec validate item.spec.yaml
  resultspec validate ./scenarios/`,
	Args: cobra.MinimumNArgs(1),
	RunE: validateCommand,
}

func validateCommand(cmd *cobra.Command, args []string) error {
	files, err := collectFiles(args)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		return fmt.Errorf("no .spec.yaml files found")
	}

	hasErrors := false
	for _, file := range files {
		_, err := scenario.Load(file)
		if err != nil {
			fmt.Fprintf(cmd.OutOrStderr(), "Error in %s: %v\n", file, err)
			hasErrors = true
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Valid: %s\n", file)
		}
	}

	if hasErrors {
		return fmt.Errorf("validation failed")
	}

	return nil
}
