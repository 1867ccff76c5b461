package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mark-chris/cybuddy/internal/knowledge"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the knowledge library",
	Long: `Check the loaded knowledge library for structural problems: empty or
malformed keys, empty content, and explain entries without a base
description.

Examples:
  # Validate the built-in library
  cybuddy validate

  # Validate a custom library
  cybuddy validate --library ./my-library`,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	result := knowledge.ValidateLibrary(library)

	for _, e := range result.Errors {
		fmt.Printf("  ERROR: %s\n", e.String())
	}
	for _, w := range result.Warnings {
		fmt.Printf("  WARN:  %s\n", w.String())
	}

	status := "✓"
	if !result.IsValid {
		status = "✗"
	}
	fmt.Printf("\n%s Validated %d entries: %d error(s), %d warning(s)\n",
		status, library.Count(), len(result.Errors), len(result.Warnings))

	if !result.IsValid {
		os.Exit(1)
	}
	return nil
}
