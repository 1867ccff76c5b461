package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mark-chris/cybuddy/internal/knowledge"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all known topics",
	Long: `List the topics the knowledge base can answer for each study command.

Examples:
  # List all topics
  cybuddy list

  # List as JSON
  cybuddy list --json`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	output, err := knowledge.FormatTopics(library, getFormat())
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	fmt.Println(output)
	return nil
}
