package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mark-chris/cybuddy/internal/history"
)

var (
	historyClear  bool
	historySearch string
	historyLimit  int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show or manage command history",
	Long: `Show recent CyBuddy commands, search past sessions, or clear the
history database.

Examples:
  # Show recent commands
  cybuddy history

  # Search past commands
  cybuddy history --search nmap

  # Clear all history
  cybuddy history --clear`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&historyClear, "clear", false,
		"Delete all history entries")
	historyCmd.Flags().StringVar(&historySearch, "search", "",
		"Show only entries containing this text")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20,
		"Maximum number of entries to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	if store == nil {
		return fmt.Errorf("history is unavailable")
	}

	if historyClear {
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Println("History cleared.")
		return nil
	}

	var entries []history.Entry
	var err error
	if historySearch != "" {
		entries, err = store.Search(historySearch)
	} else {
		entries, err = store.Recent(historyLimit)
	}
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No history entries.")
		return nil
	}

	// Newest-first from the store; print oldest first for reading.
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		fmt.Printf("%s  %s\n", e.CreatedAt.Local().Format("2006-01-02 15:04"), e.Command)
	}
	return nil
}
