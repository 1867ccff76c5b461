package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mark-chris/cybuddy/internal/history"
	"github.com/mark-chris/cybuddy/internal/knowledge"
	"github.com/mark-chris/cybuddy/internal/log"
)

var (
	// Global flags
	libraryDir string
	jsonOutput bool
	verbose    bool

	// Shared resources
	library   *knowledge.Library
	responder *knowledge.Responder
	store     *history.Store
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "cybuddy",
	Short: "Cybersecurity study companion CLI",
	Long: `CyBuddy - a study companion for cybersecurity students.

Ask in plain English or use the six study commands directly. Answers
come from a curated knowledge base of tools, attacks, and lab scenarios.

Examples:
  # Ask in natural language
  cybuddy ask "what is burp suite?"

  # Use a study command directly
  cybuddy explain nmap -sV
  cybuddy plan found port 22 open

  # Start an interactive session
  cybuddy interactive

  # Start the MCP stdio server
  cybuddy serve`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		if verbose {
			log.SetLevel(log.LevelDebug)
		}

		dir := findLibraryDir()
		loader := knowledge.NewLoader(dir)

		lib, err := loader.Load()
		if err != nil {
			return fmt.Errorf("failed to load knowledge library: %w", err)
		}
		library = lib
		responder = knowledge.NewResponder(library)

		if dir == "" {
			log.Debug("loaded embedded knowledge library (%d entries)", library.Count())
		} else {
			log.Debug("loaded knowledge library from %s (%d entries)", dir, library.Count())
		}

		// History is best-effort: a broken database must not break the
		// command that triggered it.
		st, err := history.Open(history.DefaultPath())
		if err != nil {
			log.Warn("history unavailable: %v", err)
		} else {
			store = st
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if store != nil {
			store.Close()
		}
	},
}

// Execute runs the CLI
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&libraryDir, "library", "L", "",
		"Path to a knowledge library directory (default: built-in)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false,
		"Machine-readable JSON output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Verbose logging to stderr")

	// Add subcommands
	for _, cmd := range studyCommands() {
		rootCmd.AddCommand(cmd)
	}
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(interactiveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// findLibraryDir locates a knowledge library directory override. An
// empty string means the embedded library.
func findLibraryDir() string {
	if libraryDir != "" {
		return libraryDir
	}
	if env := os.Getenv("CYBUDDY_LIBRARY"); env != "" {
		return env
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	dir := filepath.Join(home, ".cybuddy", "library")
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		return dir
	}

	return ""
}

// getFormat returns the output format based on flags and environment
func getFormat() knowledge.OutputFormat {
	if jsonOutput || os.Getenv("CYBUDDY_JSON") == "1" {
		return knowledge.FormatJSON
	}
	return knowledge.FormatText
}

// recordHistory saves a command line to the history store, if open.
func recordHistory(line string) {
	if store == nil {
		return
	}
	if err := store.Add(line); err != nil {
		log.Debug("failed to record history: %v", err)
	}
}

// recentCommands returns up to n recent history lines, oldest first,
// for classifier context.
func recentCommands(n int) []string {
	if store == nil {
		return nil
	}
	entries, err := store.Recent(n)
	if err != nil {
		log.Debug("failed to read history: %v", err)
		return nil
	}
	// Recent returns newest first; the classifier wants oldest first.
	lines := make([]string, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		lines = append(lines, entries[i].Command)
	}
	return lines
}
