package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/mark-chris/cybuddy/internal/intent"
	"github.com/mark-chris/cybuddy/internal/knowledge"
	"github.com/mark-chris/cybuddy/internal/suggest"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"repl"},
	Short:   "Start an interactive study session",
	Long: `Start a line-oriented interactive session. Type questions in plain
English or use the study commands directly; "help" lists them, "exit"
or Ctrl+D leaves.

Examples:
  cybuddy interactive`,
	RunE: runInteractive,
}

func runInteractive(cmd *cobra.Command, args []string) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            "cybuddy> ",
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistoryFile:       replHistoryFile(),
		HistoryLimit:      500,
		HistorySearchFold: true,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer rl.Close()

	fmt.Println("CyBuddy interactive session. Ask in plain English, or type \"help\".")
	fmt.Println()

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				// Ctrl+C clears the line
				continue
			}
			if err == io.EOF {
				fmt.Println("Good luck out there.")
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		if input == "exit" || input == "quit" {
			fmt.Println("Good luck out there.")
			return nil
		}

		dispatch(input)
		fmt.Println()
	}
}

// dispatch handles one interactive line: builtins first, then direct
// study commands, then natural-language classification.
func dispatch(input string) {
	switch strings.ToLower(input) {
	case "help":
		printInteractiveHelp()
		return
	case "history":
		printRecentHistory()
		return
	case "topics":
		output, err := knowledge.FormatTopics(library, knowledge.FormatText)
		if err == nil {
			fmt.Println(output)
		}
		return
	}

	recordHistory(input)

	// An unrecognized single word is more likely a typo than a topic.
	fields := strings.Fields(input)
	if len(fields) == 1 && !knowledge.IsCommand(fields[0]) && !intent.IsNaturalLanguage(input) {
		names := make([]string, 0, 6)
		for _, c := range knowledge.Commands() {
			names = append(names, string(c))
		}
		if hints := suggest.Commands(fields[0], names, 3); len(hints) > 0 {
			fmt.Printf("Unknown command %q. Did you mean: %s?\n", fields[0], strings.Join(hints, ", "))
			return
		}
	}

	command, topic := classifyInput(input)

	fmt.Printf("→ %s %s\n\n", command, topic)
	fmt.Println(responder.Respond(command, topic))
}

func printInteractiveHelp() {
	fmt.Println("Study commands:")
	fmt.Println("  explain <tool>      what a tool or flag does")
	fmt.Println("  tip <topic>         study pointers for a topic")
	fmt.Println("  assist <error>      troubleshoot an error message")
	fmt.Println("  report <finding>    draft a short writeup")
	fmt.Println("  quiz <topic>        flashcard questions")
	fmt.Println("  plan <scenario>     next steps in a lab")
	fmt.Println()
	fmt.Println("Or just ask in plain English. Builtins: help, topics, history, exit.")
}

func printRecentHistory() {
	if store == nil {
		fmt.Println("History is unavailable.")
		return
	}
	entries, err := store.Recent(10)
	if err != nil {
		fmt.Println("History is unavailable.")
		return
	}
	if len(entries) == 0 {
		fmt.Println("No history yet.")
		return
	}
	for i := len(entries) - 1; i >= 0; i-- {
		fmt.Printf("  %s  %s\n", entries[i].CreatedAt.Local().Format("2006-01-02 15:04"), entries[i].Command)
	}
}

// replHistoryFile returns the readline history path, or empty to
// disable persistence when no home directory is available.
func replHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "share", "cybuddy", "repl_history")
}
