package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mark-chris/cybuddy/internal/knowledge"
	"github.com/mark-chris/cybuddy/internal/suggest"
)

// studyCommands builds the six study subcommands. They share one run
// path and differ only in which responder they dispatch to.
func studyCommands() []*cobra.Command {
	defs := []struct {
		command knowledge.Command
		use     string
		short   string
		long    string
	}{
		{
			command: knowledge.CommandExplain,
			use:     "explain <tool or command...>",
			short:   "Explain a security tool or command",
			long: `Explain what a tool does, including any flags present in your input.

Examples:
  cybuddy explain nmap -sV
  cybuddy explain burp suite`,
		},
		{
			command: knowledge.CommandTip,
			use:     "tip <topic...>",
			short:   "Study pointers for a security topic",
			long: `Get study tips and key concepts for an attack or topic.

Examples:
  cybuddy tip sql injection
  cybuddy tip privilege escalation`,
		},
		{
			command: knowledge.CommandAssist,
			use:     "assist <error or issue...>",
			short:   "Troubleshoot an error message",
			long: `Get troubleshooting guidance for an error you hit in the lab.

Examples:
  cybuddy assist connection refused
  cybuddy assist permission denied`,
		},
		{
			command: knowledge.CommandReport,
			use:     "report <finding...>",
			short:   "Draft a short vulnerability writeup",
			long: `Turn a finding into a short writeup with impact and mitigation.

Examples:
  cybuddy report sql injection on login form
  cybuddy report open s3 bucket`,
		},
		{
			command: knowledge.CommandQuiz,
			use:     "quiz <topic...>",
			short:   "Flashcard questions for a topic",
			long: `Generate flashcard-style questions to test yourself on a topic.

Examples:
  cybuddy quiz xss
  cybuddy quiz osi model`,
		},
		{
			command: knowledge.CommandPlan,
			use:     "plan <scenario...>",
			short:   "Next steps for a lab scenario",
			long: `Get a safe, ordered plan of next steps for where you are in a lab.

Examples:
  cybuddy plan found port 22 open
  cybuddy plan got a shell`,
		},
	}

	cmds := make([]*cobra.Command, 0, len(defs))
	for _, s := range defs {
		command := s.command
		cmds = append(cmds, &cobra.Command{
			Use:   s.use,
			Short: s.short,
			Long:  s.long,
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runStudy(command, strings.Join(args, " "))
			},
		})
	}
	return cmds
}

// runStudy answers one study query and records it in history.
func runStudy(command knowledge.Command, query string) error {
	recordHistory(string(command) + " " + query)

	answer := knowledge.Answer{
		Type:   string(command),
		Input:  query,
		Output: responder.Respond(command, query),
		Time:   time.Now().UTC(),
	}

	output, err := knowledge.FormatAnswer(answer, getFormat())
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	fmt.Println(output)

	// A fallback answer gets "did you mean" hints in text mode.
	if getFormat() == knowledge.FormatText {
		if _, ok := responder.Lookup(command, query); !ok && command != knowledge.CommandExplain {
			if hints := suggest.Topics(query, library.Keys(command), 3); len(hints) > 0 {
				fmt.Printf("\nDid you mean: %s\n", strings.Join(hints, ", "))
			}
		}
	}

	return nil
}
