package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mark-chris/cybuddy/internal/ai"
	"github.com/mark-chris/cybuddy/internal/intent"
	"github.com/mark-chris/cybuddy/internal/knowledge"
	"github.com/mark-chris/cybuddy/internal/log"
)

var askUseAI bool

var askCmd = &cobra.Command{
	Use:   "ask <question...>",
	Short: "Ask a question in plain English",
	Long: `Ask CyBuddy a free-text question. The question is classified onto one
of the six study commands and answered from the knowledge base.

With --ai and a configured provider (CYBUDDY_AI_PROVIDER plus the
matching *_API_KEY) the answer comes from the provider instead, falling
back to the knowledge base on any error.

Examples:
  cybuddy ask "what is burp suite?"
  cybuddy ask i found an open port 8080
  cybuddy ask --ai how does kerberoasting work`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&askUseAI, "ai", false,
		"Answer with the configured AI provider instead of the knowledge base")
}

func runAsk(cmd *cobra.Command, args []string) error {
	question := strings.Join(args, " ")
	recordHistory("ask " + question)

	command, topic := classifyInput(question)

	if getFormat() == knowledge.FormatText {
		fmt.Printf("→ %s %s\n\n", command, topic)
	}

	output := answerFor(command, topic)

	answer := knowledge.Answer{
		Type:   string(command),
		Input:  question,
		Output: output,
		Time:   time.Now().UTC(),
	}

	formatted, err := knowledge.FormatAnswer(answer, getFormat())
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	fmt.Println(formatted)
	return nil
}

// classifyInput maps one line of user input onto a study command.
// Literal input that doesn't read as conversation is an explain query
// as typed; direct command usage and natural language go through the
// classifier.
func classifyInput(text string) (knowledge.Command, string) {
	fields := strings.Fields(strings.ToLower(text))
	if len(fields) > 0 && knowledge.IsCommand(fields[0]) {
		return intent.Classify(text, recentCommands(5))
	}
	if intent.IsNaturalLanguage(text) {
		return intent.Classify(text, recentCommands(5))
	}
	return knowledge.CommandExplain, text
}

// answerFor answers a classified query, consulting the AI provider
// when requested and configured. Provider failures fall back to the
// knowledge base rather than surfacing to the student.
func answerFor(command knowledge.Command, topic string) string {
	if askUseAI {
		provider, err := ai.FromEnv()
		if err != nil {
			log.Warn("AI provider unavailable: %v", err)
		} else {
			ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
			defer cancel()
			completion, err := provider.Complete(ctx, ai.StudyPrompt(string(command), topic))
			if err == nil {
				return completion
			}
			log.Warn("%s completion failed: %v", provider.Name(), err)
		}
	}

	return responder.Respond(command, topic)
}
