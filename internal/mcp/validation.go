package mcp

import (
	"fmt"
	"strings"

	"github.com/mark-chris/cybuddy/internal/knowledge"
)

// validateToolName validates the tool name is "cybuddy_ask"
func validateToolName(name string) error {
	if name != "cybuddy_ask" {
		return fmt.Errorf("unknown tool: %s", name)
	}
	return nil
}

// validateQuestion validates the question parameter
func validateQuestion(question string) error {
	if strings.TrimSpace(question) == "" {
		return fmt.Errorf("question must be non-empty")
	}
	return nil
}

// validateCommand validates the optional command parameter
func validateCommand(command string) error {
	if command == "" {
		return nil // Optional field
	}
	if !knowledge.IsCommand(command) {
		return fmt.Errorf("invalid command '%s'. Supported commands: explain, tip, assist, report, quiz, plan", command)
	}
	return nil
}

// validateNoUnknownParams checks for unknown parameters
func validateNoUnknownParams(args map[string]interface{}, allowed []string) error {
	allowedMap := make(map[string]bool)
	for _, key := range allowed {
		allowedMap[key] = true
	}

	for key := range args {
		if !allowedMap[key] {
			return fmt.Errorf("unknown parameter '%s'. Supported parameters: %s", key, strings.Join(allowed, ", "))
		}
	}

	return nil
}
