package knowledge

import (
	"fmt"
	"strings"
)

// ValidationError represents a single validation finding.
type ValidationError struct {
	Command  Command
	Key      string
	Message  string
	Severity string // "error" or "warning"
}

func (e ValidationError) String() string {
	return fmt.Sprintf("[%s] %s/%s: %s", e.Severity, e.Command, e.Key, e.Message)
}

// ValidationResult holds the findings for a whole library.
type ValidationResult struct {
	IsValid  bool
	Errors   []ValidationError
	Warnings []ValidationError
}

// ValidateLibrary checks the six mappings for content problems: empty
// or non-lower-case keys, empty content, and explain entries missing
// their base description.
func ValidateLibrary(lib *Library) ValidationResult {
	result := ValidationResult{
		IsValid:  true,
		Errors:   make([]ValidationError, 0),
		Warnings: make([]ValidationError, 0),
	}

	for key, entry := range lib.Explain {
		result.checkKey(CommandExplain, key)
		if entry.Base == "" {
			result.addError(CommandExplain, key, "missing base description")
		}
		if entry.Usage == "" {
			result.addWarning(CommandExplain, key, "no usage guidance")
		}
		for flag, desc := range entry.Flags {
			if flag == "" || desc == "" {
				result.addError(CommandExplain, key, "empty flag name or description")
			}
		}
	}

	flat := map[Command]map[string]string{
		CommandTip:    lib.Tip,
		CommandAssist: lib.Assist,
		CommandReport: lib.Report,
		CommandQuiz:   lib.Quiz,
		CommandPlan:   lib.Plan,
	}

	for cmd, topics := range flat {
		if len(topics) == 0 {
			result.addWarning(cmd, "-", "mapping is empty")
		}
		for key, content := range topics {
			result.checkKey(cmd, key)
			if strings.TrimSpace(content) == "" {
				result.addError(cmd, key, "empty content")
			}
		}
	}

	return result
}

func (r *ValidationResult) checkKey(cmd Command, key string) {
	if strings.TrimSpace(key) == "" {
		r.addError(cmd, key, "empty key")
		return
	}
	if key != strings.ToLower(key) {
		r.addError(cmd, key, "key must be lower-case")
	}
	if key != strings.TrimSpace(key) {
		r.addWarning(cmd, key, "key has surrounding whitespace")
	}
}

func (r *ValidationResult) addError(cmd Command, key, message string) {
	r.IsValid = false
	r.Errors = append(r.Errors, ValidationError{
		Command:  cmd,
		Key:      key,
		Message:  message,
		Severity: "error",
	})
}

func (r *ValidationResult) addWarning(cmd Command, key, message string) {
	r.Warnings = append(r.Warnings, ValidationError{
		Command:  cmd,
		Key:      key,
		Message:  message,
		Severity: "warning",
	})
}
