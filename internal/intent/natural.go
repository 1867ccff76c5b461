package intent

import (
	"strings"
)

// questionWords mark an input as a question regardless of other cues.
var questionWords = map[string]struct{}{
	"how": {}, "what": {}, "why": {}, "when": {},
	"where": {}, "who": {}, "which": {},
}

// commandWords are the study command names; leading one with more text
// after it reads as natural language ("explain sql injection to me").
var commandWords = map[string]struct{}{
	"explain": {}, "tip": {}, "assist": {},
	"report": {}, "quiz": {}, "plan": {},
}

// conversationalPatterns catch common phrasings anywhere in the input.
var conversationalPatterns = compileAll(
	`i (?:found|got|have|see|need|want)`,
	`tips? (?:on|for)`,
	`tell me`,
	`show me`,
	`help me`,
	`can you`,
	`should i`,
)

// IsNaturalLanguage reports whether text reads as conversational input
// rather than a literal command. Callers use it to decide whether to
// classify the input or pass it through untouched.
func IsNaturalLanguage(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}

	textLower := strings.ToLower(trimmed)
	words := strings.Fields(textLower)

	// A single word is only natural language when it is a question word.
	if len(words) == 1 {
		_, ok := questionWords[words[0]]
		return ok
	}

	if strings.Contains(text, "?") {
		return true
	}

	if _, ok := questionWords[words[0]]; ok {
		return true
	}

	if _, ok := commandWords[words[0]]; ok {
		return true
	}

	for _, pattern := range conversationalPatterns {
		if pattern.MatchString(textLower) {
			return true
		}
	}

	return len(words) >= 3
}
