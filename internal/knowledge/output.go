package knowledge

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// OutputFormat specifies the output format
type OutputFormat string

// Output format constants.
const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// Answer is a rendered response to a study query.
type Answer struct {
	Type   string    `json:"type"`
	Input  string    `json:"input"`
	Output string    `json:"output"`
	Time   time.Time `json:"ts"`
}

// FormatAnswer formats an answer for display. Text format prints the
// answer body alone; JSON wraps it in an envelope with the query and
// timestamp.
func FormatAnswer(a Answer, format OutputFormat) (string, error) {
	switch format {
	case FormatJSON:
		data, err := json.Marshal(a)
		if err != nil {
			return "", fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return string(data), nil
	default:
		return a.Output, nil
	}
}

// FormatTopics renders the available topic keys for each command.
func FormatTopics(lib *Library, format OutputFormat) (string, error) {
	if format == FormatJSON {
		topics := make(map[string][]string, 6)
		for _, cmd := range Commands() {
			topics[string(cmd)] = lib.Keys(cmd)
		}
		data, err := json.MarshalIndent(topics, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return string(data), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Knowledge library: %d entries\n", lib.Count()))
	for _, cmd := range Commands() {
		keys := lib.Keys(cmd)
		sb.WriteString("\n")
		sb.WriteString(strings.ToUpper(string(cmd)))
		sb.WriteString(fmt.Sprintf(" (%d)\n", len(keys)))
		sb.WriteString(strings.Repeat("-", 40) + "\n")
		for _, key := range keys {
			sb.WriteString("  " + key + "\n")
		}
	}
	return sb.String(), nil
}
