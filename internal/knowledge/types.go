package knowledge

import "sort"

// Command identifies one of the six study commands.
type Command string

// Study commands.
const (
	CommandExplain Command = "explain"
	CommandTip     Command = "tip"
	CommandAssist  Command = "assist"
	CommandReport  Command = "report"
	CommandQuiz    Command = "quiz"
	CommandPlan    Command = "plan"
)

// Commands lists all study commands in display order.
func Commands() []Command {
	return []Command{
		CommandExplain,
		CommandTip,
		CommandAssist,
		CommandReport,
		CommandQuiz,
		CommandPlan,
	}
}

// IsCommand reports whether name is one of the six study commands.
func IsCommand(name string) bool {
	switch Command(name) {
	case CommandExplain, CommandTip, CommandAssist, CommandReport, CommandQuiz, CommandPlan:
		return true
	}
	return false
}

// ExplainEntry is a structured explain topic: a base description plus
// optional per-flag descriptions and usage/caution guidance.
type ExplainEntry struct {
	Base    string            `yaml:"base" json:"base"`
	Usage   string            `yaml:"usage,omitempty" json:"usage,omitempty"`
	Caution string            `yaml:"caution,omitempty" json:"caution,omitempty"`
	Flags   map[string]string `yaml:"flags,omitempty" json:"flags,omitempty"`
}

// Library holds the six read-only topic mappings. It is loaded once at
// process start and never mutated afterwards; keys are lower-case
// phrase strings, unique within each mapping.
type Library struct {
	Explain map[string]ExplainEntry
	Tip     map[string]string
	Assist  map[string]string
	Report  map[string]string
	Quiz    map[string]string
	Plan    map[string]string

	keys map[Command][]string
}

// finalize builds the sorted key slices used for deterministic
// best-match iteration. Called once by the loader.
func (l *Library) finalize() {
	l.keys = make(map[Command][]string, 6)
	l.keys[CommandExplain] = sortedKeys(l.Explain)
	l.keys[CommandTip] = sortedKeys(l.Tip)
	l.keys[CommandAssist] = sortedKeys(l.Assist)
	l.keys[CommandReport] = sortedKeys(l.Report)
	l.keys[CommandQuiz] = sortedKeys(l.Quiz)
	l.keys[CommandPlan] = sortedKeys(l.Plan)
}

// Keys returns the topic keys for a command in sorted order.
func (l *Library) Keys(cmd Command) []string {
	return l.keys[cmd]
}

// Topic returns the flat content stored under key for the given
// command. Explain entries are structured and are not returned here;
// use the Explain map directly.
func (l *Library) Topic(cmd Command, key string) (string, bool) {
	var content string
	var ok bool
	switch cmd {
	case CommandTip:
		content, ok = l.Tip[key]
	case CommandAssist:
		content, ok = l.Assist[key]
	case CommandReport:
		content, ok = l.Report[key]
	case CommandQuiz:
		content, ok = l.Quiz[key]
	case CommandPlan:
		content, ok = l.Plan[key]
	}
	return content, ok
}

// Count returns the total number of entries across all six mappings.
func (l *Library) Count() int {
	return len(l.Explain) + len(l.Tip) + len(l.Assist) +
		len(l.Report) + len(l.Quiz) + len(l.Plan)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
