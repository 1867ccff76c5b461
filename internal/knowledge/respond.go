package knowledge

import (
	"fmt"
	"sort"
	"strings"
)

// Responder answers study queries from a Library. A query that clears
// the confidence threshold returns curated content; everything else
// falls back to a generic, always-available template so the user is
// never left without an answer.
type Responder struct {
	lib *Library
}

// NewResponder creates a responder over the given library.
func NewResponder(lib *Library) *Responder {
	return &Responder{lib: lib}
}

// Library returns the responder's knowledge library.
func (r *Responder) Library() *Library {
	return r.lib
}

// Respond dispatches a query to the responder for the given command.
func (r *Responder) Respond(cmd Command, query string) string {
	switch cmd {
	case CommandExplain:
		return r.Explain(query)
	case CommandTip:
		return r.Tip(query)
	case CommandAssist:
		return r.Assist(query)
	case CommandReport:
		return r.Report(query)
	case CommandQuiz:
		return r.Quiz(query)
	case CommandPlan:
		return r.Plan(query)
	default:
		return r.Explain(query)
	}
}

// Lookup returns the best-matching curated content for a command, or
// ok=false when no candidate clears the confidence threshold.
func (r *Responder) Lookup(cmd Command, query string) (string, bool) {
	key, score := BestMatch(query, r.lib.Keys(cmd))
	if key == "" || score <= matchThreshold {
		return "", false
	}
	content, ok := r.lib.Topic(cmd, key)
	return content, ok
}

// Explain describes a tool invocation. An exact hit on the base
// command expands flag descriptions present in the query plus usage
// and caution lines; otherwise a tool name appearing anywhere in the
// query gets the short form.
func (r *Responder) Explain(command string) string {
	cmd := strings.ToLower(strings.TrimSpace(command))

	baseCmd := ""
	if fields := strings.Fields(cmd); len(fields) > 0 {
		baseCmd = fields[0]
	}

	if entry, ok := r.lib.Explain[baseCmd]; ok {
		parts := []string{entry.Base}

		flags := make([]string, 0, len(entry.Flags))
		for flag := range entry.Flags {
			if strings.Contains(cmd, strings.ToLower(flag)) {
				flags = append(flags, flag)
			}
		}
		sort.Strings(flags)
		for _, flag := range flags {
			parts = append(parts, fmt.Sprintf("%s: %s", flag, entry.Flags[flag]))
		}

		if entry.Usage != "" {
			parts = append(parts, "Use when: "+entry.Usage)
		}
		if entry.Caution != "" {
			parts = append(parts, "⚠ "+entry.Caution)
		}
		return strings.Join(parts, "\n")
	}

	// Partial match: tool name contained in the query.
	for _, tool := range r.lib.Keys(CommandExplain) {
		if strings.Contains(cmd, tool) {
			entry := r.lib.Explain[tool]
			parts := []string{entry.Base}
			if entry.Usage != "" {
				parts = append(parts, "Use when: "+entry.Usage)
			}
			if entry.Caution != "" {
				parts = append(parts, "⚠ "+entry.Caution)
			}
			return strings.Join(parts, "\n")
		}
	}

	return "Command not in knowledge base. Try a simpler example or check the man page."
}

// Tip returns study pointers for a security topic.
func (r *Responder) Tip(topic string) string {
	if content, ok := r.Lookup(CommandTip, topic); ok {
		return content
	}
	return "Topic not found. Try: sql injection, xss, privilege escalation, nmap, burp suite, password cracking, metasploit, api testing, cloud security"
}

// Assist returns troubleshooting guidance for an error or issue.
func (r *Responder) Assist(issue string) string {
	if content, ok := r.Lookup(CommandAssist, issue); ok {
		return content
	}
	return "Issue not recognized. Reproduce the error, capture the exact message, and try simplifying the command. Check tool documentation and logs for details."
}

// Report returns a short writeup for a finding, or a fill-in template
// interpolating the finding when nothing matches.
func (r *Responder) Report(finding string) string {
	if content, ok := r.Lookup(CommandReport, finding); ok {
		return content
	}

	subject := finding
	if subject == "" {
		subject = "(describe vulnerability)"
	}
	return fmt.Sprintf(`Vulnerability: %s
Impact: (what can attacker do? data access, privilege escalation, denial of service, etc.)
Mitigation: (specific steps to fix: input validation, access controls, patching, configuration changes)`, subject)
}

// Quiz returns flashcards for a topic, or a generic Q/A scaffold.
func (r *Responder) Quiz(topic string) string {
	if content, ok := r.Lookup(CommandQuiz, topic); ok {
		return content
	}

	return fmt.Sprintf(`Q: What is %[1]s?
A: (core concept in one sentence)

Q: When is %[1]s commonly found?
A: (typical scenarios or contexts)

Q: What's a key mitigation for %[1]s?
A: (primary defensive measure)`, topic)
}

// Plan returns next-step guidance for a scenario.
func (r *Responder) Plan(context string) string {
	if content, ok := r.Lookup(CommandPlan, context); ok {
		return content
	}

	return `1. Clarify scope and objective (what are you trying to achieve?)
2. Choose appropriate tools with safe default settings
3. Document findings and plan next targeted probe based on results`
}
