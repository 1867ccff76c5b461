// Package intent maps free-text student input onto the six study
// commands. Classification is a pure function of the input plus static
// pattern and keyword tables; it always produces a usable result and
// never fails.
package intent

import (
	"regexp"
	"strings"

	"github.com/mark-chris/cybuddy/internal/knowledge"
)

// patternCategory pairs a command with its ordered detection patterns.
// Categories are tried in declared order and patterns within a
// category in declared order; the first match wins, which is how more
// specific phrasings take priority over later, looser ones.
type patternCategory struct {
	command  knowledge.Command
	patterns []*regexp.Regexp
}

// Patterns are matched against lower-cased, trimmed input anchored at
// the start. Each has exactly one capture group for the topic.
var categories = []patternCategory{
	{knowledge.CommandExplain, compileAll(
		`^how (?:do|can) i (.*)`,
		`^how to (.*)`,
		`^explain (.*)`,
		`^what is (.*)`,
		`^what's (.*)`,
		`^tell me about (.*)`,
		`^describe (.*)`,
		`^show me (.*)`,
	)},
	{knowledge.CommandPlan, compileAll(
		`^what should i do (?:after|when|if) (.*)`,
		`^what(?:'s| is) (?:the )?next (?:step|after) (.*)`,
		`^next steps (?:for|after) (.*)`,
		`^i (?:found|got|have|see) (.*)`,
		`^what to do (?:with|about) (.*)`,
		`^help (?:me )?(?:with|plan) (.*)`,
	)},
	{knowledge.CommandTip, compileAll(
		`^tips? (?:on|for|about) (.*)`,
		`^guide (?:for|to|on) (.*)`,
		`^(?:how to )?learn (?:about )?(.*)`,
		`^techniques? (?:for|on) (.*)`,
		`^best practices? (?:for )?(.*)`,
	)},
	{knowledge.CommandAssist, compileAll(
		`^i'?m getting (?:an? )?(.*)`,
		`^(?:error|problem|issue):? (.*)`,
		`^why (?:is|does|am|can't) (.*)`,
		`^(?:how to )?fix (.*)`,
		`^troubleshoot (.*)`,
	)},
	{knowledge.CommandReport, compileAll(
		`^document (.*)`,
		`^write (?:a )?(?:up |report (?:for|on) )?(.*)`,
		`^report (.*)`,
		`^create (?:a )?report (?:for )?(.*)`,
	)},
	{knowledge.CommandQuiz, compileAll(
		`^test me (?:on )?(.*)`,
		`^quiz (?:me )?(?:on |about )?(.*)`,
		`^question(?:s)? (?:on |about )?(.*)`,
		`^practice (.*)`,
	)},
}

// Keyword fallback sets, checked when no pattern matches. Tools imply
// explain, attack techniques imply tip, scenario words imply plan.
var (
	toolKeywords = []string{
		"nmap", "burp", "sqlmap", "metasploit", "wireshark",
		"hydra", "john", "hashcat", "gobuster", "ffuf",
		"nikto", "dirb", "wfuzz", "netcat", "nc", "ssh",
		"tcpdump", "masscan", "enum4linux", "smbclient",
	}
	attackKeywords = []string{
		"xss", "sqli", "sql injection", "csrf", "ssrf", "xxe",
		"rce", "lfi", "rfi", "ssti", "deserialization",
		"privilege escalation", "privesc", "buffer overflow",
		"format string", "race condition", "injection",
	}
	scenarioKeywords = []string{
		"found", "got", "have", "discovered", "see", "seeing",
		"stuck", "after", "next", "shell", "port", "vulnerability",
		"target", "enumeration", "foothold",
	}
)

func compileAll(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		compiled[i] = regexp.MustCompile(p)
	}
	return compiled
}

// Classify maps free text to a study command and extracted topic.
// history is optional: recent prior inputs bias the final fallback
// toward plan when the student appears to be mid-engagement.
//
// Classification order: direct command prefix, then the pattern table,
// then keyword fallback. The result always defaults to explain with
// the original text, so every input classifies to something.
func Classify(text string, history []string) (knowledge.Command, string) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return knowledge.CommandExplain, ""
	}

	textLower := strings.ToLower(trimmed)

	// Direct command usage short-circuits everything: "explain nmap -sV"
	// runs explain verbatim with no pattern matching.
	for _, cmd := range knowledge.Commands() {
		name := string(cmd)
		if textLower == name {
			return cmd, ""
		}
		if strings.HasPrefix(textLower, name+" ") {
			return cmd, strings.TrimSpace(trimmed[len(name):])
		}
	}

	for _, cat := range categories {
		for _, pattern := range cat.patterns {
			m := pattern.FindStringSubmatch(textLower)
			if m == nil {
				continue
			}
			topic := strings.TrimSpace(m[1])
			topic = strings.TrimRight(topic, "?.! ")
			return cat.command, NormalizeTopic(topic)
		}
	}

	return keywordFallback(textLower, trimmed, history)
}

// keywordFallback classifies by keyword presence when no pattern
// matched. The original text is kept as the topic so nothing the
// student typed is lost.
func keywordFallback(textLower, original string, history []string) (knowledge.Command, string) {
	if containsAny(textLower, toolKeywords) {
		return knowledge.CommandExplain, original
	}
	if containsAny(textLower, attackKeywords) {
		return knowledge.CommandTip, original
	}
	if containsAny(textLower, scenarioKeywords) {
		return knowledge.CommandPlan, original
	}
	if historySuggestsEngagement(history) {
		return knowledge.CommandPlan, original
	}
	return knowledge.CommandExplain, original
}

// historySuggestsEngagement reports whether recent inputs read like an
// active engagement (scenario keywords), in which case an otherwise
// unclassifiable input is more useful as a plan query.
func historySuggestsEngagement(history []string) bool {
	const window = 5
	start := 0
	if len(history) > window {
		start = len(history) - window
	}
	for _, prior := range history[start:] {
		if containsAny(strings.ToLower(prior), scenarioKeywords) {
			return true
		}
	}
	return false
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
