package cli

import (
	"strings"
	"testing"
)

// TestDispatch_DirectCommand tests direct study-command input
func TestDispatch_DirectCommand(t *testing.T) {
	setupTestState(t)

	output := captureOutput(func() {
		dispatch("explain nmap")
	})

	if !strings.Contains(output, "→ explain nmap") {
		t.Errorf("Expected interpretation line, got %q", output)
	}
	if !strings.Contains(output, "Network scanner") {
		t.Errorf("Expected answer, got %q", output)
	}
}

// TestDispatch_NaturalLanguage tests conversational input
func TestDispatch_NaturalLanguage(t *testing.T) {
	setupTestState(t)

	output := captureOutput(func() {
		dispatch("i found port 22 open")
	})

	if !strings.Contains(output, "→ plan") {
		t.Errorf("Expected plan classification, got %q", output)
	}
	if !strings.Contains(output, "SSH banner") {
		t.Errorf("Expected curated plan, got %q", output)
	}
}

// TestDispatch_UnknownSingleWord tests command typo suggestions
func TestDispatch_UnknownSingleWord(t *testing.T) {
	setupTestState(t)

	output := captureOutput(func() {
		dispatch("expl")
	})

	if !strings.Contains(output, "Did you mean") {
		t.Errorf("Expected suggestions for a typo, got %q", output)
	}
	if !strings.Contains(output, "explain") {
		t.Errorf("Expected 'explain' suggested, got %q", output)
	}
}

// TestDispatch_LiteralInputIsExplainQuery tests that terse non-natural
// input bypasses the phrasing patterns in the session too
func TestDispatch_LiteralInputIsExplainQuery(t *testing.T) {
	setupTestState(t)

	output := captureOutput(func() {
		dispatch("document xss")
	})

	if !strings.Contains(output, "→ explain document xss") {
		t.Errorf("Expected literal input answered as explain, got %q", output)
	}
}

// TestDispatch_HelpBuiltin tests the help builtin
func TestDispatch_HelpBuiltin(t *testing.T) {
	setupTestState(t)

	output := captureOutput(func() {
		dispatch("help")
	})

	for _, name := range []string{"explain", "tip", "assist", "report", "quiz", "plan"} {
		if !strings.Contains(output, name) {
			t.Errorf("Expected help to list %s, got %q", name, output)
		}
	}
}

// TestDispatch_TopicsBuiltin tests the topics builtin
func TestDispatch_TopicsBuiltin(t *testing.T) {
	setupTestState(t)

	output := captureOutput(func() {
		dispatch("topics")
	})

	if !strings.Contains(output, "sql injection") {
		t.Errorf("Expected topic listing, got %q", output)
	}
}
