package cli

import (
	"encoding/json"
	"strings"
	"testing"
)

// TestRunAsk_ClassifiesAndAnswers tests the natural-language path
func TestRunAsk_ClassifiesAndAnswers(t *testing.T) {
	setupTestState(t)

	output := captureOutput(func() {
		if err := runAsk(askCmd, []string{"what", "is", "nmap?"}); err != nil {
			t.Errorf("runAsk failed: %v", err)
		}
	})

	if !strings.Contains(output, "→ explain nmap") {
		t.Errorf("Expected interpretation hint, got %q", output)
	}
	if !strings.Contains(output, "Network scanner") {
		t.Errorf("Expected knowledge-base answer, got %q", output)
	}
}

// TestRunAsk_JSONEnvelope tests ask in JSON mode
func TestRunAsk_JSONEnvelope(t *testing.T) {
	setupTestState(t)
	jsonOutput = true

	output := captureOutput(func() {
		if err := runAsk(askCmd, []string{"tips", "on", "sql", "injection"}); err != nil {
			t.Errorf("runAsk failed: %v", err)
		}
	})

	// No interpretation hint in JSON mode; the whole line is the envelope.
	var envelope struct {
		Type  string `json:"type"`
		Input string `json:"input"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(output)), &envelope); err != nil {
		t.Fatalf("Output is not valid JSON: %v\n%s", err, output)
	}

	if envelope.Type != "tip" {
		t.Errorf("Expected classified type tip, got %q", envelope.Type)
	}
	if envelope.Input != "tips on sql injection" {
		t.Errorf("Expected original question preserved, got %q", envelope.Input)
	}
}

// TestRunAsk_LiteralInputIsExplainQuery tests the natural-language gate:
// terse input that doesn't read as conversation must not be routed by
// the phrasing patterns, it is an explain query as typed
func TestRunAsk_LiteralInputIsExplainQuery(t *testing.T) {
	setupTestState(t)
	jsonOutput = true

	// Each of these would hit a report/assist/quiz phrasing pattern if
	// classified, but none reads as natural language.
	for _, input := range []string{"document xss", "fix sqlmap", "practice xss"} {
		output := captureOutput(func() {
			if err := runAsk(askCmd, strings.Fields(input)); err != nil {
				t.Errorf("runAsk(%q) failed: %v", input, err)
			}
		})

		var envelope struct {
			Type  string `json:"type"`
			Input string `json:"input"`
		}
		if err := json.Unmarshal([]byte(strings.TrimSpace(output)), &envelope); err != nil {
			t.Fatalf("Output for %q is not valid JSON: %v\n%s", input, err, output)
		}
		if envelope.Type != "explain" {
			t.Errorf("Expected %q to be answered as explain, got %q", input, envelope.Type)
		}
		if envelope.Input != input {
			t.Errorf("Expected input preserved for %q, got %q", input, envelope.Input)
		}
	}
}

// TestRunAsk_NaturalInputStillClassifies tests that conversational
// phrasings keep going through the classifier
func TestRunAsk_NaturalInputStillClassifies(t *testing.T) {
	setupTestState(t)
	jsonOutput = true

	output := captureOutput(func() {
		if err := runAsk(askCmd, []string{"i", "found", "port", "22", "open"}); err != nil {
			t.Errorf("runAsk failed: %v", err)
		}
	})

	var envelope struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(output)), &envelope); err != nil {
		t.Fatalf("Output is not valid JSON: %v\n%s", err, output)
	}
	if envelope.Type != "plan" {
		t.Errorf("Expected plan classification, got %q", envelope.Type)
	}
}

// TestRunAsk_AIFallsBackToKnowledgeBase tests --ai without configuration
func TestRunAsk_AIFallsBackToKnowledgeBase(t *testing.T) {
	setupTestState(t)
	askUseAI = true
	t.Setenv("CYBUDDY_AI_PROVIDER", "")

	output := captureOutput(func() {
		if err := runAsk(askCmd, []string{"what", "is", "nmap"}); err != nil {
			t.Errorf("runAsk failed: %v", err)
		}
	})

	if !strings.Contains(output, "Network scanner") {
		t.Errorf("Expected knowledge-base fallback answer, got %q", output)
	}
}
