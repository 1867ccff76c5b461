package intent

import (
	"testing"

	"github.com/mark-chris/cybuddy/internal/knowledge"
)

// TestClassify_DirectCommands tests that command prefixes short-circuit
func TestClassify_DirectCommands(t *testing.T) {
	cases := []struct {
		input     string
		wantCmd   knowledge.Command
		wantTopic string
	}{
		{"explain nmap -sV", knowledge.CommandExplain, "nmap -sV"},
		{"tip sql injection", knowledge.CommandTip, "sql injection"},
		{"assist connection refused", knowledge.CommandAssist, "connection refused"},
		{"report open s3 bucket", knowledge.CommandReport, "open s3 bucket"},
		{"quiz xss", knowledge.CommandQuiz, "xss"},
		{"plan found port 22 open", knowledge.CommandPlan, "found port 22 open"},
	}

	for _, tc := range cases {
		cmd, topic := Classify(tc.input, nil)
		if cmd != tc.wantCmd || topic != tc.wantTopic {
			t.Errorf("Classify(%q) = (%s, %q), expected (%s, %q)",
				tc.input, cmd, topic, tc.wantCmd, tc.wantTopic)
		}
	}
}

// TestClassify_DirectCommandPreservesCase tests topics keep original casing
func TestClassify_DirectCommandPreservesCase(t *testing.T) {
	cmd, topic := Classify("Explain Nmap", nil)

	if cmd != knowledge.CommandExplain {
		t.Errorf("Expected explain, got %s", cmd)
	}
	if topic != "Nmap" {
		t.Errorf("Expected topic 'Nmap', got %q", topic)
	}
}

// TestClassify_BareCommandName tests a command name alone
func TestClassify_BareCommandName(t *testing.T) {
	cmd, topic := Classify("plan", nil)

	if cmd != knowledge.CommandPlan || topic != "" {
		t.Errorf("Classify(\"plan\") = (%s, %q), expected (plan, \"\")", cmd, topic)
	}
}

// TestClassify_Patterns tests the phrasing pattern table
func TestClassify_Patterns(t *testing.T) {
	cases := []struct {
		input     string
		wantCmd   knowledge.Command
		wantTopic string
	}{
		{"what is burp suite?", knowledge.CommandExplain, "burp suite"},
		{"how do i use sqlmap", knowledge.CommandExplain, "use sqlmap"},
		{"tell me about hashcat", knowledge.CommandExplain, "hashcat"},
		{"i found an open port 8080", knowledge.CommandPlan, "open port 8080"},
		{"what should i do after getting a shell", knowledge.CommandPlan, "getting a shell"},
		{"tips on sql injection", knowledge.CommandTip, "sql injection"},
		{"best practices for password storage", knowledge.CommandTip, "password storage"},
		{"i'm getting a connection refused error", knowledge.CommandAssist, "connection refused error"},
		{"why is my scan so slow", knowledge.CommandAssist, "my scan so slow"},
		{"write up sql injection", knowledge.CommandReport, "sql injection"},
		{"document the weak tls finding", knowledge.CommandReport, "weak tls finding"},
		{"test me on the osi model", knowledge.CommandQuiz, "osi model"},
		{"practice buffer overflows", knowledge.CommandQuiz, "buffer overflows"},
	}

	for _, tc := range cases {
		cmd, topic := Classify(tc.input, nil)
		if cmd != tc.wantCmd || topic != tc.wantTopic {
			t.Errorf("Classify(%q) = (%s, %q), expected (%s, %q)",
				tc.input, cmd, topic, tc.wantCmd, tc.wantTopic)
		}
	}
}

// TestClassify_StripsTrailingPunctuation tests topic cleanup
func TestClassify_StripsTrailingPunctuation(t *testing.T) {
	cmd, topic := Classify("what is kerberoasting?!", nil)

	if cmd != knowledge.CommandExplain {
		t.Errorf("Expected explain, got %s", cmd)
	}
	if topic != "kerberoasting" {
		t.Errorf("Expected trailing punctuation stripped, got %q", topic)
	}
}

// TestClassify_KeywordFallback tests keyword-based classification
func TestClassify_KeywordFallback(t *testing.T) {
	cases := []struct {
		input   string
		wantCmd knowledge.Command
	}{
		{"nmap -sV", knowledge.CommandExplain},
		{"nmap cheat sheet", knowledge.CommandExplain},
		{"sql injection basics", knowledge.CommandTip},
		{"stuck enumerating the target", knowledge.CommandPlan},
		{"completely unrelated text", knowledge.CommandExplain},
	}

	for _, tc := range cases {
		cmd, topic := Classify(tc.input, nil)
		if cmd != tc.wantCmd {
			t.Errorf("Classify(%q) = %s, expected %s", tc.input, cmd, tc.wantCmd)
		}
		if topic != tc.input {
			t.Errorf("Classify(%q) topic = %q, expected the original text", tc.input, topic)
		}
	}
}

// TestClassify_EmptyInput tests the empty-input default
func TestClassify_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "   "} {
		cmd, topic := Classify(input, nil)
		if cmd != knowledge.CommandExplain || topic != "" {
			t.Errorf("Classify(%q) = (%s, %q), expected (explain, \"\")", input, cmd, topic)
		}
	}
}

// TestClassify_HistoryBiasesTowardPlan tests engagement context
func TestClassify_HistoryBiasesTowardPlan(t *testing.T) {
	input := "ok what now"

	// Without history the unclassifiable input defaults to explain.
	cmd, _ := Classify(input, nil)
	if cmd != knowledge.CommandExplain {
		t.Fatalf("Expected explain without history, got %s", cmd)
	}

	// Recent engagement activity flips the default to plan.
	history := []string{"plan found port 22 open", "explain hydra"}
	cmd, topic := Classify(input, history)
	if cmd != knowledge.CommandPlan {
		t.Errorf("Expected plan with engagement history, got %s", cmd)
	}
	if topic != input {
		t.Errorf("Expected original text as topic, got %q", topic)
	}
}

// TestClassify_HistoryWindowIsBounded tests only recent history counts
func TestClassify_HistoryWindowIsBounded(t *testing.T) {
	// The engagement entry is older than the 5-entry window.
	history := []string{
		"plan found port 22 open",
		"quiz osi", "quiz tcp", "quiz udp", "quiz dns", "quiz http",
	}

	cmd, _ := Classify("ok what now", history)
	if cmd != knowledge.CommandExplain {
		t.Errorf("Expected stale engagement history to be ignored, got %s", cmd)
	}
}
