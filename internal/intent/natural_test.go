package intent

import "testing"

// TestIsNaturalLanguage_QuestionMark tests that "?" always reads as natural
func TestIsNaturalLanguage_QuestionMark(t *testing.T) {
	if !IsNaturalLanguage("burp suite?") {
		t.Error("Expected question mark to mark input as natural language")
	}
}

// TestIsNaturalLanguage_QuestionWords tests leading question words
func TestIsNaturalLanguage_QuestionWords(t *testing.T) {
	cases := []string{
		"what is nmap",
		"how does tls work",
		"why scan slowly",
	}
	for _, input := range cases {
		if !IsNaturalLanguage(input) {
			t.Errorf("Expected %q to be natural language", input)
		}
	}
}

// TestIsNaturalLanguage_SingleWord tests the single-word rule
func TestIsNaturalLanguage_SingleWord(t *testing.T) {
	if !IsNaturalLanguage("what") {
		t.Error("Expected single question word to be natural language")
	}
	if IsNaturalLanguage("nmap") {
		t.Error("Expected a bare tool name to not be natural language")
	}
	if IsNaturalLanguage("explain") {
		t.Error("Expected a bare command word to not be natural language")
	}
}

// TestIsNaturalLanguage_CommandWordWithArgs tests command-style phrasing
func TestIsNaturalLanguage_CommandWordWithArgs(t *testing.T) {
	if !IsNaturalLanguage("explain sql injection to me") {
		t.Error("Expected command word plus text to be natural language")
	}
}

// TestIsNaturalLanguage_ConversationalPatterns tests phrase detection
func TestIsNaturalLanguage_ConversationalPatterns(t *testing.T) {
	cases := []string{
		"i found something odd",
		"tips on recon",
		"can you check this",
		"help me plan",
	}
	for _, input := range cases {
		if !IsNaturalLanguage(input) {
			t.Errorf("Expected %q to be natural language", input)
		}
	}
}

// TestIsNaturalLanguage_ThreeWordMinimum tests the length heuristic
func TestIsNaturalLanguage_ThreeWordMinimum(t *testing.T) {
	if !IsNaturalLanguage("scan the network") {
		t.Error("Expected three words to be natural language")
	}
	if IsNaturalLanguage("nmap -sV") {
		t.Error("Expected a two-word tool invocation to not be natural language")
	}
}

// TestIsNaturalLanguage_EmptyInput tests the empty case
func TestIsNaturalLanguage_EmptyInput(t *testing.T) {
	if IsNaturalLanguage("") || IsNaturalLanguage("   ") {
		t.Error("Expected empty input to not be natural language")
	}
}
