package intent

import "testing"

// TestNormalizeTopic_StripsLeadingStopwords tests leading filler removal
func TestNormalizeTopic_StripsLeadingStopwords(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"the sql injection", "sql injection"},
		{"an open port 22", "open port 22"},
		{"a an the xss", "xss"},
		{"about privilege escalation", "privilege escalation"},
		{"nmap", "nmap"},
		{"sql injection", "sql injection"},
	}

	for _, tc := range cases {
		if got := NormalizeTopic(tc.input); got != tc.want {
			t.Errorf("NormalizeTopic(%q) = %q, expected %q", tc.input, got, tc.want)
		}
	}
}

// TestNormalizeTopic_KeepsInteriorStopwords tests only the front is cleaned
func TestNormalizeTopic_KeepsInteriorStopwords(t *testing.T) {
	got := NormalizeTopic("the state of the art")
	if got != "state of the art" {
		t.Errorf("Expected interior stopwords kept, got %q", got)
	}
}

// TestNormalizeTopic_NeverEmpties tests the all-stopwords safeguard
func TestNormalizeTopic_NeverEmpties(t *testing.T) {
	cases := []string{"to", "the a an", "of"}

	for _, input := range cases {
		if got := NormalizeTopic(input); got != input {
			t.Errorf("NormalizeTopic(%q) = %q, expected input returned unchanged", input, got)
		}
	}
}

// TestNormalizeTopic_EmptyInput tests the empty string passes through
func TestNormalizeTopic_EmptyInput(t *testing.T) {
	if got := NormalizeTopic(""); got != "" {
		t.Errorf("NormalizeTopic(\"\") = %q, expected empty", got)
	}
}
