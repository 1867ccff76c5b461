package cli

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/mark-chris/cybuddy/internal/cli/testutil"
	"github.com/mark-chris/cybuddy/internal/knowledge"
)

// setupTestState loads the fixture library into the shared CLI state
func setupTestState(t *testing.T) {
	t.Helper()

	jsonOutput = false
	verbose = false
	libraryDir = ""
	askUseAI = false
	store = nil

	library = testutil.LoadTestLibrary(t)
	responder = knowledge.NewResponder(library)
}

// captureOutput captures stdout for testing
func captureOutput(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

// TestFindLibraryDir_FlagTakesPriority tests the flag override
func TestFindLibraryDir_FlagTakesPriority(t *testing.T) {
	libraryDir = "/tmp/from-flag"
	defer func() { libraryDir = "" }()
	t.Setenv("CYBUDDY_LIBRARY", "/tmp/from-env")

	if dir := findLibraryDir(); dir != "/tmp/from-flag" {
		t.Errorf("Expected flag value, got %q", dir)
	}
}

// TestFindLibraryDir_EnvFallback tests the environment override
func TestFindLibraryDir_EnvFallback(t *testing.T) {
	libraryDir = ""
	t.Setenv("CYBUDDY_LIBRARY", "/tmp/from-env")

	if dir := findLibraryDir(); dir != "/tmp/from-env" {
		t.Errorf("Expected environment value, got %q", dir)
	}
}

// TestFindLibraryDir_DefaultsToEmbedded tests the embedded default
func TestFindLibraryDir_DefaultsToEmbedded(t *testing.T) {
	libraryDir = ""
	t.Setenv("CYBUDDY_LIBRARY", "")
	t.Setenv("HOME", t.TempDir()) // no ~/.cybuddy/library present

	if dir := findLibraryDir(); dir != "" {
		t.Errorf("Expected embedded library (empty dir), got %q", dir)
	}
}

// TestGetFormat_FlagAndEnv tests JSON format selection
func TestGetFormat_FlagAndEnv(t *testing.T) {
	t.Setenv("CYBUDDY_JSON", "")

	jsonOutput = false
	if getFormat() != knowledge.FormatText {
		t.Error("Expected text format by default")
	}

	jsonOutput = true
	if getFormat() != knowledge.FormatJSON {
		t.Error("Expected JSON format with --json")
	}

	jsonOutput = false
	t.Setenv("CYBUDDY_JSON", "1")
	if getFormat() != knowledge.FormatJSON {
		t.Error("Expected JSON format with CYBUDDY_JSON=1")
	}
}

// TestRecentCommands_WithoutStore tests the nil-store path
func TestRecentCommands_WithoutStore(t *testing.T) {
	store = nil

	if lines := recentCommands(5); lines != nil {
		t.Errorf("Expected nil without a store, got %v", lines)
	}
}
