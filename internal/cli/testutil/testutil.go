// Package testutil provides knowledge library fixtures for CLI tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/mark-chris/cybuddy/internal/knowledge"
)

// TestFixture holds test resources
type TestFixture struct {
	Dir     string // Temporary directory containing the library files
	Cleanup func()
}

// explainDoc mirrors the on-disk explain document shape. Defined here
// to avoid exporting loader internals.
type explainDoc struct {
	Commands map[string]knowledge.ExplainEntry `yaml:"commands"`
}

// topicDoc mirrors the on-disk flat-topic document shape.
type topicDoc struct {
	Topics map[string]string `yaml:"topics"`
}

// SetupTestLibrary creates a temporary directory with a small but
// complete six-document knowledge library and returns its fixture.
func SetupTestLibrary(t *testing.T) *TestFixture {
	t.Helper()

	tmpDir := t.TempDir()

	explain := explainDoc{Commands: map[string]knowledge.ExplainEntry{
		"nmap": {
			Base:    "Network scanner for discovering hosts and services.",
			Usage:   "start of an engagement to map the target",
			Caution: "Only scan systems you have permission to test.",
			Flags: map[string]string{
				"-sV": "probe open ports for service versions",
				"-p":  "specify ports to scan",
			},
		},
		"gobuster": {
			Base: "Directory and DNS brute-forcing tool.",
		},
	}}

	docs := map[string]interface{}{
		"explain.yaml": explain,
		"tip.yaml": topicDoc{Topics: map[string]string{
			"sql injection": "Try single quotes in inputs and watch for database errors.",
			"xss":           "Test reflected input with a harmless script payload.",
		}},
		"assist.yaml": topicDoc{Topics: map[string]string{
			"connection refused": "The port is closed or filtered. Re-check the target and port.",
		}},
		"report.yaml": topicDoc{Topics: map[string]string{
			"sql injection": "Vulnerability: SQL injection\nImpact: data exposure\nMitigation: parameterized queries",
		}},
		"quiz.yaml": topicDoc{Topics: map[string]string{
			"xss": "Q: What does XSS stand for?\nA: Cross-site scripting",
		}},
		"plan.yaml": topicDoc{Topics: map[string]string{
			"found port 22 open": "1. Grab the SSH banner\n2. Check for weak credentials\n3. Document the version",
		}},
	}

	for name, doc := range docs {
		if err := writeLibraryFile(tmpDir, name, doc); err != nil {
			t.Fatalf("Failed to write library file %s: %v", name, err)
		}
	}

	return &TestFixture{
		Dir:     tmpDir,
		Cleanup: func() {}, // t.TempDir() handles cleanup automatically
	}
}

// LoadTestLibrary loads the fixture library for tests that need a
// *knowledge.Library directly.
func LoadTestLibrary(t *testing.T) *knowledge.Library {
	t.Helper()

	fixture := SetupTestLibrary(t)
	lib, err := knowledge.NewLoader(fixture.Dir).Load()
	if err != nil {
		t.Fatalf("Failed to load test library: %v", err)
	}
	return lib
}

// writeLibraryFile marshals a library document to YAML in dir.
func writeLibraryFile(dir, name string, doc interface{}) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}
	// #nosec G306 -- Test files don't need restrictive permissions
	return os.WriteFile(filepath.Join(dir, name), data, 0644)
}
