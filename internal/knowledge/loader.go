package knowledge

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var defaultLibrary embed.FS

// explainFile is the on-disk shape of the explain document.
type explainFile struct {
	Commands map[string]ExplainEntry `yaml:"commands"`
}

// topicFile is the on-disk shape of the five flat-topic documents.
type topicFile struct {
	Topics map[string]string `yaml:"topics"`
}

// Loader reads a knowledge library from a directory of YAML files, or
// from the embedded defaults when no directory is given.
type Loader struct {
	dir string
}

// NewLoader creates a library loader. An empty dir selects the
// embedded default library.
func NewLoader(dir string) *Loader {
	return &Loader{dir: dir}
}

// Load reads all six library documents and returns the assembled
// library. Keys are lower-cased so lookups are case-insensitive; keys
// that collide after lower-casing are an error rather than a silent
// merge.
func (l *Loader) Load() (*Library, error) {
	lib := &Library{}

	explainData, err := l.readFile("explain.yaml")
	if err != nil {
		return nil, err
	}
	var ef explainFile
	if err := yaml.Unmarshal(explainData, &ef); err != nil {
		return nil, fmt.Errorf("failed to parse explain.yaml: %w", err)
	}
	lib.Explain = make(map[string]ExplainEntry, len(ef.Commands))
	for key, entry := range ef.Commands {
		lower := strings.ToLower(key)
		if _, exists := lib.Explain[lower]; exists {
			return nil, fmt.Errorf("duplicate key %q in explain.yaml: case variants collide after lower-casing", lower)
		}
		lib.Explain[lower] = entry
	}

	flat := []struct {
		name string
		dst  *map[string]string
	}{
		{"tip.yaml", &lib.Tip},
		{"assist.yaml", &lib.Assist},
		{"report.yaml", &lib.Report},
		{"quiz.yaml", &lib.Quiz},
		{"plan.yaml", &lib.Plan},
	}

	for _, f := range flat {
		data, err := l.readFile(f.name)
		if err != nil {
			return nil, err
		}
		var tf topicFile
		if err := yaml.Unmarshal(data, &tf); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", f.name, err)
		}
		m := make(map[string]string, len(tf.Topics))
		for key, content := range tf.Topics {
			lower := strings.ToLower(key)
			if _, exists := m[lower]; exists {
				return nil, fmt.Errorf("duplicate key %q in %s: case variants collide after lower-casing", lower, f.name)
			}
			m[lower] = content
		}
		*f.dst = m
	}

	lib.finalize()
	return lib, nil
}

// readFile reads a library document from the configured directory or
// the embedded defaults.
func (l *Loader) readFile(name string) ([]byte, error) {
	if l.dir == "" {
		data, err := defaultLibrary.ReadFile("data/" + name)
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded %s: %w", name, err)
		}
		return data, nil
	}

	path := filepath.Join(l.dir, name)
	if err := l.validatePath(path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// validatePath ensures the given path stays within the loader's
// directory and rejects traversal outside it.
func (l *Loader) validatePath(path string) error {
	cleanPath, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}

	cleanBase, err := filepath.Abs(filepath.Clean(l.dir))
	if err != nil {
		return fmt.Errorf("failed to resolve library directory: %w", err)
	}

	relPath, err := filepath.Rel(cleanBase, cleanPath)
	if err != nil {
		return fmt.Errorf("failed to compute relative path: %w", err)
	}

	if strings.HasPrefix(relPath, "..") || filepath.IsAbs(relPath) {
		return fmt.Errorf("path traversal detected: %s is outside library directory %s", path, l.dir)
	}

	return nil
}
