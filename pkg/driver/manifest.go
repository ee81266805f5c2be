// Package driver loads program manifests. A manifest (program.yml) names
// the entry syntax-tree file and optional expectations used by the fixture
// harness.
package driver

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ManifestName is the file looked up inside a program directory.
const ManifestName = "program.yml"

// Manifest describes one runnable program.
type Manifest struct {
	Description string `yaml:"description"`
	// Entry is the JSON syntax-tree file, relative to the manifest.
	Entry  string      `yaml:"entry"`
	Expect Expectation `yaml:"expect"`

	dir string
}

// Expectation captures the golden outcome for the fixture harness. Exactly
// one of Result or Error is meaningful; Stdout may accompany either.
type Expectation struct {
	Result *ExpectedResult `yaml:"result"`
	Stdout []string        `yaml:"stdout"`
	Error  string          `yaml:"error"`
}

// ExpectedResult is a rendered value plus its kind tag.
type ExpectedResult struct {
	Kind  string `yaml:"kind"`
	Value string `yaml:"value"`
}

// Load reads and validates a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	if m.Entry == "" {
		m.Entry = "program.json"
	}
	m.dir = filepath.Dir(path)
	return &m, nil
}

// LoadDir loads the manifest conventionally named inside dir.
func LoadDir(dir string) (*Manifest, error) {
	return Load(filepath.Join(dir, ManifestName))
}

// EntryPath resolves the entry file against the manifest's directory.
func (m *Manifest) EntryPath() string {
	if filepath.IsAbs(m.Entry) {
		return m.Entry
	}
	return filepath.Join(m.dir, m.Entry)
}
