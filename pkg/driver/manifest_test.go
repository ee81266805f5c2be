package driver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFullManifest(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
description: closure capture
entry: main.json
expect:
  result:
    kind: Number
    value: "2"
  stdout:
    - "hello"
`)
	m, err := LoadDir(dir)
	require.NoError(t, err)

	assert.Equal(t, "closure capture", m.Description)
	assert.Equal(t, "main.json", m.Entry)
	assert.Equal(t, filepath.Join(dir, "main.json"), m.EntryPath())
	require.NotNil(t, m.Expect.Result)
	assert.Equal(t, "Number", m.Expect.Result.Kind)
	assert.Equal(t, "2", m.Expect.Result.Value)
	assert.Equal(t, []string{"hello"}, m.Expect.Stdout)
	assert.Empty(t, m.Expect.Error)
}

func TestEntryDefaultsToProgramJSON(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "description: defaults\n")

	m, err := LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, "program.json", m.Entry)
	assert.Equal(t, filepath.Join(dir, "program.json"), m.EntryPath())
}

func TestErrorExpectation(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
description: arity fault
expect:
  error: "missing argument"
`)
	m, err := LoadDir(dir)
	require.NoError(t, err)
	assert.Nil(t, m.Expect.Result)
	assert.Equal(t, "missing argument", m.Expect.Error)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadDir(t.TempDir())
	assert.Error(t, err)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "description: [unclosed\n")
	_, err := LoadDir(dir)
	assert.Error(t, err)
}

func TestAbsoluteEntryPathIsKept(t *testing.T) {
	dir := t.TempDir()
	abs := filepath.Join(dir, "elsewhere.json")
	writeManifest(t, dir, "entry: "+abs+"\n")

	m, err := LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, abs, m.EntryPath())
}
