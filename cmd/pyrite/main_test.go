package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRunExitCodes(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want int
	}{
		{"no arguments", nil, 1},
		{"help", []string{"--help"}, 0},
		{"version", []string{"version"}, 0},
		{"missing file", []string{"run", "no-such-file.json"}, 1},
		{"program directory", []string{"run", "../../fixtures/closure-capture"}, 0},
		{"entry file directly", []string{"../../fixtures/closure-capture/program.json"}, 0},
		{"failing program", []string{"run", "../../fixtures/arity-fault"}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := run(tc.args); got != tc.want {
				t.Errorf("run(%v) = %d, want %d", tc.args, got, tc.want)
			}
		})
	}
}

func TestRunRejectsUndecodableEntry(t *testing.T) {
	dir := t.TempDir()
	entry := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(entry, []byte(`{"type": "Mystery"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := run([]string{"run", entry}); got != 1 {
		t.Errorf("run on undecodable entry = %d, want 1", got)
	}
}
