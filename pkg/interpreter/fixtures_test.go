package interpreter

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pyrite/interpreter-go/pkg/builtins"
	"pyrite/interpreter-go/pkg/driver"
	"pyrite/interpreter-go/pkg/runtime"
)

const fixtureRoot = "../../fixtures"

// TestFixtures runs every program directory under fixtures/ against the
// expectations recorded in its manifest.
func TestFixtures(t *testing.T) {
	entries, err := os.ReadDir(fixtureRoot)
	if err != nil {
		t.Fatalf("reading fixture root: %v", err)
	}
	ran := 0
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(fixtureRoot, entry.Name())
		if _, err := os.Stat(filepath.Join(dir, driver.ManifestName)); err != nil {
			continue
		}
		ran++
		t.Run(entry.Name(), func(t *testing.T) {
			runFixture(t, dir)
		})
	}
	if ran == 0 {
		t.Fatalf("no fixture programs found under %s", fixtureRoot)
	}
}

func runFixture(t *testing.T, dir string) {
	manifest, err := driver.LoadDir(dir)
	if err != nil {
		t.Fatalf("loading manifest: %v", err)
	}
	data, err := os.ReadFile(manifest.EntryPath())
	if err != nil {
		t.Fatalf("reading entry: %v", err)
	}
	prog, err := DecodeProgram(data)
	if err != nil {
		t.Fatalf("decoding entry: %v", err)
	}

	var stdout bytes.Buffer
	interp := New()
	interp.RegisterBuiltins(builtins.Table(&stdout))
	result, evalErr := interp.EvaluateProgram(prog)

	expect := manifest.Expect
	if expect.Error != "" {
		if evalErr == nil {
			t.Fatalf("expected error containing %q, got result %s", expect.Error, runtime.ToString(result))
		}
		if !strings.Contains(evalErr.Error(), expect.Error) {
			t.Fatalf("error %q does not contain %q", evalErr.Error(), expect.Error)
		}
	} else {
		if evalErr != nil {
			t.Fatalf("unexpected error: %v", evalErr)
		}
		if expect.Result != nil {
			if got := result.Kind().String(); got != expect.Result.Kind {
				t.Errorf("result kind %q, want %q", got, expect.Result.Kind)
			}
			if got := runtime.ToString(result); got != expect.Result.Value {
				t.Errorf("result %q, want %q", got, expect.Result.Value)
			}
		}
	}

	var gotLines []string
	if trimmed := strings.TrimSuffix(stdout.String(), "\n"); trimmed != "" {
		gotLines = strings.Split(trimmed, "\n")
	}
	if len(gotLines) != len(expect.Stdout) {
		t.Fatalf("stdout %q, want %q", gotLines, expect.Stdout)
	}
	for i, want := range expect.Stdout {
		if gotLines[i] != want {
			t.Errorf("stdout line %d = %q, want %q", i, gotLines[i], want)
		}
	}
}
