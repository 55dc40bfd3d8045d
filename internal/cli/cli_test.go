package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.funx")
	if err := os.WriteFile(path, []byte("(+ 1 2)"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	text, ok := readSource(path)
	if !ok {
		t.Fatal("readSource() ok = false, want true")
	}
	if text != "(+ 1 2)" {
		t.Errorf("readSource() = %q, want %q", text, "(+ 1 2)")
	}

	if _, ok := readSource(filepath.Join(dir, "missing.funx")); ok {
		t.Error("readSource() on missing file ok = true, want false")
	}
}

func TestRunSuccess(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ok.funx")
	if err := os.WriteFile(path, []byte("(+ 1 2)"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if err := run(path); err != nil {
		t.Errorf("run() error = %v, want nil", err)
	}
}

func TestRunMissingFileReportsError(t *testing.T) {
	err := run(filepath.Join(t.TempDir(), "missing.funx"))
	if err == nil {
		t.Fatal("run() error = nil, want non-nil for a missing file")
	}
	if !strings.Contains(err.Error(), "could not be found") {
		t.Errorf("run() error = %v, want a target-not-found message", err)
	}
}

func TestRootCommandRequiresExactlyOneArg(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err == nil {
		t.Error("Execute() with no args should error (ExactArgs(1))")
	}

	cmd = NewRootCommand()
	cmd.SetArgs([]string{"a.funx", "b.funx"})
	if err := cmd.Execute(); err == nil {
		t.Error("Execute() with two args should error (ExactArgs(1))")
	}
}
