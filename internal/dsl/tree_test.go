// internal/dsl/tree_test.go
package dsl

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTree(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"journal.kdl", "app.kdl", "README.md", "coa.kdl"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	got := Tree(dir, ".kdl")
	lines := strings.Split(got, "\n")

	if lines[0] != dir+"/" {
		t.Errorf("first line should be the directory, got %q", lines[0])
	}
	if len(lines) != 4 {
		t.Fatalf("expected header + 3 kdl entries, got %d lines:\n%s", len(lines), got)
	}
	// Ordenadas, con el conector de última entrada distinto.
	if lines[1] != "├── app.kdl" || lines[2] != "├── coa.kdl" || lines[3] != "└── journal.kdl" {
		t.Errorf("unexpected tree body:\n%s", got)
	}
	if strings.Contains(got, "README.md") {
		t.Error("non-matching extensions should be filtered out")
	}
}

func TestTreeEmptyDir(t *testing.T) {
	dir := t.TempDir()
	got := Tree(dir, ".kdl")
	if got != dir+"/" {
		t.Errorf("empty dir should render only the header, got %q", got)
	}
}

func TestTreeMissingDirPlaceholder(t *testing.T) {
	got := Tree(filepath.Join(t.TempDir(), "missing"), ".kdl")
	if !strings.HasPrefix(got, "Error reading directory:") {
		t.Errorf("missing dir should produce a placeholder, got %q", got)
	}
}
