// internal/dsl/extract_test.go
package dsl

import (
	"strings"
	"testing"
)

const workflowSource = `dataset "Accounts" {
  field "code"
}
workflow "X" {
  state "Draft" {
  }
  transition "Submit" {
  }
}
dashboard "Main" {
}`

// braceTrace recomputa el balance por línea de un bloque extraído.
func braceTrace(block string) []int {
	var trace []int
	balance := 0
	for _, line := range strings.Split(block, "\n") {
		balance += strings.Count(line, "{")
		balance -= strings.Count(line, "}")
		trace = append(trace, balance)
	}
	return trace
}

func TestExtractWorkflowBlock(t *testing.T) {
	got := Extract(workflowSource, `workflow "X"`)

	want := `workflow "X" {
  state "Draft" {
  }
  transition "Submit" {
  }
}`
	if got != want {
		t.Errorf("Extract returned wrong block:\ngot:\n%s\nwant:\n%s", got, want)
	}

	wantTrace := []int{1, 2, 1, 2, 1, 0}
	gotTrace := braceTrace(got)
	if len(gotTrace) != len(wantTrace) {
		t.Fatalf("trace length = %d, want %d", len(gotTrace), len(wantTrace))
	}
	for i := range wantTrace {
		if gotTrace[i] != wantTrace[i] {
			t.Errorf("trace[%d] = %d, want %d", i, gotTrace[i], wantTrace[i])
		}
	}
}

func TestExtractBlockIsBalanced(t *testing.T) {
	got := Extract(workflowSource, `workflow "X"`)

	trace := braceTrace(got)
	if trace[len(trace)-1] != 0 {
		t.Errorf("extracted block should close at balance zero, trace: %v", trace)
	}
	if !strings.HasPrefix(got, `workflow "X"`) {
		t.Errorf("block should start at the anchor line, got: %q", got)
	}
	if !strings.Contains(workflowSource, got) {
		t.Error("block should be a contiguous slice of the source")
	}
}

func TestExtractIsIdempotent(t *testing.T) {
	first := Extract(workflowSource, `workflow "X"`)
	second := Extract(first, `workflow "X"`)

	if first != second {
		t.Errorf("re-extraction should be a fixed point:\nfirst:\n%s\nsecond:\n%s", first, second)
	}
}

func TestExtractMissingAnchorFallsBack(t *testing.T) {
	got := Extract(workflowSource, `workflow "DoesNotExist"`)
	if got != workflowSource {
		t.Error("missing anchor should return the unmodified full source")
	}
}

func TestExtractUnbalancedFallsBack(t *testing.T) {
	source := `workflow "X" {
  state "Draft" {
  }`
	got := Extract(source, `workflow "X"`)
	if got != source {
		t.Error("balance never returning to zero should fall back to the full source")
	}
}

func TestExtractSubstringAnchorTriggers(t *testing.T) {
	// Sin word boundaries: "flow" dentro de "workflow" dispara igual.
	got := Extract(workflowSource, "flow")
	if got == workflowSource {
		t.Error("substring containment should be enough to anchor the extraction")
	}
	if !strings.HasPrefix(got, `workflow "X"`) {
		t.Errorf("extraction should start at first containing line, got: %q", got)
	}
}

func TestExtractFirstOccurrenceWins(t *testing.T) {
	source := `workflow "A" {
}
workflow "A" {
  state "Second" {
  }
}`
	got := Extract(source, `workflow "A"`)
	want := "workflow \"A\" {\n}"
	if got != want {
		t.Errorf("only the first anchor occurrence should be used, got:\n%s", got)
	}
}

func TestExtractSingleLineBlockFallsBack(t *testing.T) {
	// El balance por línea nunca se hace positivo en "x { }": la línea
	// abre y cierra a la vez, así que no hay bloque que recortar.
	source := `workflow "X" { }
next line`
	got := Extract(source, `workflow "X"`)
	if got != source {
		t.Error("a block opened and closed on one line never turns the balance positive")
	}
}
