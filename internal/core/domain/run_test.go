// internal/core/domain/run_test.go
package domain

import (
	"testing"
	"time"
)

func TestPipelineRunOutcomes(t *testing.T) {
	run := NewPipelineRun("finance")

	run.AddCaptured("finance-dashboard", "finance-dashboard.png", 100*time.Millisecond)
	run.AddFailed("finance-coa-list", "finance-coa-list.png", "selector timeout", 10*time.Second)
	run.AddCaptured("finance-journal-list", "finance-journal-list.png", 80*time.Millisecond)
	run.Finalize()

	if got := run.Captured(); got != 2 {
		t.Errorf("Captured() = %d, want 2", got)
	}
	if got := run.Failed(); got != 1 {
		t.Errorf("Failed() = %d, want 1", got)
	}
	if run.Outcomes[1].Reason != "selector timeout" {
		t.Errorf("failed outcome should keep its reason, got %q", run.Outcomes[1].Reason)
	}
	if run.FinishedAt.IsZero() {
		t.Error("Finalize should stamp FinishedAt")
	}
	if run.Duration() < 0 {
		t.Error("Duration should be non-negative")
	}
}

func TestPipelineRunFatal(t *testing.T) {
	run := NewPipelineRun("siasn")
	run.SetFatal("target process failed to start")
	run.Finalize()

	if run.Fatal == "" {
		t.Error("fatal reason should be recorded")
	}
	if len(run.Outcomes) != 0 {
		t.Error("a fatal before the first task leaves no outcomes")
	}
}

func TestPipelineRunWarnings(t *testing.T) {
	run := NewPipelineRun("finance")
	run.AddWarning("readiness wait expired, attempting capture anyway")

	if len(run.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(run.Warnings))
	}
}
