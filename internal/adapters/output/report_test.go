// internal/adapters/output/report_test.go
package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"docshot/internal/core/domain"
	"docshot/internal/testutil"
)

func sampleRun() *domain.PipelineRun {
	run := domain.NewPipelineRun("finance")
	run.AddCaptured("finance-dashboard", "finance-dashboard.png", 1200*time.Millisecond)
	run.AddFailed("finance-coa-list", "finance-coa-list.png", "selector timeout", 10*time.Second)
	run.AddWarning("server not ready, continuing")
	run.Finalize()
	return run
}

func TestWriteReport(t *testing.T) {
	dir := t.TempDir()
	run := sampleRun()

	path, err := WriteReport(dir, run)
	testutil.AssertNoError(t, err, "write should succeed")
	testutil.AssertTrue(t, strings.HasPrefix(filepath.Base(path), "docshot_finance_"), "report filename")

	data, err := os.ReadFile(path)
	testutil.AssertNoError(t, err, "report should exist")

	var decoded domain.PipelineRun
	testutil.AssertNoError(t, json.Unmarshal(data, &decoded), "report should be valid JSON")
	testutil.AssertEqual(t, decoded.Module, "finance", "module name")
	testutil.AssertEqual(t, len(decoded.Outcomes), 2, "outcome count")
	testutil.AssertEqual(t, decoded.Outcomes[1].Reason, "selector timeout", "failure reason preserved")
}

func TestWriteReport_SanitizesModule(t *testing.T) {
	dir := t.TempDir()
	run := domain.NewPipelineRun("weird module/name")
	run.AddCaptured("t", "t.png", time.Second)
	run.Finalize()

	path, err := WriteReport(dir, run)
	testutil.AssertNoError(t, err, "write should succeed")
	testutil.AssertContains(t, filepath.Base(path), "weird_module_name", "sanitized filename")
}

func TestWriteReportStdout(t *testing.T) {
	// Solo verifica que la serialización no falle; el destino es stdout.
	testutil.AssertNoError(t, WriteReportStdout(sampleRun(), false), "stdout report")
}
