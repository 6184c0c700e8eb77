// internal/platform/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"docshot/internal/core/domain"
	"docshot/internal/platform/errors"
	"docshot/internal/testutil"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil)

	testutil.AssertNoError(t, err, "load should succeed")
	testutil.AssertEqual(t, cfg.OutputDir, "docs/images", "default output dir")
	testutil.AssertTrue(t, cfg.Headless, "headless by default")
	testutil.AssertEqual(t, cfg.TimeoutS, 0, "no timeout by default")
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("DOCSHOT_OUTPUT_DIR", "/tmp/shots")
	t.Setenv("DOCSHOT_HEADLESS", "false")
	t.Setenv("DOCSHOT_TIMEOUT", "300")

	cfg, err := Load(nil)

	testutil.AssertNoError(t, err, "load should succeed")
	testutil.AssertEqual(t, cfg.OutputDir, "/tmp/shots", "env output dir")
	testutil.AssertFalse(t, cfg.Headless, "env headless override")
	testutil.AssertEqual(t, cfg.TimeoutS, 300, "env timeout")
	testutil.AssertEqual(t, cfg.Timeout(), 300*time.Second, "timeout as duration")
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("DOCSHOT_OUTPUT_DIR", "/tmp/env-dir")

	cfg, err := Load([]string{"--out", "/tmp/flag-dir", "finance"})

	testutil.AssertNoError(t, err, "load should succeed")
	testutil.AssertEqual(t, cfg.OutputDir, "/tmp/flag-dir", "flag beats env")
	testutil.AssertEqual(t, cfg.Module, "finance", "positional module arg")
}

func TestLoad_QuietShorthand(t *testing.T) {
	cfg, err := Load([]string{"-q", "siasn"})

	testutil.AssertNoError(t, err, "load should succeed")
	testutil.AssertTrue(t, cfg.Quiet, "quiet shorthand")
	testutil.AssertEqual(t, cfg.Module, "siasn", "module arg")
}

func TestLoad_ReportStdout(t *testing.T) {
	cfg, err := Load([]string{"--report-stdout", "finance"})

	testutil.AssertNoError(t, err, "load should succeed")
	testutil.AssertTrue(t, cfg.ReportStdout, "report-stdout flag")

	t.Setenv("DOCSHOT_REPORT_STDOUT", "1")
	cfg, err = Load([]string{"finance"})

	testutil.AssertNoError(t, err, "load should succeed")
	testutil.AssertTrue(t, cfg.ReportStdout, "report-stdout env")
}

func TestLoad_NormalizeNegativeTimeout(t *testing.T) {
	cfg, err := Load([]string{"--timeout", "-5"})

	testutil.AssertNoError(t, err, "load should succeed")
	testutil.AssertEqual(t, cfg.TimeoutS, 0, "negative timeout clamps to 0")
}

const sampleModuleYAML = `name: demo
base_url: http://localhost:3000
server:
  command: ./target/debug/gurih_cli
  args: ["run", "demo/app.kdl", "--port", "3000"]
  ready_delay: "5s"
mocks:
  - pattern: "**/api/Account"
    body: '[{"id":"1000"}]'
session:
  token: dummy-token
  username: admin
  roles: [Admin]
  user_id: "1"
tasks:
  - name: demo-dashboard
    output: demo-dashboard.png
    mode: live_page
    path: "/#/"
    selector: header
    settle_delay: "3"
  - name: demo-doc
    output: demo-doc.png
    mode: text_document
    title: Demo
    text: "hello"
`

func writeModuleFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "module.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestModuleFromFile(t *testing.T) {
	path := writeModuleFile(t, sampleModuleYAML)

	spec, err := ModuleFromFile(path)

	testutil.AssertNoError(t, err, "parse should succeed")
	testutil.AssertEqual(t, spec.Name, "demo", "module name")
	testutil.AssertEqual(t, spec.Server.ReadyDelay, 5*time.Second, "ready delay")
	testutil.AssertEqual(t, len(spec.Mocks), 1, "mock count")
	testutil.AssertEqual(t, spec.Session.Token, "dummy-token", "session token")
	testutil.AssertEqual(t, len(spec.Tasks), 2, "task count")

	// Números pelados son segundos; Validate aplica los defaults restantes.
	testutil.AssertEqual(t, spec.Tasks[0].Live.SettleDelay, 3*time.Second, "bare-number settle delay")
	testutil.AssertEqual(t, spec.Tasks[0].Live.SelectorTimeout, domain.DefaultSelectorTimeout, "selector timeout default applied")
}

func TestModuleFromFile_Missing(t *testing.T) {
	_, err := ModuleFromFile(filepath.Join(t.TempDir(), "absent.yaml"))

	testutil.AssertTrue(t, errors.Is(err, domain.ErrMissingConfig), "missing file maps to ErrMissingConfig")
}

func TestModuleFromFile_BadYAML(t *testing.T) {
	path := writeModuleFile(t, "name: [unclosed")

	_, err := ModuleFromFile(path)

	testutil.AssertTrue(t, errors.Is(err, domain.ErrConfigParseFailed), "broken yaml maps to ErrConfigParseFailed")
}

func TestModuleFromFile_InvalidSpec(t *testing.T) {
	path := writeModuleFile(t, "name: empty-module\n")

	_, err := ModuleFromFile(path)

	testutil.AssertTrue(t, errors.Is(err, domain.ErrNoTasks), "module without tasks fails validation")
}

func TestModuleFromFile_UnknownMode(t *testing.T) {
	path := writeModuleFile(t, `name: demo
tasks:
  - name: broken
    output: broken.png
    mode: hologram
`)

	_, err := ModuleFromFile(path)

	testutil.AssertTrue(t, errors.Is(err, domain.ErrInvalidTaskMode), "unknown mode rejected by validation")
}
