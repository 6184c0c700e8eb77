// internal/core/domain/module_test.go
package domain

import (
	"testing"
	"time"
)

func validLiveTask() CaptureTask {
	return CaptureTask{
		Name:       "finance-dashboard",
		OutputFile: "finance-dashboard.png",
		Mode:       ModeLivePage,
		Live: &LivePage{
			Path:              "/#/",
			ReadinessSelector: "header",
		},
	}
}

func validDocTask() CaptureTask {
	return CaptureTask{
		Name:       "finance-dsl-example",
		OutputFile: "finance-dsl-example.png",
		Mode:       ModeTextDocument,
		Doc: &TextDocument{
			Title:      "gurih-finance/journal.kdl",
			SourceFile: "gurih-finance/journal.kdl",
			Anchor:     `workflow "JournalWorkflow"`,
		},
	}
}

func TestCaptureTaskValidate(t *testing.T) {
	t.Run("applies live page defaults", func(t *testing.T) {
		task := validLiveTask()
		if err := task.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if task.Live.SelectorTimeout != DefaultSelectorTimeout {
			t.Errorf("selector timeout default not applied: %v", task.Live.SelectorTimeout)
		}
		if task.Live.SettleDelay != DefaultSettleDelay {
			t.Errorf("settle delay default not applied: %v", task.Live.SettleDelay)
		}
		if task.Viewport != DefaultViewport() {
			t.Errorf("viewport default not applied: %+v", task.Viewport)
		}
	})

	t.Run("applies document viewport default", func(t *testing.T) {
		task := validDocTask()
		if err := task.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if task.Viewport != DocumentViewport() {
			t.Errorf("document viewport default not applied: %+v", task.Viewport)
		}
	})

	t.Run("rejects missing pieces", func(t *testing.T) {
		cases := []struct {
			name string
			mut  func(*CaptureTask)
		}{
			{"empty name", func(c *CaptureTask) { c.Name = "" }},
			{"empty output", func(c *CaptureTask) { c.OutputFile = "" }},
			{"bad mode", func(c *CaptureTask) { c.Mode = "pdf" }},
			{"live without params", func(c *CaptureTask) { c.Live = nil }},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				task := validLiveTask()
				tc.mut(&task)
				if err := task.Validate(); err == nil {
					t.Error("expected validation error, got nil")
				}
			})
		}
	})
}

func TestModuleSpecValidate(t *testing.T) {
	t.Run("valid module passes and defaults cascade", func(t *testing.T) {
		m := ModuleSpec{
			Name:    "finance",
			BaseURL: "http://localhost:3000",
			Server:  &ServerSpec{Command: "./gurih_cli"},
			Mocks:   []MockRule{{Pattern: "**/api/Account", Body: []byte("[]")}},
			Tasks:   []CaptureTask{validLiveTask(), validDocTask()},
		}
		if err := m.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.Server.ReadyDelay != DefaultReadyDelay {
			t.Errorf("server ready delay default not applied: %v", m.Server.ReadyDelay)
		}
		if m.Mocks[0].ContentType != DefaultMockContentType {
			t.Errorf("mock content type default not applied: %q", m.Mocks[0].ContentType)
		}
	})

	t.Run("live pages require base URL", func(t *testing.T) {
		m := ModuleSpec{
			Name:  "finance",
			Tasks: []CaptureTask{validLiveTask()},
		}
		if err := m.Validate(); err == nil {
			t.Error("expected ErrMissingBaseURL, got nil")
		}
	})

	t.Run("doc-only module needs no base URL", func(t *testing.T) {
		m := ModuleSpec{
			Name:  "finance-docs",
			Tasks: []CaptureTask{validDocTask()},
		}
		if err := m.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("rejects empty name and empty task list", func(t *testing.T) {
		m := ModuleSpec{}
		if err := m.Validate(); err != ErrEmptyModuleName {
			t.Errorf("expected ErrEmptyModuleName, got %v", err)
		}
		m.Name = "x"
		if err := m.Validate(); err == nil {
			t.Error("expected ErrNoTasks, got nil")
		}
	})
}

func TestServerSpecHealthProbe(t *testing.T) {
	m := ModuleSpec{
		Name:    "siasn",
		BaseURL: "http://localhost:3000",
		Server: &ServerSpec{
			Command:    "./gurih_cli",
			ReadyDelay: 5 * time.Second,
			HealthPath: "/",
		},
		Tasks: []CaptureTask{validLiveTask()},
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Server.ReadyDelay != 5*time.Second {
		t.Errorf("explicit ready delay should be kept, got %v", m.Server.ReadyDelay)
	}
}
