// internal/platform/logx/logx_test.go
package logx

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	logger := New()
	if logger == nil {
		t.Fatal("New() should return a logger, got nil")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"dbg", LevelDebug},
		{"  debug  ", LevelDebug},

		{"info", LevelInfo},
		{"inf", LevelInfo},
		{"", LevelInfo}, // empty defaults to Info

		{"warn", LevelWarn},
		{"warning", LevelWarn},

		{"err", LevelError},
		{"error", LevelError},
		{"ERROR", LevelError},

		{"garbage", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, LevelWarn)

	logger.Debug("should not appear")
	logger.Info("should not appear either")
	logger.Warn("visible warning")

	out := buf.String()
	if strings.Contains(out, "should not appear") {
		t.Errorf("levels below Warn should be filtered, got: %q", out)
	}
	if !strings.Contains(out, "visible warning") {
		t.Errorf("Warn should be emitted, got: %q", out)
	}
}

func TestWithScope(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, LevelDebug).With("component", "orchestrator")

	logger.Info("task started", "task", "finance-dashboard")

	out := buf.String()
	if !strings.Contains(out, "component=orchestrator") {
		t.Errorf("scoped fields should appear in every line, got: %q", out)
	}
	if !strings.Contains(out, "task=finance-dashboard") {
		t.Errorf("call fields should appear, got: %q", out)
	}
}

func TestErrNil(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, LevelDebug)

	logger.Err(nil)
	if buf.Len() != 0 {
		t.Errorf("Err(nil) should emit nothing, got: %q", buf.String())
	}

	logger.Err(errors.New("boom"), "phase", "teardown")
	out := buf.String()
	if !strings.Contains(out, "error=boom") || !strings.Contains(out, "phase=teardown") {
		t.Errorf("Err should emit error and fields, got: %q", out)
	}
}

func TestKVPairsOddArity(t *testing.T) {
	pairs := kvPairs("key")
	if len(pairs) != 1 || pairs[0] != "key=(missing)" {
		t.Errorf("odd kv arity should mark missing value, got: %v", pairs)
	}
}
