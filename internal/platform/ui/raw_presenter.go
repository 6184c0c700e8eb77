// internal/platform/ui/raw_presenter.go
package ui

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

// LogFormat define el formato de salida para el modo raw
type LogFormat string

const (
	LogFormatText LogFormat = "text" // Formato logfmt (default)
	LogFormatJSON LogFormat = "json" // Formato JSON estructurado
)

// RawPresenter implementa el Presenter para modo raw (logs sin formato
// visual), pensado para CI y pipes.
type RawPresenter struct {
	format    LogFormat
	mu        sync.Mutex
	startTime time.Time
}

// NewRawPresenter crea un nuevo RawPresenter
func NewRawPresenter(format LogFormat) *RawPresenter {
	return &RawPresenter{
		format:    format,
		startTime: time.Now(),
	}
}

// log escribe un log en el formato configurado
func (r *RawPresenter) log(level, message string, fields map[string]interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()

	timestamp := time.Now().UTC().Format(time.RFC3339)

	if r.format == LogFormatJSON {
		r.logJSON(timestamp, level, message, fields)
	} else {
		r.logText(timestamp, level, message, fields)
	}
}

// logText escribe en formato logfmt: timestamp LEVEL message key=value key2=value2
func (r *RawPresenter) logText(timestamp, level, message string, fields map[string]interface{}) {
	var parts []string
	parts = append(parts, timestamp)
	parts = append(parts, fmt.Sprintf("%-5s", level))
	parts = append(parts, message)

	for k, v := range fields {
		parts = append(parts, fmt.Sprintf("%s=%v", k, r.formatValue(v)))
	}

	fmt.Fprintln(os.Stdout, strings.Join(parts, " "))
}

// logJSON escribe en formato JSON estructurado
func (r *RawPresenter) logJSON(timestamp, level, message string, fields map[string]interface{}) {
	logEntry := map[string]interface{}{
		"timestamp": timestamp,
		"level":     level,
		"message":   message,
	}

	if len(fields) > 0 {
		logEntry["data"] = fields
	}

	jsonBytes, _ := json.Marshal(logEntry)
	fmt.Fprintln(os.Stdout, string(jsonBytes))
}

// formatValue formatea valores para logfmt (entrecomilla strings con espacios)
func (r *RawPresenter) formatValue(v interface{}) string {
	switch val := v.(type) {
	case string:
		if strings.Contains(val, " ") {
			return fmt.Sprintf("%q", val)
		}
		return val
	case time.Duration:
		return val.String()
	case float64:
		return fmt.Sprintf("%.1f", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// Start inicia la presentación
func (r *RawPresenter) Start(info RunInfo) {
	r.startTime = time.Now()
	r.log("INFO", "run_started", map[string]interface{}{
		"module":     info.Module,
		"base_url":   info.BaseURL,
		"output_dir": info.OutputDir,
		"tasks":      info.TotalTasks,
		"mock_rules": info.MockRules,
		"headless":   info.Headless,
		"log_format": string(r.format),
	})
}

// StartTask notifica el inicio de una tarea de captura
func (r *RawPresenter) StartTask(taskName string) {
	r.log("INFO", "task_started", map[string]interface{}{
		"task": taskName,
	})
}

// FinishTask notifica la finalización de una tarea de captura
func (r *RawPresenter) FinishTask(taskName string, status Status, duration time.Duration) {
	r.log("INFO", "task_completed", map[string]interface{}{
		"task":     taskName,
		"status":   status.String(),
		"duration": duration,
	})
}

// Info muestra un mensaje informativo
func (r *RawPresenter) Info(msg string) {
	r.log("INFO", msg, nil)
}

// Warning muestra una advertencia
func (r *RawPresenter) Warning(msg string) {
	r.log("WARN", msg, nil)
}

// Error muestra un error
func (r *RawPresenter) Error(msg string) {
	r.log("ERROR", msg, nil)
}

// Finish finaliza la presentación con estadísticas finales
func (r *RawPresenter) Finish(stats RunStats) {
	r.log("INFO", "run_completed", map[string]interface{}{
		"duration": stats.TotalDuration,
		"captured": stats.Captured,
		"failed":   stats.Failed,
		"warnings": stats.Warnings,
	})

	for _, o := range stats.Outcomes {
		fields := map[string]interface{}{
			"task":     o.Name,
			"output":   o.Output,
			"status":   o.Status.String(),
			"duration": o.Duration,
		}
		if o.Reason != "" {
			fields["reason"] = o.Reason
		}
		r.log("INFO", "task_outcome", fields)
	}
}

// Close limpia recursos
func (r *RawPresenter) Close() error {
	return nil
}
