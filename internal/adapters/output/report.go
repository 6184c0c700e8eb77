// internal/adapters/output/report.go

// Package output escribe los artefactos no visuales del run: el reporte
// JSON que queda junto a las imágenes capturadas.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"docshot/internal/core/domain"
)

// sanitizeModuleName convierte un nombre de módulo en un fragmento de
// fichero válido. Ejemplo: "finance v2" -> "finance_v2"
func sanitizeModuleName(name string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' || r == '-' {
			return r
		}
		return '_'
	}, name)
}

// WriteReport exporta el run en formato JSON junto a las capturas.
func WriteReport(dir string, run *domain.PipelineRun) (string, error) {
	if dir == "" {
		dir = "."
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	// Generar nombre de archivo con timestamp
	timestamp := run.StartedAt.Format("20060102_150405")
	filename := fmt.Sprintf("docshot_%s_%s.json", sanitizeModuleName(run.Module), timestamp)
	path := filepath.Join(dir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	// Codificar JSON con indentación
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(run); err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}

	return path, nil
}

// WriteReportStdout exporta el run a stdout en formato JSON.
func WriteReportStdout(run *domain.PipelineRun, pretty bool) error {
	enc := json.NewEncoder(os.Stdout)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(run)
}
