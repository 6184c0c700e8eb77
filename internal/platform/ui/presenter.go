// internal/platform/ui/presenter.go
package ui

import (
	"time"
)

// Presenter define la interfaz para presentar el progreso de la
// ejecución del pipeline de capturas de manera visual e interactiva.
type Presenter interface {
	// Start inicia la presentación con información del run
	Start(info RunInfo)

	// StartTask notifica el inicio de una tarea de captura
	StartTask(taskName string)

	// FinishTask notifica la finalización de una tarea de captura
	FinishTask(taskName string, status Status, duration time.Duration)

	// Info muestra un mensaje informativo
	Info(msg string)

	// Warning muestra una advertencia
	Warning(msg string)

	// Error muestra un error
	Error(msg string)

	// Finish finaliza la presentación con estadísticas finales
	Finish(stats RunStats)

	// Close limpia recursos del presenter
	Close() error
}

// RunInfo contiene información inicial del run
type RunInfo struct {
	Module     string
	BaseURL    string
	OutputDir  string
	TotalTasks int
	MockRules  int
	Headless   bool
}

// RunStats contiene estadísticas finales del run
type RunStats struct {
	TotalDuration time.Duration
	Captured      int
	Failed        int
	Warnings      int
	Outcomes      []TaskLine
}

// TaskLine es la fila de una tarea en el resumen final
type TaskLine struct {
	Name     string
	Output   string
	Status   Status
	Reason   string
	Duration time.Duration
}

// TaskProgress representa el progreso de una tarea en curso
type TaskProgress struct {
	Name      string
	Status    Status
	StartTime time.Time
	Duration  time.Duration
}
