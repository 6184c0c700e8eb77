// internal/core/domain/run.go
package domain

import "time"

// TaskStatus es el resultado de una tarea de captura.
type TaskStatus string

const (
	StatusCaptured TaskStatus = "captured"
	StatusFailed   TaskStatus = "failed"
)

// TaskOutcome registra el resultado de una tarea individual.
type TaskOutcome struct {
	Task     string        `json:"task"`
	Output   string        `json:"output"`
	Status   TaskStatus    `json:"status"`
	Reason   string        `json:"reason,omitempty"`
	Duration time.Duration `json:"duration_ns"`
}

// PipelineRun acumula el estado de un run de captura: se crea al arrancar
// el orquestador y se finaliza cuando todas las tareas han sido intentadas
// o un error fatal corta el run.
type PipelineRun struct {
	Module     string        `json:"module"`
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at"`
	Outcomes   []TaskOutcome `json:"outcomes"`
	Warnings   []string      `json:"warnings,omitempty"`

	// Fatal describe el error que abortó el run, si lo hubo. Los fallos
	// por tarea NO son fatales: quedan en Outcomes.
	Fatal string `json:"fatal,omitempty"`
}

// NewPipelineRun crea un run para el módulo dado.
func NewPipelineRun(module string) *PipelineRun {
	return &PipelineRun{
		Module:    module,
		StartedAt: time.Now().UTC(),
		Outcomes:  make([]TaskOutcome, 0),
	}
}

// AddCaptured registra una tarea capturada con éxito.
func (r *PipelineRun) AddCaptured(task, output string, d time.Duration) {
	r.Outcomes = append(r.Outcomes, TaskOutcome{
		Task:     task,
		Output:   output,
		Status:   StatusCaptured,
		Duration: d,
	})
}

// AddFailed registra una tarea fallida con su razón.
func (r *PipelineRun) AddFailed(task, output, reason string, d time.Duration) {
	r.Outcomes = append(r.Outcomes, TaskOutcome{
		Task:     task,
		Output:   output,
		Status:   StatusFailed,
		Reason:   reason,
		Duration: d,
	})
}

// AddWarning registra un aviso no fatal del run.
func (r *PipelineRun) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// SetFatal marca el run como abortado.
func (r *PipelineRun) SetFatal(reason string) {
	r.Fatal = reason
}

// Finalize cierra el run.
func (r *PipelineRun) Finalize() {
	r.FinishedAt = time.Now().UTC()
}

// Captured cuenta las tareas con éxito.
func (r *PipelineRun) Captured() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == StatusCaptured {
			n++
		}
	}
	return n
}

// Failed cuenta las tareas fallidas.
func (r *PipelineRun) Failed() int {
	return len(r.Outcomes) - r.Captured()
}

// Duration es la duración total del run.
func (r *PipelineRun) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return time.Since(r.StartedAt)
	}
	return r.FinishedAt.Sub(r.StartedAt)
}
