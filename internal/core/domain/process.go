// internal/core/domain/process.go
package domain

// ProcessState es el estado de ciclo de vida del proceso target.
// Un proceso en Starting o Running nunca sobrevive al run del
// orquestador: el teardown lo lleva siempre a Stopped o Failed.
type ProcessState string

const (
	ProcessStarting ProcessState = "starting"
	ProcessRunning  ProcessState = "running"
	ProcessStopped  ProcessState = "stopped"
	ProcessFailed   ProcessState = "failed"
)
