// internal/core/ports/process.go
package ports

import (
	"context"

	"docshot/internal/core/domain"
)

// Supervisor es el port del ciclo de vida del proceso target.
type Supervisor interface {
	// Start lanza el comando del spec en su propio process group, de
	// forma que todos los descendientes sean direccionables como una
	// unidad, y espera el readiness configurado.
	//
	// Un fallo de spawn devuelve (nil, error) y es fatal para el run.
	// Una espera de readiness expirada devuelve el handle VÁLIDO junto
	// con un error que envuelve domain.ErrNotReady: fallo blando, el
	// caller registra el aviso y sigue intentando las capturas.
	Start(ctx context.Context, spec domain.ServerSpec, baseURL string) (Process, error)
}

// Process es el handle del proceso supervisado.
type Process interface {
	// Stop señala la terminación al process group completo y bloquea
	// hasta que el grupo ha salido. Se invoca desde el teardown del
	// orquestador en todo camino de salida; tras Stop ningún hijo
	// sobrevive al run. Idempotente.
	Stop(ctx context.Context) error

	// PID del proceso líder del grupo.
	PID() int

	// State es el estado de ciclo de vida actual.
	State() domain.ProcessState
}
