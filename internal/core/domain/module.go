// internal/core/domain/module.go
package domain

import (
	"fmt"
	"time"
)

// ServerSpec describe el proceso target a supervisar durante un run.
// El proceso es propiedad exclusiva del supervisor: se crea en el spawn
// y se destruye en el teardown, con éxito o sin él.
type ServerSpec struct {
	// Command y Args lanzan el servidor (ej. el runtime DSL con el
	// fichero de aplicación del módulo).
	Command string
	Args    []string

	// ReadyDelay es la espera fija de arranque (estrategia por defecto,
	// heredada de los scripts originales).
	ReadyDelay time.Duration

	// HealthPath activa la sonda HTTP endurecida: en lugar de dormir
	// ReadyDelay se sondea BaseURL+HealthPath hasta ReadyDelay como tope.
	HealthPath string
}

// DefaultReadyDelay replica los 15s de espera fija del script original.
const DefaultReadyDelay = 15 * time.Second

// ModuleSpec es un conjunto de captura con nombre: qué servidor arrancar
// (si alguno), qué respuestas mockear, qué sesión inyectar y qué tareas
// capturar, en orden.
type ModuleSpec struct {
	// Name es el selector de módulo de la CLI (ej. "finance", "siasn").
	Name string

	// Description para el listado de módulos.
	Description string

	// BaseURL del target (ej. "http://localhost:3000"). Requerida si hay
	// tareas live_page.
	BaseURL string

	// Server es el proceso a supervisar. Nil = no arrancar nada (modo
	// solo documentos o target ya levantado).
	Server *ServerSpec

	// Mocks se instalan antes de la primera navegación, en orden.
	Mocks []MockRule

	// Session inyectada en localStorage antes de la primera navegación.
	// Nil = sin bypass de autenticación.
	Session *FakeSession

	// Tasks en orden estricto de ejecución.
	Tasks []CaptureTask
}

// HasLivePages informa si el módulo navega contra el target.
func (m *ModuleSpec) HasLivePages() bool {
	for i := range m.Tasks {
		if m.Tasks[i].Mode == ModeLivePage {
			return true
		}
	}
	return false
}

// Validate verifica el módulo completo y aplica defaults en cascada.
func (m *ModuleSpec) Validate() error {
	if m.Name == "" {
		return ErrEmptyModuleName
	}
	if len(m.Tasks) == 0 {
		return fmt.Errorf("%w: %s", ErrNoTasks, m.Name)
	}
	if m.HasLivePages() && m.BaseURL == "" {
		return fmt.Errorf("%w: %s", ErrMissingBaseURL, m.Name)
	}
	if m.Server != nil {
		if m.Server.Command == "" {
			return fmt.Errorf("%w: empty server command in %s", ErrStartFailure, m.Name)
		}
		if m.Server.ReadyDelay <= 0 {
			m.Server.ReadyDelay = DefaultReadyDelay
		}
	}
	for i := range m.Mocks {
		if err := m.Mocks[i].Validate(); err != nil {
			return fmt.Errorf("%s: mock %d: %w", m.Name, i, err)
		}
	}
	for i := range m.Tasks {
		if err := m.Tasks[i].Validate(); err != nil {
			return fmt.Errorf("%s: task %d: %w", m.Name, i, err)
		}
	}
	return nil
}
