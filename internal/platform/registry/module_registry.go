// internal/platform/registry/module_registry.go

// Package registry gestiona el catálogo de módulos documentables.
// Cada módulo built-in se registra desde su init(), de forma que
// importar el package basta para que aparezca en el catálogo.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"docshot/internal/core/domain"
	"docshot/internal/platform/logx"
)

// ModuleRegistry gestiona el registro y resolución de módulos.
// Implementa el patrón Registry + Factory para desacoplar la definición
// de módulos del código de aplicación.
type ModuleRegistry struct {
	mu        sync.RWMutex
	factories map[string]ModuleFactory
	logger    logx.Logger
}

// ModuleFactory es una función que construye el spec de un módulo.
type ModuleFactory func() (domain.ModuleSpec, error)

// globalRegistry es la instancia global del registry.
var globalRegistry *ModuleRegistry
var once sync.Once

// Global retorna la instancia global del registry.
func Global() *ModuleRegistry {
	once.Do(func() {
		globalRegistry = NewModuleRegistry(logx.New())
	})
	return globalRegistry
}

// NewModuleRegistry crea un nuevo registry de módulos.
func NewModuleRegistry(logger logx.Logger) *ModuleRegistry {
	return &ModuleRegistry{
		factories: make(map[string]ModuleFactory),
		logger:    logger.With("component", "module-registry"),
	}
}

// Register registra una module factory.
// Típicamente llamado desde init() de cada module package.
func (r *ModuleRegistry) Register(name string, factory ModuleFactory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if name == "" {
		return fmt.Errorf("module name cannot be empty")
	}

	if factory == nil {
		return fmt.Errorf("factory cannot be nil for module %s", name)
	}

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("module %s is already registered", name)
	}

	r.factories[name] = factory
	r.logger.Debug("module registered", "name", name)

	return nil
}

// Build construye y valida el spec del módulo pedido.
func (r *ModuleRegistry) Build(name string) (domain.ModuleSpec, error) {
	r.mu.RLock()
	factory, exists := r.factories[name]
	r.mu.RUnlock()

	if !exists {
		return domain.ModuleSpec{}, fmt.Errorf("%w: %s", domain.ErrModuleNotFound, name)
	}

	spec, err := factory()
	if err != nil {
		return domain.ModuleSpec{}, fmt.Errorf("building module %s: %w", name, err)
	}

	if err := spec.Validate(); err != nil {
		return domain.ModuleSpec{}, fmt.Errorf("module %s is invalid: %w", name, err)
	}

	r.logger.Debug("module built", "name", name, "tasks", len(spec.Tasks))
	return spec, nil
}

// List retorna los nombres de todos los módulos registrados.
func (r *ModuleRegistry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered verifica si un módulo está registrado.
func (r *ModuleRegistry) IsRegistered(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.factories[name]
	return exists
}

// Clear elimina todos los módulos registrados (útil para testing).
func (r *ModuleRegistry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.factories = make(map[string]ModuleFactory)
}
