// internal/core/domain/errors.go
package domain

import "errors"

// Errores de dominio comunes.
var (
	// Module errors
	ErrEmptyModuleName = errors.New("module name cannot be empty")
	ErrModuleNotFound  = errors.New("module not found")
	ErrNoTasks         = errors.New("module has no capture tasks")
	ErrMissingBaseURL  = errors.New("module with live pages requires a base URL")

	// Task errors
	ErrInvalidTask      = errors.New("invalid capture task")
	ErrEmptyTaskName    = errors.New("task name cannot be empty")
	ErrEmptyOutputPath  = errors.New("task output path cannot be empty")
	ErrInvalidTaskMode  = errors.New("invalid capture mode")
	ErrMissingLivePage  = errors.New("live page task requires page parameters")
	ErrMissingDocument  = errors.New("text document task requires document parameters")

	// Mock errors
	ErrEmptyMockPattern = errors.New("mock rule pattern cannot be empty")

	// Process errors: spawn failure is the one fatal condition of the run
	ErrStartFailure   = errors.New("target process failed to start")
	ErrNotReady       = errors.New("target did not become ready in time")
	ErrAlreadyStopped = errors.New("target process already stopped")

	// Capture errors: contained at task granularity
	ErrSelectorTimeout  = errors.New("selector timeout")
	ErrNavigationFailed = errors.New("navigation failed")
	ErrCaptureFailed    = errors.New("capture failed")

	// Configuration errors
	ErrMissingConfig     = errors.New("missing required configuration")
	ErrConfigParseFailed = errors.New("failed to parse configuration")
)
