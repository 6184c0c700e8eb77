// internal/core/domain/task.go
package domain

import (
	"fmt"
	"time"
)

// CaptureMode define el tipo de captura que produce una tarea.
type CaptureMode string

const (
	// ModeLivePage navega a una página servida por el target y la captura.
	ModeLivePage CaptureMode = "live_page"

	// ModeTextDocument renderiza texto plano como documento monoespaciado
	// y lo captura (estructura de proyecto, bloques DSL extraídos, etc.).
	ModeTextDocument CaptureMode = "text_document"
)

// IsValid verifica que el modo sea conocido.
func (m CaptureMode) IsValid() bool {
	return m == ModeLivePage || m == ModeTextDocument
}

// Viewport es el tamaño de captura en píxeles.
type Viewport struct {
	Width  int64
	Height int64
}

// DefaultViewport replica el viewport de documentación original.
func DefaultViewport() Viewport {
	return Viewport{Width: 1280, Height: 800}
}

// DocumentViewport es el viewport inicial del modo text_document antes
// del ajuste a la altura medida del contenido.
func DocumentViewport() Viewport {
	return Viewport{Width: 800, Height: 600}
}

// LivePage describe una captura de página viva.
type LivePage struct {
	// Path es la ruta relativa a la base URL del módulo (ej. "/#/finance/coa").
	Path string

	// ReadinessSelector es el selector CSS cuya aparición marca la página
	// como renderizada. Vacío = sin espera de selector.
	ReadinessSelector string

	// SelectorTimeout acota la espera del selector.
	SelectorTimeout time.Duration

	// SettleDelay es la espera fija adicional para gráficos/animaciones.
	SettleDelay time.Duration

	// Element restringe la captura a la región de un selector.
	// Vacío = viewport completo.
	Element string
}

// TextDocument describe una captura de documento de texto. El contenido
// se resuelve en tiempo de ejecución: fichero DSL (con extracción opcional
// de bloque), árbol de directorio, o texto literal.
type TextDocument struct {
	// Title se muestra como cabecera del documento.
	Title string

	// Text es contenido literal. Tiene prioridad si no está vacío.
	Text string

	// SourceFile es un fichero DSL a leer. Su ausencia produce un
	// placeholder registrado, nunca aborta el run.
	SourceFile string

	// Anchor activa la extracción de bloque por balance de llaves sobre
	// el contenido de SourceFile. Vacío = fichero completo.
	Anchor string

	// TreeDir lista los ficheros *.kdl de un directorio como árbol.
	TreeDir string
}

// CaptureTask es una unidad de captura inmutable dentro de un módulo.
type CaptureTask struct {
	// Name identifica la tarea en logs y outcomes (ej. "finance-dashboard").
	Name string

	// OutputFile es la ruta fija del PNG resultante, relativa al
	// directorio de salida configurado.
	OutputFile string

	// Viewport de la captura. Zero value = default del modo.
	Viewport Viewport

	Mode CaptureMode

	// Exactamente uno de los dos según Mode.
	Live *LivePage
	Doc  *TextDocument
}

const (
	// DefaultSelectorTimeout acota la espera de readiness selectors.
	DefaultSelectorTimeout = 10 * time.Second

	// DefaultSettleDelay deja terminar renders asíncronos tras el selector.
	DefaultSettleDelay = 2 * time.Second
)

// Validate verifica la coherencia de la tarea y aplica defaults.
func (t *CaptureTask) Validate() error {
	if t.Name == "" {
		return ErrEmptyTaskName
	}
	if t.OutputFile == "" {
		return ErrEmptyOutputPath
	}
	if !t.Mode.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidTaskMode, t.Mode)
	}

	switch t.Mode {
	case ModeLivePage:
		if t.Live == nil {
			return fmt.Errorf("%w: %s", ErrMissingLivePage, t.Name)
		}
		if t.Live.SelectorTimeout <= 0 {
			t.Live.SelectorTimeout = DefaultSelectorTimeout
		}
		if t.Live.SettleDelay <= 0 {
			t.Live.SettleDelay = DefaultSettleDelay
		}
		if t.Viewport == (Viewport{}) {
			t.Viewport = DefaultViewport()
		}
	case ModeTextDocument:
		if t.Doc == nil {
			return fmt.Errorf("%w: %s", ErrMissingDocument, t.Name)
		}
		if t.Viewport == (Viewport{}) {
			t.Viewport = DocumentViewport()
		}
	}
	return nil
}
