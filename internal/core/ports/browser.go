// internal/core/ports/browser.go
package ports

import (
	"context"

	"docshot/internal/core/domain"
)

// RouteTable es la vista de solo lectura de la tabla de mocks que el
// browser consulta al interceptar peticiones.
type RouteTable interface {
	// Match devuelve la primera regla que cubre la URL, en orden de registro.
	Match(url string) (domain.MockRule, bool)

	// Len es el número de reglas registradas.
	Len() int
}

// Browser es el port de la capa de automatización headless. El contexto
// de navegación es propiedad exclusiva del orquestador: nadie más lo
// adquiere ni lo libera.
type Browser interface {
	// Prepare instala la intercepción de red y la sesión falsa en el
	// contexto de navegación. Debe completarse antes de la primera
	// navegación del run para que la primera carga ya observe mocks y
	// bypass de autenticación. routes o session pueden ser nil.
	Prepare(ctx context.Context, routes RouteTable, session *domain.FakeSession) error

	// CaptureLivePage navega a url, espera el readiness selector de la
	// página (acotado por su timeout), deja pasar el settle delay y
	// escribe la captura PNG en outputPath. Un timeout de selector
	// devuelve un error que envuelve domain.ErrSelectorTimeout.
	CaptureLivePage(ctx context.Context, url string, page domain.LivePage, vp domain.Viewport, outputPath string) error

	// CaptureTextDocument renderiza text como documento monoespaciado
	// con título, mide el contenido, ajusta el viewport a la altura
	// medida más el margen fijo y escribe la captura en outputPath.
	CaptureTextDocument(ctx context.Context, title, text string, vp domain.Viewport, outputPath string) error

	// Close libera el contexto de navegación. Idempotente.
	Close(ctx context.Context) error
}
