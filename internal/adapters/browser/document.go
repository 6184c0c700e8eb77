// internal/adapters/browser/document.go
package browser

import (
	"fmt"
	"net/url"
	"strings"
)

// heightMargin es el margen fijo que se añade a la altura medida del
// documento antes de redimensionar el viewport, para que la última
// línea no quede cortada.
const heightMargin = 40

// docTemplate reproduce el estilo de editor oscuro de los documentos
// monoespaciados: fondo #1e1e1e, texto #d4d4d4, título azul.
const docTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
body { background: #1e1e1e; color: #d4d4d4; font-family: "Courier New", Consolas, monospace; margin: 0; padding: 24px; }
.title { color: #569cd6; font-size: 18px; font-weight: bold; margin-bottom: 16px; }
pre { font-size: 13px; line-height: 1.5; white-space: pre-wrap; margin: 0; }
</style>
</head>
<body>
<div class="title">%s</div>
<pre>%s</pre>
</body>
</html>`

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// EscapeText neutraliza los metacaracteres HTML del texto plano. El
// contenido DSL llega con llaves y comillas que no necesitan escape;
// solo &, < y > pueden romper el markup.
func EscapeText(s string) string {
	return htmlEscaper.Replace(s)
}

// RenderDocument construye el HTML completo del documento monoespaciado
// con el título y el texto ya escapados.
func RenderDocument(title, text string) string {
	return fmt.Sprintf(docTemplate, EscapeText(title), EscapeText(text))
}

// documentURL empaqueta el HTML como data URL navegable, sin tocar disco.
func documentURL(html string) string {
	return "data:text/html;charset=utf-8," + url.PathEscape(html)
}
