// internal/dsl/extract.go

// Package dsl recorta texto fuente DSL para las capturas de documentación.
// No parsea ni ejecuta el DSL: trabaja línea a línea sobre texto plano.
package dsl

import "strings"

// Extract devuelve el bloque anidado cuya declaración contiene anchor.
//
// El escaneo empieza en la primera línea que contiene anchor como
// substring (sin word boundaries: un anchor que aparezca dentro de un
// identificador no relacionado también dispara la extracción, y solo
// cuenta la primera ocurrencia). Desde ahí cada línea se acumula y se
// actualiza un balance de llaves con los '{' y '}' de la línea. La
// extracción termina la primera vez que el balance vuelve a exactamente
// cero después de haber sido positivo.
//
// Si el anchor no aparece, o el balance nunca vuelve a cero antes de
// agotar el texto, se devuelve el texto completo sin modificar: es el
// fallback documentado, no un error.
//
// Llaves dentro de strings o comentarios corrompen el balance. Fragilidad
// conocida del recorte por conteo; no intentar arreglarla aquí sin cambiar
// también el comportamiento del fallback que depende de ella.
func Extract(source, anchor string) string {
	lines := strings.Split(source, "\n")

	var block []string
	inBlock := false
	opened := false
	balance := 0

	for _, line := range lines {
		if !inBlock && strings.Contains(line, anchor) {
			inBlock = true
		}
		if !inBlock {
			continue
		}

		block = append(block, line)
		balance += strings.Count(line, "{")
		balance -= strings.Count(line, "}")

		if balance > 0 {
			opened = true
		} else if opened && balance == 0 {
			return strings.Join(block, "\n")
		}
	}

	return source
}
