// internal/dsl/tree.go
package dsl

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// Tree lista las entradas de dir que terminan en ext como un árbol con
// caracteres de caja, ordenadas por nombre. Un directorio ilegible
// devuelve un string de error como contenido del documento, no un error:
// el placeholder se captura igual que cualquier otro texto.
func Tree(dir, ext string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Sprintf("Error reading directory: %v", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ext) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(dir + "/")
	for i, name := range names {
		prefix := "├── "
		if i == len(names)-1 {
			prefix = "└── "
		}
		b.WriteString("\n" + prefix + name)
	}
	return b.String()
}
