// internal/mockroute/router.go

// Package mockroute mantiene la tabla de reglas de intercepción de red:
// patrón glob de URL → respuesta fija. La tabla se fija en el setup del
// pipeline y es de solo lectura durante la captura.
package mockroute

import (
	"strings"

	"github.com/gobwas/glob"

	"docshot/internal/core/domain"
	"docshot/internal/platform/errors"
	"docshot/internal/platform/logx"
)

type compiledRule struct {
	rule    domain.MockRule
	matcher glob.Glob
}

// Router evalúa reglas en orden de registro y devuelve la primera que
// hace match. Sin match = pass-through: la petición sigue a la red real.
type Router struct {
	logger logx.Logger
	rules  []compiledRule
}

// New crea un router vacío.
func New(logger logx.Logger) *Router {
	return &Router{
		logger: logger.With("component", "mockroute"),
		rules:  make([]compiledRule, 0),
	}
}

// Register añade una regla al final de la tabla. El body se copia: la
// regla queda inmutable aunque el caller reutilice su slice.
func (r *Router) Register(rule domain.MockRule) error {
	if err := rule.Validate(); err != nil {
		return err
	}

	// '/' como separador: '*' no cruza rutas, '**' sí.
	matcher, err := glob.Compile(rule.Pattern, '/')
	if err != nil {
		return errors.Wrapf(err, "compiling mock pattern %q", rule.Pattern)
	}

	body := make([]byte, len(rule.Body))
	copy(body, rule.Body)
	rule.Body = body

	r.rules = append(r.rules, compiledRule{rule: rule, matcher: matcher})
	r.logger.Debug("mock rule registered", "pattern", rule.Pattern, "bytes", len(body))
	return nil
}

// RegisterAll registra las reglas de un módulo en orden.
func (r *Router) RegisterAll(rules []domain.MockRule) error {
	for i := range rules {
		if err := r.Register(rules[i]); err != nil {
			return err
		}
	}
	return nil
}

// Match devuelve la primera regla cuyo patrón cubre la URL. El query
// string se descarta antes de evaluar: las reglas solo dependen de la
// ruta, nunca del cuerpo ni del tiempo, lo que hace el resultado
// bit-idéntico entre runs para una tabla y secuencia fijas.
func (r *Router) Match(rawURL string) (domain.MockRule, bool) {
	url := stripQuery(rawURL)
	for i := range r.rules {
		if r.rules[i].matcher.Match(url) {
			return r.rules[i].rule, true
		}
	}
	return domain.MockRule{}, false
}

// Len es el número de reglas registradas.
func (r *Router) Len() int {
	return len(r.rules)
}

func stripQuery(url string) string {
	if i := strings.IndexByte(url, '?'); i >= 0 {
		return url[:i]
	}
	return url
}
