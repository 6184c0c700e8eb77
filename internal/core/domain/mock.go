// internal/core/domain/mock.go
package domain

// MockRule asocia un patrón glob de URL con una respuesta fija.
// Las reglas son inmutables una vez registradas: se fijan en el setup del
// pipeline y solo se leen durante la captura. La prioridad de match es el
// orden de registro. Ninguna regla depende del cuerpo de la petición ni
// del tiempo, así que para una tabla fija y una secuencia fija de
// peticiones las respuestas son idénticas byte a byte entre runs.
type MockRule struct {
	// Pattern es un glob de URL estilo "**/api/Account". "**" cruza
	// separadores de ruta; el query string se descarta antes del match.
	Pattern string

	// Body es el payload fijo de la respuesta.
	Body []byte

	// ContentType de la respuesta. Vacío = "application/json".
	ContentType string
}

// DefaultMockContentType es el content-type aplicado cuando la regla no
// declara uno.
const DefaultMockContentType = "application/json"

// Validate verifica la regla y aplica defaults.
func (r *MockRule) Validate() error {
	if r.Pattern == "" {
		return ErrEmptyMockPattern
	}
	if r.ContentType == "" {
		r.ContentType = DefaultMockContentType
	}
	return nil
}

// FakeSession es el usuario sintético inyectado en localStorage para
// saltar la pantalla de login del frontend.
type FakeSession struct {
	Token    string   `json:"token"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
	UserID   string   `json:"user_id"`
}

// SessionStorageKey es la clave de localStorage que lee el frontend.
const SessionStorageKey = "user"

// DefaultFakeSession replica el usuario de bypass de los scripts de
// documentación originales.
func DefaultFakeSession() *FakeSession {
	return &FakeSession{
		Token:    "dummy-token",
		Username: "admin",
		Roles:    []string{"Admin"},
		UserID:   "1",
	}
}
