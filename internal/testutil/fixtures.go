// internal/testutil/fixtures.go
package testutil

import (
	"docshot/internal/core/domain"
)

// SampleModule construye un módulo de prueba con una tarea live y un
// documento, listo para validar.
func SampleModule() domain.ModuleSpec {
	return domain.ModuleSpec{
		Name:    "sample",
		BaseURL: "http://localhost:3000",
		Server: &domain.ServerSpec{
			Command: "/bin/true",
		},
		Mocks: []domain.MockRule{
			{Pattern: "**/api/Account", Body: []byte(`[]`)},
		},
		Session: domain.DefaultFakeSession(),
		Tasks: []domain.CaptureTask{
			{
				Name:       "sample-dashboard",
				OutputFile: "sample-dashboard.png",
				Mode:       domain.ModeLivePage,
				Live:       &domain.LivePage{Path: "/#/", ReadinessSelector: ".dashboard"},
			},
			{
				Name:       "sample-doc",
				OutputFile: "sample-doc.png",
				Mode:       domain.ModeTextDocument,
				Doc:        &domain.TextDocument{Title: "Sample", Text: "hello"},
			},
		},
	}
}
