// internal/platform/registry/module_registry_test.go
package registry

import (
	"testing"

	"docshot/internal/core/domain"
	"docshot/internal/platform/errors"
	"docshot/internal/platform/logx"
	"docshot/internal/testutil"
)

func sampleFactory() (domain.ModuleSpec, error) {
	return testutil.SampleModule(), nil
}

func TestModuleRegistry_Register(t *testing.T) {
	registry := NewModuleRegistry(logx.NewSilent())

	err := registry.Register("sample", sampleFactory)
	testutil.AssertNoError(t, err, "register should succeed")

	testutil.AssertTrue(t, registry.IsRegistered("sample"), "module should be registered")
}

func TestModuleRegistry_Register_Duplicate(t *testing.T) {
	registry := NewModuleRegistry(logx.NewSilent())

	registry.Register("sample", sampleFactory)
	err := registry.Register("sample", sampleFactory)

	testutil.AssertError(t, err, "duplicate registration should fail")
}

func TestModuleRegistry_Register_EmptyName(t *testing.T) {
	registry := NewModuleRegistry(logx.NewSilent())

	err := registry.Register("", sampleFactory)
	testutil.AssertError(t, err, "empty name should fail")
}

func TestModuleRegistry_Register_NilFactory(t *testing.T) {
	registry := NewModuleRegistry(logx.NewSilent())

	err := registry.Register("sample", nil)
	testutil.AssertError(t, err, "nil factory should fail")
}

func TestModuleRegistry_Build(t *testing.T) {
	registry := NewModuleRegistry(logx.NewSilent())
	registry.Register("sample", sampleFactory)

	spec, err := registry.Build("sample")

	testutil.AssertNoError(t, err, "build should succeed")
	testutil.AssertEqual(t, spec.Name, "sample", "module name")
	testutil.AssertEqual(t, len(spec.Tasks), 2, "task count")

	// Build valida: los defaults deben estar aplicados.
	testutil.AssertEqual(t, spec.Tasks[0].Live.SelectorTimeout, domain.DefaultSelectorTimeout, "selector timeout default")
}

func TestModuleRegistry_Build_Unknown(t *testing.T) {
	registry := NewModuleRegistry(logx.NewSilent())

	_, err := registry.Build("ghost")

	testutil.AssertTrue(t, errors.Is(err, domain.ErrModuleNotFound), "unknown module should map to ErrModuleNotFound")
}

func TestModuleRegistry_Build_InvalidSpec(t *testing.T) {
	registry := NewModuleRegistry(logx.NewSilent())
	registry.Register("broken", func() (domain.ModuleSpec, error) {
		return domain.ModuleSpec{Name: "broken"}, nil // sin tareas
	})

	_, err := registry.Build("broken")
	testutil.AssertError(t, err, "invalid spec should fail validation")
}

func TestModuleRegistry_List(t *testing.T) {
	registry := NewModuleRegistry(logx.NewSilent())
	registry.Register("siasn", sampleFactory)
	registry.Register("finance", sampleFactory)

	names := registry.List()

	testutil.AssertEqual(t, len(names), 2, "registered count")
	testutil.AssertEqual(t, names[0], "finance", "list should be sorted")
}

func TestModuleRegistry_Clear(t *testing.T) {
	registry := NewModuleRegistry(logx.NewSilent())
	registry.Register("sample", sampleFactory)

	registry.Clear()

	testutil.AssertFalse(t, registry.IsRegistered("sample"), "clear should drop registrations")
}
