// internal/testutil/mocks.go
package testutil

import (
	"context"
	"sync"

	"docshot/internal/core/domain"
	"docshot/internal/core/ports"
)

// MockBrowser implementa ports.Browser registrando cada llamada.
// Los maps Fail* inyectan errores por output path.
type MockBrowser struct {
	mu sync.Mutex

	PrepareErr error
	FailLive   map[string]error
	FailDoc    map[string]error

	PreparedRules int
	SessionSeen   *domain.FakeSession
	LiveURLs      []string
	DocTitles     []string
	DocTexts      []string
	Written       []string
	Closed        int
}

func (m *MockBrowser) Prepare(ctx context.Context, routes ports.RouteTable, session *domain.FakeSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if routes != nil {
		m.PreparedRules = routes.Len()
	}
	m.SessionSeen = session
	return m.PrepareErr
}

func (m *MockBrowser) CaptureLivePage(ctx context.Context, url string, live domain.LivePage, vp domain.Viewport, outputPath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LiveURLs = append(m.LiveURLs, url)
	if err, ok := m.FailLive[outputPath]; ok {
		return err
	}
	m.Written = append(m.Written, outputPath)
	return nil
}

func (m *MockBrowser) CaptureTextDocument(ctx context.Context, title, text string, vp domain.Viewport, outputPath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DocTitles = append(m.DocTitles, title)
	m.DocTexts = append(m.DocTexts, text)
	if err, ok := m.FailDoc[outputPath]; ok {
		return err
	}
	m.Written = append(m.Written, outputPath)
	return nil
}

func (m *MockBrowser) Close(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Closed++
	return nil
}

// WroteTo verifica si el browser escribió en el path dado.
func (m *MockBrowser) WroteTo(path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.Written {
		if p == path {
			return true
		}
	}
	return false
}

// MockSupervisor implementa ports.Supervisor con resultados fijos.
// StartErr simula un spawn fallido (handle nil). ReadyErr simula
// readiness expirado: devuelve el handle junto al error.
type MockSupervisor struct {
	StartErr error
	ReadyErr error
	Proc     *MockProcess

	StartCalls int
}

func (m *MockSupervisor) Start(ctx context.Context, spec domain.ServerSpec, baseURL string) (ports.Process, error) {
	m.StartCalls++
	if m.StartErr != nil {
		return nil, m.StartErr
	}
	if m.Proc == nil {
		m.Proc = &MockProcess{ProcState: domain.ProcessRunning}
	}
	if m.ReadyErr != nil {
		m.Proc.ProcState = domain.ProcessStarting
		return m.Proc, m.ReadyErr
	}
	return m.Proc, nil
}

// MockProcess implementa ports.Process contando los Stop.
type MockProcess struct {
	mu        sync.Mutex
	ProcState domain.ProcessState
	StopErr   error
	Stops     int
}

func (m *MockProcess) Stop(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Stops++
	if m.StopErr != nil {
		m.ProcState = domain.ProcessFailed
		return m.StopErr
	}
	m.ProcState = domain.ProcessStopped
	return nil
}

func (m *MockProcess) PID() int {
	return 4242
}

func (m *MockProcess) State() domain.ProcessState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ProcState
}

// StopCount es el número de Stop recibidos.
func (m *MockProcess) StopCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Stops
}
