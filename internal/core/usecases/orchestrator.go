// internal/core/usecases/orchestrator.go

// Package usecases contiene la lógica de aplicación: el orquestador que
// lleva un módulo desde el setup hasta el teardown pasando por cada
// tarea de captura.
package usecases

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"docshot/internal/core/domain"
	"docshot/internal/core/ports"
	"docshot/internal/dsl"
	"docshot/internal/platform/errors"
	"docshot/internal/platform/logx"
	"docshot/internal/platform/ui"
)

// stopTimeout acota el teardown del proceso target.
const stopTimeout = 30 * time.Second

// PipelineOrchestrator coordina un run de captura: arranca el target,
// instala mocks y sesión, ejecuta las tareas en orden y garantiza el
// teardown. Los fallos por tarea no cortan el run; solo un setup
// fallido es fatal.
type PipelineOrchestrator struct {
	supervisor ports.Supervisor
	browser    ports.Browser
	routes     ports.RouteTable
	logger     logx.Logger
	presenter  ui.Presenter

	outputDir string
	noTable   bool
	headless  bool
}

// PipelineOrchestratorOptions configura el orquestador.
type PipelineOrchestratorOptions struct {
	Supervisor ports.Supervisor
	Browser    ports.Browser

	// Routes es la tabla de mocks ya registrada, en orden. Nil = sin
	// intercepción.
	Routes ports.RouteTable

	Logger    logx.Logger
	Presenter ui.Presenter
	OutputDir string
	NoTable   bool

	// Headless solo informa a la UI; el navegador ya viene lanzado.
	Headless bool
}

// NewPipelineOrchestrator crea una nueva instancia del orquestador.
func NewPipelineOrchestrator(opts PipelineOrchestratorOptions) *PipelineOrchestrator {
	if opts.Logger == nil {
		opts.Logger = logx.New()
	}
	if opts.Presenter == nil {
		opts.Presenter = ui.NewNoopPresenter()
	}
	if opts.OutputDir == "" {
		opts.OutputDir = "docs/images"
	}

	return &PipelineOrchestrator{
		supervisor: opts.Supervisor,
		browser:    opts.Browser,
		routes:     opts.Routes,
		logger:     opts.Logger.With("component", "orchestrator"),
		presenter:  opts.Presenter,
		outputDir:  opts.OutputDir,
		noTable:    opts.NoTable,
		headless:   opts.Headless,
	}
}

// Run ejecuta el pipeline completo del módulo. El error de retorno es
// no-nil solo ante fallos fatales (setup o cancelación del contexto);
// los fallos por tarea quedan registrados en el PipelineRun devuelto.
func (p *PipelineOrchestrator) Run(ctx context.Context, spec domain.ModuleSpec) (*domain.PipelineRun, error) {
	startTime := time.Now()

	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid module: %w", err)
	}

	run := domain.NewPipelineRun(spec.Name)

	p.logger.Info("starting capture run",
		"module", spec.Name,
		"tasks", len(spec.Tasks),
		"mocks", len(spec.Mocks),
	)

	mockRules := 0
	if p.routes != nil {
		mockRules = p.routes.Len()
	}
	p.presenter.Start(ui.RunInfo{
		Module:     spec.Name,
		BaseURL:    spec.BaseURL,
		OutputDir:  p.outputDir,
		TotalTasks: len(spec.Tasks),
		MockRules:  mockRules,
		Headless:   p.headless,
	})
	defer p.presenter.Close()

	// Setup: proceso target. El teardown queda garantizado desde el
	// momento en que existe un handle, pase lo que pase después.
	if spec.Server != nil && spec.HasLivePages() {
		proc, err := p.supervisor.Start(ctx, *spec.Server, spec.BaseURL)
		if proc != nil {
			defer p.stopTarget(proc, run)
		}
		if err != nil {
			if proc == nil {
				// Spawn fallido: sin proceso no hay nada que capturar.
				reason := fmt.Sprintf("target spawn failed: %v", err)
				p.presenter.Error(reason)
				run.SetFatal(reason)
				run.Finalize()
				p.finishPresenter(run, time.Since(startTime))
				return run, err
			}
			// Readiness expirado: se continúa en best-effort.
			msg := fmt.Sprintf("target not ready, continuing anyway: %v", err)
			p.logger.Warn("target readiness expired", "error", err.Error())
			p.presenter.Warning(msg)
			run.AddWarning(msg)
		}
	}

	// Setup: intercepción y sesión, antes de la primera navegación.
	if err := p.browser.Prepare(ctx, p.routes, spec.Session); err != nil {
		reason := fmt.Sprintf("browser setup failed: %v", err)
		p.presenter.Error(reason)
		run.SetFatal(reason)
		run.Finalize()
		p.finishPresenter(run, time.Since(startTime))
		return run, err
	}

	// Tareas en orden estricto, best-effort. Una cancelación corta el
	// loop y se propaga como error fatal, en línea con el run.
	var ctxErr error
	for i := range spec.Tasks {
		task := spec.Tasks[i]

		if err := ctx.Err(); err != nil {
			msg := fmt.Sprintf("run cancelled before task %s: %v", task.Name, err)
			run.AddWarning(msg)
			run.SetFatal(err.Error())
			ctxErr = err
			break
		}

		p.presenter.StartTask(task.Name)
		taskStart := time.Now()

		err := p.executeTask(ctx, spec, &task, run)
		taskDuration := time.Since(taskStart)

		if err != nil {
			reason := failureReason(err)
			p.logger.Warn("task failed",
				"task", task.Name,
				"reason", reason,
				"error", err.Error(),
			)
			run.AddFailed(task.Name, task.OutputFile, reason, taskDuration)
			p.presenter.FinishTask(task.Name, ui.StatusError, taskDuration)

			// Marcador de error junto a las capturas; su propio fallo
			// no afecta al run.
			p.captureErrorMarker(ctx, spec.Name, task.Name, reason)
			continue
		}

		run.AddCaptured(task.Name, task.OutputFile, taskDuration)
		p.presenter.FinishTask(task.Name, ui.StatusSuccess, taskDuration)
		p.logger.Info("task captured",
			"task", task.Name,
			"output", task.OutputFile,
			"duration_ms", taskDuration.Milliseconds(),
		)
	}

	run.Finalize()

	totalDuration := time.Since(startTime)
	p.logger.Info("capture run completed",
		"module", spec.Name,
		"captured", run.Captured(),
		"failed", run.Failed(),
		"warnings", len(run.Warnings),
		"total_duration_ms", totalDuration.Milliseconds(),
	)

	p.finishPresenter(run, totalDuration)
	return run, ctxErr
}

// executeTask despacha una tarea según su modo.
func (p *PipelineOrchestrator) executeTask(ctx context.Context, spec domain.ModuleSpec, task *domain.CaptureTask, run *domain.PipelineRun) error {
	outputPath := filepath.Join(p.outputDir, task.OutputFile)

	switch task.Mode {
	case domain.ModeLivePage:
		url := strings.TrimRight(spec.BaseURL, "/") + task.Live.Path
		return p.browser.CaptureLivePage(ctx, url, *task.Live, task.Viewport, outputPath)

	case domain.ModeTextDocument:
		text := p.resolveDocument(task.Doc, run)
		return p.browser.CaptureTextDocument(ctx, task.Doc.Title, text, task.Viewport, outputPath)

	default:
		return fmt.Errorf("%w: %q", domain.ErrInvalidTaskMode, task.Mode)
	}
}

// resolveDocument materializa el contenido de un documento de texto:
// texto literal, árbol de directorio o fichero DSL con extracción
// opcional de bloque. Un fichero ilegible produce un placeholder y un
// warning, nunca aborta la tarea.
func (p *PipelineOrchestrator) resolveDocument(doc *domain.TextDocument, run *domain.PipelineRun) string {
	if doc.Text != "" {
		return doc.Text
	}

	if doc.TreeDir != "" {
		return dsl.Tree(doc.TreeDir, ".kdl")
	}

	if doc.SourceFile != "" {
		data, err := os.ReadFile(doc.SourceFile)
		if err != nil {
			msg := fmt.Sprintf("cannot read %s: %v", doc.SourceFile, err)
			p.logger.Warn("document source unreadable", "file", doc.SourceFile, "error", err.Error())
			run.AddWarning(msg)
			return "Error reading file"
		}
		content := string(data)
		if doc.Anchor != "" {
			return dsl.Extract(content, doc.Anchor)
		}
		return content
	}

	return ""
}

// captureErrorMarker deja un PNG con la razón del fallo en una ruta
// codificada por módulo y tarea. Best-effort: un marcador fallido solo
// se loguea.
func (p *PipelineOrchestrator) captureErrorMarker(ctx context.Context, module, task, reason string) {
	name := fmt.Sprintf("error_%s_%s.png", module, slug(task))
	path := filepath.Join(p.outputDir, name)

	text := fmt.Sprintf("Task:   %s\nReason: %s", task, reason)
	if err := p.browser.CaptureTextDocument(ctx, "Error: "+module, text, domain.DocumentViewport(), path); err != nil {
		p.logger.Warn("error marker capture failed", "path", path, "error", err.Error())
	}
}

// stopTarget ejecuta el teardown del proceso con su propio contexto,
// para que una cancelación del run no deje al grupo huérfano.
func (p *PipelineOrchestrator) stopTarget(proc ports.Process, run *domain.PipelineRun) {
	stopCtx, cancel := context.WithTimeout(context.Background(), stopTimeout)
	defer cancel()

	if err := proc.Stop(stopCtx); err != nil {
		msg := fmt.Sprintf("target teardown failed: %v", err)
		p.logger.Err(err, "phase", "teardown", "pid", proc.PID())
		run.AddWarning(msg)
		return
	}
	p.logger.Info("target stopped", "pid", proc.PID())
}

// finishPresenter traduce el run a las estadísticas del presenter.
func (p *PipelineOrchestrator) finishPresenter(run *domain.PipelineRun, total time.Duration) {
	stats := ui.RunStats{
		TotalDuration: total,
		Captured:      run.Captured(),
		Failed:        run.Failed(),
		Warnings:      len(run.Warnings),
	}
	if !p.noTable {
		for _, o := range run.Outcomes {
			status := ui.StatusSuccess
			if o.Status == domain.StatusFailed {
				status = ui.StatusError
			}
			stats.Outcomes = append(stats.Outcomes, ui.TaskLine{
				Name:     o.Task,
				Output:   o.Output,
				Status:   status,
				Reason:   o.Reason,
				Duration: o.Duration,
			})
		}
	}
	p.presenter.Finish(stats)
}

// failureReason reduce un error de tarea a la razón corta que va al
// outcome y al nombre del marcador.
func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrSelectorTimeout):
		return "selector timeout"
	case errors.Is(err, domain.ErrNavigationFailed):
		return "navigation failed"
	case errors.Is(err, domain.ErrCaptureFailed):
		return "capture failed"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "cancelled"
	default:
		return "error"
	}
}

// slug normaliza un fragmento para usarlo en nombres de fichero.
func slug(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return strings.Trim(b.String(), "-")
}
