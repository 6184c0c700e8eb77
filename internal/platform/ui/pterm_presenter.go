// internal/platform/ui/pterm_presenter.go
package ui

import (
	"fmt"
	"sync"
	"time"

	"github.com/pterm/pterm"
)

// PTermPresenter implementa Presenter usando la biblioteca pterm
// para renderizar spinners, colores y símbolos en la terminal.
type PTermPresenter struct {
	mu sync.Mutex

	// Tracking de progreso
	tasks        map[string]*TaskProgress
	runStartTime time.Time

	// Spinners activos por tarea
	spinners map[string]*pterm.SpinnerPrinter

	// Configuración
	runInfo RunInfo
}

// NewPTermPresenter crea una nueva instancia del presenter con pterm
func NewPTermPresenter() *PTermPresenter {
	return &PTermPresenter{
		tasks:    make(map[string]*TaskProgress),
		spinners: make(map[string]*pterm.SpinnerPrinter),
	}
}

// Start inicia la presentación mostrando el header del run
func (p *PTermPresenter) Start(info RunInfo) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.runInfo = info
	p.runStartTime = time.Now()

	// Header principal
	pterm.DefaultHeader.
		WithBackgroundStyle(pterm.NewStyle(pterm.BgCyan)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Println("DocShot - Documentation Snapshot Pipeline")

	pterm.Println()

	// Información del run
	pterm.DefaultSection.Println("Run Configuration")

	infoPanel := pterm.DefaultBox.
		WithTitle("Module Information").
		WithTitleTopCenter().
		WithRightPadding(4).
		WithLeftPadding(4).
		WithBoxStyle(pterm.NewStyle(pterm.FgCyan))

	moduleInfo := fmt.Sprintf("%s Module: %s\n", IconModule, pterm.Cyan(info.Module))
	moduleInfo += fmt.Sprintf("%s Base URL: %s\n", IconServer, pterm.Yellow(info.BaseURL))
	moduleInfo += fmt.Sprintf("   Output: %s\n", info.OutputDir)
	moduleInfo += fmt.Sprintf("%s Mock Rules: %d\n", IconMocks, info.MockRules)
	moduleInfo += fmt.Sprintf("%s Tasks: %d\n", IconCamera, info.TotalTasks)
	moduleInfo += fmt.Sprintf("   Headless: %s", p.boolToString(info.Headless))

	infoPanel.Println(moduleInfo)

	pterm.Println()
	pterm.Println(pterm.LightBlue(SeparatorHeavy))
	pterm.Println()
}

// StartTask notifica el inicio de una tarea de captura
func (p *PTermPresenter) StartTask(taskName string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.tasks[taskName] = &TaskProgress{
		Name:      taskName,
		Status:    StatusRunning,
		StartTime: time.Now(),
	}

	// Crear spinner para esta tarea
	spinner, _ := pterm.DefaultSpinner.
		WithStyle(pterm.NewStyle(pterm.FgCyan)).
		WithSequence("⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷").
		Start(fmt.Sprintf("  %s Capturing %s...",
			StatusRunning.Symbol(),
			pterm.Cyan(taskName),
		))

	p.spinners[taskName] = spinner
}

// FinishTask notifica la finalización de una tarea de captura
func (p *PTermPresenter) FinishTask(taskName string, status Status, duration time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if task, exists := p.tasks[taskName]; exists {
		task.Status = status
		task.Duration = duration
	}

	// Detener y reemplazar spinner
	if spinner, exists := p.spinners[taskName]; exists {
		spinner.Stop()
		delete(p.spinners, taskName)
	}

	// Renderizar línea final con resultado
	p.renderTaskLine(taskName, status, duration)
}

// Info muestra un mensaje informativo
func (p *PTermPresenter) Info(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pterm.Info.Println(msg)
}

// Warning muestra una advertencia
func (p *PTermPresenter) Warning(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pterm.Warning.Println(msg)
}

// Error muestra un error
func (p *PTermPresenter) Error(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pterm.Error.Println(msg)
}

// Finish finaliza la presentación con estadísticas finales
func (p *PTermPresenter) Finish(stats RunStats) {
	p.mu.Lock()
	defer p.mu.Unlock()

	// Detener todos los spinners activos
	for _, spinner := range p.spinners {
		spinner.Stop()
	}

	pterm.Println()
	pterm.Println(pterm.LightBlue(SeparatorHeavy))
	pterm.Println()

	// Header de resultados: verde solo si no falló nada
	headerBg := pterm.BgGreen
	headerText := "Run Completed"
	if stats.Failed > 0 {
		headerBg = pterm.BgYellow
		headerText = "Run Completed With Failures"
	}

	pterm.DefaultHeader.
		WithBackgroundStyle(pterm.NewStyle(headerBg)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Println(headerText)

	pterm.Println()

	// Panel de estadísticas
	statsPanel := pterm.DefaultBox.
		WithTitle("Run Statistics").
		WithTitleTopCenter().
		WithRightPadding(4).
		WithLeftPadding(4).
		WithBoxStyle(pterm.NewStyle(pterm.FgGreen))

	statsContent := fmt.Sprintf("%s Total Duration: %s\n",
		IconTime,
		pterm.Green(p.formatDuration(stats.TotalDuration)),
	)
	statsContent += fmt.Sprintf("%s Captured: %s\n",
		IconSuccess,
		pterm.Green(fmt.Sprintf("%d", stats.Captured)),
	)

	if stats.Failed > 0 {
		statsContent += fmt.Sprintf("%s Failed: %s\n",
			IconError,
			pterm.Red(fmt.Sprintf("%d", stats.Failed)),
		)
	}

	if stats.Warnings > 0 {
		statsContent += fmt.Sprintf("%s Warnings: %s",
			IconWarning,
			pterm.Yellow(fmt.Sprintf("%d", stats.Warnings)),
		)
	}

	statsPanel.Println(statsContent)

	// Tabla de resultados por tarea (si hay datos)
	if len(stats.Outcomes) > 0 {
		pterm.Println()
		pterm.DefaultSection.WithLevel(2).Println("Captures")

		tableData := pterm.TableData{
			{"Task", "Output", "Status", "Duration"},
		}

		for _, line := range stats.Outcomes {
			statusCell := line.Status.Style().Sprint(line.Status.String())
			if line.Reason != "" {
				statusCell += " (" + line.Reason + ")"
			}
			tableData = append(tableData, []string{
				line.Name,
				line.Output,
				statusCell,
				p.formatDuration(line.Duration),
			})
		}

		pterm.DefaultTable.
			WithHasHeader().
			WithBoxed().
			WithData(tableData).
			Render()
	}

	pterm.Println()
}

// Close limpia recursos del presenter
func (p *PTermPresenter) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	// Detener todos los spinners activos
	for _, spinner := range p.spinners {
		spinner.Stop()
	}

	p.spinners = make(map[string]*pterm.SpinnerPrinter)
	return nil
}

// renderTaskLine renderiza una línea con el estado de una tarea
func (p *PTermPresenter) renderTaskLine(taskName string, status Status, duration time.Duration) {
	symbol := status.Symbol()
	styledName := status.Style().Sprint(taskName)

	line := fmt.Sprintf("  %s %s", symbol, styledName)
	if duration > 0 {
		line += fmt.Sprintf(" (%s)", p.formatDuration(duration))
	}

	// Usar el color apropiado
	status.Style().Println(line)
}

// formatDuration formatea una duración de manera legible
func (p *PTermPresenter) formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}

// boolToString convierte booleano a string visual
func (p *PTermPresenter) boolToString(b bool) string {
	if b {
		return pterm.Green("ON")
	}
	return pterm.Gray("OFF")
}
