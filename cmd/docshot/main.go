// cmd/docshot/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"docshot/internal/adapters/browser"
	"docshot/internal/adapters/output"
	"docshot/internal/adapters/process"
	"docshot/internal/core/domain"
	"docshot/internal/core/usecases"
	"docshot/internal/mockroute"
	"docshot/internal/platform/config"
	"docshot/internal/platform/logx"
	"docshot/internal/platform/registry"
	"docshot/internal/platform/ui"

	// Import modules for auto-registration via init()
	_ "docshot/internal/modules/finance"
	_ "docshot/internal/modules/siasn"
)

var (
	// Rellenables con -ldflags en build
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// main delega en run para que los defer (navegador, señales) corran en
// todos los caminos de salida antes del os.Exit.
func main() {
	os.Exit(run())
}

func run() int {
	// 1. Load centralized config
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: configuration load failed: %v\n", err)
		return 2
	}

	if cfg.PrintVersion {
		fmt.Printf("docshot %s (%s, %s)\n", version, commit, date)
		return 0
	}

	if cfg.ListModules {
		for _, name := range registry.Global().List() {
			fmt.Println(name)
		}
		return 0
	}

	// Validate module selector
	if cfg.Module == "" && cfg.ModuleFile == "" {
		fmt.Fprintln(os.Stderr, "Error: module name is required")
		fmt.Fprintln(os.Stderr, "Usage: docshot <module>")
		fmt.Fprintln(os.Stderr, "Try: docshot --list to see registered modules")
		return 2
	}

	// 2. Shared logger
	logger := logx.New()

	logger.Info("docshot starting",
		"version", version,
		"module", cfg.Module,
		"output_dir", cfg.OutputDir,
		"headless", cfg.Headless,
	)

	// 3. Context and signals for clean shutdown
	ctx, cancel := rootContextWithSignals(cfg.TimeoutS, logger)
	defer cancel()

	// 4. Resolve module spec: YAML file takes precedence over registry
	spec, err := resolveModule(cfg)
	if err != nil {
		logger.Err(err, "phase", "module-resolve")
		return 2
	}

	// 5. Mock routing table, in registration order
	router := mockroute.New(logger)
	if err := router.RegisterAll(spec.Mocks); err != nil {
		logger.Err(err, "phase", "mock-setup")
		return 2
	}

	// 6. UI presenter
	var presenter ui.Presenter = ui.NewPTermPresenter()
	switch {
	case cfg.Quiet:
		presenter = ui.NewNoopPresenter()
	case cfg.Raw:
		presenter = ui.NewRawPresenter(ui.LogFormat(cfg.LogFormat))
	}

	// 7. Headless browser, single navigation context per run
	browserCfg := browser.DefaultConfig()
	browserCfg.Headless = cfg.Headless
	browserCfg.ExecPath = cfg.ChromePath

	chrome, err := browser.New(ctx, browserCfg, logger)
	if err != nil {
		logger.Err(err, "phase", "browser-launch")
		return 1
	}
	defer chrome.Close(context.Background())

	// 8. Orchestrator
	orch := usecases.NewPipelineOrchestrator(usecases.PipelineOrchestratorOptions{
		Supervisor: process.New(logger),
		Browser:    chrome,
		Routes:     router,
		Logger:     logger,
		Presenter:  presenter,
		OutputDir:  cfg.OutputDir,
		NoTable:    cfg.TableOff,
		Headless:   cfg.Headless,
	})

	// 9. Execute capture run
	start := time.Now()
	capRun, runErr := orch.Run(ctx, spec)
	elapsed := time.Since(start)

	if runErr != nil {
		logger.Err(runErr, "phase", "run", "elapsed_ms", elapsed.Milliseconds())
		// Continue to emit the report (useful in pipelines)
	}

	// 10. Emit run report: file next to the captures, stdout on demand
	if capRun != nil && !cfg.ReportOff {
		path, outErr := output.WriteReport(cfg.OutputDir, capRun)
		if outErr != nil {
			logger.Err(outErr, "phase", "report")
		} else {
			logger.Info("run report written", "path", path)
		}
	}
	if capRun != nil && cfg.ReportStdout {
		if outErr := output.WriteReportStdout(capRun, !cfg.Raw); outErr != nil {
			logger.Err(outErr, "phase", "report-stdout")
		}
	}

	// 11. Summary
	if capRun != nil {
		logger.Info("docshot finished",
			"elapsed_ms", elapsed.Milliseconds(),
			"captured", capRun.Captured(),
			"failed", capRun.Failed(),
			"warnings", len(capRun.Warnings),
		)
	}

	// Per-task failures are recorded in the run; only fatal errors
	// (setup failures, cancellation) change the exit code.
	if runErr != nil {
		return 1
	}
	return 0
}

// resolveModule obtiene el spec desde el fichero YAML o el registry.
func resolveModule(cfg config.Config) (domain.ModuleSpec, error) {
	if cfg.ModuleFile != "" {
		return config.ModuleFromFile(cfg.ModuleFile)
	}
	return registry.Global().Build(cfg.Module)
}

// rootContextWithSignals creates a root context with optional timeout and signal cancellation.
func rootContextWithSignals(timeoutSeconds int, logger logx.Logger) (context.Context, context.CancelFunc) {
	var base context.Context
	var baseCancel context.CancelFunc

	if timeoutSeconds > 0 {
		base, baseCancel = context.WithTimeout(context.Background(), time.Duration(timeoutSeconds)*time.Second)
	} else {
		base, baseCancel = context.WithCancel(context.Background())
	}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-ch:
			logger.Warn("signal received, shutting down", "signal", sig.String())
			baseCancel()
		case <-base.Done():
		}
	}()

	return base, func() {
		signal.Stop(ch)
		baseCancel()
	}
}
