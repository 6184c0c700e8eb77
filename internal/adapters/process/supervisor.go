// internal/adapters/process/supervisor.go

// Package process implementa la supervisión del proceso target: spawn en
// process group propio, espera de readiness y terminación garantizada
// del grupo completo.
package process

import (
	"context"
	"fmt"
	"os/exec"
	"sync"
	"time"

	"docshot/internal/core/domain"
	"docshot/internal/core/ports"
	"docshot/internal/platform/logx"
)

// stopGrace es lo que se concede al grupo tras la señal de terminación
// antes de escalar a kill.
const stopGrace = 10 * time.Second

// ExecSupervisor implementa ports.Supervisor sobre os/exec.
type ExecSupervisor struct {
	logger logx.Logger

	// probe, si no es nil, sustituye a la selección automática.
	// Lo usan los tests y configuraciones endurecidas.
	probe ReadinessProbe
}

// New crea el supervisor.
func New(logger logx.Logger) *ExecSupervisor {
	return &ExecSupervisor{logger: logger.With("component", "supervisor")}
}

// NewWithProbe crea el supervisor con una sonda de readiness fija.
func NewWithProbe(logger logx.Logger, probe ReadinessProbe) *ExecSupervisor {
	s := New(logger)
	s.probe = probe
	return s
}

// Start lanza el comando en su propio process group y espera readiness.
// Spawn fallido: (nil, error fatal). Readiness expirado: handle válido
// más error domain.ErrNotReady; el caller decide seguir.
func (s *ExecSupervisor) Start(ctx context.Context, spec domain.ServerSpec, baseURL string) (ports.Process, error) {
	cmd := exec.Command(spec.Command, spec.Args...)
	setProcessGroup(cmd)

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrStartFailure, spec.Command, err)
	}

	p := &execProcess{
		cmd:    cmd,
		state:  domain.ProcessStarting,
		done:   make(chan struct{}),
		logger: s.logger,
	}

	// Un único Wait, compartido entre el reaper y Stop.
	go func() {
		p.waitErr = cmd.Wait()
		close(p.done)
	}()

	s.logger.Info("target started",
		"command", spec.Command,
		"pid", cmd.Process.Pid,
	)

	probe := s.probe
	if probe == nil {
		probe = probeFor(spec, s.logger)
	}
	if err := probe.Wait(ctx, baseURL, spec); err != nil {
		// Fallo blando: el handle sigue siendo responsabilidad del
		// caller, que debe llegar igualmente al teardown.
		return p, err
	}

	p.setState(domain.ProcessRunning)
	return p, nil
}

// execProcess es el handle de un proceso supervisado.
type execProcess struct {
	mu      sync.Mutex
	cmd     *exec.Cmd
	state   domain.ProcessState
	done    chan struct{}
	waitErr error
	logger  logx.Logger
}

// PID del líder del grupo.
func (p *execProcess) PID() int {
	return p.cmd.Process.Pid
}

// State es el estado de ciclo de vida actual.
func (p *execProcess) State() domain.ProcessState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *execProcess) setState(s domain.ProcessState) {
	p.mu.Lock()
	p.state = s
	p.mu.Unlock()
}

// Stop señala la terminación al grupo entero y bloquea hasta que el
// grupo sale. Escala a kill tras el periodo de gracia. Idempotente.
func (p *execProcess) Stop(ctx context.Context) error {
	p.mu.Lock()
	if p.state == domain.ProcessStopped {
		p.mu.Unlock()
		return nil
	}
	p.mu.Unlock()

	select {
	case <-p.done:
		// Ya había salido solo.
		p.setState(domain.ProcessStopped)
		return nil
	default:
	}

	p.logger.Info("stopping target group", "pid", p.PID())
	if err := terminateGroup(p.cmd); err != nil {
		p.logger.Warn("terminate signal failed", "pid", p.PID(), "error", err.Error())
	}

	select {
	case <-p.done:
	case <-time.After(stopGrace):
		p.logger.Warn("group did not exit in grace period, killing", "pid", p.PID())
		if err := killGroup(p.cmd); err != nil {
			p.setState(domain.ProcessFailed)
			return fmt.Errorf("killing process group %d: %w", p.PID(), err)
		}
		select {
		case <-p.done:
		case <-ctx.Done():
			p.setState(domain.ProcessFailed)
			return ctx.Err()
		}
	case <-ctx.Done():
		p.setState(domain.ProcessFailed)
		return ctx.Err()
	}

	p.setState(domain.ProcessStopped)
	p.logger.Info("target group stopped", "pid", p.PID())
	return nil
}
