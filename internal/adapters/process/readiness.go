// internal/adapters/process/readiness.go
package process

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"docshot/internal/core/domain"
	"docshot/internal/platform/httpclient"
	"docshot/internal/platform/logx"
)

// ReadinessProbe decide cuándo el target está listo para navegar.
// Toda espera está acotada: ninguna implementación puede bloquear
// indefinidamente.
type ReadinessProbe interface {
	// Wait bloquea hasta que el target está listo o el tope del spec
	// expira. Expiración = error que envuelve domain.ErrNotReady.
	Wait(ctx context.Context, baseURL string, spec domain.ServerSpec) error
}

// FixedDelayProbe duerme ReadyDelay y da el target por listo: la
// estrategia de los scripts originales, y el default.
type FixedDelayProbe struct{}

// Wait duerme el delay fijo, sensible a cancelación del contexto.
func (FixedDelayProbe) Wait(ctx context.Context, _ string, spec domain.ServerSpec) error {
	select {
	case <-time.After(spec.ReadyDelay):
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", domain.ErrNotReady, ctx.Err())
	}
}

// HTTPProbe sondea BaseURL+HealthPath hasta obtener respuesta HTTP,
// con ReadyDelay como tope total. Es la variante endurecida: comprueba
// el puerto real en lugar de confiar en un sleep.
type HTTPProbe struct {
	client   *httpclient.Client
	interval time.Duration
	logger   logx.Logger
}

// NewHTTPProbe crea la sonda HTTP con el intervalo de sondeo dado.
func NewHTTPProbe(client *httpclient.Client, interval time.Duration, logger logx.Logger) *HTTPProbe {
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	return &HTTPProbe{
		client:   client,
		interval: interval,
		logger:   logger.With("component", "readiness"),
	}
}

// Wait sondea hasta cualquier respuesta por debajo de 500 o hasta agotar
// ReadyDelay. Un target que responde 4xx ya está aceptando conexiones.
func (p *HTTPProbe) Wait(ctx context.Context, baseURL string, spec domain.ServerSpec) error {
	url := baseURL + spec.HealthPath
	deadline := time.Now().Add(spec.ReadyDelay)

	for {
		probeCtx, cancel := context.WithTimeout(ctx, p.interval)
		status, err := p.client.Status(probeCtx, url)
		cancel()

		if err == nil && status < http.StatusInternalServerError {
			p.logger.Debug("target ready", "url", url, "status", status)
			return nil
		}

		if time.Now().After(deadline) {
			return fmt.Errorf("%w: no response from %s within %s", domain.ErrNotReady, url, spec.ReadyDelay)
		}

		select {
		case <-time.After(p.interval):
		case <-ctx.Done():
			return fmt.Errorf("%w: %v", domain.ErrNotReady, ctx.Err())
		}
	}
}

// probeFor selecciona la sonda según el spec: HealthPath activa la
// variante HTTP, si no, delay fijo.
func probeFor(spec domain.ServerSpec, logger logx.Logger) ReadinessProbe {
	if spec.HealthPath != "" {
		client := httpclient.New(httpclient.DefaultConfig(), logger)
		return NewHTTPProbe(client, 0, logger)
	}
	return FixedDelayProbe{}
}
