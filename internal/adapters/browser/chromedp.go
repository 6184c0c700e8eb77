// internal/adapters/browser/chromedp.go

// Package browser implementa ports.Browser sobre chromedp: un único
// contexto de navegación headless por run, con intercepción de red vía
// el dominio Fetch de CDP y sesión falsa inyectada antes de cada carga.
package browser

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/fetch"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"docshot/internal/core/domain"
	"docshot/internal/core/ports"
	"docshot/internal/platform/logx"
)

// Config controla el lanzamiento del navegador.
type Config struct {
	// Headless desactivado deja ver la ventana; útil depurando mocks.
	Headless bool

	// ExecPath fuerza un binario de Chrome concreto. Vacío = autodetección.
	ExecPath string

	// StartTimeout acota la creación del primer tab.
	StartTimeout time.Duration
}

// DefaultConfig devuelve la configuración headless estándar.
func DefaultConfig() Config {
	return Config{
		Headless:     true,
		StartTimeout: 30 * time.Second,
	}
}

// Chrome es el adaptador chromedp. El orquestador es el único dueño del
// ciclo de vida: New → Prepare → Capture* → Close.
type Chrome struct {
	logger logx.Logger

	allocCancel context.CancelFunc
	tabCtx      context.Context
	tabCancel   context.CancelFunc

	mu     sync.Mutex
	closed bool
}

var _ ports.Browser = (*Chrome)(nil)

// New lanza el navegador y abre el tab de trabajo.
func New(ctx context.Context, cfg Config, logger logx.Logger) (*Chrome, error) {
	opts := append([]chromedp.ExecAllocatorOption{},
		chromedp.DefaultExecAllocatorOptions[:]...)
	opts = append(opts, chromedp.Flag("headless", cfg.Headless))
	if cfg.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(cfg.ExecPath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	tabCtx, tabCancel := chromedp.NewContext(allocCtx)

	b := &Chrome{
		logger:      logger.With("component", "browser"),
		allocCancel: allocCancel,
		tabCtx:      tabCtx,
		tabCancel:   tabCancel,
	}

	startCtx, cancel := context.WithTimeout(tabCtx, cfg.StartTimeout)
	defer cancel()
	if err := chromedp.Run(startCtx); err != nil {
		b.release()
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	b.logger.Debug("browser ready", "headless", cfg.Headless)
	return b, nil
}

// Prepare instala la intercepción de red y la sesión falsa. Debe
// ejecutarse antes de la primera navegación: los scripts registrados
// con AddScriptToEvaluateOnNewDocument solo afectan a cargas futuras.
func (b *Chrome) Prepare(ctx context.Context, routes ports.RouteTable, session *domain.FakeSession) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if routes != nil && routes.Len() > 0 {
		chromedp.ListenTarget(b.tabCtx, func(ev interface{}) {
			if paused, ok := ev.(*fetch.EventRequestPaused); ok {
				go b.resolveRequest(paused, routes)
			}
		})
		if err := chromedp.Run(b.tabCtx, fetch.Enable()); err != nil {
			return fmt.Errorf("enabling request interception: %w", err)
		}
		b.logger.Info("network interception active", "rules", routes.Len())
	}

	if session != nil {
		script, err := sessionScript(session)
		if err != nil {
			return fmt.Errorf("building session script: %w", err)
		}
		err = chromedp.Run(b.tabCtx, chromedp.ActionFunc(func(ctx context.Context) error {
			_, err := page.AddScriptToEvaluateOnNewDocument(script).Do(ctx)
			return err
		}))
		if err != nil {
			return fmt.Errorf("installing fake session: %w", err)
		}
		b.logger.Info("fake session installed", "username", session.Username)
	}

	return nil
}

// resolveRequest responde una petición pausada: la primera regla que
// cubra la URL devuelve su payload fijo; sin regla, la petición sigue
// hacia la red.
func (b *Chrome) resolveRequest(ev *fetch.EventRequestPaused, routes ports.RouteTable) {
	c := chromedp.FromContext(b.tabCtx)
	ctx := cdp.WithExecutor(b.tabCtx, c.Target)

	rule, ok := routes.Match(ev.Request.URL)
	if !ok {
		if err := fetch.ContinueRequest(ev.RequestID).Do(ctx); err != nil {
			b.logger.Debug("continue request failed", "url", ev.Request.URL, "error", err.Error())
		}
		return
	}

	b.logger.Debug("mocking request", "url", ev.Request.URL, "pattern", rule.Pattern)
	err := fetch.FulfillRequest(ev.RequestID, 200).
		WithResponseHeaders([]*fetch.HeaderEntry{
			{Name: "Content-Type", Value: rule.ContentType},
			{Name: "Access-Control-Allow-Origin", Value: "*"},
		}).
		WithBody(base64.StdEncoding.EncodeToString(rule.Body)).
		Do(ctx)
	if err != nil {
		b.logger.Warn("fulfill request failed", "url", ev.Request.URL, "error", err.Error())
	}
}

// sessionScript serializa la sesión falsa al localStorage bajo la clave
// que el frontend consulta al decidir si hay usuario autenticado.
func sessionScript(session *domain.FakeSession) (string, error) {
	payload, err := json.Marshal(session)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("window.localStorage.setItem(%q, %q);",
		domain.SessionStorageKey, string(payload)), nil
}

// CaptureLivePage navega, espera el readiness selector, deja asentar la
// página y escribe la captura.
func (b *Chrome) CaptureLivePage(ctx context.Context, url string, live domain.LivePage, vp domain.Viewport, outputPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := chromedp.Run(b.tabCtx,
		chromedp.EmulateViewport(vp.Width, vp.Height),
		chromedp.Navigate(url),
	)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrNavigationFailed, url, err)
	}

	if live.ReadinessSelector != "" {
		waitCtx, cancel := context.WithTimeout(b.tabCtx, live.SelectorTimeout)
		err = chromedp.Run(waitCtx, chromedp.WaitVisible(live.ReadinessSelector, chromedp.ByQuery))
		cancel()
		if err != nil {
			return fmt.Errorf("%w: %q not visible within %s",
				domain.ErrSelectorTimeout, live.ReadinessSelector, live.SelectorTimeout)
		}
	}

	var buf []byte
	actions := []chromedp.Action{chromedp.Sleep(live.SettleDelay)}
	if live.Element != "" {
		actions = append(actions, chromedp.Screenshot(live.Element, &buf, chromedp.ByQuery))
	} else {
		actions = append(actions, chromedp.CaptureScreenshot(&buf))
	}
	if err := chromedp.Run(b.tabCtx, actions...); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrCaptureFailed, url, err)
	}

	return writeImage(outputPath, buf)
}

// CaptureTextDocument renderiza el texto como documento monoespaciado,
// mide la altura real del contenido y redimensiona el viewport antes de
// capturar, para que el PNG abarque el documento completo.
func (b *Chrome) CaptureTextDocument(ctx context.Context, title, text string, vp domain.Viewport, outputPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var height float64
	err := chromedp.Run(b.tabCtx,
		chromedp.EmulateViewport(vp.Width, vp.Height),
		chromedp.Navigate(documentURL(RenderDocument(title, text))),
		chromedp.Evaluate(`document.documentElement.scrollHeight`, &height),
	)
	if err != nil {
		return fmt.Errorf("%w: rendering %q: %v", domain.ErrCaptureFailed, title, err)
	}

	final := int64(height) + heightMargin
	if final < vp.Height {
		final = vp.Height
	}

	var buf []byte
	err = chromedp.Run(b.tabCtx,
		chromedp.EmulateViewport(vp.Width, final),
		chromedp.CaptureScreenshot(&buf),
	)
	if err != nil {
		return fmt.Errorf("%w: capturing %q: %v", domain.ErrCaptureFailed, title, err)
	}

	return writeImage(outputPath, buf)
}

// Close libera el tab y el allocator. Idempotente.
func (b *Chrome) Close(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	b.release()
	b.logger.Debug("browser closed")
	return nil
}

func (b *Chrome) release() {
	if b.tabCancel != nil {
		b.tabCancel()
	}
	if b.allocCancel != nil {
		b.allocCancel()
	}
}

func writeImage(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrCaptureFailed, path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrCaptureFailed, path, err)
	}
	return nil
}
