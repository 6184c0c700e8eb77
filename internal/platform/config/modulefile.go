// internal/platform/config/modulefile.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"docshot/internal/core/domain"
)

// DTOs del fichero YAML de módulo. Las duraciones aceptan tanto valores
// de time.ParseDuration ("2s") como números pelados (segundos).

type moduleFile struct {
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"`
	BaseURL     string       `yaml:"base_url"`
	Server      *serverFile  `yaml:"server"`
	Mocks       []mockFile   `yaml:"mocks"`
	Session     *sessionFile `yaml:"session"`
	Tasks       []taskFile   `yaml:"tasks"`
}

type serverFile struct {
	Command    string   `yaml:"command"`
	Args       []string `yaml:"args"`
	ReadyDelay string   `yaml:"ready_delay"`
	HealthPath string   `yaml:"health_path"`
}

type mockFile struct {
	Pattern     string `yaml:"pattern"`
	Body        string `yaml:"body"`
	ContentType string `yaml:"content_type"`
}

type sessionFile struct {
	Token    string   `yaml:"token"`
	Username string   `yaml:"username"`
	Roles    []string `yaml:"roles"`
	UserID   string   `yaml:"user_id"`
}

type taskFile struct {
	Name   string `yaml:"name"`
	Output string `yaml:"output"`
	Mode   string `yaml:"mode"`
	Width  int64  `yaml:"width"`
	Height int64  `yaml:"height"`

	// live_page
	Path            string `yaml:"path"`
	Selector        string `yaml:"selector"`
	SelectorTimeout string `yaml:"selector_timeout"`
	SettleDelay     string `yaml:"settle_delay"`
	Element         string `yaml:"element"`

	// text_document
	Title      string `yaml:"title"`
	Text       string `yaml:"text"`
	SourceFile string `yaml:"source_file"`
	Anchor     string `yaml:"anchor"`
	TreeDir    string `yaml:"tree_dir"`
}

// ModuleFromFile carga y valida un spec de módulo desde YAML.
func ModuleFromFile(path string) (domain.ModuleSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.ModuleSpec{}, fmt.Errorf("%w: %s: %v", domain.ErrMissingConfig, path, err)
	}

	var mf moduleFile
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return domain.ModuleSpec{}, fmt.Errorf("%w: %s: %v", domain.ErrConfigParseFailed, path, err)
	}

	spec, err := mf.toDomain()
	if err != nil {
		return domain.ModuleSpec{}, fmt.Errorf("%w: %s: %v", domain.ErrConfigParseFailed, path, err)
	}

	if err := spec.Validate(); err != nil {
		return domain.ModuleSpec{}, fmt.Errorf("module file %s: %w", path, err)
	}
	return spec, nil
}

func (mf *moduleFile) toDomain() (domain.ModuleSpec, error) {
	spec := domain.ModuleSpec{
		Name:        mf.Name,
		Description: mf.Description,
		BaseURL:     mf.BaseURL,
	}

	if mf.Server != nil {
		delay, err := parseDuration(mf.Server.ReadyDelay)
		if err != nil {
			return spec, fmt.Errorf("server.ready_delay: %v", err)
		}
		spec.Server = &domain.ServerSpec{
			Command:    mf.Server.Command,
			Args:       mf.Server.Args,
			ReadyDelay: delay,
			HealthPath: mf.Server.HealthPath,
		}
	}

	for _, m := range mf.Mocks {
		spec.Mocks = append(spec.Mocks, domain.MockRule{
			Pattern:     m.Pattern,
			Body:        []byte(m.Body),
			ContentType: m.ContentType,
		})
	}

	if mf.Session != nil {
		spec.Session = &domain.FakeSession{
			Token:    mf.Session.Token,
			Username: mf.Session.Username,
			Roles:    mf.Session.Roles,
			UserID:   mf.Session.UserID,
		}
	}

	for _, t := range mf.Tasks {
		task, err := t.toDomain()
		if err != nil {
			return spec, fmt.Errorf("task %s: %v", t.Name, err)
		}
		spec.Tasks = append(spec.Tasks, task)
	}

	return spec, nil
}

func (t *taskFile) toDomain() (domain.CaptureTask, error) {
	task := domain.CaptureTask{
		Name:       t.Name,
		OutputFile: t.Output,
		Viewport:   domain.Viewport{Width: t.Width, Height: t.Height},
		Mode:       domain.CaptureMode(t.Mode),
	}

	switch task.Mode {
	case domain.ModeLivePage:
		selTimeout, err := parseDuration(t.SelectorTimeout)
		if err != nil {
			return task, fmt.Errorf("selector_timeout: %v", err)
		}
		settle, err := parseDuration(t.SettleDelay)
		if err != nil {
			return task, fmt.Errorf("settle_delay: %v", err)
		}
		task.Live = &domain.LivePage{
			Path:              t.Path,
			ReadinessSelector: t.Selector,
			SelectorTimeout:   selTimeout,
			SettleDelay:       settle,
			Element:           t.Element,
		}
	case domain.ModeTextDocument:
		task.Doc = &domain.TextDocument{
			Title:      t.Title,
			Text:       t.Text,
			SourceFile: t.SourceFile,
			Anchor:     t.Anchor,
			TreeDir:    t.TreeDir,
		}
	}

	// Modos desconocidos los rechaza Validate con su sentinel.
	return task, nil
}

// parseDuration acepta "", "2s" o "2" (segundos).
func parseDuration(v string) (time.Duration, error) {
	if v == "" {
		return 0, nil
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	return time.ParseDuration(v)
}
