// internal/platform/config/config.go
package config

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

type Config struct {
	// App
	Module       string // selector de módulo (argumento posicional)
	TimeoutS     int    // segundos para el run completo (0 = sin timeout)
	PrintVersion bool
	ListModules  bool

	// IO
	OutputDir    string
	ModuleFile   string // spec de módulo en YAML, alternativa al registry
	ReportOff    bool   // desactiva el reporte JSON del run
	ReportStdout bool   // además del fichero, volcar el reporte a stdout
	TableOff     bool   // desactiva la tabla resumen

	// Browser
	Headless   bool
	ChromePath string

	// UI
	Quiet     bool
	Raw       bool   // presenter raw (logs planos, para CI y pipes)
	LogFormat string // formato del modo raw: text | json
}

// DefaultConfig retorna una configuración por defecto.
func DefaultConfig() Config {
	return Config{
		TimeoutS:  0,
		OutputDir: "docs/images",
		Headless:  true,
		LogFormat: "text",
	}
}

// Load inicializa la configuración: ENV -> defaults, luego FLAGS (flags
// tienen prioridad). El primer argumento posicional es el módulo.
func Load(args []string) (Config, error) {
	cfg := DefaultConfig()

	// Cargar desde ENV
	loadFromEnv(&cfg)

	// Parsear flags (overrides ENV)
	if err := loadFromFlags(&cfg, args); err != nil {
		return cfg, err
	}

	// Normalizar
	normalize(&cfg)

	return cfg, nil
}

// loadFromEnv carga configuración desde variables de entorno.
func loadFromEnv(cfg *Config) {
	if v := getenv("DOCSHOT_OUTPUT_DIR", ""); v != "" {
		cfg.OutputDir = v
	}
	if v := getenv("DOCSHOT_MODULE_FILE", ""); v != "" {
		cfg.ModuleFile = v
	}
	if v := getenv("DOCSHOT_HEADLESS", ""); v != "" {
		cfg.Headless = parseBool(v)
	}
	if v := getenv("DOCSHOT_CHROME_PATH", ""); v != "" {
		cfg.ChromePath = v
	}
	if v := getenv("DOCSHOT_TIMEOUT", ""); v != "" {
		cfg.TimeoutS = parseInt(v, cfg.TimeoutS)
	}
	if v := getenv("DOCSHOT_QUIET", ""); v != "" {
		cfg.Quiet = parseBool(v)
	}
	if v := getenv("DOCSHOT_RAW", ""); v != "" {
		cfg.Raw = parseBool(v)
	}
	if v := getenv("DOCSHOT_LOG_FORMAT", ""); v != "" {
		cfg.LogFormat = v
	}
	if v := getenv("DOCSHOT_NO_REPORT", ""); v != "" {
		cfg.ReportOff = parseBool(v)
	}
	if v := getenv("DOCSHOT_REPORT_STDOUT", ""); v != "" {
		cfg.ReportStdout = parseBool(v)
	}
	if v := getenv("DOCSHOT_NO_TABLE", ""); v != "" {
		cfg.TableOff = parseBool(v)
	}
}

// loadFromFlags parsea flags de CLI sobre un FlagSet propio, para que
// los tests puedan llamar Load con args sintéticos.
func loadFromFlags(cfg *Config, args []string) error {
	fs := pflag.NewFlagSet("docshot", pflag.ContinueOnError)

	fs.StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "Directorio de salida de las capturas")
	fs.StringVar(&cfg.ModuleFile, "module-file", cfg.ModuleFile, "Spec de módulo en YAML (alternativa a los módulos built-in)")
	fs.BoolVar(&cfg.Headless, "headless", cfg.Headless, "Ejecutar el navegador sin ventana")
	fs.StringVar(&cfg.ChromePath, "chrome", cfg.ChromePath, "Ruta al binario de Chrome (vacío = autodetección)")
	fs.IntVar(&cfg.TimeoutS, "timeout", cfg.TimeoutS, "Timeout del run completo en segundos (0 = sin timeout)")
	fs.BoolVarP(&cfg.Quiet, "quiet", "q", cfg.Quiet, "Modo silencioso (sin UI visual)")
	fs.BoolVar(&cfg.Raw, "raw", cfg.Raw, "Salida raw en líneas de log (para CI y pipes)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Formato del modo raw: text | json")
	fs.BoolVar(&cfg.ReportOff, "no-report", cfg.ReportOff, "No escribir el reporte JSON del run")
	fs.BoolVar(&cfg.ReportStdout, "report-stdout", cfg.ReportStdout, "Volcar el reporte JSON también a stdout")
	fs.BoolVar(&cfg.TableOff, "no-table", cfg.TableOff, "No renderizar la tabla resumen")
	fs.BoolVar(&cfg.ListModules, "list", false, "Listar módulos registrados y salir")
	fs.BoolVar(&cfg.PrintVersion, "version", false, "Imprimir versión y salir")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() > 0 {
		cfg.Module = fs.Arg(0)
	}
	return nil
}

func normalize(c *Config) {
	c.Module = strings.TrimSpace(c.Module)
	if c.TimeoutS < 0 {
		c.TimeoutS = 0
	}
	if c.OutputDir == "" {
		c.OutputDir = "docs/images"
	}
	if c.LogFormat != "json" {
		c.LogFormat = "text"
	}
}

// ToJSON serializa la configuración a JSON (útil para debugging).
func (c Config) ToJSON() (string, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Timeout devuelve un time.Duration útil si prefieres trabajar con duración.
func (c Config) Timeout() time.Duration {
	if c.TimeoutS <= 0 {
		return 0
	}
	return time.Duration(c.TimeoutS) * time.Second
}

// Helpers

func getenv(k, def string) string {
	if v, ok := os.LookupEnv(k); ok {
		return v
	}
	return def
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "t", "true", "y", "yes", "on":
		return true
	default:
		return false
	}
}

func parseInt(v string, def int) int {
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return i
}
