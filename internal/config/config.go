package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/atomicstack/estate-finder/internal/app"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config captures runtime configuration for the terminal front-end.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

// ServerConfig captures runtime configuration for the static host.
type ServerConfig struct {
	Root    string
	Port    int
	Logging Logging
	Flags   map[string]string
	Args    []string
}

// Addr is the listen address for the configured port.
func (c ServerConfig) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envDataPath   = "ESTATE_FINDER_DATA"
	envDistrict   = "ESTATE_FINDER_DISTRICT"
	envWidth      = "ESTATE_FINDER_WIDTH"
	envHeight     = "ESTATE_FINDER_HEIGHT"
	envShowFooter = "ESTATE_FINDER_FOOTER"
	envTrace      = "ESTATE_FINDER_TRACE"
	envLogFile    = "ESTATE_FINDER_LOG_FILE"
	envPort       = "PORT"
	envServerRoot = "ESTATE_SERVER_ROOT"
)

const (
	DefaultDataPath = "data.js"
	DefaultDistrict = "罗湖区"
	DefaultPort     = 3000
	DefaultRoot     = "."
	dotenvFile      = ".env"
)

// Load parses configuration from CLI arguments, the environment, and an
// optional .env file in the working directory.
func Load() (Config, error) {
	environ, err := withDotenv(dotenvFile, os.Environ())
	if err != nil {
		return Config{}, err
	}
	return LoadArgs(os.Args[1:], environ)
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := pflag.NewFlagSet("estate-finder", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	data := fs.String("data", envOrDefault(env, envDataPath, DefaultDataPath), "dataset file (.json, .jsonc, .yaml, .yml, or data.js)")
	district := fs.String("district", envOrDefault(env, envDistrict, DefaultDistrict), "district selected at startup")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			DataPath:   *data,
			District:   *district,
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"data":     *data,
			"district": *district,
			"width":    strconv.Itoa(*width),
			"height":   strconv.Itoa(*height),
			"footer":   strconv.FormatBool(*footer),
			"trace":    strconv.FormatBool(*trace),
			"logFile":  *logFile,
		},
		Args: append([]string(nil), args...),
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadServer parses static host configuration the same way Load does.
func LoadServer() (ServerConfig, error) {
	environ, err := withDotenv(dotenvFile, os.Environ())
	if err != nil {
		return ServerConfig{}, err
	}
	return LoadServerArgs(os.Args[1:], environ)
}

// LoadServerArgs parses static host flags with PORT and ESTATE_SERVER_ROOT
// fallbacks.
func LoadServerArgs(args []string, environ []string) (ServerConfig, error) {
	env := parseEnv(environ)

	fs := pflag.NewFlagSet("estate-server", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	port := fs.IntP("port", "p", envOrInt(env, envPort, DefaultPort), "TCP port to listen on")
	root := fs.String("root", envOrDefault(env, envServerRoot, DefaultRoot), "directory holding index.html and static assets")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return ServerConfig{}, err
	}

	cfg := ServerConfig{
		Root: *root,
		Port: *port,
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"port":    strconv.Itoa(*port),
			"root":    *root,
			"trace":   strconv.FormatBool(*trace),
			"logFile": *logFile,
		},
		Args: append([]string(nil), args...),
	}
	if err := ValidateServer(cfg); err != nil {
		return ServerConfig{}, err
	}
	return cfg, nil
}

// withDotenv prepends the entries of a dotenv file to environ so that real
// environment variables win. A missing file is not an error.
func withDotenv(path string, environ []string) ([]string, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return environ, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	merged := make([]string, 0, len(values)+len(environ))
	for _, k := range keys {
		merged = append(merged, k+"="+values[k])
	}
	return append(merged, environ...), nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// MustLoadServer returns static host configuration or exits.
func MustLoadServer() ServerConfig {
	cfg, err := LoadServer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures the terminal front-end configuration is usable.
func Validate(cfg Config) error {
	if cfg.App.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width)
	}
	if cfg.App.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height)
	}
	return nil
}

// ValidateServer ensures the static host configuration is usable.
func ValidateServer(cfg ServerConfig) error {
	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535 (got %d)", cfg.Port)
	}
	if strings.TrimSpace(cfg.Root) == "" {
		return errors.New("root directory must not be empty")
	}
	return nil
}
