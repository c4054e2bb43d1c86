package config

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/vango-dev/dropdown/internal/errors"
)

// ConfigFileName is the name of the configuration file.
const ConfigFileName = "dropdown.json"

// EnvFileName is the optional environment file next to the configuration.
const EnvFileName = ".env"

// Default values.
const (
	DefaultPort      = 3000
	DefaultHost      = "localhost"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
	DefaultPageTTL   = "2m"
)

// Environment overrides, applied after the file is read.
const (
	EnvPort     = "DROPDOWN_PORT"
	EnvHost     = "DROPDOWN_HOST"
	EnvLogLevel = "DROPDOWN_LOG_LEVEL"
)

// Config is the demo server configuration stored in dropdown.json.
type Config struct {
	// Port is the HTTP port (default: 3000).
	Port int `json:"port,omitempty"`

	// Host is the listen host (default: localhost).
	Host string `json:"host,omitempty"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `json:"logLevel,omitempty"`

	// LogFormat is text or json.
	LogFormat string `json:"logFormat,omitempty"`

	// LogFile, when set, receives the log instead of stderr. The file is
	// rotated.
	LogFile string `json:"logFile,omitempty"`

	// PageTTL is how long a rendered page waits for its client, e.g. "2m".
	PageTTL string `json:"pageTTL,omitempty"`

	// DevMode disables client caching and the websocket origin check.
	DevMode bool `json:"devMode,omitempty"`

	// StyleSheets are linked from every page.
	StyleSheets []string `json:"styleSheets,omitempty"`

	// configPath is the path where the config was loaded from.
	configPath string
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Port:      DefaultPort,
		Host:      DefaultHost,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
		PageTTL:   DefaultPageTTL,
	}
}

// Load reads dropdown.json and .env from dir, applies environment
// overrides and validates the result. A missing dropdown.json or .env is
// not an error.
func Load(dir string) (*Config, error) {
	if err := LoadEnv(filepath.Join(dir, EnvFileName)); err != nil {
		return nil, err
	}

	cfg := New()
	if Exists(dir) {
		var err error
		if cfg, err = LoadFile(filepath.Join(dir, ConfigFileName)); err != nil {
			return nil, err
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("E100").
			WithDetail("Cannot read " + path).
			Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		e := errors.New("E101").
			WithDetail("Failed to parse " + ConfigFileName + ": " + err.Error()).
			WithSuggestion("Check that " + ConfigFileName + " is valid JSON")
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		switch {
		case stderrors.As(err, &syntaxErr):
			e = e.WithOffset(path, data, syntaxErr.Offset)
		case stderrors.As(err, &typeErr):
			e = e.WithOffset(path, data, typeErr.Offset)
		}
		return nil, e
	}

	cfg.configPath = path
	cfg.applyDefaults()
	return cfg, nil
}

// LoadEnv loads variables from an env file without overriding variables
// already set. A missing file is ignored.
func LoadEnv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return errors.New("E105").
			WithDetail("Failed to load " + path).
			Wrap(err)
	}
	return nil
}

// ApplyEnv overrides fields from the environment. lookup is usually
// os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvPort); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return errors.New("E106").
				WithDetail(EnvPort + "=" + v + " is not a number").
				Wrap(err)
		}
		c.Port = port
	}
	if v, ok := lookup(EnvHost); ok && v != "" {
		c.Host = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

func (c *Config) applyDefaults() {
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.Host == "" {
		c.Host = DefaultHost
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = DefaultLogFormat
	}
	if c.PageTTL == "" {
		c.PageTTL = DefaultPageTTL
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return errors.New("E102").
			WithDetail("Port " + strconv.Itoa(c.Port) + " is outside 1-65535")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return errors.New("E104").
			WithDetail("Unknown log format " + strconv.Quote(c.LogFormat)).
			WithSuggestion(`Use "text" or "json"`)
	}
	if _, err := c.TTL(); err != nil {
		return err
	}
	return nil
}

// Address returns the listen address.
func (c *Config) Address() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

// URL returns the URL of the demo server.
func (c *Config) URL() string {
	return "http://" + c.Address()
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, errors.New("E103").
		WithDetail("Unknown log level " + strconv.Quote(c.LogLevel)).
		WithSuggestion(`Use one of "debug", "info", "warn" or "error"`)
}

// TTL parses PageTTL.
func (c *Config) TTL() (time.Duration, error) {
	d, err := time.ParseDuration(c.PageTTL)
	if err != nil || d <= 0 {
		e := errors.New("E107").
			WithDetail("Cannot use " + strconv.Quote(c.PageTTL) + " as page TTL")
		if err != nil {
			e = e.Wrap(err)
		}
		return 0, e
	}
	return d, nil
}

// Logger builds the logger described by the config. The returned closer
// flushes and closes the log file, if any.
func (c *Config) Logger(stderr io.Writer) (*slog.Logger, io.Closer, error) {
	level, err := c.Level()
	if err != nil {
		return nil, nil, err
	}

	var out io.Writer = stderr
	var closer io.Closer = nopCloser{}
	if c.LogFile != "" {
		file := &lumberjack.Logger{
			Filename:   c.LogFile,
			MaxSize:    15, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		out, closer = file, file
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if strings.ToLower(c.LogFormat) == "json" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}
	return slog.New(handler), closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Exists reports whether dir contains a dropdown.json.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}
