package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vango-dev/dropdown/internal/errors"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Port != DefaultPort {
		t.Errorf("Port = %d, want %d", cfg.Port, DefaultPort)
	}
	if cfg.Host != DefaultHost {
		t.Errorf("Host = %q, want %q", cfg.Host, DefaultHost)
	}
	if cfg.LogLevel != DefaultLogLevel || cfg.LogFormat != DefaultLogFormat {
		t.Errorf("log = %q/%q, want %q/%q", cfg.LogLevel, cfg.LogFormat, DefaultLogLevel, DefaultLogFormat)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad(t *testing.T) {
	t.Setenv(EnvPort, "")
	t.Setenv(EnvHost, "")
	t.Setenv(EnvLogLevel, "")

	t.Run("missing file uses defaults", func(t *testing.T) {
		cfg, err := Load(t.TempDir())
		if err != nil {
			t.Fatalf("Load error: %v", err)
		}
		if cfg.Address() != "localhost:3000" {
			t.Errorf("Address() = %q", cfg.Address())
		}
		if cfg.Path() != "" {
			t.Errorf("Path() = %q, want empty", cfg.Path())
		}
	})

	t.Run("file", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, ConfigFileName, `{
  "port": 8080,
  "host": "0.0.0.0",
  "logFormat": "json",
  "pageTTL": "30s",
  "devMode": true,
  "styleSheets": ["/app.css"]
}
`)
		cfg, err := Load(dir)
		if err != nil {
			t.Fatalf("Load error: %v", err)
		}
		if cfg.Port != 8080 || cfg.Host != "0.0.0.0" {
			t.Errorf("address = %s", cfg.Address())
		}
		if cfg.LogLevel != DefaultLogLevel {
			t.Errorf("LogLevel = %q, want default", cfg.LogLevel)
		}
		if !cfg.DevMode || len(cfg.StyleSheets) != 1 {
			t.Errorf("DevMode=%v StyleSheets=%v", cfg.DevMode, cfg.StyleSheets)
		}
		if ttl, _ := cfg.TTL(); ttl != 30*time.Second {
			t.Errorf("TTL() = %v, want 30s", ttl)
		}
		if cfg.Path() != filepath.Join(dir, ConfigFileName) {
			t.Errorf("Path() = %q", cfg.Path())
		}
	})
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ConfigFileName, `{"port": 8080, "host": "example.test"}`)
	t.Setenv(EnvPort, "9090")
	t.Setenv(EnvHost, "")
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Port)
	}
	if cfg.Host != "example.test" {
		t.Errorf("empty %s should not override, Host = %q", EnvHost, cfg.Host)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	const key = "DROPDOWN_TEST_ENV_FILE"
	dir := t.TempDir()
	writeFile(t, dir, EnvFileName, key+"=from-file\n"+EnvHost+"=0.0.0.0\n")
	t.Setenv(EnvPort, "")
	t.Setenv(EnvHost, "")
	t.Setenv(EnvLogLevel, "")
	// godotenv does not override variables already present, so start unset.
	os.Unsetenv(EnvHost)
	os.Unsetenv(key)
	t.Cleanup(func() { os.Unsetenv(key) })

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got := os.Getenv(key); got != "from-file" {
		t.Errorf("%s = %q, want from-file", key, got)
	}
	if cfg.Host != "0.0.0.0" {
		t.Errorf("Host = %q, want value from .env", cfg.Host)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Setenv(EnvPort, "")
	t.Setenv(EnvHost, "")
	t.Setenv(EnvLogLevel, "")

	tests := []struct {
		name string
		file string
		env  string
		code string
	}{
		{"syntax", `{"port": 80,}`, "", "E101"},
		{"type", `{"port": "eighty"}`, "", "E101"},
		{"port range", `{"port": 70000}`, "", "E102"},
		{"log level", `{"logLevel": "loud"}`, "", "E103"},
		{"log format", `{"logFormat": "xml"}`, "", "E104"},
		{"page ttl", `{"pageTTL": "soon"}`, "", "E107"},
		{"negative ttl", `{"pageTTL": "-1m"}`, "", "E107"},
		{"env port", `{}`, "abc", "E106"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, ConfigFileName, tt.file)
			t.Setenv(EnvPort, tt.env)

			_, err := Load(dir)
			if !errors.HasCode(err, tt.code) {
				t.Fatalf("Load error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestLoadFile_SyntaxErrorLocation(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ConfigFileName, "{\n  \"port\": 80,\n}\n")

	_, err := LoadFile(filepath.Join(dir, ConfigFileName))
	de := errors.FromError(err, "")
	if de == nil || de.Location == nil {
		t.Fatalf("expected located error, got %v", err)
	}
	if de.Location.Line != 3 {
		t.Errorf("Line = %d, want 3", de.Location.Line)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), ConfigFileName))
	if !errors.HasCode(err, "E100") {
		t.Errorf("LoadFile error = %v, want E100", err)
	}
}

func TestLoadEnv_Invalid(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, EnvFileName, "NOT VALID LINE WITH 'UNTERMINATED\n")

	if err := LoadEnv(filepath.Join(dir, EnvFileName)); !errors.HasCode(err, "E105") {
		t.Errorf("LoadEnv error = %v, want E105", err)
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"debug", "DEBUG"},
		{"INFO", "INFO"},
		{"", "INFO"},
		{"warning", "WARN"},
		{"error", "ERROR"},
	}
	for _, tt := range tests {
		cfg := &Config{LogLevel: tt.in}
		got, err := cfg.Level()
		if err != nil {
			t.Errorf("Level(%q) error: %v", tt.in, err)
			continue
		}
		if got.String() != tt.want {
			t.Errorf("Level(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestLogger(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := New()
		logger, closer, err := cfg.Logger(&buf)
		if err != nil {
			t.Fatal(err)
		}
		defer closer.Close()
		logger.Debug("hidden")
		logger.Info("shown", "key", "value")
		out := buf.String()
		if strings.Contains(out, "hidden") {
			t.Error("debug message logged at info level")
		}
		if !strings.Contains(out, "msg=shown key=value") {
			t.Errorf("text output = %q", out)
		}
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := New()
		cfg.LogFormat = "json"
		logger, closer, err := cfg.Logger(&buf)
		if err != nil {
			t.Fatal(err)
		}
		defer closer.Close()
		logger.Info("shown")
		if !strings.Contains(buf.String(), `"msg":"shown"`) {
			t.Errorf("json output = %q", buf.String())
		}
	})

	t.Run("file", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := New()
		cfg.LogFile = filepath.Join(t.TempDir(), "logs", "dropdown.log")
		logger, closer, err := cfg.Logger(&buf)
		if err != nil {
			t.Fatal(err)
		}
		logger.Info("to file")
		if err := closer.Close(); err != nil {
			t.Fatal(err)
		}
		if buf.Len() != 0 {
			t.Errorf("stderr got %q, want nothing", buf.String())
		}
		data, err := os.ReadFile(cfg.LogFile)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(data), "to file") {
			t.Errorf("log file = %q", data)
		}
	})
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	if Exists(dir) {
		t.Error("Exists() = true for empty dir")
	}
	writeFile(t, dir, ConfigFileName, "{}")
	if !Exists(dir) {
		t.Error("Exists() = false after writing config")
	}
}
