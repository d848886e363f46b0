package scribe

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the configuration file.
const (
	EnvNotesFile = "SCRIBE_NOTES_FILE"
	EnvHomeFile  = "SCRIBE_HOME_FILE"
	EnvLogLevel  = "SCRIBE_LOG_LEVEL"
	EnvReadOnly  = "SCRIBE_READ_ONLY"
)

// DefaultHomeFile is the auxiliary text shown by the home view.
const DefaultHomeFile = "home.txt"

// Config is the file/environment configuration of the application.
type Config struct {
	NotesFile string `yaml:"notes_file"`
	HomeFile  string `yaml:"home_file"`
	LogLevel  string `yaml:"log_level"`
	ReadOnly  bool   `yaml:"read_only"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		NotesFile: "notes.json",
		HomeFile:  DefaultHomeFile,
		LogLevel:  "info",
	}
}

// LoadConfig builds the configuration from defaults, the YAML file at path
// (optional; "" skips it) and the environment. A .env file next to the
// configuration file (or in the working directory) is loaded first;
// variables already set in the environment take precedence over it.
// Relative file paths in the YAML file are resolved against its directory.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	envDir := "."
	if path != "" {
		envDir = filepath.Dir(path)
	}
	if err := godotenv.Load(filepath.Join(envDir, ".env")); err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("failed to load .env: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config: %w", err)
		}

		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return cfg, fmt.Errorf("invalid config %s: %w", path, err)
		}

		base := filepath.Dir(path)
		cfg.NotesFile = resolveRelative(base, cfg.NotesFile)
		cfg.HomeFile = resolveRelative(base, cfg.HomeFile)
	}

	if v := os.Getenv(EnvNotesFile); v != "" {
		cfg.NotesFile = v
	}
	if v := os.Getenv(EnvHomeFile); v != "" {
		cfg.HomeFile = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvReadOnly); v != "" {
		cfg.ReadOnly = v == "1" || strings.EqualFold(v, "true")
	}

	if _, err := ParseLogLevel(cfg.LogLevel); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Options converts the configuration into workspace options.
func (c Config) Options() []Option {
	return []Option{
		WithPath(c.NotesFile),
		WithReadOnly(c.ReadOnly),
	}
}

// ParseLogLevel maps a level name (debug, info, warn, error) to a slog.Level.
func ParseLogLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return level, nil
}

func resolveRelative(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}
