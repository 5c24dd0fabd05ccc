// Package config loads the optional lvknot.yaml project file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output formats understood by the CLI.
const (
	FormatText    = "text"
	FormatMermaid = "mermaid"
	FormatYAML    = "yaml"
)

// ErrInvalid indicates a config value outside its allowed set.
var ErrInvalid = errors.New("config: invalid value")

// Config holds settings loaded from lvknot.yaml. Zero fields mean "use the
// default".
type Config struct {
	ParallelDepth int    `yaml:"parallelDepth,omitempty"`
	LogLevel      string `yaml:"logLevel,omitempty"`
	Format        string `yaml:"format,omitempty"`
}

// Load reads lvknot.yaml or lvknot.yml from dir. It returns a zero-value
// config, not an error, if neither file exists.
func Load(dir string) (*Config, error) {
	for _, name := range []string{"lvknot.yaml", "lvknot.yml"} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		var cfg Config
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return &cfg, nil
	}
	return &Config{}, nil
}

// Validate checks every non-zero field.
func (c *Config) Validate() error {
	if c.ParallelDepth < 0 {
		return fmt.Errorf("%w: parallelDepth %d is negative", ErrInvalid, c.ParallelDepth)
	}
	if c.LogLevel != "" {
		if _, err := ParseLevel(c.LogLevel); err != nil {
			return err
		}
	}
	switch c.Format {
	case "", FormatText, FormatMermaid, FormatYAML:
	default:
		return fmt.Errorf("%w: format %q, want text, mermaid or yaml", ErrInvalid, c.Format)
	}
	return nil
}

// ParseLevel maps "debug", "info", "warn" and "error" to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: log level %q", ErrInvalid, s)
	}
}
