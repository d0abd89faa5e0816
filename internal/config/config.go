// Package config loads lvmst CLI settings from YAML with environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmst/matrix"
	"github.com/katalvlaran/lvmst/prim_kruskal"
)

// Output formats understood by the build command.
const (
	FormatMatrix = "matrix" // CSV adjacency matrix, same shape as the input
	FormatEdges  = "edges"  // one "from,to,weight" line per tree edge
)

// Environment variables consulted after the file is read.
const (
	EnvMethod   = "LVMST_METHOD"
	EnvRoot     = "LVMST_ROOT"
	EnvEpsilon  = "LVMST_EPSILON"
	EnvFormat   = "LVMST_FORMAT"
	EnvLogLevel = "LVMST_LOG_LEVEL"
)

// ErrInvalidConfig reports a setting outside its allowed values.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config holds all lvmst configuration.
type Config struct {
	// MST settings
	Method  string  `yaml:"method"`  // prim, kruskal
	Root    int     `yaml:"root"`    // Prim start vertex
	Epsilon float64 `yaml:"epsilon"` // symmetry tolerance

	// Output
	Format string `yaml:"format"` // matrix, edges

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level    string `yaml:"level"`    // debug, info, warn, error
	Encoding string `yaml:"encoding"` // json, console
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Method:  prim_kruskal.MethodPrim,
		Root:    prim_kruskal.DefaultRoot,
		Epsilon: matrix.DefaultEpsilon,
		Format:  FormatMatrix,
		Logging: LoggingConfig{
			Level:    "info",
			Encoding: "console",
		},
	}
}

// Load reads configuration from a YAML file on top of the defaults.
// An empty path or a missing file yields the defaults; environment
// overrides apply in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// defaults
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvMethod); v != "" {
		c.Method = v
	}
	if v := os.Getenv(EnvFormat); v != "" {
		c.Format = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvRoot); v != "" {
		root, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvRoot, v, ErrInvalidConfig)
		}
		c.Root = root
	}
	if v := os.Getenv(EnvEpsilon); v != "" {
		eps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvEpsilon, v, ErrInvalidConfig)
		}
		c.Epsilon = eps
	}

	return nil
}

// Validate checks enumerated and numeric settings.
func (c *Config) Validate() error {
	switch c.Method {
	case prim_kruskal.MethodPrim, prim_kruskal.MethodKruskal:
	default:
		return fmt.Errorf("method %q: %w", c.Method, ErrInvalidConfig)
	}
	switch c.Format {
	case FormatMatrix, FormatEdges:
	default:
		return fmt.Errorf("format %q: %w", c.Format, ErrInvalidConfig)
	}
	if c.Root < 0 {
		return fmt.Errorf("root %d: %w", c.Root, ErrInvalidConfig)
	}
	if err := matrix.ValidateEpsilon(c.Epsilon); err != nil {
		return fmt.Errorf("epsilon: %w: %w", ErrInvalidConfig, err)
	}
	if _, err := c.Logging.ZapLevel(); err != nil {
		return err
	}
	switch c.Logging.Encoding {
	case "json", "console":
	default:
		return fmt.Errorf("logging.encoding %q: %w", c.Logging.Encoding, ErrInvalidConfig)
	}

	return nil
}

// ZapLevel parses Level into a zapcore.Level.
func (l LoggingConfig) ZapLevel() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(l.Level)
	if err != nil {
		return lvl, fmt.Errorf("logging.level %q: %w", l.Level, ErrInvalidConfig)
	}

	return lvl, nil
}
