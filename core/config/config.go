// File: config.go
// Title: Configuration Management Implementation
// Description: Implements the Config type for the dynstr command-line tools,
//              loading settings from TOML and YAML files with environment
//              overrides, defaults, and validation.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation with TOML/YAML support

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/msto63/dynstr/buffer"
	dserror "github.com/msto63/dynstr/core/error"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// EnvPrefix is the prefix for environment variable overrides,
// e.g. DYNSTR_LOG_LEVEL overrides log.level.
const EnvPrefix = "DYNSTR"

// BufferConfig holds settings for buffer construction and stream reads.
// The 32 MiB growth ceiling is a compile-time constant of the buffer
// package and deliberately not configurable here.
type BufferConfig struct {
	// InitialCapacity is the capacity new buffers are created with
	InitialCapacity int `toml:"initial_capacity" yaml:"initial_capacity"`

	// MaxReadSize bounds a single dynamic read from a stream
	MaxReadSize int `toml:"max_read_size" yaml:"max_read_size"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// Config represents the complete tool configuration
type Config struct {
	Buffer BufferConfig `toml:"buffer" yaml:"buffer"`
	Log    LogConfig    `toml:"log" yaml:"log"`
}

// Default returns a configuration with all defaults applied
func Default() *Config {
	return &Config{
		Buffer: BufferConfig{
			InitialCapacity: buffer.MinCapacity,
			MaxReadSize:     buffer.ChunkSize,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from a file, auto-detecting the format from the
// extension. Missing settings keep their defaults; environment variables
// override file values.
func Load(filePath string) (*Config, error) {
	return LoadWithFormat(filePath, FormatAuto)
}

// LoadWithFormat loads configuration from a file in the given format
func LoadWithFormat(filePath string, format Format) (*Config, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, dserror.New("config file path cannot be empty").
			WithCode(dserror.CodeMissingConfig).
			WithOperation("config.Load")
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, dserror.New(fmt.Sprintf("config file not found: %s", filePath)).
			WithCode(dserror.CodeNotFound).
			WithOperation("config.Load").
			WithDetail("filePath", filePath)
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, dserror.Wrap(err, "failed to read config file").
			WithCode(dserror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("filePath", filePath)
	}

	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	cfg, err := Parse(content, format)
	if err != nil {
		return nil, dserror.Wrap(err, "failed to parse config file").
			WithCode(dserror.CodeInvalidConfig).
			WithOperation("config.Load").
			WithDetail("filePath", filePath).
			WithDetail("format", format.String())
	}
	return cfg, nil
}

// Parse parses configuration content in the given format on top of the
// defaults, applies environment overrides, and validates the result.
func Parse(content []byte, format Format) (*Config, error) {
	cfg := Default()

	switch format {
	case FormatTOML, FormatAuto:
		if err := toml.Unmarshal(content, cfg); err != nil {
			return nil, dserror.Wrap(err, "TOML parse error").
				WithCode(dserror.CodeInvalidConfig).
				WithOperation("config.Parse")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return nil, dserror.Wrap(err, "YAML parse error").
				WithCode(dserror.CodeInvalidConfig).
				WithOperation("config.Parse")
		}
	default:
		return nil, dserror.New(fmt.Sprintf("unsupported format: %s", format)).
			WithCode(dserror.CodeInvalidConfig).
			WithOperation("config.Parse").
			WithDetail("format", format.String())
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// detectFormat determines the configuration format from the file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// applyEnvOverrides overrides file values with DYNSTR_* environment
// variables where present.
func (c *Config) applyEnvOverrides() {
	if v := envValue("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := envValue("LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
	if v := envValue("BUFFER_INITIAL_CAPACITY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Buffer.InitialCapacity = n
		}
	}
	if v := envValue("BUFFER_MAX_READ_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Buffer.MaxReadSize = n
		}
	}
}

func envValue(key string) string {
	return os.Getenv(EnvPrefix + "_" + key)
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	if c.Buffer.InitialCapacity <= 0 || c.Buffer.InitialCapacity > buffer.MaxStringSize {
		return dserror.New("buffer.initial_capacity out of range").
			WithCode(dserror.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("initial_capacity", c.Buffer.InitialCapacity).
			WithDetail("max", buffer.MaxStringSize)
	}
	if c.Buffer.MaxReadSize <= 0 || c.Buffer.MaxReadSize > buffer.MaxStringSize {
		return dserror.New("buffer.max_read_size out of range").
			WithCode(dserror.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("max_read_size", c.Buffer.MaxReadSize).
			WithDetail("max", buffer.MaxStringSize)
	}

	switch strings.ToLower(c.Log.Level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return dserror.New("log.level is not a known level").
			WithCode(dserror.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("level", c.Log.Level)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text", "console":
	default:
		return dserror.New("log.format is not a known format").
			WithCode(dserror.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("format", c.Log.Format)
	}

	return nil
}
