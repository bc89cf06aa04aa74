package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-layout/pkg/logging"
	"github.com/dd0wney/cluso-layout/pkg/visualization"
)

// Format identifies a configuration file syntax
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ErrUnsupportedFormat is returned for config files with an unknown extension
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Config holds layout settings read from a file and the environment
type Config struct {
	// Canvas size in layout units
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`

	// Padding keeps nodes away from the canvas border
	Padding float64 `yaml:"padding" toml:"padding"`

	// Algorithm is one of auto, force, hierarchical, circular, grid, community
	Algorithm string `yaml:"algorithm" toml:"algorithm"`

	// Iterations bounds the force simulation
	Iterations int `yaml:"iterations" toml:"iterations"`

	// MinSpacing is the guaranteed distance between any two nodes
	MinSpacing float64 `yaml:"min_spacing" toml:"min_spacing"`

	Seed    uint64 `yaml:"seed" toml:"seed"`
	Workers int    `yaml:"workers" toml:"workers"`

	// LogLevel is debug, info, warn or error (default: info, or LOG_LEVEL)
	LogLevel string `yaml:"log_level" toml:"log_level"`
}

// Default returns the configuration matching visualization.DefaultLayoutOptions
func Default() *Config {
	opts := visualization.DefaultLayoutOptions()
	return &Config{
		Width:      opts.Width,
		Height:     opts.Height,
		Padding:    opts.Padding,
		Algorithm:  string(opts.Algorithm),
		Iterations: opts.Iterations,
		MinSpacing: opts.MinSpacing,
		Seed:       opts.Seed,
		Workers:    opts.Workers,
		LogLevel:   getEnvOrDefault("LOG_LEVEL", "info"),
	}
}

// Load reads a .yaml, .yml or .toml file. Keys missing from the file keep
// their defaults; unknown keys are rejected.
func Load(path string) (*Config, error) {
	format, err := formatFor(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses configuration in the given format on top of the defaults
func Decode(r io.Reader, format Format) (*Config, error) {
	cfg := Default()

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(cfg)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown config key %q", undecoded[0].String())
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if _, err := cfg.Level(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func formatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// LayoutOptions converts the configuration into validated layout options
func (c *Config) LayoutOptions() (visualization.LayoutOptions, error) {
	algorithm, err := visualization.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return visualization.LayoutOptions{}, err
	}

	opts := visualization.LayoutOptions{
		Width:      c.Width,
		Height:     c.Height,
		Padding:    c.Padding,
		Algorithm:  algorithm,
		Iterations: c.Iterations,
		MinSpacing: c.MinSpacing,
		Seed:       c.Seed,
		Workers:    c.Workers,
	}
	if err := opts.Validate(); err != nil {
		return visualization.LayoutOptions{}, err
	}
	return opts, nil
}

// Level parses LogLevel. A name ParseLevel does not know, whether it came
// from the file or from LOG_LEVEL, is an error wrapping logging.ErrUnknownLevel.
func (c *Config) Level() (logging.Level, error) {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return level, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
