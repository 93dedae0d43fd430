// Package config loads the grl command configuration from a single YAML
// file. There is no search path: the file is named by --config or by the
// GRL_CONFIG environment variable, and missing keys keep their defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cancanxinxin/grl"
	"github.com/cancanxinxin/grl/pkg/framelog"
)

// EnvConfig names the environment variable consulted when no path is given.
const EnvConfig = "GRL_CONFIG"

type Config struct {
	Encoder  EncoderConfig  `yaml:"encoder"`
	Names    NamesConfig    `yaml:"names"`
	Log      LogConfig      `yaml:"log"`
	FrameLog FrameLogConfig `yaml:"framelog"`
}

type EncoderConfig struct {
	InitialSize         int  `yaml:"initial_size"`
	LegacyZeroTimestamp bool `yaml:"legacy_zero_timestamp"`
	// Workers bounds concurrent frame encoding; 0 means one per frame.
	Workers int `yaml:"workers"`
}

type NamesConfig struct {
	// Geometries maps a geometry ID to the marker name written for it.
	// Markers with an unlisted geometry are named "<id>_<geometry>".
	Geometries map[uint32]string `yaml:"geometries"`
}

type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

type FrameLogConfig struct {
	Compression string `yaml:"compression"` // none, zstd, lz4
	Device      string `yaml:"device"`
}

func Default() *Config {
	return &Config{
		Encoder: EncoderConfig{
			InitialSize: grl.DefaultInitialSize,
			Workers:     4,
		},
		Log:      LogConfig{Level: "info"},
		FrameLog: FrameLogConfig{Compression: "zstd"},
	}
}

// Load reads path, or the file named by GRL_CONFIG when path is empty. With
// neither set it returns the validated defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path == "" {
		cfg := Default()
		return cfg, cfg.Validate()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result. Unknown
// keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error
	if c.Encoder.InitialSize < 0 {
		errs = append(errs, fmt.Errorf("encoder.initial_size must not be negative, got %d", c.Encoder.InitialSize))
	}
	if c.Encoder.Workers < 0 {
		errs = append(errs, fmt.Errorf("encoder.workers must not be negative, got %d", c.Encoder.Workers))
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	if _, err := framelog.ParseCompression(c.FrameLog.Compression); err != nil {
		errs = append(errs, fmt.Errorf("framelog.compression: %w", err))
	}
	return errors.Join(errs...)
}

// EncoderOptions builds encoder options. Configured geometry names take
// precedence over ID-derived names.
func (c *Config) EncoderOptions(logger *slog.Logger) grl.Options {
	var names grl.NameResolver = grl.IDNames{}
	if len(c.Names.Geometries) > 0 {
		names = grl.Chain{grl.GeometryNames(c.Names.Geometries), grl.IDNames{}}
	}
	return grl.Options{
		InitialSize:         c.Encoder.InitialSize,
		LegacyZeroTimestamp: c.Encoder.LegacyZeroTimestamp,
		Names:               names,
		Logger:              logger,
	}
}

// FrameLogOptions builds frame log writer options. Call after Validate.
func (c *Config) FrameLogOptions() framelog.Options {
	comp, _ := framelog.ParseCompression(c.FrameLog.Compression)
	return framelog.Options{Compression: comp, Device: c.FrameLog.Device}
}

// SlogLevel returns the configured log level. Call after Validate.
func (c *Config) SlogLevel() slog.Level {
	lvl, _ := parseLevel(c.Log.Level)
	return lvl
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("log.level must be one of debug, info, warn, error, got %q", s)
	}
}
