// Package config provides configuration parsing for sysbar.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the sysbar configuration. Every field has a working
// default; the file is optional.
type Config struct {
	// Monitor holds sampling cadence settings.
	Monitor MonitorConfig `yaml:"monitor"`

	// Log holds logging settings.
	Log LogConfig `yaml:"log"`

	// Theme holds display settings.
	Theme ThemeConfig `yaml:"theme"`
}

// MonitorConfig holds sampling cadence settings as duration strings.
type MonitorConfig struct {
	// SampleInterval is the cadence of the periodic sampler (e.g. "2s").
	SampleInterval string `yaml:"sample_interval"`

	// LatencyInterval is the cadence of the remote-latency probe (e.g. "30s").
	LatencyInterval string `yaml:"latency_interval"`

	// ProbePause separates the two remote round-trip probes (e.g. "10ms").
	ProbePause string `yaml:"probe_pause"`

	// ProbePath is the path the remote probe stats.
	ProbePath string `yaml:"probe_path"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`

	// File is the log output path; empty means stderr.
	File string `yaml:"file"`
}

// ThemeConfig holds display settings.
type ThemeConfig struct {
	// Accent is the highlight color as a hex string (e.g. "#3B82F6").
	// Empty keeps the built-in accent.
	Accent string `yaml:"accent"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Monitor: MonitorConfig{
			SampleInterval:  "2s",
			LatencyInterval: "30s",
			ProbePause:      "10ms",
			ProbePath:       "/",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns the default configuration file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "sysbar", "config.yaml")
}

// LoadConfig reads a configuration file. A missing file or an empty path
// yields the defaults; only unreadable or unparsable files fail.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks duration fields for parseability and positivity.
func (c *Config) Validate() error {
	for _, field := range []struct {
		name  string
		value string
	}{
		{"monitor.sample_interval", c.Monitor.SampleInterval},
		{"monitor.latency_interval", c.Monitor.LatencyInterval},
		{"monitor.probe_pause", c.Monitor.ProbePause},
	} {
		if field.value == "" {
			continue
		}
		d, err := time.ParseDuration(field.value)
		if err != nil {
			return fmt.Errorf("%s: %w", field.name, err)
		}
		if d <= 0 {
			return fmt.Errorf("%s must be positive, got %s", field.name, field.value)
		}
	}

	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn, or error, got %q", c.Log.Level)
	}

	if a := c.Theme.Accent; a != "" {
		if !strings.HasPrefix(a, "#") || (len(a) != 4 && len(a) != 7) {
			return fmt.Errorf("theme.accent must be a hex color like #3B82F6, got %q", a)
		}
	}

	return nil
}

// SampleInterval returns the parsed sampler cadence, falling back to the
// default on empty or invalid values.
func (c *Config) SampleInterval() time.Duration {
	return durationOr(c.Monitor.SampleInterval, 2*time.Second)
}

// LatencyInterval returns the parsed latency-probe cadence.
func (c *Config) LatencyInterval() time.Duration {
	return durationOr(c.Monitor.LatencyInterval, 30*time.Second)
}

// ProbePause returns the parsed pause between remote probes.
func (c *Config) ProbePause() time.Duration {
	return durationOr(c.Monitor.ProbePause, 10*time.Millisecond)
}

// ProbePath returns the remote probe target path.
func (c *Config) ProbePath() string {
	if c.Monitor.ProbePath == "" {
		return "/"
	}
	return c.Monitor.ProbePath
}

// SlogLevel maps the configured level string to a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch c.Log.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func durationOr(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
