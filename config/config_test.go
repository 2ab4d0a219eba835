package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestLoadConfigMissingFile verifies defaults apply when no file exists.
func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if got := cfg.SampleInterval(); got != 2*time.Second {
		t.Errorf("SampleInterval() = %v, want 2s", got)
	}
	if got := cfg.LatencyInterval(); got != 30*time.Second {
		t.Errorf("LatencyInterval() = %v, want 30s", got)
	}
	if got := cfg.ProbePause(); got != 10*time.Millisecond {
		t.Errorf("ProbePause() = %v, want 10ms", got)
	}
	if got := cfg.ProbePath(); got != "/" {
		t.Errorf("ProbePath() = %q, want /", got)
	}
}

// TestLoadConfigFile verifies yaml fields override defaults.
func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `monitor:
  sample_interval: 5s
  latency_interval: 1m
  probe_path: /home
log:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if got := cfg.SampleInterval(); got != 5*time.Second {
		t.Errorf("SampleInterval() = %v, want 5s", got)
	}
	if got := cfg.LatencyInterval(); got != time.Minute {
		t.Errorf("LatencyInterval() = %v, want 1m", got)
	}
	if got := cfg.ProbePath(); got != "/home" {
		t.Errorf("ProbePath() = %q, want /home", got)
	}
	// Unset fields keep their defaults.
	if got := cfg.ProbePause(); got != 10*time.Millisecond {
		t.Errorf("ProbePause() = %v, want default 10ms", got)
	}
	if got := cfg.SlogLevel(); got != slog.LevelDebug {
		t.Errorf("SlogLevel() = %v, want debug", got)
	}
}

// TestLoadConfigBadYAML verifies parse errors propagate.
func TestLoadConfigBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("monitor: [not a map"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig accepted invalid yaml")
	}
}

// TestValidate covers duration and level validation.
func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
		},
		{
			name:    "unparsable interval",
			mutate:  func(c *Config) { c.Monitor.SampleInterval = "soon" },
			wantErr: true,
		},
		{
			name:    "negative interval",
			mutate:  func(c *Config) { c.Monitor.LatencyInterval = "-5s" },
			wantErr: true,
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.Log.Level = "loud" },
			wantErr: true,
		},
		{
			name:   "empty fields allowed",
			mutate: func(c *Config) { c.Monitor = MonitorConfig{} },
		},
		{
			name:   "hex accent",
			mutate: func(c *Config) { c.Theme.Accent = "#A78BFA" },
		},
		{
			name:    "bare accent color name",
			mutate:  func(c *Config) { c.Theme.Accent = "purple" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestDurationOrFallback verifies invalid strings fall back rather than
// propagating zero cadences into tickers.
func TestDurationOrFallback(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Monitor.SampleInterval = "bogus"
	if got := cfg.SampleInterval(); got != 2*time.Second {
		t.Errorf("SampleInterval() = %v, want fallback 2s", got)
	}
}
