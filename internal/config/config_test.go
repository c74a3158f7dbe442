package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.BackendURL != "http://localhost:5000" {
		t.Errorf("Expected default backend URL, got %q", cfg.BackendURL)
	}
	if cfg.PollInterval != 2*time.Second {
		t.Errorf("Expected 2s poll interval, got %s", cfg.PollInterval)
	}
	if cfg.RequestTimeout != 0 {
		t.Errorf("Expected no request timeout by default, got %s", cfg.RequestTimeout)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", `
backend_url: http://10.0.0.5:8080
poll_interval: 500ms
request_timeout: 3s
log_dir: /tmp/idswatch-logs
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.BackendURL != "http://10.0.0.5:8080" {
		t.Errorf("Expected backend URL from file, got %q", cfg.BackendURL)
	}
	if cfg.PollInterval != 500*time.Millisecond {
		t.Errorf("Expected 500ms, got %s", cfg.PollInterval)
	}
	if cfg.RequestTimeout != 3*time.Second {
		t.Errorf("Expected 3s, got %s", cfg.RequestTimeout)
	}
	if cfg.LogDir != "/tmp/idswatch-logs" {
		t.Errorf("Expected log dir from file, got %q", cfg.LogDir)
	}
	if cfg.HistoryRetention != time.Hour {
		t.Errorf("Expected default retention to survive, got %s", cfg.HistoryRetention)
	}
}

func TestEnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", "backend_url: http://from-file:5000\n")
	t.Setenv("IDSWATCH_BACKEND_URL", "http://from-env:5000")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.BackendURL != "http://from-env:5000" {
		t.Errorf("Expected environment to win, got %q", cfg.BackendURL)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Expected error for missing explicit config file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"bad scheme", func(c *Config) { c.BackendURL = "ftp://host" }, "scheme"},
		{"no host", func(c *Config) { c.BackendURL = "http://" }, "missing host"},
		{"zero interval", func(c *Config) { c.PollInterval = 0 }, "poll_interval"},
		{"negative timeout", func(c *Config) { c.RequestTimeout = -time.Second }, "request_timeout"},
		{"zero retention", func(c *Config) { c.HistoryRetention = 0 }, "history_retention"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}

	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("Defaults should validate, got %v", err)
	}
}

func TestWriteDefaultRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load of written default failed: %v", err)
	}
	def := DefaultConfig()
	if cfg.BackendURL != def.BackendURL || cfg.PollInterval != def.PollInterval {
		t.Errorf("Round trip mismatch: got %+v, want %+v", cfg, def)
	}

	if err := WriteDefault(path); err == nil {
		t.Error("Expected WriteDefault to refuse overwriting an existing file")
	}
}
