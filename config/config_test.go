package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config fixture: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
concurrency: 2
retry:
  max_attempts: 5
  base_delay_ms: 250
  max_delay_ms: 4000
browser:
  headless: false
  page_wait_ms: 1500
limit: 7
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Concurrency != 2 {
		t.Errorf("Concurrency = %d, want 2", cfg.Concurrency)
	}
	if cfg.Retry.MaxAttempts != 5 {
		t.Errorf("Retry.MaxAttempts = %d, want 5", cfg.Retry.MaxAttempts)
	}
	if cfg.Retry.BaseDelayMs != 250 {
		t.Errorf("Retry.BaseDelayMs = %d, want 250", cfg.Retry.BaseDelayMs)
	}
	if cfg.Retry.MaxDelayMs != 4000 {
		t.Errorf("Retry.MaxDelayMs = %d, want 4000", cfg.Retry.MaxDelayMs)
	}
	if cfg.Browser.Headless {
		t.Error("Browser.Headless = true, want false")
	}
	if cfg.Limit != 7 {
		t.Errorf("Limit = %d, want 7", cfg.Limit)
	}
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "concurrency: 4\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Concurrency != 4 {
		t.Errorf("Concurrency = %d, want 4", cfg.Concurrency)
	}
	defaults := DefaultConfig()
	if cfg.Retry.MaxAttempts != defaults.Retry.MaxAttempts {
		t.Errorf("Retry.MaxAttempts = %d, want default %d", cfg.Retry.MaxAttempts, defaults.Retry.MaxAttempts)
	}
	if cfg.Limit != defaults.Limit {
		t.Errorf("Limit = %d, want default %d", cfg.Limit, defaults.Limit)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero concurrency", "concurrency: 0\n"},
		{"negative concurrency", "concurrency: -2\n"},
		{"zero attempts", "retry:\n  max_attempts: 0\n"},
		{"not yaml", "{{{\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			if _, err := LoadConfig(path); err == nil {
				t.Error("LoadConfig() = nil error, want rejection")
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("LoadConfig() = nil error for missing file, want error")
	}
}
