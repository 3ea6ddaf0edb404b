package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/ezauto/internal/constants"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Submit.Mode != constants.SubmitModeSimulate {
		t.Errorf("Submit.Mode = %q, want %q", cfg.Submit.Mode, constants.SubmitModeSimulate)
	}
	if cfg.Submit.Timeout != constants.DefaultSubmitTimeout {
		t.Errorf("Submit.Timeout = %s, want %s", cfg.Submit.Timeout, constants.DefaultSubmitTimeout)
	}
	if cfg.Dir != filepath.Dir(path) {
		t.Errorf("Dir = %q, want %q", cfg.Dir, filepath.Dir(path))
	}
	if cfg.Debug {
		t.Error("Debug should default to false")
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `debug: true
submit:
  mode: webhook
  webhook_url: https://hooks.example.com/enroll
  timeout: 3s
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.Debug {
		t.Error("Debug = false, want true")
	}
	if cfg.Submit.Mode != constants.SubmitModeWebhook {
		t.Errorf("Submit.Mode = %q", cfg.Submit.Mode)
	}
	if cfg.Submit.WebhookURL != "https://hooks.example.com/enroll" {
		t.Errorf("Submit.WebhookURL = %q", cfg.Submit.WebhookURL)
	}
	if cfg.Submit.Timeout != 3*time.Second {
		t.Errorf("Submit.Timeout = %s", cfg.Submit.Timeout)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	t.Setenv("EZAUTO_SUBMIT_MODE", "webhook")
	t.Setenv("EZAUTO_SUBMIT_WEBHOOK_URL", "http://localhost:8080/hook")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Submit.Mode != constants.SubmitModeWebhook {
		t.Errorf("Submit.Mode = %q, want webhook", cfg.Submit.Mode)
	}
	if cfg.Submit.WebhookURL != "http://localhost:8080/hook" {
		t.Errorf("Submit.WebhookURL = %q", cfg.Submit.WebhookURL)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name:    "webhook without url",
			data:    "submit:\n  mode: webhook\n",
			wantErr: "webhook_url is required",
		},
		{
			name:    "webhook with bad url",
			data:    "submit:\n  mode: webhook\n  webhook_url: ftp://example.com\n",
			wantErr: "must be an http(s) URL",
		},
		{
			name:    "unknown mode",
			data:    "submit:\n  mode: carrier-pigeon\n",
			wantErr: "invalid submit.mode",
		},
		{
			name:    "bad timeout",
			data:    "submit:\n  timeout: soon\n",
			wantErr: "invalid submit.timeout",
		},
		{
			name:    "negative timeout",
			data:    "submit:\n  timeout: -1s\n",
			wantErr: "must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.data), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	if err := WriteDefault(path, false); err != nil {
		t.Fatalf("WriteDefault() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() of default config error = %v", err)
	}
	if cfg.Submit.Mode != constants.SubmitModeSimulate {
		t.Errorf("Submit.Mode = %q", cfg.Submit.Mode)
	}

	if err := WriteDefault(path, false); err == nil {
		t.Error("WriteDefault() without force should refuse to overwrite")
	}
	if err := WriteDefault(path, true); err != nil {
		t.Errorf("WriteDefault() with force error = %v", err)
	}
}
