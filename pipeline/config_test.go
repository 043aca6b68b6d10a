package pipeline_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tailored-agentic-units/tenderaudit/pipeline"
)

func TestDefaultConfig(t *testing.T) {
	cfg := pipeline.DefaultConfig()

	if cfg.MaxAudits() != 2 {
		t.Errorf("got MaxAudits %d, want 2", cfg.MaxAudits())
	}
	if cfg.Models.Checklist != "gpt-4o-mini" {
		t.Errorf("got checklist model %q, want gpt-4o-mini", cfg.Models.Checklist)
	}
	if cfg.Emitter != "slog" {
		t.Errorf("got emitter %q, want slog", cfg.Emitter)
	}
}

func TestConfig_Merge(t *testing.T) {
	cfg := pipeline.DefaultConfig()

	source := &pipeline.Config{
		MaxConcurrentAudits: 4,
		Emitter:             "noop",
		ReportPath:          "/var/lib/tenderaudit",
		Models:              pipeline.ModelConfig{Summary: "gpt-4o"},
	}
	cfg.Merge(source)

	if cfg.MaxAudits() != 4 {
		t.Errorf("got MaxAudits %d, want 4", cfg.MaxAudits())
	}
	if cfg.Emitter != "noop" {
		t.Errorf("got emitter %q, want noop", cfg.Emitter)
	}
	if cfg.ReportPath != "/var/lib/tenderaudit" {
		t.Errorf("got report path %q", cfg.ReportPath)
	}
	if cfg.Models.Summary != "gpt-4o" {
		t.Errorf("got summary model %q, want gpt-4o", cfg.Models.Summary)
	}
	if cfg.Models.Checklist != "gpt-4o-mini" {
		t.Errorf("merge should keep unset models at default, got %q", cfg.Models.Checklist)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	content := `{
		"gateway": {"api_key": "test-key", "timeout_seconds": 30},
		"max_concurrent_audits": 3,
		"emitter": "noop"
	}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := pipeline.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Gateway.APIKey != "test-key" {
		t.Errorf("got api key %q, want test-key", cfg.Gateway.APIKey)
	}
	if cfg.MaxAudits() != 3 {
		t.Errorf("got MaxAudits %d, want 3", cfg.MaxAudits())
	}
	if cfg.Models.Review != "gpt-4o-mini" {
		t.Errorf("defaults should survive the merge, got review model %q", cfg.Models.Review)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := pipeline.LoadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("Expected error for missing config file")
	}
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if _, err := pipeline.LoadConfig(path); err == nil {
		t.Fatal("Expected error for invalid config file")
	}
}
