package pipeline

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tailored-agentic-units/tenderaudit/gateway"
	"github.com/tailored-agentic-units/tenderaudit/registry"
)

const (
	defaultModel               = "gpt-4o-mini"
	defaultMaxConcurrentAudits = 2
)

// Generation temperatures per stage. Everything in this pipeline is
// extraction or verification, so mapping and review run fully deterministic
// and only the executive summary gets mild freedom.
const (
	temperatureChecklist = 0.3
	temperatureMapping   = 0.0
	temperatureReview    = 0.0
	temperatureSummary   = 0.5
)

// ModelConfig names the model used by each generation stage.
type ModelConfig struct {
	Checklist string `json:"checklist,omitempty"`
	Mapping   string `json:"mapping,omitempty"`
	Review    string `json:"review,omitempty"`
	Summary   string `json:"summary,omitempty"`
}

// DefaultModelConfig returns the default model for every stage.
func DefaultModelConfig() ModelConfig {
	return ModelConfig{
		Checklist: defaultModel,
		Mapping:   defaultModel,
		Review:    defaultModel,
		Summary:   defaultModel,
	}
}

// Merge applies non-empty values from source into c.
func (c *ModelConfig) Merge(source *ModelConfig) {
	if source.Checklist != "" {
		c.Checklist = source.Checklist
	}
	if source.Mapping != "" {
		c.Mapping = source.Mapping
	}
	if source.Review != "" {
		c.Review = source.Review
	}
	if source.Summary != "" {
		c.Summary = source.Summary
	}
}

// Config holds initialization parameters for a Pipeline and its
// collaborators. Each subsystem section delegates to that subsystem's
// config-driven constructor.
type Config struct {
	Gateway  gateway.Config  `json:"gateway"`
	Registry registry.Config `json:"registry"`
	Models   ModelConfig     `json:"models"`

	// MaxConcurrentAudits bounds the proposal fan-out; the ceiling exists to
	// respect the generation service's rate limits. 0 uses the default of 2.
	MaxConcurrentAudits int `json:"max_concurrent_audits,omitempty"`

	// Emitter names the progress emitter to resolve from the registry
	// ("noop", "slog", or one registered by the host).
	Emitter string `json:"emitter,omitempty"`

	// ReportPath is the directory for persisted reports; empty disables
	// persistence.
	ReportPath string `json:"report_path,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults for all subsystems.
func DefaultConfig() Config {
	return Config{
		Gateway:  gateway.DefaultConfig(),
		Registry: registry.DefaultConfig(),
		Models:   DefaultModelConfig(),
		Emitter:  "slog",
	}
}

// Merge applies non-zero values from source into c, delegating to each
// subsystem's Merge method.
func (c *Config) Merge(source *Config) {
	c.Gateway.Merge(&source.Gateway)
	c.Registry.Merge(&source.Registry)
	c.Models.Merge(&source.Models)

	if source.MaxConcurrentAudits > 0 {
		c.MaxConcurrentAudits = source.MaxConcurrentAudits
	}
	if source.Emitter != "" {
		c.Emitter = source.Emitter
	}
	if source.ReportPath != "" {
		c.ReportPath = source.ReportPath
	}
}

// MaxAudits returns the effective concurrency ceiling for proposal audits.
func (c *Config) MaxAudits() int {
	if c.MaxConcurrentAudits > 0 {
		return c.MaxConcurrentAudits
	}
	return defaultMaxConcurrentAudits
}

// LoadConfig reads a JSON config file, merges it with defaults, and returns
// the resulting Config.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded Config
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Merge(&loaded)
	return &cfg, nil
}
