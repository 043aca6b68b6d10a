package gateway

import (
	"os"
	"time"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultTimeout = 60 * time.Second
)

// Config holds generation client initialization parameters.
type Config struct {
	BaseURL string `json:"base_url,omitempty"`
	APIKey  string `json:"api_key,omitempty"`

	// TimeoutSeconds bounds each generation call; a timeout surfaces as a
	// generation failure. 0 uses the default.
	TimeoutSeconds int `json:"timeout_seconds,omitempty"`
}

// DefaultConfig returns a Config with the public endpoint and the API key
// from the OPENAI_API_KEY environment variable.
func DefaultConfig() Config {
	return Config{
		BaseURL: defaultBaseURL,
		APIKey:  os.Getenv("OPENAI_API_KEY"),
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.BaseURL != "" {
		c.BaseURL = source.BaseURL
	}
	if source.APIKey != "" {
		c.APIKey = source.APIKey
	}
	if source.TimeoutSeconds > 0 {
		c.TimeoutSeconds = source.TimeoutSeconds
	}
}

// Timeout returns the per-call HTTP timeout.
func (c *Config) Timeout() time.Duration {
	if c.TimeoutSeconds > 0 {
		return time.Duration(c.TimeoutSeconds) * time.Second
	}
	return defaultTimeout
}
