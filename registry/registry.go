// Package registry looks up business-registration identifiers against the
// public taxpayer registry consumed by the audit pipeline. A transport
// failure (timeout, non-2xx, malformed payload) is reported as a
// *TransportError, distinct from the business outcome of an identifier the
// registry does not know.
package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrNotFound reports an identifier the registry returned no data for.
// This is a business result, not a lookup failure.
var ErrNotFound = errors.New("registry: entity not found")

// TransportError reports a lookup that could not be completed: network
// failure, unexpected status, or a payload the client could not decode.
type TransportError struct {
	Status int // HTTP status, 0 when the request never completed
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("registry lookup failed with status %d: %v", e.Status, e.Err)
	}
	return fmt.Sprintf("registry lookup failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Entity is the registry's record for a registered business.
type Entity struct {
	Name            string
	Status          string
	PrimaryActivity string
}

// Active reports whether the registry lists the entity as active.
func (e *Entity) Active() bool {
	return strings.EqualFold(e.Status, "ACTIVO") || strings.EqualFold(e.Status, "ACTIVE")
}

// Lookup is the consumed capability the pipeline depends on.
type Lookup interface {
	Lookup(ctx context.Context, id string) (*Entity, error)
}

// Client queries the consolidated-taxpayer endpoint of the public registry.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient creates a Client from configuration.
func NewClient(cfg *Config) *Client {
	return &Client{
		endpoint: cfg.endpoint(),
		http:     &http.Client{Timeout: cfg.timeout()},
	}
}

// contributorRecord mirrors the registry's wire shape.
type contributorRecord struct {
	Name     string `json:"razonSocial"`
	Status   string `json:"estadoContribuyenteRuc"`
	Activity string `json:"actividadEconomicaPrincipal"`
}

// Lookup resolves a registration identifier. Returns ErrNotFound when the
// registry has no record for it and a *TransportError when the lookup itself
// could not be completed.
func (c *Client) Lookup(ctx context.Context, id string) (*Entity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.endpoint+"?ruc="+url.QueryEscape(id), nil)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Status: resp.StatusCode, Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &TransportError{
			Status: resp.StatusCode,
			Err:    fmt.Errorf("unexpected status: %s", strings.TrimSpace(string(body))),
		}
	}

	var records []contributorRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, &TransportError{Status: resp.StatusCode, Err: fmt.Errorf("malformed payload: %w", err)}
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	return &Entity{
		Name:            records[0].Name,
		Status:          records[0].Status,
		PrimaryActivity: records[0].Activity,
	}, nil
}

const (
	defaultEndpoint = "https://srienlinea.sri.gob.ec/sri-catastro-sujeto-servicio-internet/rest/ConsolidadoContribuyente/obtenerPorNumerosRuc"
	defaultTimeout  = 10 * time.Second
)

// Config holds registry client initialization parameters.
type Config struct {
	Endpoint       string `json:"endpoint,omitempty"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty"`
}

// DefaultConfig returns a Config pointing at the public endpoint.
func DefaultConfig() Config {
	return Config{}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Endpoint != "" {
		c.Endpoint = source.Endpoint
	}
	if source.TimeoutSeconds > 0 {
		c.TimeoutSeconds = source.TimeoutSeconds
	}
}

func (c *Config) endpoint() string {
	if c.Endpoint != "" {
		return c.Endpoint
	}
	return defaultEndpoint
}

func (c *Config) timeout() time.Duration {
	if c.TimeoutSeconds > 0 {
		return time.Duration(c.TimeoutSeconds) * time.Second
	}
	return defaultTimeout
}
