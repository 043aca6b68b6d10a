package gateway

import "errors"

// Sentinel errors for the generation client and tool registry.
var (
	ErrMissingAPIKey = errors.New("gateway: api key is not set")
	ErrEmptyResponse = errors.New("gateway: model returned no choices")

	ErrToolNotFound      = errors.New("tool not found")
	ErrToolAlreadyExists = errors.New("tool already registered")
	ErrEmptyToolName     = errors.New("tool name is empty")
)
