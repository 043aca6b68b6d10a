package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tailored-agentic-units/tenderaudit/gateway"
	"github.com/tailored-agentic-units/tenderaudit/registry"
)

const registrationToolName = "validate_registration"

// Registration lookup outcomes as carried in the tool result content.
const (
	registrationValid       = "valid"
	registrationInvalid     = "invalid"
	registrationUnavailable = "unavailable"
)

type registrationResult struct {
	Outcome         string `json:"outcome"`
	Name            string `json:"name,omitempty"`
	Status          string `json:"status,omitempty"`
	PrimaryActivity string `json:"primaryActivity,omitempty"`
	Detail          string `json:"detail,omitempty"`
}

func registrationTool() gateway.Tool {
	return gateway.Tool{
		Name:        registrationToolName,
		Description: "Validates a bidder's tax registration identifier against the public contributor registry",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id": map[string]any{
					"type":        "string",
					"description": "The registration identifier (RUC) declared by the bidder",
				},
			},
			"required": []string{"id"},
		},
	}
}

// registrationHandler adapts a registry lookup into a tool handler. Business
// rejections (unknown identifier, inactive contributor) and transient
// transport failures map to distinct outcomes so the caller can grade them
// differently.
func registrationHandler(lookup registry.Lookup) gateway.ToolHandler {
	return func(ctx context.Context, args json.RawMessage) (gateway.ToolResult, error) {
		var input struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(args, &input); err != nil {
			return gateway.ToolResult{}, fmt.Errorf("invalid arguments: %w", err)
		}

		result := checkRegistration(ctx, lookup, input.ID)

		content, err := json.Marshal(result)
		if err != nil {
			return gateway.ToolResult{}, err
		}
		return gateway.ToolResult{
			Content: string(content),
			IsError: result.Outcome != registrationValid,
		}, nil
	}
}

func checkRegistration(ctx context.Context, lookup registry.Lookup, id string) registrationResult {
	entity, err := lookup.Lookup(ctx, id)
	if err != nil {
		var transport *registry.TransportError
		if errors.As(err, &transport) {
			return registrationResult{Outcome: registrationUnavailable, Detail: err.Error()}
		}
		if errors.Is(err, registry.ErrNotFound) {
			return registrationResult{
				Outcome: registrationInvalid,
				Detail:  fmt.Sprintf("identifier %q is not present in the contributor registry", id),
			}
		}
		return registrationResult{Outcome: registrationUnavailable, Detail: err.Error()}
	}

	result := registrationResult{
		Name:            entity.Name,
		Status:          entity.Status,
		PrimaryActivity: entity.PrimaryActivity,
	}
	if !entity.Active() {
		result.Outcome = registrationInvalid
		result.Detail = fmt.Sprintf("contributor status is %q", entity.Status)
		return result
	}
	result.Outcome = registrationValid
	return result
}
