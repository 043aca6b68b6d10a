// Package gateway abstracts the external text-generation service consumed by
// the audit pipeline. Callers request free text, a structured object decoded
// into a target shape, or a tool-calling turn; each call names its model and
// temperature explicitly so verification stages can run near-deterministic.
package gateway

import (
	"context"
	"fmt"
)

// Prompt is the context for one generation call. System carries the reviewer
// persona and instructions, User the document material under review.
type Prompt struct {
	System      string
	User        string
	Model       string
	Temperature float64
}

// Gateway is the generation service contract. Implementations perform a
// single attempt per call; retry policy, if any, belongs to the caller.
type Gateway interface {
	// GenerateText returns the model's free-text response.
	GenerateText(ctx context.Context, p Prompt) (string, error)

	// GenerateStructured requests a JSON object and decodes it into target.
	// Output that cannot be coerced to the target shape fails with a
	// *SchemaValidationError.
	GenerateStructured(ctx context.Context, p Prompt, target any) error

	// GenerateWithTools runs one turn with callable tools exposed to the
	// model and returns the raw response, including any requested tool calls.
	GenerateWithTools(ctx context.Context, p Prompt, tools []Tool) (*ToolsResponse, error)
}

// SchemaValidationError reports model output that could not be decoded into
// the requested structured shape. Raw preserves the offending output for
// diagnostics.
type SchemaValidationError struct {
	Model string
	Raw   string
	Err   error
}

func (e *SchemaValidationError) Error() string {
	return fmt.Sprintf("structured output from %s does not match target shape: %v", e.Model, e.Err)
}

func (e *SchemaValidationError) Unwrap() error {
	return e.Err
}
