package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// ToolHandler is the function signature for tool implementations. Handlers
// receive the request context and JSON-encoded arguments.
type ToolHandler func(ctx context.Context, args json.RawMessage) (ToolResult, error)

// ToolResult is the tool execution output fed back to the caller. IsError
// signals a business-level failure distinct from a handler error.
type ToolResult struct {
	Content string
	IsError bool
}

type toolEntry struct {
	tool    Tool
	handler ToolHandler
}

// ToolRegistry manages named callable tools for GenerateWithTools turns and
// for direct dispatch by pipeline stages. Each pipeline owns its registry;
// there is no ambient global. Thread-safe for concurrent access.
type ToolRegistry struct {
	mu      sync.RWMutex
	entries map[string]toolEntry
}

// NewToolRegistry creates an empty ToolRegistry.
func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{entries: make(map[string]toolEntry)}
}

// Register adds a new tool. Returns ErrToolAlreadyExists if the name is
// taken; use Replace to update an existing tool.
func (r *ToolRegistry) Register(tool Tool, handler ToolHandler) error {
	if tool.Name == "" {
		return ErrEmptyToolName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[tool.Name]; exists {
		return fmt.Errorf("%w: %s", ErrToolAlreadyExists, tool.Name)
	}

	r.entries[tool.Name] = toolEntry{tool: tool, handler: handler}
	return nil
}

// Replace updates an existing tool's definition and handler.
func (r *ToolRegistry) Replace(tool Tool, handler ToolHandler) error {
	if tool.Name == "" {
		return ErrEmptyToolName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[tool.Name]; !exists {
		return fmt.Errorf("%w: %s", ErrToolNotFound, tool.Name)
	}

	r.entries[tool.Name] = toolEntry{tool: tool, handler: handler}
	return nil
}

// Get retrieves a handler by tool name.
func (r *ToolRegistry) Get(name string) (ToolHandler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, exists := r.entries[name]
	if !exists {
		return nil, false
	}
	return e.handler, true
}

// List returns the definitions of all registered tools.
func (r *ToolRegistry) List() []Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tools := make([]Tool, 0, len(r.entries))
	for _, e := range r.entries {
		tools = append(tools, e.tool)
	}
	return tools
}

// Execute dispatches a tool call to the registered handler by name.
// Handler errors are wrapped with the tool name for context.
func (r *ToolRegistry) Execute(ctx context.Context, name string, args json.RawMessage) (ToolResult, error) {
	r.mu.RLock()
	e, exists := r.entries[name]
	r.mu.RUnlock()

	if !exists {
		return ToolResult{}, fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}

	result, err := e.handler(ctx, args)
	if err != nil {
		return ToolResult{}, fmt.Errorf("tool %s execution failed: %w", name, err)
	}

	return result, nil
}
